package config

// configFile represents the structure of the hackidx.yaml configuration
// file.
type configFile struct {
	Version      string                   `yaml:"version"`
	Repositories map[string]repositoryDTO `yaml:"repositories"`
}

// repositoryDTO describes one configured package repository.
type repositoryDTO struct {
	// Index is the local path of the repository's index archive.
	Index string `yaml:"index"`
}
