package ports

// RepoResolver maps a repository name to the local path of its index
// archive.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type RepoResolver interface {
	// IndexPath returns the archive path for repo, or ok=false when the
	// repository is not configured.
	IndexPath(repo string) (path string, ok bool)
}
