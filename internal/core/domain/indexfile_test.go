package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hackidx/internal/core/domain"
)

func TestClassifyIndexPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    domain.IndexFile
		wantErr bool
	}{
		{
			name: "manifest file",
			path: "acme/1.0/acme.cabal",
			want: domain.ManifestFile{Package: "acme", Version: "1.0"},
		},
		{
			name: "signed targets",
			path: "acme/1.0/package.json",
			want: domain.SignedTargets{Package: "acme", Version: "1.0"},
		},
		{
			name: "preferred versions",
			path: "acme/preferred-versions",
			want: domain.PreferredVersionsFile{Package: "acme"},
		},
		{
			name: "hyphenated package",
			path: "unordered-containers/0.2.20/unordered-containers.cabal",
			want: domain.ManifestFile{Package: "unordered-containers", Version: "0.2.20"},
		},
		{
			name: "surrounding slashes trimmed",
			path: "/acme/1.0/package.json/",
			want: domain.SignedTargets{Package: "acme", Version: "1.0"},
		},
		{name: "mismatched cabal name", path: "acme/1.0/wrong.cabal", wantErr: true},
		{name: "invalid version segment", path: "acme/not-a-version/acme.cabal", wantErr: true},
		{name: "invalid package name", path: "123/1.0/123.cabal", wantErr: true},
		{name: "two parts not preferred", path: "acme/1.0", wantErr: true},
		{name: "single part", path: "acme", wantErr: true},
		{name: "four parts", path: "a/b/c/d", wantErr: true},
		{name: "empty", path: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ClassifyIndexPath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, domain.ErrUnrecognizedIndexPath.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
