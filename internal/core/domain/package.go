package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// PackageName identifies a package in the index. Valid names are
// hyphen-separated segments of ASCII alphanumerics where every segment
// contains at least one letter ("acme", "unordered-containers"). The
// all-digit-segment restriction keeps names unambiguous next to versions
// in archive paths.
type PackageName string

// Version is a normalized dot-separated sequence of non-negative integers
// ("1.0", "0.13.2.1"). Versions are kept as strings so they can key maps;
// ordering is numeric per segment via CompareVersions.
type Version string

// ParsePackageName validates s as a package name.
func ParsePackageName(s string) (PackageName, error) {
	if s == "" {
		return "", zerr.With(ErrInvalidPackageName, "input", s)
	}
	for _, seg := range strings.Split(s, "-") {
		if !validNameSegment(seg) {
			return "", zerr.With(ErrInvalidPackageName, "input", s)
		}
	}
	return PackageName(s), nil
}

func validNameSegment(seg string) bool {
	if seg == "" {
		return false
	}
	hasLetter := false
	for _, r := range seg {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return hasLetter
}

func (n PackageName) String() string { return string(n) }

// ParseVersion validates and normalizes s as a version. Leading zeros are
// preserved in the textual form but compare numerically ("01" == "1").
func ParseVersion(s string) (Version, error) {
	if _, err := versionSegments(s); err != nil {
		return "", err
	}
	return Version(s), nil
}

func versionSegments(s string) ([]int, error) {
	if s == "" {
		return nil, zerr.With(ErrInvalidVersion, "input", s)
	}
	parts := strings.Split(s, ".")
	segs := make([]int, len(parts))
	for i, p := range parts {
		if p == "" {
			return nil, zerr.With(ErrInvalidVersion, "input", s)
		}
		for _, r := range p {
			if r < '0' || r > '9' {
				return nil, zerr.With(ErrInvalidVersion, "input", s)
			}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, ErrInvalidVersion.Error()), "input", s)
		}
		segs[i] = n
	}
	return segs, nil
}

func (v Version) String() string { return string(v) }

// CompareVersions orders two parsed versions numerically per segment, with
// a shorter version sorting before any longer extension of it
// ("1.0" < "1.0.0" < "1.1"). Both arguments must already be valid.
func CompareVersions(a, b Version) int {
	as, _ := versionSegments(string(a))
	bs, _ := versionSegments(string(b))
	for i := 0; i < len(as) && i < len(bs); i++ {
		switch {
		case as[i] < bs[i]:
			return -1
		case as[i] > bs[i]:
			return 1
		}
	}
	switch {
	case len(as) < len(bs):
		return -1
	case len(as) > len(bs):
		return 1
	}
	return 0
}
