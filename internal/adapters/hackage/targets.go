// Package hackage folds index archive entries into per-package release
// metadata.
package hackage

import (
	"encoding/json"
	"fmt"

	"go.trai.ch/hackidx/internal/core/domain"
	"go.trai.ch/zerr"
)

// TargetHashes are the published hashes and length of a release tarball,
// extracted from a signed-targets document.
type TargetHashes struct {
	SHA256 domain.SHA256Hash
	MD5    domain.MD5Hash
	Length int64
}

// targetsDocument mirrors the wire shape of a package.json entry:
//
//	{"signed": {"_type": "Targets", "expires": null,
//	  "targets": {"<repo>/package/name-ver.tar.gz": {"length": N,
//	    "hashes": {"md5": "...", "sha256": "..."}}}}}
type targetsDocument struct {
	Signed struct {
		Type string `json:"_type"`
		// Raw so an absent key (empty) stays distinguishable from the
		// required explicit null.
		Expires json.RawMessage         `json:"expires"`
		Targets map[string]targetRecord `json:"targets"`
	} `json:"signed"`
}

type targetRecord struct {
	Length int64 `json:"length"`
	Hashes struct {
		MD5    string `json:"md5"`
		SHA256 string `json:"sha256"`
	} `json:"hashes"`
}

// targetKey synthesizes the key under which a release tarball is listed.
// The "<repo>" prefix is a literal placeholder in the source schema, not a
// substitution point.
func targetKey(pkg domain.PackageName, ver domain.Version) string {
	return fmt.Sprintf("<repo>/package/%s-%s.tar.gz", pkg, ver)
}

// ParseSignedTargets decodes a signed-targets document and extracts the
// hashes of the tarball for (pkg, ver). The document must carry the exact
// type "Targets", a null expiry, and an entry for the synthesized tarball
// key; each of these is a hard requirement of the source schema.
func ParseSignedTargets(content []byte, pkg domain.PackageName, ver domain.Version) (TargetHashes, error) {
	var doc targetsDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return TargetHashes{}, zerr.Wrap(err, domain.ErrMalformedTargets.Error())
	}

	if doc.Signed.Type != "Targets" {
		return TargetHashes{}, zerr.With(domain.ErrMalformedTargets, "_type", doc.Signed.Type)
	}
	if string(doc.Signed.Expires) != "null" {
		return TargetHashes{}, zerr.With(domain.ErrMalformedTargets, "expires", string(doc.Signed.Expires))
	}

	key := targetKey(pkg, ver)
	record, ok := doc.Signed.Targets[key]
	if !ok {
		return TargetHashes{}, zerr.With(domain.ErrTargetMissing, "key", key)
	}

	sha, err := domain.ParseSHA256Hash(record.Hashes.SHA256)
	if err != nil {
		return TargetHashes{}, zerr.With(zerr.Wrap(err, domain.ErrMalformedTargets.Error()), "key", key)
	}
	md5, err := domain.ParseMD5Hash(record.Hashes.MD5)
	if err != nil {
		return TargetHashes{}, zerr.With(zerr.Wrap(err, domain.ErrMalformedTargets.Error()), "key", key)
	}

	return TargetHashes{SHA256: sha, MD5: md5, Length: record.Length}, nil
}
