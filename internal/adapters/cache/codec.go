// Package cache persists release metadata snapshots keyed on the source
// index file's size and modification time.
package cache

import (
	"encoding/binary"

	"github.com/fxamacker/cbor/v2"
	"go.trai.ch/hackidx/internal/core/domain"
	"go.trai.ch/zerr"
)

// Magic marks the start of a snapshot file. The fixed value lets a format
// bump fail loudly on the very first eight bytes instead of misparsing the
// remainder.
const Magic uint64 = 0xFEDCBA09

// headerSize is the fixed prefix: magic, source size, source time, each a
// big-endian 64-bit integer.
const headerSize = 24

// Snapshot is a decoded metadata cache file. SourceSize and SourceTime
// identify the exact index file state the packages were extracted from;
// any mismatch with a fresh stat means the snapshot is stale.
type Snapshot struct {
	SourceSize int64
	SourceTime int64
	Packages   domain.Metadata
}

// EncodeSnapshot renders a snapshot into the binary cache format:
// [magic u64][sourceSize u64][sourceTime u64][CBOR metadata map], all
// integers big-endian.
func EncodeSnapshot(snap Snapshot) ([]byte, error) {
	payload, err := cbor.Marshal(snap.Packages)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheWrite.Error())
	}

	buf := make([]byte, headerSize, headerSize+len(payload))
	binary.BigEndian.PutUint64(buf[0:8], Magic)
	binary.BigEndian.PutUint64(buf[8:16], uint64(snap.SourceSize))
	binary.BigEndian.PutUint64(buf[16:24], uint64(snap.SourceTime))
	return append(buf, payload...), nil
}

// DecodeSnapshot parses a snapshot file. The magic field is checked before
// anything else is interpreted. Callers treat any error as "no usable
// cache", never as fatal.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	if len(data) < headerSize {
		return Snapshot{}, zerr.With(domain.ErrCacheDecode, "length", len(data))
	}
	if got := binary.BigEndian.Uint64(data[0:8]); got != Magic {
		return Snapshot{}, zerr.With(domain.ErrCacheDecode, "magic", got)
	}

	snap := Snapshot{
		SourceSize: int64(binary.BigEndian.Uint64(data[8:16])),
		SourceTime: int64(binary.BigEndian.Uint64(data[16:24])),
	}
	if err := cbor.Unmarshal(data[headerSize:], &snap.Packages); err != nil {
		return Snapshot{}, zerr.Wrap(err, domain.ErrCacheDecode.Error())
	}
	return snap, nil
}
