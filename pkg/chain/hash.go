package chain

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"math"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Address is an alias for string that represents a payout address.
type Address string

// Hash is an opaque content hash. Outputs with identical content hash
// identically, which is what lets the UTXO set track them by value alone.
type Hash []byte

func (h Hash) String() string {
	return hex.EncodeToString(h)
}

func (h Hash) Equal(other Hash) bool {
	return bytes.Equal(h, other)
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

func (h *Hash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	*h = raw
	return nil
}

// Hashable is anything with a deterministic content hash.
type Hashable interface {
	Hash() Hash
}

func sum(data []byte) Hash {
	digest := blake2b.Sum256(data)
	return digest[:]
}

func appendUint64(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return append(buf, b[:]...)
}

func appendFloat64(buf []byte, v float64) []byte {
	return appendUint64(buf, math.Float64bits(v))
}

func now() int64 {
	return time.Now().UnixMilli()
}
