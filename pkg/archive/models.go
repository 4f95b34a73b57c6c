package archive

import (
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/picochain/go-node/pkg/chain"
)

// Record is the archived view of an accepted block. The archive is a
// write-behind mirror for out-of-process readers; the in-memory ledger stays
// the source of truth.
type Record struct {
	Index      uint64
	Hash       []byte
	PrevHash   []byte
	TxCount    int
	Timestamp  int64
	AcceptedAt time.Time
}

func FromBlock(b *chain.Block) Record {
	return Record{
		Index:      b.Index,
		Hash:       b.Hash,
		PrevHash:   b.PrevHash,
		TxCount:    len(b.Transactions),
		Timestamp:  b.Timestamp,
		AcceptedAt: time.Now(),
	}
}

func (r Record) MarshalJSON() ([]byte, error) {
	type temp struct {
		Index      uint64    `json:"index"`
		Hash       string    `json:"hash"`
		PrevHash   string    `json:"prev_hash"`
		TxCount    int       `json:"tx_count"`
		Timestamp  int64     `json:"timestamp"`
		AcceptedAt time.Time `json:"accepted_at"`
	}

	t := temp{
		Index:      r.Index,
		Hash:       hex.EncodeToString(r.Hash),
		PrevHash:   hex.EncodeToString(r.PrevHash),
		TxCount:    r.TxCount,
		Timestamp:  r.Timestamp,
		AcceptedAt: r.AcceptedAt,
	}

	return json.Marshal(t)
}
