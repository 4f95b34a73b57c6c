package chain

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// Block is an ordered container of transactions plus chain linkage. The first
// transaction must be a coinbase once the block is finalized. The ledger never
// computes a block's hash; that is this constructor's job.
type Block struct {
	Index        uint64        `json:"index"`
	Timestamp    int64         `json:"timestamp"`
	PrevHash     Hash          `json:"prev_hash"`
	Nonce        uint64        `json:"nonce"`
	Transactions []Transaction `json:"transactions"`
	Hash         Hash          `json:"hash"`
	Difficulty   *big.Int      `json:"difficulty"`
}

// NewBlock assembles a block and runs the nonce search until the block hash
// satisfies the difficulty target.
func NewBlock(index uint64, timestamp int64, prevHash Hash, txs []Transaction, difficulty *big.Int) (*Block, error) {
	b := &Block{
		Index:        index,
		Timestamp:    timestamp,
		PrevHash:     prevHash,
		Transactions: txs,
		Difficulty:   difficulty,
	}

	for nonce := uint64(0); ; nonce++ {
		b.Nonce = nonce
		h := b.computeHash()
		if CheckDifficulty(h, difficulty) {
			b.Hash = h
			return b, nil
		}
		if nonce == math.MaxUint64 {
			return nil, errors.New("nonce space exhausted without meeting target")
		}
	}
}

func (b *Block) computeHash() Hash {
	var buf []byte
	buf = appendUint64(buf, b.Index)
	buf = appendUint64(buf, uint64(b.Timestamp))
	buf = append(buf, b.PrevHash...)
	buf = appendUint64(buf, b.Nonce)
	for _, tx := range b.Transactions {
		buf = append(buf, tx.Hash()...)
	}
	buf = append(buf, b.Difficulty.Bytes()...)
	return sum(buf)
}
