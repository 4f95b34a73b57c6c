package chain

import (
	"math/big"

	"github.com/picochain/go-node/internal/log"
	"github.com/pkg/errors"
)

// CoinbaseReward is the fixed amount paid to the miner of every block.
const CoinbaseReward = 50.0

// Blockchain is the single-node ledger state machine: the accepted chain, the
// FIFO pool of pending transactions, and the set of currently spendable
// output hashes. It owns all three exclusively and is not internally
// synchronized; concurrent callers must serialize access through one lock
// around the whole instance.
type Blockchain struct {
	blocks  []*Block
	pool    []Transaction
	unspent HashSet
}

func New() *Blockchain {
	return &Blockchain{
		unspent: NewHashSet(),
	}
}

// AddTransactionToPool validates tx against the current UTXO set and the
// current pool contents, then queues it. Pool acceptance never touches the
// UTXO set; outputs are only spent when a block consuming them is accepted.
func (bc *Blockchain) AddTransactionToPool(tx Transaction) error {
	if err := bc.verifyTransaction(tx); err != nil {
		log.Debugw("transaction rejected", "err", err)
		return err
	}
	bc.pool = append(bc.pool, tx)
	log.Debugw("transaction queued",
		"tx_hash", tx.Hash(),
		"pool_size", len(bc.pool),
	)
	return nil
}

// CreateCandidateBlock assembles an unmined block proposal: a fresh coinbase
// paying miner, followed by up to txCount pool transactions in FIFO order.
// The drained transactions leave the pool at proposal time; a candidate that
// is later discarded does not put them back.
func (bc *Blockchain) CreateCandidateBlock(txCount int, miner Address, difficulty *big.Int) (*Block, error) {
	var candidateIndex uint64
	prevHash := Hash{}
	if last := bc.LastBlock(); last != nil {
		candidateIndex = last.Index
		prevHash = last.Hash
	}

	k := txCount
	if len(bc.pool) < k {
		k = len(bc.pool)
	}

	txs := make([]Transaction, 0, k+1)
	txs = append(txs, NewCoinbase(miner, CoinbaseReward))
	txs = append(txs, bc.pool[:k]...)
	bc.pool = bc.pool[k:]

	return NewBlock(candidateIndex+1, now(), prevHash, txs, difficulty)
}

// AggregateMinedBlock is the sole path by which a block enters the chain. It
// checks proof-of-work, requires a leading coinbase, re-verifies every other
// transaction against current state, and only then applies the UTXO update
// and appends the block. A failure at any step leaves the ledger untouched.
func (bc *Blockchain) AggregateMinedBlock(block *Block) error {
	if !CheckDifficulty(block.Hash, block.Difficulty) {
		return errors.Wrapf(ErrProofOfWork, "block %d", block.Index)
	}

	if len(block.Transactions) == 0 {
		return errors.Wrapf(ErrNotACoinbase, "block %d has no transactions", block.Index)
	}
	coinbase, rest := block.Transactions[0], block.Transactions[1:]
	if !coinbase.IsCoinbase() {
		return errors.Wrapf(ErrNotACoinbase, "block %d", block.Index)
	}

	var outputSpent []Hash
	outputCreated := coinbase.OutputHashes()
	for i := range rest {
		if err := bc.verifyTransaction(rest[i]); err != nil {
			return err
		}
		outputSpent = append(outputSpent, rest[i].InputHashes()...)
		outputCreated = append(outputCreated, rest[i].OutputHashes()...)
	}

	// Validation is complete; apply the transition as one unit.
	for _, h := range outputSpent {
		bc.unspent.Remove(h)
	}
	for _, h := range outputCreated {
		bc.unspent.Add(h)
	}
	bc.blocks = append(bc.blocks, block)

	log.Infow("block accepted",
		"index", block.Index,
		"hash", block.Hash,
		"tx_count", len(block.Transactions),
		"unspent", bc.unspent.Len(),
	)
	return nil
}

// verifyTransaction is a read-only check against current state, shared by
// pool admission and block acceptance. It does not verify that the caller is
// authorized to spend the referenced outputs; this model has no ownership
// proof on inputs.
func (bc *Blockchain) verifyTransaction(tx Transaction) error {
	if !tx.IsSpendable() {
		return errors.Wrapf(ErrInsufficientFunds, "out %f in %f", tx.OutputValue(), tx.InputValue())
	}

	pooled := NewHashSet()
	for _, pending := range bc.pool {
		for _, h := range pending.InputHashes() {
			pooled.Add(h)
		}
	}

	for _, h := range tx.InputHashes() {
		if !bc.unspent.Contains(h) {
			return errors.Wrapf(ErrInputNotSpendable, "input %s", h)
		}
		if pooled.Contains(h) {
			return errors.Wrapf(ErrDoubleSpending, "input %s", h)
		}
	}
	return nil
}

// Len returns the chain length.
func (bc *Blockchain) Len() int {
	return len(bc.blocks)
}

func (bc *Blockchain) LastBlock() *Block {
	if len(bc.blocks) == 0 {
		return nil
	}
	return bc.blocks[len(bc.blocks)-1]
}

// Blocks returns the accepted chain, oldest first.
func (bc *Blockchain) Blocks() []*Block {
	out := make([]*Block, len(bc.blocks))
	copy(out, bc.blocks)
	return out
}

func (bc *Blockchain) PoolSize() int {
	return len(bc.pool)
}

// UnspentOutputs exposes the UTXO set for diagnostics.
func (bc *Blockchain) UnspentOutputs() []Hash {
	return bc.unspent.Hashes()
}
