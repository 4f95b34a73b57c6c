package node

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/picochain/go-node/internal/log"
	"github.com/picochain/go-node/internal/pg"
	"github.com/picochain/go-node/pkg/archive"
	"github.com/picochain/go-node/pkg/chain"
	"github.com/picochain/go-node/pkg/config"
)

// Node owns the ledger instance and serializes all access to it behind one
// mutex, as the ledger itself carries no synchronization. It runs the mining
// loop and accepts transaction submissions from the API layer.
type Node struct {
	ctx    context.Context
	config *config.Config
	conn   *pgx.Conn // nil disables the block archive

	mu     sync.Mutex
	ledger *chain.Blockchain

	target *big.Int
	miner  chain.Address
}

func New(ctx context.Context, cfg *config.Config, conn *pgx.Conn) (*Node, error) {
	return &Node{
		ctx:    ctx,
		config: cfg,
		conn:   conn,
		ledger: chain.New(),
		target: chain.TargetFromBits(cfg.Mining.DifficultyBits),
		miner:  chain.Address(cfg.Mining.MinerAddress),
	}, nil
}

// SubmitTransaction queues tx for inclusion in a future block.
func (n *Node) SubmitTransaction(tx chain.Transaction) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.ledger.AddTransactionToPool(tx)
}

// MineOnce assembles a candidate from the pool, mines it, and hands the mined
// block back to the ledger for acceptance. The whole cycle holds the ledger
// lock, so submissions block while the nonce search runs.
func (n *Node) MineOnce() (*chain.Block, error) {
	jobID := uuid.New()

	n.mu.Lock()
	block, err := n.ledger.CreateCandidateBlock(n.config.Mining.BlockTxCount, n.miner, n.target)
	if err == nil {
		err = n.ledger.AggregateMinedBlock(block)
	}
	n.mu.Unlock()
	if err != nil {
		log.Errorw("mining cycle failed", "job_id", jobID, "err", err)
		return nil, err
	}

	log.Infow("mined block",
		"job_id", jobID,
		"index", block.Index,
		"hash", block.Hash,
		"tx_count", len(block.Transactions),
	)

	n.archiveBlock(block)
	return block, nil
}

// archiveBlock mirrors an accepted block into postgres. Archive failures are
// logged, never propagated: the in-memory ledger has already moved on.
func (n *Node) archiveBlock(block *chain.Block) {
	if n.conn == nil {
		return
	}

	err := pg.WithTX(n.ctx, n.conn, func(ctx context.Context, tx pgx.Tx) error {
		rec := archive.FromBlock(block)
		return archive.Save(ctx, tx, &rec)
	})
	if err != nil {
		log.Errorw("failed to archive block", "index", block.Index, "err", err)
	}
}

// Run mines on a fixed interval until ctx is done. An empty pool still
// produces coinbase-only blocks; that is how new value enters the system.
func (n *Node) Run() error {
	interval := n.config.Mining.Interval
	if interval <= 0 {
		interval = 10 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Infow("starting mining loop",
		"miner_address", n.miner,
		"difficulty_bits", n.config.Mining.DifficultyBits,
		"block_tx_count", n.config.Mining.BlockTxCount,
		"interval", interval,
	)

	for {
		select {
		case <-n.ctx.Done():
			return n.ctx.Err()

		case <-ticker.C:
			if _, err := n.MineOnce(); err != nil {
				return err
			}
		}
	}
}

// ChainLength returns the number of accepted blocks.
func (n *Node) ChainLength() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.ledger.Len()
}

func (n *Node) Blocks() []*chain.Block {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.ledger.Blocks()
}

func (n *Node) Block(index uint64) *chain.Block {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, b := range n.ledger.Blocks() {
		if b.Index == index {
			return b
		}
	}
	return nil
}

func (n *Node) PoolSize() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.ledger.PoolSize()
}

func (n *Node) UnspentOutputs() []chain.Hash {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.ledger.UnspentOutputs()
}
