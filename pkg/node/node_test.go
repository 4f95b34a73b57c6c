package node

import (
	"context"
	"testing"

	"github.com/picochain/go-node/pkg/chain"
	"github.com/picochain/go-node/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Mining.MinerAddress = "test-miner"
	cfg.Mining.DifficultyBits = 0 // every hash passes
	cfg.Mining.BlockTxCount = 4
	return cfg
}

func TestMineOnceOnEmptyPool(t *testing.T) {
	n, err := New(context.Background(), testConfig(), nil)
	require.NoError(t, err)

	block, err := n.MineOnce()
	require.NoError(t, err)

	assert.Equal(t, uint64(1), block.Index)
	require.Len(t, block.Transactions, 1)
	assert.True(t, block.Transactions[0].IsCoinbase())
	assert.Equal(t, 1, n.ChainLength())
	assert.Len(t, n.UnspentOutputs(), 1)
}

func TestSubmitTransactionAndMine(t *testing.T) {
	n, err := New(context.Background(), testConfig(), nil)
	require.NoError(t, err)

	// First block funds the miner.
	_, err = n.MineOnce()
	require.NoError(t, err)

	reward := chain.TxOutput{Address: "test-miner", Value: chain.CoinbaseReward}
	tx := chain.Transaction{
		Inputs:  []chain.TxOutput{reward},
		Outputs: []chain.TxOutput{{Address: "Bob", Value: chain.CoinbaseReward}},
	}
	require.NoError(t, n.SubmitTransaction(tx))
	assert.Equal(t, 1, n.PoolSize())

	block, err := n.MineOnce()
	require.NoError(t, err)

	assert.Len(t, block.Transactions, 2)
	assert.Equal(t, 0, n.PoolSize())
	assert.Equal(t, 2, n.ChainLength())
}

func TestSubmitTransactionRejectsUnknownInput(t *testing.T) {
	n, err := New(context.Background(), testConfig(), nil)
	require.NoError(t, err)

	tx := chain.Transaction{
		Inputs:  []chain.TxOutput{{Address: "Nobody", Value: 1.0}},
		Outputs: []chain.TxOutput{{Address: "Bob", Value: 1.0}},
	}
	err = n.SubmitTransaction(tx)
	assert.ErrorIs(t, err, chain.ErrInputNotSpendable)
}

func TestBlockLookup(t *testing.T) {
	n, err := New(context.Background(), testConfig(), nil)
	require.NoError(t, err)

	mined, err := n.MineOnce()
	require.NoError(t, err)

	found := n.Block(1)
	require.NotNil(t, found)
	assert.True(t, found.Hash.Equal(mined.Hash))
	assert.Nil(t, n.Block(2))
}
