package chain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlockMeetsTarget(t *testing.T) {
	target := TargetFromBits(8)
	txs := []Transaction{NewCoinbase("Miner", CoinbaseReward)}

	block, err := NewBlock(1, now(), Hash{}, txs, target)
	require.NoError(t, err)

	assert.True(t, CheckDifficulty(block.Hash, target))
	assert.Equal(t, block.computeHash().String(), block.Hash.String())
}

func TestCheckDifficulty(t *testing.T) {
	h := sum([]byte("some block bytes"))

	assert.True(t, CheckDifficulty(h, MaxTarget))
	assert.False(t, CheckDifficulty(h, big.NewInt(1)))
	assert.False(t, CheckDifficulty(h, nil))
}

func TestTargetFromBits(t *testing.T) {
	assert.Equal(t, 0, TargetFromBits(0).Cmp(MaxTarget))
	assert.Equal(t, -1, TargetFromBits(8).Cmp(MaxTarget))
	assert.Equal(t, 0, TargetFromBits(256).Cmp(big.NewInt(1)))
}
