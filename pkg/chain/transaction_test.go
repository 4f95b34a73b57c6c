package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxOutputHashIsContentAddressed(t *testing.T) {
	a := TxOutput{Address: "Alice", Value: 10.0}
	b := TxOutput{Address: "Alice", Value: 10.0}
	c := TxOutput{Address: "Alice", Value: 10.5}

	assert.True(t, a.Hash().Equal(b.Hash()))
	assert.False(t, a.Hash().Equal(c.Hash()))
}

func TestNewCoinbase(t *testing.T) {
	tx := NewCoinbase("Miner", CoinbaseReward)

	assert.True(t, tx.IsCoinbase())
	require.Len(t, tx.Outputs, 1)
	assert.Equal(t, Address("Miner"), tx.Outputs[0].Address)
	assert.Equal(t, CoinbaseReward, tx.Outputs[0].Value)
}

func TestIsSpendable(t *testing.T) {
	tx := Transaction{
		Inputs: []TxOutput{
			{Address: "Alice", Value: 10.0},
			{Address: "Alice", Value: 20.0},
		},
		Outputs: []TxOutput{
			{Address: "Bob", Value: 25.0},
			{Address: "Bob", Value: 4.995},
		},
	}
	assert.True(t, tx.IsSpendable())

	tx.Outputs = append(tx.Outputs, TxOutput{Address: "Bob", Value: 0.01})
	assert.False(t, tx.IsSpendable())
}

func TestInputAndOutputHashes(t *testing.T) {
	in := TxOutput{Address: "Alice", Value: 10.0}
	out := TxOutput{Address: "Bob", Value: 9.0}
	tx := Transaction{
		Inputs:    []TxOutput{in},
		Outputs:   []TxOutput{out},
		Timestamp: now(),
	}

	require.Len(t, tx.InputHashes(), 1)
	require.Len(t, tx.OutputHashes(), 1)
	assert.True(t, tx.InputHashes()[0].Equal(in.Hash()))
	assert.True(t, tx.OutputHashes()[0].Equal(out.Hash()))
}
