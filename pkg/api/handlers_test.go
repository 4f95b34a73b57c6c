package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/picochain/go-node/pkg/chain"
	"github.com/picochain/go-node/pkg/config"
	"github.com/picochain/go-node/pkg/node"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) (*Server, *node.Node) {
	cfg := &config.Config{}
	cfg.Http.ServerAddr = "127.0.0.1:0"
	cfg.Mining.MinerAddress = "test-miner"
	cfg.Mining.DifficultyBits = 0
	cfg.Mining.BlockTxCount = 4

	n, err := node.New(context.Background(), cfg, nil)
	require.NoError(t, err)

	srv, err := NewServer(cfg, n, nil)
	require.NoError(t, err)
	return srv, n
}

func TestGetChain(t *testing.T) {
	srv, n := testServer(t)
	_, err := n.MineOnce()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/chain", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var info struct {
		Length   int `json:"length"`
		PoolSize int `json:"pool_size"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, 1, info.Length)
	assert.Equal(t, 0, info.PoolSize)
}

func TestSubmitTransaction(t *testing.T) {
	srv, n := testServer(t)
	_, err := n.MineOnce()
	require.NoError(t, err)

	tx := chain.Transaction{
		Inputs:  []chain.TxOutput{{Address: "test-miner", Value: chain.CoinbaseReward}},
		Outputs: []chain.TxOutput{{Address: "Bob", Value: chain.CoinbaseReward}},
	}
	body, err := json.Marshal(tx)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, n.PoolSize())
}

func TestSubmitTransactionUnknownInput(t *testing.T) {
	srv, _ := testServer(t)

	tx := chain.Transaction{
		Inputs:  []chain.TxOutput{{Address: "Nobody", Value: 1.0}},
		Outputs: []chain.TxOutput{{Address: "Bob", Value: 1.0}},
	}
	body, err := json.Marshal(tx)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestSubmitTransactionBadPayload(t *testing.T) {
	srv, _ := testServer(t)

	req := httptest.NewRequest(http.MethodPost, "/transactions", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBlock(t *testing.T) {
	srv, n := testServer(t)
	mined, err := n.MineOnce()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/blocks/1", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var block chain.Block
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &block))
	assert.True(t, block.Hash.Equal(mined.Hash))

	req = httptest.NewRequest(http.MethodGet, "/blocks/42", nil)
	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
