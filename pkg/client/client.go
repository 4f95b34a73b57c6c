package client

import (
	"fmt"
	"strings"

	"github.com/Pantani/request"
	"github.com/picochain/go-node/pkg/chain"
)

func NewClient(url string) ChainClient {
	url = strings.TrimRight(url, "/")
	return ChainClient{httpClient: request.InitClient(url)}
}

type ChainClient struct {
	url        string
	httpClient request.Request
}

func (cc ChainClient) Chain() (*ChainInfo, error) {
	var info ChainInfo
	err := cc.httpClient.Get(&info, "chain", nil)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (cc ChainClient) Blocks() ([]chain.Block, error) {
	var blocks []chain.Block
	err := cc.httpClient.Get(&blocks, "blocks", nil)
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

func (cc ChainClient) Block(index uint64) (*chain.Block, error) {
	var block chain.Block
	err := cc.httpClient.Get(&block, fmt.Sprintf("blocks/%d", index), nil)
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (cc ChainClient) UnspentOutputs() ([]chain.Hash, error) {
	var hashes []chain.Hash
	err := cc.httpClient.Get(&hashes, "utxo", nil)
	if err != nil {
		return nil, err
	}
	return hashes, nil
}

func (cc ChainClient) Pool() (*PoolInfo, error) {
	var info PoolInfo
	err := cc.httpClient.Get(&info, "pool", nil)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (cc ChainClient) SubmitTransaction(tx chain.Transaction) error {
	var echo chain.Transaction
	return cc.httpClient.Post(&echo, "transactions", tx)
}
