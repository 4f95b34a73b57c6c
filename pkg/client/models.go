package client

import "github.com/picochain/go-node/pkg/chain"

type ChainInfo struct {
	Length   int           `json:"length"`
	Blocks   []chain.Block `json:"blocks"`
	PoolSize int           `json:"pool_size"`
}

type PoolInfo struct {
	Size int `json:"size"`
}
