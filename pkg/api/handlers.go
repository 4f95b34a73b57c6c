package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/jackc/pgx/v4"
	"github.com/picochain/go-node/internal/pg"
	"github.com/picochain/go-node/pkg/archive"
	"github.com/picochain/go-node/pkg/chain"
	"github.com/pkg/errors"
)

type chainInfo struct {
	Length   int            `json:"length"`
	Blocks   []*chain.Block `json:"blocks"`
	PoolSize int            `json:"pool_size"`
}

type poolInfo struct {
	Size int `json:"size"`
}

func submitTransaction(w http.ResponseWriter, r *http.Request) {
	var tx chain.Transaction
	if err := json.NewDecoder(r.Body).Decode(&tx); err != nil {
		ErrResponse(w, http.StatusBadRequest, errors.Wrap(err, "invalid transaction payload"))
		return
	}

	if err := GetNode(r).SubmitTransaction(tx); err != nil {
		ErrResponse(w, submissionStatus(err), err)
		return
	}

	JsonResponse(w, http.StatusAccepted, tx)
}

// submissionStatus maps ledger validation failures onto HTTP statuses.
func submissionStatus(err error) int {
	switch {
	case errors.Is(err, chain.ErrDoubleSpending):
		return http.StatusConflict
	case errors.Is(err, chain.ErrInsufficientFunds),
		errors.Is(err, chain.ErrInputNotSpendable),
		errors.Is(err, chain.ErrInvalidTransaction):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func getChain(w http.ResponseWriter, r *http.Request) {
	n := GetNode(r)
	JsonResponse(w, http.StatusOK, chainInfo{
		Length:   n.ChainLength(),
		Blocks:   n.Blocks(),
		PoolSize: n.PoolSize(),
	})
}

func listBlocks(w http.ResponseWriter, r *http.Request) {
	JsonResponse(w, http.StatusOK, GetNode(r).Blocks())
}

func getBlock(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.ParseUint(chi.URLParam(r, "index"), 10, 64)
	if err != nil {
		ErrResponse(w, http.StatusBadRequest, errors.New("index is not a number"))
		return
	}

	block := GetNode(r).Block(index)
	if block == nil {
		ErrResponse(w, http.StatusNotFound, errors.Errorf("block %d is not in the chain", index))
		return
	}

	JsonResponse(w, http.StatusOK, block)
}

func listUnspentOutputs(w http.ResponseWriter, r *http.Request) {
	JsonResponse(w, http.StatusOK, GetNode(r).UnspentOutputs())
}

func getPool(w http.ResponseWriter, r *http.Request) {
	JsonResponse(w, http.StatusOK, poolInfo{Size: GetNode(r).PoolSize()})
}

func listArchivedBlocks(w http.ResponseWriter, r *http.Request) {
	var records []archive.Record

	err := pg.WithTX(r.Context(), GetDbConn(r), func(ctx context.Context, tx pgx.Tx) error {
		var err error
		records, err = archive.Recent(ctx, tx, 20)
		return err
	})
	if err != nil {
		ErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	JsonResponse(w, http.StatusOK, records)
}
