package chain

import "github.com/pkg/errors"

// Validation failures returned by the ledger operations. Callers match them
// with errors.Is; call sites wrap them with input context.
var (
	// ErrProofOfWork rejects a block whose hash fails its difficulty target.
	ErrProofOfWork = errors.New("block is not correctly mined")
	// ErrNotACoinbase rejects a block whose first transaction is missing or
	// not a reward transaction.
	ErrNotACoinbase = errors.New("first transaction in block must be a coinbase")
	// ErrInvalidTransaction is reserved for validation failures not otherwise
	// classified. No current path returns it.
	ErrInvalidTransaction = errors.New("invalid transaction")
	// ErrInsufficientFunds rejects a transaction whose outputs exceed its inputs.
	ErrInsufficientFunds = errors.New("transaction output is greater than input")
	// ErrInputNotSpendable rejects an input hash absent from the UTXO set.
	ErrInputNotSpendable = errors.New("input is not spendable")
	// ErrDoubleSpending rejects an input hash already claimed by a pooled
	// transaction.
	ErrDoubleSpending = errors.New("double spending attempt")
)
