package chain

// TxOutput assigns an amount to an address. Outputs carry no ownership proof;
// whoever references an output's hash may spend it.
type TxOutput struct {
	Address Address `json:"address"`
	Value   float64 `json:"value"`
}

// Hash is a pure function of the output's fields.
func (o TxOutput) Hash() Hash {
	buf := make([]byte, 0, len(o.Address)+8)
	buf = append(buf, []byte(o.Address)...)
	buf = appendFloat64(buf, o.Value)
	return sum(buf)
}

// Transaction is a value transfer: it consumes the outputs listed as inputs
// and creates the outputs listed as outputs. Once embedded in an accepted
// block it is immutable.
type Transaction struct {
	Inputs    []TxOutput `json:"inputs"`
	Outputs   []TxOutput `json:"outputs"`
	Timestamp int64      `json:"timestamp"`
}

// NewCoinbase builds the reward transaction placed first in every block. It
// has no inputs, which is exactly what marks it as a coinbase.
func NewCoinbase(miner Address, reward float64) Transaction {
	return Transaction{
		Outputs: []TxOutput{{
			Address: miner,
			Value:   reward,
		}},
		Timestamp: now(),
	}
}

func (t Transaction) IsCoinbase() bool {
	return len(t.Inputs) == 0
}

func (t Transaction) InputValue() float64 {
	var total float64
	for _, in := range t.Inputs {
		total += in.Value
	}
	return total
}

func (t Transaction) OutputValue() float64 {
	var total float64
	for _, out := range t.Outputs {
		total += out.Value
	}
	return total
}

// IsSpendable reports whether the transaction conserves value: it may destroy
// value but never create it. Coinbase transactions are exempt from this check
// by construction (zero inputs never reach it through block validation).
func (t Transaction) IsSpendable() bool {
	return t.InputValue() >= t.OutputValue()
}

func (t Transaction) InputHashes() []Hash {
	hashes := make([]Hash, 0, len(t.Inputs))
	for _, in := range t.Inputs {
		hashes = append(hashes, in.Hash())
	}
	return hashes
}

func (t Transaction) OutputHashes() []Hash {
	hashes := make([]Hash, 0, len(t.Outputs))
	for _, out := range t.Outputs {
		hashes = append(hashes, out.Hash())
	}
	return hashes
}

// Hash covers inputs, outputs and timestamp.
func (t Transaction) Hash() Hash {
	var buf []byte
	for _, in := range t.Inputs {
		buf = append(buf, in.Hash()...)
	}
	for _, out := range t.Outputs {
		buf = append(buf, out.Hash()...)
	}
	buf = appendUint64(buf, uint64(t.Timestamp))
	return sum(buf)
}
