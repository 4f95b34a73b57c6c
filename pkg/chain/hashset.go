package chain

// HashSet is an in-memory set of output hashes, keyed by the raw hash bytes.
// The ledger uses one as its UTXO store: membership answers "is this output
// currently spendable".
type HashSet map[string]struct{}

func NewHashSet() HashSet {
	return make(HashSet)
}

func (s HashSet) Add(h Hash) {
	s[string(h)] = struct{}{}
}

func (s HashSet) Remove(h Hash) {
	delete(s, string(h))
}

func (s HashSet) Contains(h Hash) bool {
	_, ok := s[string(h)]
	return ok
}

func (s HashSet) Len() int {
	return len(s)
}

// Hashes returns the members in unspecified order.
func (s HashSet) Hashes() []Hash {
	hashes := make([]Hash, 0, len(s))
	for k := range s {
		hashes = append(hashes, Hash(k))
	}
	return hashes
}
