package ledger

import (
	"bytes"
	"sort"
	"sync"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/ports"

	"github.com/ethereum/go-ethereum/common"
)

// Registry maps token addresses to their ledgers.
type Registry struct {
	mu     sync.RWMutex
	tokens map[common.Address]ports.Asset
}

func NewRegistry(tokens ...ports.Asset) *Registry {
	r := &Registry{tokens: make(map[common.Address]ports.Asset, len(tokens))}
	for _, tok := range tokens {
		r.Register(tok)
	}
	return r
}

// Register adds or replaces a token.
func (r *Registry) Register(tok ports.Asset) {
	r.mu.Lock()
	r.tokens[tok.Address()] = tok
	r.mu.Unlock()
}

func (r *Registry) Lookup(token common.Address) (ports.Asset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tok, ok := r.tokens[token]
	return tok, ok
}

// List returns the registered tokens ordered by address.
func (r *Registry) List() []ports.Asset {
	r.mu.RLock()
	out := make([]ports.Asset, 0, len(r.tokens))
	for _, tok := range r.tokens {
		out = append(out, tok)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Address(), out[j].Address()
		return bytes.Compare(a[:], b[:]) < 0
	})
	return out
}
