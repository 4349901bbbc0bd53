package memory

import (
	"bytes"
	"context"
	"sort"
	"sync"
	"time"

	"github.com/asilbek-0311/arc-omnichan-yield/internal/core/domain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// PendingCreditStore is an in-process ports.PendingCreditStore.
type PendingCreditStore struct {
	mu      sync.Mutex
	credits map[common.Address]domain.PendingCredit
}

func NewPendingCreditStore() *PendingCreditStore {
	return &PendingCreditStore{credits: make(map[common.Address]domain.PendingCredit)}
}

func (s *PendingCreditStore) Get(_ context.Context, recipient common.Address) (*uint256.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.credits[recipient]; ok {
		return new(uint256.Int).Set(c.Amount), nil
	}
	return domain.Zero(), nil
}

func (s *PendingCreditStore) Add(_ context.Context, recipient common.Address, amount *uint256.Int) (*uint256.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := domain.Zero()
	if c, ok := s.credits[recipient]; ok {
		current = c.Amount
	}
	total, err := domain.CheckedAdd(current, amount)
	if err != nil {
		return nil, err
	}
	s.credits[recipient] = domain.PendingCredit{Recipient: recipient, Amount: total, UpdatedAt: time.Now().UTC()}
	return new(uint256.Int).Set(total), nil
}

func (s *PendingCreditStore) Take(_ context.Context, recipient common.Address) (*uint256.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.credits[recipient]
	if !ok {
		return domain.Zero(), nil
	}
	delete(s.credits, recipient)
	return c.Amount, nil
}

func (s *PendingCreditStore) Total(_ context.Context) (*uint256.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := domain.Zero()
	for _, c := range s.credits {
		total = domain.SaturatingAdd(total, c.Amount)
	}
	return total, nil
}

// List returns credits ordered by recipient address.
func (s *PendingCreditStore) List(_ context.Context) ([]domain.PendingCredit, error) {
	s.mu.Lock()
	out := make([]domain.PendingCredit, 0, len(s.credits))
	for _, c := range s.credits {
		c.Amount = new(uint256.Int).Set(c.Amount)
		out = append(out, c)
	}
	s.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].Recipient[:], out[j].Recipient[:]) < 0
	})
	return out, nil
}
