package memory

import (
	"context"
	"sync"
	"time"
)

// NonceStore is an in-process ports.NonceStore with lazy expiry.
type NonceStore struct {
	mu    sync.Mutex
	seen  map[string]time.Time
	now   func() time.Time
	calls int
}

func NewNonceStore() *NonceStore {
	return &NonceStore{seen: make(map[string]time.Time), now: time.Now}
}

func (s *NonceStore) CheckAndSet(_ context.Context, caller string, nonce string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.calls++
	if s.calls%1024 == 0 {
		for k, exp := range s.seen {
			if now.After(exp) {
				delete(s.seen, k)
			}
		}
	}

	key := caller + ":" + nonce
	if exp, ok := s.seen[key]; ok && now.Before(exp) {
		return false, nil
	}
	s.seen[key] = now.Add(ttl)
	return true, nil
}
