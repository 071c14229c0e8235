// Package setstore provides named string-set membership checks for
// moderation rules, backed by memory or redis.
package setstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type SetStore interface {
	InSet(ctx context.Context, name, val string) (bool, error)
	AddToSet(ctx context.Context, name string, vals []string) error
}

type MemSetStore struct {
	mu   sync.RWMutex
	sets map[string]map[string]bool
}

func NewMemSetStore() *MemSetStore {
	return &MemSetStore{
		sets: make(map[string]map[string]bool),
	}
}

func (s *MemSetStore) InSet(ctx context.Context, name, val string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set, ok := s.sets[name]
	if !ok {
		// NOTE: returns false when the entire set isn't found
		return false, nil
	}
	return set[val], nil
}

func (s *MemSetStore) AddToSet(ctx context.Context, name string, vals []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.sets[name]
	if !ok {
		set = make(map[string]bool, len(vals))
		s.sets[name] = set
	}
	for _, v := range vals {
		set[v] = true
	}
	return nil
}

// LoadFromFileJSON reads a JSON file mapping set names to value lists and
// merges it in to the store.
func LoadFromFileJSON(ctx context.Context, s SetStore, p string) error {
	raw, err := os.ReadFile(p)
	if err != nil {
		return err
	}

	var sets map[string][]string
	if err := json.Unmarshal(raw, &sets); err != nil {
		return fmt.Errorf("parsing set file %s: %w", p, err)
	}

	for name, vals := range sets {
		if err := s.AddToSet(ctx, name, vals); err != nil {
			return err
		}
	}
	return nil
}
