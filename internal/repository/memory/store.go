// Package memory holds the document in process memory. It backs the
// service tests and is the swap point for a real transactional store.
package memory

import (
	"context"
	"encoding/json"
	"sync"

	"sareeMarket/domain"
)

type Store struct {
	mu  sync.RWMutex
	doc *domain.Document
}

func NewStore() *Store {
	return &Store{doc: domain.NewDocument()}
}

func (s *Store) View(ctx context.Context, fn func(*domain.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, err := clone(s.doc)
	if err != nil {
		return err
	}

	return fn(snapshot)
}

func (s *Store) Update(ctx context.Context, fn func(*domain.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working, err := clone(s.doc)
	if err != nil {
		return err
	}

	if err := fn(working); err != nil {
		return err
	}

	s.doc = working

	return nil
}

// clone deep-copies through JSON, mirroring what the file-backed store
// does on every read.
func clone(doc *domain.Document) (*domain.Document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	out := domain.NewDocument()
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}

	return out, nil
}
