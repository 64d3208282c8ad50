// Package jsonfile persists the entire document as one JSON file,
// rewritten in full on every mutation.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"sareeMarket/domain"
)

type Store struct {
	path string

	// mu serializes mutations so concurrent handlers in one process
	// cannot lose each other's writes. Writers in other processes
	// still race (last writer wins); accepted for this store.
	mu sync.RWMutex
}

// Open creates the store, seeding an empty document on disk if the
// file does not exist yet.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.write(domain.NewDocument()); err != nil {
			return nil, fmt.Errorf("seed data file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat data file: %w", err)
	}

	return s, nil
}

// View runs fn against a snapshot of the document. Mutations made by
// fn are discarded.
func (s *Store) View(ctx context.Context, fn func(*domain.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	return fn(doc)
}

// Update runs fn against the document and writes the result back in
// full. If fn returns an error nothing is persisted.
func (s *Store) Update(ctx context.Context, fn func(*domain.Document) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(doc); err != nil {
		return err
	}

	return s.write(doc)
}

func (s *Store) read() (*domain.Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	doc := domain.NewDocument()
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("decode data file: %w", err)
	}

	return doc, nil
}

func (s *Store) write(doc *domain.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	// Write to a temp file in the same directory, then rename, so a
	// crash mid-write never leaves a truncated document behind.
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".data-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace data file: %w", err)
	}

	return nil
}
