package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/cognicore/bayard/pkg/bayard/internalerr"
	"github.com/cognicore/bayard/pkg/bayard/store"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu     sync.RWMutex
	nextID int64
	docs   []store.Document
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{nextID: 1}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// AddDocument appends one labeled document.
func (s *Store) AddDocument(ctx context.Context, d store.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d.Label == "" {
		return fmt.Errorf("%w: document label is empty", internalerr.ErrInvalidInput)
	}

	d.ID = s.nextID
	s.nextID++
	s.docs = append(s.docs, copyDoc(d))
	return nil
}

// ListDocuments returns every stored document in insertion order.
func (s *Store) ListDocuments(ctx context.Context) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]store.Document, len(s.docs))
	for i, d := range s.docs {
		out[i] = copyDoc(d)
	}
	return out, nil
}

// CountDocuments returns the number of stored documents.
func (s *Store) CountDocuments(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.docs)), nil
}

// ListLabels returns the distinct labels in lexicographic order.
func (s *Store) ListLabels(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := make(map[string]struct{})
	for _, d := range s.docs {
		set[d.Label] = struct{}{}
	}
	labels := make([]string, 0, len(set))
	for label := range set {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels, nil
}

func copyDoc(d store.Document) store.Document {
	tokens := make([]string, len(d.Tokens))
	copy(tokens, d.Tokens)
	return store.Document{
		ID:     d.ID,
		Label:  d.Label,
		Tokens: tokens,
	}
}
