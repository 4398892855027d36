package store

import "context"

// Store persists a labeled training corpus. The trained model itself is
// never persisted; a model is always rebuilt by replaying the stored
// documents through the trainer.
type Store interface {
	Close() error

	// AddDocument appends one labeled document to the corpus.
	AddDocument(ctx context.Context, d Document) error

	// ListDocuments returns every stored document in insertion order,
	// tokens in their original order and multiplicity.
	ListDocuments(ctx context.Context) ([]Document, error)

	// CountDocuments returns the number of stored documents.
	CountDocuments(ctx context.Context) (int64, error)

	// ListLabels returns the distinct labels in lexicographic order.
	ListLabels(ctx context.Context) ([]string, error)
}

// Document is one stored labeled document.
type Document struct {
	ID     int64
	Label  string
	Tokens []string
}
