package model

import (
	"fmt"
	"sort"

	"github.com/cognicore/bayard/pkg/bayard/internalerr"
)

// Model accumulates the sufficient statistics of a multinomial naive Bayes
// classifier: per-label document counts, per-label token occurrence counts,
// and the global vocabulary.
//
// Training is purely a counting pass; no probabilities are computed until
// prediction time. Repeated Train calls accumulate — the total document
// count grows with every call, so sum(label doc counts) always equals
// TotalDocs. Callers that want to retrain from scratch call Reset first.
type Model struct {
	classDocs   map[string]int64
	tokenCounts map[string]map[string]int64
	classTotals map[string]int64
	vocab       map[string]struct{}
	totalDocs   int64
}

// New creates an empty model.
func New() *Model {
	return &Model{
		classDocs:   make(map[string]int64),
		tokenCounts: make(map[string]map[string]int64),
		classTotals: make(map[string]int64),
		vocab:       make(map[string]struct{}),
	}
}

// Train feeds labeled documents into the model. documents[i] is the ordered
// token sequence of the i-th document and labels[i] its label. The two
// slices must have equal length; on mismatch the model is left untouched
// and ErrInvalidInput is returned.
//
// Counts are commutative, so the final state does not depend on document
// order.
func (m *Model) Train(documents [][]string, labels []string) error {
	if len(documents) != len(labels) {
		return fmt.Errorf("%w: %d documents but %d labels",
			internalerr.ErrInvalidInput, len(documents), len(labels))
	}

	m.totalDocs += int64(len(documents))
	for i, doc := range documents {
		label := labels[i]
		m.classDocs[label]++
		counts := m.tokenCounts[label]
		if counts == nil {
			counts = make(map[string]int64)
			m.tokenCounts[label] = counts
		}
		for _, tok := range doc {
			counts[tok]++
			m.classTotals[label]++
			m.vocab[tok] = struct{}{}
		}
	}
	return nil
}

// Reset discards all accumulated counts.
func (m *Model) Reset() {
	m.classDocs = make(map[string]int64)
	m.tokenCounts = make(map[string]map[string]int64)
	m.classTotals = make(map[string]int64)
	m.vocab = make(map[string]struct{})
	m.totalDocs = 0
}

// Labels returns all trained labels in lexicographic order. Every operation
// whose output order is observable iterates labels in this order.
func (m *Model) Labels() []string {
	labels := make([]string, 0, len(m.classDocs))
	for label := range m.classDocs {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// DocCount returns the number of training documents seen for a label.
func (m *Model) DocCount(label string) int64 {
	return m.classDocs[label]
}

// TokenCount returns how often token occurred in documents of the given
// label, zero if never. The lookup never materializes missing entries.
func (m *Model) TokenCount(label, token string) int64 {
	counts, ok := m.tokenCounts[label]
	if !ok {
		return 0
	}
	return counts[token]
}

// ClassTokenTotal returns the total number of token occurrences recorded
// for a label (zero for a label trained only on empty documents).
func (m *Model) ClassTokenTotal(label string) int64 {
	return m.classTotals[label]
}

// VocabSize returns the number of distinct tokens seen across all labels.
func (m *Model) VocabSize() int {
	return len(m.vocab)
}

// InVocab reports whether token was seen during training.
func (m *Model) InVocab(token string) bool {
	_, ok := m.vocab[token]
	return ok
}

// TotalDocs returns the number of training documents seen so far.
func (m *Model) TotalDocs() int64 {
	return m.totalDocs
}
