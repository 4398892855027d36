package memstore

import (
	"context"
	"testing"

	"github.com/cognicore/bayard/pkg/bayard/store"
)

func TestAddAndList(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	docs := []store.Document{
		{Label: "comedy", Tokens: []string{"fun", "couple"}},
		{Label: "action", Tokens: []string{"fast", "shoot", "shoot"}},
	}
	for _, d := range docs {
		if err := s.AddDocument(ctx, d); err != nil {
			t.Fatalf("AddDocument: %v", err)
		}
	}

	got, err := s.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d documents, want 2", len(got))
	}
	if got[0].Label != "comedy" || got[1].Label != "action" {
		t.Errorf("insertion order not preserved: %v", got)
	}
	if got[0].ID == got[1].ID {
		t.Error("documents should get distinct IDs")
	}
	if len(got[1].Tokens) != 3 {
		t.Errorf("token multiplicity lost: %v", got[1].Tokens)
	}
}

func TestListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	if err := s.AddDocument(ctx, store.Document{Label: "a", Tokens: []string{"x", "y"}}); err != nil {
		t.Fatalf("AddDocument: %v", err)
	}

	first, _ := s.ListDocuments(ctx)
	first[0].Tokens[0] = "mutated"

	second, _ := s.ListDocuments(ctx)
	if second[0].Tokens[0] != "x" {
		t.Error("ListDocuments should return copies, not shared slices")
	}
}

func TestCountDocuments(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	n, err := s.CountDocuments(ctx)
	if err != nil || n != 0 {
		t.Fatalf("CountDocuments = (%d, %v), want (0, nil)", n, err)
	}

	_ = s.AddDocument(ctx, store.Document{Label: "a", Tokens: []string{"x"}})
	n, _ = s.CountDocuments(ctx)
	if n != 1 {
		t.Errorf("CountDocuments = %d, want 1", n)
	}
}

func TestListLabelsSorted(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	for _, label := range []string{"zebra", "apple", "zebra"} {
		if err := s.AddDocument(ctx, store.Document{Label: label, Tokens: []string{"t"}}); err != nil {
			t.Fatalf("AddDocument: %v", err)
		}
	}

	labels, err := s.ListLabels(ctx)
	if err != nil {
		t.Fatalf("ListLabels: %v", err)
	}
	if len(labels) != 2 || labels[0] != "apple" || labels[1] != "zebra" {
		t.Errorf("ListLabels = %v, want [apple zebra]", labels)
	}
}

func TestEmptyLabelRejected(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	if err := s.AddDocument(ctx, store.Document{Tokens: []string{"x"}}); err == nil {
		t.Fatal("expected error for empty label")
	}
}
