package main

import (
	"context"
	"flag"
	"log"

	"github.com/cognicore/bayard/pkg/bayard/corpus"
	"github.com/cognicore/bayard/pkg/bayard/store"
	"github.com/cognicore/bayard/pkg/bayard/store/sqlite"
)

func main() {
	var (
		corpusPath = flag.String("corpus", "", "Path to YAML corpus file (required)")
		dbPath     = flag.String("db", "", "Path to SQLite corpus database (required)")
	)
	flag.Parse()

	if *corpusPath == "" {
		log.Fatal("--corpus required")
	}
	if *dbPath == "" {
		log.Fatal("--db required")
	}

	ctx := context.Background()

	c, err := corpus.Load(*corpusPath)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	st, err := sqlite.OpenSQLite(ctx, *dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer st.Close()

	for _, d := range c.Documents {
		doc := store.Document{
			Label:  d.Label,
			Tokens: d.Tokens,
		}
		if err := st.AddDocument(ctx, doc); err != nil {
			log.Fatalf("add document: %v", err)
		}
	}

	total, err := st.CountDocuments(ctx)
	if err != nil {
		log.Fatalf("count documents: %v", err)
	}
	log.Printf("ingested %d documents (%d total in store)", len(c.Documents), total)
}
