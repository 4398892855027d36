package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/cognicore/bayard/pkg/bayard"
	"github.com/cognicore/bayard/pkg/bayard/config"
	"github.com/cognicore/bayard/pkg/bayard/corpus"
	"github.com/cognicore/bayard/pkg/bayard/report"
	"github.com/cognicore/bayard/pkg/bayard/store/sqlite"
)

func main() {
	var (
		configPath = flag.String("config", "", "Optional: YAML settings file")
		corpusPath = flag.String("corpus", "", "Optional: YAML corpus to train on")
		dbPath     = flag.String("db", "", "Optional: SQLite corpus database to train on")
		alpha      = flag.Float64("alpha", 0, "Optional: smoothing constant (default 1.0)")
	)
	flag.Parse()

	query := flag.Args()
	if len(query) == 0 {
		log.Fatal("usage: classify [flags] token [token ...]")
	}

	settings := config.Default()
	if *configPath != "" {
		var err error
		settings, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
	}
	if *corpusPath != "" {
		settings.CorpusPath = *corpusPath
	}
	if *dbPath != "" {
		settings.DBPath = *dbPath
	}
	if *alpha > 0 {
		settings.Alpha = *alpha
	}

	classifier := bayard.New(bayard.Options{Alpha: settings.Alpha})
	if err := train(classifier, settings); err != nil {
		log.Fatalf("train: %v", err)
	}

	scores, traces, err := classifier.Predict(query)
	if err != nil {
		log.Fatalf("predict: %v", err)
	}

	rep := report.New().Build(query, settings.Alpha, scores, traces)
	if err := rep.Render(os.Stdout); err != nil {
		log.Fatalf("render report: %v", err)
	}
}

// train feeds the classifier from the configured source: SQLite database if
// given, else a YAML corpus, else the built-in sample corpus.
func train(classifier *bayard.Classifier, settings config.Settings) error {
	if settings.DBPath != "" {
		ctx := context.Background()
		st, err := sqlite.OpenSQLite(ctx, settings.DBPath)
		if err != nil {
			return err
		}
		defer st.Close()

		stored, err := st.ListDocuments(ctx)
		if err != nil {
			return err
		}
		docs := make([]corpus.Document, len(stored))
		for i, d := range stored {
			docs[i] = corpus.Document{Label: d.Label, Tokens: d.Tokens}
		}
		return classifier.TrainCorpus(docs)
	}

	if settings.CorpusPath != "" {
		c, err := corpus.Load(settings.CorpusPath)
		if err != nil {
			return err
		}
		return classifier.TrainCorpus(c.Documents)
	}

	log.Print("no corpus given, training on the built-in sample")
	return classifier.TrainCorpus(corpus.Sample().Documents)
}
