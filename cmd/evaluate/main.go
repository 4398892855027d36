package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/cognicore/bayard/pkg/bayard"
	"github.com/cognicore/bayard/pkg/bayard/corpus"
	"github.com/cognicore/bayard/pkg/bayard/eval"
)

type summary struct {
	Total     int                       `json:"total"`
	Correct   int                       `json:"correct"`
	Accuracy  float64                   `json:"accuracy"`
	PerLabel  []labelEntry              `json:"per_label"`
	Confusion map[string]map[string]int `json:"confusion"`
}

type labelEntry struct {
	Label   string  `json:"label"`
	Total   int     `json:"total"`
	Correct int     `json:"correct"`
	Recall  float64 `json:"recall"`
}

func main() {
	var (
		trainPath = flag.String("train", "", "Path to training corpus YAML (required)")
		testPath  = flag.String("test", "", "Path to held-out corpus YAML (required)")
		alpha     = flag.Float64("alpha", 1.0, "Smoothing constant")
	)
	flag.Parse()

	if *trainPath == "" {
		log.Fatal("--train required")
	}
	if *testPath == "" {
		log.Fatal("--test required")
	}

	trainSet, err := corpus.Load(*trainPath)
	if err != nil {
		log.Fatalf("load training corpus: %v", err)
	}
	testSet, err := corpus.Load(*testPath)
	if err != nil {
		log.Fatalf("load held-out corpus: %v", err)
	}

	classifier := bayard.New(bayard.Options{Alpha: *alpha})
	if err := classifier.TrainCorpus(trainSet.Documents); err != nil {
		log.Fatalf("train: %v", err)
	}

	result, err := eval.Evaluate(classifier, testSet.Documents)
	if err != nil {
		log.Fatalf("evaluate: %v", err)
	}

	report := summary{
		Total:     result.Total,
		Correct:   result.Correct,
		Accuracy:  result.Accuracy,
		Confusion: result.Confusion,
	}
	for _, stat := range result.PerLabel() {
		report.PerLabel = append(report.PerLabel, labelEntry{
			Label:   stat.Label,
			Total:   stat.Total,
			Correct: stat.Correct,
			Recall:  stat.Recall,
		})
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}
