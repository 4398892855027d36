package eval

import (
	"sort"

	"github.com/cognicore/bayard/pkg/bayard"
	"github.com/cognicore/bayard/pkg/bayard/corpus"
)

// Result aggregates held-out classification quality.
type Result struct {
	Total    int
	Correct  int
	Accuracy float64
	// Confusion maps true label -> predicted label -> count.
	Confusion map[string]map[string]int
}

// LabelStat is one row of the per-label breakdown.
type LabelStat struct {
	Label   string
	Total   int
	Correct int
	Recall  float64
}

// Evaluate classifies every document of a labeled held-out set and tallies
// how often the decision matches the true label. The classifier is only
// read, never trained.
func Evaluate(c *bayard.Classifier, docs []corpus.Document) (Result, error) {
	res := Result{
		Confusion: make(map[string]map[string]int),
	}

	for _, d := range docs {
		predicted, _, err := c.Classify(d.Tokens)
		if err != nil {
			return Result{}, err
		}

		res.Total++
		if predicted == d.Label {
			res.Correct++
		}
		row := res.Confusion[d.Label]
		if row == nil {
			row = make(map[string]int)
			res.Confusion[d.Label] = row
		}
		row[predicted]++
	}

	if res.Total > 0 {
		res.Accuracy = float64(res.Correct) / float64(res.Total)
	}
	return res, nil
}

// PerLabel returns the per-label breakdown in lexicographic label order.
func (r Result) PerLabel() []LabelStat {
	labels := make([]string, 0, len(r.Confusion))
	for label := range r.Confusion {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	stats := make([]LabelStat, 0, len(labels))
	for _, label := range labels {
		var total, correct int
		for predicted, count := range r.Confusion[label] {
			total += count
			if predicted == label {
				correct += count
			}
		}
		stat := LabelStat{Label: label, Total: total, Correct: correct}
		if total > 0 {
			stat.Recall = float64(correct) / float64(total)
		}
		stats = append(stats, stat)
	}
	return stats
}
