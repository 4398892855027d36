package score

import (
	"fmt"
	"math"
	"sort"

	"github.com/cognicore/bayard/pkg/bayard/internalerr"
	"github.com/cognicore/bayard/pkg/bayard/model"
)

// DefaultAlpha is the standard Laplace smoothing constant.
const DefaultAlpha = 1.0

// TokenScore records how one query token contributed to a class score.
type TokenScore struct {
	Token string
	// Count is the raw occurrence count of the token in the class's
	// training documents (zero for tokens unseen in that class).
	Count int64
	// Smoothed is (Count + alpha) / (classTokenTotal + alpha*vocabSize).
	Smoothed float64
}

// Trace is the full audit trail of one class's score. It is pure output
// data owned by the caller.
type Trace struct {
	Label    string
	Prior    float64
	PriorLog float64
	// Tokens holds one record per query token, in query order.
	Tokens        []TokenScore
	LikelihoodLog float64
	TotalLog      float64
	// Unnormalized is exp(TotalLog). It is proportional to the posterior
	// but does not sum to 1 across classes; display only.
	Unnormalized float64
}

// Predict scores a tokenized document against every trained class.
//
// Returned scores map each label to its unnormalized log-posterior
// (log prior + sum of smoothed token log-likelihoods); the evidence term
// is identical across classes and omitted, so comparing scores is valid
// even though they are not probabilities. The trace map carries the
// intermediate quantities per class.
//
// Predict never mutates the model; concurrent calls against a trained
// model are safe.
func Predict(m *model.Model, tokens []string, alpha float64) (map[string]float64, map[string]Trace, error) {
	if alpha <= 0 {
		return nil, nil, fmt.Errorf("%w: smoothing alpha %v must be > 0",
			internalerr.ErrInvalidParameter, alpha)
	}
	if m.TotalDocs() == 0 || m.VocabSize() == 0 {
		return nil, nil, fmt.Errorf("%w: no training documents seen",
			internalerr.ErrUntrainedModel)
	}

	vocabSize := float64(m.VocabSize())
	totalDocs := float64(m.TotalDocs())

	scores := make(map[string]float64)
	traces := make(map[string]Trace)
	for _, label := range m.Labels() {
		prior := float64(m.DocCount(label)) / totalDocs
		tr := Trace{
			Label:    label,
			Prior:    prior,
			PriorLog: math.Log(prior),
			Tokens:   make([]TokenScore, 0, len(tokens)),
		}

		// Denominator is alpha*vocabSize even when the class has no
		// recorded tokens, so smoothing never divides by zero.
		denom := float64(m.ClassTokenTotal(label)) + alpha*vocabSize
		for _, tok := range tokens {
			count := m.TokenCount(label, tok)
			smoothed := (float64(count) + alpha) / denom
			tr.LikelihoodLog += math.Log(smoothed)
			tr.Tokens = append(tr.Tokens, TokenScore{
				Token:    tok,
				Count:    count,
				Smoothed: smoothed,
			})
		}

		tr.TotalLog = tr.PriorLog + tr.LikelihoodLog
		tr.Unnormalized = math.Exp(tr.TotalLog)
		scores[label] = tr.TotalLog
		traces[label] = tr
	}
	return scores, traces, nil
}

// ArgMax returns the label with the highest score. Ties break toward the
// lexicographically first label, matching the canonical class order used
// by Predict. ok is false for an empty score map.
func ArgMax(scores map[string]float64) (label string, ok bool) {
	labels := make([]string, 0, len(scores))
	for l := range scores {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	best := math.Inf(-1)
	for _, l := range labels {
		if scores[l] > best {
			best = scores[l]
			label = l
			ok = true
		}
	}
	return label, ok
}
