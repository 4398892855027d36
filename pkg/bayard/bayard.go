package bayard

import (
	"sync"

	"github.com/cognicore/bayard/pkg/bayard/corpus"
	"github.com/cognicore/bayard/pkg/bayard/model"
	"github.com/cognicore/bayard/pkg/bayard/score"
)

// Classifier is the main multinomial naive Bayes facade: a trainable model
// plus a default smoothing constant.
//
// Training takes the write lock and prediction the read lock, so a shared
// Classifier can serve concurrent predictions while training calls stay
// serialized and never interleave with reads mid-update.
type Classifier struct {
	mu    sync.RWMutex
	model *model.Model
	alpha float64
}

// Options configures a Classifier.
type Options struct {
	// Alpha is the additive smoothing constant applied at prediction time.
	// Zero means score.DefaultAlpha.
	Alpha float64
}

// New creates an empty Classifier.
func New(opts Options) *Classifier {
	alpha := opts.Alpha
	if alpha == 0 {
		alpha = score.DefaultAlpha
	}
	return &Classifier{
		model: model.New(),
		alpha: alpha,
	}
}

// Train accumulates labeled documents into the model.
func (c *Classifier) Train(documents [][]string, labels []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model.Train(documents, labels)
}

// TrainCorpus accumulates every document of a labeled corpus.
func (c *Classifier) TrainCorpus(docs []corpus.Document) error {
	documents := make([][]string, len(docs))
	labels := make([]string, len(docs))
	for i, d := range docs {
		documents[i] = d.Tokens
		labels[i] = d.Label
	}
	return c.Train(documents, labels)
}

// Reset discards all trained state.
func (c *Classifier) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.model.Reset()
}

// Predict scores a tokenized document against every trained class and
// returns the per-class log scores together with the full audit trace.
func (c *Classifier) Predict(tokens []string) (map[string]float64, map[string]score.Trace, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return score.Predict(c.model, tokens, c.alpha)
}

// Classify predicts and picks the best label. Ties break toward the
// lexicographically first label.
func (c *Classifier) Classify(tokens []string) (string, map[string]float64, error) {
	scores, _, err := c.Predict(tokens)
	if err != nil {
		return "", nil, err
	}
	label, _ := score.ArgMax(scores)
	return label, scores, nil
}

// Alpha returns the smoothing constant used for predictions.
func (c *Classifier) Alpha() float64 {
	return c.alpha
}
