package corpus

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/bayard/pkg/bayard/internalerr"
)

// Document is one labeled, pre-tokenized training or evaluation document.
type Document struct {
	Label  string   `yaml:"label"`
	Tokens []string `yaml:"tokens"`
}

// Corpus is a set of labeled documents.
type Corpus struct {
	Documents []Document `yaml:"documents"`
}

// Load reads a corpus from a YAML file.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}

	for i, d := range c.Documents {
		if d.Label == "" {
			return nil, fmt.Errorf("%w: document %d has no label",
				internalerr.ErrInvalidInput, i)
		}
	}
	return &c, nil
}

// Split returns the documents as parallel token/label slices, the shape
// the trainer consumes.
func (c *Corpus) Split() (documents [][]string, labels []string) {
	documents = make([][]string, len(c.Documents))
	labels = make([]string, len(c.Documents))
	for i, d := range c.Documents {
		documents[i] = d.Tokens
		labels[i] = d.Label
	}
	return documents, labels
}

// Sample returns the built-in movie-review demo corpus.
func Sample() *Corpus {
	return &Corpus{Documents: []Document{
		{Label: "comedy", Tokens: []string{"fun", "couple", "love", "love"}},
		{Label: "comedy", Tokens: []string{"couple", "fly", "fast", "fun", "fun"}},
		{Label: "action", Tokens: []string{"fast", "furious", "shoot"}},
		{Label: "action", Tokens: []string{"furious", "shoot", "shoot", "fun"}},
		{Label: "action", Tokens: []string{"fly", "fast", "shoot", "love"}},
	}}
}
