package report

import (
	"crypto/rand"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/bayard/pkg/bayard/score"
)

// Builder constructs explainable prediction reports
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a new report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Report is the presentation view of one prediction: per-class summaries in
// canonical label order plus the arg-max decision.
type Report struct {
	ID       string
	Query    []string
	Alpha    float64
	Decision string
	Classes  []ClassSummary
}

// ClassSummary carries one class's trace for display.
type ClassSummary struct {
	Label string
	Trace score.Trace
}

// Build assembles a report from a prediction's scores and traces.
func (b *Builder) Build(query []string, alpha float64, scores map[string]float64, traces map[string]score.Trace) Report {
	r := Report{
		ID:      ulid.MustNew(ulid.Now(), b.entropy).String(),
		Query:   append([]string(nil), query...),
		Alpha:   alpha,
		Classes: make([]ClassSummary, 0, len(traces)),
	}

	labels := make([]string, 0, len(traces))
	for label := range traces {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		r.Classes = append(r.Classes, ClassSummary{
			Label: label,
			Trace: traces[label],
		})
	}

	if decision, ok := score.ArgMax(scores); ok {
		r.Decision = decision
	}
	return r
}

// Render writes the report as a fixed-point table. Probabilities and log
// values print at 4 decimal places, the unnormalized probability at 8;
// the underlying Trace values keep full precision.
func (r Report) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "report %s\nquery: %s (alpha=%g)\n\n",
		r.ID, strings.Join(r.Query, " "), r.Alpha); err != nil {
		return err
	}

	for _, c := range r.Classes {
		tr := c.Trace
		if _, err := fmt.Fprintf(w, "class %q\n", c.Label); err != nil {
			return err
		}
		fmt.Fprintf(w, "  prior            %.4f (log %.4f)\n", tr.Prior, tr.PriorLog)
		for _, ts := range tr.Tokens {
			fmt.Fprintf(w, "  p(%s|%s) = %.4f (count %d)\n", ts.Token, c.Label, ts.Smoothed, ts.Count)
		}
		fmt.Fprintf(w, "  log likelihood   %.4f\n", tr.LikelihoodLog)
		fmt.Fprintf(w, "  total log score  %.4f\n", tr.TotalLog)
		if _, err := fmt.Fprintf(w, "  unnormalized     %.8f\n\n", tr.Unnormalized); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "decision: %s\n", r.Decision)
	return err
}

// String renders the report to a string.
func (r Report) String() string {
	var sb strings.Builder
	_ = r.Render(&sb)
	return sb.String()
}
