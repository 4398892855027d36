package report

import (
	"strings"
	"testing"

	"github.com/cognicore/bayard/pkg/bayard/corpus"
	"github.com/cognicore/bayard/pkg/bayard/model"
	"github.com/cognicore/bayard/pkg/bayard/score"
)

func sampleReport(t *testing.T) Report {
	t.Helper()
	m := model.New()
	docs, labels := corpus.Sample().Split()
	if err := m.Train(docs, labels); err != nil {
		t.Fatalf("Train: %v", err)
	}

	query := []string{"fast", "couple", "shoot", "fly"}
	scores, traces, err := score.Predict(m, query, 1.0)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	return New().Build(query, 1.0, scores, traces)
}

func TestBuild(t *testing.T) {
	r := sampleReport(t)

	if r.ID == "" {
		t.Error("report should have an ID")
	}
	if r.Decision != "action" {
		t.Errorf("decision = %q, want action", r.Decision)
	}
	if len(r.Classes) != 2 {
		t.Fatalf("got %d class summaries, want 2", len(r.Classes))
	}
	// Canonical label order.
	if r.Classes[0].Label != "action" || r.Classes[1].Label != "comedy" {
		t.Errorf("class order = [%s %s], want [action comedy]",
			r.Classes[0].Label, r.Classes[1].Label)
	}
}

func TestBuildUniqueIDs(t *testing.T) {
	b := New()
	r1 := b.Build(nil, 1.0, map[string]float64{}, map[string]score.Trace{})
	r2 := b.Build(nil, 1.0, map[string]float64{}, map[string]score.Trace{})
	if r1.ID == r2.ID {
		t.Error("consecutive reports should get distinct IDs")
	}
}

func TestRenderFixedPoint(t *testing.T) {
	out := sampleReport(t).String()

	for _, want := range []string{
		"prior            0.4000",
		"prior            0.6000",
		"total log score  -9.5217",
		"total log score  -8.6711",
		"p(shoot|comedy) = 0.0625 (count 0)",
		"p(shoot|action) = 0.2778 (count 4)",
		"decision: action",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q\n%s", want, out)
		}
	}
}
