package styling

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stylehaulhq/stylehaul-backend/pkg/config"
	pkgerrors "github.com/stylehaulhq/stylehaul-backend/pkg/errors"
	"github.com/stylehaulhq/stylehaul-backend/pkg/logger"
)

type stubCompleter struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (s *stubCompleter) Complete(_ context.Context, _, user string, _ int) (string, error) {
	idx := s.calls
	s.calls++
	s.prompts = append(s.prompts, user)
	var err error
	if idx < len(s.errs) {
		err = s.errs[idx]
	}
	var resp string
	if idx < len(s.responses) {
		resp = s.responses[idx]
	}
	return resp, err
}

func testStylingConfig() config.StylingConfig {
	return config.StylingConfig{
		MaxQueries:       4,
		ProductsPerQuery: 2,
		MaxProducts:      12,
		RetryAttempts:    2,
		RetryBaseDelay:   time.Millisecond,
	}
}

func newTestPlanner(stub *stubCompleter) *Planner {
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	return NewPlanner(stub, logg, testStylingConfig(), 1024)
}

func TestPlanSearchQueriesTruncatesToFour(t *testing.T) {
	stub := &stubCompleter{responses: []string{`["a","b","c","d","e","f"]`}}
	planner := newTestPlanner(stub)

	queries, err := planner.PlanSearchQueries(context.Background(), baseProfile())
	if err != nil {
		t.Fatalf("PlanSearchQueries: %v", err)
	}
	if len(queries) != 4 {
		t.Errorf("got %d queries, want 4", len(queries))
	}
	if queries[0] != "a" || queries[3] != "d" {
		t.Errorf("queries = %v", queries)
	}
}

func TestPlanSearchQueriesRetriesTransientFailure(t *testing.T) {
	stub := &stubCompleter{
		responses: []string{"", `["silk blouse"]`},
		errs:      []error{errors.New("transient timeout"), nil},
	}
	planner := newTestPlanner(stub)

	queries, err := planner.PlanSearchQueries(context.Background(), baseProfile())
	if err != nil {
		t.Fatalf("PlanSearchQueries: %v", err)
	}
	if stub.calls != 2 {
		t.Errorf("completer called %d times, want 2", stub.calls)
	}
	if len(queries) != 1 || queries[0] != "silk blouse" {
		t.Errorf("queries = %v", queries)
	}
}

func TestPlanSearchQueriesParseFailureIsPlanningError(t *testing.T) {
	stub := &stubCompleter{responses: []string{"I cannot answer that."}}
	planner := newTestPlanner(stub)

	_, err := planner.PlanSearchQueries(context.Background(), baseProfile())
	if err == nil {
		t.Fatal("expected error")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodePlanning {
		t.Errorf("err = %v, want planning code", err)
	}
}

func TestPlanOutfitsBackfillsBlurb(t *testing.T) {
	stub := &stubCompleter{responses: []string{
		`{"outfits":[
			{"name":"City Stroll","occasion":"weekend","items":[{"category":"top","searchQuery":"silk blouse","reasoning":"drapes well","isMain":true}]},
			{"name":"Empty One","occasion":"never","stylistBlurb":"nope","items":[]}
		]}`,
	}}
	planner := newTestPlanner(stub)

	outfits, err := planner.PlanOutfits(context.Background(), baseProfile())
	if err != nil {
		t.Fatalf("PlanOutfits: %v", err)
	}
	if len(outfits) != 1 {
		t.Fatalf("got %d outfits, want 1 (empty outfit dropped)", len(outfits))
	}
	if !strings.Contains(outfits[0].StylistBlurb, "City Stroll") {
		t.Errorf("backfilled blurb = %q", outfits[0].StylistBlurb)
	}
	if outfits[0].Items[0].SearchQuery != "silk blouse" {
		t.Errorf("item = %+v", outfits[0].Items[0])
	}
}

func TestPlanOutfitsFastFailsOnAuthError(t *testing.T) {
	stub := &stubCompleter{
		errs: []error{errors.New("completion request failed: status 401: bad key")},
	}
	planner := newTestPlanner(stub)

	_, err := planner.PlanOutfits(context.Background(), baseProfile())
	if err == nil {
		t.Fatal("expected error")
	}
	if stub.calls != 1 {
		t.Errorf("completer called %d times, want 1 (no retry on 401)", stub.calls)
	}
}

func TestExplainProductChoiceFallsBack(t *testing.T) {
	stub := &stubCompleter{errs: []error{errors.New("status 500")}}
	planner := newTestPlanner(stub)

	got := planner.ExplainProductChoice(context.Background(), "Ankle Boot", "Reiss", baseProfile())
	if !strings.Contains(got, "polished minimal") {
		t.Errorf("fallback should reference the style vibe, got %q", got)
	}
}

func TestExplainProductChoiceTrimsQuotes(t *testing.T) {
	stub := &stubCompleter{responses: []string{`"Sleek lines that flatter your frame."`}}
	planner := newTestPlanner(stub)

	got := planner.ExplainProductChoice(context.Background(), "Ankle Boot", "", baseProfile())
	if got != "Sleek lines that flatter your frame." {
		t.Errorf("explanation = %q", got)
	}
}
