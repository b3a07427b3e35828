package styling

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stylehaulhq/stylehaul-backend/pkg/enums"
	pkgerrors "github.com/stylehaulhq/stylehaul-backend/pkg/errors"
	"github.com/stylehaulhq/stylehaul-backend/pkg/logger"
	"github.com/stylehaulhq/stylehaul-backend/pkg/search"
)

type stubSearcher struct {
	results map[string][]search.Result
	errs    map[string]error
	calls   []string
}

func (s *stubSearcher) Search(_ context.Context, query string, _ int) ([]search.Result, error) {
	s.calls = append(s.calls, query)
	if err, ok := s.errs[query]; ok {
		return nil, err
	}
	return s.results[query], nil
}

func newTestResolver(stub *stubSearcher) *Resolver {
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	return NewResolver(stub, logg, testStylingConfig())
}

func listing(id, name string) search.Result {
	return search.Result{ID: id, Name: name, Price: 50, Currency: "USD", URL: "https://shop/" + id}
}

func TestResolveProductsTagsQueryAndCategory(t *testing.T) {
	stub := &stubSearcher{results: map[string][]search.Result{
		"leather boots": {listing("ext-1", "Ankle Boot")},
		"silk blouse":   {listing("ext-2", "Silk Blouse")},
	}}
	resolver := newTestResolver(stub)

	products, err := resolver.ResolveProducts(context.Background(), []string{"leather boots", "silk blouse"}, DefaultLimits())
	if err != nil {
		t.Fatalf("ResolveProducts: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("got %d products", len(products))
	}
	if products[0].Query != "leather boots" || products[0].Category != enums.ApparelCategoryShoes {
		t.Errorf("first product = %+v", products[0])
	}
	if products[1].Category != enums.ApparelCategoryTop {
		t.Errorf("second product category = %q", products[1].Category)
	}
}

func TestResolveProductsToleratesSingleQueryFailure(t *testing.T) {
	stub := &stubSearcher{
		results: map[string][]search.Result{
			"silk blouse": {listing("ext-1", "Silk Blouse")},
		},
		errs: map[string]error{
			"leather boots": errors.New("search request failed: status 403: no"),
		},
	}
	resolver := newTestResolver(stub)

	products, err := resolver.ResolveProducts(context.Background(), []string{"leather boots", "silk blouse"}, DefaultLimits())
	if err != nil {
		t.Fatalf("ResolveProducts: %v", err)
	}
	if len(products) != 1 || products[0].ExternalID != "ext-1" {
		t.Errorf("products = %+v", products)
	}
}

func TestResolveProductsZeroTotalIsPlanningFailure(t *testing.T) {
	stub := &stubSearcher{
		errs: map[string]error{
			"a": errors.New("status 403: denied"),
			"b": errors.New("status 403: denied"),
		},
	}
	resolver := newTestResolver(stub)

	_, err := resolver.ResolveProducts(context.Background(), []string{"a", "b"}, DefaultLimits())
	if err == nil {
		t.Fatal("expected error")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodePlanning {
		t.Errorf("err = %v, want planning code", err)
	}
}

func TestResolveProductsCapsResults(t *testing.T) {
	many := make([]search.Result, 8)
	for i := range many {
		many[i] = listing("ext-a", "Boot")
	}
	stub := &stubSearcher{results: map[string][]search.Result{
		"q1": many,
		"q2": many,
	}}
	resolver := newTestResolver(stub)

	products, err := resolver.ResolveProducts(context.Background(), []string{"q1", "q2"}, ResolveLimits{PerQuery: 3, MaxProducts: 10})
	if err != nil {
		t.Fatalf("ResolveProducts: %v", err)
	}
	if len(products) != 10 {
		t.Errorf("got %d products, want 10", len(products))
	}
	// truncation keeps query-stable ordering: q1 results come first
	if products[0].Query != "q1" {
		t.Errorf("first product query = %q", products[0].Query)
	}
}

func TestResolveProductsOrderStable(t *testing.T) {
	stub := &stubSearcher{results: map[string][]search.Result{
		"q1": {listing("a", "A"), listing("b", "B")},
		"q2": {listing("c", "C")},
	}}
	resolver := newTestResolver(stub)

	products, err := resolver.ResolveProducts(context.Background(), []string{"q1", "q2"}, DefaultLimits())
	if err != nil {
		t.Fatalf("ResolveProducts: %v", err)
	}
	ids := []string{products[0].ExternalID, products[1].ExternalID, products[2].ExternalID}
	if ids[0] != "a" || ids[1] != "b" || ids[2] != "c" {
		t.Errorf("order = %v", ids)
	}
}

func TestAttachExplanations(t *testing.T) {
	stub := &stubSearcher{}
	resolver := newTestResolver(stub)
	planner := newTestPlanner(&stubCompleter{responses: []string{"Great with your vibe.", "Also great."}})

	products := []ResolvedProduct{
		{ExternalID: "a", Name: "Boot"},
		{ExternalID: "b", Name: "Blouse"},
	}
	got := resolver.AttachExplanations(context.Background(), planner, products, baseProfile())
	if got[0].Explanation != "Great with your vibe." || got[1].Explanation != "Also great." {
		t.Errorf("explanations = %q, %q", got[0].Explanation, got[1].Explanation)
	}
}
