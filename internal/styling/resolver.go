package styling

import (
	"context"

	"go.uber.org/multierr"

	"github.com/stylehaulhq/stylehaul-backend/pkg/backoff"
	"github.com/stylehaulhq/stylehaul-backend/pkg/config"
	pkgerrors "github.com/stylehaulhq/stylehaul-backend/pkg/errors"
	"github.com/stylehaulhq/stylehaul-backend/pkg/logger"
	"github.com/stylehaulhq/stylehaul-backend/pkg/search"
)

// Resolver turns planned search queries into shoppable products.
type Resolver struct {
	search Searcher
	logg   *logger.Logger
	cfg    config.StylingConfig
}

// NewResolver builds a resolver on top of the search client.
func NewResolver(search Searcher, logg *logger.Logger, cfg config.StylingConfig) *Resolver {
	return &Resolver{
		search: search,
		logg:   logg,
		cfg:    cfg,
	}
}

// ResolveProducts issues one search per query sequentially; result order
// stays query-stable for the truncation step. A failing or empty query is
// logged and skipped, never fatal on its own. Zero products across the whole
// batch is a planning failure. Results are capped before any downstream
// reasoning is spent on them.
func (r *Resolver) ResolveProducts(ctx context.Context, queries []string, limits ResolveLimits) ([]ResolvedProduct, error) {
	if limits.PerQuery <= 0 {
		limits = DefaultLimits()
	}

	var queryErrs error
	products := make([]ResolvedProduct, 0, len(queries)*limits.PerQuery)

	for _, query := range queries {
		results, err := backoff.Run(ctx, r.logg, "product_search", r.cfg.RetryAttempts, r.cfg.RetryBaseDelay,
			func(ctx context.Context) ([]search.Result, error) {
				return r.search.Search(ctx, query, limits.PerQuery)
			})
		if err != nil {
			queryErrs = multierr.Append(queryErrs, err)
			r.logg.Warn(r.logg.WithField(ctx, "query", query), "search query failed, continuing batch")
			continue
		}
		if len(results) == 0 {
			r.logg.Warn(r.logg.WithField(ctx, "query", query), "search query returned no products")
			continue
		}

		for _, result := range results {
			products = append(products, ResolvedProduct{
				ExternalID: result.ID,
				Name:       result.Name,
				Brand:      result.Brand,
				ImageURL:   result.ImageURL,
				Price:      result.Price,
				Currency:   result.Currency,
				BuyLink:    result.URL,
				Query:      query,
				Category:   InferCategory(query, result.Name),
			})
		}
	}

	if len(products) == 0 {
		if queryErrs != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodePlanning, queryErrs, "no products resolved for any query")
		}
		return nil, pkgerrors.New(pkgerrors.CodePlanning, "no products resolved for any query")
	}

	if limits.MaxProducts > 0 && len(products) > limits.MaxProducts {
		products = products[:limits.MaxProducts]
	}

	return products, nil
}

// AttachExplanations fills in a per-product rationale via the planner's
// never-fail explain call. Only the retained, capped subset should be passed
// here; reasoning spend scales with len(products).
func (r *Resolver) AttachExplanations(ctx context.Context, planner *Planner, products []ResolvedProduct, profile StyleProfile) []ResolvedProduct {
	for i := range products {
		products[i].Explanation = planner.ExplainProductChoice(ctx, products[i].Name, products[i].Brand, profile)
	}
	return products
}
