package hauls

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/stylehaulhq/stylehaul-backend/internal/styling"
	"github.com/stylehaulhq/stylehaul-backend/pkg/enums"
	pkgerrors "github.com/stylehaulhq/stylehaul-backend/pkg/errors"
	"github.com/stylehaulhq/stylehaul-backend/pkg/logger"
	"github.com/stylehaulhq/stylehaul-backend/pkg/metrics"
)

// Service drives the generation pipeline and the persistence surface.
type Service struct {
	repo     *Repository
	planner  *styling.Planner
	resolver *styling.Resolver
	logg     *logger.Logger
	metrics  *metrics.GenerationMetrics
}

// NewService wires the haul service.
func NewService(repo *Repository, planner *styling.Planner, resolver *styling.Resolver, logg *logger.Logger, gen *metrics.GenerationMetrics) *Service {
	return &Service{
		repo:     repo,
		planner:  planner,
		resolver: resolver,
		logg:     logg,
		metrics:  gen,
	}
}

// GenerateHaul plans search queries for the profile, resolves products and
// records the session. An optional refinement transforms the profile (or the
// result caps) before planning. Callers see either a full result or a generic
// retry-suggesting error, never which upstream call failed.
func (s *Service) GenerateHaul(ctx context.Context, userID uuid.UUID, profile styling.StyleProfile, refinement enums.Refinement) (*GenerateResult, error) {
	ctx = s.logg.WithUserID(ctx, userID.String())

	limits := styling.DefaultLimits()
	if refinement.IsValid() {
		profile, limits = styling.ApplyRefinement(profile, refinement)
	}

	start := time.Now()
	queries, err := s.planner.PlanSearchQueries(ctx, profile)
	if err != nil {
		s.metrics.IncFailure("plan")
		return nil, err
	}
	s.metrics.IncSuccess("plan")
	s.metrics.ObserveDuration("plan", time.Since(start))

	start = time.Now()
	products, err := s.resolver.ResolveProducts(ctx, queries, limits)
	if err != nil {
		s.metrics.IncFailure("resolve")
		return nil, err
	}
	products = s.resolver.AttachExplanations(ctx, s.planner, products, profile)
	s.metrics.IncSuccess("resolve")
	s.metrics.ObserveDuration("resolve", time.Since(start))
	s.metrics.ObserveProducts("resolve", len(products))

	quizBlob, err := json.Marshal(profile)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding quiz data")
	}

	sessionID, err := s.repo.CreateSession(ctx, userID, quizBlob, queries)
	if err != nil {
		return nil, err
	}

	listings := make([]ResolvedListing, 0, len(products))
	for _, p := range products {
		listings = append(listings, ResolvedListing{
			ExternalID:  p.ExternalID,
			Name:        p.Name,
			Brand:       p.Brand,
			ImageURL:    p.ImageURL,
			Price:       p.Price,
			Currency:    p.Currency,
			BuyLink:     p.BuyLink,
			Query:       p.Query,
			Category:    p.Category,
			Explanation: p.Explanation,
		})
	}

	s.logg.Info(s.logg.WithHaulID(ctx, sessionID.String()), "haul generated")
	return &GenerateResult{
		HaulID:   sessionID,
		Queries:  queries,
		Products: listings,
	}, nil
}

// SaveOutfits persists the assembled outfit ideas under a new session.
func (s *Service) SaveOutfits(ctx context.Context, userID uuid.UUID, ideas []OutfitIdea, quizData []byte) (SaveResult, error) {
	if len(ideas) == 0 {
		return SaveResult{}, pkgerrors.New(pkgerrors.CodeValidation, "at least one outfit is required")
	}
	ctx = s.logg.WithUserID(ctx, userID.String())
	return s.repo.PersistOutfits(ctx, userID, ideas, quizData)
}

// ListHauls returns every haul the user owns, newest first.
func (s *Service) ListHauls(ctx context.Context, userID uuid.UUID) ([]Haul, error) {
	return s.repo.ListSessionsForUser(ctx, userID)
}

// GetOutfitByShareToken serves the anonymous share-link read path.
func (s *Service) GetOutfitByShareToken(ctx context.Context, token string) (*OutfitView, error) {
	return s.repo.GetOutfitByShareToken(ctx, token)
}

// DeleteHaul removes a user's session; outfits stay reachable by share token.
func (s *Service) DeleteHaul(ctx context.Context, userID, haulID uuid.UUID) error {
	return s.repo.DeleteSession(ctx, userID, haulID)
}
