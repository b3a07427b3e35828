package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stylehaulhq/stylehaul-backend/api/middleware"
	"github.com/stylehaulhq/stylehaul-backend/internal/hauls"
	"github.com/stylehaulhq/stylehaul-backend/internal/styling"
	"github.com/stylehaulhq/stylehaul-backend/pkg/enums"
	pkgerrors "github.com/stylehaulhq/stylehaul-backend/pkg/errors"
	"github.com/stylehaulhq/stylehaul-backend/pkg/logger"
)

type testHaulsService struct {
	generateFn func(ctx context.Context, userID uuid.UUID, profile styling.StyleProfile, refinement enums.Refinement) (*hauls.GenerateResult, error)
	saveFn     func(ctx context.Context, userID uuid.UUID, ideas []hauls.OutfitIdea, quizData []byte) (hauls.SaveResult, error)
	listFn     func(ctx context.Context, userID uuid.UUID) ([]hauls.Haul, error)
	deleteFn   func(ctx context.Context, userID, haulID uuid.UUID) error
}

func (s *testHaulsService) GenerateHaul(ctx context.Context, userID uuid.UUID, profile styling.StyleProfile, refinement enums.Refinement) (*hauls.GenerateResult, error) {
	if s.generateFn != nil {
		return s.generateFn(ctx, userID, profile, refinement)
	}
	return &hauls.GenerateResult{}, nil
}

func (s *testHaulsService) SaveOutfits(ctx context.Context, userID uuid.UUID, ideas []hauls.OutfitIdea, quizData []byte) (hauls.SaveResult, error) {
	if s.saveFn != nil {
		return s.saveFn(ctx, userID, ideas, quizData)
	}
	return hauls.SaveResult{}, nil
}

func (s *testHaulsService) ListHauls(ctx context.Context, userID uuid.UUID) ([]hauls.Haul, error) {
	if s.listFn != nil {
		return s.listFn(ctx, userID)
	}
	return nil, nil
}

func (s *testHaulsService) DeleteHaul(ctx context.Context, userID, haulID uuid.UUID) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, userID, haulID)
	}
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func authedRequest(method, target string, body io.Reader, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
}

func TestGenerateHaulPassesRefinement(t *testing.T) {
	userID := uuid.New()
	var gotRefinement enums.Refinement
	var gotProfile styling.StyleProfile
	svc := &testHaulsService{
		generateFn: func(ctx context.Context, uid uuid.UUID, profile styling.StyleProfile, refinement enums.Refinement) (*hauls.GenerateResult, error) {
			if uid != userID {
				t.Fatalf("unexpected user %s", uid)
			}
			gotRefinement = refinement
			gotProfile = profile
			return &hauls.GenerateResult{HaulID: uuid.New()}, nil
		},
	}

	body := `{"profile":{"styleVibe":"soft tailoring","budget":"$$"},"refinement":"more-casual"}`
	req := authedRequest(http.MethodPost, "/api/v1/hauls/generate", strings.NewReader(body), userID)
	resp := httptest.NewRecorder()
	GenerateHaul(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	if gotRefinement != enums.RefinementMoreCasual {
		t.Fatalf("expected more-casual refinement got %q", gotRefinement)
	}
	if gotProfile.StyleVibe != "soft tailoring" {
		t.Fatalf("unexpected profile vibe %q", gotProfile.StyleVibe)
	}
}

func TestGenerateHaulRejectsUnknownRefinement(t *testing.T) {
	called := false
	svc := &testHaulsService{
		generateFn: func(ctx context.Context, uid uuid.UUID, profile styling.StyleProfile, refinement enums.Refinement) (*hauls.GenerateResult, error) {
			called = true
			return nil, nil
		},
	}

	body := `{"profile":{"styleVibe":"soft tailoring"},"refinement":"extra-sparkle"}`
	req := authedRequest(http.MethodPost, "/api/v1/hauls/generate", strings.NewReader(body), uuid.New())
	resp := httptest.NewRecorder()
	GenerateHaul(svc, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if called {
		t.Fatal("service should not run on invalid refinement")
	}
}

func TestGenerateHaulMapsPlanningFailure(t *testing.T) {
	svc := &testHaulsService{
		generateFn: func(ctx context.Context, uid uuid.UUID, profile styling.StyleProfile, refinement enums.Refinement) (*hauls.GenerateResult, error) {
			return nil, pkgerrors.New(pkgerrors.CodePlanning, "no products resolved")
		},
	}

	body := `{"profile":{"styleVibe":"minimal"}}`
	req := authedRequest(http.MethodPost, "/api/v1/hauls/generate", strings.NewReader(body), uuid.New())
	resp := httptest.NewRecorder()
	GenerateHaul(svc, testLogger())(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 got %d", resp.Code)
	}
	if strings.Contains(resp.Body.String(), "no products resolved") {
		t.Fatalf("internal message leaked: %s", resp.Body.String())
	}
}

func TestGenerateHaulRequiresUserContext(t *testing.T) {
	body := `{"profile":{"styleVibe":"minimal"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/hauls/generate", strings.NewReader(body))
	resp := httptest.NewRecorder()
	GenerateHaul(&testHaulsService{}, testLogger())(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestSaveOutfitsRejectsEmptyList(t *testing.T) {
	req := authedRequest(http.MethodPost, "/api/v1/hauls", strings.NewReader(`{"outfits":[]}`), uuid.New())
	resp := httptest.NewRecorder()
	SaveOutfits(&testHaulsService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestSaveOutfitsReturnsCreated(t *testing.T) {
	sessionID := uuid.New()
	svc := &testHaulsService{
		saveFn: func(ctx context.Context, uid uuid.UUID, ideas []hauls.OutfitIdea, quizData []byte) (hauls.SaveResult, error) {
			if len(ideas) != 1 {
				t.Fatalf("expected one outfit got %d", len(ideas))
			}
			if ideas[0].Items[0].Product.ExternalID != "ext-1" {
				t.Fatalf("unexpected product %q", ideas[0].Items[0].Product.ExternalID)
			}
			return hauls.SaveResult{SessionID: sessionID}, nil
		},
	}

	body := `{"outfits":[{"name":"City Break","items":[{"category":"top","isMain":true,"product":{"externalId":"ext-1","name":"Boxy Tee","price":42}}]}]}`
	req := authedRequest(http.MethodPost, "/api/v1/hauls", strings.NewReader(body), uuid.New())
	resp := httptest.NewRecorder()
	SaveOutfits(svc, testLogger())(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data hauls.SaveResult `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.SessionID != sessionID {
		t.Fatalf("unexpected session id %s", envelope.Data.SessionID)
	}
}

func TestDeleteHaulRejectsBadID(t *testing.T) {
	req := authedRequest(http.MethodDelete, "/api/v1/hauls/not-a-uuid", nil, uuid.New())
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("haulId", "not-a-uuid")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	resp := httptest.NewRecorder()
	DeleteHaul(&testHaulsService{}, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestDeleteHaulMapsNotFound(t *testing.T) {
	haulID := uuid.New()
	svc := &testHaulsService{
		deleteFn: func(ctx context.Context, uid, hid uuid.UUID) error {
			if hid != haulID {
				t.Fatalf("unexpected haul %s", hid)
			}
			return pkgerrors.New(pkgerrors.CodeNotFound, "haul not found")
		},
	}

	req := authedRequest(http.MethodDelete, "/api/v1/hauls/"+haulID.String(), nil, uuid.New())
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("haulId", haulID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))

	resp := httptest.NewRecorder()
	DeleteHaul(svc, testLogger())(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
