package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/stylehaulhq/stylehaul-backend/api/middleware"
	"github.com/stylehaulhq/stylehaul-backend/api/responses"
	"github.com/stylehaulhq/stylehaul-backend/api/validators"
	"github.com/stylehaulhq/stylehaul-backend/internal/hauls"
	"github.com/stylehaulhq/stylehaul-backend/internal/styling"
	"github.com/stylehaulhq/stylehaul-backend/pkg/enums"
	pkgerrors "github.com/stylehaulhq/stylehaul-backend/pkg/errors"
	"github.com/stylehaulhq/stylehaul-backend/pkg/logger"
)

// HaulsService is the surface the haul controllers depend on.
type HaulsService interface {
	GenerateHaul(ctx context.Context, userID uuid.UUID, profile styling.StyleProfile, refinement enums.Refinement) (*hauls.GenerateResult, error)
	SaveOutfits(ctx context.Context, userID uuid.UUID, ideas []hauls.OutfitIdea, quizData []byte) (hauls.SaveResult, error)
	ListHauls(ctx context.Context, userID uuid.UUID) ([]hauls.Haul, error)
	DeleteHaul(ctx context.Context, userID, haulID uuid.UUID) error
}

type generateHaulPayload struct {
	Profile    styling.StyleProfile `json:"profile" validate:"required"`
	Refinement string               `json:"refinement"`
}

type saveOutfitsPayload struct {
	Outfits  []hauls.OutfitIdea `json:"outfits" validate:"required,min=1,dive"`
	QuizData json.RawMessage    `json:"quizData"`
}

// GenerateHaul runs the full planning and product resolution pipeline.
func GenerateHaul(svc HaulsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "hauls service unavailable"))
			return
		}

		userID, err := requireUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload generateHaulPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var refinement enums.Refinement
		if payload.Refinement != "" {
			refinement, err = enums.ParseRefinement(payload.Refinement)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid refinement"))
				return
			}
		}

		result, err := svc.GenerateHaul(ctx, userID, payload.Profile, refinement)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// SaveOutfits persists assembled outfits under a new haul.
func SaveOutfits(svc HaulsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "hauls service unavailable"))
			return
		}

		userID, err := requireUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var payload saveOutfitsPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.SaveOutfits(ctx, userID, payload.Outfits, payload.QuizData)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// ListHauls returns the caller's hauls, newest first.
func ListHauls(svc HaulsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "hauls service unavailable"))
			return
		}

		userID, err := requireUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items, err := svc.ListHauls(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"hauls": items})
	}
}

// DeleteHaul removes one of the caller's hauls.
func DeleteHaul(svc HaulsService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "hauls service unavailable"))
			return
		}

		userID, err := requireUserID(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		haulID, err := uuid.Parse(chi.URLParam(r, "haulId"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid haul id"))
			return
		}

		if err := svc.DeleteHaul(ctx, userID, haulID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

func requireUserID(ctx context.Context) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(ctx)
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user id")
	}
	return userID, nil
}
