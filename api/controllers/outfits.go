package controllers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/stylehaulhq/stylehaul-backend/api/responses"
	"github.com/stylehaulhq/stylehaul-backend/internal/hauls"
	pkgerrors "github.com/stylehaulhq/stylehaul-backend/pkg/errors"
	"github.com/stylehaulhq/stylehaul-backend/pkg/logger"
)

// OutfitSharing serves the anonymous share-link read path.
type OutfitSharing interface {
	GetOutfitByShareToken(ctx context.Context, token string) (*hauls.OutfitView, error)
}

// SharedOutfit resolves a share token to its outfit without authentication.
func SharedOutfit(svc OutfitSharing, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "outfits service unavailable"))
			return
		}

		token := strings.TrimSpace(chi.URLParam(r, "shareToken"))
		if token == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "share token required"))
			return
		}

		outfit, err := svc.GetOutfitByShareToken(ctx, token)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, outfit)
	}
}
