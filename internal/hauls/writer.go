package hauls

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stylehaulhq/stylehaul-backend/pkg/db/models"
	dbtypes "github.com/stylehaulhq/stylehaul-backend/pkg/db/types"
	"github.com/stylehaulhq/stylehaul-backend/pkg/enums"
	pkgerrors "github.com/stylehaulhq/stylehaul-backend/pkg/errors"
	"github.com/stylehaulhq/stylehaul-backend/pkg/logger"
)

// Repository encapsulates styling session persistence and reconstruction.
type Repository struct {
	db   *gorm.DB
	logg *logger.Logger
}

// NewRepository constructs a haul repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB, logg *logger.Logger) *Repository {
	return &Repository{db: db, logg: logg}
}

// CreateSession inserts one styling session recording the quiz blob and the
// planned search queries.
func (r *Repository) CreateSession(ctx context.Context, userID uuid.UUID, quizData []byte, searchQueries []string) (uuid.UUID, error) {
	if userID == uuid.Nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	session := models.StylingSession{
		ID:            uuid.New(),
		UserID:        userID,
		QuizData:      dbtypes.JSONB(quizData),
		SearchQueries: pq.StringArray(searchQueries),
	}
	if err := r.db.WithContext(ctx).Create(&session).Error; err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating styling session")
	}
	return session.ID, nil
}

// PersistOutfits writes a session and its outfit ideas to the relational
// schema. The sequence is deliberately not one atomic transaction: the
// session insert is the only hard guarantee, and individual item or variant
// failures are logged and skipped rather than rolled back.
func (r *Repository) PersistOutfits(ctx context.Context, userID uuid.UUID, ideas []OutfitIdea, quizData []byte) (SaveResult, error) {
	sessionID, err := r.CreateSession(ctx, userID, quizData, nil)
	if err != nil {
		return SaveResult{}, err
	}

	ctx = r.logg.WithHaulID(ctx, sessionID.String())
	outfitIDs := make([]uuid.UUID, 0, len(ideas))

	for outfitIdx, idea := range ideas {
		outfitID, err := r.persistOutfit(ctx, idea)
		if err != nil {
			return SaveResult{SessionID: sessionID, OutfitIDs: outfitIDs}, err
		}

		link := models.SessionOutfit{
			ID:        uuid.New(),
			SessionID: sessionID,
			OutfitID:  outfitID,
			Position:  outfitIdx,
		}
		if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
			r.logg.Error(r.logg.WithOutfitID(ctx, outfitID.String()), "linking outfit to session failed", err)
			continue
		}

		outfitIDs = append(outfitIDs, outfitID)
	}

	return SaveResult{SessionID: sessionID, OutfitIDs: outfitIDs}, nil
}

func (r *Repository) persistOutfit(ctx context.Context, idea OutfitIdea) (uuid.UUID, error) {
	// Resolve every product id up front; a main-product failure after the
	// lookup fallback aborts the whole save.
	mainIDs := make([]*uuid.UUID, len(idea.Items))
	variantIDs := make([][]uuid.UUID, len(idea.Items))

	totalPrice := decimal.Zero
	var allPrices []decimal.Decimal

	for i, item := range idea.Items {
		productID, err := r.upsertProduct(ctx, item.Product)
		if err != nil {
			return uuid.Nil, err
		}
		mainIDs[i] = &productID

		price := decimal.NewFromFloat(item.Product.Price)
		totalPrice = totalPrice.Add(price)
		allPrices = append(allPrices, price)

		for _, variant := range item.Variants {
			variantID, err := r.upsertProduct(ctx, variant)
			if err != nil {
				// Variants are best effort: log and drop this one.
				r.logg.Warn(r.logg.WithField(ctx, "external_id", variant.ExternalID), "variant product upsert failed, dropping variant")
				continue
			}
			variantIDs[i] = append(variantIDs[i], variantID)
			allPrices = append(allPrices, decimal.NewFromFloat(variant.Price))
		}
	}

	token, err := generateShareToken()
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting share token")
	}

	outfit := models.Outfit{
		ID:           uuid.New(),
		Name:         idea.Name,
		Occasion:     idea.Occasion,
		StylistBlurb: idea.StylistBlurb,
		TotalPrice:   totalPrice,
		ShareToken:   token,
	}
	if priceRange := rangeOf(allPrices); priceRange != nil {
		outfit.PriceMin = &priceRange.Min
		outfit.PriceMax = &priceRange.Max
	}
	if err := r.db.WithContext(ctx).Create(&outfit).Error; err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating outfit")
	}

	ctx = r.logg.WithOutfitID(ctx, outfit.ID.String())

	for i, item := range idea.Items {
		row := models.OutfitItem{
			ID:        uuid.New(),
			OutfitID:  outfit.ID,
			ProductID: mainIDs[i],
			Category:  item.Category,
			Reasoning: item.Reasoning,
			IsMain:    item.IsMain,
			Position:  i,
		}
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			// Skipping keeps the invariant: no variant rows without their item.
			r.logg.Error(r.logg.WithField(ctx, "position", i), "outfit item insert failed, skipping item", err)
			continue
		}

		for pos, variantID := range variantIDs[i] {
			variant := models.ProductVariant{
				ID:           uuid.New(),
				OutfitItemID: row.ID,
				ProductID:    variantID,
				Position:     pos,
			}
			if err := r.db.WithContext(ctx).Create(&variant).Error; err != nil {
				r.logg.Error(r.logg.WithField(ctx, "position", pos), "variant insert failed, skipping variant", err)
			}
		}
	}

	return outfit.ID, nil
}

// upsertProduct inserts or updates a product keyed by external id, then
// resolves the canonical row id. On upsert failure it falls back to a plain
// lookup before giving up.
func (r *Repository) upsertProduct(ctx context.Context, idea ProductIdea) (uuid.UUID, error) {
	row := models.Product{
		ID:         uuid.New(),
		ExternalID: idea.ExternalID,
		Name:       idea.Name,
		ImageURL:   idea.ImageURL,
		Price:      decimal.NewFromFloat(idea.Price),
		Currency:   enums.CurrencyOrDefault(idea.Currency),
		BuyLink:    idea.BuyLink,
	}
	if idea.Brand != "" {
		brand := idea.Brand
		row.Brand = &brand
	}

	upsertErr := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "brand", "image_url", "price", "currency", "buy_link",
		}),
	}).Create(&row).Error

	var existing models.Product
	lookupErr := r.db.WithContext(ctx).
		Where("external_id = ?", idea.ExternalID).
		First(&existing).Error
	if lookupErr == nil {
		return existing.ID, nil
	}

	if upsertErr != nil {
		r.logg.Error(r.logg.WithField(ctx, "external_id", idea.ExternalID), "product upsert failed", upsertErr)
	}
	return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeInternal, lookupErr,
		fmt.Sprintf("resolving product with external id %q", idea.ExternalID))
}

// DeleteSession removes a user's session; join rows cascade with it while
// shared outfits and products survive for their share links.
func (r *Repository) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", sessionID, userID).
		Delete(&models.StylingSession{})
	if result.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, "deleting styling session")
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "styling session not found")
	}
	return nil
}

func rangeOf(prices []decimal.Decimal) *PriceRange {
	if len(prices) == 0 {
		return nil
	}
	result := PriceRange{Min: prices[0], Max: prices[0]}
	for _, price := range prices[1:] {
		if price.LessThan(result.Min) {
			result.Min = price
		}
		if price.GreaterThan(result.Max) {
			result.Max = price
		}
	}
	return &result
}
