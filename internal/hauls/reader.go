package hauls

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/stylehaulhq/stylehaul-backend/pkg/db/models"
	pkgerrors "github.com/stylehaulhq/stylehaul-backend/pkg/errors"
)

// ListSessionsForUser reconstructs every haul a user owns. Outfits, items,
// variants and products are each pulled in one batched fetch and reassembled
// in memory in link-position order.
func (r *Repository) ListSessionsForUser(ctx context.Context, userID uuid.UUID) ([]Haul, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	var sessions []models.StylingSession
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading styling sessions")
	}
	if len(sessions) == 0 {
		return []Haul{}, nil
	}

	sessionIDs := make([]uuid.UUID, 0, len(sessions))
	for _, s := range sessions {
		sessionIDs = append(sessionIDs, s.ID)
	}

	var links []models.SessionOutfit
	if err := r.db.WithContext(ctx).
		Where("session_id IN ?", sessionIDs).
		Order("position ASC").
		Find(&links).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading session outfit links")
	}

	outfitIDs := make([]uuid.UUID, 0, len(links))
	for _, link := range links {
		outfitIDs = append(outfitIDs, link.OutfitID)
	}

	outfitsByID, err := r.hydrateOutfits(ctx, outfitIDs)
	if err != nil {
		return nil, err
	}

	linksBySession := make(map[uuid.UUID][]models.SessionOutfit, len(sessions))
	for _, link := range links {
		linksBySession[link.SessionID] = append(linksBySession[link.SessionID], link)
	}

	hauls := make([]Haul, 0, len(sessions))
	for _, session := range sessions {
		haul := Haul{
			ID:            session.ID,
			UserID:        session.UserID,
			QuizData:      session.QuizData,
			SearchQueries: session.SearchQueries,
			Outfits:       []OutfitView{},
			Products:      []ProductView{},
			CreatedAt:     session.CreatedAt,
		}
		for _, link := range linksBySession[session.ID] {
			outfit, ok := outfitsByID[link.OutfitID]
			if !ok {
				continue
			}
			haul.Outfits = append(haul.Outfits, outfit)
			for _, item := range outfit.Items {
				haul.Products = append(haul.Products, item.Product)
			}
		}
		hauls = append(hauls, haul)
	}

	return hauls, nil
}

// GetOutfitByShareToken looks up one outfit by its capability token. No user
// or session context: the path serves anonymous callers.
func (r *Repository) GetOutfitByShareToken(ctx context.Context, token string) (*OutfitView, error) {
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "share token is required")
	}

	var outfit models.Outfit
	err := r.db.WithContext(ctx).
		Where("share_token = ?", token).
		First(&outfit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "outfit not found")
	}
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading outfit by share token")
	}

	outfitsByID, err := r.hydrateOutfits(ctx, []uuid.UUID{outfit.ID})
	if err != nil {
		return nil, err
	}
	view, ok := outfitsByID[outfit.ID]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "outfit not found")
	}
	return &view, nil
}

// hydrateOutfits is the single reconstruction path shared by both readers:
// batched fetches, position-ordered items and variants, and items whose main
// product cannot be resolved dropped rather than returned half-formed.
func (r *Repository) hydrateOutfits(ctx context.Context, outfitIDs []uuid.UUID) (map[uuid.UUID]OutfitView, error) {
	views := make(map[uuid.UUID]OutfitView, len(outfitIDs))
	if len(outfitIDs) == 0 {
		return views, nil
	}

	var outfits []models.Outfit
	if err := r.db.WithContext(ctx).
		Where("id IN ?", outfitIDs).
		Find(&outfits).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading outfits")
	}

	var items []models.OutfitItem
	if err := r.db.WithContext(ctx).
		Where("outfit_id IN ?", outfitIDs).
		Find(&items).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading outfit items")
	}

	itemIDs := make([]uuid.UUID, 0, len(items))
	productIDs := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		itemIDs = append(itemIDs, item.ID)
		if item.ProductID != nil {
			productIDs = append(productIDs, *item.ProductID)
		}
	}

	var variants []models.ProductVariant
	if len(itemIDs) > 0 {
		if err := r.db.WithContext(ctx).
			Where("outfit_item_id IN ?", itemIDs).
			Find(&variants).Error; err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading product variants")
		}
	}
	for _, variant := range variants {
		productIDs = append(productIDs, variant.ProductID)
	}

	productsByID, err := r.loadProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	variantsByItem := make(map[uuid.UUID][]models.ProductVariant)
	for _, variant := range variants {
		variantsByItem[variant.OutfitItemID] = append(variantsByItem[variant.OutfitItemID], variant)
	}

	itemsByOutfit := make(map[uuid.UUID][]models.OutfitItem)
	for _, item := range items {
		itemsByOutfit[item.OutfitID] = append(itemsByOutfit[item.OutfitID], item)
	}

	for _, outfit := range outfits {
		view := OutfitView{
			ID:           outfit.ID,
			Name:         outfit.Name,
			Occasion:     outfit.Occasion,
			StylistBlurb: outfit.StylistBlurb,
			TotalPrice:   outfit.TotalPrice,
			ShareToken:   outfit.ShareToken,
			Items:        []ItemView{},
			CreatedAt:    outfit.CreatedAt,
		}
		if outfit.PriceMin != nil && outfit.PriceMax != nil {
			view.PriceRange = &PriceRange{Min: *outfit.PriceMin, Max: *outfit.PriceMax}
		}

		outfitItems := itemsByOutfit[outfit.ID]
		sort.SliceStable(outfitItems, func(i, j int) bool {
			return outfitItems[i].Position < outfitItems[j].Position
		})

		for _, item := range outfitItems {
			product := productFor(productsByID, item.ProductID)
			if product == nil {
				// Dangling reference: drop the item entirely.
				continue
			}

			itemView := ItemView{
				ID:        item.ID,
				Category:  item.Category,
				Reasoning: item.Reasoning,
				IsMain:    item.IsMain,
				Position:  item.Position,
				Product:   *product,
				Variants:  []ProductView{},
			}

			itemVariants := variantsByItem[item.ID]
			sort.SliceStable(itemVariants, func(i, j int) bool {
				return itemVariants[i].Position < itemVariants[j].Position
			})
			for _, variant := range itemVariants {
				if v := productFor(productsByID, &variant.ProductID); v != nil {
					itemView.Variants = append(itemView.Variants, *v)
				}
			}

			view.Items = append(view.Items, itemView)
		}

		views[outfit.ID] = view
	}

	return views, nil
}

func (r *Repository) loadProducts(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]ProductView, error) {
	byID := make(map[uuid.UUID]ProductView, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}

	var rows []models.Product
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "loading products")
	}

	for _, row := range rows {
		byID[row.ID] = ProductView{
			ID:         row.ID,
			ExternalID: row.ExternalID,
			Name:       row.Name,
			Brand:      row.Brand,
			ImageURL:   row.ImageURL,
			Price:      row.Price,
			Currency:   row.Currency,
			BuyLink:    row.BuyLink,
		}
	}
	return byID, nil
}

// productFor normalizes a possibly-missing product reference to a scalar.
// Both read paths funnel through this so null handling cannot diverge.
func productFor(byID map[uuid.UUID]ProductView, id *uuid.UUID) *ProductView {
	if id == nil {
		return nil
	}
	product, ok := byID[*id]
	if !ok {
		return nil
	}
	return &product
}
