package card

import (
	"context"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
)

// GetOwnerCard returns one card of the owner
func (s *Service) GetOwnerCard(ctx context.Context, ownerID, cardID uint64) (*entity.Card, error) {
	return s.cards.GetByIDForOwner(ctx, cardID, ownerID)
}

// ListOwnerCards returns one page of the owner's cards
func (s *Service) ListOwnerCards(ctx context.Context, ownerID uint64, page entity.PageRequest) (entity.Page[*entity.Card], error) {
	return s.cards.ListByOwner(ctx, ownerID, s.normalize(page))
}

// ListAllOwnerCards returns every card of the owner
func (s *Service) ListAllOwnerCards(ctx context.Context, ownerID uint64) ([]*entity.Card, error) {
	return s.cards.ListAllByOwner(ctx, ownerID)
}

// ListAllCards returns every card ordered by id
func (s *Service) ListAllCards(ctx context.Context) ([]*entity.Card, error) {
	return s.cards.ListAll(ctx)
}

// FilterCards applies the filter. Unset criteria do not narrow the result.
func (s *Service) FilterCards(ctx context.Context, filter entity.CardFilter, page entity.PageRequest) (entity.Page[*entity.Card], error) {
	return s.cards.Filter(ctx, filter, s.normalize(page))
}

func (s *Service) normalize(page entity.PageRequest) entity.PageRequest {
	return page.Normalize(s.paging.DefaultSize, s.paging.MaxSize)
}
