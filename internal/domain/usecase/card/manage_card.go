package card

import (
	"context"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
)

// SetOwnerCardStatus changes the status of one of the owner's cards
func (s *Service) SetOwnerCardStatus(ctx context.Context, ownerID, cardID uint64, status entity.CardStatus) (*entity.Card, error) {
	if _, err := s.cards.GetByIDForOwner(ctx, cardID, ownerID); err != nil {
		return nil, err
	}
	return s.lifecycle.SetStatus(ctx, cardID, status)
}

// SetCardStatus changes the status of any card
func (s *Service) SetCardStatus(ctx context.Context, cardID uint64, status entity.CardStatus) (*entity.Card, error) {
	return s.lifecycle.SetStatus(ctx, cardID, status)
}

// DeleteCard removes a card
func (s *Service) DeleteCard(ctx context.Context, cardID uint64) error {
	if err := s.cards.Delete(ctx, cardID); err != nil {
		return err
	}

	s.logger.Info("Card deleted", map[string]any{
		"card_id": cardID,
	})
	return nil
}

// DeleteOwnerCard removes one of the owner's cards
func (s *Service) DeleteOwnerCard(ctx context.Context, ownerID, cardID uint64) error {
	if _, err := s.cards.GetByIDForOwner(ctx, cardID, ownerID); err != nil {
		return err
	}
	return s.DeleteCard(ctx, cardID)
}
