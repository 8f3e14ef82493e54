package card

import (
	"context"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/usecase"
)

// IssueCard creates an ACTIVE card for cmd.OwnerID
func (s *Service) IssueCard(ctx context.Context, cmd usecase.IssueCardCommand) (*entity.Card, error) {
	if _, err := s.users.GetByID(ctx, cmd.OwnerID); err != nil {
		return nil, err
	}

	card, err := entity.NewCard(cmd.OwnerID, cmd.Number, cmd.HolderName, cmd.ExpiryDate, cmd.InitialBalance, s.timeProvider.Now())
	if err != nil {
		s.logger.Warn("Card issuance rejected", map[string]any{
			"owner_id":   cmd.OwnerID,
			"error":      err.Error(),
			"error_code": errs.ErrorCode(err),
		})
		return nil, err
	}

	// both checks run independently; the unique index still catches races
	exists, err := s.cards.ExistsByNumber(ctx, card.Number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, s.duplicate(card, errs.DuplicateScopeGlobal)
	}

	exists, err = s.cards.ExistsByNumberForOwner(ctx, card.Number, card.OwnerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, s.duplicate(card, errs.DuplicateScopeOwner)
	}

	if err := s.cards.Create(ctx, card); err != nil {
		if errs.ErrorCode(err) == errs.CodeDuplicateCardNumber {
			return nil, s.duplicate(card, errs.DuplicateScopeGlobal)
		}
		s.logger.Error("Failed to create card", map[string]any{
			"owner_id": card.OwnerID,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Card issued", map[string]any{
		"card_id":         card.ID,
		"owner_id":        card.OwnerID,
		"card_number":     card.MaskedNumber(),
		"expiry_date":     card.ExpiryDate.Format("2006-01-02"),
		"initial_balance": card.GetBalance(),
	})
	return card, nil
}

// IssueCardForUsername resolves the owner by username and issues the card
func (s *Service) IssueCardForUsername(ctx context.Context, username string, cmd usecase.IssueCardCommand) (*entity.Card, error) {
	owner, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	cmd.OwnerID = owner.ID
	return s.IssueCard(ctx, cmd)
}

func (s *Service) duplicate(card *entity.Card, scope errs.DuplicateScope) error {
	err := errs.NewDuplicateCardNumberError(card.MaskedNumber(), card.OwnerID, scope)
	s.logger.Warn("Card issuance rejected", errs.LogFields(err))
	return err
}
