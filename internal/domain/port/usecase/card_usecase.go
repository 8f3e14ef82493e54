package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
)

// IssueCardCommand carries the input of card issuance
type IssueCardCommand struct {
	OwnerID        uint64
	Number         string
	HolderName     string
	ExpiryDate     time.Time
	InitialBalance int64 // cents
}

// CardUseCase defines card issuance, queries, status updates and deletion.
// Owner-scoped methods report cards of other owners as not found.
type CardUseCase interface {
	// IssueCard creates an ACTIVE card for cmd.OwnerID
	IssueCard(ctx context.Context, cmd IssueCardCommand) (*entity.Card, error)

	// IssueCardForUsername resolves the owner by username and issues the card
	IssueCardForUsername(ctx context.Context, username string, cmd IssueCardCommand) (*entity.Card, error)

	// GetOwnerCard returns one card of the owner
	GetOwnerCard(ctx context.Context, ownerID, cardID uint64) (*entity.Card, error)

	// ListOwnerCards returns one page of the owner's cards
	ListOwnerCards(ctx context.Context, ownerID uint64, page entity.PageRequest) (entity.Page[*entity.Card], error)

	// ListAllOwnerCards returns every card of the owner
	ListAllOwnerCards(ctx context.Context, ownerID uint64) ([]*entity.Card, error)

	// ListAllCards returns every card ordered by id
	ListAllCards(ctx context.Context) ([]*entity.Card, error)

	// FilterCards applies the filter; set filter.OwnerID to scope it to one owner
	FilterCards(ctx context.Context, filter entity.CardFilter, page entity.PageRequest) (entity.Page[*entity.Card], error)

	// SetOwnerCardStatus changes the status of one of the owner's cards
	SetOwnerCardStatus(ctx context.Context, ownerID, cardID uint64, status entity.CardStatus) (*entity.Card, error)

	// SetCardStatus changes the status of any card
	SetCardStatus(ctx context.Context, cardID uint64, status entity.CardStatus) (*entity.Card, error)

	// DeleteCard removes a card
	DeleteCard(ctx context.Context, cardID uint64) error

	// DeleteOwnerCard removes one of the owner's cards
	DeleteOwnerCard(ctx context.Context, ownerID, cardID uint64) error
}
