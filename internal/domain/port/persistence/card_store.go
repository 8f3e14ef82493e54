package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
)

// CardMutation modifies a card in place while the store holds exclusive access to it.
// Returning an error aborts the mutation and nothing is persisted.
type CardMutation func(card *entity.Card) error

// CardPairMutation modifies two cards under exclusive access to both.
// The cards are passed in the order the caller named them. ctx is bound to the
// store's atomic unit, so repositories called with it join the same commit.
type CardPairMutation func(ctx context.Context, first, second *entity.Card) error

// CardStore owns card records and their balances. Mutate and MutatePair are the
// only paths by which a stored balance or status may change.
type CardStore interface {
	// Create persists a new card and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicateCardNumber: If the number is already stored
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, card *entity.Card) error

	// GetByID returns a snapshot of the card
	//
	// Possible errors:
	// - ErrCardNotFound: If no card has the id
	GetByID(ctx context.Context, id uint64) (*entity.Card, error)

	// GetByIDForOwner returns the card only when it belongs to ownerID.
	// A card of another owner is reported as ErrCardNotFound.
	GetByIDForOwner(ctx context.Context, id, ownerID uint64) (*entity.Card, error)

	// ListByOwner returns one page of the owner's cards ordered by id
	ListByOwner(ctx context.Context, ownerID uint64, page entity.PageRequest) (entity.Page[*entity.Card], error)

	// ListAllByOwner returns every card of the owner ordered by id
	ListAllByOwner(ctx context.Context, ownerID uint64) ([]*entity.Card, error)

	// ListAll returns every card ordered by id
	ListAll(ctx context.Context) ([]*entity.Card, error)

	// Filter returns one page of cards matching every set criterion, ordered by id
	Filter(ctx context.Context, filter entity.CardFilter, page entity.PageRequest) (entity.Page[*entity.Card], error)

	// ExistsByNumber reports whether any card carries the number
	ExistsByNumber(ctx context.Context, number string) (bool, error)

	// ExistsByNumberForOwner reports whether the owner already holds a card with the number
	ExistsByNumberForOwner(ctx context.Context, number string, ownerID uint64) (bool, error)

	// ListExpirableIDs returns ids of cards whose expiry date is before today
	// and whose status is not yet EXPIRED
	ListExpirableIDs(ctx context.Context, today time.Time) ([]uint64, error)

	// Mutate applies fn to the current record under exclusive access and persists
	// the result atomically. A result with a negative balance is rejected with
	// ErrNegativeBalance.
	//
	// Possible errors:
	// - ErrCardNotFound: If no card has the id
	// - any error returned by fn
	Mutate(ctx context.Context, id uint64, fn CardMutation) (*entity.Card, error)

	// MutatePair acquires exclusive access to both cards in ascending id order,
	// applies fn and persists both results as one atomic unit. fn and the results
	// keep the argument order, whatever the lock order was.
	MutatePair(ctx context.Context, firstID, secondID uint64, fn CardPairMutation) (*entity.Card, *entity.Card, error)

	// Delete removes the card
	//
	// Possible errors:
	// - ErrCardNotFound: If no card has the id
	Delete(ctx context.Context, id uint64) error

	// DeleteByOwner removes every card of the owner and returns how many were removed
	DeleteByOwner(ctx context.Context, ownerID uint64) (int64, error)

	// Ping checks that the backing storage is reachable
	Ping(ctx context.Context) error
}
