package transfer

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/usecase"
)

// Engine moves funds between two cards of one owner.
//
// The checks made before locking are advisory: they reject obviously invalid
// requests without taking locks. MutatePair then locks both cards in ascending
// id order and repeats every check against the locked rows before debiting,
// crediting and recording the transfer in one atomic unit.
type Engine struct {
	cards        persistence.CardStore
	transfers    persistence.TransferRepository
	lifecycle    usecase.LifecycleUseCase
	idempotency  *IdempotencyHandler
	ids          coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	pageDefault  int
	pageMax      int
}

// NewEngine creates a new transfer Engine
func NewEngine(
	cards persistence.CardStore,
	transfers persistence.TransferRepository,
	lifecycle usecase.LifecycleUseCase,
	ids coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Engine {
	return &Engine{
		cards:        cards,
		transfers:    transfers,
		lifecycle:    lifecycle,
		idempotency:  NewIdempotencyHandler(transfers),
		ids:          ids,
		timeProvider: timeProvider,
		logger:       logger,
		pageDefault:  entity.DefaultPageSize,
		pageMax:      entity.MaxPageSize,
	}
}

// WithPaging sets the default and maximum page size of History
func (e *Engine) WithPaging(defaultSize, maxSize int) *Engine {
	if defaultSize > 0 {
		e.pageDefault = defaultSize
	}
	if maxSize > 0 {
		e.pageMax = maxSize
	}
	return e
}

// Transfer executes cmd. Cards of other owners are reported as not found.
func (e *Engine) Transfer(ctx context.Context, cmd entity.TransferCommand) (*usecase.TransferResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, e.reject(cmd, err)
	}
	if cmd.OwnerID == 0 {
		return nil, e.reject(cmd, errs.ErrInvalidRequest)
	}

	if previous, found, err := e.idempotency.CheckIdempotency(ctx, cmd); err != nil {
		return nil, e.reject(cmd, err)
	} else if found {
		return e.replay(ctx, cmd, previous)
	}

	now := e.timeProvider.Now()

	source, err := e.cards.GetByIDForOwner(ctx, cmd.SourceCardID, cmd.OwnerID)
	if err != nil {
		return nil, e.reject(cmd, err)
	}
	destination, err := e.cards.GetByIDForOwner(ctx, cmd.DestinationCardID, cmd.OwnerID)
	if err != nil {
		return nil, e.reject(cmd, err)
	}

	if err := e.lifecycle.AssertOperable(ctx, source, now); err != nil {
		return nil, e.reject(cmd, err)
	}
	if err := e.lifecycle.AssertOperable(ctx, destination, now); err != nil {
		return nil, e.reject(cmd, err)
	}

	if source.Balance() < cmd.Amount {
		return nil, e.reject(cmd, errs.NewInsufficientFundsError(source.ID, entity.AmountInCentsToString(cmd.Amount), source.GetBalance()))
	}

	var record *entity.Transfer
	src, dst, err := e.cards.MutatePair(ctx, cmd.SourceCardID, cmd.DestinationCardID,
		func(txCtx context.Context, first, second *entity.Card) error {
			rec, err := e.apply(cmd, first, second, now)
			if err != nil {
				return err
			}
			if err := e.transfers.Create(txCtx, rec); err != nil {
				return err
			}
			record = rec
			return nil
		})
	if err != nil {
		return e.handleLockedFailure(ctx, cmd, now, err)
	}

	e.logger.Info("Transfer completed", map[string]any{
		"transfer_id":         record.ID,
		"request_id":          cmd.RequestID,
		"owner_id":            cmd.OwnerID,
		"source_card_id":      cmd.SourceCardID,
		"destination_card_id": cmd.DestinationCardID,
		"amount":              record.GetAmount(),
		"source_balance":      src.GetBalance(),
		"destination_balance": dst.GetBalance(),
	})

	return &usecase.TransferResult{
		Transfer:    record,
		Source:      src,
		Destination: dst,
	}, nil
}

// apply runs under exclusive access to both cards
func (e *Engine) apply(cmd entity.TransferCommand, source, destination *entity.Card, now time.Time) (*entity.Transfer, error) {
	if !source.IsOwnedBy(cmd.OwnerID) || !destination.IsOwnedBy(cmd.OwnerID) {
		return nil, errs.ErrCardNotFound
	}
	if err := source.CheckOperable(now); err != nil {
		return nil, err
	}
	if err := destination.CheckOperable(now); err != nil {
		return nil, err
	}
	if err := source.Debit(cmd.Amount, now); err != nil {
		return nil, err
	}
	if err := destination.Credit(cmd.Amount, now); err != nil {
		return nil, err
	}

	return &entity.Transfer{
		ID:                e.ids.NewID(),
		RequestID:         cmd.RequestID,
		SourceCardID:      source.ID,
		DestinationCardID: destination.ID,
		OwnerID:           cmd.OwnerID,
		Amount:            cmd.Amount,
		CreatedAt:         now,
	}, nil
}

// handleLockedFailure runs after the pair lock is released
func (e *Engine) handleLockedFailure(ctx context.Context, cmd entity.TransferCommand, now time.Time, err error) (*usecase.TransferResult, error) {
	var invalidOp *errs.InvalidCardOperationError
	if errs.IsExpiredCardError(err) && errors.As(err, &invalidOp) {
		if _, expireErr := e.lifecycle.Expire(ctx, invalidOp.CardID, now); expireErr != nil {
			e.logger.Error("Lazy expiration failed", map[string]any{
				"card_id": invalidOp.CardID,
				"error":   expireErr.Error(),
			})
		}
	}

	// a concurrent request with the same id committed first
	if errors.Is(err, errs.ErrIdempotencyKeyReused) {
		previous, found, lookupErr := e.idempotency.CheckIdempotency(ctx, cmd)
		if lookupErr == nil && found {
			return e.replay(ctx, cmd, previous)
		}
		if lookupErr != nil {
			err = lookupErr
		}
	}

	return nil, e.reject(cmd, err)
}

func (e *Engine) replay(ctx context.Context, cmd entity.TransferCommand, previous *entity.Transfer) (*usecase.TransferResult, error) {
	source, err := e.cards.GetByIDForOwner(ctx, previous.SourceCardID, cmd.OwnerID)
	if err != nil {
		return nil, err
	}
	destination, err := e.cards.GetByIDForOwner(ctx, previous.DestinationCardID, cmd.OwnerID)
	if err != nil {
		return nil, err
	}

	e.logger.Info("Transfer replayed", map[string]any{
		"transfer_id": previous.ID,
		"request_id":  cmd.RequestID,
		"owner_id":    cmd.OwnerID,
	})

	return &usecase.TransferResult{
		Transfer:    previous,
		Source:      source,
		Destination: destination,
		Replayed:    true,
	}, nil
}

func (e *Engine) reject(cmd entity.TransferCommand, err error) error {
	fields := errs.LogFields(err)
	fields["owner_id"] = cmd.OwnerID
	fields["source_card_id"] = cmd.SourceCardID
	fields["destination_card_id"] = cmd.DestinationCardID
	fields["amount"] = entity.AmountInCentsToString(cmd.Amount)
	if cmd.RequestID != "" {
		fields["request_id"] = cmd.RequestID
	}
	e.logger.Warn("Transfer rejected", fields)
	return err
}

// History lists the owner's transfers, newest first
func (e *Engine) History(ctx context.Context, ownerID uint64, page entity.PageRequest) (entity.Page[*entity.Transfer], error) {
	return e.transfers.ListByOwner(ctx, ownerID, page.Normalize(e.pageDefault, e.pageMax))
}
