package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// TransferRepository implements persistence.TransferRepository using GORM
type TransferRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.TransferRepository = (*TransferRepository)(nil)

// NewTransferRepository creates a new TransferRepository instance
func NewTransferRepository(db *gorm.DB, logger coreport.Logger) *TransferRepository {
	return &TransferRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func transferToModel(t *entity.Transfer) model.Transfer {
	var requestID *string
	if t.RequestID != "" {
		id := t.RequestID
		requestID = &id
	}
	return model.Transfer{
		ID:                t.ID,
		RequestID:         requestID,
		SourceCardID:      t.SourceCardID,
		DestinationCardID: t.DestinationCardID,
		OwnerID:           t.OwnerID,
		AmountInCents:     t.Amount,
		CreatedAt:         t.CreatedAt,
	}
}

func transferToEntity(m *model.Transfer) *entity.Transfer {
	t := &entity.Transfer{
		ID:                m.ID,
		SourceCardID:      m.SourceCardID,
		DestinationCardID: m.DestinationCardID,
		OwnerID:           m.OwnerID,
		Amount:            m.AmountInCents,
		CreatedAt:         m.CreatedAt,
	}
	if m.RequestID != nil {
		t.RequestID = *m.RequestID
	}
	return t
}

// Create saves a transfer record. With a transactional ctx it joins that transaction.
func (r *TransferRepository) Create(ctx context.Context, transfer *entity.Transfer) error {
	m := transferToModel(transfer)

	if err := getDbFromContext(ctx, r.db).Create(&m).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) && transfer.RequestID != "" {
			r.logger.Warn("Transfer request id already recorded", map[string]any{
				"owner_id":   transfer.OwnerID,
				"request_id": transfer.RequestID,
				"constraint": r.errorClassifier.ConstraintName(err),
			})
			return errs.ErrIdempotencyKeyReused
		}

		r.logger.Error("Database error when creating transfer", map[string]any{
			"transfer_id": transfer.ID,
			"error":       err.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// GetByRequestID finds the owner's transfer recorded under requestID
func (r *TransferRepository) GetByRequestID(ctx context.Context, ownerID uint64, requestID string) (*entity.Transfer, error) {
	var m model.Transfer
	err := getDbFromContext(ctx, r.db).
		Where("owner_id = ? AND request_id = ?", ownerID, requestID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return transferToEntity(&m), nil
}

// ListByOwner returns the owner's transfers, newest first
func (r *TransferRepository) ListByOwner(ctx context.Context, ownerID uint64, page entity.PageRequest) (entity.Page[*entity.Transfer], error) {
	page = normalizePage(page)
	db := getDbFromContext(ctx, r.db)

	var total int64
	if err := db.Model(&model.Transfer{}).Where("owner_id = ?", ownerID).Count(&total).Error; err != nil {
		return entity.Page[*entity.Transfer]{}, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	var rows []model.Transfer
	err := db.Where("owner_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).Error
	if err != nil {
		return entity.Page[*entity.Transfer]{}, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	items := make([]*entity.Transfer, 0, len(rows))
	for i := range rows {
		items = append(items, transferToEntity(&rows[i]))
	}
	return entity.NewPage(items, page, total), nil
}
