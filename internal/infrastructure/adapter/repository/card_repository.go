package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/card-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

// CardRepository implements persistence.CardStore using GORM. Mutations lock
// rows with SELECT ... FOR UPDATE; pairs are locked in ascending id order.
type CardRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
	lockTimeout     time.Duration
}

var _ persistence.CardStore = (*CardRepository)(nil)

// NewCardRepository creates a new CardRepository. A positive lockTimeout bounds
// how long a mutation waits for a row lock before failing with ErrCardLocked.
func NewCardRepository(db *gorm.DB, logger coreport.Logger, lockTimeout time.Duration) *CardRepository {
	return &CardRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
		lockTimeout:     lockTimeout,
	}
}

func cardToEntity(m *model.Card) *entity.Card {
	return entity.RestoreCard(
		m.ID,
		m.OwnerID,
		m.Number,
		m.HolderName,
		m.ExpiryDate,
		entity.CardStatus(m.Status),
		m.Balance,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func cardsToEntities(rows []model.Card) []*entity.Card {
	cards := make([]*entity.Card, 0, len(rows))
	for i := range rows {
		cards = append(cards, cardToEntity(&rows[i]))
	}
	return cards
}

func cardToModel(card *entity.Card) model.Card {
	return model.Card{
		ID:         card.ID,
		Number:     card.Number,
		HolderName: card.HolderName,
		ExpiryDate: entity.DateOf(card.ExpiryDate),
		Status:     string(card.Status),
		OwnerID:    card.OwnerID,
		Balance:    card.Balance(),
		CreatedAt:  card.CreatedAt,
		UpdatedAt:  card.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling. Errors that already
// carry a domain code pass through untouched.
func (r *CardRepository) handleDatabaseError(operation string, err error, cardID uint64) error {
	if errs.ErrorCode(err) != errs.CodeInternalServer {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrCardNotFound
	}

	if r.errorClassifier.IsLockError(err) {
		r.logger.Warn("Card is locked by another transaction", map[string]any{
			"card_id": cardID,
			"error":   err.Error(),
		})
		return errs.ErrCardLocked
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateCardNumber
	}

	if r.errorClassifier.IsCheckViolation(err) {
		return errs.ErrNegativeBalance
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"card_id": cardID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsConstraintError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConstraintViolation, err.Error())
	}
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create persists a new card and assigns its ID
func (r *CardRepository) Create(ctx context.Context, card *entity.Card) error {
	m := cardToModel(card)

	if err := getDbFromContext(ctx, r.db).Create(&m).Error; err != nil {
		return r.handleDatabaseError("creating card", err, 0)
	}

	card.ID = m.ID
	r.logger.Debug("Card row inserted", map[string]any{
		"card_id":  card.ID,
		"owner_id": card.OwnerID,
	})
	return nil
}

// GetByID retrieves a card by ID
func (r *CardRepository) GetByID(ctx context.Context, id uint64) (*entity.Card, error) {
	var m model.Card
	if err := getDbFromContext(ctx, r.db).First(&m, id).Error; err != nil {
		return nil, r.handleDatabaseError("getting card", err, id)
	}
	return cardToEntity(&m), nil
}

// GetByIDForOwner retrieves a card only when it belongs to ownerID
func (r *CardRepository) GetByIDForOwner(ctx context.Context, id, ownerID uint64) (*entity.Card, error) {
	var m model.Card
	err := getDbFromContext(ctx, r.db).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("getting owner card", err, id)
	}
	return cardToEntity(&m), nil
}

// ListByOwner returns one page of the owner's cards ordered by id
func (r *CardRepository) ListByOwner(ctx context.Context, ownerID uint64, page entity.PageRequest) (entity.Page[*entity.Card], error) {
	return r.Filter(ctx, entity.CardFilter{}.WithOwner(ownerID), page)
}

// ListAllByOwner returns every card of the owner ordered by id
func (r *CardRepository) ListAllByOwner(ctx context.Context, ownerID uint64) ([]*entity.Card, error) {
	var rows []model.Card
	err := getDbFromContext(ctx, r.db).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing owner cards", err, 0)
	}
	return cardsToEntities(rows), nil
}

// ListAll returns every card ordered by id
func (r *CardRepository) ListAll(ctx context.Context) ([]*entity.Card, error) {
	var rows []model.Card
	if err := getDbFromContext(ctx, r.db).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, r.handleDatabaseError("listing cards", err, 0)
	}
	return cardsToEntities(rows), nil
}

// Filter returns one page of cards matching every set criterion
func (r *CardRepository) Filter(ctx context.Context, filter entity.CardFilter, page entity.PageRequest) (entity.Page[*entity.Card], error) {
	page = normalizePage(page)
	db := getDbFromContext(ctx, r.db)

	var total int64
	if err := applyCardFilter(db.Model(&model.Card{}), filter).Count(&total).Error; err != nil {
		return entity.Page[*entity.Card]{}, r.handleDatabaseError("counting cards", err, 0)
	}

	var rows []model.Card
	err := applyCardFilter(db, filter).
		Order("id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).Error
	if err != nil {
		return entity.Page[*entity.Card]{}, r.handleDatabaseError("filtering cards", err, 0)
	}

	return entity.NewPage(cardsToEntities(rows), page, total), nil
}

func applyCardFilter(q *gorm.DB, f entity.CardFilter) *gorm.DB {
	if f.OwnerID != nil {
		q = q.Where("owner_id = ?", *f.OwnerID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}
	if f.ExpiryFrom != nil {
		q = q.Where("expiry_date >= ?", entity.DateOf(*f.ExpiryFrom).Format(dateLayout))
	}
	if f.ExpiryTo != nil {
		q = q.Where("expiry_date <= ?", entity.DateOf(*f.ExpiryTo).Format(dateLayout))
	}
	if f.MinBalance != nil {
		q = q.Where("balance >= ?", *f.MinBalance)
	}
	if f.MaxBalance != nil {
		q = q.Where("balance <= ?", *f.MaxBalance)
	}
	return q
}

// ExistsByNumber reports whether any card carries the number
func (r *CardRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	err := getDbFromContext(ctx, r.db).Model(&model.Card{}).
		Where("number = ?", number).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking card number", err, 0)
	}
	return count > 0, nil
}

// ExistsByNumberForOwner reports whether the owner already holds the number
func (r *CardRepository) ExistsByNumberForOwner(ctx context.Context, number string, ownerID uint64) (bool, error) {
	var count int64
	err := getDbFromContext(ctx, r.db).Model(&model.Card{}).
		Where("number = ? AND owner_id = ?", number, ownerID).
		Count(&count).Error
	if err != nil {
		return false, r.handleDatabaseError("checking owner card number", err, 0)
	}
	return count > 0, nil
}

// ListExpirableIDs returns ids of non-EXPIRED cards whose expiry date is before today
func (r *CardRepository) ListExpirableIDs(ctx context.Context, today time.Time) ([]uint64, error) {
	var ids []uint64
	err := getDbFromContext(ctx, r.db).Model(&model.Card{}).
		Where("expiry_date < ? AND status <> ?", entity.DateOf(today).Format(dateLayout), string(entity.CardStatusExpired)).
		Order("id ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, r.handleDatabaseError("listing expirable cards", err, 0)
	}
	return ids, nil
}

// Mutate locks the row, applies fn and writes the result in one transaction
func (r *CardRepository) Mutate(ctx context.Context, id uint64, fn persistence.CardMutation) (*entity.Card, error) {
	var result *entity.Card

	err := getDbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := r.setLockTimeout(tx); err != nil {
			return err
		}

		var m model.Card
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&m, id).Error; err != nil {
			return err
		}

		card := cardToEntity(&m)
		if err := fn(card); err != nil {
			return err
		}
		if card.Balance() < 0 {
			return errs.ErrNegativeBalance
		}

		if err := r.save(tx, card); err != nil {
			return err
		}
		result = card
		return nil
	})
	if err != nil {
		return nil, r.handleDatabaseError("mutating card", err, id)
	}

	return result.Clone(), nil
}

// MutatePair locks both rows with a single ordered SELECT ... FOR UPDATE so
// acquisition is always ascending by id, then applies fn and writes both
func (r *CardRepository) MutatePair(ctx context.Context, firstID, secondID uint64, fn persistence.CardPairMutation) (*entity.Card, *entity.Card, error) {
	if firstID == secondID {
		return nil, nil, errs.ErrSelfTransfer
	}

	var first, second *entity.Card

	err := getDbFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := r.setLockTimeout(tx); err != nil {
			return err
		}

		var rows []model.Card
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", []uint64{firstID, secondID}).
			Order("id ASC").
			Find(&rows).Error
		if err != nil {
			return err
		}

		byID := make(map[uint64]*entity.Card, len(rows))
		for i := range rows {
			byID[rows[i].ID] = cardToEntity(&rows[i])
		}
		a, b := byID[firstID], byID[secondID]
		if a == nil || b == nil {
			return errs.ErrCardNotFound
		}

		if err := fn(WithTx(ctx, tx), a, b); err != nil {
			return err
		}
		if a.Balance() < 0 || b.Balance() < 0 {
			return errs.ErrNegativeBalance
		}

		for _, card := range []*entity.Card{a, b} {
			if err := r.save(tx, card); err != nil {
				return err
			}
		}
		first, second = a, b
		return nil
	})
	if err != nil {
		return nil, nil, r.handleDatabaseError("mutating card pair", err, firstID)
	}

	return first.Clone(), second.Clone(), nil
}

func (r *CardRepository) save(tx *gorm.DB, card *entity.Card) error {
	result := tx.Model(&model.Card{}).
		Where("id = ?", card.ID).
		Updates(map[string]interface{}{
			"holder_name": card.HolderName,
			"status":      string(card.Status),
			"balance":     card.Balance(),
			"updated_at":  card.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrCardNotFound
	}
	return nil
}

// setLockTimeout bounds row lock waits for the rest of the transaction
func (r *CardRepository) setLockTimeout(tx *gorm.DB) error {
	if r.lockTimeout <= 0 {
		return nil
	}
	return tx.Exec(fmt.Sprintf("SET LOCAL lock_timeout = %d", r.lockTimeout.Milliseconds())).Error
}

// Delete removes a card
func (r *CardRepository) Delete(ctx context.Context, id uint64) error {
	result := getDbFromContext(ctx, r.db).Delete(&model.Card{}, id)
	if result.Error != nil {
		return r.handleDatabaseError("deleting card", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCardNotFound
	}
	return nil
}

// DeleteByOwner removes every card of the owner
func (r *CardRepository) DeleteByOwner(ctx context.Context, ownerID uint64) (int64, error) {
	result := getDbFromContext(ctx, r.db).Where("owner_id = ?", ownerID).Delete(&model.Card{})
	if result.Error != nil {
		return 0, r.handleDatabaseError("deleting owner cards", result.Error, 0)
	}
	return result.RowsAffected, nil
}

// Ping checks that the database is reachable
func (r *CardRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}
