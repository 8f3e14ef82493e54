package migration

import (
	"context"
	"strings"

	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

const transferRequestIndex = "idx_transfers_owner_request"

// PartialTransferRequestIndex replaces a full unique index on
// transfers(owner_id, request_id) with one restricted to rows that carry a request id
type PartialTransferRequestIndex struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPartialTransferRequestIndex creates a new migration instance
func NewPartialTransferRequestIndex(db *gorm.DB, logger coreport.Logger) *PartialTransferRequestIndex {
	return &PartialTransferRequestIndex{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *PartialTransferRequestIndex) Run(ctx context.Context) error {
	m.logger.Info("Ensuring partial unique index on transfer request ids", nil)

	db := m.db.WithContext(ctx)

	definition, err := m.indexDefinition(db)
	if err != nil {
		return err
	}

	if strings.Contains(strings.ToUpper(definition), " WHERE ") {
		m.logger.Info("Transfer request index already partial", nil)
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if definition != "" {
			if err := tx.Exec(`DROP INDEX IF EXISTS ` + transferRequestIndex).Error; err != nil {
				m.logger.Error("Failed to drop transfer request index", map[string]any{"error": err.Error()})
				return err
			}
		}

		if err := tx.Exec(`
			CREATE UNIQUE INDEX ` + transferRequestIndex + `
			ON transfers (owner_id, request_id)
			WHERE request_id IS NOT NULL
		`).Error; err != nil {
			m.logger.Error("Failed to create partial transfer request index", map[string]any{"error": err.Error()})
			return err
		}

		m.logger.Info("Successfully created partial transfer request index", nil)
		return nil
	})
}

// indexDefinition returns the current index definition, or "" when absent
func (m *PartialTransferRequestIndex) indexDefinition(db *gorm.DB) (string, error) {
	var rows []struct {
		IndexDef string `gorm:"column:indexdef"`
	}

	err := db.Raw(`
		SELECT indexdef
		FROM pg_indexes
		WHERE tablename = 'transfers' AND indexname = ?
	`, transferRequestIndex).Scan(&rows).Error
	if err != nil {
		m.logger.Error("Failed to read index definition", map[string]any{"error": err.Error()})
		return "", err
	}

	if len(rows) == 0 {
		return "", nil
	}
	return rows[0].IndexDef, nil
}
