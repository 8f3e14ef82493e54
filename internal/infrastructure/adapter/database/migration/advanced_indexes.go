package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes the models can't express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

type indexStatement struct {
	name string
	sql  string
}

var advancedIndexes = []indexStatement{
	{
		// the sweep only ever looks at cards that can still expire
		name: "idx_cards_expirable",
		sql: `CREATE INDEX IF NOT EXISTS idx_cards_expirable
			ON cards (expiry_date)
			WHERE status <> 'EXPIRED'`,
	},
	{
		name: "idx_cards_owner_status",
		sql: `CREATE INDEX IF NOT EXISTS idx_cards_owner_status
			ON cards (owner_id, status)`,
	},
	{
		name: "idx_transfers_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transfers_created_at_brin
			ON transfers USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
}

// CreateAdvancedIndexes creates the partial and BRIN indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	db := m.db.WithContext(ctx)
	for _, idx := range advancedIndexes {
		if err := db.Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}

// CreatePerformanceTweaks applies storage parameters. Failures are logged, not returned.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) error {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	db := m.db.WithContext(ctx)

	// balance updates rewrite card rows constantly; leave room for HOT updates
	if err := db.Exec(`ALTER TABLE cards SET (fillfactor = 85)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for cards table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := db.Exec(`ALTER TABLE transfers ALTER COLUMN owner_id SET STATISTICS 500`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for transfers.owner_id", map[string]any{
			"error": err.Error(),
		})
	}

	m.logger.Info("PostgreSQL performance tweaks applied", nil)
	return nil
}
