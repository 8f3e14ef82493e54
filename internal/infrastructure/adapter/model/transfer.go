package model

import (
	"time"
)

// Transfer is an immutable record of a completed card-to-card transfer.
// Card ids are plain values so history survives card deletion.
type Transfer struct {
	ID                string    `gorm:"primaryKey;size:36"`
	RequestID         *string   `gorm:"size:255;uniqueIndex:idx_transfers_owner_request,priority:2,where:request_id IS NOT NULL"`
	SourceCardID      uint64    `gorm:"not null"`
	DestinationCardID uint64    `gorm:"not null"`
	OwnerID           uint64    `gorm:"not null;index:idx_transfers_owner_created,priority:1;uniqueIndex:idx_transfers_owner_request,priority:1,where:request_id IS NOT NULL"`
	AmountInCents     int64     `gorm:"not null;check:chk_transfers_amount_positive,amount_in_cents > 0"`
	CreatedAt         time.Time `gorm:"not null;index:idx_transfers_owner_created,priority:2,sort:desc"`
}

// TableName specifies the table name for Transfer
func (Transfer) TableName() string {
	return "transfers"
}
