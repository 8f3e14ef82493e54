package model

import (
	"time"
)

// Card represents the database model for cards. Balance is stored in cents.
type Card struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	Number     string    `gorm:"not null;size:16;uniqueIndex:idx_cards_number"`
	HolderName string    `gorm:"not null;size:255"`
	ExpiryDate time.Time `gorm:"not null;type:date;index:idx_cards_status_expiry,priority:2"`
	Status     string    `gorm:"not null;size:16;index:idx_cards_status_expiry,priority:1"`
	OwnerID    uint64    `gorm:"not null;index:idx_cards_owner_id"`
	Balance    int64     `gorm:"not null;default:0;check:chk_cards_balance_non_negative,balance >= 0"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for Card
func (Card) TableName() string {
	return "cards"
}
