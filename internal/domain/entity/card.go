package entity

import (
	"regexp"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
)

// CardStatus is the lifecycle state of a card
type CardStatus string

// Card statuses
const (
	CardStatusActive  CardStatus = "ACTIVE"
	CardStatusBlocked CardStatus = "BLOCKED"
	CardStatusExpired CardStatus = "EXPIRED"
)

// MaxHolderNameLength bounds the holder display name
const MaxHolderNameLength = 255

var cardNumberPattern = regexp.MustCompile(`^[0-9]{16}$`)

// ParseCardStatus converts a string to a CardStatus, case-insensitively
func ParseCardStatus(s string) (CardStatus, error) {
	switch CardStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case CardStatusActive:
		return CardStatusActive, nil
	case CardStatusBlocked:
		return CardStatusBlocked, nil
	case CardStatusExpired:
		return CardStatusExpired, nil
	default:
		return "", errs.ErrInvalidStatus
	}
}

// IsTerminal reports whether no transition out of the status is allowed
func (s CardStatus) IsTerminal() bool {
	return s == CardStatusExpired
}

// ValidateCardNumber checks the 16 digit format
func ValidateCardNumber(number string) error {
	if !cardNumberPattern.MatchString(number) {
		return errs.ErrInvalidCardNumber
	}
	return nil
}

// Card is an owned instrument holding a balance in minor units
type Card struct {
	ID         uint64
	Number     string // 16 digits, immutable after issuance
	HolderName string
	ExpiryDate time.Time // calendar date at UTC midnight
	Status     CardStatus
	OwnerID    uint64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	balance int64
}

// NewCard validates issuance input and builds an ACTIVE card
func NewCard(ownerID uint64, number, holderName string, expiryDate time.Time, initialBalance int64, now time.Time) (*Card, error) {
	if err := ValidateCardNumber(number); err != nil {
		return nil, err
	}

	holderName = strings.TrimSpace(holderName)
	if holderName == "" || len([]rune(holderName)) > MaxHolderNameLength {
		return nil, errs.ErrInvalidRequest
	}

	if initialBalance < 0 {
		return nil, errs.ErrNegativeAmount
	}

	expiry := DateOf(expiryDate)
	if !expiry.After(DateOf(now)) {
		return nil, errs.ErrInvalidExpiryDate
	}

	return &Card{
		Number:     number,
		HolderName: holderName,
		ExpiryDate: expiry,
		Status:     CardStatusActive,
		OwnerID:    ownerID,
		CreatedAt:  now,
		UpdatedAt:  now,
		balance:    initialBalance,
	}, nil
}

// RestoreCard rebuilds a card from storage without issuance checks
func RestoreCard(id, ownerID uint64, number, holderName string, expiryDate time.Time, status CardStatus, balance int64, createdAt, updatedAt time.Time) *Card {
	return &Card{
		ID:         id,
		Number:     number,
		HolderName: holderName,
		ExpiryDate: DateOf(expiryDate),
		Status:     status,
		OwnerID:    ownerID,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
		balance:    balance,
	}
}

// Balance returns the balance in cents
func (c *Card) Balance() int64 {
	return c.balance
}

// GetBalance returns the balance formatted with 2 decimal places
func (c *Card) GetBalance() string {
	return AmountInCentsToString(c.balance)
}

// MaskedNumber returns the display-safe card number
func (c *Card) MaskedNumber() string {
	return MaskCardNumber(c.Number)
}

// IsOwnedBy reports whether the card belongs to the given user
func (c *Card) IsOwnedBy(userID uint64) bool {
	return c.OwnerID == userID
}

// IsExpiredAt reports whether the expiry date is strictly before the date of now
func (c *Card) IsExpiredAt(now time.Time) bool {
	return c.ExpiryDate.Before(DateOf(now))
}

// CheckOperable fails unless the card is ACTIVE and not past its expiry date
func (c *Card) CheckOperable(now time.Time) error {
	if c.Status == CardStatusExpired || c.IsExpiredAt(now) {
		return errs.NewInvalidCardOperationError(c.ID, string(c.Status), errs.ReasonExpired)
	}
	if c.Status != CardStatusActive {
		return errs.NewInvalidCardOperationError(c.ID, string(c.Status), errs.ReasonNotActive)
	}
	return nil
}

// TransitionTo applies a status change. EXPIRED is terminal; entering EXPIRED is
// allowed only once the expiry date has passed.
func (c *Card) TransitionTo(status CardStatus, now time.Time) error {
	if c.Status.IsTerminal() {
		return errs.NewInvalidCardOperationError(c.ID, string(c.Status), errs.ReasonTerminalStatus)
	}

	switch status {
	case CardStatusActive, CardStatusBlocked:
	case CardStatusExpired:
		if !c.IsExpiredAt(now) {
			return errs.NewInvalidCardOperationError(c.ID, string(c.Status), errs.ReasonNotActive)
		}
	default:
		return errs.ErrInvalidStatus
	}

	c.Status = status
	c.UpdatedAt = now
	return nil
}

// Expire marks the card EXPIRED when its expiry date has passed.
// It reports whether the status changed.
func (c *Card) Expire(now time.Time) bool {
	if c.Status == CardStatusExpired || !c.IsExpiredAt(now) {
		return false
	}
	c.Status = CardStatusExpired
	c.UpdatedAt = now
	return true
}

// Debit subtracts amount, refusing to go below zero
func (c *Card) Debit(amount int64, now time.Time) error {
	if amount <= 0 {
		return errs.ErrNonPositiveAmount
	}
	if c.balance < amount {
		return errs.NewInsufficientFundsError(c.ID, AmountInCentsToString(amount), c.GetBalance())
	}
	c.balance -= amount
	c.UpdatedAt = now
	return nil
}

// Credit adds amount to the balance
func (c *Card) Credit(amount int64, now time.Time) error {
	if amount <= 0 {
		return errs.ErrNonPositiveAmount
	}
	balance, err := AddAmounts(c.balance, amount)
	if err != nil {
		return err
	}
	c.balance = balance
	c.UpdatedAt = now
	return nil
}

// Clone returns an independent copy
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

// DateOf truncates t to its calendar date at UTC midnight, keeping the date as seen in t's location
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
