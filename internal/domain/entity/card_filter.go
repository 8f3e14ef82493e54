package entity

import "time"

// CardFilter narrows card queries. Nil fields impose no constraint.
type CardFilter struct {
	Status     *CardStatus
	ExpiryFrom *time.Time // inclusive
	ExpiryTo   *time.Time // inclusive
	MinBalance *int64     // inclusive, cents
	MaxBalance *int64     // inclusive, cents
	OwnerID    *uint64
}

// WithOwner returns a copy of the filter scoped to one owner
func (f CardFilter) WithOwner(ownerID uint64) CardFilter {
	f.OwnerID = &ownerID
	return f
}

// Matches evaluates the filter against a card
func (f CardFilter) Matches(c *Card) bool {
	if f.Status != nil && c.Status != *f.Status {
		return false
	}
	if f.ExpiryFrom != nil && c.ExpiryDate.Before(DateOf(*f.ExpiryFrom)) {
		return false
	}
	if f.ExpiryTo != nil && c.ExpiryDate.After(DateOf(*f.ExpiryTo)) {
		return false
	}
	if f.MinBalance != nil && c.Balance() < *f.MinBalance {
		return false
	}
	if f.MaxBalance != nil && c.Balance() > *f.MaxBalance {
		return false
	}
	if f.OwnerID != nil && c.OwnerID != *f.OwnerID {
		return false
	}
	return true
}
