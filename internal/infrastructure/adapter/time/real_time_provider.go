package time

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
)

// RealTimeProvider implements the TimeProvider interface with the system clock,
// reporting times in the configured ledger location
type RealTimeProvider struct {
	location *time.Location
}

// NewRealTimeProvider creates a provider for the named IANA timezone. Empty means UTC.
func NewRealTimeProvider(timezone string) (*RealTimeProvider, error) {
	if timezone == "" {
		return &RealTimeProvider{location: time.UTC}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger timezone %q: %w", timezone, err)
	}
	return &RealTimeProvider{location: loc}, nil
}

// Now returns the current time in the ledger location
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().In(p.location)
}

// Since returns the time elapsed since t
func (p *RealTimeProvider) Since(t time.Time) core.Duration {
	return core.Duration(time.Since(t))
}

// WithTimeout returns a context that will be canceled after the specified timeout
func (p *RealTimeProvider) WithTimeout(ctx context.Context, timeout core.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// Location returns the ledger location
func (p *RealTimeProvider) Location() *time.Location {
	return p.location
}
