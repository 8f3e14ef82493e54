package time

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/card-ledger/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRealTimeProvider(t *testing.T) {
	p, err := NewRealTimeProvider("")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, p.Now().Location())

	p, err = NewRealTimeProvider("Asia/Tehran")
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tehran", p.Location().String())

	_, err = NewRealTimeProvider("Mars/Olympus")
	assert.Error(t, err)
}

func TestRealTimeProvider_WithTimeout(t *testing.T) {
	p, err := NewRealTimeProvider("")
	require.NoError(t, err)

	ctx, cancel := p.WithTimeout(context.Background(), core.Millisecond)
	defer cancel()

	<-ctx.Done()
	assert.ErrorIs(t, ctx.Err(), context.DeadlineExceeded)
	assert.GreaterOrEqual(t, p.Since(time.Now().Add(-time.Second)).Std(), time.Second)
}
