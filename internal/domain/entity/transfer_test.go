package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/card-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestTransferCommand_Validate(t *testing.T) {
	testCases := []struct {
		name     string
		cmd      TransferCommand
		expected error
	}{
		{"Valid", TransferCommand{SourceCardID: 1, DestinationCardID: 2, OwnerID: 9, Amount: 100}, nil},
		{"Zero amount", TransferCommand{SourceCardID: 1, DestinationCardID: 2, OwnerID: 9}, errs.ErrNonPositiveAmount},
		{"Negative amount", TransferCommand{SourceCardID: 1, DestinationCardID: 2, Amount: -1}, errs.ErrNonPositiveAmount},
		{"Missing card", TransferCommand{SourceCardID: 1, Amount: 100}, errs.ErrInvalidRequest},
		{"Same card", TransferCommand{SourceCardID: 3, DestinationCardID: 3, Amount: 100}, errs.ErrSelfTransfer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cmd.Validate()
			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestTransfer_Matches(t *testing.T) {
	record := &Transfer{SourceCardID: 1, DestinationCardID: 2, OwnerID: 9, Amount: 500}

	assert.True(t, record.Matches(TransferCommand{SourceCardID: 1, DestinationCardID: 2, OwnerID: 9, Amount: 500, RequestID: "r1"}))
	assert.False(t, record.Matches(TransferCommand{SourceCardID: 1, DestinationCardID: 2, OwnerID: 9, Amount: 501}))
	assert.Equal(t, "5.00", record.GetAmount())
}
