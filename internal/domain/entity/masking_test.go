package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCardNumber(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"4000123412341234", "**** **** **** 1234"},
		{"1234", "**** **** **** 1234"},
		{"123", "123"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, MaskCardNumber(tc.input))
		})
	}
}
