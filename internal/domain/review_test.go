package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRating(t *testing.T) {
	testCases := []struct {
		rating  int
		isValid bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{5, true},
		{6, false},
		{-1, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.isValid, IsValidRating(tc.rating), "rating %d", tc.rating)
	}
}
