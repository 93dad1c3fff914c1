//go:build unit

package review_test

import (
	"strings"
	"testing"

	"reservation-service/internal/domain/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := review.NewReview("Alice", "Great food", 4)
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.True(t, strings.HasPrefix(actual.ID(), "b-"))
		assert.Equal(t, "Alice", actual.CustomerName())
		assert.Equal(t, "Great food", actual.Comment())
		assert.Equal(t, 4, actual.Rating().Value())
		assert.Equal(t, review.Source, actual.SourceTag())
	})

	t.Run("empty customer name", func(t *testing.T) {
		_, err := review.NewReview("   ", "ok", 3)
		assert.ErrorIs(t, err, review.ErrEmptyCustomerName)
	})

	t.Run("empty comment is allowed", func(t *testing.T) {
		actual, err := review.NewReview("Alice", "", 3)
		require.NoError(t, err)
		assert.Equal(t, "", actual.Comment())
	})
}

func TestRatingClamping(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"below minimum clamps to 1", 0, 1},
		{"negative clamps to 1", -10, 1},
		{"minimum passes through", 1, 1},
		{"mid-range passes through", 3, 3},
		{"maximum passes through", 5, 5},
		{"above maximum clamps to 5", 6, 5},
		{"far above maximum clamps to 5", 100, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, review.NewRating(tc.in).Value())
		})
	}
}
