//go:build unit

package reservation_test

import (
	"strings"
	"testing"

	"reservation-service/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := reservation.NewReservation("Alice")
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.True(t, strings.HasPrefix(actual.ID(), reservation.IDPrefix))
		assert.Equal(t, "Alice", actual.CustomerName())
		assert.Equal(t, reservation.StatusPending, actual.Status())
		assert.Nil(t, actual.TableNumber())
		assert.True(t, actual.CreatedAt().IsZero())
	})

	t.Run("ids are unique per reservation", func(t *testing.T) {
		a, err := reservation.NewReservation("Alice")
		require.NoError(t, err)
		b, err := reservation.NewReservation("Alice")
		require.NoError(t, err)

		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("customer name is trimmed", func(t *testing.T) {
		actual, err := reservation.NewReservation("  Bob  ")
		require.NoError(t, err)
		assert.Equal(t, "Bob", actual.CustomerName())
	})

	t.Run("empty customer name", func(t *testing.T) {
		for _, name := range []string{"", "   "} {
			_, err := reservation.NewReservation(name)
			assert.ErrorIs(t, err, reservation.ErrEmptyCustomerName)
		}
	})
}

func TestNewConfirmedReservation(t *testing.T) {
	table := "5"
	status := "reserved"

	t.Run("accepts foreign id as given", func(t *testing.T) {
		actual, err := reservation.NewConfirmedReservation("reserv-abc", "Carol", &table, &status)
		require.NoError(t, err)

		assert.Equal(t, "reserv-abc", actual.ID())
		assert.Equal(t, reservation.StatusConfirmed, actual.Status())
		require.NotNil(t, actual.TableNumber())
		assert.Equal(t, "5", *actual.TableNumber())
		require.NotNil(t, actual.TableStatus())
		assert.Equal(t, "reserved", *actual.TableStatus())
	})

	t.Run("table info may be absent", func(t *testing.T) {
		actual, err := reservation.NewConfirmedReservation("reserv-abc", "Carol", nil, nil)
		require.NoError(t, err)
		assert.Nil(t, actual.TableNumber())
		assert.Nil(t, actual.TableStatus())
	})

	t.Run("empty id rejected", func(t *testing.T) {
		_, err := reservation.NewConfirmedReservation("  ", "Carol", nil, nil)
		assert.Error(t, err)
	})

	t.Run("empty customer name rejected", func(t *testing.T) {
		_, err := reservation.NewConfirmedReservation("reserv-abc", "", nil, nil)
		assert.ErrorIs(t, err, reservation.ErrEmptyCustomerName)
	})
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		name string
		from reservation.Status
		to   reservation.Status
		want bool
	}{
		{"pending to confirmed", reservation.StatusPending, reservation.StatusConfirmed, true},
		{"pending to cancelled", reservation.StatusPending, reservation.StatusCancelled, true},
		{"pending to pending", reservation.StatusPending, reservation.StatusPending, true},
		{"confirmed to cancelled", reservation.StatusConfirmed, reservation.StatusCancelled, true},
		{"confirmed to confirmed", reservation.StatusConfirmed, reservation.StatusConfirmed, true},
		{"confirmed to pending", reservation.StatusConfirmed, reservation.StatusPending, false},
		{"cancelled to pending", reservation.StatusCancelled, reservation.StatusPending, false},
		{"cancelled to confirmed", reservation.StatusCancelled, reservation.StatusConfirmed, false},
		{"cancelled to cancelled", reservation.StatusCancelled, reservation.StatusCancelled, false},
		{"pending to garbage", reservation.StatusPending, reservation.Status("done"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, reservation.StatusPending.IsValid())
	assert.True(t, reservation.StatusConfirmed.IsValid())
	assert.True(t, reservation.StatusCancelled.IsValid())
	assert.False(t, reservation.Status("approved").IsValid())
	assert.False(t, reservation.Status("").IsValid())

	assert.False(t, reservation.StatusPending.IsTerminal())
	assert.False(t, reservation.StatusConfirmed.IsTerminal())
	assert.True(t, reservation.StatusCancelled.IsTerminal())
}
