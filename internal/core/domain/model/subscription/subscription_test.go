package subscription_test

import (
	"testing"
	"time"

	"messdelivery/internal/core/domain/model/kernel"
	"messdelivery/internal/core/domain/model/subscription"
	"messdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.April, 1, 8, 0, 0, 0, time.UTC)

func newPending(t *testing.T) *subscription.Subscription {
	t.Helper()
	s, err := subscription.NewSubscription(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewDate(2025, time.April, 1), kernel.NewDate(2025, time.April, 30),
		"sub/payment.png", now,
	)
	require.NoError(t, err)
	return s
}

func TestNewSubscription(t *testing.T) {
	s := newPending(t)

	assert.Equal(t, subscription.PendingOwnerConfirmation, s.Status())
	assert.False(t, s.IsActive())
	assert.Equal(t, "sub/payment.png", s.PaymentProof())
}

func TestNewSubscription_Validation(t *testing.T) {
	t.Run("end before start", func(t *testing.T) {
		_, err := subscription.NewSubscription(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewDate(2025, time.April, 10), kernel.NewDate(2025, time.April, 1),
			"p.png", now,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "endDate")
	})

	t.Run("payment proof required", func(t *testing.T) {
		_, err := subscription.NewSubscription(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			kernel.NewDate(2025, time.April, 1), kernel.NewDate(2025, time.April, 1),
			"", now,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestSubscription_Review(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		s := newPending(t)

		require.NoError(t, s.Approve("sub/owner_confirmation.jpg", now.Add(time.Hour)))

		assert.True(t, s.IsActive())
		assert.Equal(t, "sub/owner_confirmation.jpg", s.ConfirmationProof())
		assert.Equal(t, now.Add(time.Hour), s.UpdatedAt())
	})

	t.Run("reject", func(t *testing.T) {
		s := newPending(t)

		require.NoError(t, s.Reject(now))

		assert.Equal(t, subscription.Rejected, s.Status())
	})

	t.Run("cannot review twice", func(t *testing.T) {
		s := newPending(t)
		require.NoError(t, s.Reject(now))

		require.ErrorIs(t, s.Approve("", now), errs.ErrInvalidTransition)
		require.ErrorIs(t, s.Reject(now), errs.ErrInvalidTransition)
	})
}

func TestParseStatus(t *testing.T) {
	st, err := subscription.ParseStatus("active")

	require.NoError(t, err)
	assert.Equal(t, subscription.Active, st)

	_, err = subscription.ParseStatus("paused")
	require.Error(t, err)
}
