package guard_test

import (
	"errors"
	"testing"

	"messdelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_given_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("AdvanceStatusCommand must be created via NewAdvanceStatusCommand")

		// When
		err := g.Validate(expected)

		// Then
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_falls_back_to_default_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	type proofUpload struct {
		slot  string
		guard guard.ConstructorGuard
	}
	errNotConstructed := errors.New("proofUpload must be created via newProofUpload")

	newProofUpload := func(slot string) (proofUpload, error) {
		if slot == "" {
			return proofUpload{}, errors.New("slot is required")
		}
		return proofUpload{slot: slot, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_validates", func(t *testing.T) {
		upload, err := newProofUpload("pickup_food")

		require.NoError(t, err)
		require.NoError(t, upload.guard.Validate(errNotConstructed))
	})

	t.Run("copies_keep_the_mark", func(t *testing.T) {
		upload, _ := newProofUpload("dropoff_food")
		copied := upload

		require.NoError(t, copied.guard.Validate(errNotConstructed))
	})

	t.Run("literal_does_not_validate", func(t *testing.T) {
		upload := proofUpload{slot: "pickup_food"}

		assert.Equal(t, errNotConstructed, upload.guard.Validate(errNotConstructed))
	})
}

func BenchmarkConstructorGuard_Validate(b *testing.B) {
	g := guard.NewConstructorGuard()
	err := errors.New("not constructed")
	b.ResetTimer()
	for range b.N {
		_ = g.Validate(err)
	}
}
