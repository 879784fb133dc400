package stock

import (
	"errors"
	"testing"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocateItemNumbers(t *testing.T) {
	t.Run("first issuance starts at one", func(t *testing.T) {
		got, err := AllocateItemNumbers(10, 10, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "2", "3"}, got)
	})

	t.Run("second issuance continues", func(t *testing.T) {
		got, err := AllocateItemNumbers(10, 7, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"4", "5"}, got)
	})

	t.Run("two batches never share a number", func(t *testing.T) {
		first, err := AllocateItemNumbers(6, 6, 3)
		require.NoError(t, err)
		second, err := AllocateItemNumbers(6, 3, 3)
		require.NoError(t, err)

		seen := map[string]bool{}
		for _, n := range append(first, second...) {
			assert.False(t, seen[n], "item number %s reused", n)
			seen[n] = true
		}
		assert.Len(t, seen, 6)
	})

	t.Run("ceiling", func(t *testing.T) {
		_, err := AllocateItemNumbers(10, 7, 9)
		var de *shared.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, shared.CodeExceedsInitialQuantity, de.Code)
	})

	t.Run("zero requested", func(t *testing.T) {
		_, err := AllocateItemNumbers(10, 10, 0)
		assert.Error(t, err)
	})
}

func TestPlanIssuance(t *testing.T) {
	t.Run("without returns it matches fresh allocation", func(t *testing.T) {
		reused, fresh, err := PlanIssuance(10, 7, nil, 2)
		require.NoError(t, err)
		assert.Empty(t, reused)
		assert.Equal(t, []string{"4", "5"}, fresh)
	})

	t.Run("returned units go out before fresh numbers", func(t *testing.T) {
		// 3 issued, unit 2 came back: quantity 8
		reused, fresh, err := PlanIssuance(10, 8, []string{"2"}, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"2"}, reused)
		assert.Equal(t, []string{"4", "5"}, fresh)
	})

	t.Run("only returned units when they cover the request", func(t *testing.T) {
		reused, fresh, err := PlanIssuance(10, 9, []string{"1", "3"}, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"1"}, reused)
		assert.Empty(t, fresh)
	})

	t.Run("every unit out again", func(t *testing.T) {
		// all 4 issued, units 1 and 4 returned
		reused, fresh, err := PlanIssuance(4, 2, []string{"1", "4"}, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "4"}, reused)
		assert.Empty(t, fresh)
	})

	t.Run("zero requested", func(t *testing.T) {
		_, _, err := PlanIssuance(10, 10, []string{"1"}, 0)
		assert.Error(t, err)
	})
}

func TestCheckAvailability(t *testing.T) {
	assert.NoError(t, CheckAvailability(7, 7))
	err := CheckAvailability(7, 8)
	assert.ErrorIs(t, err, shared.ErrInsufficientStock)
}

func TestBatchItem_Movement(t *testing.T) {
	returned := BatchItem{AssetID: [16]byte{1}, Qty: 2, Condition: ConditionReturned}
	m, err := returned.Movement(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Ins)
	assert.Equal(t, 0, m.Outs)

	lost := BatchItem{AssetID: [16]byte{1}, Qty: 1, Condition: ConditionLost}
	m, err = lost.Movement(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Ins)
	assert.Equal(t, 1, m.Outs)

	_, err = BatchItem{AssetID: [16]byte{1}, Condition: ConditionReissued}.Movement(nil, nil)
	assert.Error(t, err)
}
