package stock

import (
	"errors"
	"testing"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestCondition_Apply(t *testing.T) {
	tests := []struct {
		name      string
		condition Condition
		quantity  int
		ins, outs int
		balance   *int
		want      int
		wantCode  string
	}{
		{name: "good condition adds ins", condition: ConditionGood, quantity: 5, ins: 3, want: 8},
		{name: "returned adds ins", condition: ConditionReturned, quantity: 7, ins: 1, want: 8},
		{name: "reissued subtracts outs", condition: ConditionReissued, quantity: 10, outs: 3, want: 7},
		{name: "reissued to zero", condition: ConditionReissued, quantity: 3, outs: 3, want: 0},
		{name: "reissued below zero", condition: ConditionReissued, quantity: 2, outs: 3, wantCode: shared.CodeInsufficientStock},
		{name: "transferred trusts balance", condition: ConditionTransferred, quantity: 4, ins: 1, outs: 1, balance: intPtr(9), want: 9},
		{name: "transferred without balance", condition: ConditionTransferred, quantity: 4, wantCode: shared.CodeInvalidInput},
		{name: "lost keeps quantity", condition: ConditionLost, quantity: 7, outs: 1, want: 7},
		{name: "destroyed keeps quantity", condition: ConditionDestroyed, quantity: 2, outs: 1, want: 2},
		{name: "unknown condition", condition: Condition("misplaced"), quantity: 2, wantCode: shared.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.condition.Apply(tt.quantity, tt.ins, tt.outs, tt.balance)
			if tt.wantCode != "" {
				var de *shared.DomainError
				require.True(t, errors.As(err, &de))
				assert.Equal(t, tt.wantCode, de.Code)
				assert.Equal(t, shared.KindBadRequest, de.Kind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCondition_Classification(t *testing.T) {
	assert.True(t, ConditionReissued.IsHeld())
	assert.True(t, ConditionTransferred.IsHeld())
	assert.False(t, ConditionReturned.IsHeld())

	for _, c := range []Condition{ConditionForDisposal, ConditionLost, ConditionStolen, ConditionDamaged, ConditionDestroyed} {
		assert.True(t, c.IsStatusOnly(), c)
	}
	assert.False(t, ConditionReissued.IsStatusOnly())
	assert.False(t, ConditionForDisposal.IsLoss())
	assert.True(t, ConditionStolen.IsLoss())

	_, err := ParseCondition("returned")
	assert.NoError(t, err)
	_, err = ParseCondition("RETURNED")
	assert.Error(t, err)
}
