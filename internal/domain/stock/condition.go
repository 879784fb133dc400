package stock

import (
	"fmt"

	"github.com/govprop/backend/internal/domain/shared"
)

// Condition is the disposition label of a stock unit at the time of a ledger entry
type Condition string

const (
	ConditionGood        Condition = "good-condition"
	ConditionReissued    Condition = "reissued"
	ConditionReturned    Condition = "returned"
	ConditionTransferred Condition = "transferred"
	ConditionForDisposal Condition = "for-disposal"
	ConditionLost        Condition = "lost"
	ConditionStolen      Condition = "stolen"
	ConditionDamaged     Condition = "damaged"
	ConditionDestroyed   Condition = "destroyed"
)

// AllConditions lists every condition in lifecycle order
var AllConditions = []Condition{
	ConditionGood,
	ConditionReissued,
	ConditionReturned,
	ConditionTransferred,
	ConditionForDisposal,
	ConditionLost,
	ConditionStolen,
	ConditionDamaged,
	ConditionDestroyed,
}

// String returns the string representation of Condition
func (c Condition) String() string {
	return string(c)
}

// IsValid returns true if the condition is known
func (c Condition) IsValid() bool {
	for _, known := range AllConditions {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCondition converts a raw label into a Condition
func ParseCondition(s string) (Condition, error) {
	c := Condition(s)
	if !c.IsValid() {
		return "", shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Unknown stock condition %q", s))
	}
	return c, nil
}

// IsHeld reports whether a unit in this condition is in an office's custody
func (c Condition) IsHeld() bool {
	return c == ConditionReissued || c == ConditionTransferred
}

// IsStatusOnly reports whether entries with this condition leave the asset quantity untouched.
// These conditions describe units that already left the pool when they were reissued.
func (c Condition) IsStatusOnly() bool {
	switch c {
	case ConditionForDisposal, ConditionLost, ConditionStolen, ConditionDamaged, ConditionDestroyed:
		return true
	}
	return false
}

// IsLoss reports whether the condition can be reported on a loss document
func (c Condition) IsLoss() bool {
	switch c {
	case ConditionLost, ConditionStolen, ConditionDamaged, ConditionDestroyed:
		return true
	}
	return false
}

// Apply computes the asset quantity after a movement with this condition.
// balance is only consulted for transferred entries, where the caller supplies it.
func (c Condition) Apply(quantity, ins, outs int, balance *int) (int, error) {
	switch c {
	case ConditionGood, ConditionReturned:
		return quantity + ins, nil
	case ConditionReissued:
		next := quantity - outs
		if next < 0 {
			return 0, shared.NewDomainError(shared.CodeInsufficientStock,
				fmt.Sprintf("Insufficient stock: %d on hand, %d requested", quantity, outs))
		}
		return next, nil
	case ConditionTransferred:
		if balance == nil {
			return 0, shared.NewDomainError(shared.CodeInvalidInput, "Transferred movements require an explicit balance")
		}
		if *balance < 0 {
			return 0, shared.NewDomainError(shared.CodeInvalidInput, "Balance cannot be negative")
		}
		return *balance, nil
	case ConditionForDisposal, ConditionLost, ConditionStolen, ConditionDamaged, ConditionDestroyed:
		return quantity, nil
	}
	return 0, shared.NewDomainError(shared.CodeInvalidInput, fmt.Sprintf("Unknown stock condition %q", c))
}
