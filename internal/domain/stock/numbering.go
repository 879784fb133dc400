package stock

import (
	"fmt"
	"strconv"

	"github.com/govprop/backend/internal/domain/shared"
)

// AllocateItemNumbers returns the unit numbers for the next issuance of requested units.
// Numbers continue from the units already issued, derived as initialQty - quantity.
func AllocateItemNumbers(initialQty, quantity, requested int) ([]string, error) {
	if requested < 1 {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Requested quantity must be at least 1")
	}
	issued := initialQty - quantity
	if issued < 0 {
		issued = 0
	}
	if issued+requested-1 > initialQty {
		return nil, shared.NewDomainError(shared.CodeExceedsInitialQuantity,
			fmt.Sprintf("Cannot issue %d units: %d of %d already issued", requested, issued, initialQty))
	}
	numbers := make([]string, requested)
	for i := 0; i < requested; i++ {
		numbers[i] = strconv.Itoa(issued + i + 1)
	}
	return numbers, nil
}

// PlanIssuance picks the units of an issuance. Units whose latest entry is returned go out
// again first, in the order given; fresh numbers cover the rest. Returned units still hold
// their numbers, so they are counted as issued when fresh numbers are allocated.
func PlanIssuance(initialQty, quantity int, returned []string, requested int) (reused, fresh []string, err error) {
	if requested < 1 {
		return nil, nil, shared.NewDomainError(shared.CodeInvalidInput, "Requested quantity must be at least 1")
	}
	n := min(len(returned), requested)
	reused = returned[:n:n]
	if requested == n {
		return reused, nil, nil
	}
	fresh, err = AllocateItemNumbers(initialQty, quantity-len(returned), requested-n)
	if err != nil {
		return nil, nil, err
	}
	return reused, fresh, nil
}

// CheckAvailability rejects an issuance larger than the quantity on hand
func CheckAvailability(quantity, requested int) error {
	if requested > quantity {
		return shared.NewDomainError(shared.CodeInsufficientStock,
			fmt.Sprintf("Insufficient stock: %d on hand, %d requested", quantity, requested))
	}
	return nil
}
