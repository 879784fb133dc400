package stock

import (
	"fmt"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EnsureLatest rejects an entry that has been superseded by a newer one for the same unit.
// Consumable entries share a blank item number and are never superseded.
func EnsureLatest(entry, latest *Entry) error {
	if !entry.IsUnitTracked() || latest == nil {
		return nil
	}
	if entry.ID != latest.ID {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Unit %s has moved since this entry; its current condition is %s", entry.ItemNo, latest.Condition))
	}
	return nil
}

// EnsureHeldBy rejects an entry that does not place the unit with officeID
func EnsureHeldBy(entry *Entry, officeID uuid.UUID) error {
	if !entry.Condition.IsHeld() {
		return shared.NewDomainError(shared.CodeInvalidState,
			fmt.Sprintf("Stock %s is %s, not held by an office", entry.ID, entry.Condition))
	}
	if entry.OfficeID == nil || *entry.OfficeID != officeID {
		return shared.NewDomainError(shared.CodeForbidden,
			fmt.Sprintf("Stock %s is not held by this office", entry.ID))
	}
	return nil
}

// EnsureQuantity checks a requested quantity against what the entry moved.
// Unit-tracked entries always move exactly one unit.
func EnsureQuantity(entry *Entry, qty int) error {
	if qty < 1 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Quantity must be at least 1")
	}
	if entry.IsUnitTracked() && qty != 1 {
		return shared.NewDomainError(shared.CodeInvalidInput, "Unit-tracked stock moves one unit at a time")
	}
	if qty > entry.Quantity() {
		return shared.NewDomainError(shared.CodeInvalidInput,
			fmt.Sprintf("Quantity %d exceeds the %d units recorded on stock %s", qty, entry.Quantity(), entry.ID))
	}
	return nil
}
