package counter

import (
	"context"
	"fmt"
	"time"
)

// DocumentType is the prefix and counter sequence of a numbered document
type DocumentType string

const (
	DocumentIssueSlip   DocumentType = "IS"
	DocumentReturn      DocumentType = "RET"
	DocumentLoss        DocumentType = "LOSS"
	DocumentWaste       DocumentType = "WASTE"
	DocumentMaintenance DocumentType = "MNT"
	DocumentRequisition DocumentType = "RIS"
	DocumentTransfer    DocumentType = "PTR"
)

// SequenceProperty numbers property registrations
const SequenceProperty = "property"

// Sequence returns the counter name backing the document type
func (t DocumentType) Sequence() string {
	return string(t)
}

// FormatNumber renders {type}-{yyyy}-{mm}-{dd}-{counter}
func FormatNumber(t DocumentType, at time.Time, value int64) string {
	return fmt.Sprintf("%s-%04d-%02d-%02d-%04d", t, at.Year(), int(at.Month()), at.Day(), value)
}

// Repository hands out per-sequence values. Increments join the caller's transaction,
// so a rolled-back document gives its number back.
type Repository interface {
	IncrementCounterByType(ctx context.Context, sequence string) (int64, error)
}

// NextNumber increments the document's sequence and formats the result
func NextNumber(ctx context.Context, repo Repository, t DocumentType, at time.Time) (string, error) {
	value, err := repo.IncrementCounterByType(ctx, t.Sequence())
	if err != nil {
		return "", err
	}
	return FormatNumber(t, at, value), nil
}
