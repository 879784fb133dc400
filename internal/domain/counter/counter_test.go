package counter

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	values map[string]int64
	err    error
}

func (f *fakeRepo) IncrementCounterByType(_ context.Context, sequence string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.values[sequence]++
	return f.values[sequence], nil
}

func TestFormatNumber(t *testing.T) {
	at := time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "IS-2026-03-04-0012", FormatNumber(DocumentIssueSlip, at, 12))
	assert.Equal(t, "RIS-2026-03-04-12345", FormatNumber(DocumentRequisition, at, 12345))
}

func TestNextNumber(t *testing.T) {
	at := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{values: map[string]int64{}}

	first, err := NextNumber(context.Background(), repo, DocumentLoss, at)
	require.NoError(t, err)
	second, err := NextNumber(context.Background(), repo, DocumentLoss, at)
	require.NoError(t, err)
	other, err := NextNumber(context.Background(), repo, DocumentWaste, at)
	require.NoError(t, err)

	assert.Equal(t, "LOSS-2026-12-31-0001", first)
	assert.Equal(t, "LOSS-2026-12-31-0002", second)
	assert.Equal(t, "WASTE-2026-12-31-0001", other)

	_, err = NextNumber(context.Background(), &fakeRepo{err: errors.New("db down")}, DocumentLoss, at)
	assert.Error(t, err)
}
