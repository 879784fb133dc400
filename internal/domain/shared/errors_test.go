package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError(t *testing.T) {
	t.Run("is matches by code", func(t *testing.T) {
		err := NewNotFoundError("Asset")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.False(t, errors.Is(err, ErrInvalidState))
		assert.Equal(t, "Asset not found", err.Error())
	})

	t.Run("wrapped errors keep their kind", func(t *testing.T) {
		err := fmt.Errorf("loading asset: %w", NewDomainError(CodeInsufficientStock, "not enough"))
		assert.Equal(t, KindBadRequest, KindOf(err))
		assert.True(t, errors.Is(err, ErrInsufficientStock))
	})

	t.Run("internal errors expose cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := NewInternalError(CodeDirectoryUnavailable, "directory lookup failed", cause)
		assert.Equal(t, KindInternal, KindOf(err))
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("plain errors are internal", func(t *testing.T) {
		assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
		assert.Equal(t, "InternalServerError", KindInternal.String())
	})
}

func TestFilter(t *testing.T) {
	f := NewFilter(0, 0, "", "", "paper")
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 20, f.PageSize)
	assert.Equal(t, "created_at", f.OrderBy)
	assert.Equal(t, "paper", f.Search)
	assert.NotNil(t, f.Filters)

	assert.Equal(t, 0, f.Offset())
	assert.Equal(t, 10, NewFilter(2, 10, "name", "asc", "").Offset())
}
