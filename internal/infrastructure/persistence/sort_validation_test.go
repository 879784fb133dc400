package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	for input, want := range map[string]string{
		"":                          "DESC",
		"asc":                       "ASC",
		"  ASC ":                    "ASC",
		"desc":                      "DESC",
		"ascending":                 "DESC",
		"ASC; DROP TABLE assets;--": "DESC",
	} {
		assert.Equal(t, want, ValidateSortOrder(input), "input %q", input)
	}
}

func TestValidateSortField(t *testing.T) {
	t.Run("whitelisted fields pass trimmed", func(t *testing.T) {
		assert.Equal(t, "cost", ValidateSortField(" cost ", AssetSortFields, "created_at"))
		assert.Equal(t, "item_no", ValidateSortField("item_no", StockEntrySortFields, "created_at"))
		assert.Equal(t, "status", ValidateSortField("status", DocumentSortFields, "created_at"))
	})

	t.Run("lookups are case sensitive", func(t *testing.T) {
		assert.Equal(t, "created_at", ValidateSortField("NAME", AssetSortFields, "created_at"))
	})

	t.Run("fields of other resources fall back", func(t *testing.T) {
		assert.Equal(t, "created_at", ValidateSortField("cost", DocumentSortFields, "created_at"))
		assert.Equal(t, "created_at", ValidateSortField("status", AssetSortFields, "created_at"))
	})

	for _, payload := range []string{
		"",
		"   ",
		"name; DROP TABLE assets;--",
		"name' OR '1'='1",
		"name UNION SELECT * FROM users",
		"cost, (SELECT password FROM users)",
		"CASE WHEN 1=1 THEN cost ELSE name END",
		"name\n; DROP TABLE assets",
	} {
		assert.Equal(t, "created_at", ValidateSortField(payload, AssetSortFields, "created_at"), "payload %q", payload)
	}
}

func TestSortWhitelistsAllowCreationOrder(t *testing.T) {
	for _, allowed := range []map[string]bool{AssetSortFields, StockEntrySortFields, DocumentSortFields} {
		assert.True(t, allowed["created_at"])
		assert.True(t, allowed["id"])
	}
}
