package persistence

import (
	"strings"

	"github.com/govprop/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ValidateSortOrder normalizes a requested direction; anything but asc sorts descending
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField returns field when the whitelist allows it, otherwise fallback.
// The result is interpolated into ORDER BY so nothing outside allowed may pass.
func ValidateSortField(field string, allowed map[string]bool, fallback string) string {
	if f := strings.TrimSpace(field); allowed[f] {
		return f
	}
	return fallback
}

// AssetSortFields contains allowed sort fields for assets
var AssetSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"type":       true,
	"quantity":   true,
	"cost":       true,
}

// StockEntrySortFields contains allowed sort fields for ledger entries
var StockEntrySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"item_no":    true,
	"condition":  true,
	"reference":  true,
}

// DocumentSortFields contains allowed sort fields shared by lifecycle documents
var DocumentSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"status":     true,
	"office_id":  true,
}

// paginate counts the rows matched by query, then loads one sorted page of them into dest.
// The count runs on a cloned session so query keeps its conditions.
func paginate(query *gorm.DB, filter shared.Filter, allowed map[string]bool, dest any, preloads ...string) (int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, allowed, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	for _, p := range preloads {
		query = query.Preload(p)
	}
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	if err := query.Find(dest).Error; err != nil {
		return 0, err
	}
	return total, nil
}
