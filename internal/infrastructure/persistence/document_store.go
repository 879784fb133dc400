package persistence

import (
	"context"
	"errors"

	"github.com/govprop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// saveWithChildren upserts a document root, deletes child rows that are no longer attached
// and upserts the remaining children. fk names the child column pointing at the root.
func saveWithChildren[C any](db *gorm.DB, root any, rootID uuid.UUID, fk string, children []C, childIDs []uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(root).Error; err != nil {
			return err
		}

		stale := tx.Where(fk+" = ?", rootID)
		if len(childIDs) > 0 {
			stale = stale.Where("id NOT IN ?", childIDs)
		}
		var zero C
		if err := stale.Delete(&zero).Error; err != nil {
			return err
		}

		for i := range children {
			if err := tx.Save(&children[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// findDocument loads one document with its children preloaded
func findDocument[T any](ctx context.Context, db *gorm.DB, resource string, preload string, query string, args ...any) (*T, error) {
	var doc T
	q := db.WithContext(ctx)
	if preload != "" {
		q = q.Preload(preload)
	}
	if err := q.Where(query, args...).First(&doc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(resource)
		}
		return nil, err
	}
	return &doc, nil
}

// listDocuments pages through documents. Filters: "status", "office_id".
func listDocuments[T any](ctx context.Context, db *gorm.DB, preload string, filter shared.Filter) ([]T, int64, error) {
	var zero T
	query := db.WithContext(ctx).Model(&zero)
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}
	if officeID, ok := filter.Filters["office_id"]; ok {
		query = query.Where("office_id = ?", officeID)
	}
	var preloads []string
	if preload != "" {
		preloads = append(preloads, preload)
	}

	var docs []T
	total, err := paginate(query, filter, DocumentSortFields, &docs, preloads...)
	if err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}
