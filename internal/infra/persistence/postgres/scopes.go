package postgres

import (
	"tiffin/internal/domain/entity"

	"gorm.io/gorm"
)

// paginate applies LIMIT/OFFSET for a normalised page query.
func paginate(page entity.PageQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if page.Limit <= 0 {
			return db
		}

		return db.Offset(page.Offset()).Limit(page.Limit)
	}
}

// mapModels converts a slice of persistence models with the given mapper.
func mapModels[M, E any](models []*M, toDomain func(*M) *E) []*E {
	out := make([]*E, 0, len(models))
	for _, m := range models {
		out = append(out, toDomain(m))
	}

	return out
}

// likePattern builds a case-insensitive contains pattern for ILIKE.
func likePattern(s string) string {
	return "%" + s + "%"
}
