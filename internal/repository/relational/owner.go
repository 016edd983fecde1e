package relational

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/forumapi/forum-api/domain"
)

// checkOwner reads the author column of the row id in m's table and
// compares it with userID. With lock set the row is held FOR UPDATE
// until tx ends.
func checkOwner(tx *gorm.DB, m any, kind, id, userID string, lock bool) error {
	q := tx.Model(m).Where("id = ?", id)
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var owners []string
	if err := q.Pluck("user_id", &owners).Error; err != nil {
		return err
	}
	if len(owners) == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	if owners[0] != userID {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrForbidden)
	}
	return nil
}

// exists reports ErrNotFound when no row of m's table has the given id.
func exists(tx *gorm.DB, m any, kind, id string) error {
	var n int64
	if err := tx.Model(m).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	return nil
}
