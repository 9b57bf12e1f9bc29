package helper

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashRuns     = regexp.MustCompile(`-+`)
)

// GenerateSlug lowercases, strips non-alphanumerics to dashes, trims dashes.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugInvalidChars.ReplaceAllString(s, "-")
	s = slugDashRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "item"
	}
	return s
}

// EnsureUniqueSlug appends -2, -3, ... until the slug is free in table.column.
// Soft-deleted rows keep their slug reserved.
func EnsureUniqueSlug(db *gorm.DB, table, column, base string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		var count int64
		if err := db.Table(table).
			Where(fmt.Sprintf("%s = ?", column), slug).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
