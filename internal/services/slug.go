package services

import (
	"context"
	"fmt"

	"santara/pkg/utils"
)

// Fallback slug for titles that fold to nothing.
const emptySlugFallback = "artikel"

// ensureUniqueSlug derives the slug for title and appends -2, -3, ... until
// exists reports it free. The check-then-use window is not transactional;
// the store's unique index is the backstop and surfaces as a conflict.
func ensureUniqueSlug(ctx context.Context, exists func(context.Context, string) (bool, error), title string) (string, error) {
	base := utils.Slugify(title)
	if base == "" {
		base = emptySlugFallback
	}

	candidate := base
	for i := 2; ; i++ {
		taken, err := exists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
