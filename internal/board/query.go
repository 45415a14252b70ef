package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/anzeg/najdeno/internal/model"
	"github.com/anzeg/najdeno/internal/store"
)

// Sort orders for the active list view.
const (
	SortNewest = "newest"
	SortOldest = "oldest"
)

// FilterAll selects every type or category.
const FilterAll = "all"

// Filters describes the list view: free-text search, type and category
// filters, and the sort order. Zero values mean "no filter, newest first".
type Filters struct {
	Text     string
	Type     string
	Category string
	Sort     string
}

// QueryActive computes the filtered, sorted view of the active
// collection. Type and category match exactly unless "all"; non-empty
// text matches case-insensitively against title, category, location and
// description (any field hit keeps the item). The sort is stable: items
// with equal creation times keep their newest-first list order. An empty
// result is an empty slice, never an error.
func (r *Repository) QueryActive(ctx context.Context, f Filters) ([]model.Item, error) {
	itemType := f.Type
	if itemType == "" || itemType == FilterAll {
		itemType = ""
	} else if !model.ValidItemType(itemType) {
		return nil, fmt.Errorf("%w: unknown type filter %q", model.ErrValidation, itemType)
	}

	category := f.Category
	if category == FilterAll {
		category = ""
	}

	switch f.Sort {
	case "", SortNewest, SortOldest:
	default:
		return nil, fmt.Errorf("%w: unknown sort order %q", model.ErrValidation, f.Sort)
	}

	items, err := store.QueryItems(ctx, r.DB, itemType, category, f.Sort == SortOldest)
	if err != nil {
		return nil, err
	}

	if text := strings.ToLower(strings.TrimSpace(f.Text)); text != "" {
		matched := items[:0]
		for _, item := range items {
			if matchesText(&item, text) {
				matched = append(matched, item)
			}
		}
		items = matched
	}

	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// matchesText reports whether any searchable field contains the
// already-lowercased needle.
func matchesText(item *model.Item, text string) bool {
	for _, field := range []string{item.Title, item.Category, item.Location, item.Description} {
		if strings.Contains(strings.ToLower(field), text) {
			return true
		}
	}
	return false
}
