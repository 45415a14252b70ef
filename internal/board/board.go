// Package board implements the lost & found board's item lifecycle: a
// single repository owns the active list, the claimed inventory and the
// deleted bin, and every transition between them. An item belongs to
// exactly one collection at a time; each transition is a single statement
// against the backing store, so a move either fully happens or not at all.
package board

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anzeg/najdeno/internal/imaging"
	"github.com/anzeg/najdeno/internal/model"
	"github.com/anzeg/najdeno/internal/store"
)

// Repository owns the three item collections and their storage handle.
type Repository struct {
	DB *sql.DB
}

// New creates a repository over an opened database.
func New(db *sql.DB) *Repository {
	return &Repository{DB: db}
}

// Draft is the creation input for a new report. ImageData optionally
// carries the photo as a base64 data URL; a payload that cannot be
// processed is dropped, never a reason to reject the report.
type Draft struct {
	Type        string `json:"type"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ImageData   string `json:"image_data"`
}

// Create validates the draft, applies defaults and inserts the new item
// into the active collection. Requires no session.
func (r *Repository) Create(ctx context.Context, draft Draft) (*model.Item, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", model.ErrValidation)
	}
	if !model.ValidItemType(draft.Type) {
		return nil, fmt.Errorf("%w: type must be %q or %q", model.ErrValidation, model.ItemTypeLost, model.ItemTypeFound)
	}

	now := time.Now()
	item := &model.Item{
		ID:          uuid.NewString(),
		Collection:  model.CollectionActive,
		Type:        draft.Type,
		Date:        strings.TrimSpace(draft.Date),
		Title:       title,
		Category:    strings.TrimSpace(draft.Category),
		Location:    strings.TrimSpace(draft.Location),
		Description: strings.TrimSpace(draft.Description),
		CreatedAt:   now.UnixMilli(),
	}
	if item.Date == "" {
		item.Date = now.Format("2006-01-02")
	}
	if item.Category == "" {
		item.Category = model.DefaultCategory
	}
	if item.Location == "" {
		item.Location = model.DefaultLocation
	}

	var image []byte
	if draft.ImageData != "" {
		processed, err := imaging.ProcessDataURL(draft.ImageData)
		if err != nil {
			slog.Warn("dropping unusable item photo", "title", title, "error", err)
		} else {
			image = processed.Data
			item.ImageMime = processed.MIME
		}
	}

	if err := store.InsertItem(ctx, r.DB, item, image); err != nil {
		return nil, err
	}
	return item, nil
}

// Claim moves an item from the active list into the claimed inventory.
// Requires no session. Once an item leaves the claimed inventory it can
// never re-enter it.
func (r *Repository) Claim(ctx context.Context, id string) error {
	moved, err := store.MoveItem(ctx, r.DB, id, model.CollectionClaimed, model.CollectionActive)
	if err != nil {
		return err
	}
	if !moved {
		return fmt.Errorf("%w: no active item %s", model.ErrNotFound, id)
	}
	return nil
}

// SoftDelete moves an item from the active list or the claimed inventory
// into the deleted bin. Admin only.
func (r *Repository) SoftDelete(ctx context.Context, id string, actor *model.Actor) error {
	if !actor.IsAdmin() {
		return model.ErrUnauthorized
	}
	moved, err := store.MoveItem(ctx, r.DB, id, model.CollectionDeleted,
		model.CollectionActive, model.CollectionClaimed)
	if err != nil {
		return err
	}
	if !moved {
		return fmt.Errorf("%w: no active or claimed item %s", model.ErrNotFound, id)
	}
	return nil
}

// Restore moves an item out of the deleted bin back into the active list.
// Admin only. Claimed items are never directly restorable; they pass
// through the bin first.
func (r *Repository) Restore(ctx context.Context, id string, actor *model.Actor) error {
	if !actor.IsAdmin() {
		return model.ErrUnauthorized
	}
	moved, err := store.MoveItem(ctx, r.DB, id, model.CollectionActive, model.CollectionDeleted)
	if err != nil {
		return err
	}
	if !moved {
		return fmt.Errorf("%w: no deleted item %s", model.ErrNotFound, id)
	}
	return nil
}

// Purge permanently removes an item from the deleted bin. Admin only.
// There is no way back after this.
func (r *Repository) Purge(ctx context.Context, id string, actor *model.Actor) error {
	if !actor.IsAdmin() {
		return model.ErrUnauthorized
	}
	purged, err := store.PurgeItem(ctx, r.DB, id)
	if err != nil {
		return err
	}
	if !purged {
		return fmt.Errorf("%w: no deleted item %s", model.ErrNotFound, id)
	}
	return nil
}

// ClearAll empties every collection. Confirmation is the caller's
// concern; no role is required.
func (r *Repository) ClearAll(ctx context.Context) error {
	return store.ClearItems(ctx, r.DB)
}

// List returns a snapshot of one collection, newest-first.
func (r *Repository) List(ctx context.Context, collection string) ([]model.Item, error) {
	if !model.ValidCollection(collection) {
		return nil, fmt.Errorf("%w: unknown collection %q", model.ErrValidation, collection)
	}
	items, err := store.ListItems(ctx, r.DB, collection)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

// Categories returns the distinct non-empty categories of active items,
// the index the filter controls are built from.
func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	categories, err := store.ListCategories(ctx, r.DB)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

// Image returns an item's photo from whichever collection holds it.
// A nil payload means the item has no photo or does not exist.
func (r *Repository) Image(ctx context.Context, id string) ([]byte, string, error) {
	return store.GetItemImage(ctx, r.DB, id)
}
