package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/anzeg/najdeno/internal/model"
)

const itemColumns = `id, collection, type, date, title, category, location, description, image_mime, created_at`

// scanItem scans a single item row.
func scanItem(row interface{ Scan(...any) error }) (*model.Item, error) {
	item := &model.Item{}
	var description, imageMime sql.NullString
	err := row.Scan(&item.ID, &item.Collection, &item.Type, &item.Date, &item.Title,
		&item.Category, &item.Location, &description, &imageMime, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	item.Description = description.String
	item.ImageMime = imageMime.String
	return item, nil
}

// InsertItem inserts an item row into its collection. The image may be nil.
func InsertItem(ctx context.Context, db *sql.DB, item *model.Item, image []byte) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO items (id, collection, type, date, title, category, location, description, image, image_mime, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Collection, item.Type, item.Date, item.Title, item.Category,
		item.Location, item.Description, image, nullable(item.ImageMime), item.CreatedAt,
	)
	if err != nil {
		return persistErr("inserting item", err)
	}
	return nil
}

// GetItem returns an item by ID from whichever collection holds it,
// or nil if no collection does.
func GetItem(ctx context.Context, db *sql.DB, id string) (*model.Item, error) {
	item, err := scanItem(db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, persistErr("getting item", err)
	}
	return item, nil
}

// ListItems returns a collection's items newest-first.
func ListItems(ctx context.Context, db *sql.DB, collection string) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE collection = ?
		 ORDER BY created_at DESC, seq DESC`, collection,
	)
	if err != nil {
		return nil, persistErr("listing items", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

// QueryItems returns active items with the type and category filters applied,
// sorted by creation time. Ties keep the newest-first list order, which
// matches a stable sort of the active collection in either direction.
func QueryItems(ctx context.Context, db *sql.DB, itemType, category string, oldestFirst bool) ([]model.Item, error) {
	q := `SELECT ` + itemColumns + ` FROM items WHERE collection = ?`
	args := []any{model.CollectionActive}

	if itemType != "" {
		q += ` AND type = ?`
		args = append(args, itemType)
	}
	if category != "" {
		q += ` AND category = ?`
		args = append(args, category)
	}
	if oldestFirst {
		q += ` ORDER BY created_at ASC, seq DESC`
	} else {
		q += ` ORDER BY created_at DESC, seq DESC`
	}

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, persistErr("querying items", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

// MoveItem moves an item into the target collection if it currently belongs
// to one of the source collections. Returns false if no such item existed.
func MoveItem(ctx context.Context, db *sql.DB, id, target string, sources ...string) (bool, error) {
	placeholders := strings.Repeat("?, ", len(sources))
	placeholders = strings.TrimSuffix(placeholders, ", ")

	args := []any{target, id}
	for _, s := range sources {
		args = append(args, s)
	}

	result, err := db.ExecContext(ctx,
		`UPDATE items SET collection = ? WHERE id = ? AND collection IN (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return false, persistErr("moving item", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, persistErr("moving item", err)
	}
	return n > 0, nil
}

// PurgeItem permanently removes an item from the deleted bin.
// Returns false if the item was not in the bin.
func PurgeItem(ctx context.Context, db *sql.DB, id string) (bool, error) {
	result, err := db.ExecContext(ctx,
		`DELETE FROM items WHERE id = ? AND collection = ?`,
		id, model.CollectionDeleted,
	)
	if err != nil {
		return false, persistErr("purging item", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, persistErr("purging item", err)
	}
	return n > 0, nil
}

// ClearItems empties all three collections.
func ClearItems(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return persistErr("clearing items", err)
	}
	return nil
}

// CountItems returns the total number of items across all collections.
func CountItems(ctx context.Context, db *sql.DB) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&count)
	if err != nil {
		return 0, persistErr("counting items", err)
	}
	return count, nil
}

// ListCategories returns the distinct non-empty categories of active items.
func ListCategories(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT DISTINCT category FROM items
		 WHERE collection = ? AND category != '' ORDER BY category`,
		model.CollectionActive,
	)
	if err != nil {
		return nil, persistErr("listing categories", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, persistErr("scanning category", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr("listing categories", err)
	}
	return categories, nil
}

// GetItemImage returns an item's image data and MIME type from whichever
// collection holds it.
func GetItemImage(ctx context.Context, db *sql.DB, id string) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM items WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", persistErr("getting item image", err)
	}
	return image, mime.String, nil
}

func collectItems(rows *sql.Rows) ([]model.Item, error) {
	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, persistErr("scanning item", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr("listing items", err)
	}
	return items, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
