package board

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/anzeg/najdeno/internal/imaging"
	"github.com/anzeg/najdeno/internal/model"
	"github.com/anzeg/najdeno/internal/store"
)

// Dump is a full snapshot of the board, suitable as a backup: photos are
// inlined as data URLs so the document is self-contained.
type Dump struct {
	Active  []DumpItem `json:"active"`
	Claimed []DumpItem `json:"claimed"`
	Deleted []DumpItem `json:"deleted"`
}

// DumpItem is an item record with its photo inlined.
type DumpItem struct {
	model.Item
	ImageData string `json:"image_data,omitempty"`
}

// Export returns the full board snapshot.
func (r *Repository) Export(ctx context.Context) (*Dump, error) {
	dump := &Dump{
		Active:  []DumpItem{},
		Claimed: []DumpItem{},
		Deleted: []DumpItem{},
	}

	for _, collection := range []string{model.CollectionActive, model.CollectionClaimed, model.CollectionDeleted} {
		items, err := store.ListItems(ctx, r.DB, collection)
		if err != nil {
			return nil, err
		}
		records := make([]DumpItem, 0, len(items))
		for _, item := range items {
			record := DumpItem{Item: item}
			if item.ImageMime != "" {
				data, mime, err := store.GetItemImage(ctx, r.DB, item.ID)
				if err != nil {
					return nil, err
				}
				if data != nil {
					record.ImageData = imaging.EncodeDataURL(data, mime)
				}
			}
			records = append(records, record)
		}
		switch collection {
		case model.CollectionActive:
			dump.Active = records
		case model.CollectionClaimed:
			dump.Claimed = records
		case model.CollectionDeleted:
			dump.Deleted = records
		}
	}

	return dump, nil
}

// Import inserts the records of an exported snapshot back into their
// collections. Ids already present anywhere on the board are skipped, so
// importing the same dump twice is harmless. Admin only.
func (r *Repository) Import(ctx context.Context, dump *Dump, actor *model.Actor) (int, error) {
	if !actor.IsAdmin() {
		return 0, model.ErrUnauthorized
	}

	imported := 0
	for collection, records := range map[string][]DumpItem{
		model.CollectionActive:  dump.Active,
		model.CollectionClaimed: dump.Claimed,
		model.CollectionDeleted: dump.Deleted,
	} {
		for _, record := range records {
			item := record.Item
			item.Collection = collection
			if item.ID == "" || item.Title == "" || !model.ValidItemType(item.Type) {
				continue
			}

			existing, err := store.GetItem(ctx, r.DB, item.ID)
			if err != nil {
				return imported, err
			}
			if existing != nil {
				continue
			}

			var image []byte
			item.ImageMime = ""
			if record.ImageData != "" {
				processed, err := imaging.ProcessDataURL(record.ImageData)
				if err != nil {
					slog.Warn("dropping unusable photo during import", "id", item.ID, "error", err)
				} else {
					image = processed.Data
					item.ImageMime = processed.MIME
				}
			}

			if err := store.InsertItem(ctx, r.DB, &item, image); err != nil {
				return imported, err
			}
			imported++
		}
	}
	return imported, nil
}

// SeedSamples inserts two demo reports when the board is completely
// empty, so a fresh installation has something to show.
func (r *Repository) SeedSamples(ctx context.Context) error {
	count, err := store.CountItems(ctx, r.DB)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	samples := []model.Item{
		{
			ID:          uuid.NewString(),
			Collection:  model.CollectionActive,
			Type:        model.ItemTypeLost,
			Date:        now.Format("2006-01-02"),
			Title:       "Black Wallet",
			Category:    "Wallet",
			Location:    "Library",
			Description: "Leather wallet with student ID",
			CreatedAt:   now.UnixMilli(),
		},
		{
			ID:          uuid.NewString(),
			Collection:  model.CollectionActive,
			Type:        model.ItemTypeFound,
			Date:        now.Format("2006-01-02"),
			Title:       "Blue Backpack",
			Category:    "Bag",
			Location:    "Gate 3",
			Description: "Blue backpack with water bottle",
			CreatedAt:   now.UnixMilli() - 100000,
		},
	}

	for i := range samples {
		if err := store.InsertItem(ctx, r.DB, &samples[i], nil); err != nil {
			return err
		}
	}
	return nil
}
