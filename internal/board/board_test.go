package board

import (
	"context"
	"errors"
	"testing"

	"github.com/anzeg/najdeno/internal/db"
	"github.com/anzeg/najdeno/internal/model"
	"github.com/anzeg/najdeno/internal/store"
)

var (
	admin = &model.Actor{Username: "boss", Role: model.RoleAdmin}
	user  = &model.Actor{Username: "pleb", Role: model.RoleUser}
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	return New(db.NewTestDB(t))
}

func mustCreate(t *testing.T, repo *Repository, draft Draft) *model.Item {
	t.Helper()
	item, err := repo.Create(context.Background(), draft)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return item
}

func TestCreateAppliesDefaults(t *testing.T) {
	repo := newTestRepo(t)

	item := mustCreate(t, repo, Draft{Type: model.ItemTypeLost, Title: "  Black Wallet  "})

	if item.ID == "" {
		t.Error("expected a generated id")
	}
	if item.Title != "Black Wallet" {
		t.Errorf("expected trimmed title, got %q", item.Title)
	}
	if item.Category != model.DefaultCategory {
		t.Errorf("expected default category, got %q", item.Category)
	}
	if item.Location != model.DefaultLocation {
		t.Errorf("expected default location, got %q", item.Location)
	}
	if item.Date == "" {
		t.Error("expected date to default to today")
	}
	if item.CreatedAt == 0 {
		t.Error("expected a creation timestamp")
	}
}

func TestCreateValidation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if _, err := repo.Create(ctx, Draft{Type: model.ItemTypeLost, Title: "   "}); !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected ErrValidation for blank title, got %v", err)
	}
	if _, err := repo.Create(ctx, Draft{Type: "stolen", Title: "Bike"}); !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected ErrValidation for bad type, got %v", err)
	}
}

func TestCreateUniqueIDAtFrontOfActive(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first := mustCreate(t, repo, Draft{Type: model.ItemTypeLost, Title: "First"})
	second := mustCreate(t, repo, Draft{Type: model.ItemTypeFound, Title: "Second"})

	if first.ID == second.ID {
		t.Fatal("expected distinct ids")
	}

	active, err := repo.List(ctx, model.CollectionActive)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active items, got %d", len(active))
	}
	if active[0].ID != second.ID {
		t.Errorf("expected newest creation at index 0, got %q", active[0].Title)
	}
}

func TestCreateBadImageDoesNotBlockCreation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	item := mustCreate(t, repo, Draft{
		Type:      model.ItemTypeLost,
		Title:     "Phone",
		ImageData: "data:image/png;base64,definitely-not-base64",
	})

	if item.ImageMime != "" {
		t.Error("expected no image mime when payload is unusable")
	}

	data, _, err := repo.Image(ctx, item.ID)
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if data != nil {
		t.Error("expected item to be created without a photo")
	}
}

func TestClaimMovesToClaimed(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	item := mustCreate(t, repo, Draft{Type: model.ItemTypeFound, Title: "Umbrella"})

	if err := repo.Claim(ctx, item.ID); err != nil {
		t.Fatalf("Claim: %v", err)
	}

	claimed, _ := repo.List(ctx, model.CollectionClaimed)
	if len(claimed) != 1 || claimed[0].ID != item.ID {
		t.Errorf("expected item in claimed inventory, got %v", claimed)
	}

	active, _ := repo.List(ctx, model.CollectionActive)
	if len(active) != 0 {
		t.Error("expected item to have left the active list")
	}

	// Claiming again fails: the id is no longer active.
	if err := repo.Claim(ctx, item.ID); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestClaimedIsOneWayGate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	item := mustCreate(t, repo, Draft{Type: model.ItemTypeLost, Title: "Keys"})
	repo.Claim(ctx, item.ID)

	// A claimed item is never directly restorable.
	if err := repo.Restore(ctx, item.ID, admin); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound restoring a claimed item, got %v", err)
	}

	// It must pass through the bin, and from there only back to active.
	if err := repo.SoftDelete(ctx, item.ID, admin); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if err := repo.Restore(ctx, item.ID, admin); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	got, _ := store.GetItem(ctx, repo.DB, item.ID)
	if got.Collection != model.CollectionActive {
		t.Errorf("expected item back in active, got %q", got.Collection)
	}
}

func TestSoftDeleteRequiresAdmin(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	item := mustCreate(t, repo, Draft{Type: model.ItemTypeLost, Title: "Scarf"})

	for name, actor := range map[string]*model.Actor{"anonymous": nil, "plain user": user} {
		if err := repo.SoftDelete(ctx, item.ID, actor); !errors.Is(err, model.ErrUnauthorized) {
			t.Errorf("%s: expected ErrUnauthorized, got %v", name, err)
		}
	}

	// The refused delete left the item in place.
	active, _ := repo.List(ctx, model.CollectionActive)
	if len(active) != 1 {
		t.Fatal("expected item to remain active after refused delete")
	}

	if err := repo.SoftDelete(ctx, item.ID, admin); err != nil {
		t.Fatalf("SoftDelete as admin: %v", err)
	}
	deleted, _ := repo.List(ctx, model.CollectionDeleted)
	if len(deleted) != 1 {
		t.Error("expected item in the deleted bin")
	}
}

func TestSoftDeleteThenRestoreRoundTrips(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	item := mustCreate(t, repo, Draft{
		Type:        model.ItemTypeLost,
		Title:       "Red Notebook",
		Category:    "Stationery",
		Location:    "Room 12",
		Description: "Spiral bound",
	})

	if err := repo.SoftDelete(ctx, item.ID, admin); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}
	if err := repo.Restore(ctx, item.ID, admin); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	active, _ := repo.List(ctx, model.CollectionActive)
	if len(active) != 1 {
		t.Fatal("expected restored item in active")
	}
	got := active[0]
	if got.ID != item.ID || got.Title != item.Title || got.Category != item.Category ||
		got.Location != item.Location || got.Description != item.Description ||
		got.Date != item.Date || got.CreatedAt != item.CreatedAt {
		t.Errorf("expected all fields unchanged after round trip, got %+v", got)
	}
}

func TestRestoreAndPurgeAuthorization(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	item := mustCreate(t, repo, Draft{Type: model.ItemTypeLost, Title: "Hat"})
	repo.SoftDelete(ctx, item.ID, admin)

	if err := repo.Restore(ctx, item.ID, user); !errors.Is(err, model.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for non-admin restore, got %v", err)
	}
	if err := repo.Purge(ctx, item.ID, nil); !errors.Is(err, model.ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for anonymous purge, got %v", err)
	}
}

func TestPurgeIsIrreversible(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	item := mustCreate(t, repo, Draft{Type: model.ItemTypeFound, Title: "Glove"})
	repo.SoftDelete(ctx, item.ID, admin)

	if err := repo.Purge(ctx, item.ID, admin); err != nil {
		t.Fatalf("Purge: %v", err)
	}

	// No collection returns the id any more.
	for _, collection := range []string{model.CollectionActive, model.CollectionClaimed, model.CollectionDeleted} {
		items, _ := repo.List(ctx, collection)
		for _, it := range items {
			if it.ID == item.ID {
				t.Errorf("purged item still present in %s", collection)
			}
		}
	}
	if err := repo.Restore(ctx, item.ID, admin); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound restoring purged item, got %v", err)
	}

	// Purge only acts on the bin.
	other := mustCreate(t, repo, Draft{Type: model.ItemTypeLost, Title: "Sock"})
	if err := repo.Purge(ctx, other.ID, admin); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound purging an active item, got %v", err)
	}
}

func TestClearAllEmptiesEveryCollection(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a := mustCreate(t, repo, Draft{Type: model.ItemTypeLost, Title: "A"})
	b := mustCreate(t, repo, Draft{Type: model.ItemTypeLost, Title: "B"})
	mustCreate(t, repo, Draft{Type: model.ItemTypeFound, Title: "C"})
	repo.Claim(ctx, a.ID)
	repo.SoftDelete(ctx, b.ID, admin)

	if err := repo.ClearAll(ctx); err != nil {
		t.Fatalf("ClearAll: %v", err)
	}

	for _, collection := range []string{model.CollectionActive, model.CollectionClaimed, model.CollectionDeleted} {
		items, _ := repo.List(ctx, collection)
		if len(items) != 0 {
			t.Errorf("expected %s to be empty, got %d items", collection, len(items))
		}
	}
}

func TestCategoriesIndex(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	mustCreate(t, repo, Draft{Type: model.ItemTypeLost, Title: "Black Wallet", Category: "Wallet"})
	mustCreate(t, repo, Draft{Type: model.ItemTypeFound, Title: "Backpack", Category: "Bag"})
	mustCreate(t, repo, Draft{Type: model.ItemTypeFound, Title: "Another Bag", Category: "Bag"})

	categories, err := repo.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}

	found := false
	for _, c := range categories {
		if c == "Wallet" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected categories to include 'Wallet', got %v", categories)
	}
	if len(categories) != 2 {
		t.Errorf("expected 2 distinct categories, got %v", categories)
	}
}

func TestListUnknownCollection(t *testing.T) {
	repo := newTestRepo(t)

	if _, err := repo.List(context.Background(), "trash"); !errors.Is(err, model.ErrValidation) {
		t.Errorf("expected ErrValidation for unknown collection, got %v", err)
	}
}
