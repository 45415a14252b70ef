package store

import (
	"context"
	"testing"

	"github.com/anzeg/najdeno/internal/db"
)

func TestGetJWTSecretPersists(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatalf("GetJWTSecret: %v", err)
	}
	if first == "" {
		t.Fatal("expected a generated secret")
	}

	second, err := GetJWTSecret(ctx, database)
	if err != nil {
		t.Fatalf("GetJWTSecret: %v", err)
	}
	if second != first {
		t.Error("expected the same secret on subsequent calls")
	}
}

func TestThemeDefaultAndUpdate(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	theme, err := GetTheme(ctx, database)
	if err != nil {
		t.Fatalf("GetTheme: %v", err)
	}
	if theme != ThemeDark {
		t.Errorf("expected default theme 'dark', got %q", theme)
	}

	if err := SetTheme(ctx, database, ThemeLight); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}

	theme, _ = GetTheme(ctx, database)
	if theme != ThemeLight {
		t.Errorf("expected theme 'light', got %q", theme)
	}

	// Setting again overwrites instead of conflicting.
	if err := SetTheme(ctx, database, ThemeDark); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	theme, _ = GetTheme(ctx, database)
	if theme != ThemeDark {
		t.Errorf("expected theme 'dark', got %q", theme)
	}
}
