package preset

import (
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/huegen/huegen/internal/colors"
	"github.com/huegen/huegen/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	db.AutoMigrate(&models.Preset{})
	return db
}

func TestSavePreset(t *testing.T) {
	db := setupTestDB(t)

	p, err := SavePreset(db, "ocean", "#0ea5e9")
	if err != nil {
		t.Fatalf("SavePreset failed: %v", err)
	}

	if p.Name != "ocean" {
		t.Errorf("Expected name ocean, got %s", p.Name)
	}
	if p.Seed != "#0ea5e9" {
		t.Errorf("Expected seed #0ea5e9, got %s", p.Seed)
	}
}

func TestSavePresetCanonicalizesSeed(t *testing.T) {
	db := setupTestDB(t)

	p, err := SavePreset(db, "shouty", "0EA5E9")
	if err != nil {
		t.Fatalf("SavePreset failed: %v", err)
	}
	if p.Seed != "#0ea5e9" {
		t.Errorf("Seed should be stored canonical, got %s", p.Seed)
	}
}

func TestSavePresetRejectsInvalidSeed(t *testing.T) {
	db := setupTestDB(t)

	_, err := SavePreset(db, "broken", "#gg0000")
	if err == nil {
		t.Fatal("Expected error for invalid seed")
	}
	if !errors.Is(err, colors.ErrInvalidColorFormat) {
		t.Errorf("Expected ErrInvalidColorFormat, got %v", err)
	}
}

func TestSavePresetOverwrites(t *testing.T) {
	db := setupTestDB(t)

	SavePreset(db, "brand", "#0ea5e9")
	p, err := SavePreset(db, "brand", "#e11d48")
	if err != nil {
		t.Fatalf("SavePreset overwrite failed: %v", err)
	}
	if p.Seed != "#e11d48" {
		t.Errorf("Expected updated seed #e11d48, got %s", p.Seed)
	}

	all, _ := ListPresets(db)
	if len(all) != 1 {
		t.Errorf("Overwrite should not create a second row, got %d", len(all))
	}
}

func TestGetPresetByName(t *testing.T) {
	db := setupTestDB(t)

	SavePreset(db, "findme", "#4f46e5")

	p, err := GetPresetByName(db, "findme")
	if err != nil {
		t.Fatalf("GetPresetByName failed: %v", err)
	}
	if p.Seed != "#4f46e5" {
		t.Errorf("Expected seed #4f46e5, got %s", p.Seed)
	}

	if _, err := GetPresetByName(db, "missing"); err == nil {
		t.Error("Expected error for missing preset")
	}
}

func TestListPresetsOrdered(t *testing.T) {
	db := setupTestDB(t)

	SavePreset(db, "zulu", "#22c55e")
	SavePreset(db, "alpha", "#f59e0b")

	presets, err := ListPresets(db)
	if err != nil {
		t.Fatalf("ListPresets failed: %v", err)
	}
	if len(presets) != 2 {
		t.Fatalf("Expected 2 presets, got %d", len(presets))
	}
	if presets[0].Name != "alpha" || presets[1].Name != "zulu" {
		t.Errorf("Presets should be ordered by name, got %s, %s", presets[0].Name, presets[1].Name)
	}
}

func TestDeletePreset(t *testing.T) {
	db := setupTestDB(t)

	SavePreset(db, "gone", "#0ea5e9")
	if err := DeletePreset(db, "gone"); err != nil {
		t.Fatalf("DeletePreset failed: %v", err)
	}

	if _, err := GetPresetByName(db, "gone"); err == nil {
		t.Error("Deleted preset should not be found")
	}

	if err := DeletePreset(db, "never-existed"); err == nil {
		t.Error("Deleting a missing preset should fail")
	}
}
