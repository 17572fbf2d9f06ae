package preset

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/huegen/huegen/internal/models"
	"github.com/huegen/huegen/internal/palette"
)

// SavePreset stores a named seed. The seed is validated through the palette
// generator first, so only canonical colors land in the store. Saving an
// existing name overwrites its seed.
func SavePreset(db *gorm.DB, name, seed string) (*models.Preset, error) {
	scheme, err := palette.Generate(seed)
	if err != nil {
		return nil, err
	}

	var existing models.Preset
	result := db.Where("name = ?", name).First(&existing)
	if result.Error == nil {
		existing.Seed = scheme.Primary
		if err := db.Save(&existing).Error; err != nil {
			return nil, fmt.Errorf("failed to update preset: %w", err)
		}
		return &existing, nil
	}

	p := &models.Preset{
		Name: name,
		Seed: scheme.Primary,
	}
	if err := db.Create(p).Error; err != nil {
		return nil, fmt.Errorf("failed to create preset: %w", err)
	}

	return p, nil
}

// GetPresetByName retrieves a preset by name
func GetPresetByName(db *gorm.DB, name string) (*models.Preset, error) {
	var p models.Preset
	result := db.Where("name = ?", name).First(&p)
	if result.Error != nil {
		return nil, fmt.Errorf("preset not found: %w", result.Error)
	}
	return &p, nil
}

// ListPresets returns all presets ordered by name
func ListPresets(db *gorm.DB) ([]models.Preset, error) {
	var presets []models.Preset
	if err := db.Order("name ASC").Find(&presets).Error; err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	return presets, nil
}

// DeletePreset removes a preset by name
func DeletePreset(db *gorm.DB, name string) error {
	p, err := GetPresetByName(db, name)
	if err != nil {
		return err
	}

	if err := db.Delete(p).Error; err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}
	return nil
}
