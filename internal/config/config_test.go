package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitConfig(t *testing.T) {
	// Create temp directory for test config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	// Verify config file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestGetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	// Test getting a default value
	value := GetString("generator.default_seed")
	if value != "#0ea5e9" {
		t.Errorf("Expected default seed to be #0ea5e9, got %s", value)
	}

	if w := GetInt("swatch.width"); w != 500 {
		t.Errorf("Expected default swatch width 500, got %d", w)
	}
}

func TestSetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	err := Set("preview.port", "9000")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value := GetString("preview.port")
	if value != "9000" {
		t.Errorf("Expected preview port to be 9000, got %s", value)
	}
}
