package common

import (
	"os"
	"testing"
)

func TestWithDefaultSettings(t *testing.T) {
	settings := WithDefaultSettings()

	// Test default language
	if settings.Language != "en-US" {
		t.Errorf("Expected default language to be en-US, got %s", settings.Language)
	}

	// Test default generation settings
	if settings.Generation.Framework != "streamlit" {
		t.Errorf("Expected default framework to be streamlit, got %s", settings.Generation.Framework)
	}

	if settings.Generation.Style != StylePolished {
		t.Errorf("Expected default style to be %s, got %s", StylePolished, settings.Generation.Style)
	}

	if settings.Generation.Temperature != 0.7 {
		t.Errorf("Expected default temperature to be 0.7, got %f", settings.Generation.Temperature)
	}

	if settings.Generation.MaxTokens != 4000 {
		t.Errorf("Expected default max tokens to be 4000, got %d", settings.Generation.MaxTokens)
	}

	if !settings.Generation.IncludeRaw {
		t.Error("Expected default IncludeRaw to be true")
	}

	if settings.Tone != "" {
		t.Errorf("Expected empty Tone by default, got %s", settings.Tone)
	}
}

func TestWithYamlFile_ValidFile(t *testing.T) {
	// Create a temporary config file
	configContent := `language: fr-FR
tone_instructions: friendly
generation:
  framework: react
  style: minimal
  temperature: 0.2
  max_tokens: 2000
  include_raw: false
`
	tempDir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	// Change to temp directory to create the config file
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	defer os.Chdir(cwd) // Restore original directory when done

	if err := os.WriteFile("ui-generator.yml", []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	// Test reading from the config file
	settings := WithYamlFile()

	if settings.Language != "fr-FR" {
		t.Errorf("Expected language fr-FR, got %s", settings.Language)
	}

	if settings.Tone != "friendly" {
		t.Errorf("Expected tone friendly, got %s", settings.Tone)
	}

	if settings.Generation.Framework != "react" {
		t.Errorf("Expected framework react, got %s", settings.Generation.Framework)
	}

	if settings.Generation.Style != StyleMinimal {
		t.Errorf("Expected style %s, got %s", StyleMinimal, settings.Generation.Style)
	}

	if settings.Generation.Temperature != 0.2 {
		t.Errorf("Expected temperature 0.2, got %f", settings.Generation.Temperature)
	}

	if settings.Generation.MaxTokens != 2000 {
		t.Errorf("Expected max tokens 2000, got %d", settings.Generation.MaxTokens)
	}

	if settings.Generation.IncludeRaw {
		t.Error("Expected IncludeRaw to be false")
	}
}

func TestWithYamlFileInSubdirectory_ValidFile(t *testing.T) {
	configContent := `language: fr-FR
generation:
  framework: vue
`
	tempDir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	if err := os.MkdirAll(tempDir+"/subdir", 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}

	// Change to temp directory to create the config file
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	defer os.Chdir(cwd) // Restore original directory when done

	if err := os.WriteFile("subdir/ui-generator.yml", []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	// Test reading from the config file
	settings := WithYamlFile()

	if settings.Language != "fr-FR" {
		t.Errorf("Expected language fr-FR, got %s", settings.Language)
	}

	if settings.Generation.Framework != "vue" {
		t.Errorf("Expected framework vue, got %s", settings.Generation.Framework)
	}

	// Untouched keys keep their defaults
	if settings.Generation.MaxTokens != 4000 {
		t.Errorf("Expected default max tokens 4000, got %d", settings.Generation.MaxTokens)
	}
}

func TestWithYamlFile_InvalidYaml(t *testing.T) {
	tempDir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	// Change to temp directory to create the config file
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	defer os.Chdir(cwd) // Restore original directory when done

	// Create invalid YAML content
	invalidContent := `language: fr-FR
generation:
  framework: react
  this-is-invalid-yaml
`

	if err := os.WriteFile("ui-generator.yml", []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to create invalid config file: %v", err)
	}

	// Test that default settings are returned when config file has invalid format
	settings := WithYamlFile()
	expectedSettings := WithDefaultSettings()

	if settings.Language != expectedSettings.Language {
		t.Errorf("Expected language %s, got %s", expectedSettings.Language, settings.Language)
	}

	if settings.Generation.Framework != expectedSettings.Generation.Framework {
		t.Errorf("Expected framework %s, got %s", expectedSettings.Generation.Framework, settings.Generation.Framework)
	}
}

func TestWithYamlFile_EmptyFile(t *testing.T) {
	tempDir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	// Change to temp directory to create the config file
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	defer os.Chdir(cwd) // Restore original directory when done

	// Create empty file
	if err := os.WriteFile("ui-generator.yml", []byte(""), 0644); err != nil {
		t.Fatalf("Failed to create empty config file: %v", err)
	}

	// Test that default settings are returned when config file is empty
	settings := WithYamlFile()
	expectedSettings := WithDefaultSettings()

	if settings.Language != expectedSettings.Language {
		t.Errorf("Expected language %s, got %s", expectedSettings.Language, settings.Language)
	}

	if settings.Generation.Framework != expectedSettings.Generation.Framework {
		t.Errorf("Expected framework %s, got %s", expectedSettings.Generation.Framework, settings.Generation.Framework)
	}

	if settings.Generation.Temperature != expectedSettings.Generation.Temperature {
		t.Errorf("Expected temperature %f, got %f", expectedSettings.Generation.Temperature, settings.Generation.Temperature)
	}
}

func TestStyleConstantValues(t *testing.T) {
	// Test constant values are as expected
	if StyleMinimal != "minimal" {
		t.Errorf("Expected StyleMinimal constant to be 'minimal', got %s", StyleMinimal)
	}

	if StylePolished != "polished" {
		t.Errorf("Expected StylePolished constant to be 'polished', got %s", StylePolished)
	}
}
