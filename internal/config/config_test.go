package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.OutputFormat != "text" {
		t.Errorf("default output format = %q, want %q", cfg.OutputFormat, "text")
	}
	if cfg.RecipeDir == "" {
		t.Error("default recipe dir is empty")
	}
}

func TestApplyFileConfigYAML(t *testing.T) {
	cfg := Default()
	data := []byte("recipe_dir: /tmp/recipes\noutput_format: json\n")
	if err := applyFileConfig(&cfg, data, "yaml"); err != nil {
		t.Fatalf("applyFileConfig: %v", err)
	}
	if cfg.RecipeDir != "/tmp/recipes" {
		t.Errorf("recipe dir = %q", cfg.RecipeDir)
	}
	if cfg.OutputFormat != "json" {
		t.Errorf("output format = %q", cfg.OutputFormat)
	}
}

func TestApplyFileConfigYAMLPartial(t *testing.T) {
	cfg := Default()
	original := cfg.RecipeDir
	if err := applyFileConfig(&cfg, []byte("output_format: json\n"), "yaml"); err != nil {
		t.Fatalf("applyFileConfig: %v", err)
	}
	if cfg.RecipeDir != original {
		t.Errorf("absent key overwrote recipe dir: %q", cfg.RecipeDir)
	}
	if cfg.OutputFormat != "json" {
		t.Errorf("output format = %q", cfg.OutputFormat)
	}
}

func TestApplyFileConfigTOML(t *testing.T) {
	cfg := Default()
	data := []byte("recipe_dir = \"/srv/recipes\"\noutput_format = \"text\"\n")
	if err := applyFileConfig(&cfg, data, "toml"); err != nil {
		t.Fatalf("applyFileConfig: %v", err)
	}
	if cfg.RecipeDir != "/srv/recipes" {
		t.Errorf("recipe dir = %q", cfg.RecipeDir)
	}
}

func TestApplyFileConfigMalformed(t *testing.T) {
	cfg := Default()
	if err := applyFileConfig(&cfg, []byte("recipe_dir: [unclosed"), "yaml"); err == nil {
		t.Error("malformed YAML should error")
	}
	if err := applyFileConfig(&cfg, []byte("=== not toml"), "toml"); err == nil {
		t.Error("malformed TOML should error")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STRAND_RECIPE_DIR", "/env/recipes")
	t.Setenv("STRAND_OUTPUT_FORMAT", "json")

	cfg := Default()
	applyEnvOverrides(&cfg)
	if cfg.RecipeDir != "/env/recipes" {
		t.Errorf("recipe dir = %q", cfg.RecipeDir)
	}
	if cfg.OutputFormat != "json" {
		t.Errorf("output format = %q", cfg.OutputFormat)
	}
}

func TestLoadRejectsBadFormat(t *testing.T) {
	t.Setenv("STRAND_OUTPUT_FORMAT", "xml")
	// Keep file lookups away from any real home config.
	t.Setenv("HOME", t.TempDir())

	if _, err := Load(); err == nil {
		t.Error("unsupported output format should fail validation")
	}
}

func TestLoadReadsLocalYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "strand.yml"), []byte("output_format: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	}()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STRAND_OUTPUT_FORMAT", "")
	t.Setenv("STRAND_RECIPE_DIR", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputFormat != "json" {
		t.Errorf("output format = %q, want json", cfg.OutputFormat)
	}
}
