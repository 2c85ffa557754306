package renderjob

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yaml")
	if err := os.WriteFile(path, []byte("scene: glass_spheres\nwidth: 800\nheight: 600\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Scene != "glass_spheres" {
		t.Errorf("Scene = %q, want glass_spheres", cfg.Scene)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.MaxRecursion != Default().MaxRecursion {
		t.Errorf("MaxRecursion = %d, want default %d", cfg.MaxRecursion, Default().MaxRecursion)
	}
	if cfg.Output != Default().Output {
		t.Errorf("Output = %q, want default %q", cfg.Output, Default().Output)
	}
}

func TestLoadRejectsNonPositiveSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yaml")
	if err := os.WriteFile(path, []byte("width: 0\nheight: 100\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() error = nil, want error for width=0")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load() error = nil, want error for missing file")
	}
}
