package config

import (
	"os"
	"path/filepath"
	"testing"
)

// withConfigDir points XDG_CONFIG_HOME at a temp dir for the test.
func withConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoad_DefaultsWhenAbsent(t *testing.T) {
	withConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.CatalogPath != "products.csv" {
		t.Errorf("CatalogPath = %q, want products.csv", cfg.General.CatalogPath)
	}
	if cfg.General.OutputDir != "submissions" {
		t.Errorf("OutputDir = %q, want submissions", cfg.General.OutputDir)
	}
	if cfg.General.WrapWidth != 30 {
		t.Errorf("WrapWidth = %d, want 30", cfg.General.WrapWidth)
	}
	if Exists() {
		t.Error("Exists = true, want false before first save")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	withConfigDir(t)

	cfg := DefaultConfig()
	cfg.General.CatalogPath = "class/products.csv"
	cfg.Missions = []MissionConfig{{Label: "테스트 미션", Budget: 5000}}

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.General.CatalogPath != "class/products.csv" {
		t.Errorf("CatalogPath = %q", loaded.General.CatalogPath)
	}
	if len(loaded.Missions) != 1 || loaded.Missions[0].Budget != 5000 {
		t.Errorf("Missions = %+v", loaded.Missions)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	dir := withConfigDir(t)

	cfgDir := filepath.Join(dir, "jangbogo")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte("not [toml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("Load succeeded on corrupt config, want error")
	}
}

func TestMissions_FallbackToDefaults(t *testing.T) {
	missions := Missions(DefaultConfig())

	if len(missions) != 3 {
		t.Fatalf("len(missions) = %d, want 3", len(missions))
	}
	wantBudgets := []int64{10000, 20000, 30000}
	for i, w := range wantBudgets {
		if missions[i].Budget != w {
			t.Errorf("missions[%d].Budget = %d, want %d", i, missions[i].Budget, w)
		}
	}
}

func TestMissions_FromConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Missions = []MissionConfig{
		{Label: "소형", Budget: 5000},
		{Label: "대형", Budget: 50000},
	}

	missions := Missions(cfg)
	if len(missions) != 2 {
		t.Fatalf("len(missions) = %d, want 2", len(missions))
	}
	if missions[1].Label != "대형" || missions[1].Budget != 50000 {
		t.Errorf("missions[1] = %+v", missions[1])
	}
}
