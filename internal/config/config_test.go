package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/bintree/internal/tree"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Strict {
		t.Error("strict mode should be off by default")
	}
	if cfg.SVG.Radius != 15 || cfg.SVG.Top != 50 || cfg.SVG.LevelGap != 50 {
		t.Errorf("unexpected svg geometry: %+v", cfg.SVG)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bintree.yaml")
	data := []byte("strict: true\ncanvas:\n  width: 100\nsvg:\n  fill: white\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Strict)
	require.Equal(t, 100, cfg.Canvas.Width)
	require.Equal(t, DefaultCanvasHeight, cfg.Canvas.Height)
	require.Equal(t, "white", cfg.SVG.Fill)
	require.Equal(t, "darkblue", cfg.SVG.Stroke)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("canvas:\n  width: -3\n"), 0644))
	_, err = Load(path)
	require.ErrorContains(t, err, "canvas size must be positive")
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bintree.yaml")
	cfg := DefaultConfig()
	cfg.Theme = "retro"
	cfg.SVG.Width = 1024

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("BINTREE_STRICT", "true")
	t.Setenv("BINTREE_DATA_DIR", "/tmp/reports")
	t.Setenv("BINTREE_SVG_WIDTH", "640")

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv())
	require.True(t, cfg.Strict)
	require.Equal(t, "/tmp/reports", cfg.DataDir)
	require.Equal(t, 640, cfg.SVG.Width)
	require.Equal(t, DefaultSVGHeight, cfg.SVG.Height)
}

func TestPresets(t *testing.T) {
	names := ListPresets()
	require.Contains(t, names, "canonical")

	for _, name := range names {
		enc, ok := GetPreset(name)
		require.True(t, ok)
		if _, err := tree.BuildStrict(enc); err != nil {
			t.Errorf("preset %s is not a well-formed encoding: %v", name, err)
		}
	}

	_, ok := GetPreset("nonexistent")
	require.False(t, ok)
}
