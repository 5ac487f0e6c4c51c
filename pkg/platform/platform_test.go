package platform

import (
	"codeberg.org/miketth/keymapshift/pkg/catalog"
	"codeberg.org/miketth/keymapshift/pkg/config"
	"codeberg.org/miketth/keymapshift/pkg/hyprland"
	"codeberg.org/miketth/keymapshift/pkg/keymaps"
	"codeberg.org/miketth/keymapshift/pkg/keymapshift"
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"testing"
)

func TestStaticCatalogFromConfig(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	cfg := config.Default()
	cfg.KeymapsDir = t.TempDir()
	cfg.Layouts = []string{"us", "ru", "zz"}

	cat, err := Catalog(context.Background(), cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.IsType(t, &catalog.Static{}, cat)

	snapshot, err := cat.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot, 2)
	assert.Equal(t, "us", snapshot[0].Layout.Label)
	assert.Equal(t, "ru", snapshot[1].Layout.Label)
}

func TestHyprlandCatalogRequiresHyprland(t *testing.T) {
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	cfg := config.Default()
	cfg.Catalog = config.CatalogHyprland

	_, err := Catalog(context.Background(), cfg, zap.NewNop().Sugar())
	assert.ErrorIs(t, err, hyprland.ErrNotRunning)
}

func TestStaticCatalogUsesSystemKeymaps(t *testing.T) {
	if keymaps.SystemCompiler == nil {
		t.Skip("no system keymap compiler on this platform")
	}
	if _, err := keymaps.SystemCompiler("fr", ""); err != nil {
		t.Skipf("fr layout not installed: %v", err)
	}
	t.Setenv("HYPRLAND_INSTANCE_SIGNATURE", "")

	cfg := config.Default()
	cfg.KeymapsDir = t.TempDir()
	cfg.Layouts = []string{"us", "fr"}

	cat, err := Catalog(context.Background(), cfg, zap.NewNop().Sugar())
	require.NoError(t, err)

	snapshot, err := cat.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot, 2)

	out, err := keymapshift.ShiftText("qzerty", snapshot)
	require.NoError(t, err)
	assert.Equal(t, "awerty", out)
}
