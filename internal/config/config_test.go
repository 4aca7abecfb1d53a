package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/magic-expo/cli/internal/errors"
	"github.com/magic-expo/cli/internal/options"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "default", cfg.Defaults.Template)
	assert.Equal(t, "tabs", cfg.Defaults.Navigation)
	assert.Equal(t, "local", cfg.Defaults.BuildProvider)
	require.NotNil(t, cfg.Defaults.Theming)
	assert.True(t, *cfg.Defaults.Theming)
	assert.Equal(t, "bun", cfg.PackageManager)
}

func TestRawOptions(t *testing.T) {
	t.Run("empty defaults leave every field unset", func(t *testing.T) {
		raw, err := (&Config{}).RawOptions()
		require.NoError(t, err)
		assert.Equal(t, options.RawOptions{}, raw)
	})

	t.Run("values are parsed", func(t *testing.T) {
		cfg := &Config{Defaults: DefaultsConfig{
			Template:      "showcase",
			Navigation:    "drawer",
			BuildProvider: "eas",
			Theming:       options.Ptr(false),
			Author:        "Ada",
		}}
		raw, err := cfg.RawOptions()
		require.NoError(t, err)

		require.NotNil(t, raw.Tier)
		assert.Equal(t, options.TierShowcase, *raw.Tier)
		assert.Equal(t, options.NavigationDrawer, *raw.Navigation)
		assert.Equal(t, options.BuildEAS, *raw.BuildProvider)
		assert.False(t, *raw.Theming)
		assert.Nil(t, raw.UIComponents)
		assert.Equal(t, "Ada", *raw.Author)
	})

	t.Run("invalid value names the field", func(t *testing.T) {
		cfg := &Config{Defaults: DefaultsConfig{Navigation: "sidebar"}}
		_, err := cfg.RawOptions()
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))

		var detail *oerrors.DetailError
		require.True(t, errors.As(err, &detail))
		assert.Equal(t, "defaults.navigation", detail.Field)
	})
}

func TestValidatePackageManager(t *testing.T) {
	for _, pm := range PackageManagers {
		assert.NoError(t, ValidatePackageManager(pm), pm)
	}

	for _, bad := range []string{"", "rm", "npm install", "Bun"} {
		err := ValidatePackageManager(bad)
		require.Error(t, err, bad)
		assert.ErrorIs(t, err, oerrors.ErrValidation)

		var detail *oerrors.DetailError
		require.ErrorAs(t, err, &detail)
		assert.Equal(t, "packageManager", detail.Field)
	}
}
