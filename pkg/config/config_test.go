// Minecode
// Copyright (c) 2026 The Minecode Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Minecode.
//
// Minecode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Minecode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Minecode.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigCreatesDefaultFile(t *testing.T) {
	configDir := t.TempDir()

	cfg, err := NewConfig(configDir, BaseDefaults)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(configDir, CfgFile))
	assert.False(t, cfg.DebugLogging())

	_, ok := cfg.LookupLauncherDefaults("vanilla")
	assert.False(t, ok)
}

func TestConfigRoundtrip(t *testing.T) {
	configDir := t.TempDir()

	cfg, err := NewConfig(configDir, BaseDefaults)
	require.NoError(t, err)

	cfg.SetDebugLogging(true)
	cfg.SetLauncherDefaults(LaunchersDefault{
		Launcher:   "multimc",
		InstallDir: "/opt/multimc",
	})
	require.NoError(t, cfg.Save())

	reloaded, err := NewConfig(configDir, BaseDefaults)
	require.NoError(t, err)

	assert.True(t, reloaded.DebugLogging())

	def, ok := reloaded.LookupLauncherDefaults("multimc")
	require.True(t, ok)
	assert.Equal(t, "/opt/multimc", def.InstallDir)
}

func TestLookupLauncherDefaultsCaseInsensitive(t *testing.T) {
	configDir := t.TempDir()

	cfg, err := NewConfig(configDir, BaseDefaults)
	require.NoError(t, err)

	cfg.SetLauncherDefaults(LaunchersDefault{Launcher: "MultiMC", InstallDir: "/opt/multimc"})

	def, ok := cfg.LookupLauncherDefaults("multimc")
	require.True(t, ok)
	assert.Equal(t, "/opt/multimc", def.InstallDir)
}

func TestSetLauncherDefaultsReplacesExisting(t *testing.T) {
	configDir := t.TempDir()

	cfg, err := NewConfig(configDir, BaseDefaults)
	require.NoError(t, err)

	cfg.SetLauncherDefaults(LaunchersDefault{Launcher: "prism", InstallDir: "/old"})
	cfg.SetLauncherDefaults(LaunchersDefault{Launcher: "prism", InstallDir: "/new"})

	def, ok := cfg.LookupLauncherDefaults("prism")
	require.True(t, ok)
	assert.Equal(t, "/new", def.InstallDir)
}

func TestConfigSchemaMismatch(t *testing.T) {
	configDir := t.TempDir()
	cfgPath := filepath.Join(configDir, CfgFile)
	require.NoError(t, os.WriteFile(cfgPath, []byte("config_schema = 99\n"), 0o600))

	_, err := NewConfig(configDir, BaseDefaults)
	assert.Error(t, err)
}

func TestConfigEnvOverride(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "custom.toml")
	t.Setenv(CfgEnv, cfgPath)

	cfg, err := NewConfig(t.TempDir(), BaseDefaults)
	require.NoError(t, err)

	assert.Equal(t, cfgPath, cfg.Path())
	assert.FileExists(t, cfgPath)
}
