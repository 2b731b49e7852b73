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

package launchers

import (
	"path/filepath"
	"testing"

	"github.com/MinecodeProject/minecode-core/pkg/config"
	helpers "github.com/MinecodeProject/minecode-core/pkg/testing/helpers"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLauncher lets tests inject arbitrary adapter behavior, including
// panics, behind the Launcher interface.
type stubLauncher struct {
	detect    func() bool
	instances func() []Instance
	info      func() Info
	logs      func(string) (string, bool)
	clearLogs func(string) bool
	logsDir   func(string) (string, bool)
	id        string
}

func (s *stubLauncher) ID() string { return s.id }
func (s *stubLauncher) Detect() bool { return s.detect() }
func (s *stubLauncher) Instances() []Instance { return s.instances() }
func (s *stubLauncher) Info() Info { return s.info() }
func (s *stubLauncher) Logs(instance string) (string, bool) { return s.logs(instance) }
func (s *stubLauncher) ClearLogs(instance string) bool { return s.clearLogs(instance) }
func (s *stubLauncher) LogsDir(instance string) (string, bool) { return s.logsDir(instance) }

func healthyStub(id string) *stubLauncher {
	return &stubLauncher{
		id:        id,
		detect:    func() bool { return true },
		instances: func() []Instance { return []Instance{{Name: "one", LauncherType: id}} },
		info:      func() Info { return Info{Name: id, LauncherType: id} },
		logs:      func(string) (string, bool) { return "log content", true },
		clearLogs: func(string) bool { return true },
		logsDir:   func(string) (string, bool) { return "/logs", true },
	}
}

func TestManagerDetectsInstalledLaunchers(t *testing.T) {
	t.Parallel()

	h := helpers.NewMemoryFS()
	require.NoError(t, h.WriteFile(filepath.Join(vanillaRoot, "launcher_profiles.json"), "{}"))
	require.NoError(t, h.MkdirAll(filepath.Join(curseforgeRoot, "Instances")))

	entries := []probeEntry{
		{id: LauncherIDVanilla, construct: func(fsys afero.Fs, _ string) Launcher {
			return NewVanillaLauncherWithFs(fsys, vanillaRoot)
		}},
		{id: LauncherIDMultiMC, construct: func(fsys afero.Fs, _ string) Launcher {
			return NewMultiMCLauncherWithFs(fsys, multimcRoot)
		}},
		{id: LauncherIDCurseForge, construct: func(fsys afero.Fs, _ string) Launcher {
			return NewCurseForgeLauncherWithFs(fsys, curseforgeRoot)
		}},
	}

	m := newManager(h.Fs, nil, entries)
	assert.Equal(t, []string{LauncherIDCurseForge, LauncherIDVanilla}, m.Available())

	_, ok := m.Launcher(LauncherIDMultiMC)
	assert.False(t, ok, "undetected launcher must not be retained")
}

func TestManagerDetectionFailureIsolation(t *testing.T) {
	t.Parallel()

	h := helpers.NewMemoryFS()
	require.NoError(t, h.WriteFile(filepath.Join(vanillaRoot, "launcher_profiles.json"), "{}"))

	entries := []probeEntry{
		{id: "broken-construct", construct: func(afero.Fs, string) Launcher {
			panic("constructor exploded")
		}},
		{id: "broken-detect", construct: func(afero.Fs, string) Launcher {
			return &stubLauncher{id: "broken-detect", detect: func() bool {
				panic("detect exploded")
			}}
		}},
		{id: LauncherIDVanilla, construct: func(fsys afero.Fs, _ string) Launcher {
			return NewVanillaLauncherWithFs(fsys, vanillaRoot)
		}},
	}

	m := newManager(h.Fs, nil, entries)
	assert.Equal(t, []string{LauncherIDVanilla}, m.Available())
}

func TestManagerInstallDirOverride(t *testing.T) {
	t.Parallel()

	const customRoot = "/custom/minecraft"

	h := helpers.NewMemoryFS()
	require.NoError(t, h.WriteFile(filepath.Join(customRoot, "launcher_profiles.json"), "{}"))

	cfg, err := config.NewConfig(t.TempDir(), config.BaseDefaults)
	require.NoError(t, err)
	cfg.SetLauncherDefaults(config.LaunchersDefault{
		Launcher:   LauncherIDVanilla,
		InstallDir: customRoot,
	})

	var gotPath string
	entries := []probeEntry{
		{id: LauncherIDVanilla, construct: func(fsys afero.Fs, path string) Launcher {
			gotPath = path
			return NewVanillaLauncherWithFs(fsys, path)
		}},
	}

	m := newManager(h.Fs, cfg, entries)
	assert.Equal(t, customRoot, gotPath)
	assert.Equal(t, []string{LauncherIDVanilla}, m.Available())
}

func TestManagerAllInstancesIsolatesFailures(t *testing.T) {
	t.Parallel()

	m := &Manager{detected: map[string]Launcher{}}
	m.Register("good", healthyStub("good"))

	broken := healthyStub("broken")
	broken.instances = func() []Instance { panic("listing exploded") }
	m.Register("broken", broken)

	nilReturning := healthyStub("nil")
	nilReturning.instances = func() []Instance { return nil }
	m.Register("nil", nilReturning)

	all := m.AllInstances()
	require.Len(t, all, 3)
	assert.Len(t, all["good"], 1)
	assert.NotNil(t, all["broken"])
	assert.Empty(t, all["broken"])
	assert.NotNil(t, all["nil"])
	assert.Empty(t, all["nil"])
}

func TestManagerInfosOmitsFailures(t *testing.T) {
	t.Parallel()

	m := &Manager{detected: map[string]Launcher{}}
	m.Register("good", healthyStub("good"))

	broken := healthyStub("broken")
	broken.info = func() Info { panic("info exploded") }
	m.Register("broken", broken)

	infos := m.Infos()
	require.Len(t, infos, 1)
	assert.Equal(t, "good", infos["good"].Name)
}

func TestManagerLogsAlwaysReturnsString(t *testing.T) {
	t.Parallel()

	m := &Manager{detected: map[string]Launcher{}}
	m.Register("good", healthyStub("good"))

	missing := healthyStub("missing")
	missing.logs = func(string) (string, bool) { return "", false }
	m.Register("missing", missing)

	broken := healthyStub("broken")
	broken.logs = func(string) (string, bool) { panic("read exploded") }
	m.Register("broken", broken)

	assert.Equal(t, "log content", m.Logs("good", "x"))
	assert.NotEmpty(t, m.Logs("unknown-type", "x"))
	assert.NotEmpty(t, m.Logs("missing", "x"))
	assert.NotEmpty(t, m.Logs("broken", "x"))
}

func TestManagerClearLogs(t *testing.T) {
	t.Parallel()

	m := &Manager{detected: map[string]Launcher{}}
	m.Register("good", healthyStub("good"))

	broken := healthyStub("broken")
	broken.clearLogs = func(string) bool { panic("delete exploded") }
	m.Register("broken", broken)

	assert.True(t, m.ClearLogs("good", "x"))
	assert.False(t, m.ClearLogs("unknown-type", "x"))
	assert.False(t, m.ClearLogs("broken", "x"))
}

func TestManagerLogsDir(t *testing.T) {
	t.Parallel()

	m := &Manager{detected: map[string]Launcher{}}
	m.Register("good", healthyStub("good"))

	broken := healthyStub("broken")
	broken.logsDir = func(string) (string, bool) { panic("resolve exploded") }
	m.Register("broken", broken)

	dir, ok := m.LogsDir("good", "x")
	require.True(t, ok)
	assert.Equal(t, "/logs", dir)

	_, ok = m.LogsDir("unknown-type", "x")
	assert.False(t, ok)
	_, ok = m.LogsDir("broken", "x")
	assert.False(t, ok)
}

func TestManagerRegisterOverwrites(t *testing.T) {
	t.Parallel()

	m := &Manager{detected: map[string]Launcher{}}
	m.Register("custom", healthyStub("first"))

	replacement := healthyStub("second")
	m.Register("custom", replacement)

	launcher, ok := m.Launcher("custom")
	require.True(t, ok)
	assert.Equal(t, "second", launcher.ID())
	assert.Equal(t, []string{"custom"}, m.Available())
}
