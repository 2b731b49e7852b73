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
	"fmt"
	"sort"

	"github.com/MinecodeProject/minecode-core/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// probeEntry associates a launcher type tag with its constructor, so a
// constructor fault can be contained per product during detection.
type probeEntry struct {
	construct func(fsys afero.Fs, installPath string) Launcher
	id        string
}

// defaultProbeList returns the supported launcher products in priority
// order.
func defaultProbeList() []probeEntry {
	return []probeEntry{
		{id: LauncherIDVanilla, construct: func(fsys afero.Fs, path string) Launcher {
			return NewVanillaLauncherWithFs(fsys, path)
		}},
		{id: LauncherIDMultiMC, construct: func(fsys afero.Fs, path string) Launcher {
			return NewMultiMCLauncherWithFs(fsys, path)
		}},
		{id: LauncherIDPrism, construct: func(fsys afero.Fs, path string) Launcher {
			return NewPrismLauncherWithFs(fsys, path)
		}},
		{id: LauncherIDCurseForge, construct: func(fsys afero.Fs, path string) Launcher {
			return NewCurseForgeLauncherWithFs(fsys, path)
		}},
	}
}

// Manager aggregates operations across every launcher product detected on
// the machine. A failing adapter never blocks results from the others: every
// adapter call is contained at the manager boundary and converted to an
// empty or sentinel value.
type Manager struct {
	detected map[string]Launcher
}

// NewManager probes every supported launcher product and retains the ones
// detected on disk. cfg may be nil; when set, a configured install_dir
// override for a product takes precedence over its default path.
func NewManager(cfg *config.Instance) *Manager {
	return newManager(afero.NewOsFs(), cfg, defaultProbeList())
}

func newManager(fsys afero.Fs, cfg *config.Instance, entries []probeEntry) *Manager {
	m := &Manager{detected: make(map[string]Launcher)}
	for _, entry := range entries {
		m.probe(fsys, cfg, entry)
	}
	return m
}

func (m *Manager) probe(fsys afero.Fs, cfg *config.Instance, entry probeEntry) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("launcher", entry.id).Msgf("error detecting launcher: %v", r)
		}
	}()

	installPath := ""
	if cfg != nil {
		if def, ok := cfg.LookupLauncherDefaults(entry.id); ok {
			installPath = def.InstallDir
		}
	}

	launcher := entry.construct(fsys, installPath)
	if launcher.Detect() {
		m.detected[entry.id] = launcher
	}
}

// Available returns the detected launcher type tags, sorted for
// deterministic output.
func (m *Manager) Available() []string {
	ids := make([]string, 0, len(m.detected))
	for id := range m.detected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Launcher returns the detected adapter for a launcher type, false when the
// product was not detected.
func (m *Manager) Launcher(launcherType string) (Launcher, bool) {
	launcher, ok := m.detected[launcherType]
	return launcher, ok
}

// AllInstances lists instances from every detected launcher, keyed by
// launcher type. A failing adapter contributes an empty slice for its key.
func (m *Manager) AllInstances() map[string][]Instance {
	all := make(map[string][]Instance, len(m.detected))
	for id, launcher := range m.detected {
		all[id] = safeInstances(id, launcher)
	}
	return all
}

func safeInstances(id string, launcher Launcher) (instances []Instance) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("launcher", id).Msgf("error listing instances: %v", r)
			instances = []Instance{}
		}
	}()

	instances = launcher.Instances()
	if instances == nil {
		instances = []Instance{}
	}
	return instances
}

// Infos describes every detected launcher, keyed by launcher type. A failing
// adapter is omitted from the result.
func (m *Manager) Infos() map[string]Info {
	infos := make(map[string]Info, len(m.detected))
	for id, launcher := range m.detected {
		if info, ok := safeInfo(id, launcher); ok {
			infos[id] = info
		}
	}
	return infos
}

func safeInfo(id string, launcher Launcher) (info Info, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("launcher", id).Msgf("error getting launcher info: %v", r)
			ok = false
		}
	}()
	return launcher.Info(), true
}

// Logs returns the latest log content for an instance. It always returns a
// human-readable string: an unknown launcher type, a missing log or a
// retrieval fault all yield a diagnostic message instead.
func (m *Manager) Logs(launcherType, instance string) (content string) {
	launcher, ok := m.Launcher(launcherType)
	if !ok {
		return fmt.Sprintf("Launcher %s not found", launcherType)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("launcher", launcherType).Msgf("error retrieving logs: %v", r)
			content = fmt.Sprintf("Error retrieving logs: %v", r)
		}
	}()

	logs, found := launcher.Logs(instance)
	if !found {
		return fmt.Sprintf("No logs found for instance %s", instance)
	}
	return logs
}

// ClearLogs deletes an instance's log files. It returns false when the
// launcher type is unknown or the adapter call fails, true only on confirmed
// success.
func (m *Manager) ClearLogs(launcherType, instance string) (cleared bool) {
	launcher, ok := m.Launcher(launcherType)
	if !ok {
		log.Warn().Str("launcher", launcherType).Msg("launcher not found")
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("launcher", launcherType).Msgf("error clearing logs: %v", r)
			cleared = false
		}
	}()

	return launcher.ClearLogs(instance)
}

// LogsDir resolves the logs directory for an instance, false on any failure
// including an unknown launcher type.
func (m *Manager) LogsDir(launcherType, instance string) (dir string, ok bool) {
	launcher, found := m.Launcher(launcherType)
	if !found {
		return "", false
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("launcher", launcherType).Msgf("error getting logs directory: %v", r)
			dir, ok = "", false
		}
	}()

	return launcher.LogsDir(instance)
}

// Register inserts a launcher under an arbitrary type tag, bypassing
// auto-detection. An existing entry under the same tag is replaced. This is
// the extension point for third-party launcher support.
func (m *Manager) Register(launcherType string, launcher Launcher) {
	m.detected[launcherType] = launcher
}
