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
	"runtime"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

const (
	curseforgeName         = "CurseForge Launcher"
	curseforgeInstancesDir = "Instances"
	manifestFile           = "manifest.json"
)

// CurseForgeLauncher handles the CurseForge launcher, whose instances are
// modpacks under an Instances directory, each described by a manifest.json.
type CurseForgeLauncher struct {
	fs          afero.Fs
	installPath string
	findJava    JavaFinder
}

// NewCurseForgeLauncher creates a CurseForge handler on the OS filesystem.
// An empty installPath selects the per-OS default install directory.
func NewCurseForgeLauncher(installPath string) *CurseForgeLauncher {
	return NewCurseForgeLauncherWithFs(afero.NewOsFs(), installPath)
}

// NewCurseForgeLauncherWithFs is NewCurseForgeLauncher with an explicit
// filesystem, used by tests.
func NewCurseForgeLauncherWithFs(fsys afero.Fs, installPath string) *CurseForgeLauncher {
	if installPath == "" {
		installPath = DefaultCurseForgePath()
	}
	return &CurseForgeLauncher{
		fs:          fsys,
		installPath: installPath,
		findJava:    SystemJava,
	}
}

// DefaultCurseForgePath returns the default CurseForge install directory for
// the current OS.
func DefaultCurseForgePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(xdg.Home, "AppData", "Local", "CurseForge")
	case "darwin":
		return filepath.Join(xdg.DataHome, "CurseForge")
	default:
		return filepath.Join(xdg.Home, ".curseforge")
	}
}

// SetJavaFinder replaces the java lookup used by Info.
func (l *CurseForgeLauncher) SetJavaFinder(find JavaFinder) {
	l.findJava = find
}

func (*CurseForgeLauncher) ID() string {
	return LauncherIDCurseForge
}

func (l *CurseForgeLauncher) instancesDir() string {
	return filepath.Join(l.installPath, curseforgeInstancesDir)
}

// Detect reports whether the Instances directory exists under the install
// path.
func (l *CurseForgeLauncher) Detect() bool {
	ok, err := afero.DirExists(l.fs, l.instancesDir())
	return err == nil && ok
}

// Info reports CurseForge metadata. The launcher does not expose its own
// version anywhere reliable on disk, so Version is always empty.
func (l *CurseForgeLauncher) Info() Info {
	return Info{
		Name:           curseforgeName,
		Version:        "",
		Path:           l.installPath,
		JavaExecutable: l.findJava(),
		LauncherType:   LauncherIDCurseForge,
	}
}

// Instances lists the modpacks under Instances/. The game version comes from
// each modpack's manifest.json minecraft.version field, degrading to
// VersionUnknown when the manifest is missing or unparseable.
func (l *CurseForgeLauncher) Instances() []Instance {
	instances := make([]Instance, 0)

	entries, err := afero.ReadDir(l.fs, l.instancesDir())
	if err != nil {
		return instances
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		instancePath := filepath.Join(l.instancesDir(), entry.Name())
		version := VersionUnknown
		if data, err := afero.ReadFile(l.fs, filepath.Join(instancePath, manifestFile)); err == nil {
			if v := gjson.GetBytes(data, "minecraft.version").String(); v != "" {
				version = v
			}
		}

		instances = append(instances, Instance{
			Name:         entry.Name(),
			Path:         instancePath,
			Version:      version,
			Kind:         KindModpack,
			LauncherType: LauncherIDCurseForge,
		})
	}

	return instances
}

// Logs returns the content of the instance's latest.log.
func (l *CurseForgeLauncher) Logs(instance string) (string, bool) {
	logsDir, ok := l.LogsDir(instance)
	if !ok {
		return "", false
	}

	latest := filepath.Join(logsDir, latestLogFile)
	if ok, err := afero.Exists(l.fs, latest); err != nil || !ok {
		return "", false
	}
	return readLatestLog(l.fs, latest)
}

func (l *CurseForgeLauncher) ClearLogs(instance string) bool {
	logsDir, ok := l.LogsDir(instance)
	if !ok {
		return false
	}
	return clearLogFiles(l.fs, logsDir)
}

// LogsDir resolves <instance>/.minecraft/logs, falling back to
// <instance>/logs for the modpack layouts that skip the .minecraft nesting.
func (l *CurseForgeLauncher) LogsDir(instance string) (string, bool) {
	instancePath := filepath.Join(l.instancesDir(), instance)
	if ok, err := afero.DirExists(l.fs, instancePath); err != nil || !ok {
		return "", false
	}

	logsDir := filepath.Join(instancePath, minecraftDirName, logsDirName)
	if ok, err := afero.DirExists(l.fs, logsDir); err == nil && ok {
		return logsDir, true
	}

	logsDir = filepath.Join(instancePath, logsDirName)
	if ok, err := afero.DirExists(l.fs, logsDir); err == nil && ok {
		return logsDir, true
	}
	return "", false
}
