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
	"io/fs"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

const (
	vanillaName  = "Minecraft Launcher"
	profilesFile = "launcher_profiles.json"
	logsDirName  = "logs"
)

// VanillaLauncher handles the official Minecraft Launcher from
// Mojang/Microsoft. Its install path points at the .minecraft directory and
// its instances are the profiles inside launcher_profiles.json.
type VanillaLauncher struct {
	fs          afero.Fs
	installPath string
	findJava    JavaFinder
}

// NewVanillaLauncher creates a Vanilla launcher handler on the OS
// filesystem. An empty installPath selects the per-OS default .minecraft
// directory.
func NewVanillaLauncher(installPath string) *VanillaLauncher {
	return NewVanillaLauncherWithFs(afero.NewOsFs(), installPath)
}

// NewVanillaLauncherWithFs is NewVanillaLauncher with an explicit
// filesystem, used by tests.
func NewVanillaLauncherWithFs(fsys afero.Fs, installPath string) *VanillaLauncher {
	if installPath == "" {
		installPath = DefaultVanillaPath()
	}
	return &VanillaLauncher{
		fs:          fsys,
		installPath: installPath,
		findJava:    SystemJava,
	}
}

// DefaultVanillaPath returns the default .minecraft directory for the
// current OS.
func DefaultVanillaPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(xdg.Home, "AppData", "Roaming", ".minecraft")
	case "darwin":
		return filepath.Join(xdg.DataHome, "minecraft")
	default:
		return filepath.Join(xdg.Home, ".minecraft")
	}
}

// SetJavaFinder replaces the java lookup used by Info.
func (l *VanillaLauncher) SetJavaFinder(find JavaFinder) {
	l.findJava = find
}

func (*VanillaLauncher) ID() string {
	return LauncherIDVanilla
}

func (l *VanillaLauncher) profilesPath() string {
	return filepath.Join(l.installPath, profilesFile)
}

// Detect reports whether launcher_profiles.json exists under the install
// path.
func (l *VanillaLauncher) Detect() bool {
	ok, err := afero.Exists(l.fs, l.profilesPath())
	return err == nil && ok
}

func (l *VanillaLauncher) Info() Info {
	version := ""
	if data, err := afero.ReadFile(l.fs, l.profilesPath()); err == nil {
		version = gjson.GetBytes(data, "launcherVersion.name").String()
	}

	return Info{
		Name:           vanillaName,
		Version:        version,
		Path:           l.installPath,
		JavaExecutable: l.findJava(),
		LauncherType:   LauncherIDVanilla,
	}
}

// Instances lists the profiles from launcher_profiles.json. The profiles map
// key is the profile name; a profile without a gameDir defaults to the
// launcher's versions/<version> directory.
func (l *VanillaLauncher) Instances() []Instance {
	instances := make([]Instance, 0)

	data, err := afero.ReadFile(l.fs, l.profilesPath())
	if err != nil {
		return instances
	}
	if !gjson.ValidBytes(data) {
		log.Warn().Str("path", l.profilesPath()).Msg("launcher_profiles.json is not valid JSON")
		return instances
	}

	gjson.GetBytes(data, "profiles").ForEach(func(key, value gjson.Result) bool {
		version := value.Get("lastVersionId").String()
		if version == "" {
			version = VersionUnknown
		}

		gameDir := value.Get("gameDir").String()
		if gameDir == "" {
			gameDir = filepath.Join(l.installPath, "versions", version)
		}

		instances = append(instances, Instance{
			Name:         key.String(),
			Path:         gameDir,
			Version:      version,
			Kind:         KindProfile,
			LauncherType: LauncherIDVanilla,
		})
		return true
	})

	return instances
}

// Logs returns the most recently modified *.log file in the profile's logs
// directory.
func (l *VanillaLauncher) Logs(instance string) (string, bool) {
	logsDir, ok := l.LogsDir(instance)
	if !ok {
		return "", false
	}

	entries, err := afero.ReadDir(l.fs, logsDir)
	if err != nil {
		return "", false
	}

	var latest fs.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		if latest == nil || entry.ModTime().After(latest.ModTime()) {
			latest = entry
		}
	}
	if latest == nil {
		return "", false
	}

	return readLatestLog(l.fs, filepath.Join(logsDir, latest.Name()))
}

func (l *VanillaLauncher) ClearLogs(instance string) bool {
	logsDir, ok := l.LogsDir(instance)
	if !ok {
		return false
	}
	return clearLogFiles(l.fs, logsDir)
}

// LogsDir resolves the profile's logs directory from its gameDir, falling
// back to the launcher install path when the profile has none set.
func (l *VanillaLauncher) LogsDir(instance string) (string, bool) {
	data, err := afero.ReadFile(l.fs, l.profilesPath())
	if err != nil {
		return "", false
	}

	// Profile names can contain gjson path syntax, so index the map instead
	// of building a lookup path.
	profile, ok := gjson.GetBytes(data, "profiles").Map()[instance]
	if !ok {
		return "", false
	}

	gameDir := profile.Get("gameDir").String()
	if gameDir == "" {
		gameDir = l.installPath
	}

	logsDir := filepath.Join(gameDir, logsDirName)
	if ok, err := afero.DirExists(l.fs, logsDir); err != nil || !ok {
		return "", false
	}
	return logsDir, true
}
