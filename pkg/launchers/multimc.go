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
	"strings"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	ini "gopkg.in/ini.v1"
)

const (
	instancesDirName = "instances"
	instanceCfgFile  = "instance.cfg"
	latestLogFile    = "latest.log"
	minecraftDirName = ".minecraft"
)

// mmcProduct captures the fields that vary between MultiMC and its Prism
// Launcher fork. Everything else about the two products is identical on
// disk, so a single adapter implementation serves both.
type mmcProduct struct {
	defaultPath func(fsys afero.Fs) string
	id          string
	name        string
	versionFile string
}

var multimcProduct = mmcProduct{
	id:          LauncherIDMultiMC,
	name:        "MultiMC",
	versionFile: "version.txt",
	defaultPath: func(fsys afero.Fs) string {
		switch runtime.GOOS {
		case "windows":
			return firstExistingDir(fsys, []string{
				filepath.Join(xdg.Home, "AppData", "Local", "MultiMC"),
				`C:\MultiMC`,
				filepath.Join(`C:\Program Files`, "MultiMC"),
			})
		case "darwin":
			return filepath.Join(xdg.Home, "Applications", "MultiMC.app", "Contents", "MacOS")
		default:
			return filepath.Join(xdg.DataHome, "multimc")
		}
	},
}

var prismProduct = mmcProduct{
	id:          LauncherIDPrism,
	name:        "Prism Launcher",
	versionFile: "prismlauncher_version.txt",
	defaultPath: func(fsys afero.Fs) string {
		switch runtime.GOOS {
		case "windows":
			return firstExistingDir(fsys, []string{
				filepath.Join(xdg.Home, "AppData", "Local", "Prism Launcher"),
				`C:\Prism Launcher`,
				filepath.Join(`C:\Program Files`, "Prism Launcher"),
			})
		case "darwin":
			return filepath.Join(xdg.Home, "Applications", "Prism Launcher.app", "Contents", "MacOS")
		default:
			return filepath.Join(xdg.DataHome, "PrismLauncher")
		}
	},
}

// MultiMCLauncher handles MultiMC-family launchers. The same implementation
// serves both MultiMC and Prism Launcher, parameterized by an mmcProduct
// holding the display name, type tag, version-file name and default install
// path, which is all the two products differ in.
type MultiMCLauncher struct {
	fs          afero.Fs
	product     mmcProduct
	installPath string
	findJava    JavaFinder
}

// NewMultiMCLauncher creates a MultiMC handler on the OS filesystem. An
// empty installPath selects the per-OS default, probing the known Windows
// install locations in order.
func NewMultiMCLauncher(installPath string) *MultiMCLauncher {
	return NewMultiMCLauncherWithFs(afero.NewOsFs(), installPath)
}

// NewMultiMCLauncherWithFs is NewMultiMCLauncher with an explicit
// filesystem, used by tests.
func NewMultiMCLauncherWithFs(fsys afero.Fs, installPath string) *MultiMCLauncher {
	return newMMCLauncher(fsys, multimcProduct, installPath)
}

// NewPrismLauncher creates a Prism Launcher handler on the OS filesystem.
// Prism is a fork of MultiMC with an identical instance layout, so it shares
// the MultiMC implementation.
func NewPrismLauncher(installPath string) *MultiMCLauncher {
	return NewPrismLauncherWithFs(afero.NewOsFs(), installPath)
}

// NewPrismLauncherWithFs is NewPrismLauncher with an explicit filesystem,
// used by tests.
func NewPrismLauncherWithFs(fsys afero.Fs, installPath string) *MultiMCLauncher {
	return newMMCLauncher(fsys, prismProduct, installPath)
}

func newMMCLauncher(fsys afero.Fs, product mmcProduct, installPath string) *MultiMCLauncher {
	if installPath == "" {
		installPath = product.defaultPath(fsys)
	}
	return &MultiMCLauncher{
		fs:          fsys,
		product:     product,
		installPath: installPath,
		findJava:    SystemJava,
	}
}

// SetJavaFinder replaces the java lookup used by Info.
func (l *MultiMCLauncher) SetJavaFinder(find JavaFinder) {
	l.findJava = find
}

func (l *MultiMCLauncher) ID() string {
	return l.product.id
}

func (l *MultiMCLauncher) instancesDir() string {
	return filepath.Join(l.installPath, instancesDirName)
}

// Detect reports whether the instances directory exists under the install
// path.
func (l *MultiMCLauncher) Detect() bool {
	ok, err := afero.DirExists(l.fs, l.instancesDir())
	return err == nil && ok
}

func (l *MultiMCLauncher) Info() Info {
	version := ""
	if data, err := afero.ReadFile(l.fs, filepath.Join(l.installPath, l.product.versionFile)); err == nil {
		version = strings.TrimSpace(string(data))
	}

	return Info{
		Name:           l.product.name,
		Version:        version,
		Path:           l.installPath,
		JavaExecutable: l.findJava(),
		LauncherType:   l.product.id,
	}
}

// Instances lists the subdirectories of instances/ that carry an
// instance.cfg. The instance version field is the cfg's InstanceType value.
func (l *MultiMCLauncher) Instances() []Instance {
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
		cfg, ok := readInstanceCfg(l.fs, filepath.Join(instancePath, instanceCfgFile))
		if !ok {
			continue
		}

		version := cfg("InstanceType")
		if version == "" {
			version = VersionUnknown
		}

		instances = append(instances, Instance{
			Name:         entry.Name(),
			Path:         instancePath,
			Version:      version,
			Kind:         KindInstance,
			LauncherType: l.product.id,
		})
	}

	return instances
}

// Logs returns the content of the instance's latest.log, which is where
// MultiMC-family launchers keep the current game log.
func (l *MultiMCLauncher) Logs(instance string) (string, bool) {
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

func (l *MultiMCLauncher) ClearLogs(instance string) bool {
	logsDir, ok := l.LogsDir(instance)
	if !ok {
		return false
	}
	return clearLogFiles(l.fs, logsDir)
}

// LogsDir resolves instances/<name>/.minecraft/logs.
func (l *MultiMCLauncher) LogsDir(instance string) (string, bool) {
	instancePath := filepath.Join(l.instancesDir(), instance)
	if ok, err := afero.DirExists(l.fs, instancePath); err != nil || !ok {
		return "", false
	}

	logsDir := filepath.Join(instancePath, minecraftDirName, logsDirName)
	if ok, err := afero.DirExists(l.fs, logsDir); err != nil || !ok {
		return "", false
	}
	return logsDir, true
}

// readInstanceCfg loads an instance.cfg and returns a lookup over its keys.
// Section headers are ignored: MultiMC moved its keys under [General] at
// some point and both layouts are still found in the wild.
func readInstanceCfg(fsys afero.Fs, path string) (func(string) string, bool) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, false
	}

	file, err := ini.LoadSources(ini.LoadOptions{SkipUnrecognizableLines: true}, data)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("error parsing instance.cfg")
		return nil, false
	}

	return func(key string) string {
		for _, section := range file.Sections() {
			if section.HasKey(key) {
				return section.Key(key).String()
			}
		}
		return ""
	}, true
}
