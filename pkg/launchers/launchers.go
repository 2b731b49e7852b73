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

// Package launchers discovers locally installed Minecraft launchers,
// enumerates the instances they manage and retrieves or clears per-instance
// log files. Each supported launcher product implements the Launcher
// interface with its own on-disk rules; the Manager aggregates results
// across every product detected on the machine.
package launchers

import (
	"os/exec"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Launcher type IDs, in manager probe order.
const (
	LauncherIDVanilla    = "vanilla"
	LauncherIDMultiMC    = "multimc"
	LauncherIDPrism      = "prism"
	LauncherIDCurseForge = "curseforge"
)

// Instance kinds. Each launcher product has its own notion of what an
// "instance" is, reflected in the kind tag on returned records.
const (
	KindProfile  = "profile"
	KindInstance = "instance"
	KindModpack  = "modpack"
)

// VersionUnknown labels an instance whose game version could not be
// determined from the launcher's own metadata.
const VersionUnknown = "Unknown"

// Info describes an installed launcher. It is synthesized fresh on every
// Info() call and never cached.
type Info struct {
	// Name is the launcher's display name.
	Name string
	// Version is the launcher's own version, empty when it cannot be read.
	Version string
	// Path is the launcher's install directory.
	Path string
	// JavaExecutable is the resolved java binary, empty when none is found.
	JavaExecutable string
	// LauncherType is one of the LauncherID constants.
	LauncherType string
}

// Instance is a single game profile, instance or modpack managed by a
// launcher. The launcher's own on-disk state is the source of truth; records
// are produced fresh on every listing and never persisted.
type Instance struct {
	Name         string
	Path         string
	Version      string
	Kind         string
	LauncherType string
}

// Launcher is the capability set every supported launcher product
// implements. Absence of files or directories is a normal outcome for all
// methods, reported through empty or false return values rather than errors.
type Launcher interface {
	// ID returns the launcher type tag for this product.
	ID() string
	// Detect reports whether the product's marker file or directory exists
	// under the install path. It performs existence checks only.
	Detect() bool
	// Instances lists every discoverable instance. It returns an empty slice
	// when the instance root is absent or unreadable, and degrades a single
	// instance's version to VersionUnknown on a metadata parse failure
	// instead of aborting the listing. Order follows directory iteration and
	// is not guaranteed sorted.
	Instances() []Instance
	// Logs returns the content of the instance's most relevant log file.
	// The second return is false when the instance or its logs directory
	// does not exist. A read failure on an existing log yields a diagnostic
	// string instead.
	Logs(instance string) (string, bool)
	// ClearLogs deletes all *.log files in the instance's logs directory.
	// It returns false when the directory does not exist or any deletion
	// fails.
	ClearLogs(instance string) bool
	// Info synthesizes current launcher metadata. A version lookup failure
	// degrades to an empty Version.
	Info() Info
	// LogsDir resolves the directory holding the instance's logs, false when
	// it cannot be determined or does not exist on disk.
	LogsDir(instance string) (string, bool)
}

// JavaFinder locates a java executable for Info reporting, returning an
// empty string when none can be found. Adapters take it as an injected
// capability so tests can substitute it.
type JavaFinder func() string

// SystemJava resolves java on the OS executable search path.
func SystemJava() string {
	path, err := exec.LookPath("java")
	if err != nil {
		return ""
	}
	return path
}

// firstExistingDir probes candidate directories in order and returns the
// first that exists, falling back to the first candidate when none do.
func firstExistingDir(fsys afero.Fs, candidates []string) string {
	for _, dir := range candidates {
		if ok, err := afero.DirExists(fsys, dir); err == nil && ok {
			return dir
		}
	}
	return candidates[0]
}

// clearLogFiles deletes every *.log file directly inside dir. Files with
// other extensions are left alone.
func clearLogFiles(fsys afero.Fs, dir string) bool {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("error listing logs directory")
		return false
	}

	cleared := true
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		if err := fsys.Remove(filepath.Join(dir, entry.Name())); err != nil {
			log.Warn().Err(err).Str("file", entry.Name()).Msg("error deleting log file")
			cleared = false
		}
	}
	return cleared
}

// readLatestLog returns the content of path, degrading a read failure on an
// existing file to a diagnostic string rather than an error.
func readLatestLog(fsys afero.Fs, path string) (string, bool) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("error reading log file")
		return "Error reading log: " + err.Error(), true
	}
	return string(data), true
}
