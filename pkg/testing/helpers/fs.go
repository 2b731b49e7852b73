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

// Package helpers provides filesystem fixture utilities for tests.
package helpers

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// FSHelper builds launcher directory fixtures on a filesystem, in-memory by
// default.
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing.
func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// WriteFile writes content to path, creating parent directories as needed.
func (h *FSHelper) WriteFile(path, content string) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := afero.WriteFile(h.Fs, path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// MkdirAll creates a directory and all parents.
func (h *FSHelper) MkdirAll(path string) error {
	if err := h.Fs.MkdirAll(path, 0o750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// CreateLauncherProfiles writes a launcher_profiles.json under installPath
// with the given profiles map.
func (h *FSHelper) CreateLauncherProfiles(installPath string, profiles map[string]any) error {
	data, err := json.MarshalIndent(map[string]any{"profiles": profiles}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profiles to JSON: %w", err)
	}
	return h.WriteFile(filepath.Join(installPath, "launcher_profiles.json"), string(data))
}

// CreateMMCInstance writes an instances/<name>/instance.cfg with the given
// raw content.
func (h *FSHelper) CreateMMCInstance(installPath, name, cfg string) error {
	return h.WriteFile(filepath.Join(installPath, "instances", name, "instance.cfg"), cfg)
}

// CreateCurseForgeInstance writes an Instances/<name> directory, with a
// manifest.json when manifest is non-empty.
func (h *FSHelper) CreateCurseForgeInstance(installPath, name, manifest string) error {
	instanceDir := filepath.Join(installPath, "Instances", name)
	if manifest == "" {
		return h.MkdirAll(instanceDir)
	}
	return h.WriteFile(filepath.Join(instanceDir, "manifest.json"), manifest)
}

// WriteLog writes a log file into dir and stamps it with the given modify
// time.
func (h *FSHelper) WriteLog(dir, name, content string, modTime time.Time) error {
	path := filepath.Join(dir, name)
	if err := h.WriteFile(path, content); err != nil {
		return err
	}
	if err := h.Fs.Chtimes(path, modTime, modTime); err != nil {
		return fmt.Errorf("failed to set file times: %w", err)
	}
	return nil
}
