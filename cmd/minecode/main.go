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

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/MinecodeProject/minecode-core/pkg/config"
	"github.com/MinecodeProject/minecode-core/pkg/helpers"
	"github.com/MinecodeProject/minecode-core/pkg/launchers"
	"github.com/adrg/xdg"
	"github.com/jedib0t/go-pretty/table"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	doList := flag.Bool(
		"list",
		false,
		"list instances across all detected launchers",
	)
	doInfo := flag.Bool(
		"info",
		false,
		"show details of all detected launchers",
	)
	getLogs := flag.String(
		"logs",
		"",
		"print latest log for <launcher>:<instance>",
	)
	doClearLogs := flag.String(
		"clear-logs",
		"",
		"delete log files for <launcher>:<instance>",
	)
	getLogsDir := flag.String(
		"logs-dir",
		"",
		"print logs directory for <launcher>:<instance>",
	)
	showVersion := flag.Bool(
		"version",
		false,
		"print version and exit",
	)
	debug := flag.Bool(
		"debug",
		false,
		"enable debug logging",
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s v%s (%s)\n", config.AppName, config.AppVersion, runtime.GOOS)
		return nil
	}

	if err := helpers.InitLogging(filepath.Join(xdg.StateHome, config.AppName)); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	configDir := filepath.Join(xdg.ConfigHome, config.AppName)
	cfg, err := config.NewConfig(configDir, config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	helpers.SetLogLevel(cfg.DebugLogging() || *debug)

	mgr := launchers.NewManager(cfg)

	switch {
	case *doList:
		return listInstances(mgr)
	case *doInfo:
		return listLaunchers(mgr)
	case *getLogs != "":
		launcher, instance, err := splitTarget(*getLogs)
		if err != nil {
			return err
		}
		fmt.Println(mgr.Logs(launcher, instance))
		return nil
	case *doClearLogs != "":
		launcher, instance, err := splitTarget(*doClearLogs)
		if err != nil {
			return err
		}
		if !mgr.ClearLogs(launcher, instance) {
			return fmt.Errorf("no logs cleared for %s", *doClearLogs)
		}
		fmt.Printf("Cleared logs for %s\n", *doClearLogs)
		return nil
	case *getLogsDir != "":
		launcher, instance, err := splitTarget(*getLogsDir)
		if err != nil {
			return err
		}
		dir, ok := mgr.LogsDir(launcher, instance)
		if !ok {
			return fmt.Errorf("no logs directory for %s", *getLogsDir)
		}
		fmt.Println(dir)
		return nil
	default:
		flag.Usage()
		return nil
	}
}

// splitTarget parses a <launcher>:<instance> argument.
func splitTarget(target string) (launcher, instance string, err error) {
	parts := strings.SplitN(target, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid target %q, expected <launcher>:<instance>", target)
	}
	return parts[0], parts[1], nil
}

func listInstances(mgr *launchers.Manager) error {
	available := mgr.Available()
	if len(available) == 0 {
		return errors.New("no launchers detected")
	}

	all := mgr.AllInstances()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Launcher", "Instance", "Version", "Kind", "Path"})
	for _, id := range available {
		for _, instance := range all[id] {
			t.AppendRow(table.Row{
				id, instance.Name, instance.Version, instance.Kind, instance.Path,
			})
		}
	}
	t.Render()
	return nil
}

func listLaunchers(mgr *launchers.Manager) error {
	available := mgr.Available()
	if len(available) == 0 {
		return errors.New("no launchers detected")
	}

	infos := mgr.Infos()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Launcher", "Version", "Path", "Java"})
	for _, id := range available {
		info, ok := infos[id]
		if !ok {
			continue
		}
		version := info.Version
		if version == "" {
			version = "-"
		}
		java := info.JavaExecutable
		if java == "" {
			java = "not found"
		}
		t.AppendRow(table.Row{info.Name, version, info.Path, java})
	}
	t.Render()
	return nil
}
