// Bumps the patch component of AppVersion in pkg/config/app.go.
//
// Usage:
//
//	go run ./scripts/tasks/utils/bumpversion        # prints new version
//	go run ./scripts/tasks/utils/bumpversion -git   # commits, tags, and pushes
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"

	"golang.org/x/mod/semver"
)

const appFile = "pkg/config/app.go"

var versionRe = regexp.MustCompile(`(AppVersion = ")(\d+)\.(\d+)\.(\d+)(")`)

func main() {
	doGit := flag.Bool("git", false, "commit, tag and push the bumped version")
	flag.Parse()

	newVersion, err := bumpPatch()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	fmt.Println(newVersion)

	if *doGit {
		if err := gitCommitAndTag(newVersion); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
	}
}

func bumpPatch() (string, error) {
	data, err := os.ReadFile(appFile)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", appFile, err)
	}

	m := versionRe.FindSubmatch(data)
	if m == nil {
		return "", fmt.Errorf(`could not find AppVersion = "X.Y.Z" in %s`, appFile)
	}

	patch, err := strconv.Atoi(string(m[4]))
	if err != nil {
		return "", fmt.Errorf("failed to parse patch version: %w", err)
	}

	newVersion := fmt.Sprintf("%s.%s.%d", m[2], m[3], patch+1)
	if !semver.IsValid("v" + newVersion) {
		return "", fmt.Errorf("bumped version is not a valid semver: %s", newVersion)
	}

	newData := versionRe.ReplaceAll(data, []byte("${1}"+newVersion+"${5}"))
	if err := os.WriteFile(appFile, newData, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", appFile, err)
	}
	return newVersion, nil
}

func gitCommitAndTag(version string) error {
	tag := "v" + version
	commands := [][]string{
		{"git", "add", appFile},
		{"git", "commit", "-m", "Bump version to " + version},
		{"git", "tag", tag},
		{"git", "push"},
		{"git", "push", "origin", tag},
	}

	for _, args := range commands {
		cmd := exec.Command(args[0], args[1:]...) //nolint:gosec // fixed git subcommands
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s failed: %w", args[1], err)
		}
	}
	return nil
}
