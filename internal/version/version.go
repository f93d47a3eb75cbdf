/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the spectra-rules CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Build information, set at build time via ldflags:
//
//	-X github.com/4hrue2kd83f/spectra-lexer/internal/version.Version=v1.2.0
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GitDirty  = ""
)

// Get returns the version string for the application.
// An ldflags version wins, then the module version from build info,
// then the VCS revision recorded by the go toolchain.
func Get() string {
	if Version != "dev" {
		return Version
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return Version
	}
	if info.Main.Version != "(devel)" && info.Main.Version != "" {
		return info.Main.Version
	}

	var revision string
	var modified bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if revision == "" {
		return Version
	}
	v := "dev-" + shortCommit(revision)
	if modified {
		v += "-dirty"
	}
	return v
}

// Commit returns the commit the binary was built from, or "unknown".
func Commit() string {
	if GitCommit != "unknown" {
		return GitCommit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return GitCommit
}

// Full returns a one-line version description.
func Full() string {
	commit := Commit()
	if commit == "unknown" || strings.Contains(Get(), shortCommit(commit)) {
		return Get()
	}
	return fmt.Sprintf("%s (commit: %s)", Get(), shortCommit(commit))
}

// Info returns detailed build information.
func Info() map[string]string {
	return map[string]string{
		"version":   Get(),
		"gitCommit": Commit(),
		"buildTime": BuildTime,
		"gitDirty":  GitDirty,
		"goVersion": runtime.Version(),
	}
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
