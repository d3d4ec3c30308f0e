package main

import (
	"fmt"
	"runtime"
	"strings"
)

// Set at release build time via -ldflags "-X main.buildVersion=v0.2.0 -X main.buildCommit=$(git rev-parse HEAD)".
var (
	buildVersion = "dev"
	buildCommit  = "unknown"
)

// versionString returns the short version used in banners and logs.
func versionString() string {
	return formatVersion(buildVersion, buildCommit)
}

// versionLine is the full line printed by the version command.
func versionLine() string {
	return fmt.Sprintf("djbabel %s (%s)", versionString(), runtime.Version())
}

func formatVersion(version, commit string) string {
	v := strings.TrimSpace(version)
	if v == "" {
		v = "dev"
	}
	if v != "dev" {
		return v
	}

	c := shortCommit(commit)
	if c == "" {
		return "dev"
	}
	return "dev-" + c
}

func shortCommit(commit string) string {
	c := strings.TrimSpace(commit)
	if c == "" || c == "unknown" {
		return ""
	}
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
