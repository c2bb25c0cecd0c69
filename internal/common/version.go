package common

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Set at build time via -ldflags "-X".
var (
	Version   = "dev"
	Build     = "unknown"
	GitCommit = "unknown"
)

// BuildInfo identifies the running stockwise-server binary.
type BuildInfo struct {
	Version string `json:"version"`
	Build   string `json:"build"`
	Commit  string `json:"commit"`
}

// CurrentBuildInfo returns the build info in effect.
func CurrentBuildInfo() BuildInfo {
	return BuildInfo{Version: Version, Build: Build, Commit: GitCommit}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (build: %s, commit: %s)", b.Version, b.Build, b.Commit)
}

// withFallbacks fills fields still at their ldflags defaults from file values.
func (b BuildInfo) withFallbacks(file map[string]string) BuildInfo {
	if b.Version == "dev" && file["version"] != "" {
		b.Version = file["version"]
	}
	if b.Build == "unknown" && file["build"] != "" {
		b.Build = file["build"]
	}
	if b.Commit == "unknown" && file["commit"] != "" {
		b.Commit = file["commit"]
	}
	return b
}

// parseVersionFile reads "key: value" lines, skipping blanks and # comments.
func parseVersionFile(r io.Reader) map[string]string {
	out := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		out[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(val)
	}
	return out
}

// LoadVersionFromFile reads a .version file next to the binary. Its values
// only apply where ldflags left the defaults in place.
func LoadVersionFromFile() {
	exe, err := os.Executable()
	if err != nil {
		return
	}
	f, err := os.Open(filepath.Join(filepath.Dir(exe), ".version"))
	if err != nil {
		return
	}
	defer f.Close()

	info := CurrentBuildInfo().withFallbacks(parseVersionFile(f))
	Version, Build, GitCommit = info.Version, info.Build, info.Commit
}
