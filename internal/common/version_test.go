package common

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVersionFile(t *testing.T) {
	got := parseVersionFile(strings.NewReader(`
# generated by release
version: 1.4.0
Build: 2026-10-01T10:00:00Z
commit:abc1234
garbage line
`))
	assert.Equal(t, map[string]string{
		"version": "1.4.0",
		"build":   "2026-10-01T10:00:00Z",
		"commit":  "abc1234",
	}, got)
}

func TestBuildInfo_WithFallbacks(t *testing.T) {
	file := map[string]string{"version": "1.4.0", "build": "b", "commit": "c"}

	defaults := BuildInfo{Version: "dev", Build: "unknown", Commit: "unknown"}
	assert.Equal(t, BuildInfo{Version: "1.4.0", Build: "b", Commit: "c"}, defaults.withFallbacks(file))

	// ldflags values win over the file.
	stamped := BuildInfo{Version: "2.0.0", Build: "unknown", Commit: "deadbee"}
	assert.Equal(t, BuildInfo{Version: "2.0.0", Build: "b", Commit: "deadbee"}, stamped.withFallbacks(file))
}

func TestBuildInfo_String(t *testing.T) {
	b := BuildInfo{Version: "1.0.0", Build: "x", Commit: "y"}
	assert.Equal(t, "1.0.0 (build: x, commit: y)", b.String())
}
