package version_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/reportmanifest/pkg/version"
)

func setVersion(t *testing.T) {
	t.Helper()

	origV, origB, origC := version.Version, version.BuildTime, version.Commit
	t.Cleanup(func() { version.Version, version.BuildTime, version.Commit = origV, origB, origC })

	version.Version = "1.2.3"
	version.BuildTime = "2026-10-16T00:00:00Z"
	version.Commit = "deadbeef"
}

func TestGet_String_Short_Full(t *testing.T) {
	setVersion(t)

	info := version.Get()
	require.Equal(t, "1.2.3", info.Version)
	require.Equal(t, "2026-10-16T00:00:00Z", info.BuildTime)
	require.Equal(t, "deadbeef", info.Commit)

	require.NotEmpty(t, info.GoVersion)
	require.NotEmpty(t, info.OS)
	require.NotEmpty(t, info.Arch)

	assert.Equal(t, "1.2.3", version.Short())
	assert.Contains(t, version.Full(), "reportmanifest 1.2.3")
	assert.Contains(t, info.String(), "reportmanifest 1.2.3 (commit: deadbeef, built: 2026-10-16T00:00:00Z")
}

func TestInfo_JSON(t *testing.T) {
	setVersion(t)

	data, err := version.Get().JSON()
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "1.2.3", decoded["version"])
	assert.Equal(t, "deadbeef", decoded["commit"])
	assert.Contains(t, decoded, "go_version")
}
