package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetVersion(t *testing.T) {
	v, r, d := Version, Revision, BuildDate
	t.Cleanup(func() {
		Version, Revision, BuildDate = v, r, d
	})
}

func TestStrings(t *testing.T) {
	assert.Contains(t, Short(), Version)
	assert.Contains(t, Short(), Revision)
	assert.Contains(t, Detailed(), Version)
	assert.Contains(t, Detailed(), "/")
	assert.True(t, strings.HasPrefix(UserAgent(), AppName+"/"))
}

func TestFillFromBuildInfo(t *testing.T) {
	resetVersion(t)
	Version, Revision, BuildDate = devVersion, "HEAD", ""

	fillFromBuildInfo("v1.4.0", map[string]string{
		"vcs.revision": "0123456789abcdef0123",
		"vcs.modified": "true",
		"vcs.time":     "2026-10-01T08:00:00Z",
	})

	assert.Equal(t, "1.4.0", Version)
	assert.Equal(t, "0123456789ab-dirty", Revision)
	assert.Equal(t, "2026-10-01T08:00:00Z", BuildDate)
}

func TestFillFromBuildInfo_KeepsLinkerValues(t *testing.T) {
	resetVersion(t)
	Version, Revision, BuildDate = "2.0.0", "cafe", "release"

	fillFromBuildInfo("(devel)", map[string]string{"vcs.revision": "abc", "vcs.time": "x"})

	assert.Equal(t, "2.0.0", Version)
	assert.Equal(t, "cafe", Revision)
	assert.Equal(t, "release", BuildDate)
}

func TestDetailed_UnknownDate(t *testing.T) {
	resetVersion(t)
	BuildDate = ""
	assert.True(t, strings.HasSuffix(Detailed(), "; unknown)"))
}
