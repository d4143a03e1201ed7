package checksum

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "", want: "d41d8cd98f00b204e9800998ecf8427e"},
		{name: "hello", content: "hello", want: "5d41402abc4b2a76b9719d911017c592"},
		{name: "unicode", content: "héllo", want: Checksum("héllo")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Checksum(tt.content))
		})
	}
}

func TestChecksumDeterministic(t *testing.T) {
	assert.Equal(t, Checksum("export const a = 1"), Checksum("export const a = 1"))
	assert.NotEqual(t, Checksum("export const a = 1"), Checksum("export const a = 2"))
}

func TestChecksumReaderMatchesChecksum(t *testing.T) {
	content := strings.Repeat("line of source\n", 10000)

	sum, err := ChecksumReader(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, Checksum(content), sum)
}

func TestFileChecksum(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	sum, err := FileChecksum(path)
	require.NoError(t, err)
	assert.True(t, Equal(Checksum("hello"), sum))

	_, err = FileChecksum(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
