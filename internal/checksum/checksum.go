package checksum

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// Checksum returns the hex encoded MD5 digest of content.
// It detects accidental divergence between the caller and the disk and must not
// be used for anything security related.
func Checksum(content string) string {
	sum := md5.Sum([]byte(content))
	return hex.EncodeToString(sum[:])
}

// ChecksumReader computes the same digest as Checksum over a stream
func ChecksumReader(r io.Reader) (string, error) {
	hash := md5.New()
	if _, err := io.Copy(hash, r); err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// FileChecksum computes the digest of the file at path
func FileChecksum(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return ChecksumReader(file)
}

// Equal compares two digests
func Equal(a, b string) bool {
	return a == b
}
