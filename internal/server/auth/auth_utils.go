package auth

import (
	"crypto/hmac"
	"encoding/hex"
	"fmt"
	"strconv"
)

// ParseTimestamp parses the epoch milliseconds sent in the timestamp header
func ParseTimestamp(value string) (int64, error) {
	ts, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
	}
	return ts, nil
}

func signingPayload(projectID string, timestamp int64) string {
	return projectID + ":" + strconv.FormatInt(timestamp, 10)
}

// equalHex compares two hex digests in constant time.
// Malformed input never matches.
func equalHex(provided string, expected []byte) bool {
	decoded, err := hex.DecodeString(provided)
	if err != nil {
		return false
	}
	return hmac.Equal(decoded, expected)
}
