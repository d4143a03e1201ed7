package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/jonboulle/clockwork"
)

// Verifier authenticates sync requests.
// A request is valid when its signature is HMAC-SHA256(secret, "{projectId}:{timestamp}")
// and the timestamp lies within the allowed clock skew of the server time.
type Verifier struct {
	secret  []byte
	maxSkew time.Duration
	clock   clockwork.Clock
}

func NewVerifier(config *Config) *Verifier {
	return NewVerifierWithClock(config, clockwork.NewRealClock())
}

func NewVerifierWithClock(config *Config, clock clockwork.Clock) *Verifier {
	maxSkew := config.MaxClockSkew
	if maxSkew <= 0 {
		maxSkew = DefaultMaxClockSkew
	}

	return &Verifier{
		secret:  []byte(config.Secret),
		maxSkew: maxSkew,
		clock:   clock,
	}
}

// Verify reports whether signature is valid for projectID at timestamp (epoch ms)
func (v *Verifier) Verify(projectID string, timestamp int64, signature string) bool {
	if !v.isFresh(timestamp) {
		return false
	}
	return equalHex(signature, v.mac(projectID, timestamp))
}

// Sign returns the lowercase hex signature for projectID at timestamp (epoch ms)
func (v *Verifier) Sign(projectID string, timestamp int64) string {
	return hex.EncodeToString(v.mac(projectID, timestamp))
}

// Now returns the verifier's current time in epoch milliseconds
func (v *Verifier) Now() int64 {
	return v.clock.Now().UnixMilli()
}

// isFresh only compares the caller's timestamp, it is never used in arithmetic
func (v *Verifier) isFresh(timestamp int64) bool {
	now := v.Now()
	skew := v.maxSkew.Milliseconds()
	return timestamp >= now-skew && timestamp <= now+skew
}

func (v *Verifier) mac(projectID string, timestamp int64) []byte {
	h := hmac.New(sha256.New, v.secret)
	h.Write([]byte(signingPayload(projectID, timestamp)))
	return h.Sum(nil)
}
