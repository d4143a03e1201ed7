package auth

import "errors"

const (
	HeaderProject   = "X-Sync-Project"
	HeaderTimestamp = "X-Sync-Timestamp"
	HeaderSignature = "X-Sync-Signature"
)

var (
	ErrMissingHeaders   = errors.New("Missing authentication headers")
	ErrInvalidSignature = errors.New("Invalid signature")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)
