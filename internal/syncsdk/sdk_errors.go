package syncsdk

import (
	"errors"
	"fmt"

	"github.com/imroc/req/v3"
)

var (
	ErrNoServerURL = errors.New("sdk: server url missing")
	ErrNoProjectID = errors.New("sdk: project id missing")
	ErrNoSecret    = errors.New("sdk: secret missing")
)

// APIError is the error body returned by the sync server
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %d - %s", e.StatusCode, e.Message)
}

func handleAPIError(resp *req.Response, requestErr error, operation string) error {
	if requestErr != nil {
		return fmt.Errorf("http request error: %s %w", operation, requestErr)
	}

	if resp.IsErrorState() {
		if err, ok := resp.ErrorResult().(*APIError); ok && err.Message != "" {
			err.StatusCode = resp.StatusCode
			return fmt.Errorf("%s %w", operation, err)
		}
		return fmt.Errorf("%s %w", operation, &APIError{StatusCode: resp.StatusCode, Message: resp.Status})
	}

	return nil
}
