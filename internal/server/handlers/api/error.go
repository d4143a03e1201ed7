package api

import "fmt"

// APIError is the body of every non-2xx response
type APIError struct {
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %s", e.Message)
}
