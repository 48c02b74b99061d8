package report

import "fmt"

// ConfigError reports required settings that are missing or unusable. It is
// always raised before any network call is made.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// ResolutionError means the app label search found neither an exact nor a
// substring match.
type ResolutionError struct {
	Label string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("could not find a bob app by label %q; set BOB_APP_ID to the exact application ID", e.Label)
}

// APIError is any non-200, non-429 response from the Okta API.
type APIError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GET %s -> %d %s", e.URL, e.StatusCode, e.Body)
}
