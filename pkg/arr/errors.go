package arr

import "fmt"

// StatusError is the error returned for any upstream response with status
// code 400 or above. The rendered message is what tool callers see, so its
// shape is stable: "API error: <status> - <body>".
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error: %d - %s", e.Status, e.Body)
}
