package models

import "net/http"

// Outcome is the raw result of one upstream call: either a completed HTTP
// exchange (StatusCode and Body set) or a transport failure (Err set).
type Outcome struct {
	Provider   string
	URL        string
	StatusCode int
	Body       []byte
	Err        error
}

func (o Outcome) OK() bool {
	return o.Err == nil && o.StatusCode == http.StatusOK
}
