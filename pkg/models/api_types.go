package models

// ErrorResponse is the JSON body returned for failed API calls.
type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ResolveResponse confirms an anomaly resolution.
type ResolveResponse struct {
	Message string `json:"message"`
}
