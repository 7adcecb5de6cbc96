package api

// ErrorResponse is the JSON body returned for failed requests.
// Internal error detail never crosses this boundary.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// HealthResponse is the JSON body for the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
