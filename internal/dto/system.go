package dto

// SchemaResponse is the body of GET /schema.
type SchemaResponse struct {
	Collections []string `json:"collections"`
}

// HealthResponse is the body of GET /test. Database reports degraded state
// instead of failing the request.
type HealthResponse struct {
	Backend     string   `json:"backend"`
	Database    string   `json:"database"`
	Collections []string `json:"collections,omitempty"`
}
