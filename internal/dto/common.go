package dto

// CreatedResponse is returned by every create endpoint.
type CreatedResponse struct {
	ID string `json:"id"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

func boolOrDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
