package models

// Message is the body returned by POST /api/auth/register.
type Message struct {
	Message string `json:"message"`
}

// Status is the body returned by the GET / health probe.
type Status struct {
	// Status is "online" when the backend is serving.
	Status string `json:"status"`

	// Message is a human-readable banner.
	Message string `json:"message"`
}

// Data is the body returned by GET /api/data: every item plus the name of
// the user the bearer token belongs to.
type Data struct {
	Items      []Item `json:"items"`
	UserActive string `json:"user_active"`
}
