package models

// APIResponse is the envelope every /api endpoint wraps its payload in.
type APIResponse struct {
	Success         bool        `json:"success"`
	Data            interface{} `json:"data,omitempty"`
	Message         string      `json:"message,omitempty"`
	EducationalNote string      `json:"educational_note,omitempty"`
	Error           string      `json:"error,omitempty"`
}

// EndpointInfo describes one route in the /api index.
type EndpointInfo struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}
