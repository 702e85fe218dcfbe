package model

// ErrorResponse is the envelope for every failure the API returns.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse confirms a PATCH or DELETE.
type MessageResponse struct {
	Message string `json:"message"`
}

// Relationship queries return each match annotated with its document id
// alongside the record's own identifier field.

type ProjectWithID struct {
	ID string `json:"id"`
	Project
}

type TestRequestWithID struct {
	ID string `json:"id"`
	TestRequest
}

type BugReportWithID struct {
	ID string `json:"id"`
	BugReport
}
