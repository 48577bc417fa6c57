package response

// InterviewStatus is the client view of the visitor's mock interview.
type InterviewStatus struct {
	State   string `json:"state"`
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Counter string `json:"counter,omitempty"`
}

// SessionStatus is returned by GET /api/session.
type SessionStatus struct {
	VisitorID  string          `json:"visitor_id"`
	Theme      string          `json:"theme"`
	CVUploaded bool            `json:"cv_uploaded"`
	AIEnabled  bool            `json:"ai_enabled"`
	Interview  InterviewStatus `json:"interview"`
}
