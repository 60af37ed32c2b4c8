package model

// LinkedInProfile is the input to message generation. It is never persisted.
type LinkedInProfile struct {
	Name     string `json:"name" validate:"required"`
	JobTitle string `json:"job_title" validate:"required"`
	Company  string `json:"company" validate:"required"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

type PersonalizedMessage struct {
	Message string `json:"message"`
}
