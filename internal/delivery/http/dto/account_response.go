package dto

type AccountResponse struct {
	ID         int64  `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	SeekerID   int64  `json:"seeker_id,omitempty"`
	EmployerID int64  `json:"employer_id,omitempty"`
}
