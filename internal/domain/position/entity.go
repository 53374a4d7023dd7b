package position

import "time"

type Position struct {
	ID                 int64
	EmployerID         int64
	Title              string
	Description        string
	EmploymentType     string
	WorkSetting        string
	TravelRequirements string
	IsOpen             bool
	CreatedAt          time.Time
}
