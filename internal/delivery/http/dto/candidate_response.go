package dto

type CandidateResponse struct {
	SeekerID        int64  `json:"seeker_id"`
	FullName        string `json:"full_name"`
	City            string `json:"city"`
	State           string `json:"state"`
	JobCategory     string `json:"job_category"`
	Skills          string `json:"skills"`
	Languages       string `json:"languages"`
	Certifications  string `json:"certifications"`
	Interests       string `json:"interests"`
	WorkSetting     string `json:"work_setting"`
	Travel          string `json:"travel"`
	PreferredSalary string `json:"preferred_salary"`
	CreatedAt       string `json:"created_at"`
}
