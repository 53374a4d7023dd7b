package dto

type PreferencesRequest struct {
	JobCategory         string `json:"jobCategory"`
	JobCategoryPriority string `json:"jobCategoryPriority"`

	EducationLevel         string `json:"educationLevel"`
	EducationLevelPriority string `json:"educationLevelPriority"`

	MinYearsExperience      int    `json:"minYearsExperience"`
	YearsExperiencePriority string `json:"yearsExperiencePriority"`

	WorkSetting         string `json:"workSetting"`
	WorkSettingPriority string `json:"workSettingPriority"`

	TravelRequirements string `json:"travelRequirements"`
	TravelPriority     string `json:"travelPriority"`

	PreferredSalary string `json:"preferredSalary"`
	SalaryPriority  string `json:"salaryPriority"`
}

type PreferencesResponse struct {
	PositionID int64 `json:"positionId"`

	JobCategory         string `json:"jobCategory"`
	JobCategoryPriority string `json:"jobCategoryPriority"`

	EducationLevel         string `json:"educationLevel"`
	EducationLevelPriority string `json:"educationLevelPriority"`

	MinYearsExperience      int    `json:"minYearsExperience"`
	YearsExperiencePriority string `json:"yearsExperiencePriority"`

	WorkSetting         string `json:"workSetting"`
	WorkSettingPriority string `json:"workSettingPriority"`

	TravelRequirements string `json:"travelRequirements"`
	TravelPriority     string `json:"travelPriority"`

	PreferredSalary string `json:"preferredSalary"`
	SalaryPriority  string `json:"salaryPriority"`
}
