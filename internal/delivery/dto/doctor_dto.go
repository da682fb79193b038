package dto

// Response DTOs

type DoctorResponse struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Gender      string   `json:"gender,omitempty"`
	Department  string   `json:"department"`
	Days        []string `json:"days"`
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	SlotMinutes int      `json:"slot_minutes"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
