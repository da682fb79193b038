package dto

// Request DTOs

type AvailabilityRequest struct {
	Department string `json:"department" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
}

// Response DTOs

type DoctorAvailability struct {
	DoctorID   int      `json:"doctor_id"`
	DoctorName string   `json:"doctor_name"`
	FreeSlots  []string `json:"free_slots"`
}

type AvailabilityResponse struct {
	Date         string               `json:"date"`
	Department   string               `json:"department"`
	Availability []DoctorAvailability `json:"availability"`
}
