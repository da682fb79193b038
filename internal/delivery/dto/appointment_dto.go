package dto

// Request DTOs

type BookAppointmentRequest struct {
	PatientID     int    `json:"patient_id" validate:"required,min=1"`
	DoctorID      int    `json:"doctor_id" validate:"required,min=1"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string `json:"time" validate:"required,datetime=15:04"`
	PaymentMethod string `json:"payment_method,omitempty" validate:"omitempty,oneof=direct insurance"`
}

type RescheduleAppointmentRequest struct {
	AppointmentID int    `json:"appointment_id" validate:"required,min=1"`
	Date          string `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string `json:"time" validate:"required,datetime=15:04"`
	NewDoctorID   int    `json:"new_doctor_id,omitempty" validate:"omitempty,min=1"`
}

type CancelAppointmentRequest struct {
	AppointmentID int `json:"appointment_id" validate:"required,min=1"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              int    `json:"id"`
	AppointmentCode string `json:"appointment_code"`
	PatientID       int    `json:"patient_id"`
	DoctorID        int    `json:"doctor_id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	TokenNo         int    `json:"token_no"`
	Status          string `json:"status"`
	PaymentMethod   string `json:"payment_method"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// PatientAppointmentResponse joins in the doctor's name and department for
// the per-patient listing.
type PatientAppointmentResponse struct {
	ID              int    `json:"id"`
	AppointmentCode string `json:"appointment_code"`
	Doctor          string `json:"doctor"`
	Department      string `json:"department"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	TokenNo         int    `json:"token_no"`
	Status          string `json:"status"`
	PaymentMethod   string `json:"payment_method"`
}

type PatientAppointmentListResponse struct {
	Appointments []PatientAppointmentResponse `json:"appointments"`
	Total        int                          `json:"total"`
}

type CancelAppointmentResponse struct {
	AppointmentID   int    `json:"appointment_id"`
	AppointmentCode string `json:"appointment_code"`
	Status          string `json:"status"`
}
