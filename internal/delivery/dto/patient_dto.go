package dto

import "time"

// Request DTOs

type RegisterPatientRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone" validate:"required,min=7,max=20"`
	AltPhone string `json:"alt_phone,omitempty" validate:"omitempty,max=20"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Age      int    `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	Gender   string `json:"gender,omitempty" validate:"omitempty,oneof=M F"`
	Symptoms string `json:"symptoms,omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	AltPhone  string    `json:"alt_phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Age       int       `json:"age,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	Symptoms  string    `json:"symptoms,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

type PatientLookupResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}
