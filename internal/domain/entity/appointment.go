package entity

import (
	"fmt"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusBooked    AppointmentStatus = "booked"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// PaymentMethod represents how the patient intends to pay
type PaymentMethod string

const (
	PaymentMethodDirect    PaymentMethod = "direct"
	PaymentMethodInsurance PaymentMethod = "insurance"
)

// Appointment represents a booked slot for a patient with a doctor.
// The (doctor_id, appt_date, appt_time) triple is unique at the storage
// layer (constraint uniq_doctor_slot); rows are never deleted, cancellation
// only flips the status.
type Appointment struct {
	ID            int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID     int               `gorm:"not null;index" json:"patient_id"`
	DoctorID      int               `gorm:"not null;index" json:"doctor_id"`
	ApptDate      time.Time         `gorm:"type:date;not null" json:"appt_date"`
	ApptTime      string            `gorm:"type:varchar(5);not null" json:"appt_time"`
	TokenNo       int               `gorm:"not null" json:"token_no"`
	Status        AppointmentStatus `gorm:"type:varchar(20);not null;default:'booked';index" json:"status"`
	PaymentMethod PaymentMethod     `gorm:"type:varchar(20);not null;default:'direct'" json:"payment_method"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Code returns the human-readable appointment code derived from the id.
func (a *Appointment) Code() string {
	return fmt.Sprintf("APPT-%06d", a.ID)
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
