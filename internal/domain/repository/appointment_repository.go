package repository

import (
	"time"

	"clinic-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

// AppointmentFilter narrows appointment listings. Zero values mean "no filter".
type AppointmentFilter struct {
	PatientID int
	DoctorID  int
	Date      *time.Time
	Limit     int
}

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	FindBySlot(db *gorm.DB, doctorID int, date time.Time, timeOfDay string) (*entity.Appointment, error)
	CountByDoctorAndDate(db *gorm.DB, doctorID int, date time.Time) (int64, error)
	BookedTimes(db *gorm.DB, doctorID int, date time.Time) ([]string, error)
	FindFiltered(db *gorm.DB, filter *AppointmentFilter) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID int) ([]entity.Appointment, error)
	UpdateSlot(db *gorm.DB, id int, doctorID int, date time.Time, timeOfDay string) error
	Cancel(db *gorm.DB, id int) (int64, error)
}
