package repository

import (
	"errors"
	"time"

	"clinic-booking-api/internal/domain/entity"
	domainRepo "clinic-booking-api/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Doctor").Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// FindBySlot returns the appointment occupying (doctor, date, time) if any.
// Status is intentionally ignored: a cancelled appointment keeps its slot
// consumed, matching the uniq_doctor_slot constraint which covers all rows.
func (r *appointmentRepository) FindBySlot(db *gorm.DB, doctorID int, date time.Time, timeOfDay string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("doctor_id = ? AND appt_date = ? AND appt_time = ?", doctorID, date, timeOfDay).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) CountByDoctorAndDate(db *gorm.DB, doctorID int, date time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND appt_date = ?", doctorID, date).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) BookedTimes(db *gorm.DB, doctorID int, date time.Time) ([]string, error) {
	var times []string
	err := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND appt_date = ?", doctorID, date).
		Pluck("appt_time", &times).Error
	if err != nil {
		return nil, err
	}
	return times, nil
}

func (r *appointmentRepository) FindFiltered(db *gorm.DB, filter *domainRepo.AppointmentFilter) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	q := db.Model(&entity.Appointment{})
	if filter != nil {
		if filter.PatientID != 0 {
			q = q.Where("patient_id = ?", filter.PatientID)
		}
		if filter.DoctorID != 0 {
			q = q.Where("doctor_id = ?", filter.DoctorID)
		}
		if filter.Date != nil {
			q = q.Where("appt_date = ?", *filter.Date)
		}
		if filter.Limit > 0 {
			q = q.Limit(filter.Limit)
		}
	}
	err := q.Order("id DESC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("id ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateSlot(db *gorm.DB, id int, doctorID int, date time.Time, timeOfDay string) error {
	return db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"doctor_id": doctorID,
			"appt_date": date,
			"appt_time": timeOfDay,
		}).Error
}

// Cancel flips the status to cancelled ONLY if it is not already cancelled.
// Returns affected rows: 1 = cancelled now, 0 = was already cancelled.
func (r *appointmentRepository) Cancel(db *gorm.DB, id int) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND status != ?", id, entity.AppointmentStatusCancelled).
		Update("status", entity.AppointmentStatusCancelled)
	return result.RowsAffected, result.Error
}
