package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id int) (*entity.Patient, error)
	Search(db *gorm.DB, query string, limit, offset int) ([]entity.Patient, error)
	FindByPhone(db *gorm.DB, phone string) (*entity.Patient, error)
}
