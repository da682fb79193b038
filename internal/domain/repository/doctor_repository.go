package repository

import (
	"clinic-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	FindByID(db *gorm.DB, id int) (*entity.Doctor, error)
	FindByIDForUpdate(db *gorm.DB, id int) (*entity.Doctor, error)
	FindAll(db *gorm.DB, department string) ([]entity.Doctor, error)
	Count(db *gorm.DB) (int64, error)
	CreateBatch(db *gorm.DB, doctors []entity.Doctor) error
}
