package database

import (
	"fmt"

	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// demoDoctors is the fixed roster inserted on first startup.
func demoDoctors() []entity.Doctor {
	return []entity.Doctor{
		{
			Name: "Dr. Anil Kumar", Gender: entity.GenderMale, Department: "General Medicine",
			Days:      entity.WeekdaySet{entity.Monday, entity.Tuesday, entity.Wednesday, entity.Thursday, entity.Friday, entity.Saturday},
			StartTime: "09:00", EndTime: "12:00", SlotMinutes: 10,
		},
		{
			Name: "Dr. Meera Nair", Gender: entity.GenderFemale, Department: "General Medicine",
			Days:      entity.WeekdaySet{entity.Monday, entity.Wednesday, entity.Friday},
			StartTime: "15:00", EndTime: "18:00", SlotMinutes: 10,
		},
		{
			Name: "Dr. Shalini", Gender: entity.GenderFemale, Department: "Cardiology",
			Days:      entity.WeekdaySet{entity.Monday, entity.Thursday},
			StartTime: "10:00", EndTime: "13:00", SlotMinutes: 20,
		},
		{
			Name: "Dr. Manish", Gender: entity.GenderMale, Department: "Cardiology",
			Days:      entity.WeekdaySet{entity.Tuesday, entity.Friday},
			StartTime: "10:00", EndTime: "13:00", SlotMinutes: 20,
		},
		{
			Name: "Dr. Varun Iyer", Gender: entity.GenderMale, Department: "Orthopedics",
			Days:      entity.WeekdaySet{entity.Wednesday, entity.Saturday},
			StartTime: "10:00", EndTime: "13:00", SlotMinutes: 15,
		},
		{
			Name: "Dr. Priya Menon", Gender: entity.GenderFemale, Department: "Dentistry",
			Days:      entity.WeekdaySet{entity.Tuesday, entity.Thursday, entity.Saturday},
			StartTime: "10:00", EndTime: "13:00", SlotMinutes: 15,
		},
		{
			Name: "Dr. Venkatesh", Gender: entity.GenderMale, Department: "Neurology",
			Days:      entity.WeekdaySet{entity.Monday, entity.Wednesday},
			StartTime: "15:00", EndTime: "18:00", SlotMinutes: 20,
		},
	}
}

// SeedDoctors inserts the demo roster when the doctors table is empty.
func SeedDoctors(db *gorm.DB, doctorRepo repository.DoctorRepository) error {
	count, err := doctorRepo.Count(db)
	if err != nil {
		return fmt.Errorf("failed to count doctors: %w", err)
	}
	if count > 0 {
		return nil
	}

	doctors := demoDoctors()
	if err := doctorRepo.CreateBatch(db, doctors); err != nil {
		return fmt.Errorf("failed to seed doctors: %w", err)
	}

	logrus.Infof("Seeded %d demo doctors", len(doctors))
	return nil
}
