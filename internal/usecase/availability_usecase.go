package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/schedule"
	"clinic-booking-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")

const dateLayout = "2006-01-02"

type AvailabilityUsecase interface {
	GetAvailability(ctx context.Context, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error)
}

type availabilityUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	cache           *service.AvailabilityCache
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	cache *service.AvailabilityCache,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:              db,
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		cache:           cache,
	}
}

// GetAvailability returns the free slots per doctor for a department and
// date. A doctor appears only when the date's weekday is in their working
// set; free slots are the doctor's grid minus times already taken by any
// appointment on that date, in grid order.
func (u *availabilityUsecase) GetAvailability(ctx context.Context, req *dto.AvailabilityRequest) (*dto.AvailabilityResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	if cached := u.cache.Get(ctx, req.Department, req.Date); cached != nil {
		return cached, nil
	}

	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx), req.Department)
	if err != nil {
		u.log.Warnf("Failed to list doctors for availability: %+v", err)
		return nil, err
	}

	availability := []dto.DoctorAvailability{}
	for _, doctor := range doctors {
		if !doctor.WorksOn(date) {
			continue
		}

		grid, err := schedule.Grid(doctor.StartTime, doctor.EndTime, doctor.SlotMinutes)
		if err != nil {
			// Misconfigured doctor record; skip rather than fail the query.
			u.log.Warnf("Skipping doctor %d with invalid schedule: %+v", doctor.ID, err)
			continue
		}

		bookedTimes, err := u.appointmentRepo.BookedTimes(u.db.WithContext(ctx), doctor.ID, date)
		if err != nil {
			u.log.Warnf("Failed to load booked times for doctor %d: %+v", doctor.ID, err)
			return nil, err
		}

		taken := make(map[string]bool, len(bookedTimes))
		for _, t := range bookedTimes {
			taken[t] = true
		}

		availability = append(availability, dto.DoctorAvailability{
			DoctorID:   doctor.ID,
			DoctorName: doctor.Name,
			FreeSlots:  schedule.Subtract(grid, taken),
		})
	}

	response := &dto.AvailabilityResponse{
		Date:         req.Date,
		Department:   req.Department,
		Availability: availability,
	}
	u.cache.Set(ctx, req.Department, req.Date, response)

	return response, nil
}
