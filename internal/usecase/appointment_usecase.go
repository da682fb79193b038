package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/schedule"
	"clinic-booking-api/internal/service"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrDoctorNotAvailable  = errors.New("doctor not available on that weekday")
	ErrInvalidTimeSlot     = errors.New("invalid time slot")
	ErrSlotTaken           = errors.New("slot already booked")
)

const defaultAppointmentListLimit = 100

type AppointmentUsecase interface {
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID int) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, filter *repository.AppointmentFilter) (*dto.AppointmentListResponse, error)
	ListPatientAppointments(ctx context.Context, patientID int) (*dto.PatientAppointmentListResponse, error)
	Reschedule(ctx context.Context, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, req *dto.CancelAppointmentRequest) (*dto.CancelAppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	cache           *service.AvailabilityCache
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	cache *service.AvailabilityCache,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		cache:           cache,
	}
}

// Book validates and creates an appointment.
//
// Checks run in order, failing fast: patient exists, doctor exists, weekday
// is in the doctor's working set, time is on the doctor's slot grid, slot is
// not taken. The whole unit runs in a transaction holding a FOR UPDATE lock
// on the doctor row, so the token count, the conflict check and the insert
// are serialized per doctor. The uniq_doctor_slot constraint is the hard
// guarantee: a unique violation from a lost race still maps to ErrSlotTaken.
func (u *appointmentUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	var created *entity.Appointment
	var department string

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		patient, err := u.patientRepo.FindByID(tx, req.PatientID)
		if err != nil {
			return err
		}
		if patient == nil {
			return ErrPatientNotFound
		}

		doctor, err := u.doctorRepo.FindByIDForUpdate(tx, req.DoctorID)
		if err != nil {
			return err
		}
		if doctor == nil {
			return ErrDoctorNotFound
		}

		if err := validateSlot(doctor, date, req.Time); err != nil {
			return err
		}

		existing, err := u.appointmentRepo.FindBySlot(tx, doctor.ID, date, req.Time)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrSlotTaken
		}

		count, err := u.appointmentRepo.CountByDoctorAndDate(tx, doctor.ID, date)
		if err != nil {
			return err
		}

		payment := entity.PaymentMethodDirect
		if req.PaymentMethod != "" {
			payment = entity.PaymentMethod(req.PaymentMethod)
		}

		appointment := &entity.Appointment{
			PatientID:     patient.ID,
			DoctorID:      doctor.ID,
			ApptDate:      date,
			ApptTime:      req.Time,
			TokenNo:       int(count) + 1,
			Status:        entity.AppointmentStatusBooked,
			PaymentMethod: payment,
		}

		if err := u.appointmentRepo.Create(tx, appointment); err != nil {
			if isUniqueViolation(err, "uniq_doctor_slot") {
				return ErrSlotTaken
			}
			return err
		}

		created = appointment
		department = doctor.Department
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.cache.Invalidate(ctx, department, req.Date)

	u.log.Infof("Appointment booked: code=%s, doctor=%d, date=%s, time=%s, token=%d",
		created.Code(), created.DoctorID, req.Date, req.Time, created.TokenNo)
	return converter.AppointmentToResponse(created), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, appointmentID int) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, filter *repository.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	if filter == nil {
		filter = &repository.AppointmentFilter{}
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultAppointmentListLimit
	}

	appointments, err := u.appointmentRepo.FindFiltered(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) ListPatientAppointments(ctx context.Context, patientID int) (*dto.PatientAppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.PatientAppointmentListResponse{
		Appointments: converter.AppointmentsToPatientResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// Reschedule moves an appointment to a new date/time and optionally a new
// doctor, revalidating against the target doctor's schedule. The conflict
// check excludes the appointment itself, so moving onto its own slot is a
// no-op success. token_no and status are deliberately left untouched.
func (u *appointmentUsecase) Reschedule(ctx context.Context, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	var updatedID int
	var oldDepartment, oldDate, newDepartment string

	err = u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		appointment, err := u.appointmentRepo.FindByID(tx, req.AppointmentID)
		if err != nil {
			return err
		}
		if appointment == nil {
			return ErrAppointmentNotFound
		}

		doctorID := appointment.DoctorID
		if req.NewDoctorID != 0 {
			doctorID = req.NewDoctorID
		}

		doctor, err := u.doctorRepo.FindByIDForUpdate(tx, doctorID)
		if err != nil {
			return err
		}
		if doctor == nil {
			return ErrDoctorNotFound
		}

		if err := validateSlot(doctor, date, req.Time); err != nil {
			return err
		}

		clash, err := u.appointmentRepo.FindBySlot(tx, doctor.ID, date, req.Time)
		if err != nil {
			return err
		}
		if clash != nil && clash.ID != appointment.ID {
			return ErrSlotTaken
		}

		if err := u.appointmentRepo.UpdateSlot(tx, appointment.ID, doctor.ID, date, req.Time); err != nil {
			if isUniqueViolation(err, "uniq_doctor_slot") {
				return ErrSlotTaken
			}
			return err
		}

		updatedID = appointment.ID
		oldDepartment = appointment.Doctor.Department
		oldDate = appointment.ApptDate.Format(dateLayout)
		newDepartment = doctor.Department
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.cache.Invalidate(ctx, oldDepartment, oldDate)
	u.cache.Invalidate(ctx, newDepartment, req.Date)

	updated, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), updatedID)
	if err != nil || updated == nil {
		u.log.Warnf("Failed to reload appointment %d after reschedule: %+v", updatedID, err)
		return nil, ErrAppointmentNotFound
	}

	u.log.Infof("Appointment rescheduled: code=%s, doctor=%d, date=%s, time=%s",
		updated.Code(), updated.DoctorID, req.Date, req.Time)
	return converter.AppointmentToResponse(updated), nil
}

// Cancel flips the appointment status to cancelled. The row is kept: the
// slot stays consumed and token numbers are never reassigned. Cancelling an
// already-cancelled appointment is an idempotent success.
func (u *appointmentUsecase) Cancel(ctx context.Context, req *dto.CancelAppointmentRequest) (*dto.CancelAppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	affected, err := u.appointmentRepo.Cancel(u.db.WithContext(ctx), appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %d: %+v", appointment.ID, err)
		return nil, err
	}
	if affected > 0 {
		u.log.Infof("Appointment cancelled: code=%s", appointment.Code())
	}

	// The slot stays consumed after cancellation, but the cached entry is
	// dropped like on any other mutation.
	u.cache.Invalidate(ctx, appointment.Doctor.Department, appointment.ApptDate.Format(dateLayout))

	return &dto.CancelAppointmentResponse{
		AppointmentID:   appointment.ID,
		AppointmentCode: appointment.Code(),
		Status:          string(entity.AppointmentStatusCancelled),
	}, nil
}

// validateSlot checks the weekday and grid-membership preconditions shared
// by booking and rescheduling.
func validateSlot(doctor *entity.Doctor, date time.Time, timeOfDay string) error {
	if !doctor.WorksOn(date) {
		return ErrDoctorNotAvailable
	}

	grid, err := schedule.Grid(doctor.StartTime, doctor.EndTime, doctor.SlotMinutes)
	if err != nil {
		return err
	}
	if !schedule.Contains(grid, timeOfDay) {
		return ErrInvalidTimeSlot
	}
	return nil
}

// isUniqueViolation checks if the error is a PostgreSQL unique constraint
// violation on the named constraint.
func isUniqueViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
