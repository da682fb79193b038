package usecase

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"
	"clinic-booking-api/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// stubDriver backs the shared test *gorm.DB. It only ever has to begin and
// commit transactions: every query in these tests goes through the in-memory
// fakes below, so no statement reaches the connection.
type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return &stubConn{}, nil }

type stubConn struct{}

func (*stubConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("unexpected statement on stub connection")
}
func (*stubConn) Close() error              { return nil }
func (*stubConn) Begin() (driver.Tx, error) { return stubTx{}, nil }

type stubTx struct{}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

var testDB *gorm.DB

func TestMain(m *testing.M) {
	sql.Register("usecasestub", stubDriver{})
	sqlDB, err := sql.Open("usecasestub", "")
	if err != nil {
		panic(err)
	}
	testDB, err = gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type fakePatientRepo struct {
	patients map[int]entity.Patient
}

func (r *fakePatientRepo) Create(_ *gorm.DB, patient *entity.Patient) error {
	patient.ID = len(r.patients) + 1
	r.patients[patient.ID] = *patient
	return nil
}

func (r *fakePatientRepo) FindByID(_ *gorm.DB, id int) (*entity.Patient, error) {
	if patient, ok := r.patients[id]; ok {
		return &patient, nil
	}
	return nil, nil
}

func (r *fakePatientRepo) Search(_ *gorm.DB, query string, limit, offset int) ([]entity.Patient, error) {
	ids := make([]int, 0, len(r.patients))
	for id := range r.patients {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	matched := []entity.Patient{}
	for _, id := range ids {
		patient := r.patients[id]
		if query == "" ||
			strings.Contains(strings.ToLower(patient.Name), strings.ToLower(query)) ||
			strings.Contains(patient.Phone, query) {
			matched = append(matched, patient)
		}
	}
	if offset >= len(matched) {
		return []entity.Patient{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakePatientRepo) FindByPhone(_ *gorm.DB, phone string) (*entity.Patient, error) {
	for _, patient := range r.patients {
		if patient.Phone == phone {
			found := patient
			return &found, nil
		}
	}
	return nil, nil
}

type fakeDoctorRepo struct {
	doctors map[int]entity.Doctor
}

func (r *fakeDoctorRepo) FindByID(_ *gorm.DB, id int) (*entity.Doctor, error) {
	if doctor, ok := r.doctors[id]; ok {
		return &doctor, nil
	}
	return nil, nil
}

func (r *fakeDoctorRepo) FindByIDForUpdate(db *gorm.DB, id int) (*entity.Doctor, error) {
	return r.FindByID(db, id)
}

func (r *fakeDoctorRepo) FindAll(_ *gorm.DB, department string) ([]entity.Doctor, error) {
	ids := make([]int, 0, len(r.doctors))
	for id := range r.doctors {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	doctors := []entity.Doctor{}
	for _, id := range ids {
		doctor := r.doctors[id]
		if department == "" || doctor.Department == department {
			doctors = append(doctors, doctor)
		}
	}
	return doctors, nil
}

func (r *fakeDoctorRepo) Count(_ *gorm.DB) (int64, error) {
	return int64(len(r.doctors)), nil
}

func (r *fakeDoctorRepo) CreateBatch(_ *gorm.DB, doctors []entity.Doctor) error {
	for _, doctor := range doctors {
		r.doctors[doctor.ID] = doctor
	}
	return nil
}

// fakeAppointmentRepo mirrors the storage semantics of the real table:
// the (doctor, date, time) triple is unique across every status, and a
// duplicate insert surfaces as the same pgconn error the postgres
// constraint would raise.
type fakeAppointmentRepo struct {
	doctors map[int]entity.Doctor
	nextID  int
	rows    []entity.Appointment
}

func uniqSlotViolation() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "uniq_doctor_slot"}
}

func (r *fakeAppointmentRepo) slotOccupied(doctorID int, date time.Time, timeOfDay string, excludeID int) bool {
	for _, row := range r.rows {
		if row.ID != excludeID && row.DoctorID == doctorID && row.ApptDate.Equal(date) && row.ApptTime == timeOfDay {
			return true
		}
	}
	return false
}

func (r *fakeAppointmentRepo) Create(_ *gorm.DB, appointment *entity.Appointment) error {
	if r.slotOccupied(appointment.DoctorID, appointment.ApptDate, appointment.ApptTime, 0) {
		return uniqSlotViolation()
	}
	r.nextID++
	appointment.ID = r.nextID
	appointment.CreatedAt = time.Now()
	r.rows = append(r.rows, *appointment)
	return nil
}

func (r *fakeAppointmentRepo) FindByID(_ *gorm.DB, id int) (*entity.Appointment, error) {
	for _, row := range r.rows {
		if row.ID == id {
			found := row
			found.Doctor = r.doctors[row.DoctorID]
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) FindBySlot(_ *gorm.DB, doctorID int, date time.Time, timeOfDay string) (*entity.Appointment, error) {
	for _, row := range r.rows {
		if row.DoctorID == doctorID && row.ApptDate.Equal(date) && row.ApptTime == timeOfDay {
			found := row
			return &found, nil
		}
	}
	return nil, nil
}

func (r *fakeAppointmentRepo) CountByDoctorAndDate(_ *gorm.DB, doctorID int, date time.Time) (int64, error) {
	var count int64
	for _, row := range r.rows {
		if row.DoctorID == doctorID && row.ApptDate.Equal(date) {
			count++
		}
	}
	return count, nil
}

func (r *fakeAppointmentRepo) BookedTimes(_ *gorm.DB, doctorID int, date time.Time) ([]string, error) {
	times := []string{}
	for _, row := range r.rows {
		if row.DoctorID == doctorID && row.ApptDate.Equal(date) {
			times = append(times, row.ApptTime)
		}
	}
	return times, nil
}

func (r *fakeAppointmentRepo) FindFiltered(_ *gorm.DB, filter *repository.AppointmentFilter) ([]entity.Appointment, error) {
	matched := []entity.Appointment{}
	for i := len(r.rows) - 1; i >= 0; i-- {
		row := r.rows[i]
		if filter.PatientID != 0 && row.PatientID != filter.PatientID {
			continue
		}
		if filter.DoctorID != 0 && row.DoctorID != filter.DoctorID {
			continue
		}
		if filter.Date != nil && !row.ApptDate.Equal(*filter.Date) {
			continue
		}
		row.Doctor = r.doctors[row.DoctorID]
		matched = append(matched, row)
		if filter.Limit > 0 && len(matched) == filter.Limit {
			break
		}
	}
	return matched, nil
}

func (r *fakeAppointmentRepo) FindByPatientID(_ *gorm.DB, patientID int) ([]entity.Appointment, error) {
	matched := []entity.Appointment{}
	for _, row := range r.rows {
		if row.PatientID == patientID {
			row.Doctor = r.doctors[row.DoctorID]
			matched = append(matched, row)
		}
	}
	return matched, nil
}

func (r *fakeAppointmentRepo) UpdateSlot(_ *gorm.DB, id int, doctorID int, date time.Time, timeOfDay string) error {
	if r.slotOccupied(doctorID, date, timeOfDay, id) {
		return uniqSlotViolation()
	}
	for i := range r.rows {
		if r.rows[i].ID == id {
			r.rows[i].DoctorID = doctorID
			r.rows[i].ApptDate = date
			r.rows[i].ApptTime = timeOfDay
			return nil
		}
	}
	return nil
}

func (r *fakeAppointmentRepo) Cancel(_ *gorm.DB, id int) (int64, error) {
	for i := range r.rows {
		if r.rows[i].ID == id && r.rows[i].Status != entity.AppointmentStatusCancelled {
			r.rows[i].Status = entity.AppointmentStatusCancelled
			return 1, nil
		}
	}
	return 0, nil
}

// bookingFixture wires the appointment and availability usecases against
// in-memory repositories and a miniredis-backed availability cache. Two
// patients and two doctors are preloaded; 2025-06-02 is a Monday, when both
// doctors work.
type bookingFixture struct {
	patientRepo     *fakePatientRepo
	doctorRepo      *fakeDoctorRepo
	appointmentRepo *fakeAppointmentRepo
	cache           *service.AvailabilityCache
	appointments    AppointmentUsecase
	availability    AvailabilityUsecase
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := quietLogger()
	cache := service.NewAvailabilityCache(client, log, time.Minute)

	doctors := map[int]entity.Doctor{
		1: {
			ID:          1,
			Name:        "Dr. Anil Kumar",
			Department:  "General Medicine",
			Days:        entity.WeekdaySet{entity.Monday, entity.Tuesday, entity.Wednesday, entity.Thursday, entity.Friday, entity.Saturday},
			StartTime:   "09:00",
			EndTime:     "12:00",
			SlotMinutes: 10,
		},
		2: {
			ID:          2,
			Name:        "Dr. Shalini",
			Department:  "Cardiology",
			Days:        entity.WeekdaySet{entity.Monday, entity.Thursday},
			StartTime:   "10:00",
			EndTime:     "13:00",
			SlotMinutes: 20,
		},
	}

	patientRepo := &fakePatientRepo{patients: map[int]entity.Patient{
		1: {ID: 1, Name: "Asha Rao", Phone: "9876543210"},
		2: {ID: 2, Name: "Vikram Shetty", Phone: "9876500000"},
	}}
	doctorRepo := &fakeDoctorRepo{doctors: doctors}
	appointmentRepo := &fakeAppointmentRepo{doctors: doctors}

	return &bookingFixture{
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		cache:           cache,
		appointments:    NewAppointmentUsecase(testDB, log, patientRepo, doctorRepo, appointmentRepo, cache),
		availability:    NewAvailabilityUsecase(testDB, log, doctorRepo, appointmentRepo, cache),
	}
}
