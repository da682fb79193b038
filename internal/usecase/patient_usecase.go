package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-booking-api/internal/converter"
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
	"clinic-booking-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("patient not found")

const defaultPatientListLimit = 50

type PatientUsecase interface {
	Register(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, patientID int) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context, query string, limit, offset int) (*dto.PatientListResponse, error)
	LookupByPhone(ctx context.Context, phone string) (*dto.PatientLookupResponse, error)
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

// Register creates a new patient record. Patients are immutable afterwards.
func (u *patientUsecase) Register(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		Name:     req.Name,
		Phone:    strings.TrimSpace(req.Phone),
		AltPhone: strings.TrimSpace(req.AltPhone),
		Email:    req.Email,
		Age:      req.Age,
		Gender:   req.Gender,
		Symptoms: req.Symptoms,
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to register patient: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient registered: id=%d", patient.ID)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

// ListPatients searches patients by name/phone substring, newest first.
func (u *patientUsecase) ListPatients(ctx context.Context, query string, limit, offset int) (*dto.PatientListResponse, error) {
	if limit <= 0 {
		limit = defaultPatientListLimit
	}
	if offset < 0 {
		offset = 0
	}

	patients, err := u.patientRepo.Search(u.db.WithContext(ctx), query, limit, offset)
	if err != nil {
		u.log.Warnf("Failed to search patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

// LookupByPhone finds the single patient with an exact phone match.
func (u *patientUsecase) LookupByPhone(ctx context.Context, phone string) (*dto.PatientLookupResponse, error) {
	patient, err := u.patientRepo.FindByPhone(u.db.WithContext(ctx), strings.TrimSpace(phone))
	if err != nil {
		u.log.Warnf("Failed to lookup patient by phone: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return &dto.PatientLookupResponse{
		ID:    patient.ID,
		Name:  patient.Name,
		Phone: patient.Phone,
		Email: patient.Email,
	}, nil
}
