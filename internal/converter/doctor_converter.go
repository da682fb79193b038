package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	days := make([]string, len(doctor.Days))
	for i, d := range doctor.Days {
		days[i] = string(d)
	}

	return &dto.DoctorResponse{
		ID:          doctor.ID,
		Name:        doctor.Name,
		Gender:      doctor.Gender,
		Department:  doctor.Department,
		Days:        days,
		StartTime:   doctor.StartTime,
		EndTime:     doctor.EndTime,
		SlotMinutes: doctor.SlotMinutes,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		resp := DoctorToResponse(&doctor)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
