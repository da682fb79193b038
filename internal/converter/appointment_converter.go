package converter

import (
	"clinic-booking-api/internal/delivery/dto"
	"clinic-booking-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              appointment.ID,
		AppointmentCode: appointment.Code(),
		PatientID:       appointment.PatientID,
		DoctorID:        appointment.DoctorID,
		Date:            appointment.ApptDate.Format(dateLayout),
		Time:            appointment.ApptTime,
		TokenNo:         appointment.TokenNo,
		Status:          string(appointment.Status),
		PaymentMethod:   string(appointment.PaymentMethod),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// AppointmentToPatientResponse converts an Appointment (with Doctor preloaded)
// to the per-patient listing shape with joined doctor name/department.
func AppointmentToPatientResponse(appointment *entity.Appointment) *dto.PatientAppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.PatientAppointmentResponse{
		ID:              appointment.ID,
		AppointmentCode: appointment.Code(),
		Doctor:          appointment.Doctor.Name,
		Department:      appointment.Doctor.Department,
		Date:            appointment.ApptDate.Format(dateLayout),
		Time:            appointment.ApptTime,
		TokenNo:         appointment.TokenNo,
		Status:          string(appointment.Status),
		PaymentMethod:   string(appointment.PaymentMethod),
	}
}

// AppointmentsToPatientResponses converts a slice of Appointment entities to
// per-patient listing DTOs.
func AppointmentsToPatientResponses(appointments []entity.Appointment) []dto.PatientAppointmentResponse {
	responses := make([]dto.PatientAppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToPatientResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
