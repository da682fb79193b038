package dto

import (
	"testing"

	"clinic-booking-api/pkg/validator"
)

func TestBookAppointmentRequestValidation(t *testing.T) {
	v := validator.NewValidator()

	valid := BookAppointmentRequest{
		PatientID: 1,
		DoctorID:  2,
		Date:      "2025-06-02",
		Time:      "09:30",
	}
	if err := v.Validate(&valid); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	withPayment := valid
	withPayment.PaymentMethod = "insurance"
	if err := v.Validate(&withPayment); err != nil {
		t.Fatalf("insurance payment must validate, got %v", err)
	}

	badDate := valid
	badDate.Date = "02-06-2025"
	if err := v.Validate(&badDate); err == nil {
		t.Fatal("expected error for bad date format")
	}

	badTime := valid
	badTime.Time = "9:30am"
	if err := v.Validate(&badTime); err == nil {
		t.Fatal("expected error for bad time format")
	}

	badPayment := valid
	badPayment.PaymentMethod = "bitcoin"
	if err := v.Validate(&badPayment); err == nil {
		t.Fatal("expected error for unknown payment method")
	}

	missing := BookAppointmentRequest{Date: "2025-06-02", Time: "09:30"}
	if err := v.Validate(&missing); err == nil {
		t.Fatal("expected error for missing patient/doctor ids")
	}
}

func TestRegisterPatientRequestValidation(t *testing.T) {
	v := validator.NewValidator()

	valid := RegisterPatientRequest{
		Name:  "Asha Rao",
		Phone: "9876543210",
	}
	if err := v.Validate(&valid); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	badEmail := valid
	badEmail.Email = "not-an-email"
	if err := v.Validate(&badEmail); err == nil {
		t.Fatal("expected error for bad email")
	}

	badGender := valid
	badGender.Gender = "X"
	if err := v.Validate(&badGender); err == nil {
		t.Fatal("expected error for unknown gender")
	}

	noPhone := RegisterPatientRequest{Name: "Asha Rao"}
	if err := v.Validate(&noPhone); err == nil {
		t.Fatal("expected error for missing phone")
	}
}

func TestAvailabilityRequestValidation(t *testing.T) {
	v := validator.NewValidator()

	valid := AvailabilityRequest{Department: "Cardiology", Date: "2025-06-02"}
	if err := v.Validate(&valid); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}

	if err := v.Validate(&AvailabilityRequest{Date: "2025-06-02"}); err == nil {
		t.Fatal("expected error for missing department")
	}
}
