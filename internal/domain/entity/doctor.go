package entity

import "time"

// Doctor represents a doctor available for appointments. Doctors are seeded
// at startup; there is no editing flow.
type Doctor struct {
	ID          int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"type:varchar(100);not null" json:"name"`
	Gender      string     `gorm:"type:char(1)" json:"gender"`
	Department  string     `gorm:"type:varchar(100);not null;index" json:"department"`
	Days        WeekdaySet `gorm:"type:varchar(50);not null" json:"days"`
	StartTime   string     `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime     string     `gorm:"type:varchar(5);not null" json:"end_time"`
	SlotMinutes int        `gorm:"not null;default:15" json:"slot_minutes"`

	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// WorksOn reports whether the doctor accepts appointments on the weekday of
// the given date.
func (d *Doctor) WorksOn(date time.Time) bool {
	return d.Days.Contains(WeekdayOf(date))
}
