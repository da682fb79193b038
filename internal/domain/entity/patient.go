package entity

import "time"

// Patient represents a registered patient. Patients are immutable after
// registration; appointments reference them by id.
type Patient struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(20);not null;index" json:"phone"`
	AltPhone  string    `gorm:"type:varchar(20)" json:"alt_phone,omitempty"`
	Email     string    `gorm:"type:varchar(100)" json:"email,omitempty"`
	Age       int       `json:"age,omitempty"`
	Gender    string    `gorm:"type:char(1)" json:"gender,omitempty"`
	Symptoms  string    `gorm:"type:text" json:"symptoms,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
