package models

import "time"

type Appointment struct {
	ID     uint  `gorm:"primaryKey" json:"id"`
	UserID *uint `json:"user_id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;not null;index" json:"email"`
	Phone   string `gorm:"size:30;not null" json:"phone"`
	Service string `gorm:"size:100;not null" json:"service"`

	// YYYY-MM-DD and HH:MM, stored as text so ordering is lexical.
	AppointmentDate string `gorm:"size:10;not null;index" json:"appointment_date"`
	AppointmentTime string `gorm:"size:5;not null" json:"appointment_time"`

	Message string `gorm:"type:text" json:"message"`
	Status  string `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
