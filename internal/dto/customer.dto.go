package dto

type CustomerDTO struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	AppointmentCount int    `json:"appointment_count"`
	LastAppointment  string `json:"last_appointment"`
}
