package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/studio-booking/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/studio-booking/internal/usecase/catalog"
	ucSetting "github.com/BruksfildServices01/studio-booking/internal/usecase/setting"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	listSettings *ucSetting.ListSettings
	listServices *ucCatalog.ListActiveServices
	availability *ucAppointment.GetAvailability
	book         *ucAppointment.BookAppointment
}

func NewPublicHandler(
	listSettings *ucSetting.ListSettings,
	listServices *ucCatalog.ListActiveServices,
	availability *ucAppointment.GetAvailability,
	book *ucAppointment.BookAppointment,
) *PublicHandler {
	return &PublicHandler{
		listSettings: listSettings,
		listServices: listServices,
		availability: availability,
		book:         book,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

// CreateAppointmentRequest accepts the booking form as JSON or urlencoded.
// date and time are accepted as short aliases.
type CreateAppointmentRequest struct {
	Name            string `json:"name" form:"name"`
	Email           string `json:"email" form:"email"`
	Phone           string `json:"phone" form:"phone"`
	Service         string `json:"service" form:"service"`
	AppointmentDate string `json:"appointment_date" form:"appointment_date"` // YYYY-MM-DD
	AppointmentTime string `json:"appointment_time" form:"appointment_time"` // HH:MM
	Date            string `json:"date" form:"date"`
	Time            string `json:"time" form:"time"`
	Message         string `json:"message" form:"message"`
}

func (r CreateAppointmentRequest) dateValue() string {
	if r.AppointmentDate != "" {
		return r.AppointmentDate
	}
	return r.Date
}

func (r CreateAppointmentRequest) timeValue() string {
	if r.AppointmentTime != "" {
		return r.AppointmentTime
	}
	return r.Time
}

type CreateAppointmentResponse struct {
	Message       string `json:"message"`
	AppointmentID uint   `json:"appointment_id"`
}

////////////////////////////////////////////////////////
// SETTINGS / SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) Settings(c *gin.Context) {
	settings, err := h.listSettings.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed_to_list_settings")
		return
	}
	httpresp.OK(c, settings)
}

func (h *PublicHandler) Services(c *gin.Context) {
	services, err := h.listServices.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed_to_list_services")
		return
	}
	httpresp.Items(c, services)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) AvailableSlots(c *gin.Context) {
	slots, err := h.availability.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, err, "availability_failed")
		return
	}
	httpresp.Items(c, slots)
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	ap, err := h.book.Execute(
		c.Request.Context(),
		ucAppointment.BookAppointmentInput{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Service: req.Service,
			Date:    req.dateValue(),
			Time:    req.timeValue(),
			Message: req.Message,
		},
	)
	if err != nil {
		respondError(c, err, "failed_to_create_appointment")
		return
	}

	c.JSON(http.StatusOK, CreateAppointmentResponse{
		Message:       "Appointment booked successfully!",
		AppointmentID: ap.ID,
	})
}
