package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/studio-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/httpresp"
	"github.com/BruksfildServices01/studio-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/studio-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list      *ucAppointment.ListAppointments
	update    *ucAppointment.UpdateStatus
	customers *ucAppointment.ListCustomers
}

func NewAppointmentHandler(
	list *ucAppointment.ListAppointments,
	update *ucAppointment.UpdateStatus,
	customers *ucAppointment.ListCustomers,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:      list,
		update:    update,
		customers: customers,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateStatusRequest struct {
	Status string `json:"status" form:"status"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.list.Execute(c.Request.Context(), domain.Filter{
		Status: c.Query("status"),
		Date:   c.Query("date"),
	})
	if err != nil {
		respondError(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.Items(c, aps)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Invalid appointment id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	adminID := c.GetUint(middleware.ContextUserID)

	if _, err := h.update.Execute(c.Request.Context(), adminID, uint(id), req.Status); err != nil {
		respondError(c, err, "failed_to_update_appointment")
		return
	}

	httpresp.Message(c, "Appointment status updated successfully")
}

// ======================================================
// CUSTOMERS
// ======================================================

func (h *AppointmentHandler) Customers(c *gin.Context) {
	customers, err := h.customers.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed_to_list_customers")
		return
	}

	httpresp.List(c, customers)
}
