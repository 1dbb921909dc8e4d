package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/serenitylabs/medspa-scheduler/internal/domain/appointment"
	"github.com/serenitylabs/medspa-scheduler/internal/httperr"
	"github.com/serenitylabs/medspa-scheduler/internal/httpresp"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
	"github.com/serenitylabs/medspa-scheduler/internal/pagination"
	"github.com/serenitylabs/medspa-scheduler/internal/timeutil"
	ucAppointment "github.com/serenitylabs/medspa-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC       *ucAppointment.CreateAppointment
	getUC          *ucAppointment.GetAppointment
	updateStatusUC *ucAppointment.UpdateAppointmentStatus
	listUC         *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	getUC *ucAppointment.GetAppointment,
	updateStatusUC *ucAppointment.UpdateAppointmentStatus,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:       createUC,
		getUC:          getUC,
		updateStatusUC: updateStatusUC,
		listUC:         listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	StartTime  string   `json:"start_time" binding:"required"`
	ServiceIDs []string `json:"service_ids" binding:"required,min=1"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	medspaID := c.Param("medspa_id")

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request_body", err.Error())
		return
	}

	start, err := timeutil.ParseTime(req.StartTime)
	if err != nil {
		httperr.Unprocessable(c, "invalid_start_time", "start_time is not a valid timestamp")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		MedspaID:   medspaID,
		StartTime:  start,
		ServiceIDs: req.ServiceIDs,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.getUC.Execute(c.Request.Context(), c.Param("appointment_id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Unprocessable(c, "invalid_request_body", err.Error())
		return
	}

	// Unknown literals are a shape problem, not a transition problem.
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		httperr.Unprocessable(c, "invalid_status", err.Error())
		return
	}

	ap, err := h.updateStatusUC.Execute(c.Request.Context(), c.Param("appointment_id"), status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	page := pagination.FromQuery(c)

	var medspaID *string
	if raw := c.Query("medspa_id"); raw != "" {
		medspaID = &raw
	}

	var status *domain.Status
	if raw := c.Query("status"); raw != "" {
		s, err := domain.ParseStatus(raw)
		if err != nil {
			httperr.Unprocessable(c, "invalid_status", err.Error())
			return
		}
		status = &s
	}

	items, nextCursor, err := h.listUC.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		MedspaID: medspaID,
		Status:   status,
		Page:     page,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Paginated[models.Appointment](c, items, nextCursor, page.Limit)
}
