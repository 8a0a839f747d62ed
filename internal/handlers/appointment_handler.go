package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/VetCareServices/vetclinic-api/internal/authz"
	"github.com/VetCareServices/vetclinic-api/internal/dto"
	"github.com/VetCareServices/vetclinic-api/internal/httperr"
	"github.com/VetCareServices/vetclinic-api/internal/httpresp"
	ucAppointment "github.com/VetCareServices/vetclinic-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	payUC    *ucAppointment.PayAppointment
	listUC   *ucAppointment.ListAppointments
	getUC    *ucAppointment.GetAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	payUC *ucAppointment.PayAppointment,
	listUC *ucAppointment.ListAppointments,
	getUC *ucAppointment.GetAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		updateUC: updateUC,
		payUC:    payUC,
		listUC:   listUC,
		getUC:    getUC,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	AppointmentDate time.Time `json:"appointment_date" binding:"required"`
	Reason          string    `json:"reason" binding:"required"`
	AnimalID        uint      `json:"animal_id" binding:"required"`
	AssistantID     uint      `json:"assistant_id"`
}

type UpdateAppointmentRequest struct {
	AppointmentDate time.Time `json:"appointment_date" binding:"required"`
	Reason          string    `json:"reason" binding:"required"`
	Status          string    `json:"status" binding:"required"`
	IsPaid          bool      `json:"is_paid"`
	VeterinarianID  *uint     `json:"veterinarian_id"`
	TreatmentIDs    []uint    `json:"treatment_ids"`
}

type PayAppointmentRequest struct {
	PayerEmail string `json:"payer_email"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) List(c *gin.Context) {
	if err := authz.Allow(callerFrom(c), authz.ActionList, authz.ResourceAppointment, nil); err != nil {
		httperr.WriteError(c, err)
		return
	}

	page, perPage := pagination(c)

	apps, err := h.listUC.Execute(c.Request.Context(), page, perPage)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	out := make([]dto.AppointmentRead, 0, len(apps))
	for i := range apps {
		out = append(out, dto.NewAppointmentRead(&apps[i]))
	}
	httpresp.List(c, out, page, perPage)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	if err := authz.Allow(callerFrom(c), authz.ActionGet, authz.ResourceAppointment, nil); err != nil {
		httperr.WriteError(c, err)
		return
	}

	id, ok := idParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be an integer")
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentDetail(ap))
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	caller := callerFrom(c)
	if err := authz.Allow(caller, authz.ActionCreate, authz.ResourceAppointment, nil); err != nil {
		httperr.WriteError(c, err)
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), caller.ID, ucAppointment.CreateAppointmentInput{
		AppointmentDate: req.AppointmentDate,
		Reason:          req.Reason,
		AnimalID:        req.AnimalID,
		AssistantID:     req.AssistantID,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.Created(c, dto.NewAppointmentRead(ap))
}

// Update defers the record-aware policy check to the use case, which has the
// record in hand.
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be an integer")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), callerFrom(c), id, ucAppointment.UpdateAppointmentInput{
		AppointmentDate: req.AppointmentDate,
		Reason:          req.Reason,
		Status:          req.Status,
		IsPaid:          req.IsPaid,
		VeterinarianID:  req.VeterinarianID,
		TreatmentIDs:    req.TreatmentIDs,
	})
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentRead(ap))
}

func (h *AppointmentHandler) Pay(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be an integer")
		return
	}

	var req PayAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.payUC.Execute(c.Request.Context(), callerFrom(c), id, req.PayerEmail)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, dto.NewAppointmentRead(ap))
}
