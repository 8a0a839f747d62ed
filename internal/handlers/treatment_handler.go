package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VetCareServices/vetclinic-api/internal/audit"
	"github.com/VetCareServices/vetclinic-api/internal/authz"
	"github.com/VetCareServices/vetclinic-api/internal/dto"
	"github.com/VetCareServices/vetclinic-api/internal/httperr"
	"github.com/VetCareServices/vetclinic-api/internal/httpresp"
	"github.com/VetCareServices/vetclinic-api/internal/models"
)

type TreatmentHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewTreatmentHandler(db *gorm.DB, ad *audit.Dispatcher) *TreatmentHandler {
	return &TreatmentHandler{db: db, audit: ad}
}

// --------- Requests ---------

type TreatmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	DurationMin int     `json:"duration_min" binding:"required"`
}

func (r *TreatmentRequest) validate() error {
	fields := map[string]string{}
	if r.Price <= 0 {
		fields["price"] = "must be positive"
	}
	if r.DurationMin <= 0 {
		fields["duration_min"] = "must be positive"
	}
	if len(fields) > 0 {
		return httperr.ValidationError{Fields: fields}
	}
	return nil
}

// --------- Handlers ---------

func (h *TreatmentHandler) List(c *gin.Context) {
	if err := authz.Allow(callerFrom(c), authz.ActionList, authz.ResourceTreatment, nil); err != nil {
		httperr.WriteError(c, err)
		return
	}

	page, perPage := pagination(c)

	var treatments []models.Treatment
	if err := h.db.
		Order("name ASC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&treatments).Error; err != nil {
		httperr.Internal(c, "failed_to_list_treatments", "could not list treatments")
		return
	}

	out := make([]dto.TreatmentRead, 0, len(treatments))
	for i := range treatments {
		out = append(out, dto.NewTreatmentRead(&treatments[i]))
	}
	httpresp.List(c, out, page, perPage)
}

func (h *TreatmentHandler) Get(c *gin.Context) {
	if err := authz.Allow(callerFrom(c), authz.ActionGet, authz.ResourceTreatment, nil); err != nil {
		httperr.WriteError(c, err)
		return
	}

	id, ok := idParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be an integer")
		return
	}

	var treatment models.Treatment
	if err := h.db.First(&treatment, id).Error; err != nil {
		httperr.WriteError(c, httperr.NotFoundError{Resource: "treatment", ID: id})
		return
	}

	httpresp.OK(c, dto.NewTreatmentRead(&treatment))
}

func (h *TreatmentHandler) Create(c *gin.Context) {
	caller := callerFrom(c)
	if err := authz.Allow(caller, authz.ActionCreate, authz.ResourceTreatment, nil); err != nil {
		httperr.WriteError(c, err)
		return
	}

	var req TreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if err := req.validate(); err != nil {
		httperr.WriteError(c, err)
		return
	}

	treatment := models.Treatment{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
	}

	if err := h.db.Create(&treatment).Error; err != nil {
		httperr.Internal(c, "failed_to_create_treatment", "could not create treatment")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "treatment_created",
		Entity:   "treatment",
		EntityID: &treatment.ID,
	})

	httpresp.Created(c, dto.NewTreatmentRead(&treatment))
}

func (h *TreatmentHandler) Update(c *gin.Context) {
	if err := authz.Allow(callerFrom(c), authz.ActionUpdate, authz.ResourceTreatment, nil); err != nil {
		httperr.WriteError(c, err)
		return
	}

	id, ok := idParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be an integer")
		return
	}

	var treatment models.Treatment
	if err := h.db.First(&treatment, id).Error; err != nil {
		httperr.WriteError(c, httperr.NotFoundError{Resource: "treatment", ID: id})
		return
	}

	var req TreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if err := req.validate(); err != nil {
		httperr.WriteError(c, err)
		return
	}

	treatment.Name = req.Name
	treatment.Description = req.Description
	treatment.Price = req.Price
	treatment.DurationMin = req.DurationMin

	if err := h.db.Save(&treatment).Error; err != nil {
		httperr.Internal(c, "failed_to_update_treatment", "could not update treatment")
		return
	}

	httpresp.OK(c, dto.NewTreatmentRead(&treatment))
}

func (h *TreatmentHandler) Delete(c *gin.Context) {
	caller := callerFrom(c)
	if err := authz.Allow(caller, authz.ActionDelete, authz.ResourceTreatment, nil); err != nil {
		httperr.WriteError(c, err)
		return
	}

	id, ok := idParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be an integer")
		return
	}

	var treatment models.Treatment
	if err := h.db.First(&treatment, id).Error; err != nil {
		httperr.WriteError(c, httperr.NotFoundError{Resource: "treatment", ID: id})
		return
	}

	// Detach from appointments first so both sides stay consistent.
	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&treatment).Association("Appointments").Clear(); err != nil {
			return err
		}
		return tx.Delete(&treatment).Error
	}); err != nil {
		httperr.Internal(c, "failed_to_delete_treatment", "could not delete treatment")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &caller.ID,
		Action:   "treatment_deleted",
		Entity:   "treatment",
		EntityID: &treatment.ID,
	})

	c.Status(http.StatusNoContent)
}
