package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VetCareServices/vetclinic-api/internal/authz"
	"github.com/VetCareServices/vetclinic-api/internal/dto"
	"github.com/VetCareServices/vetclinic-api/internal/httperr"
	"github.com/VetCareServices/vetclinic-api/internal/httpresp"
	"github.com/VetCareServices/vetclinic-api/internal/models"
)

type AnimalHandler struct {
	db *gorm.DB
}

func NewAnimalHandler(db *gorm.DB) *AnimalHandler {
	return &AnimalHandler{db: db}
}

// --------- Requests ---------

type AnimalRequest struct {
	Name      string `json:"name" binding:"required"`
	Species   string `json:"species" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"`
	OwnerID   uint   `json:"owner_id" binding:"required"`
	PhotoID   *uint  `json:"photo_id"`
}

func (r *AnimalRequest) birthDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", r.BirthDate)
	if err != nil {
		return time.Time{}, httperr.Validation("birth_date", "must be a YYYY-MM-DD date")
	}
	return t, nil
}

// --------- Handlers ---------

func (h *AnimalHandler) List(c *gin.Context) {
	page, perPage := pagination(c)

	var animals []models.Animal
	if err := h.db.
		Preload("Photo").
		Preload("Owner").
		Order("name ASC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&animals).Error; err != nil {
		httperr.Internal(c, "failed_to_list_animals", "could not list animals")
		return
	}

	out := make([]dto.AnimalRead, 0, len(animals))
	for i := range animals {
		out = append(out, dto.NewAnimalRead(&animals[i]))
	}
	httpresp.List(c, out, page, perPage)
}

func (h *AnimalHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be an integer")
		return
	}

	var animal models.Animal
	if err := h.db.
		Preload("Photo").
		Preload("Owner").
		Preload("Appointments").
		First(&animal, id).Error; err != nil {
		httperr.WriteError(c, httperr.NotFoundError{Resource: "animal", ID: id})
		return
	}

	httpresp.OK(c, dto.NewAnimalDetail(&animal))
}

func (h *AnimalHandler) Create(c *gin.Context) {
	if err := authz.Allow(callerFrom(c), authz.ActionCreate, authz.ResourceAnimal, nil); err != nil {
		httperr.WriteError(c, err)
		return
	}

	var req AnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	birthDate, err := req.birthDate()
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	var owner models.Client
	if err := h.db.First(&owner, req.OwnerID).Error; err != nil {
		httperr.WriteError(c, httperr.NotFoundError{Resource: "client", ID: req.OwnerID})
		return
	}

	if req.PhotoID != nil {
		var photo models.Media
		if err := h.db.First(&photo, *req.PhotoID).Error; err != nil {
			httperr.WriteError(c, httperr.NotFoundError{Resource: "media", ID: *req.PhotoID})
			return
		}
	}

	animal := models.Animal{
		Name:      req.Name,
		Species:   req.Species,
		BirthDate: birthDate,
		OwnerID:   owner.ID,
		PhotoID:   req.PhotoID,
	}

	if err := h.db.Create(&animal).Error; err != nil {
		httperr.Internal(c, "failed_to_create_animal", "could not create animal")
		return
	}

	animal.Owner = &owner
	httpresp.Created(c, dto.NewAnimalRead(&animal))
}

// Update is a full replace; reassigning owner_id moves the animal between
// clients without ever leaving it attached to both.
func (h *AnimalHandler) Update(c *gin.Context) {
	if err := authz.Allow(callerFrom(c), authz.ActionUpdate, authz.ResourceAnimal, nil); err != nil {
		httperr.WriteError(c, err)
		return
	}

	id, ok := idParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be an integer")
		return
	}

	var animal models.Animal
	if err := h.db.First(&animal, id).Error; err != nil {
		httperr.WriteError(c, httperr.NotFoundError{Resource: "animal", ID: id})
		return
	}

	var req AnimalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	birthDate, err := req.birthDate()
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	var owner models.Client
	if err := h.db.First(&owner, req.OwnerID).Error; err != nil {
		httperr.WriteError(c, httperr.NotFoundError{Resource: "client", ID: req.OwnerID})
		return
	}

	animal.Name = req.Name
	animal.Species = req.Species
	animal.BirthDate = birthDate
	animal.OwnerID = owner.ID
	animal.PhotoID = req.PhotoID

	if err := h.db.Save(&animal).Error; err != nil {
		httperr.Internal(c, "failed_to_update_animal", "could not update animal")
		return
	}

	animal.Owner = &owner
	httpresp.OK(c, dto.NewAnimalRead(&animal))
}
