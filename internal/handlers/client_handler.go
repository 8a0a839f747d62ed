package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/VetCareServices/vetclinic-api/internal/authz"
	"github.com/VetCareServices/vetclinic-api/internal/dto"
	"github.com/VetCareServices/vetclinic-api/internal/httperr"
	"github.com/VetCareServices/vetclinic-api/internal/httpresp"
	"github.com/VetCareServices/vetclinic-api/internal/models"
	"github.com/VetCareServices/vetclinic-api/internal/validators"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

// --------- Requests ---------

type ClientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

func (r *ClientRequest) validate() error {
	if !validators.IsPhoneValid(r.Phone) {
		return httperr.Validation("phone", "must be exactly 10 digits")
	}
	return nil
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	if err := authz.Allow(callerFrom(c), authz.ActionList, authz.ResourceClient, nil); err != nil {
		httperr.WriteError(c, err)
		return
	}

	page, perPage := pagination(c)

	var clients []models.Client
	if err := h.db.
		Order("last_name ASC, first_name ASC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&clients).Error; err != nil {
		httperr.Internal(c, "failed_to_list_clients", "could not list clients")
		return
	}

	out := make([]dto.ClientRead, 0, len(clients))
	for i := range clients {
		out = append(out, dto.NewClientRead(&clients[i]))
	}
	httpresp.List(c, out, page, perPage)
}

func (h *ClientHandler) Get(c *gin.Context) {
	if err := authz.Allow(callerFrom(c), authz.ActionGet, authz.ResourceClient, nil); err != nil {
		httperr.WriteError(c, err)
		return
	}

	id, ok := idParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be an integer")
		return
	}

	var client models.Client
	if err := h.db.
		Preload("Animals").
		Preload("Animals.Photo").
		First(&client, id).Error; err != nil {
		httperr.WriteError(c, httperr.NotFoundError{Resource: "client", ID: id})
		return
	}

	httpresp.OK(c, dto.NewClientDetail(&client))
}

func (h *ClientHandler) Create(c *gin.Context) {
	if err := authz.Allow(callerFrom(c), authz.ActionCreate, authz.ResourceClient, nil); err != nil {
		httperr.WriteError(c, err)
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if err := req.validate(); err != nil {
		httperr.WriteError(c, err)
		return
	}

	client := models.Client{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_create_client", "could not create client")
		return
	}

	httpresp.Created(c, dto.NewClientDetail(&client))
}

// Update is a full replace of the writable field set.
func (h *ClientHandler) Update(c *gin.Context) {
	if err := authz.Allow(callerFrom(c), authz.ActionUpdate, authz.ResourceClient, nil); err != nil {
		httperr.WriteError(c, err)
		return
	}

	id, ok := idParam(c)
	if !ok {
		httperr.BadRequest(c, "invalid_id", "id must be an integer")
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		httperr.WriteError(c, httperr.NotFoundError{Resource: "client", ID: id})
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if err := req.validate(); err != nil {
		httperr.WriteError(c, err)
		return
	}

	client.FirstName = req.FirstName
	client.LastName = req.LastName
	client.Email = req.Email
	client.Phone = req.Phone
	client.Address = req.Address

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "failed_to_update_client", "could not update client")
		return
	}

	httpresp.OK(c, dto.NewClientRead(&client))
}
