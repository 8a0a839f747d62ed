package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/VetCareServices/vetclinic-api/internal/config"
	"github.com/VetCareServices/vetclinic-api/internal/dto"
	"github.com/VetCareServices/vetclinic-api/internal/httperr"
	"github.com/VetCareServices/vetclinic-api/internal/middleware"
	"github.com/VetCareServices/vetclinic-api/internal/models"
	"github.com/VetCareServices/vetclinic-api/internal/tokens"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	tokens *tokens.Store
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, ts *tokens.Store) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, tokens: ts}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email         string   `json:"email" binding:"required,email"`
	PlainPassword string   `json:"plain_password" binding:"required,min=6"`
	FirstName     string   `json:"first_name" binding:"required"`
	LastName      string   `json:"last_name" binding:"required"`
	Roles         []string `json:"roles"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register is the User create operation: open to anyone (self-registration).
// The plaintext credential is hashed before persistence and never echoed.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.WriteError(c, httperr.ConflictError{Resource: "user", Field: "email"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.PlainPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "could not hash password")
		return
	}

	user := models.User{
		Email:        email,
		Roles:        req.Roles,
		PasswordHash: string(hashed),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "could not create user")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "could not generate token")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  dto.NewUserRead(&user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "invalid credentials")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "could not generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  dto.NewUserRead(&user),
		"token": token,
	})
}

// Logout revokes the presented token until its natural expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString(middleware.ContextTokenID)
	if jti == "" {
		httperr.BadRequest(c, "invalid_token", "token has no id")
		return
	}

	expiry, _ := c.MustGet(middleware.ContextTokenExpiry).(time.Time)

	if err := h.tokens.Revoke(c.Request.Context(), jti, time.Until(expiry)); err != nil {
		httperr.Internal(c, "failed_to_revoke_token", "could not revoke token")
		return
	}

	c.Status(http.StatusNoContent)
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   float64(user.ID),
		"roles": user.GetRoles(),
		"jti":   uuid.New().String(),
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
