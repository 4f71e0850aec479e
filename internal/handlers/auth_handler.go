package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/court-booking/internal/auth"
	userdomain "github.com/BruksfildServices01/court-booking/internal/domain/user"
	"github.com/BruksfildServices01/court-booking/internal/httperr"
	"github.com/BruksfildServices01/court-booking/internal/models"
)

var (
	errSignupFields     = httperr.ErrValidation("missing_fields", "All fields are required")
	errLoginFields      = httperr.ErrValidation("missing_fields", "Email and password are required")
	errEmailTaken       = httperr.ErrValidation("email_taken", "Email already registered.")
	errWrongCredentials = httperr.ErrValidation("invalid_credentials", "Email or password incorrect")
)

type AuthHandler struct {
	users  userdomain.Repository
	tokens *auth.TokenIssuer
}

func NewAuthHandler(users userdomain.Repository, tokens *auth.TokenIssuer) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

// --------- Requests ---------

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password"`
}

func (r *SignupRequest) missing() bool {
	return strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Email) == "" || r.Password == ""
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) missing() bool {
	return strings.TrimSpace(r.Email) == "" || r.Password == ""
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := bindJSON(c, &req, errSignupFields); err != nil {
		httperr.Respond(c, err)
		return
	}

	ctx := c.Request.Context()
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := h.users.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		httperr.Respond(c, errEmailTaken)
		return
	case !errors.Is(err, userdomain.ErrNotFound):
		httperr.Respond(c, err)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	user := models.User{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: &hashed,
		Role:     models.RoleCustomer,
	}

	if err := h.users.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, userdomain.ErrDuplicate) {
			httperr.Respond(c, errEmailTaken)
			return
		}
		httperr.Respond(c, err)
		return
	}

	zerolog.Ctx(ctx).Info().Str("user_id", user.ID).Msg("user registered")
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindJSON(c, &req, errLoginFields); err != nil {
		httperr.Respond(c, err)
		return
	}

	ctx := c.Request.Context()
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.FindUserByEmail(ctx, email)
	if errors.Is(err, userdomain.ErrNotFound) {
		httperr.Respond(c, errWrongCredentials)
		return
	}
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if user.Password == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"auth": false, "token": nil})
		return
	}

	ok, err := auth.CheckPassword(*user.Password, req.Password)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("user_id", user.ID).Msg("stored password hash unusable")
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"auth": false, "token": nil})
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"auth": true, "token": token})
}
