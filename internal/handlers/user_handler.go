package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	userdomain "github.com/BruksfildServices01/court-booking/internal/domain/user"
	"github.com/BruksfildServices01/court-booking/internal/dto"
	"github.com/BruksfildServices01/court-booking/internal/httperr"
	"github.com/BruksfildServices01/court-booking/internal/models"
)

var errSyncFields = httperr.ErrValidation("missing_fields", "Missing required fields (id, email)")

// UserHandler records users that signed in through the external auth
// provider. They have no local password.
type UserHandler struct {
	users userdomain.Repository
}

func NewUserHandler(users userdomain.Repository) *UserHandler {
	return &UserHandler{users: users}
}

type SyncUserRequest struct {
	ID    dto.Ref `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email" binding:"omitempty,email"`
}

func (r *SyncUserRequest) missing() bool {
	return r.ID.Empty() || strings.TrimSpace(r.Email) == ""
}

func (h *UserHandler) Sync(c *gin.Context) {
	var req SyncUserRequest
	if err := bindJSON(c, &req, errSyncFields); err != nil {
		httperr.Respond(c, err)
		return
	}

	ctx := c.Request.Context()

	existing, err := h.users.FindUserByID(ctx, req.ID.String())
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists", "user": existing})
		return
	}
	if !errors.Is(err, userdomain.ErrNotFound) {
		httperr.Respond(c, err)
		return
	}

	user := models.User{
		ID:    req.ID.String(),
		Name:  strings.TrimSpace(req.Name),
		Email: strings.ToLower(strings.TrimSpace(req.Email)),
		Role:  models.RoleCustomer,
	}

	err = h.users.CreateUser(ctx, &user)
	if errors.Is(err, userdomain.ErrDuplicate) {
		// a concurrent sync for the same id may have won
		if existing, findErr := h.users.FindUserByID(ctx, user.ID); findErr == nil {
			c.JSON(http.StatusOK, gin.H{"message": "User already exists", "user": existing})
			return
		}
		httperr.Respond(c, errEmailTaken)
		return
	}
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User added", "user": user})
}
