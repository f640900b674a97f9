package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mathewkioko/edulink/api/http/presenter"
	"github.com/mathewkioko/edulink/pkg/auth"
	"github.com/mathewkioko/edulink/pkg/user"
)

type UserHandler struct {
	uc user.UseCase
}

func NewUserHandler(uc user.UseCase) *UserHandler { return &UserHandler{uc: uc} }

type createUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u auth.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

// Create adds a directory entry (no credentials).
// @Summary Create user
// @Tags    users
// @Accept  json
// @Produce json
// @Param   input body createUserRequest true "user payload"
// @Success 201 {object} userResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Email) == "" {
		return presenter.Error(c, http.StatusBadRequest, "email is required")
	}
	u, err := h.uc.Create(c.Context(), req.Email, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserAlreadyExists):
			return presenter.Error(c, http.StatusConflict, "user already exists")
		case errors.Is(err, auth.ErrInvalidCredentials):
			return presenter.Error(c, http.StatusBadRequest, "email is required")
		case errors.Is(err, auth.ErrStoreUnavailable):
			return presenter.Error(c, http.StatusServiceUnavailable, "user store unavailable")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to create user")
		}
	}
	return presenter.JSON(c, http.StatusCreated, toUserResponse(u))
}

// List returns registered users.
// @Summary List users
// @Tags    users
// @Produce json
// @Success 200 {array} userResponse
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	users, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		if errors.Is(err, auth.ErrStoreUnavailable) {
			return presenter.Error(c, http.StatusServiceUnavailable, "user store unavailable")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to list users")
	}
	res := make([]userResponse, 0, len(users))
	for _, u := range users {
		res = append(res, toUserResponse(u))
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Profile returns the authenticated principal.
// @Summary Current user profile
// @Tags    users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} userResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /users/profile [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	u, ok := currentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "not authenticated")
	}
	return presenter.JSON(c, http.StatusOK, toUserResponse(u))
}
