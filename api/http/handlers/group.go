package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/mathewkioko/edulink/api/http/presenter"
	"github.com/mathewkioko/edulink/pkg/group"
)

type GroupHandler struct {
	uc group.UseCase
}

func NewGroupHandler(uc group.UseCase) *GroupHandler { return &GroupHandler{uc: uc} }

type createGroupRequest struct {
	Name             string `json:"groupName"`
	Subject          string `json:"subject"`
	Description      string `json:"description"`
	MaxMembers       int    `json:"maxMembers"`
	SkillLevel       string `json:"skillLevel"`
	MeetingFrequency string `json:"meetingFrequency"`
	MeetingTime      string `json:"meetingTime"`
	MeetingDate      string `json:"meetingDate"`
	Location         string `json:"location"`
}

type groupResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"groupName"`
	Subject          string    `json:"subject"`
	Description      string    `json:"description"`
	MaxMembers       int       `json:"maxMembers"`
	SkillLevel       string    `json:"skillLevel"`
	MeetingFrequency string    `json:"meetingFrequency"`
	MeetingTime      string    `json:"meetingTime,omitempty"`
	MeetingDate      string    `json:"meetingDate,omitempty"`
	Location         string    `json:"location,omitempty"`
	CreatorID        string    `json:"creatorId"`
	CreatedAt        time.Time `json:"created_at"`
}

func toGroupResponse(g group.Group) groupResponse {
	return groupResponse{
		ID:               g.ID,
		Name:             g.Name,
		Subject:          g.Subject,
		Description:      g.Description,
		MaxMembers:       g.MaxMembers,
		SkillLevel:       g.SkillLevel,
		MeetingFrequency: g.MeetingFrequency,
		MeetingTime:      g.MeetingTime,
		MeetingDate:      g.MeetingDate,
		Location:         g.Location,
		CreatorID:        g.CreatorID,
		CreatedAt:        g.CreatedAt,
	}
}

// Create makes a new study group owned by the authenticated user.
// @Summary Create study group
// @Tags    groups
// @Accept  json
// @Produce json
// @Param   input body createGroupRequest true "group payload"
// @Security BearerAuth
// @Success 201 {object} groupResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /groups [post]
func (h *GroupHandler) Create(c *fiber.Ctx) error {
	u, ok := currentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "not authenticated")
	}
	var req createGroupRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	g, err := h.uc.Create(c.Context(), group.Group{
		Name:             req.Name,
		Subject:          req.Subject,
		Description:      req.Description,
		MaxMembers:       req.MaxMembers,
		SkillLevel:       req.SkillLevel,
		MeetingFrequency: req.MeetingFrequency,
		MeetingTime:      req.MeetingTime,
		MeetingDate:      req.MeetingDate,
		Location:         req.Location,
		CreatorID:        u.ID.String(),
	})
	if err != nil {
		var verr group.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case errors.Is(err, group.ErrStoreUnavailable):
			return presenter.Error(c, http.StatusServiceUnavailable, "group store unavailable")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to create group")
		}
	}
	return presenter.JSON(c, http.StatusCreated, toGroupResponse(g))
}

// List returns all study groups. Public: no authentication required.
// @Summary List study groups
// @Tags    groups
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /groups [get]
func (h *GroupHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	groups, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		if errors.Is(err, group.ErrStoreUnavailable) {
			return presenter.Error(c, http.StatusServiceUnavailable, "group store unavailable")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to list groups")
	}
	res := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		res = append(res, toGroupResponse(g))
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"groups": res})
}

// My returns groups created by the authenticated user.
// @Summary List my study groups
// @Tags    groups
// @Produce json
// @Security BearerAuth
// @Success 200 {array} groupResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /groups/my [get]
func (h *GroupHandler) My(c *fiber.Ctx) error {
	u, ok := currentUser(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "not authenticated")
	}
	limit, offset := parseLimitOffset(c, 50)
	groups, err := h.uc.ListByCreator(c.Context(), u.ID.String(), limit, offset)
	if err != nil {
		if errors.Is(err, group.ErrStoreUnavailable) {
			return presenter.Error(c, http.StatusServiceUnavailable, "group store unavailable")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to list groups")
	}
	res := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		res = append(res, toGroupResponse(g))
	}
	return presenter.JSON(c, http.StatusOK, res)
}
