package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/webshop/webshop-api/internal/api/metrics"
	"github.com/webshop/webshop-api/internal/core/domain"
	"github.com/webshop/webshop-api/internal/core/ports"
)

// UserHandler handles registration and the admin-only user operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Register creates a new customer account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// List returns every user record without secrets.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BasicAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponses(users))
}

// Get returns a single user record by id.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Security     BasicAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateRole changes the role of another user. Admins cannot retarget
// themselves; that case is rejected before the record is even looked up.
//
// @Summary      Update a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BasicAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	updated, err := h.service.UpdateRole(c.Request().Context(), ports.UpdateRoleInput{
		ActorID:  actor.ID,
		TargetID: c.Param("id"),
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}

	metrics.AdminMutationsTotal.WithLabelValues("role_update").Inc()
	return c.JSON(http.StatusOK, toUserResponse(updated))
}

// Delete removes another user and returns the removed record.
//
// @Summary      Delete a user
// @Tags         users
// @Produce      json
// @Security     BasicAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	removed, err := h.service.Delete(c.Request().Context(), ports.DeleteInput{
		ActorID:  actor.ID,
		TargetID: c.Param("id"),
	})
	if err != nil {
		return err
	}

	metrics.AdminMutationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, toUserResponse(removed))
}
