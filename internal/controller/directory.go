package controller

import (
	"net/http"
	"shiplyne/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type directoryRoutesHandler struct {
	directoryService service.Directory
	validate         *validator.Validate
}

func newDirectoryRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *directoryRoutesHandler {
	h := &directoryRoutesHandler{directoryService: services.Directory, validate: v}
	outer.GET("/locations", h.GetLocations)
	outer.GET("/users", h.GetUsers)
	outer.GET("/users/:userId", h.GetUser)
	outer.GET("/users/:userId/vehicles", h.GetUserVehicles)

	return h
}

// /locations
func (h *directoryRoutesHandler) GetLocations(c echo.Context) error {
	locations, err := h.directoryService.GetLocations(c.Request().Context())
	if err != nil {
		return respond(c, http.StatusInternalServerError, msgInternal, err)
	}
	if e := c.JSON(http.StatusOK, locations); e != nil {
		return e
	}

	return nil
}

type getUsersInput struct {
	Type string `query:"type" validate:"omitempty,oneof=transport factory"`
}

// /users
func (h *directoryRoutesHandler) GetUsers(c echo.Context) error {
	var input getUsersInput
	if err := c.Bind(&input); err != nil {
		return respond(c, http.StatusBadRequest, msgMalformedInput, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return respond(c, http.StatusBadRequest, getAllErrorMessages(err), err)
	}

	users, err := h.directoryService.GetUsers(c.Request().Context(), input.Type)
	if err == nil {
		if e := c.JSON(http.StatusOK, users); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrInvalidRole:
		return respond(c, http.StatusBadRequest, "Unknown user type", err)
	default:
		return respond(c, http.StatusInternalServerError, msgInternal, err)
	}
}

// /users/:userId
func (h *directoryRoutesHandler) GetUser(c echo.Context) error {
	user, err := h.directoryService.GetUser(c.Request().Context(), c.Param("userId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, user); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrUserNotFound:
		return respond(c, http.StatusNotFound, "There is no user with given id", err)
	default:
		return respond(c, http.StatusInternalServerError, msgInternal, err)
	}
}

type getUserVehiclesInput struct {
	UserId string `param:"userId" validate:"required,max=100"`
}

// /users/:userId/vehicles
func (h *directoryRoutesHandler) GetUserVehicles(c echo.Context) error {
	input := getUserVehiclesInput{UserId: c.Param("userId")}
	if err := h.validate.Struct(input); err != nil {
		return respond(c, http.StatusBadRequest, getAllErrorMessages(err), err)
	}

	vehicles, err := h.directoryService.GetVehiclesByOwner(c.Request().Context(), input.UserId)
	if err != nil {
		return respond(c, http.StatusInternalServerError, msgInternal, err)
	}
	if e := c.JSON(http.StatusOK, vehicles); e != nil {
		return e
	}

	return nil
}
