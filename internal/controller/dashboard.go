package controller

import (
	"net/http"
	"shiplyne/internal/common"
	"shiplyne/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type dashboardRoutesHandler struct {
	dashboardService service.Dashboard
	validate         *validator.Validate
}

func newDashboardRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *dashboardRoutesHandler {
	h := &dashboardRoutesHandler{dashboardService: services.Dashboard, validate: v}
	outer.GET("/dashboard", h.GetOverview)

	return h
}

type viewerInput struct {
	Role     string `query:"role" json:"role" validate:"required,oneof=transport factory"`
	Username string `query:"username" json:"username"`
}

// /dashboard
func (h *dashboardRoutesHandler) GetOverview(c echo.Context) error {
	var input viewerInput
	if err := c.Bind(&input); err != nil {
		return respond(c, http.StatusBadRequest, msgMalformedInput, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return respond(c, http.StatusBadRequest, getAllErrorMessages(err), err)
	}
	if input.Username == defaultUsername {
		return respond(c, http.StatusUnauthorized, msgNoUsername, nil)
	}

	overview, err := h.dashboardService.Overview(c.Request().Context(), common.Role(input.Role), input.Username)
	if err == nil {
		if e := c.JSON(http.StatusOK, overview); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrInvalidRole:
		return respond(c, http.StatusBadRequest, "Unknown role", err)
	default:
		return respond(c, http.StatusInternalServerError, msgInternal, err)
	}
}
