package controller

import (
	"net/http"
	"shiplyne/internal/common"
	"shiplyne/internal/entity"
	"shiplyne/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type shipmentRoutesHandler struct {
	shipmentService service.Shipment
	validate        *validator.Validate
}

func newShipmentRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *shipmentRoutesHandler {
	h := &shipmentRoutesHandler{shipmentService: services.Shipment, validate: v}
	outer.GET("/shipments", h.GetShipments)
	outer.GET("/shipments/:shipmentId", h.GetShipment)
	outer.PUT("/shipments/:shipmentId/status", h.UpdateShipmentStatus)
	outer.PUT("/shipments/:shipmentId/tracking", h.ReportTracking)

	outer.POST("/shipments/views", h.OpenView)
	outer.GET("/shipments/views/:viewId", h.GetView)
	outer.PUT("/shipments/views/:viewId/:shipmentId/paid", h.MarkPaid)
	outer.PUT("/shipments/views/:viewId/:shipmentId/rating", h.SetRating)
	outer.DELETE("/shipments/views/:viewId", h.CloseView)

	return h
}

func shipmentError(c echo.Context, err error) error {
	switch err {
	case service.ErrShipmentNotFound:
		return respond(c, http.StatusNotFound, "There is no shipment with given id", err)
	case service.ErrViewNotFound:
		return respond(c, http.StatusNotFound, "There is no shipment view with given id", err)
	case service.ErrInvalidStatus:
		return respond(c, http.StatusBadRequest, "Unknown shipment status", err)
	case service.ErrInvalidRole:
		return respond(c, http.StatusBadRequest, "Unknown role", err)
	case service.ErrRatingOutOfRange:
		return respond(c, http.StatusBadRequest, "Rating must be between 1 and 5", err)
	case service.ErrInvalidTransition:
		return respond(c, http.StatusConflict, "Shipment can't move to that status", err)
	case service.ErrShipmentNotDelivered:
		return respond(c, http.StatusConflict, "Shipment isn't delivered yet", err)
	case service.ErrViewForbidden:
		return respond(c, http.StatusForbidden, "Only the factory owner can do that once the shipment is delivered", err)
	default:
		return respond(c, http.StatusInternalServerError, msgInternal, err)
	}
}

type getShipmentsInput struct {
	Role     string `query:"role" validate:"required,oneof=transport factory"`
	Username string `query:"username"`
	Status   string `query:"status" validate:"omitempty,oneof=all scheduled in_transit delivered cancelled"`
}

// /shipments
func (h *shipmentRoutesHandler) GetShipments(c echo.Context) error {
	var input getShipmentsInput
	if err := c.Bind(&input); err != nil {
		return respond(c, http.StatusBadRequest, msgMalformedInput, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return respond(c, http.StatusBadRequest, getAllErrorMessages(err), err)
	}
	if input.Username == defaultUsername {
		return respond(c, http.StatusUnauthorized, msgNoUsername, nil)
	}

	shipments, err := h.shipmentService.ListShipments(c.Request().Context(), common.Role(input.Role), input.Username, input.Status)
	if err != nil {
		return shipmentError(c, err)
	}
	if e := c.JSON(http.StatusOK, shipments); e != nil {
		return e
	}

	return nil
}

// /shipments/:shipmentId
func (h *shipmentRoutesHandler) GetShipment(c echo.Context) error {
	shipment, err := h.shipmentService.GetShipment(c.Request().Context(), c.Param("shipmentId"))
	if err != nil {
		return shipmentError(c, err)
	}
	if e := c.JSON(http.StatusOK, shipment); e != nil {
		return e
	}

	return nil
}

type updateShipmentStatusInput struct {
	Status string `json:"status" validate:"required,oneof=scheduled in_transit delivered cancelled"`
}

// /shipments/:shipmentId/status
func (h *shipmentRoutesHandler) UpdateShipmentStatus(c echo.Context) error {
	var input updateShipmentStatusInput
	if err := c.Bind(&input); err != nil {
		return respond(c, http.StatusBadRequest, msgMalformedInput, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return respond(c, http.StatusBadRequest, getAllErrorMessages(err), err)
	}

	shipment, err := h.shipmentService.AdvanceShipment(c.Request().Context(), c.Param("shipmentId"), input.Status)
	if err != nil {
		return shipmentError(c, err)
	}
	if e := c.JSON(http.StatusOK, shipment); e != nil {
		return e
	}

	return nil
}

type reportTrackingInput struct {
	Lat   float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng   float64 `json:"lng" validate:"gte=-180,lte=180"`
	Place string  `json:"place" validate:"max=100"`
}

// /shipments/:shipmentId/tracking
func (h *shipmentRoutesHandler) ReportTracking(c echo.Context) error {
	var input reportTrackingInput
	if err := c.Bind(&input); err != nil {
		return respond(c, http.StatusBadRequest, msgMalformedInput, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return respond(c, http.StatusBadRequest, getAllErrorMessages(err), err)
	}

	model := &entity.TrackingInput{Lat: input.Lat, Lng: input.Lng, Place: input.Place}
	shipment, err := h.shipmentService.ReportTracking(c.Request().Context(), c.Param("shipmentId"), model)
	if err != nil {
		return shipmentError(c, err)
	}
	if e := c.JSON(http.StatusOK, shipment); e != nil {
		return e
	}

	return nil
}

// /shipments/views
func (h *shipmentRoutesHandler) OpenView(c echo.Context) error {
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

	view, err := h.shipmentService.OpenView(c.Request().Context(), common.Role(input.Role), input.Username)
	if err != nil {
		return shipmentError(c, err)
	}
	if e := c.JSON(http.StatusCreated, view); e != nil {
		return e
	}

	return nil
}

type getViewInput struct {
	Status string `query:"status" validate:"omitempty,oneof=all scheduled in_transit delivered cancelled"`
}

// /shipments/views/:viewId
func (h *shipmentRoutesHandler) GetView(c echo.Context) error {
	var input getViewInput
	if err := c.Bind(&input); err != nil {
		return respond(c, http.StatusBadRequest, msgMalformedInput, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return respond(c, http.StatusBadRequest, getAllErrorMessages(err), err)
	}

	view, err := h.shipmentService.GetView(c.Request().Context(), c.Param("viewId"), input.Status)
	if err != nil {
		return shipmentError(c, err)
	}
	if e := c.JSON(http.StatusOK, view); e != nil {
		return e
	}

	return nil
}

// /shipments/views/:viewId/:shipmentId/paid
func (h *shipmentRoutesHandler) MarkPaid(c echo.Context) error {
	shipment, err := h.shipmentService.MarkPaid(c.Request().Context(), c.Param("viewId"), c.Param("shipmentId"))
	if err != nil {
		return shipmentError(c, err)
	}
	if e := c.JSON(http.StatusOK, shipment); e != nil {
		return e
	}

	return nil
}

type setRatingInput struct {
	Rating int `json:"rating" validate:"required,gte=1,lte=5"`
}

// /shipments/views/:viewId/:shipmentId/rating
func (h *shipmentRoutesHandler) SetRating(c echo.Context) error {
	var input setRatingInput
	if err := c.Bind(&input); err != nil {
		return respond(c, http.StatusBadRequest, msgMalformedInput, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return respond(c, http.StatusBadRequest, getAllErrorMessages(err), err)
	}

	shipment, err := h.shipmentService.SetRating(c.Request().Context(), c.Param("viewId"), c.Param("shipmentId"), input.Rating)
	if err != nil {
		return shipmentError(c, err)
	}
	if e := c.JSON(http.StatusOK, shipment); e != nil {
		return e
	}

	return nil
}

// /shipments/views/:viewId
func (h *shipmentRoutesHandler) CloseView(c echo.Context) error {
	if err := h.shipmentService.CloseView(c.Request().Context(), c.Param("viewId")); err != nil {
		return shipmentError(c, err)
	}
	if e := c.NoContent(http.StatusNoContent); e != nil {
		return e
	}

	return nil
}
