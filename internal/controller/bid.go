package controller

import (
	"net/http"
	"shiplyne/internal/entity"
	"shiplyne/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type bidRoutesHandler struct {
	bidService   service.Bid
	routeService service.Route
	validate     *validator.Validate
}

func newBidRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *bidRoutesHandler {
	h := &bidRoutesHandler{bidService: services.Bid, routeService: services.Route, validate: v}
	outer.POST("/bids/new", h.PostBid)
	outer.GET("/bids/my", h.GetUserBids)

	outer.PUT("/bids/:bidId/accept", h.AcceptBid)
	outer.PUT("/bids/:bidId/reject", h.RejectBid)
	outer.PUT("/bids/:bidId/withdraw", h.WithdrawBid)

	return h
}

type postBidInput struct {
	RouteId       string  `json:"routeId" validate:"required,max=100"`
	TransporterId string  `json:"transporterId" validate:"required,max=100"`
	VehicleId     string  `json:"vehicleId" validate:"max=100"`
	Amount        float64 `json:"amount" validate:"gt=0"`
	Notes         string  `json:"notes" validate:"max=500"`
}

// /bids/new
func (h *bidRoutesHandler) PostBid(c echo.Context) error {
	var input postBidInput
	if err := c.Bind(&input); err != nil {
		return respond(c, http.StatusBadRequest, msgMalformedInput, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return respond(c, http.StatusBadRequest, getAllErrorMessages(err), err)
	}

	model := &entity.CreateBidInput{
		RouteId: input.RouteId, TransporterId: input.TransporterId, VehicleId: input.VehicleId,
		Amount: input.Amount, Notes: input.Notes,
	}

	bid, err := h.bidService.PlaceBid(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, bid); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrVehicleRequired:
		return respond(c, http.StatusBadRequest, "Please select a vehicle", err)
	case service.ErrVehicleNotFound:
		return respond(c, http.StatusBadRequest, "There is no vehicle with given id", err)
	case service.ErrRouteNotFound:
		return respond(c, http.StatusNotFound, "There is no route with given id", err)
	default:
		return respond(c, http.StatusInternalServerError, msgInternal, err)
	}
}

type getUserBidsInput struct {
	Limit    int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset   int32  `query:"offset" validate:"gte=0"`
	Username string `query:"username"`
}

func newGetUserBidsInput() getUserBidsInput {
	return getUserBidsInput{Limit: defaultLimit, Offset: defaultOffset, Username: defaultUsername}
}

// /bids/my
func (h *bidRoutesHandler) GetUserBids(c echo.Context) error {
	var input = newGetUserBidsInput()
	if err := c.Bind(&input); err != nil {
		return respond(c, http.StatusBadRequest, msgMalformedInput, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return respond(c, http.StatusBadRequest, getAllErrorMessages(err), err)
	}
	if input.Username == defaultUsername {
		return respond(c, http.StatusUnauthorized, msgNoUsername, nil)
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	bids, err := h.bidService.GetUserBids(c.Request().Context(), input.Username, pg)
	if err != nil {
		return respond(c, http.StatusInternalServerError, msgInternal, err)
	}
	if e := c.JSON(http.StatusOK, bids); e != nil {
		return e
	}

	return nil
}

// /bids/:bidId/accept
func (h *bidRoutesHandler) AcceptBid(c echo.Context) error {
	accepted, err := h.routeService.AcceptBid(c.Request().Context(), c.Param("bidId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, accepted); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrBidNotFound:
		return respond(c, http.StatusNotFound, "There is no bid with given id", err)
	case service.ErrRouteNotFound:
		return respond(c, http.StatusNotFound, "The bid's route no longer exists", err)
	case service.ErrInvalidTransition:
		return respond(c, http.StatusConflict, "The route's shipment is already under way", err)
	default:
		return respond(c, http.StatusInternalServerError, msgInternal, err)
	}
}

func notImplemented(c echo.Context, err error) error {
	if err == service.ErrNotImplemented {
		return respond(c, http.StatusNotImplemented, "This action isn't available yet", err)
	}

	return respond(c, http.StatusInternalServerError, msgInternal, err)
}

// /bids/:bidId/reject
func (h *bidRoutesHandler) RejectBid(c echo.Context) error {
	return notImplemented(c, h.routeService.RejectBid(c.Request().Context(), c.Param("bidId")))
}

// /bids/:bidId/withdraw
func (h *bidRoutesHandler) WithdrawBid(c echo.Context) error {
	return notImplemented(c, h.bidService.WithdrawBid(c.Request().Context(), c.Param("bidId")))
}
