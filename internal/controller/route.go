package controller

import (
	"net/http"
	"shiplyne/internal/entity"
	"shiplyne/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type routeRoutesHandler struct {
	routeService service.Route
	bidService   service.Bid
	validate     *validator.Validate
}

func newRouteRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *routeRoutesHandler {
	h := &routeRoutesHandler{routeService: services.Route, bidService: services.Bid, validate: v}
	outer.POST("/routes/new", h.PostRoute)
	outer.GET("/routes", h.GetRoutes)
	outer.GET("/routes/my", h.GetUserRoutes)
	outer.GET("/routes/open", h.GetOpenRoutes)
	outer.GET("/routes/assigned", h.GetAssignedRoutes)
	outer.GET("/routes/completed", h.GetCompletedRoutes)

	outer.GET("/routes/:routeId", h.GetRoute)
	outer.DELETE("/routes/:routeId", h.DeleteRoute)
	outer.PUT("/routes/:routeId/complete", h.CompleteRoute)
	outer.GET("/routes/:routeId/bids", h.GetRouteBids)
	outer.GET("/routes/:routeId/assigned_bid", h.GetAssignedBid)

	return h
}

type postRouteInput struct {
	SourceId            string   `json:"sourceId" validate:"required,max=100"`
	DestinationId       string   `json:"destinationId" validate:"required,max=100"`
	DepartureDate       string   `json:"departureDate" validate:"omitempty,datetime=2006-01-02"`
	LoadType            string   `json:"loadType" validate:"required,max=100"`
	Weight              float64  `json:"weight" validate:"gt=0"`
	SpecialRequirements []string `json:"specialRequirements" validate:"max=20,dive,max=100"`
	CreatedBy           string   `json:"createdBy" validate:"required,max=100"`
}

// /routes/new
func (h *routeRoutesHandler) PostRoute(c echo.Context) error {
	var input postRouteInput
	if err := c.Bind(&input); err != nil {
		return respond(c, http.StatusBadRequest, msgMalformedInput, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return respond(c, http.StatusBadRequest, getAllErrorMessages(err), err)
	}

	model := &entity.CreateRouteInput{
		SourceId: input.SourceId, DestinationId: input.DestinationId, DepartureDate: input.DepartureDate,
		LoadType: input.LoadType, Weight: input.Weight, SpecialRequirements: input.SpecialRequirements,
		CreatedBy: input.CreatedBy,
	}

	route, err := h.routeService.CreateRoute(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, route); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrLocationNotFound:
		return respond(c, http.StatusBadRequest, "Invalid source or destination location", err)
	case service.ErrSameLocation:
		return respond(c, http.StatusBadRequest, "Source and destination must be different locations", err)
	default:
		return respond(c, http.StatusInternalServerError, msgInternal, err)
	}
}

type getRoutesInput struct {
	Status string `query:"status" validate:"omitempty,oneof=open assigned completed cancelled"`
}

// /routes
func (h *routeRoutesHandler) GetRoutes(c echo.Context) error {
	var input getRoutesInput
	if err := c.Bind(&input); err != nil {
		return respond(c, http.StatusBadRequest, msgMalformedInput, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return respond(c, http.StatusBadRequest, getAllErrorMessages(err), err)
	}

	routes, err := h.routeService.GetRoutesByStatus(c.Request().Context(), input.Status)
	if err != nil {
		return respond(c, http.StatusInternalServerError, msgInternal, err)
	}
	if e := c.JSON(http.StatusOK, routes); e != nil {
		return e
	}

	return nil
}

type getUserRoutesInput struct {
	Username string `query:"username"`
	Status   string `query:"status" validate:"omitempty,oneof=open assigned completed cancelled"`
	Limit    int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset   int32  `query:"offset" validate:"gte=0"`
}

func newGetUserRoutesInput() getUserRoutesInput {
	return getUserRoutesInput{Limit: defaultLimit, Offset: defaultOffset, Username: defaultUsername}
}

// /routes/my
func (h *routeRoutesHandler) GetUserRoutes(c echo.Context) error {
	var input = newGetUserRoutesInput()
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
	routes, err := h.routeService.GetUserRoutes(c.Request().Context(), input.Username, input.Status, pg)
	if err != nil {
		return respond(c, http.StatusInternalServerError, msgInternal, err)
	}
	if e := c.JSON(http.StatusOK, routes); e != nil {
		return e
	}

	return nil
}

type getOpenRoutesInput struct {
	Location  string  `query:"location" validate:"max=100"`
	LoadType  string  `query:"loadType" validate:"max=100"`
	MinWeight float64 `query:"minWeight" validate:"gte=0"`
	Limit     int32   `query:"limit" validate:"gte=0,lte=50"`
	Offset    int32   `query:"offset" validate:"gte=0"`
}

func newGetOpenRoutesInput() getOpenRoutesInput {
	return getOpenRoutesInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /routes/open
func (h *routeRoutesHandler) GetOpenRoutes(c echo.Context) error {
	var input = newGetOpenRoutesInput()
	if err := c.Bind(&input); err != nil {
		return respond(c, http.StatusBadRequest, msgMalformedInput, err)
	}
	if err := h.validate.Struct(input); err != nil {
		return respond(c, http.StatusBadRequest, getAllErrorMessages(err), err)
	}

	filter := &entity.RouteFilter{Location: input.Location, LoadType: input.LoadType, MinWeight: input.MinWeight}
	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	routes, err := h.bidService.ListOpenRoutes(c.Request().Context(), filter, pg)
	if err != nil {
		return respond(c, http.StatusInternalServerError, msgInternal, err)
	}
	if e := c.JSON(http.StatusOK, routes); e != nil {
		return e
	}

	return nil
}

type usernameInput struct {
	Username string `query:"username"`
}

func (h *routeRoutesHandler) transporterRoutes(c echo.Context, list func(transporterId string) ([]entity.RouteOutputModel, error)) error {
	var input usernameInput
	if err := c.Bind(&input); err != nil {
		return respond(c, http.StatusBadRequest, msgMalformedInput, err)
	}
	if input.Username == defaultUsername {
		return respond(c, http.StatusUnauthorized, msgNoUsername, nil)
	}

	routes, err := list(input.Username)
	if err != nil {
		return respond(c, http.StatusInternalServerError, msgInternal, err)
	}
	if e := c.JSON(http.StatusOK, routes); e != nil {
		return e
	}

	return nil
}

// /routes/assigned
func (h *routeRoutesHandler) GetAssignedRoutes(c echo.Context) error {
	return h.transporterRoutes(c, func(transporterId string) ([]entity.RouteOutputModel, error) {
		return h.bidService.GetAssignedRoutes(c.Request().Context(), transporterId)
	})
}

// /routes/completed
func (h *routeRoutesHandler) GetCompletedRoutes(c echo.Context) error {
	return h.transporterRoutes(c, func(transporterId string) ([]entity.RouteOutputModel, error) {
		return h.bidService.GetCompletedRoutes(c.Request().Context(), transporterId)
	})
}

func routeNotFound(c echo.Context, err error) error {
	if err == service.ErrRouteNotFound {
		return respond(c, http.StatusNotFound, "There is no route with given id", err)
	}

	return respond(c, http.StatusInternalServerError, msgInternal, err)
}

// /routes/:routeId
func (h *routeRoutesHandler) GetRoute(c echo.Context) error {
	route, err := h.routeService.GetRoute(c.Request().Context(), c.Param("routeId"))
	if err != nil {
		return routeNotFound(c, err)
	}
	if e := c.JSON(http.StatusOK, route); e != nil {
		return e
	}

	return nil
}

// /routes/:routeId
func (h *routeRoutesHandler) DeleteRoute(c echo.Context) error {
	if err := h.routeService.DeleteRoute(c.Request().Context(), c.Param("routeId")); err != nil {
		return routeNotFound(c, err)
	}
	if e := c.NoContent(http.StatusNoContent); e != nil {
		return e
	}

	return nil
}

// /routes/:routeId/complete
func (h *routeRoutesHandler) CompleteRoute(c echo.Context) error {
	route, err := h.routeService.MarkCompleted(c.Request().Context(), c.Param("routeId"))
	if err != nil {
		return routeNotFound(c, err)
	}
	if e := c.JSON(http.StatusOK, route); e != nil {
		return e
	}

	return nil
}

// /routes/:routeId/bids
func (h *routeRoutesHandler) GetRouteBids(c echo.Context) error {
	bids, err := h.routeService.GetRouteBids(c.Request().Context(), c.Param("routeId"))
	if err != nil {
		return respond(c, http.StatusInternalServerError, msgInternal, err)
	}
	if e := c.JSON(http.StatusOK, bids); e != nil {
		return e
	}

	return nil
}

// /routes/:routeId/assigned_bid
func (h *routeRoutesHandler) GetAssignedBid(c echo.Context) error {
	bid, err := h.routeService.GetAssignedBid(c.Request().Context(), c.Param("routeId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, bid); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrBidNotFound:
		return respond(c, http.StatusNotFound, "Route has no accepted bid", err)
	default:
		return respond(c, http.StatusInternalServerError, msgInternal, err)
	}
}
