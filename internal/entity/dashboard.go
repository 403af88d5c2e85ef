package entity

type DashboardStats struct {
	OpenRoutes         int `json:"openRoutes"`
	ActiveBids         int `json:"activeBids"`
	CompletedThisMonth int `json:"completedThisMonth"`
	ActiveShipments    int `json:"activeShipments"`
}

type TransportWorkspace struct {
	OpenRoutes      []RouteOutputModel `json:"openRoutes"`
	MyBids          []BidOutputModel   `json:"myBids"`
	AssignedRoutes  []RouteOutputModel `json:"assignedRoutes"`
	CompletedRoutes []RouteOutputModel `json:"completedRoutes"`
}

type FactoryWorkspace struct {
	MyRoutes    []RouteOutputModel `json:"myRoutes"`
	PendingBids []BidOutputModel   `json:"pendingBids"`
}

type DashboardOutputModel struct {
	Role      string              `json:"role"`
	UserId    string              `json:"userId"`
	Stats     DashboardStats      `json:"stats"`
	Transport *TransportWorkspace `json:"transport,omitempty"`
	Factory   *FactoryWorkspace   `json:"factory,omitempty"`
}
