package http

import (
	"errors"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TokenRequest carries the login form fields.
type TokenRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// NewOrderRequest carries the order submission body.
type NewOrderRequest struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

// OrderResponse is the JSON representation of a single order.
type OrderResponse struct {
	ID       int64  `json:"id"`
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Status   string `json:"status"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	submitOrderHandler commands.SubmitOrderCommandHandler

	// Query handlers
	loginHandler      queries.LoginQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	loginHandler queries.LoginQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		submitOrderHandler: submitOrderHandler,
		loginHandler:       loginHandler,
		getOrderHandler:    getOrderHandler,
		listOrdersHandler:  listOrdersHandler,
	}
}

// RegisterRoutes mounts all API routes on the given Echo instance.
// The order routes require a bearer token; auth is applied per-group.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.POST("/token", s.Login)

	orders := e.Group("/orders", auth)
	orders.POST("/", s.CreateOrder)
	orders.GET("/", s.GetOrders)
	orders.GET("/:id", s.GetOrderByID)

	e.GET("/health", s.Health)
}

// Login handles POST /token - exchanges credentials for a bearer token.
func (s *Server) Login(ctx echo.Context) error {
	var req TokenRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	query, err := queries.NewLoginQuery(req.Username, req.Password)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Username and password are required")
	}

	response, err := s.loginHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidCredentials) {
			return errorResponse(ctx, http.StatusBadRequest, "Incorrect username or password")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to authenticate")
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /orders/ - submits a new order for the authenticated user.
func (s *Server) CreateOrder(ctx echo.Context) error {
	ownerID, err := AuthenticatedUserID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
	}

	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewSubmitOrderCommand(ownerID, req.ItemName, req.Quantity)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	created, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, OrderResponse{
		ID:       created.ID(),
		ItemName: created.ItemName(),
		Quantity: created.Quantity(),
		Status:   created.Status().String(),
	})
}

// GetOrders handles GET /orders/ - lists the authenticated user's orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	ownerID, err := AuthenticatedUserID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
	}

	query, err := queries.NewListOrdersQuery(ownerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request")
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByID handles GET /orders/:id - retrieves one of the user's orders.
// Orders belonging to other users are reported as not found.
func (s *Server) GetOrderByID(ctx echo.Context) error {
	ownerID, err := AuthenticatedUserID(ctx)
	if err != nil {
		return errorResponse(ctx, http.StatusUnauthorized, "Not authenticated")
	}

	var params struct {
		ID int64 `param:"id"`
	}
	if err := ctx.Bind(&params); err != nil || params.ID <= 0 {
		return errorResponse(ctx, http.StatusNotFound, "Order not found")
	}

	query, err := queries.NewGetOrderQuery(params.ID, ownerID)
	if err != nil {
		return errorResponse(ctx, http.StatusNotFound, "Order not found")
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorResponse(ctx, http.StatusNotFound, "Order not found")
		}
		return errorResponse(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, OrderResponse(result))
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
