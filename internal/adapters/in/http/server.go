// Package http is the inbound echo adapter. It translates HTTP requests
// into commands and queries and maps the core's typed rejections onto
// status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/recipient"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDeliveryHandler     commands.CreateDeliveryCommandHandler
	withdrawDeliveryHandler   commands.WithdrawDeliveryCommandHandler
	completeDeliveryHandler   commands.CompleteDeliveryCommandHandler
	cancelDeliveryHandler     commands.CancelDeliveryCommandHandler
	reportProblemHandler      commands.ReportProblemCommandHandler
	cancelDueToProblemHandler commands.CancelDueToProblemCommandHandler
	createCourierHandler      commands.CreateCourierCommandHandler
	createRecipientHandler    commands.CreateRecipientCommandHandler

	// Query handlers
	getProblemsHandler          queries.GetProblemsQueryHandler
	getDeliveryProblemsHandler  queries.GetDeliveryProblemsQueryHandler
	getCourierDeliveriesHandler queries.GetCourierDeliveriesQueryHandler

	proofs ports.ProofStore
	now    func() time.Time
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	withdrawDeliveryHandler commands.WithdrawDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	cancelDeliveryHandler commands.CancelDeliveryCommandHandler,
	reportProblemHandler commands.ReportProblemCommandHandler,
	cancelDueToProblemHandler commands.CancelDueToProblemCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	createRecipientHandler commands.CreateRecipientCommandHandler,
	getProblemsHandler queries.GetProblemsQueryHandler,
	getDeliveryProblemsHandler queries.GetDeliveryProblemsQueryHandler,
	getCourierDeliveriesHandler queries.GetCourierDeliveriesQueryHandler,
	proofs ports.ProofStore,
) *Server {
	return &Server{
		createDeliveryHandler:       createDeliveryHandler,
		withdrawDeliveryHandler:     withdrawDeliveryHandler,
		completeDeliveryHandler:     completeDeliveryHandler,
		cancelDeliveryHandler:       cancelDeliveryHandler,
		reportProblemHandler:        reportProblemHandler,
		cancelDueToProblemHandler:   cancelDueToProblemHandler,
		createCourierHandler:        createCourierHandler,
		createRecipientHandler:      createRecipientHandler,
		getProblemsHandler:          getProblemsHandler,
		getDeliveryProblemsHandler:  getDeliveryProblemsHandler,
		getCourierDeliveriesHandler: getCourierDeliveriesHandler,
		proofs:                      proofs,
		now:                         time.Now,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/deliveries", s.CreateDelivery)
	api.PUT("/deliveries/:id/withdraw", s.WithdrawDelivery)
	api.PUT("/deliveries/:id/complete", s.CompleteDelivery)
	api.DELETE("/deliveries/:id", s.CancelDelivery)
	api.POST("/deliveries/:id/problems", s.ReportProblem)
	api.GET("/deliveries/:id/problems", s.GetDeliveryProblems)

	api.GET("/problems", s.GetProblems)
	api.DELETE("/problems/:id", s.CancelDueToProblem)

	api.POST("/couriers", s.CreateCourier)
	api.GET("/couriers/:id/deliveries", s.GetCourierDeliveries)

	api.POST("/recipients", s.CreateRecipient)
	api.POST("/proofs", s.StoreProof)
}

// Error is the JSON error payload returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorResponse maps the core's typed rejections onto HTTP status codes.
// Conflicts (409) cover everything the caller can only resolve by changing
// state: transition violations, admission rejections and duplicates.
func errorResponse(ctx echo.Context, err error) error {
	var status int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, delivery.ErrInvalidTransition),
		errors.Is(err, delivery.ErrDuplicateRequest),
		errors.Is(err, services.ErrOutsideWithdrawalWindow),
		errors.Is(err, services.ErrQuotaExceeded):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
	}

	return ctx.JSON(status, Error{Code: status, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func parseID(ctx echo.Context, name, raw string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// NewDelivery is the request body for delivery registration.
type NewDelivery struct {
	Product     string `json:"product"`
	CourierID   string `json:"courier_id"`
	RecipientID string `json:"recipient_id"`
}

// Created is the response body for endpoints that register a new resource.
type Created struct {
	ID string `json:"id"`
}

// CreateDelivery handles POST /api/v1/deliveries - registers a new delivery.
func (s *Server) CreateDelivery(ctx echo.Context) error {
	var body NewDelivery
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := parseID(ctx, "courier_id", body.CourierID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	recipientID, err := parseID(ctx, "recipient_id", body.RecipientID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, body.Product, courierID, recipientID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: deliveryID.String()})
}

// WithdrawalRequest is the request body for a withdrawal attempt.
type WithdrawalRequest struct {
	CourierID string `json:"courier_id"`
}

// WithdrawDelivery handles PUT /api/v1/deliveries/:id/withdraw - the courier
// picks up the package. Admission (time window and daily quota) is decided
// at the server's current time.
func (s *Server) WithdrawDelivery(ctx echo.Context) error {
	deliveryID, err := parseID(ctx, "id", ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body WithdrawalRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := parseID(ctx, "courier_id", body.CourierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewWithdrawDeliveryCommand(deliveryID, courierID, s.now())
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.withdrawDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompletionRequest is the request body for a delivery completion.
type CompletionRequest struct {
	CourierID string `json:"courier_id"`
	ProofID   string `json:"proof_id"`
}

// CompleteDelivery handles PUT /api/v1/deliveries/:id/complete - the courier
// hands the package over, referencing a previously stored proof artifact.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	deliveryID, err := parseID(ctx, "id", ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body CompletionRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := parseID(ctx, "courier_id", body.CourierID)
	if err != nil {
		return errorResponse(ctx, err)
	}
	proofID, err := parseID(ctx, "proof_id", body.ProofID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(deliveryID, courierID, s.now(), proofID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelDelivery handles DELETE /api/v1/deliveries/:id - calls the delivery
// off. An optional reason is taken from the "reason" query parameter.
func (s *Server) CancelDelivery(ctx echo.Context) error {
	deliveryID, err := parseID(ctx, "id", ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelDeliveryCommand(deliveryID, s.now(), ctx.QueryParam("reason"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.cancelDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// NewProblem is the request body for a problem report.
type NewProblem struct {
	Description string `json:"description"`
}

// ReportProblem handles POST /api/v1/deliveries/:id/problems - records a
// problem against the delivery without affecting its state.
func (s *Server) ReportProblem(ctx echo.Context) error {
	deliveryID, err := parseID(ctx, "id", ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body NewProblem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	problemID := kernel.NewUUID()
	cmd, err := commands.NewReportProblemCommand(problemID, deliveryID, body.Description)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.reportProblemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: problemID.String()})
}

// CancelDueToProblem handles DELETE /api/v1/problems/:id - cancels the
// delivery the problem was reported against, carrying the problem's
// description as the cancellation reason.
func (s *Server) CancelDueToProblem(ctx echo.Context) error {
	problemID, err := parseID(ctx, "id", ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelDueToProblemCommand(problemID, s.now())
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.cancelDueToProblemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Problem is the JSON shape of a problem report in list responses.
type Problem struct {
	ID          string    `json:"id"`
	DeliveryID  string    `json:"delivery_id,omitempty"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// GetProblems handles GET /api/v1/problems - lists problem reports, newest
// first, with optional pagination (page, limit) and a case-insensitive
// description filter (q).
func (s *Server) GetProblems(ctx echo.Context) error {
	page, err := parsePositiveParam(ctx.QueryParam("page"))
	if err != nil {
		return badRequest(ctx, "Invalid page parameter")
	}
	limit, err := parsePositiveParam(ctx.QueryParam("limit"))
	if err != nil {
		return badRequest(ctx, "Invalid limit parameter")
	}

	query, err := queries.NewGetProblemsQuery(page, limit, ctx.QueryParam("q"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	problems, err := s.getProblemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Problem, len(problems))
	for i, p := range problems {
		response[i] = Problem{
			ID:          p.ID.String(),
			DeliveryID:  p.DeliveryID.String(),
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetDeliveryProblems handles GET /api/v1/deliveries/:id/problems - lists
// the problems reported against one delivery, oldest first.
func (s *Server) GetDeliveryProblems(ctx echo.Context) error {
	deliveryID, err := parseID(ctx, "id", ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetDeliveryProblemsQuery(deliveryID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	problems, err := s.getDeliveryProblemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Problem, len(problems))
	for i, p := range problems {
		response[i] = Problem{
			ID:          p.ID.String(),
			Description: p.Description,
			CreatedAt:   p.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// Delivery is the JSON shape of a delivery in courier list responses.
type Delivery struct {
	ID          string     `json:"id"`
	Product     string     `json:"product"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	PickedUpAt  *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// GetCourierDeliveries handles GET /api/v1/couriers/:id/deliveries - lists
// a courier's deliveries. With completed=true only delivered packages are
// returned; otherwise the open work queue (pending and picked up).
func (s *Server) GetCourierDeliveries(ctx echo.Context) error {
	courierID, err := parseID(ctx, "id", ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	completed := ctx.QueryParam("completed") == "true"
	page, err := parsePositiveParam(ctx.QueryParam("page"))
	if err != nil {
		return badRequest(ctx, "Invalid page parameter")
	}
	limit, err := parsePositiveParam(ctx.QueryParam("limit"))
	if err != nil {
		return badRequest(ctx, "Invalid limit parameter")
	}

	query, err := queries.NewGetCourierDeliveriesQuery(courierID, completed, page, limit)
	if err != nil {
		return errorResponse(ctx, err)
	}

	deliveries, err := s.getCourierDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Delivery, len(deliveries))
	for i, d := range deliveries {
		response[i] = Delivery{
			ID:          d.ID.String(),
			Product:     d.Product,
			Status:      d.Status,
			CreatedAt:   d.CreatedAt,
			PickedUpAt:  d.PickedUpAt,
			DeliveredAt: d.DeliveredAt,
			CancelledAt: d.CancelledAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// NewCourier is the request body for courier registration.
type NewCourier struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateCourier handles POST /api/v1/couriers - registers a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var body NewCourier
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(courierID, body.Name, body.Email)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: courierID.String()})
}

// NewRecipient is the request body for recipient registration.
type NewRecipient struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
}

// CreateRecipient handles POST /api/v1/recipients - registers a new recipient.
func (s *Server) CreateRecipient(ctx echo.Context) error {
	var body NewRecipient
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	recipientID := kernel.NewUUID()
	cmd, err := commands.NewCreateRecipientCommand(recipientID, body.Name, recipient.Address{
		Street:     body.Street,
		Number:     body.Number,
		Complement: body.Complement,
		City:       body.City,
		State:      body.State,
		Zip:        body.Zip,
	})
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.createRecipientHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: recipientID.String()})
}

// NewProof is the request body for proof-of-delivery registration.
type NewProof struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// StoreProof handles POST /api/v1/proofs - records a proof-of-delivery
// artifact. The returned id is what completion requests reference.
func (s *Server) StoreProof(ctx echo.Context) error {
	var body NewProof
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	proofID := kernel.NewUUID()
	if err := s.proofs.Add(ctx.Request().Context(), proofID, body.Name, body.Path); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Created{ID: proofID.String()})
}

// parsePositiveParam parses an optional positive integer query parameter.
// Empty means "not provided" and is returned as zero so the query applies
// its default.
func parsePositiveParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return 0, errs.NewValueIsInvalidError("parameter")
	}
	return value, nil
}
