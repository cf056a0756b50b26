// Package http exposes the booking operations over a REST API. Every route
// sits behind the identity middleware; handlers translate payloads into
// commands and queries and map domain errors onto status codes.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"freightflow/internal/core/application/usecases/commands"
	"freightflow/internal/core/application/usecases/queries"
	"freightflow/internal/core/domain/model/kernel"
	"freightflow/internal/core/domain/model/payment"
	"freightflow/internal/pkg/errs"
)

// pathUUID parses a UUID path parameter, reporting a validation error on
// malformed input.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	requestShipmentHandler     commands.RequestShipmentCommandHandler
	rejectShipmentHandler      commands.RejectShipmentCommandHandler
	offerShipmentHandler       commands.OfferShipmentCommandHandler
	updateOfferHandler         commands.UpdateOfferCommandHandler
	respondToOfferHandler      commands.RespondToOfferCommandHandler
	requestModificationHandler commands.RequestModificationCommandHandler
	reviewModificationHandler  commands.ReviewModificationCommandHandler
	createPaymentHandler       commands.CreatePaymentCommandHandler
	uploadPaymentProofHandler  commands.UploadPaymentProofCommandHandler
	verifyPaymentHandler       commands.VerifyPaymentCommandHandler
	assignDriverHandler        commands.AssignDriverCommandHandler
	pushProgressUpdateHandler  commands.PushProgressUpdateCommandHandler
	advanceShipmentHandler     commands.AdvanceShipmentCommandHandler

	// Query handlers
	getShipmentsHandler        queries.GetShipmentsQueryHandler
	getOffersHandler           queries.GetOffersQueryHandler
	getModificationsHandler    queries.GetModificationsQueryHandler
	getShipmentProgressHandler queries.GetShipmentProgressQueryHandler
}

// ServerHandlers bundles the use case handlers the server routes to.
type ServerHandlers struct {
	RequestShipment     commands.RequestShipmentCommandHandler
	RejectShipment      commands.RejectShipmentCommandHandler
	OfferShipment       commands.OfferShipmentCommandHandler
	UpdateOffer         commands.UpdateOfferCommandHandler
	RespondToOffer      commands.RespondToOfferCommandHandler
	RequestModification commands.RequestModificationCommandHandler
	ReviewModification  commands.ReviewModificationCommandHandler
	CreatePayment       commands.CreatePaymentCommandHandler
	UploadPaymentProof  commands.UploadPaymentProofCommandHandler
	VerifyPayment       commands.VerifyPaymentCommandHandler
	AssignDriver        commands.AssignDriverCommandHandler
	PushProgressUpdate  commands.PushProgressUpdateCommandHandler
	AdvanceShipment     commands.AdvanceShipmentCommandHandler

	GetShipments        queries.GetShipmentsQueryHandler
	GetOffers           queries.GetOffersQueryHandler
	GetModifications    queries.GetModificationsQueryHandler
	GetShipmentProgress queries.GetShipmentProgressQueryHandler
}

// NewServer creates a new HTTP server over the given handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		requestShipmentHandler:     handlers.RequestShipment,
		rejectShipmentHandler:      handlers.RejectShipment,
		offerShipmentHandler:       handlers.OfferShipment,
		updateOfferHandler:         handlers.UpdateOffer,
		respondToOfferHandler:      handlers.RespondToOffer,
		requestModificationHandler: handlers.RequestModification,
		reviewModificationHandler:  handlers.ReviewModification,
		createPaymentHandler:       handlers.CreatePayment,
		uploadPaymentProofHandler:  handlers.UploadPaymentProof,
		verifyPaymentHandler:       handlers.VerifyPayment,
		assignDriverHandler:        handlers.AssignDriver,
		pushProgressUpdateHandler:  handlers.PushProgressUpdate,
		advanceShipmentHandler:     handlers.AdvanceShipment,
		getShipmentsHandler:        handlers.GetShipments,
		getOffersHandler:           handlers.GetOffers,
		getModificationsHandler:    handlers.GetModifications,
		getShipmentProgressHandler: handlers.GetShipmentProgress,
	}
}

// RegisterRoutes mounts the API under /api/v1 behind the identity middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	e.Use(middleware.Recover())

	api := e.Group("/api/v1", IdentityMiddleware(jwtSecret))

	api.POST("/shipments", s.RequestShipment)
	api.GET("/shipments", s.GetShipments)
	api.POST("/shipments/:shipmentId/reject", s.RejectShipment)
	api.POST("/shipments/:shipmentId/offers", s.OfferShipment)
	api.POST("/shipments/:shipmentId/modifications", s.RequestModification)
	api.POST("/shipments/:shipmentId/payments", s.CreatePayment)
	api.POST("/shipments/:shipmentId/driver", s.AssignDriver)
	api.POST("/shipments/:shipmentId/progress", s.PushProgressUpdate)
	api.POST("/shipments/:shipmentId/advance", s.AdvanceShipment)
	api.GET("/shipments/:shipmentId/progress", s.GetShipmentProgress)

	api.GET("/offers", s.GetOffers)
	api.PUT("/offers/:offerId", s.UpdateOffer)
	api.POST("/offers/:offerId/respond", s.RespondToOffer)

	api.GET("/modifications", s.GetModifications)
	api.POST("/modifications/:requestId/review", s.ReviewModification)

	api.POST("/payments/:paymentId/proof", s.UploadPaymentProof)
	api.POST("/payments/:paymentId/verify", s.VerifyPayment)
}

// RequestShipment handles POST /api/v1/shipments.
func (s *Server) RequestShipment(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	var body RequestShipmentRequest
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	shipmentID := kernel.NewUUID()
	cmd, err := commands.NewRequestShipmentCommand(act, shipmentID, body.Details.toDomain(), body.EwayBillRef)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.requestShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": shipmentID.String()})
}

// GetShipments handles GET /api/v1/shipments.
func (s *Server) GetShipments(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	query, err := queries.NewGetShipmentsQuery(act)
	if err != nil {
		return writeError(ctx, err)
	}

	shipments, err := s.getShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipments)
}

// RejectShipment handles POST /api/v1/shipments/:shipmentId/reject.
func (s *Server) RejectShipment(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewRejectShipmentCommand(act, shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rejectShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OfferShipment handles POST /api/v1/shipments/:shipmentId/offers.
func (s *Server) OfferShipment(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body OfferTermsRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	offerID := kernel.NewUUID()
	cmd, err := commands.NewOfferShipmentCommand(act, offerID, shipmentID, body.Price, body.PickupDate, body.DeliveryDate)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.offerShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": offerID.String()})
}

// UpdateOffer handles PUT /api/v1/offers/:offerId.
func (s *Server) UpdateOffer(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	offerID, err := pathUUID(ctx, "offerId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body OfferTermsRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUpdateOfferCommand(act, offerID, body.Price, body.PickupDate, body.DeliveryDate)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RespondToOffer handles POST /api/v1/offers/:offerId/respond.
func (s *Server) RespondToOffer(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	offerID, err := pathUUID(ctx, "offerId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body RespondRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRespondToOfferCommand(act, offerID, kernel.NewUUID(), body.Accept)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.respondToOfferHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RequestModification handles POST /api/v1/shipments/:shipmentId/modifications.
func (s *Server) RequestModification(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body RequestModificationRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	requestID := kernel.NewUUID()
	cmd, err := commands.NewRequestModificationCommand(act, requestID, shipmentID, body.Proposed.toDomain(), body.ChangeReason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.requestModificationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": requestID.String()})
}

// GetModifications handles GET /api/v1/modifications.
func (s *Server) GetModifications(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	query, err := queries.NewGetModificationsQuery(act)
	if err != nil {
		return writeError(ctx, err)
	}

	requests, err := s.getModificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, requests)
}

// ReviewModification handles POST /api/v1/modifications/:requestId/review.
func (s *Server) ReviewModification(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	requestID, err := pathUUID(ctx, "requestId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body RespondRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewReviewModificationCommand(act, requestID, body.Accept)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.reviewModificationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOffers handles GET /api/v1/offers.
func (s *Server) GetOffers(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	query, err := queries.NewGetOffersQuery(act)
	if err != nil {
		return writeError(ctx, err)
	}

	offers, err := s.getOffersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, offers)
}

// CreatePayment handles POST /api/v1/shipments/:shipmentId/payments.
func (s *Server) CreatePayment(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body CreatePaymentRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	kind, err := payment.KindFromString(body.Kind)
	if err != nil {
		return writeError(ctx, err)
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewCreatePaymentCommand(act, paymentID, shipmentID, kind, body.Amount, body.ToAccount)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": paymentID.String()})
}

// UploadPaymentProof handles POST /api/v1/payments/:paymentId/proof.
func (s *Server) UploadPaymentProof(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	paymentID, err := pathUUID(ctx, "paymentId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body UploadProofRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewUploadPaymentProofCommand(act, paymentID, body.ProofRef)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.uploadPaymentProofHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyPayment handles POST /api/v1/payments/:paymentId/verify.
func (s *Server) VerifyPayment(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	paymentID, err := pathUUID(ctx, "paymentId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body VerifyPaymentRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewVerifyPaymentCommand(act, paymentID, body.Approved)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.verifyPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignDriver handles POST /api/v1/shipments/:shipmentId/driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body AssignDriverRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAssignDriverCommand(act, shipmentID, body.toDomain())
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PushProgressUpdate handles POST /api/v1/shipments/:shipmentId/progress.
func (s *Server) PushProgressUpdate(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body ProgressUpdateRequest
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewPushProgressUpdateCommand(act, shipmentID, body.Title, body.Description, body.PdfRef, body.ImageRef)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.pushProgressUpdateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceShipment handles POST /api/v1/shipments/:shipmentId/advance.
func (s *Server) AdvanceShipment(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAdvanceShipmentCommand(act, shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.advanceShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipmentProgress handles GET /api/v1/shipments/:shipmentId/progress.
func (s *Server) GetShipmentProgress(ctx echo.Context) error {
	act, ok := actorFrom(ctx)
	if !ok {
		return ctx.NoContent(http.StatusUnauthorized)
	}

	shipmentID, err := pathUUID(ctx, "shipmentId")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentProgressQuery(act, shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getShipmentProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}
