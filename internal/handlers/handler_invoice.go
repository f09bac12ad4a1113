package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fleet_logistics_app/internal/apperrors"
	portssvc "github.com/SscSPs/fleet_logistics_app/internal/core/ports/services"
	"github.com/SscSPs/fleet_logistics_app/internal/dto"
	"github.com/SscSPs/fleet_logistics_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices and payments.
type invoiceHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(ls portssvc.LedgerSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		ledgerService: ls,
	}
}

// registerInvoiceRoutes registers invoice and payment specific routes
func registerInvoiceRoutes(group *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newInvoiceHandler(ledgerService)

	invoices := group.Group("/invoices")
	{
		invoices.POST("", h.openInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoiceID", h.getInvoice)
		invoices.GET("/:invoiceID/payments", h.listInvoicePayments)
		invoices.POST("/:invoiceID/payments", h.applyPayment)
	}

	payments := group.Group("/payments")
	{
		payments.POST("/:paymentID/reverse", h.reversePayment)
		payments.POST("/:paymentID/clear", h.clearPayment)
	}
}

// openInvoice godoc
// @Summary Open an invoice
// @Description Creates an invoice for a completed trip and adds its balance to the client's outstanding balance.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.OpenInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse "Bad amounts"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Trip not found"
// @Failure 409 {object} ErrorResponse "Trip not completed or already billed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) openInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.OpenInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoice, err := h.ledgerService.OpenInvoice(c.Request.Context(), req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Trip not found"})
		case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to open invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to open invoice"})
		}
		return
	}

	logger.Info("Invoice opened", slog.String("invoice_id", invoice.InvoiceID), slog.String("invoice_number", invoice.InvoiceNumber))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// getInvoice godoc
// @Summary Get an invoice
// @Description Retrieves an invoice by its ID.
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	invoice, err := h.ledgerService.GetInvoiceByID(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
			return
		}
		logger.Error("Failed to get invoice", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve invoice"})
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Description Retrieves invoices newest first with token-based pagination, optionally filtered by client and payment status.
// @Tags invoices
// @Produce json
// @Param clientID query string false "Client filter"
// @Param status query string false "Payment status filter" Enums(PENDING, PARTIAL, PAID)
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.ledgerService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listInvoicePayments godoc
// @Summary List payments of an invoice
// @Description Retrieves the payment log of an invoice, oldest first. Reversed payments stay in the log marked BOUNCED.
// @Tags invoices
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {array} dto.PaymentResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID}/payments [get]
func (h *invoiceHandler) listInvoicePayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	payments, err := h.ledgerService.ListPaymentsByInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
			return
		}
		logger.Error("Failed to list payments", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

// applyPayment godoc
// @Summary Apply a payment
// @Description Records a payment against an invoice and decrements the client's outstanding balance.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoiceID path string true "Invoice ID"
// @Param payment body dto.ApplyPaymentRequest true "Payment details"
// @Success 200 {object} dto.InvoiceResponse "The updated invoice"
// @Failure 400 {object} ErrorResponse "Non-positive amount"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Amount exceeds remaining balance"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{invoiceID}/payments [post]
func (h *invoiceHandler) applyPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("invoiceID")

	var req dto.ApplyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoice, err := h.ledgerService.ApplyPayment(c.Request.Context(), invoiceID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
		case errors.Is(err, apperrors.ErrExceedsBalance), errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to apply payment", slog.String("error", err.Error()), slog.String("invoice_id", invoiceID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to apply payment"})
		}
		return
	}

	logger.Info("Payment applied", slog.String("invoice_id", invoice.InvoiceID), slog.String("payment_status", string(invoice.PaymentStatus)))
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// reversePayment godoc
// @Summary Reverse a payment
// @Description Marks a payment BOUNCED and restores the invoice balance and the client's outstanding balance.
// @Tags invoices
// @Produce json
// @Param paymentID path string true "Payment ID"
// @Success 200 {object} dto.InvoiceResponse "The updated invoice"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Payment already reversed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{paymentID}/reverse [post]
func (h *invoiceHandler) reversePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoice, err := h.ledgerService.ReversePayment(c.Request.Context(), paymentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment not found"})
		case errors.Is(err, apperrors.ErrAlreadyReversed):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to reverse payment", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to reverse payment"})
		}
		return
	}

	logger.Info("Payment reversed", slog.String("payment_id", paymentID), slog.String("invoice_id", invoice.InvoiceID))
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// clearPayment godoc
// @Summary Clear a payment
// @Description Marks a cheque or transfer payment CLEARED after bank confirmation. Balances are unaffected.
// @Tags invoices
// @Produce json
// @Param paymentID path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse "The updated payment"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Payment bounced or already cleared"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{paymentID}/clear [post]
func (h *invoiceHandler) clearPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := h.ledgerService.ClearPayment(c.Request.Context(), paymentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment not found"})
		case errors.Is(err, apperrors.ErrAlreadyReversed), errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to clear payment", slog.String("error", err.Error()), slog.String("payment_id", paymentID))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to clear payment"})
		}
		return
	}

	logger.Info("Payment cleared", slog.String("payment_id", paymentID), slog.String("invoice_id", payment.InvoiceID))
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
