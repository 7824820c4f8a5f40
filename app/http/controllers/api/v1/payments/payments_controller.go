// Package payments is the HTTP boundary of the payment-link service.
package payments

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"paylink/app/requests"
	"paylink/pkg/paylink"
	"paylink/pkg/response"
)

// linkRetryAttempts bounds regeneration when the store rejects a link id as
// a duplicate. With 128-bit random ids a second rejection means something
// is broken, not unlucky.
const linkRetryAttempts = 3

// PaymentsController serves the payment-link endpoints.
type PaymentsController struct {
	service *paylink.Service
}

// NewPaymentsController wires the controller to the service.
func NewPaymentsController(service *paylink.Service) *PaymentsController {
	return &PaymentsController{service: service}
}

// Store creates a payment link.
func (pc *PaymentsController) Store(c *gin.Context) {
	req, err := requests.ValidateCreateLink(c)
	if err != nil {
		response.BadRequest(c, err, "request validation failed")
		return
	}

	input := paylink.GenerateLinkInput{
		Amount:        decimal.NewFromFloat(req.Amount),
		Currency:      req.Currency,
		Description:   req.Description,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		ReturnURL:     req.ReturnURL,
	}

	var result *paylink.LinkResult
	for attempt := 0; attempt < linkRetryAttempts; attempt++ {
		result, err = pc.service.GenerateLink(c.Request.Context(), input)
		if !errors.Is(err, paylink.ErrDuplicateLink) {
			break
		}
	}
	if err != nil {
		pc.respondError(c, err)
		return
	}

	response.Created(c, result, "payment link created")
}

// Show fetches a payment by link id.
func (pc *PaymentsController) Show(c *gin.Context) {
	p, err := pc.service.GetByLinkID(c.Request.Context(), c.Param("link_id"))
	if err != nil {
		pc.respondError(c, err)
		return
	}

	response.Data(c, p)
}

// Process dispatches a payment to the mobile-money gateway.
func (pc *PaymentsController) Process(c *gin.Context) {
	req, err := requests.ValidateProcessPayment(c)
	if err != nil {
		response.BadRequest(c, err, "request validation failed")
		return
	}

	result, err := pc.service.Process(c.Request.Context(), paylink.ProcessInput{
		LinkID:       c.Param("link_id"),
		Amount:       decimal.NewFromFloat(req.Amount),
		Currency:     req.Currency,
		PhoneNumber:  req.PhoneNumber,
		Description:  req.Description,
		CustomerName: req.CustomerName,
	})
	if err != nil {
		pc.respondError(c, err)
		return
	}

	response.Data(c, result)
}

// Webhook receives gateway notifications. The payload is arbitrary JSON:
// unexpected shapes flow through the reconciler rather than being rejected.
// Empty or malformed bodies are the only 400s.
func (pc *PaymentsController) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		response.Abort400(c, "empty webhook payload")
		return
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		response.Abort400(c, "webhook payload is not a JSON object")
		return
	}

	result, err := pc.service.Reconcile(c.Request.Context(), payload)
	if err != nil {
		response.Abort500(c, "webhook processing failed")
		return
	}

	response.JSON(c, result)
}

// Callback is the legacy gateway callback endpoint.
func (pc *PaymentsController) Callback(c *gin.Context) {
	var input paylink.CallbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err, "malformed callback body")
		return
	}

	if err := pc.service.HandleCallback(c.Request.Context(), input); err != nil {
		pc.respondError(c, err)
		return
	}

	response.JSON(c, gin.H{"success": true})
}

// PollStatus queries the gateway for a payment's transaction state.
func (pc *PaymentsController) PollStatus(c *gin.Context) {
	result, err := pc.service.PollGatewayStatus(c.Request.Context(), c.Param("link_id"))
	if err != nil {
		pc.respondError(c, err)
		return
	}

	response.Data(c, result)
}

// Stats returns the payment rollup.
func (pc *PaymentsController) Stats(c *gin.Context) {
	stats, err := pc.service.Stats(c.Request.Context())
	if err != nil {
		pc.respondError(c, err)
		return
	}

	response.Data(c, stats)
}

// respondError maps service error codes onto HTTP statuses, keeping the
// machine code in the body.
func (pc *PaymentsController) respondError(c *gin.Context, err error) {
	var svcErr *paylink.Error
	if !errors.As(err, &svcErr) {
		response.Abort500(c)
		return
	}

	status := http.StatusInternalServerError
	switch svcErr.Code {
	case paylink.CodePaymentNotFound:
		status = http.StatusNotFound
	case paylink.CodeDuplicateLink:
		status = http.StatusConflict
	case paylink.CodeGatewayError:
		status = http.StatusBadGateway
	}

	c.AbortWithStatusJSON(status, response.Response{
		Status:  response.Error,
		Message: svcErr.Message,
		Error:   svcErr.Code,
	})
}
