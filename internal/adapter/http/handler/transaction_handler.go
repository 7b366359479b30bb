package handler

import (
	"time"

	"transactions-saga/internal/adapter/http/dto"
	"transactions-saga/internal/adapter/http/middleware"
	"transactions-saga/internal/core/domain"
	"transactions-saga/internal/core/ports"
	"transactions-saga/pkg/apperror"
	"transactions-saga/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransactionServices groups the saga steps exposed over HTTP.
type TransactionServices struct {
	Activation              ports.ActivationService
	Authorization           ports.AuthorizationService
	AuthorizationCompletion ports.AuthorizationCompletionService
	ClosureRequest          ports.ClosureRequestService
	UserReceipt             ports.UserReceiptService
	Cancellation            ports.CancellationService
	Query                   ports.TransactionQueryService
}

// TransactionHandler handles the transaction endpoints.
type TransactionHandler struct {
	svc TransactionServices
	now func() time.Time
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(svc TransactionServices) *TransactionHandler {
	return &TransactionHandler{svc: svc, now: time.Now}
}

// Create handles POST /api/v1/transactions.
func (h *TransactionHandler) Create(c *gin.Context) {
	clientID := domain.ClientID(c.GetHeader(middleware.HeaderClientID))
	if !clientID.IsValid() {
		response.Error(c, apperror.Validation("missing or unknown "+middleware.HeaderClientID))
		return
	}

	var req dto.NewTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	notices := make([]ports.NoticeRequest, 0, len(req.PaymentNotices))
	for _, n := range req.PaymentNotices {
		notices = append(notices, ports.NoticeRequest{RptID: domain.RptID(n.RptID), Amount: n.Amount})
	}
	activation := ports.ActivationRequest{
		TransactionID:  domain.NewTransactionID(),
		PaymentNotices: notices,
		ClientID:       clientID,
		IDCart:         req.IDCart,
		OrderID:        req.OrderID,
	}
	if userID := c.GetHeader(middleware.HeaderUserID); userID != "" {
		activation.UserID = &userID
	}

	result, err := h.svc.Activation.Activate(c.Request.Context(), activation)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := toTransactionResponse(result.Transaction)
	resp.AuthToken = result.AuthToken
	response.OK(c, resp)
}

// Get handles GET /api/v1/transactions/:id.
func (h *TransactionHandler) Get(c *gin.Context) {
	id, ok := transactionID(c)
	if !ok {
		return
	}

	tx, err := h.svc.Query.GetTransaction(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toTransactionResponse(tx))
}

// Cancel handles DELETE /api/v1/transactions/:id.
func (h *TransactionHandler) Cancel(c *gin.Context) {
	id, ok := transactionID(c)
	if !ok {
		return
	}

	event, err := h.svc.Cancellation.Cancel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, toEventResponse(*event))
}

// RequestAuthorization handles POST /api/v1/transactions/:id/auth-requests.
func (h *TransactionHandler) RequestAuthorization(c *gin.Context) {
	id, ok := transactionID(c)
	if !ok {
		return
	}

	var req dto.AuthorizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	details, err := req.Details.AuthorizationDetails()
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.svc.Authorization.RequestAuthorization(c.Request.Context(), ports.AuthorizationRequest{
		TransactionID:       id,
		Amount:              req.Amount,
		Fee:                 req.Fee,
		PaymentInstrumentID: req.PaymentInstrumentID,
		PspID:               req.PspID,
		PaymentTypeCode:     req.PaymentTypeCode,
		BrokerName:          req.BrokerName,
		PspChannelCode:      req.PspChannelCode,
		PaymentMethodName:   req.PaymentMethodName,
		PspBusinessName:     req.PspBusinessName,
		Language:            req.Language,
		Details:             details,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AuthorizationResponse{
		AuthorizationURL:       result.AuthorizationURL,
		AuthorizationRequestID: result.AuthorizationRequestID,
	})
}

// CompleteAuthorization handles PATCH /api/v1/transactions/:id/auth-requests.
// The gateway outcome is recorded and the closure is requested right after.
func (h *TransactionHandler) CompleteAuthorization(c *gin.Context) {
	id, ok := transactionID(c)
	if !ok {
		return
	}

	var req dto.AuthorizationOutcomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	update := ports.AuthorizationOutcomeUpdate{
		TransactionID:     id,
		AuthorizationCode: req.AuthorizationCode,
		RRN:               req.RRN,
		GatewayData:       req.OutcomeGateway.GatewayData(),
	}
	if req.TimestampOperation != nil {
		update.TimestampOperation = *req.TimestampOperation
	}

	// A retried callback finds the outcome already recorded; the closure
	// request still runs and applies its own status guard.
	ctx := c.Request.Context()
	if _, err := h.svc.AuthorizationCompletion.CompleteAuthorization(ctx, update); err != nil &&
		!apperror.HasCode(err, apperror.CodeAlreadyProcessed) {
		response.Error(c, err)
		return
	}

	event, err := h.svc.ClosureRequest.RequestClosure(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, toEventResponse(*event))
}

// RequestUserReceipt handles POST /api/v1/transactions/:id/user-receipts.
func (h *TransactionHandler) RequestUserReceipt(c *gin.Context) {
	id, ok := transactionID(c)
	if !ok {
		return
	}

	var req dto.UserReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	paymentDate := h.now()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	event, err := h.svc.UserReceipt.RequestUserReceipt(c.Request.Context(), ports.UserReceiptRequest{
		TransactionID: id,
		Outcome:       domain.ReceiptOutcome(req.Outcome),
		Language:      req.Language,
		PaymentDate:   paymentDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Accepted(c, toEventResponse(*event))
}

func transactionID(c *gin.Context) (domain.TransactionID, bool) {
	id, err := domain.ParseTransactionID(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid transaction id"))
		return "", false
	}
	return id, true
}

func toEventResponse(e domain.Event) dto.EventResponse {
	return dto.EventResponse{
		TransactionID: e.TransactionID.String(),
		EventID:       e.ID.String(),
		EventCode:     string(e.EventCode),
		CreationDate:  e.CreationDate.Format(time.RFC3339),
	}
}

func toTransactionResponse(tx domain.Transaction) dto.TransactionResponse {
	resp := dto.TransactionResponse{
		TransactionID: tx.TransactionID().String(),
		Status:        string(tx.Status()),
	}

	source := tx
	if expired, ok := tx.(domain.TransactionExpired); ok {
		before := string(expired.StatusBeforeExpiration)
		resp.StatusBeforeExpiration = &before
		source = expired.Previous
	}

	activated, ok := source.(domain.Activated)
	if !ok {
		return resp
	}
	data := activated.ActivationData()
	resp.ClientID = string(data.ClientID)
	resp.IDCart = data.IDCart
	resp.Amount = data.Amount()
	resp.CreationDate = data.CreationDate.Format(time.RFC3339)
	resp.ValiditySeconds = data.PaymentTokenValiditySeconds
	resp.PaymentNotices = make([]dto.PaymentNoticeResponse, 0, len(data.PaymentNotices))
	for _, n := range data.PaymentNotices {
		transfers := make([]dto.TransferResponse, 0, len(n.TransferList))
		for _, tr := range n.TransferList {
			transfers = append(transfers, dto.TransferResponse{
				PaFiscalCode:     tr.PaFiscalCode,
				DigitalStamp:     tr.DigitalStamp,
				TransferAmount:   tr.TransferAmount,
				TransferCategory: tr.TransferCategory,
			})
		}
		resp.PaymentNotices = append(resp.PaymentNotices, dto.PaymentNoticeResponse{
			RptID:        n.RptID.String(),
			PaymentToken: n.PaymentToken,
			Amount:       n.Amount,
			Description:  n.Description,
			TransferList: transfers,
		})
	}

	if auth, ok := source.(domain.AuthorizationRequested); ok {
		a := auth.AuthorizationData()
		fee := a.Fee
		resp.Fee = &fee
		if a.GatewayData != nil {
			gateway := string(a.GatewayData.Gateway())
			resp.Gateway = &gateway
		}
	}
	if completed, ok := source.(domain.AuthorizationCompleted); ok {
		outcome := string(completed.CompletionData().Outcome())
		resp.AuthorizationOutcome = &outcome
	}
	if closed, ok := source.(domain.TransactionClosed); ok {
		outcome := string(closed.ClosureOutcome)
		resp.ClosureOutcome = &outcome
	}
	return resp
}
