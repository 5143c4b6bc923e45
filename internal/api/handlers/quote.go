package handlers

import (
	"leadportaal/internal/api/constants"
	"leadportaal/internal/api/dto/common"
	"leadportaal/internal/api/dto/v1/quote"
	"leadportaal/internal/api/mapper"
	"leadportaal/internal/models"
	"leadportaal/internal/service"
	"leadportaal/internal/utils"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteService *service.QuoteService
}

func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		quoteService: quoteService,
	}
}

// Submit handles a public quote request submission
func (h *QuoteHandler) Submit(c *gin.Context) {
	// Get quote data from context (set by validation middleware)
	quoteData, exists := c.Get(constants.ContextKeySubmitQuote)
	if !exists {
		utils.HandleAPIError(c, nil, common.ErrCodeInternalServer, "Quote data not found in context")
		return
	}

	req, ok := quoteData.(quote.SubmitRequest)
	if !ok {
		utils.HandleAPIError(c, nil, common.ErrCodeInternalServer, "Invalid quote data format")
		return
	}

	created, err := h.quoteService.Submit(c.Request.Context(), mapper.SubmitRequestToQuote(&req))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleCreated(c, quote.SubmitResponse{ID: created.ID})
}

// List returns all quote requests for the dashboard
func (h *QuoteHandler) List(c *gin.Context) {
	quotes, err := h.quoteService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.QuotesToQuoteResponses(quotes))
}

// Get returns a single quote request by ID
func (h *QuoteHandler) Get(c *gin.Context) {
	q, err := h.quoteService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.QuoteToQuoteResponse(q))
}

// UpdateStatus changes the status tag of a quote request
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	statusData, exists := c.Get(constants.ContextKeyUpdateStatus)
	if !exists {
		utils.HandleAPIError(c, nil, common.ErrCodeInternalServer, "Status data not found in context")
		return
	}

	req, ok := statusData.(quote.UpdateStatusRequest)
	if !ok {
		utils.HandleAPIError(c, nil, common.ErrCodeInternalServer, "Invalid status data format")
		return
	}

	updated, err := h.quoteService.UpdateStatus(c.Request.Context(), c.Param("id"), models.QuoteStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.QuoteToQuoteResponse(updated))
}

// Delete removes a quote request
func (h *QuoteHandler) Delete(c *gin.Context) {
	if err := h.quoteService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleNoContent(c)
}
