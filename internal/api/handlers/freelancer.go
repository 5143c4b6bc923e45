package handlers

import (
	"leadportaal/internal/api/constants"
	"leadportaal/internal/api/dto/common"
	"leadportaal/internal/api/dto/v1/freelancer"
	"leadportaal/internal/api/mapper"
	"leadportaal/internal/models"
	"leadportaal/internal/service"
	"leadportaal/internal/utils"

	"github.com/gin-gonic/gin"
)

type FreelancerHandler struct {
	freelancerService *service.FreelancerService
}

func NewFreelancerHandler(freelancerService *service.FreelancerService) *FreelancerHandler {
	return &FreelancerHandler{
		freelancerService: freelancerService,
	}
}

// Submit handles a public freelancer application
func (h *FreelancerHandler) Submit(c *gin.Context) {
	// Get application data from context (set by validation middleware)
	data, exists := c.Get(constants.ContextKeySubmitFreelancer)
	if !exists {
		utils.HandleAPIError(c, nil, common.ErrCodeInternalServer, "Freelancer data not found in context")
		return
	}

	req, ok := data.(freelancer.SubmitRequest)
	if !ok {
		utils.HandleAPIError(c, nil, common.ErrCodeInternalServer, "Invalid freelancer data format")
		return
	}

	created, err := h.freelancerService.Submit(c.Request.Context(), mapper.SubmitRequestToFreelancer(&req))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleCreated(c, freelancer.SubmitResponse{ID: created.ID})
}

// List returns all freelancer applications for the dashboard
func (h *FreelancerHandler) List(c *gin.Context) {
	freelancers, err := h.freelancerService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.FreelancersToFreelancerResponses(freelancers))
}

// Get returns a single freelancer application by ID
func (h *FreelancerHandler) Get(c *gin.Context) {
	f, err := h.freelancerService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.FreelancerToFreelancerResponse(f))
}

// UpdateStatus changes the status tag of a freelancer application
func (h *FreelancerHandler) UpdateStatus(c *gin.Context) {
	statusData, exists := c.Get(constants.ContextKeyUpdateStatus)
	if !exists {
		utils.HandleAPIError(c, nil, common.ErrCodeInternalServer, "Status data not found in context")
		return
	}

	req, ok := statusData.(freelancer.UpdateStatusRequest)
	if !ok {
		utils.HandleAPIError(c, nil, common.ErrCodeInternalServer, "Invalid status data format")
		return
	}

	updated, err := h.freelancerService.UpdateStatus(c.Request.Context(), c.Param("id"), models.FreelancerStatus(req.Status))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleSuccess(c, mapper.FreelancerToFreelancerResponse(updated))
}

// Delete removes a freelancer application
func (h *FreelancerHandler) Delete(c *gin.Context) {
	if err := h.freelancerService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.HandleNoContent(c)
}
