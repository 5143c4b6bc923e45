package middleware

import (
	"net/http"

	"leadportaal/internal/api/constants"
	"leadportaal/internal/api/dto/common"
	"leadportaal/internal/api/dto/v1/freelancer"
	"leadportaal/internal/api/dto/v1/quote"
	"leadportaal/internal/api/validation"
	authdto "leadportaal/internal/api/dto/v1/auth"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct {
	validate *validator.Validate
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return &ValidationMiddleware{
		validate: validate,
	}
}

func abortInvalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, common.NewErrorResponse(
		common.ErrCodeValidation,
		"Invalid request body",
		validation.FormatValidationError(err),
	))
	c.Abort()
}

// ValidateLoginRequest validates login request
func (m *ValidationMiddleware) ValidateLoginRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var login authdto.LoginRequest
		if err := c.ShouldBindJSON(&login); err != nil {
			abortInvalidBody(c, err)
			return
		}
		if err := m.validate.Struct(login); err != nil {
			abortInvalidBody(c, err)
			return
		}

		c.Set(constants.ContextKeyLogin, login)
		c.Next()
	}
}

// ValidateSubmitQuoteRequest validates a public quote submission
func (m *ValidationMiddleware) ValidateSubmitQuoteRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req quote.SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortInvalidBody(c, err)
			return
		}
		if err := m.validate.Struct(req); err != nil {
			abortInvalidBody(c, err)
			return
		}

		c.Set(constants.ContextKeySubmitQuote, req)
		c.Next()
	}
}

// ValidateSubmitFreelancerRequest validates a public freelancer application
func (m *ValidationMiddleware) ValidateSubmitFreelancerRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req freelancer.SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortInvalidBody(c, err)
			return
		}
		if err := m.validate.Struct(req); err != nil {
			abortInvalidBody(c, err)
			return
		}

		c.Set(constants.ContextKeySubmitFreelancer, req)
		c.Next()
	}
}

// ValidateUpdateQuoteStatusRequest validates a quote status change
func (m *ValidationMiddleware) ValidateUpdateQuoteStatusRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req quote.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortInvalidBody(c, err)
			return
		}
		if err := m.validate.Struct(req); err != nil {
			abortInvalidBody(c, err)
			return
		}

		c.Set(constants.ContextKeyUpdateStatus, req)
		c.Next()
	}
}

// ValidateUpdateFreelancerStatusRequest validates a freelancer status change
func (m *ValidationMiddleware) ValidateUpdateFreelancerStatusRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req freelancer.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortInvalidBody(c, err)
			return
		}
		if err := m.validate.Struct(req); err != nil {
			abortInvalidBody(c, err)
			return
		}

		c.Set(constants.ContextKeyUpdateStatus, req)
		c.Next()
	}
}
