// internal/handlers/session.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront/internal/i18n"
	"github.com/javajoker/storefront/internal/services"
	"github.com/javajoker/storefront/internal/utils"
)

type SessionHandler struct {
	sessionService *services.SessionService
	cartService    *services.CartService
}

func NewSessionHandler(sessionService *services.SessionService, cartService *services.CartService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		cartService:    cartService,
	}
}

// POST /sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	session, err := h.sessionService.Create()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(i18n.KeySessionCreated),
		"session": session,
	})
}

// POST /auth/login
func (h *SessionHandler) Login(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	user := h.cartService.Login(c.Request.Context(), sessionID, &req)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(i18n.KeyAuthLoginSuccess, user.Name),
		"user":    user,
	})
}

// POST /auth/logout
func (h *SessionHandler) Logout(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	h.cartService.Logout(c.Request.Context(), sessionID)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(i18n.KeyAuthLogoutSuccess),
	})
}

// GET /auth/me
func (h *SessionHandler) GetProfile(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"user": h.cartService.CurrentUser(c.Request.Context(), sessionID),
	})
}
