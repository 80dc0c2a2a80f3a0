// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/storefront/internal/i18n"
	"github.com/javajoker/storefront/internal/services"
	"github.com/javajoker/storefront/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"cart": h.cartService.Cart(c.Request.Context(), sessionID),
	})
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	summary, err := h.cartService.AddToCart(c.Request.Context(), sessionID, req.ProductID)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			utils.NotFoundResponse(c, i18n.KeyProduct)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(i18n.KeyCartItemAdded),
		"cart":    summary,
	})
}

// PUT /cart/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var req services.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	summary := h.cartService.UpdateQuantity(c.Request.Context(), sessionID, c.Param("productId"), *req.Quantity)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(i18n.KeyCartUpdated),
		"cart":    summary,
	})
}

// DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	summary := h.cartService.RemoveFromCart(c.Request.Context(), sessionID, c.Param("productId"))

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(i18n.KeyCartItemRemoved),
		"cart":    summary,
	})
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	summary := h.cartService.ClearCart(c.Request.Context(), sessionID)

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(i18n.KeyCartCleared),
		"cart":    summary,
	})
}

// GET /header
func (h *CartHandler) GetHeader(c *gin.Context) {
	sessionID, ok := utils.GetSessionIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	utils.SuccessResponse(c, h.cartService.Header(c.Request.Context(), sessionID))
}
