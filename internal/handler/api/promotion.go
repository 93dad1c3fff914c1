package api

import (
	"errors"
	"net/http"

	reqdto "reservation-service/internal/handler/dto/request"
	resdto "reservation-service/internal/handler/dto/response"
	"reservation-service/internal/handler/httperr"
	"reservation-service/internal/usecase/commands"
	"reservation-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromotionHandler struct {
	promotionCommands commands.PromotionCommands
	promotionQueries  queries.PromotionQueries
}

func NewPromotionHandler(promotionCommands commands.PromotionCommands, promotionQueries queries.PromotionQueries) *PromotionHandler {
	return &PromotionHandler{
		promotionCommands: promotionCommands,
		promotionQueries:  promotionQueries,
	}
}

func (h *PromotionHandler) Create(c *gin.Context) {
	var req reqdto.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing required fields")
		return
	}

	view, err := h.promotionCommands.Create(c.Request.Context(), commands.CreatePromotionInput{
		Name:               req.Name,
		Description:        req.GetDescription(),
		DiscountPercentage: req.DiscountPercentage,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPromotionValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid promotion fields")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create promotion")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPromotionView(view))
}

func (h *PromotionHandler) List(c *gin.Context) {
	views, err := h.promotionQueries.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch promotions")
		return
	}

	result := make([]*resdto.PromotionResponse, len(views))
	for i, v := range views {
		result[i] = resdto.FromPromotionView(v)
	}

	c.JSON(http.StatusOK, result)
}
