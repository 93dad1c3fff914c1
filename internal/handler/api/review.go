package api

import (
	"net/http"

	reqdto "reservation-service/internal/handler/dto/request"
	resdto "reservation-service/internal/handler/dto/response"
	"reservation-service/internal/handler/httperr"
	"reservation-service/internal/usecase/commands"
	"reservation-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewCommands commands.ReviewCommands
	reviewQueries  queries.ReviewQueries
}

func NewReviewHandler(reviewCommands commands.ReviewCommands, reviewQueries queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{
		reviewCommands: reviewCommands,
		reviewQueries:  reviewQueries,
	}
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "customerName and rating are required")
		return
	}

	view, err := h.reviewCommands.Create(c.Request.Context(), commands.CreateReviewInput{
		CustomerName: req.CustomerName,
		Comment:      req.GetComment(),
		Rating:       req.Rating,
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to submit review")
		return
	}

	c.JSON(http.StatusOK, resdto.FromReviewView(view))
}

func (h *ReviewHandler) List(c *gin.Context) {
	views, err := h.reviewQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch reviews")
		return
	}

	result := make([]*resdto.ReviewResponse, len(views))
	for i, v := range views {
		result[i] = resdto.FromReviewView(v)
	}

	c.JSON(http.StatusOK, result)
}
