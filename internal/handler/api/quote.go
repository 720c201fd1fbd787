package api

import (
	"net/http"

	reqdto "petstay-bff/internal/handler/dto/request"
	resdto "petstay-bff/internal/handler/dto/response"
	"petstay-bff/internal/handler/httperr"
	"petstay-bff/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	q queries.QuoteQueries
}

func NewQuoteHandler(q queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{q: q}
}

// @Summary Compute price quote
// @Description Compute a boarding price breakdown from the booking form state
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Booking form state"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) Compute(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	breakdown := h.q.Compute(req.ToInput())
	c.JSON(http.StatusOK, resdto.FromBreakdown(breakdown))
}
