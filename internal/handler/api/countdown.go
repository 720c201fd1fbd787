package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "petstay-bff/internal/handler/dto/request"
	resdto "petstay-bff/internal/handler/dto/response"
	"petstay-bff/internal/handler/httperr"
	"petstay-bff/internal/pkg/errs"
	"petstay-bff/internal/usecase"
	"petstay-bff/internal/usecase/commands"
	"petstay-bff/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CountdownHandler struct {
	cmds    commands.CountdownCommands
	q       queries.CountdownQueries
	watcher *usecase.Watcher
}

func NewCountdownHandler(cmds commands.CountdownCommands, q queries.CountdownQueries, watcher *usecase.Watcher) *CountdownHandler {
	return &CountdownHandler{cmds: cmds, q: q, watcher: watcher}
}

// @Summary Arm payment countdown
// @Description Start or refresh the payment countdown for an order
// @Tags countdowns
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body reqdto.ArmCountdownRequest false "Order payload hints"
// @Success 200 {object} resdto.CountdownResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /orders/{id}/countdown [put]
func (h *CountdownHandler) Arm(c *gin.Context) {
	orderID := c.Param("id")

	// The body is optional; an empty one means "ask the upstream".
	var req reqdto.ArmCountdownRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	remaining, err := h.cmds.Arm(c.Request.Context(), commands.ArmRequest{
		OrderID:       orderID,
		ExpireSeconds: req.ExpireSeconds,
		CreateTime:    req.CreateTime,
	})
	if err != nil {
		if errors.Is(err, commands.ErrUnknownExpiry) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Cannot determine expiry", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	if remaining > 0 {
		h.watcher.Watch(orderID)
	}

	c.JSON(http.StatusOK, resdto.CountdownResponse{
		OrderID:          orderID,
		RemainingSeconds: remaining,
	})
}

// @Summary Get remaining payment time
// @Description Live remaining seconds for an order's payment window
// @Tags countdowns
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.CountdownResponse
// @Failure 404 {object} map[string]string
// @Router /orders/{id}/countdown [get]
func (h *CountdownHandler) Get(c *gin.Context) {
	orderID := c.Param("id")

	// Untracked is 404; an expired order stays tracked and answers 200 with
	// zero remaining.
	remaining, ok := h.q.Remaining(orderID)
	if !ok {
		httperr.AbortWithError(c, http.StatusNotFound, errs.New("countdown not tracked"), "Not found", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.CountdownResponse{
		OrderID:          orderID,
		RemainingSeconds: remaining,
	})
}

// @Summary List tracked countdowns
// @Description All orders with an active payment countdown
// @Tags countdowns
// @Produce json
// @Success 200 {array} resdto.CountdownListItem
// @Router /countdowns [get]
func (h *CountdownHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromCountdownViews(h.q.List()))
}

// @Summary Stop tracking an order
// @Description Drop the countdown when the order leaves the payment flow
// @Tags countdowns
// @Param id path string true "Order ID"
// @Success 204
// @Router /orders/{id}/countdown [delete]
func (h *CountdownHandler) Clear(c *gin.Context) {
	orderID := c.Param("id")

	// Stop the timers before dropping the entry so an in-flight poll finds
	// nothing to write back to.
	h.watcher.Stop(orderID)
	h.cmds.Clear(orderID)
	c.Status(http.StatusNoContent)
}

// @Summary Drop all countdowns
// @Tags countdowns
// @Success 204
// @Router /countdowns [delete]
func (h *CountdownHandler) ClearAll(c *gin.Context) {
	h.watcher.StopAll()
	h.cmds.ClearAll()
	c.Status(http.StatusNoContent)
}
