//go:build unit

package api_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"petstay-bff/internal/handler/api"
	resdto "petstay-bff/internal/handler/dto/response"
	"petstay-bff/internal/pkg/config"
	"petstay-bff/internal/usecase"
	"petstay-bff/internal/usecase/commands"
	"petstay-bff/internal/usecase/queries"
	"petstay-bff/tests/common/httptest"
	commandsmock "petstay-bff/tests/mock/commands"
	queriesmock "petstay-bff/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CountdownHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCountdownCommands
	mockQueries  *queriesmock.MockCountdownQueries
	watcher      *usecase.Watcher
	handler      *api.CountdownHandler
}

func (s *CountdownHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCountdownCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCountdownQueries(s.mockCtrl)

	// Hour-long intervals so no timer fires during a test.
	watcherCfg := config.CountdownConfig{
		TickInterval:      time.Hour,
		ReconcileInterval: time.Hour,
		FallbackWindow:    15 * time.Minute,
	}
	s.watcher = usecase.NewWatcher(s.mockCommands, watcherCfg, slog.New(slog.DiscardHandler))

	s.handler = api.NewCountdownHandler(s.mockCommands, s.mockQueries, s.watcher)

	s.router.PUT("/orders/:id/countdown", s.handler.Arm)
	s.router.GET("/orders/:id/countdown", s.handler.Get)
	s.router.DELETE("/orders/:id/countdown", s.handler.Clear)
	s.router.GET("/countdowns", s.handler.List)
	s.router.DELETE("/countdowns", s.handler.ClearAll)
}

func (s *CountdownHandlerTestSuite) TearDownTest() {
	s.watcher.StopAll()
	s.mockCtrl.Finish()
}

func TestCountdownHandlerSuite(t *testing.T) {
	suite.Run(t, new(CountdownHandlerTestSuite))
}

// ================================================================================
// TestArm
// ================================================================================

func (s *CountdownHandlerTestSuite) TestArm() {
	url := "/orders/order-1/countdown"

	s.Run("success: arms from payload hints and returns remaining", func() {
		s.mockCommands.EXPECT().Arm(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.ArmRequest) (int64, error) {
				s.Equal("order-1", req.OrderID)
				s.Require().NotNil(req.ExpireSeconds)
				s.Equal(int64(90), *req.ExpireSeconds)
				return 90, nil
			}).Times(1)

		body := map[string]any{"expire_seconds": 90}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body)

		var response resdto.CountdownResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("order-1", response.OrderID)
		s.Equal(int64(90), response.RemainingSeconds)
	})

	s.Run("success: empty body arms from the upstream", func() {
		s.mockCommands.EXPECT().Arm(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.ArmRequest) (int64, error) {
				s.Equal("order-1", req.OrderID)
				s.Nil(req.ExpireSeconds)
				s.Nil(req.CreateTime)
				return 120, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil)

		var response resdto.CountdownResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(120), response.RemainingSeconds)
	})

	s.Run("success: terminal order answers zero remaining", func() {
		s.mockCommands.EXPECT().Arm(gomock.Any(), gomock.Any()).
			Return(int64(0), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil)

		var response resdto.CountdownResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(0), response.RemainingSeconds)
	})

	s.Run("error: 422 when expiry cannot be determined", func() {
		s.mockCommands.EXPECT().Arm(gomock.Any(), gomock.Any()).
			Return(int64(0), commands.ErrUnknownExpiry).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Cannot determine expiry")
	})

	s.Run("error: 500 on unexpected usecase error", func() {
		s.mockCommands.EXPECT().Arm(gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})

	s.Run("error: 400 Bad Request for malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, "not-an-object")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *CountdownHandlerTestSuite) TestGet() {
	url := "/orders/order-1/countdown"

	s.Run("success: returns live remaining seconds", func() {
		s.mockQueries.EXPECT().Remaining("order-1").
			Return(int64(42), true).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.CountdownResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(42), response.RemainingSeconds)
	})

	s.Run("success: expired order answers zero, not 404", func() {
		s.mockQueries.EXPECT().Remaining("order-1").
			Return(int64(0), true).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.CountdownResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(0), response.RemainingSeconds)
	})

	s.Run("error: 404 Not Found for untracked order", func() {
		s.mockQueries.EXPECT().Remaining("order-1").
			Return(int64(0), false).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *CountdownHandlerTestSuite) TestList() {
	s.Run("success: returns all tracked countdowns", func() {
		views := []queries.CountdownView{
			{OrderID: "order-1", RemainingSeconds: 30, ExpireAt: "2026-03-01T12:00:30Z"},
			{OrderID: "order-2", RemainingSeconds: 90, ExpireAt: "2026-03-01T12:01:30Z"},
		}
		s.mockQueries.EXPECT().List().Return(views).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/countdowns", nil)

		var response []resdto.CountdownListItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("order-1", response[0].OrderID)
		s.Equal(int64(90), response[1].RemainingSeconds)
	})

	s.Run("success: empty list", func() {
		s.mockQueries.EXPECT().List().Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/countdowns", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

// ================================================================================
// TestClear
// ================================================================================

func (s *CountdownHandlerTestSuite) TestClear() {
	s.Run("success: returns 204 and drops the countdown", func() {
		s.mockCommands.EXPECT().Clear("order-1").Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/orders/order-1/countdown", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: clear all returns 204", func() {
		s.mockCommands.EXPECT().ClearAll().Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/countdowns", nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
