//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"petstay-bff/internal/handler/api"
	reqdto "petstay-bff/internal/handler/dto/request"
	resdto "petstay-bff/internal/handler/dto/response"
	"petstay-bff/internal/usecase/queries"
	"petstay-bff/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	handler *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	if v, ok := binding.Validator.Engine().(*validatorv10.Validate); ok {
		reqdto.RegisterValidations(v)
	}

	// The quote pipeline is pure, so the real queries implementation is used
	// instead of a mock.
	s.handler = api.NewQuoteHandler(queries.NewQuoteQueries())
	s.router.POST("/quotes", s.handler.Compute)
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func (s *QuoteHandlerTestSuite) validRequest() reqdto.QuoteRequest {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(25 * time.Hour)
	return reqdto.QuoteRequest{
		Prices: []reqdto.TierPayload{
			{PetCategory: "dog", PetSize: "small", PricePerDay: 60},
			{PetCategory: "dog", PetSize: "medium", PricePerDay: 100},
		},
		Services: []reqdto.ServicePayload{
			{ServiceID: 1, Price: 10},
		},
		PetType:           "dog",
		PetWeightKg:       15,
		StartTime:         &start,
		EndTime:           &end,
		ServiceQuantities: map[int64]int{1: 2},
	}
}

func (s *QuoteHandlerTestSuite) TestCompute() {
	url := "/quotes"

	s.Run("success: returns full breakdown for a complete form", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.validRequest())

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.StayDays)
		s.Equal(float64(100), body.PricePerDay)
		s.Equal(float64(200), body.BasePrice)
		s.Equal(float64(20), body.ServicePrice)
		s.Equal(float64(220), body.TotalPrice)
		s.Require().NotNil(body.MatchedTier)
		s.Equal("medium", body.MatchedTier.PetSize)
	})

	s.Run("success: partial form quotes the filled subset", func() {
		req := s.validRequest()
		req.PetType = ""
		req.PetWeightKg = 0

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req)

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(float64(0), body.BasePrice)
		s.Equal(float64(20), body.ServicePrice)
		s.Equal(float64(20), body.TotalPrice)
		s.Nil(body.MatchedTier)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(r *reqdto.QuoteRequest)
		}{
			{
				name: "end before start",
				mutate: func(r *reqdto.QuoteRequest) {
					earlier := r.StartTime.Add(-time.Hour)
					r.EndTime = &earlier
				},
			},
			{
				name: "negative pet weight",
				mutate: func(r *reqdto.QuoteRequest) {
					r.PetWeightKg = -1
				},
			},
			{
				name: "negative tier price",
				mutate: func(r *reqdto.QuoteRequest) {
					r.Prices[0].PricePerDay = -5
				},
			},
			{
				name: "negative service price",
				mutate: func(r *reqdto.QuoteRequest) {
					r.Services[0].Price = -5
				},
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				req := s.validRequest()
				tc.mutate(&req)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 Bad Request for malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, "not-an-object")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
