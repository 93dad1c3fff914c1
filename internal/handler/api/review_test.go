//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"reservation-service/internal/handler/api"
	"reservation-service/internal/usecase/commands"
	"reservation-service/internal/usecase/queries"
	"reservation-service/tests/common/httptest"
	"reservation-service/tests/common/testutil"
	commandsmock "reservation-service/tests/mock/commands"
	queriesmock "reservation-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/review", s.handler.Create)
	s.router.GET("/reviews", s.handler.List)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/review"
	body := map[string]any{"customerName": "Alice", "comment": "Great food", "rating": 5}

	s.Run("success: 200 with stored review", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), commands.CreateReviewInput{CustomerName: "Alice", Comment: "Great food", Rating: 5}).
			Return(&queries.ReviewView{
				ID:           "b-1",
				CustomerName: "Alice",
				Comment:      "Great food",
				Rating:       5,
				Source:       "reservation-service",
				CreatedAt:    time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		var resp struct {
			ID     string `json:"id"`
			Rating int    `json:"rating"`
			Source string `json:"source"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("b-1", resp.ID)
		s.Equal(5, resp.Rating)
		s.Equal("reservation-service", resp.Source)
	})

	s.Run("comment is optional", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), commands.CreateReviewInput{CustomerName: "Alice", Rating: 3}).
			Return(&queries.ReviewView{ID: "b-2", Rating: 3}, nil).Times(1)

		payload := map[string]any{"customerName": "Alice", "rating": 3}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payload)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("missing required fields: 400", func() {
		for _, mutate := range []func(map[string]any){
			testutil.Field("customerName", nil),
			testutil.Field("rating", nil),
		} {
			payload := map[string]any{"customerName": "Alice", "rating": 4}
			mutate(payload)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, payload)
			s.Equal(http.StatusBadRequest, rec.Code)
		}
	})

	s.Run("store failure: 500", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *ReviewHandlerTestSuite) TestList() {
	s.Run("success: 200 with all reviews", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return([]*queries.ReviewView{
				{ID: "b-1", CustomerName: "Alice", Rating: 5, Source: "reservation-service"},
				{ID: "b-2", CustomerName: "Bob", Rating: 3, Source: "reservation-service"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews", nil)

		var resp []struct {
			ID string `json:"id"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 2)
	})

	s.Run("store failure: 500", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, commands.ErrDatabaseOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews", nil)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}
