//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"komani-booking/internal/handler/api"
	resdto "komani-booking/internal/handler/dto/response"
	"komani-booking/internal/usecase/queries"
	"komani-booking/tests/common/httptest"
	queriesmock "komani-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TourHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockTourQueries
	handler     *api.TourHandler
}

func (s *TourHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockTourQueries(s.mockCtrl)
	s.handler = api.NewTourHandler(s.mockQueries)

	s.router.GET("/tours", s.handler.List)
	s.router.GET("/tours/:slug", s.handler.Get)
}

func (s *TourHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTourHandlerSuite(t *testing.T) {
	suite.Run(t, new(TourHandlerTestSuite))
}

func (s *TourHandlerTestSuite) TestList() {
	s.Run("lists the localized catalog", func() {
		base := 54.0
		s.mockQueries.EXPECT().
			List(gomock.Any(), "sq").
			Return([]*queries.TourView{
				{
					Slug:             "boat-tour",
					Title:            "Tur me Varkë në Liqenin e Komanit",
					Price:            "54",
					BasePriceEUR:     &base,
					TransferIncluded: true,
					Inclusions:       []string{"Transferta nga Shkodra"},
				},
			}, nil)

		w := httptest.PerformRequest(s.T(), s.router, "GET", "/tours?locale=sq", nil)

		var resp []resdto.TourResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().Len(resp, 1)
		s.Equal("Tur me Varkë në Liqenin e Komanit", resp[0].Title)
		s.True(resp[0].TransferIncluded)
	})
}

func (s *TourHandlerTestSuite) TestGet() {
	s.Run("returns one tour", func() {
		s.mockQueries.EXPECT().
			BySlug(gomock.Any(), "helicopter-tour", "").
			Return(&queries.TourView{
				Slug:      "helicopter-tour",
				Title:     "Helicopter Sky Cruise",
				Price:     "Call",
				OnRequest: true,
			}, nil)

		w := httptest.PerformRequest(s.T(), s.router, "GET", "/tours/helicopter-tour", nil)

		var resp resdto.TourResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.True(resp.OnRequest)
		s.Equal("Call", resp.Price)
		s.Nil(resp.BasePriceEUR)
	})

	s.Run("unknown slug", func() {
		s.mockQueries.EXPECT().
			BySlug(gomock.Any(), "no-such-tour", "").
			Return(nil, queries.ErrTourNotFound)

		w := httptest.PerformRequest(s.T(), s.router, "GET", "/tours/no-such-tour", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Tour not found")
	})
}
