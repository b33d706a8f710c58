package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	portssvc "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/services"
	"github.com/hoteldesk/hotel_ops_backend/internal/dto"
	"github.com/hoteldesk/hotel_ops_backend/internal/handlers"
	"github.com/hoteldesk/hotel_ops_backend/internal/middleware"
)

// --- Mock CollectionService ---
type MockCollectionService struct {
	mock.Mock
}

func (m *MockCollectionService) DailyCollection(ctx context.Context, window domain.ReportWindow) (*domain.DailyCollectionReport, error) {
	args := m.Called(ctx, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyCollectionReport), args.Error(1)
}

var _ portssvc.CollectionSvcFacade = (*MockCollectionService)(nil)

// --- Test Suite ---
type CollectionHandlerTestSuite struct {
	suite.Suite
	router                *gin.Engine
	mockCollectionService *MockCollectionService
	jwtSecret             string
}

func (suite *CollectionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "hotel-ops-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *CollectionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockCollectionService = new(MockCollectionService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterCollectionRoutes(v1, suite.mockCollectionService)
}

func (suite *CollectionHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("u-1"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *CollectionHandlerTestSuite) TestGetDailyCollection_Success() {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	window := domain.ReportWindow{Start: start, End: end}

	report := &domain.DailyCollectionReport{
		Window: window,
		Details: []domain.CollectionItem{
			{Serial: 1, Date: start, BillNo: "B-100", GuestName: "A Guest", Payment: "Cash", Cash: decimal.NewFromInt(500)},
		},
		Totals: domain.CollectionTotals{Cash: decimal.NewFromInt(500)},
	}
	suite.mockCollectionService.On("DailyCollection", mock.Anything, window).
		Return(report, nil).Once()

	w := suite.get("/api/v1/reports/daily-collection?startDate=2026-03-01&endDate=2026-03-10")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DailyCollectionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2026-03-01", resp.StartDate)
	suite.Equal("2026-03-10", resp.EndDate)
	suite.Require().Len(resp.Details, 1)
	suite.True(resp.Totals.Grand.Equal(decimal.NewFromInt(500)))
}

func (suite *CollectionHandlerTestSuite) TestGetDailyCollection_DefaultsEndToStart() {
	start := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	window := domain.ReportWindow{Start: start, End: start}
	suite.mockCollectionService.On("DailyCollection", mock.Anything, window).
		Return(&domain.DailyCollectionReport{Window: window}, nil).Once()

	w := suite.get("/api/v1/reports/daily-collection?startDate=2026-03-05")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockCollectionService.AssertExpectations(suite.T())
}

func (suite *CollectionHandlerTestSuite) TestGetDailyCollection_MissingStartDate() {
	w := suite.get("/api/v1/reports/daily-collection")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCollectionService.AssertNotCalled(suite.T(), "DailyCollection")
}

func (suite *CollectionHandlerTestSuite) TestGetDailyCollection_EndBeforeStart() {
	w := suite.get("/api/v1/reports/daily-collection?startDate=2026-03-10&endDate=2026-03-01")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockCollectionService.AssertNotCalled(suite.T(), "DailyCollection")
}

func TestCollectionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CollectionHandlerTestSuite))
}
