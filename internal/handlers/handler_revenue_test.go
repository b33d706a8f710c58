package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hoteldesk/hotel_ops_backend/internal/apperrors"
	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	portssvc "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/services"
	"github.com/hoteldesk/hotel_ops_backend/internal/dto"
	"github.com/hoteldesk/hotel_ops_backend/internal/handlers"
	"github.com/hoteldesk/hotel_ops_backend/internal/middleware"
)

// --- Mock RevenueService ---
type MockRevenueService struct {
	mock.Mock
}

func (m *MockRevenueService) Statement(ctx context.Context, date time.Time) (*domain.RevenueStatement, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RevenueStatement), args.Error(1)
}

func (m *MockRevenueService) DashboardSummary(ctx context.Context, date time.Time) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

func (m *MockRevenueService) Trend(ctx context.Context, date time.Time, days int) ([]domain.DailyRevenue, error) {
	args := m.Called(ctx, date, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyRevenue), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.RevenueSvcFacade = (*MockRevenueService)(nil)

// --- Test Suite ---
type RevenueHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockRevenueService *MockRevenueService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *RevenueHandlerTestSuite) generateTestToken(userID string) string {
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

func (suite *RevenueHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockRevenueService = new(MockRevenueService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterRevenueRoutes(v1, suite.mockRevenueService)
}

func (suite *RevenueHandlerTestSuite) get(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("u-1"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func statementFixture(date time.Time) *domain.RevenueStatement {
	window := domain.WindowStatement{
		Categories: map[domain.Category]domain.CategoryTotal{
			domain.CategoryRoomCharge: {Amount: decimal.NewFromInt(1000), Service: decimal.NewFromInt(100), Tax: decimal.NewFromInt(50)},
		},
		Sections: []domain.SectionTotal{
			{Section: domain.SectionRoom, Net: decimal.NewFromInt(1000), Service: decimal.NewFromInt(100), Tax: decimal.NewFromInt(50), Grand: decimal.NewFromInt(1150)},
		},
		GrandTotal: domain.GrandTotal{Net: decimal.NewFromInt(1000), Service: decimal.NewFromInt(100), Tax: decimal.NewFromInt(50), Grand: decimal.NewFromInt(1150)},
	}
	return &domain.RevenueStatement{Date: date, Today: window, MonthToDate: window}
}

func (suite *RevenueHandlerTestSuite) TestGetRevenueStatement_Success() {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	suite.mockRevenueService.On("Statement", mock.Anything, date).
		Return(statementFixture(date), nil).Once()

	w := suite.get("/api/v1/reports/revenue-statement?date=2026-03-10")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RevenueStatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2026-03-10", resp.Date)
	suite.True(resp.Today.GrandTotal.Grand.Equal(decimal.NewFromInt(1150)))
	roomCharge, ok := resp.Today.Categories["roomCharge"]
	suite.Require().True(ok, "roomCharge category missing: %v", resp.Today.Categories)
	suite.True(roomCharge.Amount.Equal(decimal.NewFromInt(1000)))
	suite.mockRevenueService.AssertExpectations(suite.T())
}

func (suite *RevenueHandlerTestSuite) TestMissingDateRejectedBeforeAggregation() {
	for _, url := range []string{
		"/api/v1/reports/revenue-statement",
		"/api/v1/dashboard/revenue",
		"/api/v1/dashboard/revenue-trend",
	} {
		w := suite.get(url)
		suite.Equal(http.StatusBadRequest, w.Code, "url=%s", url)
		suite.Contains(w.Body.String(), "date is required")
	}
	suite.mockRevenueService.AssertNotCalled(suite.T(), "Statement")
	suite.mockRevenueService.AssertNotCalled(suite.T(), "DashboardSummary")
	suite.mockRevenueService.AssertNotCalled(suite.T(), "Trend")
}

func (suite *RevenueHandlerTestSuite) TestGetRevenueStatement_InvalidDate() {
	w := suite.get("/api/v1/reports/revenue-statement?date=10-03-2026")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRevenueService.AssertNotCalled(suite.T(), "Statement")
}

func (suite *RevenueHandlerTestSuite) TestGetRevenueStatement_SourceUnavailable() {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	srcErr := apperrors.NewSourceError(domain.SourceBanquet, domain.TodayWindow(date), errors.New("timeout"))
	suite.mockRevenueService.On("Statement", mock.Anything, date).
		Return(nil, srcErr).Once()

	w := suite.get("/api/v1/reports/revenue-statement?date=2026-03-10")

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.Contains(w.Body.String(), string(domain.SourceBanquet))
}

func (suite *RevenueHandlerTestSuite) TestGetRevenueStatement_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/revenue-statement?date=2026-03-10", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockRevenueService.AssertNotCalled(suite.T(), "Statement")
}

func (suite *RevenueHandlerTestSuite) TestGetDashboardRevenue_Success() {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	suite.mockRevenueService.On("DashboardSummary", mock.Anything, date).
		Return(&domain.DashboardSummary{
			DailyCollection: decimal.NewFromInt(300),
			TodayRevenue:    decimal.NewFromInt(1150),
			MTDRevenue:      decimal.NewFromInt(2500000),
			MonthlyTarget:   decimal.NewFromInt(5000000),
		}, nil).Once()

	w := suite.get("/api/v1/dashboard/revenue?date=2026-03-10")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DashboardRevenueResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.DailyCollection.Equal(decimal.NewFromInt(300)))
	// 2.5M of 5M is 50%
	suite.True(resp.TargetAchieved.Equal(decimal.NewFromInt(50)), "achieved = %s", resp.TargetAchieved)
}

func (suite *RevenueHandlerTestSuite) TestGetRevenueTrend_Success() {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	suite.mockRevenueService.On("Trend", mock.Anything, date, 7).
		Return([]domain.DailyRevenue{
			{
				Date:          date,
				RoomRevenue:   decimal.NewFromInt(1000),
				FnbRevenue:    decimal.NewFromInt(450),
				OtherRevenue:  decimal.NewFromInt(80),
				OccupiedRooms: 10,
				TotalRooms:    100,
				ADR:           decimal.NewFromInt(100),
			},
		}, nil).Once()

	w := suite.get("/api/v1/dashboard/revenue-trend?date=2026-03-10&days=7")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.RevenueTrendResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("2026-03-10", resp.EndDate)
	suite.Require().Len(resp.Days, 1)
	suite.True(resp.Days[0].Revenue.Equal(decimal.NewFromInt(1530)))
	suite.Equal(10, resp.Days[0].OccupiedRooms)
}

func (suite *RevenueHandlerTestSuite) TestGetRevenueTrend_InvalidDays() {
	for _, days := range []string{"0", "-3", "120", "abc"} {
		w := suite.get("/api/v1/dashboard/revenue-trend?date=2026-03-10&days=" + days)
		suite.Equal(http.StatusBadRequest, w.Code, "days=%s", days)
	}
	suite.mockRevenueService.AssertNotCalled(suite.T(), "Trend")
}

func TestRevenueHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RevenueHandlerTestSuite))
}
