package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hoteldesk/hotel_ops_backend/internal/apperrors"
	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
	portssvc "github.com/hoteldesk/hotel_ops_backend/internal/core/ports/services"
	"github.com/hoteldesk/hotel_ops_backend/internal/dto"
	"github.com/hoteldesk/hotel_ops_backend/internal/handlers"
	"github.com/hoteldesk/hotel_ops_backend/internal/platform/config"
	"github.com/hoteldesk/hotel_ops_backend/internal/utils"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
	cfg             *config.Config
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "hotel-ops-test",
	}

	suite.mockUserService = new(MockUserService)

	h := handlers.NewAuthHandler(suite.mockUserService, suite.cfg)
	suite.router.POST("/api/v1/auth/login", h.Login)
}

func (suite *AuthHandlerTestSuite) postLogin(body any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	user := &domain.User{UserID: "u-1", Username: "frontdesk", Name: "Front Desk"}
	suite.mockUserService.On("Authenticate", mock.Anything, "frontdesk", "secret123").
		Return(user, nil).Once()

	w := suite.postLogin(dto.LoginRequest{Username: "frontdesk", Password: "secret123"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("u-1", resp.User.UserID)
	suite.NotEmpty(resp.Token)

	// The issued token must round-trip through our own validation.
	claims, err := utils.ParseAndValidateJWT(resp.Token, suite.cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.Equal("u-1", claims.Subject)
	suite.Equal("hotel-ops-test", claims.Issuer)
}

func (suite *AuthHandlerTestSuite) TestLogin_BadCredentials() {
	suite.mockUserService.On("Authenticate", mock.Anything, "frontdesk", "wrong").
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.postLogin(dto.LoginRequest{Username: "frontdesk", Password: "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *AuthHandlerTestSuite) TestLogin_MissingFields() {
	w := suite.postLogin(map[string]string{"username": "frontdesk"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "Authenticate")
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
