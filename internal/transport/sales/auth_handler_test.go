package sales

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/logger"
	"github.com/yogasw/portal-jualan/internal/service"
	"github.com/yogasw/portal-jualan/internal/transport/sales/middlewares"
	"github.com/yogasw/portal-jualan/internal/transport/sales/mocks"
	"github.com/yogasw/portal-jualan/internal/transport/sales/tokens"
	"github.com/yogasw/portal-jualan/internal/transport/testutils"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockSellerService *mocks.MockSellerServicer
	jwtSecret         []byte
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())

	s.mockSellerService = mocks.NewMockSellerServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:        logger.New(os.Stdout),
		SellerService: s.mockSellerService,
		JWTSecretKey:  s.jwtSecret,
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	seller := domain.Seller{ID: 1, Username: "admin", NamaLengkap: "Administrator"}

	s.mockSellerService.EXPECT().
		Login(gomock.Any(), gomock.Eq(service.LoginSellerArgs{Username: "admin", Password: "secret"})).
		Return(&seller, nil)

	// the response is the same for an unknown user and a wrong password
	s.mockSellerService.EXPECT().
		Login(gomock.Any(), gomock.Eq(service.LoginSellerArgs{Username: "ghost", Password: "secret"})).
		Return(nil, domain.ErrRecordNotFound)
	s.mockSellerService.EXPECT().
		Login(gomock.Any(), gomock.Eq(service.LoginSellerArgs{Username: "admin", Password: "wrong"})).
		Return(nil, domain.ErrPasswordMissMatch)

	cases := []struct {
		name        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "ok",
			body:       `{"username":"admin","password":"secret"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:        "unknown username",
			body:        `{"username":"ghost","password":"secret"}`,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Username atau password salah",
		},
		{
			name:        "wrong password",
			body:        `{"username":"admin","password":"wrong"}`,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Username atau password salah",
		},
		{
			name:        "missing fields",
			body:        `{"username":"admin"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Username dan password harus diisi",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    "/login",
				Body:   bytes.NewBufferString(t.body),
			})
			defer resp.Body.Close()

			s.Require().Equal(t.wantStatus, resp.StatusCode)

			var payload map[string]any
			s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))

			if t.wantMessage != "" {
				s.Equal(t.wantMessage, payload["message"])
				return
			}

			// issued token must round-trip through the validator
			tokenStr, _ := payload["token"].(string)
			s.Require().NotEmpty(tokenStr)
			claims, claimsErr := tokens.ValidateSellerJWT(tokenStr, s.jwtSecret)
			s.Require().NoError(claimsErr)
			s.Equal(seller.ID, claims.ID)
			s.Equal(seller.Username, claims.Username)
			s.Equal(seller.NamaLengkap, claims.Nama)
		})
	}
}

func (s *AuthHandlerTestSuite) TestCheckAuth() {
	validToken, validErr := tokens.GenerateSellerJWT(1, "admin", "Administrator", time.Hour, s.jwtSecret)
	s.Require().NoError(validErr)

	expiredToken, expiredErr := tokens.GenerateSellerJWT(1, "admin", "Administrator", -time.Hour, s.jwtSecret)
	s.Require().NoError(expiredErr)

	cases := []struct {
		name        string
		authHeader  string
		wantStatus  int
		wantMessage string
		wantCode    string
	}{
		{
			name:       "valid token",
			authHeader: "Bearer " + validToken,
			wantStatus: http.StatusOK,
		},
		{
			name:        "no token",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Silahkan login terlebih dahulu",
			wantCode:    middlewares.CodeUnauthenticated,
		},
		{
			name:        "expired token",
			authHeader:  "Bearer " + expiredToken,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Sesi login telah berakhir",
			wantCode:    middlewares.CodeUnauthenticated,
		},
		{
			name:        "mangled token",
			authHeader:  "Bearer not.a.token",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Sesi login telah berakhir",
			wantCode:    middlewares.CodeUnauthenticated,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			opts := []func(*testutils.RequestOptions){}
			if t.authHeader != "" {
				opts = append(opts, testutils.WithHeader("Authorization", t.authHeader))
			}
			resp := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    "/check-auth",
			}, opts...)
			defer resp.Body.Close()

			s.Require().Equal(t.wantStatus, resp.StatusCode)

			var payload map[string]any
			s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))

			if t.wantStatus == http.StatusOK {
				user, _ := payload["user"].(map[string]any)
				s.Require().NotNil(user)
				s.Equal("admin", user["username"])
				return
			}
			s.Equal(t.wantMessage, payload["message"])
			s.Equal(t.wantCode, payload["code"])
		})
	}
}
