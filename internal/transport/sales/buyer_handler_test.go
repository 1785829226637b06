package sales

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/logger"
	"github.com/yogasw/portal-jualan/internal/transport/sales/mocks"
	"github.com/yogasw/portal-jualan/internal/transport/sales/tokens"
	"github.com/yogasw/portal-jualan/internal/transport/testutils"
)

type BuyerHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockBuyerService *mocks.MockBuyerServicer
	jwtSecret        []byte
	authToken        string
}

func TestBuyerHandlerSuite(t *testing.T) {
	suite.Run(t, new(BuyerHandlerTestSuite))
}

func (s *BuyerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())

	s.mockBuyerService = mocks.NewMockBuyerServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	token, tokenErr := tokens.GenerateSellerJWT(1, "admin", "Administrator", time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.authToken = token

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		BuyerService: s.mockBuyerService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *BuyerHandlerTestSuite) bearer() func(*testutils.RequestOptions) {
	return testutils.WithHeader("Authorization", "Bearer "+s.authToken)
}

func (s *BuyerHandlerTestSuite) TestIndex() {
	buyers := []domain.Buyer{
		{ID: 1, Nama: gofakeit.Name(), Alamat: gofakeit.Address().Address, NoHP: gofakeit.Phone()},
		{ID: 2, Nama: gofakeit.Name(), Alamat: gofakeit.Address().Address, NoHP: gofakeit.Phone()},
	}
	s.mockBuyerService.EXPECT().GetAll(gomock.Any()).Return(buyers, nil)

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    "/buyers",
	}, s.bearer())
	defer resp.Body.Close()

	s.Require().Equal(http.StatusOK, resp.StatusCode)

	// the list endpoint answers with a bare array
	var payload []BuyerResponse
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
	s.Require().Len(payload, 2)
	s.Equal(buyers[0].Nama, payload[0].Nama)
}

func (s *BuyerHandlerTestSuite) TestCreate() {
	s.mockBuyerService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&domain.Buyer{ID: 3, Nama: "Budi"}, nil)

	cases := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "ok",
			body:       `{"nama":"Budi","alamat":"Jl. Mawar 1","no_hp":"0812"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing fields",
			body:       `{"nama":"Budi"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    "/buyer",
				Body:   bytes.NewBufferString(t.body),
			}, s.bearer())
			defer resp.Body.Close()

			s.Require().Equal(t.wantStatus, resp.StatusCode)

			if t.wantStatus == http.StatusOK {
				var payload map[string]any
				s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
				s.EqualValues(3, payload["id"])
			}
		})
	}
}

func (s *BuyerHandlerTestSuite) TestDelete() {
	s.mockBuyerService.EXPECT().Delete(gomock.Any(), int64(1)).Return(domain.ErrBuyerReferenced)
	s.mockBuyerService.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil)
	s.mockBuyerService.EXPECT().Delete(gomock.Any(), int64(3)).Return(domain.ErrRecordNotFound)

	cases := []struct {
		name        string
		url         string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "referenced buyer yields conflict",
			url:         "/buyer/1",
			wantStatus:  http.StatusConflict,
			wantMessage: "Buyer tidak dapat dihapus karena memiliki order",
		},
		{
			name:       "free buyer deleted",
			url:        "/buyer/2",
			wantStatus: http.StatusOK,
		},
		{
			name:        "missing buyer",
			url:         "/buyer/3",
			wantStatus:  http.StatusNotFound,
			wantMessage: "Buyer tidak ditemukan",
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodDelete,
				URL:    t.url,
			}, s.bearer())
			defer resp.Body.Close()

			s.Require().Equal(t.wantStatus, resp.StatusCode)

			if t.wantMessage != "" {
				var payload map[string]any
				s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
				s.Equal(t.wantMessage, payload["message"])
			}
		})
	}
}
