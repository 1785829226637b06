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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/yogasw/portal-jualan/internal/domain"
	"github.com/yogasw/portal-jualan/internal/logger"
	"github.com/yogasw/portal-jualan/internal/repository/repoargs"
	"github.com/yogasw/portal-jualan/internal/service"
	"github.com/yogasw/portal-jualan/internal/transport/sales/mocks"
	"github.com/yogasw/portal-jualan/internal/transport/sales/tokens"
	"github.com/yogasw/portal-jualan/internal/transport/testutils"
)

type OrdersHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockOrderService *mocks.MockOrderServicer
	jwtSecret        []byte
	authToken        string
}

func TestOrdersHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrdersHandlerTestSuite))
}

func (s *OrdersHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())

	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	token, tokenErr := tokens.GenerateSellerJWT(1, "admin", "Administrator", time.Hour, s.jwtSecret)
	s.Require().NoError(tokenErr)
	s.authToken = token

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		OrderService: s.mockOrderService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *OrdersHandlerTestSuite) bearer() func(*testutils.RequestOptions) {
	return testutils.WithHeader("Authorization", "Bearer "+s.authToken)
}

func (s *OrdersHandlerTestSuite) TestCreate() {
	orderDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	validSubtotal := decimal.NewFromInt(26000)

	createdOrder := domain.Order{
		ID:           5,
		BuyerID:      1,
		OrderDate:    orderDate,
		Subtotal:     validSubtotal,
		JumlahProduk: 2,
		Status:       domain.OrderStatusPending,
	}

	s.mockOrderService.EXPECT().
		Create(gomock.Any(), gomock.Eq(service.CreateOrderArgs{
			BuyerID:   1,
			OrderDate: orderDate,
			Subtotal:  validSubtotal,
		})).
		Return(&createdOrder, nil)

	s.mockOrderService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrInvalidSubtotal)

	s.mockOrderService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrUnknownBuyer)

	cases := []struct {
		name        string
		body        string
		wantStatus  int
		wantMessage string
		withAuth    bool
	}{
		{
			name:       "ok",
			body:       `{"buyer_id":1,"orderdate":"2024-03-10","subtotal":"26000"}`,
			wantStatus: http.StatusOK,
			withAuth:   true,
		},
		{
			name:        "subtotal not a multiple",
			body:        `{"buyer_id":1,"orderdate":"2024-03-10","subtotal":"13001"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Subtotal harus kelipatan 13.000",
			withAuth:    true,
		},
		{
			name:        "unknown buyer",
			body:        `{"buyer_id":42,"orderdate":"2024-03-10","subtotal":"26000"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Buyer tidak ditemukan",
			withAuth:    true,
		},
		{
			name:        "missing fields",
			body:        `{"buyer_id":1}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Buyer, tanggal, dan subtotal harus diisi",
			withAuth:    true,
		},
		{
			name:       "bad status value",
			body:       `{"buyer_id":1,"orderdate":"2024-03-10","subtotal":"26000","status":"shipped"}`,
			wantStatus: http.StatusBadRequest,
			withAuth:   true,
		},
		{
			name:       "no token",
			body:       `{"buyer_id":1,"orderdate":"2024-03-10","subtotal":"26000"}`,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			opts := []func(*testutils.RequestOptions){}
			if t.withAuth {
				opts = append(opts, s.bearer())
			}
			resp := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    "/order",
				Body:   bytes.NewBufferString(t.body),
			}, opts...)
			defer resp.Body.Close()

			s.Require().Equal(t.wantStatus, resp.StatusCode)

			var payload map[string]any
			s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))

			if t.wantMessage != "" {
				s.Equal(t.wantMessage, payload["message"])
			}
			if t.wantStatus == http.StatusOK {
				s.Equal(true, payload["success"])
				s.EqualValues(5, payload["order_id"])
				s.EqualValues(2, payload["jumlah_produk"])
			}
		})
	}
}

func (s *OrdersHandlerTestSuite) TestUpdate() {
	s.mockOrderService.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(int64(3), nil)

	s.mockOrderService.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(int64(0), domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		url        string
		body       string
		wantStatus int
	}{
		{
			name:       "ok re-derives units",
			url:        "/order/1",
			body:       `{"buyer_id":1,"orderdate":"2024-03-10","subtotal":"39000","status":"done"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing order",
			url:        "/order/999",
			body:       `{"buyer_id":1,"orderdate":"2024-03-10","subtotal":"39000","status":"done"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "status required on update",
			url:        "/order/1",
			body:       `{"buyer_id":1,"orderdate":"2024-03-10","subtotal":"39000"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPut,
				URL:    t.url,
				Body:   bytes.NewBufferString(t.body),
			}, s.bearer())
			defer resp.Body.Close()

			s.Require().Equal(t.wantStatus, resp.StatusCode)

			if t.wantStatus == http.StatusOK {
				var payload map[string]any
				s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
				s.EqualValues(3, payload["jumlah_produk"])
			}
		})
	}
}

func (s *OrdersHandlerTestSuite) TestFilterIndex() {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	s.mockOrderService.EXPECT().
		Filter(gomock.Any(), gomock.Eq(repoargs.OrderFilter{
			Range:  repoargs.DateRange{Start: &start, End: &end},
			Status: domain.OrderStatusDone,
		})).
		Return([]domain.Order{}, nil)

	// status=all means no status predicate
	s.mockOrderService.EXPECT().
		Filter(gomock.Any(), gomock.Eq(repoargs.OrderFilter{})).
		Return([]domain.Order{}, nil)

	cases := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{
			name:       "range and status",
			url:        "/order/filter?start_date=2024-03-01&end_date=2024-03-31&status=done",
			wantStatus: http.StatusOK,
		},
		{
			name:       "status all is ignored",
			url:        "/order/filter?status=all",
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid status",
			url:        "/order/filter?status=shipped",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid date",
			url:        "/order/filter?start_date=03-2024-01",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    t.url,
			}, s.bearer())
			defer resp.Body.Close()

			s.Require().Equal(t.wantStatus, resp.StatusCode)
		})
	}
}

func (s *OrdersHandlerTestSuite) TestShow() {
	order := domain.Order{
		ID:           1,
		BuyerID:      2,
		BuyerNama:    "Budi",
		OrderDate:    time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		Subtotal:     decimal.NewFromInt(13000),
		JumlahProduk: 1,
		Status:       domain.OrderStatusPending,
	}

	s.mockOrderService.EXPECT().Get(gomock.Any(), int64(1)).Return(&order, nil)
	s.mockOrderService.EXPECT().Get(gomock.Any(), int64(999)).Return(nil, domain.ErrRecordNotFound)

	resp := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    "/order/1",
	}, s.bearer())
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)

	var payload struct {
		Success bool          `json:"success"`
		Data    OrderResponse `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&payload))
	s.True(payload.Success)
	s.Equal("Budi", payload.Data.Nama)
	s.Equal("2024-03-10", payload.Data.OrderDate)

	notFound := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    "/order/999",
	}, s.bearer())
	defer notFound.Body.Close()
	s.Require().Equal(http.StatusNotFound, notFound.StatusCode)
}
