package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vehicle-auction/internal/auctionerrors"
	model "vehicle-auction/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type handlerTestCase struct {
	name           string
	method         string
	url            string
	requestBody    any
	mockSetup      func(m *MockAuctionServiceInterface)
	expectedStatus int
	expectedMsg    string
	validateData   func(t *testing.T, data any)
}

// newTestRouter wires every handler route against a fresh mock
func newTestRouter(t *testing.T) (*gin.Engine, *MockAuctionServiceInterface) {
	ctrl := gomock.NewController(t)
	mockService := NewMockAuctionServiceInterface(ctrl)
	handler := NewAuctionHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/inventory", handler.ListVehiclesHandler)
	router.POST("/inventory", handler.AddVehicleHandler)
	router.GET("/inventory/:vehicle_id/bids", handler.GetBidsByVehicleHandler)
	router.POST("/auctions", handler.StartAuctionHandler)
	router.PUT("/auctions", handler.CloseAuctionHandler)
	router.POST("/bids", handler.PlaceBidHandler)
	return router, mockService
}

func runHandlerCases(t *testing.T, tests []handlerTestCase) {
	t.Helper()

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router, mockService := newTestRouter(t)
			if tc.mockSetup != nil {
				tc.mockSetup(mockService)
			}

			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case nil:
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(tc.method, tc.url, bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code, w.Body.String())

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil {
				tc.validateData(t, resp["data"])
			}
		})
	}
}

func validSedan() map[string]any {
	return map[string]any{
		"id":           1,
		"type":         "Sedan",
		"manufacturer": "Audi",
		"model":        "A4",
		"year":         2020,
		"starting_bid": 15000,
		"door_number":  4,
	}
}

func withFields(base map[string]any, kv ...any) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		key := kv[i].(string)
		if kv[i+1] == nil {
			delete(out, key)
			continue
		}
		out[key] = kv[i+1]
	}
	return out
}

// Test AddVehicleHandler
func TestAddVehicleHandler(t *testing.T) {
	doors := 4
	expectedVehicle := model.Vehicle{
		ID:           1,
		Type:         model.Sedan,
		Manufacturer: "Audi",
		Model:        "A4",
		Year:         2020,
		StartingBid:  15000,
		DoorNumber:   &doors,
	}

	runHandlerCases(t, []handlerTestCase{
		{
			name:        "success_sedan",
			method:      http.MethodPost,
			url:         "/inventory",
			requestBody: validSedan(),
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().RegisterVehicle(gomock.Any(), expectedVehicle).Return(int64(1), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "vehicle registered successfully",
			validateData: func(t *testing.T, data any) {
				require.Equal(t, 1.0, data.(map[string]any)["vehicle_id"])
			},
		},
		{
			name:   "success_truck",
			method: http.MethodPost,
			url:    "/inventory",
			requestBody: map[string]any{
				"id": 2, "type": "Truck", "manufacturer": "Volvo", "model": "FH16",
				"year": 2018, "starting_bid": 50000, "load_capacity": 24000.5,
			},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().RegisterVehicle(gomock.Any(), gomock.Any()).Return(int64(2), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "vehicle registered successfully",
		},
		{
			name:   "success_suv",
			method: http.MethodPost,
			url:    "/inventory",
			requestBody: map[string]any{
				"id": 3, "type": "SUV", "manufacturer": "Kia", "model": "Sorento",
				"year": 2022, "starting_bid": 30000, "seat_number": 7,
			},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().RegisterVehicle(gomock.Any(), gomock.Any()).Return(int64(3), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "vehicle registered successfully",
		},
		{
			name:           "invalid_json",
			method:         http.MethodPost,
			url:            "/inventory",
			requestBody:    `{invalid json}`,
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_id",
			method:         http.MethodPost,
			url:            "/inventory",
			requestBody:    withFields(validSedan(), "id", nil),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "unknown_type",
			method:         http.MethodPost,
			url:            "/inventory",
			requestBody:    withFields(validSedan(), "type", "Coupe"),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "year_too_old",
			method:         http.MethodPost,
			url:            "/inventory",
			requestBody:    withFields(validSedan(), "year", 1850),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "year_in_future",
			method:         http.MethodPost,
			url:            "/inventory",
			requestBody:    withFields(validSedan(), "year", time.Now().Year()+1),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "starting_bid_too_high",
			method:         http.MethodPost,
			url:            "/inventory",
			requestBody:    withFields(validSedan(), "starting_bid", 1000000000),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "sedan_without_doors",
			method:         http.MethodPost,
			url:            "/inventory",
			requestBody:    withFields(validSedan(), "door_number", nil),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "sedan_with_seats",
			method:         http.MethodPost,
			url:            "/inventory",
			requestBody:    withFields(validSedan(), "seat_number", 5),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "too_many_doors",
			method:         http.MethodPost,
			url:            "/inventory",
			requestBody:    withFields(validSedan(), "door_number", 10),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "truck_without_capacity",
			method:         http.MethodPost,
			url:            "/inventory",
			requestBody:    withFields(validSedan(), "type", "Truck", "door_number", nil),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "already_registered",
			method:      http.MethodPost,
			url:         "/inventory",
			requestBody: validSedan(),
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().RegisterVehicle(gomock.Any(), gomock.Any()).Return(int64(0), auctionerrors.ErrVehicleExists)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "vehicle already exists",
		},
		{
			name:        "service_generic_error",
			method:      http.MethodPost,
			url:         "/inventory",
			requestBody: validSedan(),
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().RegisterVehicle(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	})
}

// Test ListVehiclesHandler
func TestListVehiclesHandler(t *testing.T) {
	vehicles := []model.Vehicle{
		{ID: 1, Type: model.Sedan, Manufacturer: "Audi", Model: "A4", Year: 2020, StartingBid: 15000},
	}

	runHandlerCases(t, []handlerTestCase{
		{
			name:   "no_filter",
			method: http.MethodGet,
			url:    "/inventory",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().ListVehicles(gomock.Any(), model.VehicleFilter{}).Return(vehicles, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "vehicles retrieved successfully",
			validateData: func(t *testing.T, data any) {
				items := data.(map[string]any)["items"].([]any)
				require.Len(t, items, 1)
				require.Equal(t, "Audi", items[0].(map[string]any)["manufacturer"])
			},
		},
		{
			name:   "with_filters",
			method: http.MethodGet,
			url:    "/inventory?type=Sedan&manufacturer=Audi&model=A4&year=2020",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().ListVehicles(gomock.Any(), model.VehicleFilter{
					Type: model.Sedan, Manufacturer: "Audi", Model: "A4", Year: 2020,
				}).Return(vehicles, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "vehicles retrieved successfully",
		},
		{
			name:   "empty_result",
			method: http.MethodGet,
			url:    "/inventory?type=Truck",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().ListVehicles(gomock.Any(), model.VehicleFilter{Type: model.Truck}).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "vehicles retrieved successfully",
			validateData: func(t *testing.T, data any) {
				require.Empty(t, data.(map[string]any)["items"])
			},
		},
		{
			name:           "invalid_type",
			method:         http.MethodGet,
			url:            "/inventory?type=Boat",
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "future_year",
			method:         http.MethodGet,
			url:            fmt.Sprintf("/inventory?year=%d", time.Now().Year()+1),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:   "service_error",
			method: http.MethodGet,
			url:    "/inventory",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().ListVehicles(gomock.Any(), gomock.Any()).Return(nil, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	})
}

// Test StartAuctionHandler and CloseAuctionHandler
func TestAuctionHandlers(t *testing.T) {
	runHandlerCases(t, []handlerTestCase{
		{
			name:        "start_success",
			method:      http.MethodPost,
			url:         "/auctions",
			requestBody: map[string]any{"vehicle_id": 1},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().StartAuction(gomock.Any(), int64(1)).Return(int64(7), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "auction started successfully",
			validateData: func(t *testing.T, data any) {
				require.Equal(t, 7.0, data.(map[string]any)["auction_id"])
				require.Equal(t, 1.0, data.(map[string]any)["vehicle_id"])
			},
		},
		{
			name:        "start_vehicle_missing",
			method:      http.MethodPost,
			url:         "/auctions",
			requestBody: map[string]any{"vehicle_id": 1},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().StartAuction(gomock.Any(), int64(1)).Return(int64(0), auctionerrors.ErrVehicleNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "vehicle does not exist",
		},
		{
			name:        "start_already_started",
			method:      http.MethodPost,
			url:         "/auctions",
			requestBody: map[string]any{"vehicle_id": 1},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().StartAuction(gomock.Any(), int64(1)).
					Return(int64(0), fmt.Errorf("service: %w", auctionerrors.ErrAuctionAlreadyStarted))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "auction already started",
		},
		{
			name:           "start_invalid_vehicle_id",
			method:         http.MethodPost,
			url:            "/auctions",
			requestBody:    map[string]any{"vehicle_id": 0},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "close_success",
			method:      http.MethodPut,
			url:         "/auctions",
			requestBody: map[string]any{"vehicle_id": 1},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().CloseAuction(gomock.Any(), int64(1)).Return(int64(7), nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "auction closed successfully",
			validateData: func(t *testing.T, data any) {
				require.Equal(t, 7.0, data.(map[string]any)["auction_id"])
			},
		},
		{
			name:        "close_no_active_auction",
			method:      http.MethodPut,
			url:         "/auctions",
			requestBody: map[string]any{"vehicle_id": 1},
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().CloseAuction(gomock.Any(), int64(1)).Return(int64(0), auctionerrors.ErrActiveAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "active auction does not exist",
		},
		{
			name:           "close_negative_vehicle_id",
			method:         http.MethodPut,
			url:            "/auctions",
			requestBody:    map[string]any{"vehicle_id": -3},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	})
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	validBid := map[string]any{"vehicle_id": 1, "customer_id": 9, "value": 15000}

	runHandlerCases(t, []handlerTestCase{
		{
			name:        "success",
			method:      http.MethodPost,
			url:         "/bids",
			requestBody: validBid,
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().PlaceBid(gomock.Any(), int64(1), int64(9), 15000.0).Return(int64(3), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "bid recorded successfully",
			validateData: func(t *testing.T, data any) {
				d := data.(map[string]any)
				require.Equal(t, 3.0, d["bid_id"])
				require.Equal(t, 1.0, d["vehicle_id"])
				require.Equal(t, 9.0, d["customer_id"])
				require.Equal(t, 15000.0, d["value"])
			},
		},
		{
			name:           "zero_value",
			method:         http.MethodPost,
			url:            "/bids",
			requestBody:    withFields(validBid, "value", 0),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_customer",
			method:         http.MethodPost,
			url:            "/bids",
			requestBody:    withFields(validBid, "customer_id", nil),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "below_floor",
			method:      http.MethodPost,
			url:         "/bids",
			requestBody: validBid,
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().PlaceBid(gomock.Any(), int64(1), int64(9), 15000.0).Return(int64(0), auctionerrors.ErrBidTooLow)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "bid rejected: a higher bid already exists",
		},
		{
			name:        "no_active_auction",
			method:      http.MethodPost,
			url:         "/bids",
			requestBody: validBid,
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().PlaceBid(gomock.Any(), int64(1), int64(9), 15000.0).Return(int64(0), auctionerrors.ErrActiveAuctionNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "active auction does not exist",
		},
		{
			name:        "service_generic_error",
			method:      http.MethodPost,
			url:         "/bids",
			requestBody: validBid,
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().PlaceBid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	})
}

// Test GetBidsByVehicleHandler
func TestGetBidsByVehicleHandler(t *testing.T) {
	now := time.Now().UTC()

	runHandlerCases(t, []handlerTestCase{
		{
			name:   "with_bids",
			method: http.MethodGet,
			url:    "/inventory/1/bids",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().GetBidsForVehicle(gomock.Any(), int64(1)).Return([]model.Bid{
					{ID: 1, VehicleID: 1, CustomerID: 9, Value: 15000, CreatedAt: now},
					{ID: 2, VehicleID: 1, CustomerID: 10, Value: 15000, CreatedAt: now},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids retrieved successfully",
			validateData: func(t *testing.T, data any) {
				bids := data.([]any)
				require.Len(t, bids, 2)
				first := bids[0].(map[string]any)
				require.Equal(t, 9.0, first["customer_id"])
				_, err := time.Parse(time.RFC3339, first["created_at"].(string))
				require.NoError(t, err)
			},
		},
		{
			name:   "no_bids",
			method: http.MethodGet,
			url:    "/inventory/2/bids",
			mockSetup: func(m *MockAuctionServiceInterface) {
				m.EXPECT().GetBidsForVehicle(gomock.Any(), int64(2)).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bids retrieved successfully",
			validateData: func(t *testing.T, data any) {
				require.Empty(t, data)
			},
		},
		{
			name:           "non_numeric_id",
			method:         http.MethodGet,
			url:            "/inventory/abc/bids",
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	})
}
