package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "vehicle-auction/internal/auctionService"
	model "vehicle-auction/internal/models"
	"vehicle-auction/internal/repository"
	"vehicle-auction/internal/server"

	"github.com/gin-gonic/gin"
)

// SetupTestRouter initializes the router with in-memory repository for integration testing.
func SetupTestRouter() *gin.Engine {
	return SetupTestRouterWithVehicles()
}

// SetupTestRouterWithVehicles initializes the router and seeds the repo with vehicles.
func SetupTestRouterWithVehicles(vehicles ...model.Vehicle) *gin.Engine {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()

	for _, v := range vehicles {
		repo.AddVehicle(v)
	}

	service := auction.NewAuctionService(repo, repo, repo)
	return server.SetupRouter(service, server.Options{})
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// returns the decoded envelope alongside the recorder.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// dataMap returns the envelope's data field as an object
func dataMap(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	d, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response data is not an object: %v", resp)
	}
	return d
}

// dataList returns the envelope's data field as an array
func dataList(t *testing.T, resp map[string]any) []any {
	t.Helper()
	d, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response data is not a list: %v", resp)
	}
	return d
}

func intPtr(v int) *int { return &v }

func sedan(id int64, startingBid float64) model.Vehicle {
	return model.Vehicle{
		ID: id, Type: model.Sedan, Manufacturer: "Audi", Model: "A4",
		Year: 2020, StartingBid: startingBid, DoorNumber: intPtr(4),
	}
}
