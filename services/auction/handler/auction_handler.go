package handler

import (
	"context"
	"net/http"

	"vehicle-auction/internal/models"
	"vehicle-auction/services/auction/helpers"
	"vehicle-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_auction_handler.go -package=handler

type AuctionServiceInterface interface {
	RegisterVehicle(ctx context.Context, vehicle models.Vehicle) (int64, error)
	ListVehicles(ctx context.Context, filter models.VehicleFilter) ([]models.Vehicle, error)
	StartAuction(ctx context.Context, vehicleID int64) (int64, error)
	CloseAuction(ctx context.Context, vehicleID int64) (int64, error)
	PlaceBid(ctx context.Context, vehicleID, customerID int64, value float64) (int64, error)
	GetBidsForVehicle(ctx context.Context, vehicleID int64) ([]models.Bid, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	helpers.RegisterValidators()
	return &AuctionHandler{service: service}
}

// ListVehiclesHandler handles GET /inventory
func (h *AuctionHandler) ListVehiclesHandler(c *gin.Context) {
	var req helpers.ListVehiclesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		helpers.HandleBindError(c, "ListVehiclesHandler", err)
		return
	}

	vehicles, err := h.service.ListVehicles(c.Request.Context(), req.ToFilter())
	if err != nil {
		helpers.RespondError(c, "ListVehiclesHandler", err, nil)
		return
	}

	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}

	utils.JSONResponse(c, http.StatusOK, helpers.VehicleListResponse{Items: vehicles}, "vehicles retrieved successfully")
	helpers.LogSuccess("ListVehiclesHandler", "vehicles retrieved successfully", map[string]any{
		"count": len(vehicles),
	})
}

// AddVehicleHandler handles POST /inventory
func (h *AuctionHandler) AddVehicleHandler(c *gin.Context) {
	var req helpers.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddVehicleHandler", err)
		return
	}

	id, err := h.service.RegisterVehicle(c.Request.Context(), req.ToVehicle())
	if err != nil {
		helpers.RespondError(c, "AddVehicleHandler", err, map[string]any{"vehicle_id": req.ID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.VehicleResponse{VehicleID: id}, "vehicle registered successfully")
	helpers.LogSuccess("AddVehicleHandler", "vehicle registered successfully", map[string]any{
		"vehicle_id": id,
		"type":       req.Type,
	})
}

// GetBidsByVehicleHandler handles GET /inventory/:vehicle_id/bids
func (h *AuctionHandler) GetBidsByVehicleHandler(c *gin.Context) {
	var uri helpers.VehicleURI
	if err := c.ShouldBindUri(&uri); err != nil {
		helpers.HandleBindError(c, "GetBidsByVehicleHandler", err)
		return
	}

	bids, err := h.service.GetBidsForVehicle(c.Request.Context(), uri.VehicleID)
	if err != nil {
		helpers.RespondError(c, "GetBidsByVehicleHandler", err, map[string]any{"vehicle_id": uri.VehicleID})
		return
	}

	resp := make([]helpers.BidResponse, 0, len(bids))
	for _, b := range bids {
		resp = append(resp, helpers.NewBidResponse(b))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByVehicleHandler", "bids retrieved successfully", map[string]any{
		"vehicle_id": uri.VehicleID,
		"count":      len(resp),
	})
}

// StartAuctionHandler handles POST /auctions
func (h *AuctionHandler) StartAuctionHandler(c *gin.Context) {
	var req helpers.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "StartAuctionHandler", err)
		return
	}

	id, err := h.service.StartAuction(c.Request.Context(), req.VehicleID)
	if err != nil {
		helpers.RespondError(c, "StartAuctionHandler", err, map[string]any{"vehicle_id": req.VehicleID})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.AuctionResponse{AuctionID: id, VehicleID: req.VehicleID}, "auction started successfully")
	helpers.LogSuccess("StartAuctionHandler", "auction started successfully", map[string]any{
		"auction_id": id,
		"vehicle_id": req.VehicleID,
	})
}

// CloseAuctionHandler handles PUT /auctions
func (h *AuctionHandler) CloseAuctionHandler(c *gin.Context) {
	var req helpers.AuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CloseAuctionHandler", err)
		return
	}

	id, err := h.service.CloseAuction(c.Request.Context(), req.VehicleID)
	if err != nil {
		helpers.RespondError(c, "CloseAuctionHandler", err, map[string]any{"vehicle_id": req.VehicleID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.AuctionResponse{AuctionID: id, VehicleID: req.VehicleID}, "auction closed successfully")
	helpers.LogSuccess("CloseAuctionHandler", "auction closed successfully", map[string]any{
		"auction_id": id,
		"vehicle_id": req.VehicleID,
	})
}

// PlaceBidHandler handles POST /bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	id, err := h.service.PlaceBid(c.Request.Context(), req.VehicleID, req.CustomerID, req.Value)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"vehicle_id":  req.VehicleID,
			"customer_id": req.CustomerID,
			"value":       req.Value,
		})
		return
	}

	resp := helpers.BidResponse{
		BidID:      id,
		VehicleID:  req.VehicleID,
		CustomerID: req.CustomerID,
		Value:      req.Value,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":      id,
		"vehicle_id":  req.VehicleID,
		"customer_id": req.CustomerID,
		"value":       req.Value,
	})
}
