package auctionerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		kind    error
		message string
	}{
		{name: "vehicle_not_found", err: ErrVehicleNotFound, kind: ErrNotFound, message: "vehicle does not exist"},
		{name: "active_auction_not_found", err: ErrActiveAuctionNotFound, kind: ErrNotFound, message: "active auction does not exist"},
		{name: "vehicle_exists", err: ErrVehicleExists, kind: ErrConflict, message: "vehicle already exists"},
		{name: "auction_started", err: ErrAuctionAlreadyStarted, kind: ErrConflict, message: "auction already started"},
		{name: "bid_too_low", err: ErrBidTooLow, kind: ErrValidation, message: "bid rejected: a higher bid already exists"},
		{name: "invalid_vehicle_id", err: ErrInvalidVehicleID, kind: ErrValidation, message: "vehicle id must be positive"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, errors.Is(tc.err, tc.kind))
			require.Equal(t, tc.message, tc.err.Error())

			wrapped := fmt.Errorf("service: %w", tc.err)
			require.True(t, errors.Is(wrapped, tc.kind))
			require.True(t, errors.Is(wrapped, tc.err))
		})
	}
}

func TestErrorKinds_AreDistinct(t *testing.T) {
	require.False(t, errors.Is(ErrVehicleNotFound, ErrConflict))
	require.False(t, errors.Is(ErrVehicleExists, ErrNotFound))
	require.False(t, errors.Is(ErrBidTooLow, ErrNotFound))
	require.False(t, errors.Is(ErrMultipleActiveAuctions, ErrConflict))
}
