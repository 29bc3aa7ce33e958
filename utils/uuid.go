package utils

import (
	"github.com/google/uuid"
)

// GenerateRequestID returns a new unique identifier for tracing a request
func GenerateRequestID() string {
	return uuid.New().String()
}
