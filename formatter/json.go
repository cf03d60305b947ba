package formatter

import (
	"encoding/json"

	"github.com/urban-mobility-tools/bikeflow/dashboard"
)

type responseBuilder struct{}

// NewResponseBuilder creates a builder for snapshot serialization.
func NewResponseBuilder() *responseBuilder { return &responseBuilder{} }

// BuildJSON serializes a snapshot to the frontend JSON document.
func (rb *responseBuilder) BuildJSON(snap dashboard.Snapshot) []byte {
	b, _ := json.Marshal(snap)
	return b
}

// BuildErrorJSON serializes an error payload in the same envelope shape.
func (rb *responseBuilder) BuildErrorJSON(msg string) []byte {
	b, _ := json.Marshal(map[string]string{"error": msg})
	return b
}
