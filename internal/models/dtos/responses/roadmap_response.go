package responses

import (
	"encoding/json"

	"notion-roadmap/roadmap/internal/models/notion"
	"notion-roadmap/roadmap/internal/normalize"
)

// RoadmapResponse is the response for GET /api/roadmap
type RoadmapResponse struct {
	Success       bool          `json:"success"`
	Results       []notion.Page `json:"results"`
	PropertyNames []string      `json:"propertyNames"`
	// SampleItem is the first result's id and properties, null when empty
	SampleItem *SampleItem `json:"sampleItem"`
	HasMore    bool        `json:"hasMore"`
}

type SampleItem struct {
	ID         string          `json:"id"`
	Properties json.RawMessage `json:"properties"`
}

// RoadmapItemsResponse is the response for GET /api/roadmap/items
type RoadmapItemsResponse struct {
	Success bool             `json:"success"`
	Items   []normalize.Item `json:"items"`
}

// RoadmapSchemaResponse is the response for GET /api/roadmap/schema
type RoadmapSchemaResponse struct {
	Success    bool             `json:"success"`
	DatabaseID string           `json:"databaseId"`
	Title      string           `json:"title"`
	Properties []SchemaProperty `json:"properties"`
}

type SchemaProperty struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
