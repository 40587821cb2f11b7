// Package snapshot reads and writes the flat JSON export of a workplan:
// every category, task and timeline week plus provenance fields.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"workplan-dashboard/internal/model"
)

// Document is the portable on-disk form of a workplan.
type Document struct {
	Categories    map[string]model.Category `json:"categories"`
	Tasks         map[string]model.Task     `json:"tasks"`
	TimelineWeeks []model.TimelineWeek      `json:"timeline_weeks"`
	LastUpdated   time.Time                 `json:"last_updated"`
	SourcePath    string                    `json:"source_path"`
}

// Write stores the document as indented JSON.
func Write(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Read loads a document written by Write.
func Read(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read snapshot: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("parse snapshot: %w", err)
	}
	return doc, nil
}
