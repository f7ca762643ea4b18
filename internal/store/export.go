package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// ExportRecord is the wire shape of one asset in the JSON feed consumed by
// external inventory scripts. The machine name doubles as the record id.
type ExportRecord struct {
	Type         string `json:"type"`
	Status       string `json:"status"`
	ID           string `json:"id"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	OS           string `json:"os"`
	AssignedUser string `json:"assigned_user"`
	UserID       *int64 `json:"user_id"`
	Location     string `json:"location"`
}

// ExportEnvelope wraps the feed with a success flag so script consumers
// can distinguish an empty inventory from a failed fetch.
type ExportEnvelope struct {
	Success bool           `json:"success"`
	Data    []ExportRecord `json:"data"`
}

// ExportJSON writes the full inventory as the JSON feed, sorted by machine
// name.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer) error {
	assets, err := s.List(ctx, "")
	if err != nil {
		return err
	}

	records := make([]ExportRecord, 0, len(assets))
	for _, a := range assets {
		records = append(records, ExportRecord{
			Type:         string(a.Category),
			Status:       a.Status,
			ID:           a.MachineName,
			Manufacturer: a.Manufacturer,
			Model:        a.ModelNumber,
			OS:           a.OS,
			AssignedUser: a.AssignedUser,
			UserID:       a.UserID,
			Location:     a.Location,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ExportEnvelope{Success: true, Data: records}); err != nil {
		return fmt.Errorf("encoding export feed: %w", err)
	}
	return nil
}
