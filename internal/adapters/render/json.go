package render

import (
	"encoding/json"
	"io"

	"go.trai.ch/nh/internal/core/domain"
	"go.trai.ch/nh/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*JSON)(nil)

// JSON renders results as an indented JSON array for export.
type JSON struct {
	out io.Writer
}

// NewJSON creates a JSON renderer writing to out.
func NewJSON(out io.Writer) *JSON {
	return &JSON{out: out}
}

// RenderUnits writes units as a JSON array.
func (j *JSON) RenderUnits(units []domain.PackageUnit) error {
	if units == nil {
		units = []domain.PackageUnit{}
	}
	return j.encode(units)
}

// RenderRecords writes records as a JSON array.
func (j *JSON) RenderRecords(records []domain.MetadataRecord) error {
	if records == nil {
		records = []domain.MetadataRecord{}
	}
	return j.encode(records)
}

func (j *JSON) encode(v any) error {
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return zerr.Wrap(err, "failed to encode JSON output")
	}
	return nil
}
