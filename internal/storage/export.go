package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/diffsim/internal/grid"
)

type ExportData struct {
	ID        string             `json:"id"`
	Model     string             `json:"model"`
	Scheme    string             `json:"scheme"`
	Length    int                `json:"length"`
	Dt        float64            `json:"dt"`
	FinalTime float64            `json:"final_time"`
	Initial   []float64          `json:"initial"`
	Final     []float64          `json:"final"`
	Metrics   map[string]float64 `json:"metrics"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, initial, final grid.Field) error {
	data := ExportData{
		ID:        meta.ID,
		Model:     meta.Model,
		Scheme:    meta.Scheme,
		Length:    meta.Length,
		Dt:        meta.Dt,
		FinalTime: meta.FinalTime,
		Initial:   initial,
		Final:     final,
		Metrics:   meta.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSONStdout(meta *RunMetadata, initial, final grid.Field) error {
	return ExportJSON(os.Stdout, meta, initial, final)
}
