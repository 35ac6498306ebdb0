package storage

import (
	"encoding/json"
	"os"

	"github.com/san-kum/polyterm/internal/poly"
)

type ExportTerm struct {
	Coefficient float64 `json:"coefficient"`
	Exponent    int     `json:"exponent"`
}

type ExportData struct {
	Canonical string       `json:"canonical"`
	Capacity  int          `json:"capacity"`
	Terms     []ExportTerm `json:"terms"`
}

// ExportJSON writes the stored terms and canonical form of p to path.
// Non-finite coefficients cannot be encoded and make the export fail.
func ExportJSON(path string, p *poly.Polynomial) error {
	terms := p.Terms()
	data := ExportData{
		Canonical: p.String(),
		Capacity:  p.Capacity(),
		Terms:     make([]ExportTerm, len(terms)),
	}
	for i, t := range terms {
		data.Terms[i] = ExportTerm{Coefficient: t.Coefficient(), Exponent: t.Exponent()}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
