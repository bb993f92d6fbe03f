package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/avasko/s2orbit/internal/sim"
)

type ExportData struct {
	Star         string      `json:"star"`
	SemiMajorAU  float64     `json:"semi_major_au"`
	Eccentricity float64     `json:"eccentricity"`
	PeriodYears  float64     `json:"period_years"`
	Steps        int         `json:"steps"`
	Times        []float64   `json:"times"`
	Positions    [][]float64 `json:"positions"`
	Radii        []float64   `json:"radii"`
	Speeds       []float64   `json:"speeds"`
}

// ExportJSON writes a run as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, result *sim.Result) error {
	data := ExportData{
		Star:         meta.Star,
		SemiMajorAU:  meta.SemiMajorAU,
		Eccentricity: meta.Eccentricity,
		PeriodYears:  meta.PeriodYears,
		Steps:        result.Steps(),
		Times:        result.Times,
		Positions:    make([][]float64, len(result.Positions)),
		Radii:        result.Radii,
		Speeds:       result.Speeds,
	}
	for i, p := range result.Positions {
		data.Positions[i] = []float64{p.X, p.Y}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV writes a run's samples as CSV, same columns as the on-disk file.
func ExportCSV(w io.Writer, result *sim.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "x", "y", "radius", "speed"}); err != nil {
		return err
	}
	for i := range result.Times {
		row := []string{
			strconv.FormatFloat(result.Times[i], 'g', -1, 64),
			strconv.FormatFloat(result.Positions[i].X, 'g', -1, 64),
			strconv.FormatFloat(result.Positions[i].Y, 'g', -1, 64),
			strconv.FormatFloat(result.Radii[i], 'g', -1, 64),
			strconv.FormatFloat(result.Speeds[i], 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
