package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/avasko/s2orbit/internal/orbit"
	"github.com/avasko/s2orbit/internal/sim"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID           string    `json:"id"`
	Star         string    `json:"star"`
	Timestamp    time.Time `json:"timestamp"`
	SemiMajorAU  float64   `json:"semi_major_au"`
	Eccentricity float64   `json:"eccentricity"`
	PeriodYears  float64   `json:"period_years"`
	MassSolar    float64   `json:"mass_solar"`
	Step         float64   `json:"step"`
	Duration     float64   `json:"duration"`
	Steps        int       `json:"steps"`
}

func (s *Store) Save(star string, el orbit.Elements, body orbit.CentralBody, step, duration float64, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", star, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Star:         star,
		Timestamp:    time.Now(),
		SemiMajorAU:  el.SemiMajor / body.Constants().AU,
		Eccentricity: el.Eccentricity,
		PeriodYears:  el.Period / (365.25 * 86400),
		MassSolar:    body.Mass / orbit.SolarMass,
		Step:         step,
		Duration:     duration,
		Steps:        result.Steps(),
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "samples.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := ExportCSV(csvFile, result); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSamples(runID string) (*sim.Result, error) {
	csvPath := filepath.Join(s.baseDir, runID, "samples.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	res := &sim.Result{}
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 5 {
			continue
		}
		vals := make([]float64, 5)
		ok := true
		for j := 0; j < 5; j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				ok = false
				break
			}
			vals[j] = v
		}
		if !ok {
			continue
		}
		res.Times = append(res.Times, vals[0])
		res.Positions = append(res.Positions, orbit.Point{X: vals[1], Y: vals[2]})
		res.Radii = append(res.Radii, vals[3])
		res.Speeds = append(res.Speeds, vals[4])
	}

	return res, nil
}
