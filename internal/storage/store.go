package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/diffsim/internal/grid"
)

// Store persists runs under a base directory, one subdirectory per run
// holding metadata.json and field.csv. Only the initial and final
// profiles are kept; the stepper retains no intermediate states.
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
	ID        string             `json:"id"`
	Model     string             `json:"model"`
	Scheme    string             `json:"scheme"`
	Timestamp time.Time          `json:"timestamp"`
	Length    int                `json:"length"`
	Dt        float64            `json:"dt"`
	FinalTime float64            `json:"final_time"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (s *Store) Save(model, scheme string, dt, finalTime float64, initial, final grid.Field, runMetrics map[string]float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", model, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Model:     model,
		Scheme:    scheme,
		Timestamp: time.Now(),
		Length:    len(final),
		Dt:        dt,
		FinalTime: finalTime,
		Metrics:   runMetrics,
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

	csvPath := filepath.Join(runDir, "field.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"index", "initial", "final"}); err != nil {
		return "", err
	}

	for i := range final {
		before := 0.0
		if i < len(initial) {
			before = initial[i]
		}
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(before, 'f', 6, 64),
			strconv.FormatFloat(final[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
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

// LoadField reads back the initial and final profiles of a run.
func (s *Store) LoadField(runID string) (initial, final grid.Field, err error) {
	csvPath := filepath.Join(s.baseDir, runID, "field.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return grid.Field{}, grid.Field{}, nil
	}

	initial = make(grid.Field, 0, len(records)-1)
	final = make(grid.Field, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) < 3 {
			continue
		}
		iv, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		fv, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		initial = append(initial, iv)
		final = append(final, fv)
	}

	return initial, final, nil
}
