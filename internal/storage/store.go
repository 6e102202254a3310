package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/orrery/internal/vmath"
)

var ErrRunNotFound = errors.New("storage: run not found")

const (
	metadataFile  = "metadata.json"
	positionsFile = "positions.csv"
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
	ID        string    `json:"id"`
	Preset    string    `json:"preset"`
	Timestamp time.Time `json:"timestamp"`
	Seed      int64     `json:"seed"`
	Step      float64   `json:"step"`
	Frames    int       `json:"frames"`
	Samples   int       `json:"samples"`
	Bodies    []string  `json:"bodies"`
	Speeds    []float64 `json:"speeds"`
}

// Save writes a recording under a fresh run id and returns the id.
func (s *Store) Save(meta RunMetadata, rec *Recording) (string, error) {
	meta.ID = uuid.NewString()
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}
	meta.Bodies = rec.Bodies
	meta.Samples = len(rec.Frames)

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	if err := writeMetadata(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writePositions(filepath.Join(runDir, positionsFile), rec); err != nil {
		return "", err
	}
	return meta.ID, nil
}

func writeMetadata(path string, meta RunMetadata) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer closeInto(f, &err)

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func writePositions(path string, rec *Recording) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer closeInto(f, &err)

	w := csv.NewWriter(f)
	header := []string{"time"}
	for _, name := range rec.Bodies {
		key := strings.ToLower(name)
		header = append(header, key+"_angle", key+"_x", key+"_z")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, fr := range rec.Frames {
		row := []string{strconv.FormatFloat(fr.Time, 'f', 6, 64)}
		for i := range fr.Angles {
			row = append(row,
				strconv.FormatFloat(fr.Angles[i], 'f', 6, 64),
				strconv.FormatFloat(fr.Positions[i].X, 'f', 6, 64),
				strconv.FormatFloat(fr.Positions[i].Z, 'f', 6, 64),
			)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// closeInto closes c and reports its error unless *err is already set.
func closeInto(c io.Closer, err *error) {
	if cerr := c.Close(); *err == nil {
		*err = cerr
	}
}

// List returns every readable run, newest first.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	if _, err := uuid.Parse(runID); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrRunNotFound, runID)
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse %s: %w", metadataFile, err)
	}
	return &meta, nil
}

// LoadRecording reads positions.csv back into frames.
func (s *Store) LoadRecording(runID string) (*Recording, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filepath.Join(s.baseDir, runID, positionsFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", positionsFile, err)
	}

	rec := &Recording{Bodies: meta.Bodies, Frames: []Frame{}}
	n := len(meta.Bodies)
	for line, record := range records {
		if line == 0 {
			continue
		}
		if len(record) != 1+3*n {
			return nil, fmt.Errorf("%s line %d: %d fields, want %d", positionsFile, line+1, len(record), 1+3*n)
		}
		vals := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", positionsFile, line+1, err)
			}
			vals[j] = v
		}
		f := Frame{Time: vals[0], Angles: make([]float64, n), Positions: make([]vmath.Vec3, n)}
		for i := 0; i < n; i++ {
			f.Angles[i] = vals[1+3*i]
			f.Positions[i] = vmath.Vec3{X: vals[2+3*i], Z: vals[3+3*i]}
		}
		rec.Frames = append(rec.Frames, f)
	}
	return rec, nil
}
