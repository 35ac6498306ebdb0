package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/polyterm/internal/poly"
)

var (
	ErrInvalidName = errors.New("storage: name must match [A-Za-z0-9_-]+")
	ErrNotFound    = errors.New("storage: polynomial not found")
)

var validName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RecordMetadata struct {
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
	Canonical string    `json:"canonical"`
	Terms     int       `json:"terms"`
	Capacity  int       `json:"capacity"`
}

// Save writes terms.csv and then metadata.json under <baseDir>/<name>,
// replacing any previous record. Terms are written in stored order. If either
// file cannot be written the record directory is removed, so List never sees
// a half-written record.
func (s *Store) Save(name string, p *poly.Polynomial) (*RecordMetadata, error) {
	if !validName.MatchString(name) {
		return nil, ErrInvalidName
	}
	dir := filepath.Join(s.baseDir, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	meta := RecordMetadata{
		Name:      name,
		Timestamp: time.Now(),
		Canonical: p.String(),
		Terms:     p.Len(),
		Capacity:  p.Capacity(),
	}

	if err := writeTerms(filepath.Join(dir, "terms.csv"), p); err != nil {
		os.RemoveAll(dir)
		return nil, err
	}
	if err := writeMetadata(filepath.Join(dir, "metadata.json"), meta); err != nil {
		os.RemoveAll(dir)
		return nil, err
	}
	return &meta, nil
}

func writeTerms(path string, p *poly.Polynomial) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"coefficient", "exponent"}); err != nil {
		return err
	}
	for _, t := range p.Terms() {
		row := []string{
			strconv.FormatFloat(t.Coefficient(), 'g', -1, 64),
			strconv.Itoa(t.Exponent()),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return file.Close()
}

func writeMetadata(path string, meta RecordMetadata) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}
	return file.Close()
}

// List returns every readable record, newest first.
func (s *Store) List() ([]RecordMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RecordMetadata{}, nil
		}
		return nil, err
	}

	records := make([]RecordMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		records = append(records, *meta)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Timestamp.After(records[j].Timestamp)
	})
	return records, nil
}

func (s *Store) Load(name string) (*RecordMetadata, error) {
	if !validName.MatchString(name) {
		return nil, ErrInvalidName
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, name, "metadata.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}

	var meta RecordMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadPolynomial rebuilds a saved polynomial, adding its terms in the order
// they were written.
func (s *Store) LoadPolynomial(name string, capacity int) (*poly.Polynomial, error) {
	if !validName.MatchString(name) {
		return nil, ErrInvalidName
	}
	p, err := poly.New(capacity)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, name, "terms.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 2

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	for i := 1; i < len(records); i++ {
		c, err := strconv.ParseFloat(records[i][0], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: %s line %d: %w", name, i+1, err)
		}
		e, err := strconv.Atoi(records[i][1])
		if err != nil {
			return nil, fmt.Errorf("storage: %s line %d: %w", name, i+1, err)
		}
		p.AddTerm(c, e)
	}
	return p, nil
}

func (s *Store) Delete(name string) error {
	if !validName.MatchString(name) {
		return ErrInvalidName
	}
	dir := filepath.Join(s.baseDir, name)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return err
	}
	return os.RemoveAll(dir)
}
