package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bloomlavka/bloom_api/internal/models"
)

// FlowerRepository persists the catalog as a single JSON array file. The whole
// collection is loaded and stored at once; there is no indexing or querying.
type FlowerRepository struct {
	path string
	mu   sync.Mutex
}

// NewFlowerRepository constructs a FlowerRepository backed by the given file.
func NewFlowerRepository(path string) *FlowerRepository {
	return &FlowerRepository{path: path}
}

// ReadAll loads the full catalog. A missing or malformed file is an error.
func (r *FlowerRepository) ReadAll() ([]models.Flower, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readLocked()
}

// WriteAll replaces the stored catalog. The list is written to a temporary
// file in the same directory and renamed over the original, so a crash cannot
// leave a truncated catalog behind.
func (r *FlowerRepository) WriteAll(flowers []models.Flower) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writeLocked(flowers)
}

// Append assigns the next id to the flower and adds it to the catalog in one
// read-modify-write under the repository lock.
func (r *FlowerRepository) Append(flower models.Flower) (models.Flower, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	flowers, err := r.readLocked()
	if err != nil {
		return models.Flower{}, err
	}
	flower.ID = NextID(flowers)
	flowers = append(flowers, flower)
	if err := r.writeLocked(flowers); err != nil {
		return models.Flower{}, err
	}
	return flower, nil
}

// Init creates an empty catalog file if none exists yet. An existing file is
// left untouched.
func (r *FlowerRepository) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Stat(r.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat catalog file: %w", err)
	}
	return r.writeLocked([]models.Flower{})
}

// NextID returns the id for a new record: max(existing)+1, or 1 for an empty
// catalog. Ids are never reused after deletion.
func NextID(flowers []models.Flower) int {
	next := 1
	for _, f := range flowers {
		if f.ID >= next {
			next = f.ID + 1
		}
	}
	return next
}

func (r *FlowerRepository) readLocked() ([]models.Flower, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var flowers []models.Flower
	if err := json.Unmarshal(data, &flowers); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", r.path, err)
	}
	return flowers, nil
}

func (r *FlowerRepository) writeLocked(flowers []models.Flower) error {
	data, err := json.MarshalIndent(flowers, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	data = append(data, '\n')

	// Temp file must live on the same filesystem for the rename to be atomic.
	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".flowers-*.json")
	if err != nil {
		return fmt.Errorf("create temp catalog file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp catalog file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp catalog file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace catalog file: %w", err)
	}
	return nil
}
