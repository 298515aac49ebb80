package persistence

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"fritz-home-client/internal/domain/model"
)

// JSONConfigRepository stores the connection profile in a JSON file. A
// missing file yields an empty profile, not an error, so first runs work
// without setup.
type JSONConfigRepository struct {
	filepath string
	mu       sync.RWMutex
}

func NewJSONConfigRepository(filepath string) *JSONConfigRepository {
	return &JSONConfigRepository{filepath: filepath}
}

func (r *JSONConfigRepository) Get(ctx context.Context) (*model.Config, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.Config{}, nil
		}
		return nil, err
	}

	var cfg model.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *JSONConfigRepository) Save(ctx context.Context, config *model.Config) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.filepath, data, 0644)
}
