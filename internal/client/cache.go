package client

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/campaigncraft/backend/internal/model"
)

// cacheFileName is the fixed key under which the campaign list is mirrored.
const cacheFileName = "campaigns.json"

// Cache is the durable client-side mirror of the last-known campaign list.
type Cache struct {
	Path string
}

// NewCache places the mirror under the user cache directory.
func NewCache() (*Cache, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}
	dir = filepath.Join(dir, "campaigncraft")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{Path: filepath.Join(dir, cacheFileName)}, nil
}

// Save overwrites the mirror with the given list.
func (c *Cache) Save(campaigns []model.Campaign) error {
	encoded, err := json.Marshal(campaigns)
	if err != nil {
		return err
	}
	return os.WriteFile(c.Path, encoded, 0o644)
}

func (c *Cache) Load() ([]model.Campaign, error) {
	encoded, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, err
	}
	var campaigns []model.Campaign
	if err := json.Unmarshal(encoded, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}
