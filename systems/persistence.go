package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const (
	itemSettings = "settings"
	itemBestRun  = "best_run"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Minimap bool `json:"minimap"`
}

// BestRun is the highest essence count and score reached.
type BestRun struct {
	Essences int `json:"essences"`
	Score    int `json:"score"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "lumina",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func loadItem(key string, v any) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}

	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was
// saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	var s SavedSettings
	found, err := loadItem(itemSettings, &s)
	if !found {
		return nil, err
	}
	return &s, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem(itemSettings, s)
}

// LoadBestRun returns the saved best run, or a zero value.
func LoadBestRun() BestRun {
	var best BestRun
	if _, err := loadItem(itemBestRun, &best); err != nil {
		return BestRun{}
	}
	return best
}

// SaveBestRun stores a new best run.
func SaveBestRun(best BestRun) {
	_ = saveItem(itemBestRun, best)
}
