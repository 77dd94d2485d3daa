package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// SaveData is the small persistent record kept between runs. The sim core
// never touches it; only the front end reads and writes saves.
type SaveData struct {
	BestRescued  int  `yaml:"bestRescued"`
	SoundEnabled bool `yaml:"soundEnabled"`
}

const (
	saveObject   = "progress"
	saveProperty = "global"
)

// SaveManager persists SaveData through gdata's cross-platform storage.
// A nil gdata manager degrades to memory-only operation, never an error.
type SaveManager struct {
	manager *gdata.Manager
	data    SaveData
}

// NewSaveManager opens the app's data store and loads any existing record.
// Open failure is non-fatal: the game runs with in-memory defaults.
func NewSaveManager() *SaveManager {
	sm := &SaveManager{
		data: SaveData{SoundEnabled: true},
	}
	m, err := gdata.Open(gdata.Config{AppName: "skyflock"})
	if err != nil {
		return sm
	}
	sm.manager = m
	sm.load()
	return sm
}

func (sm *SaveManager) load() {
	if sm.manager == nil || !sm.manager.ObjectPropExists(saveObject, saveProperty) {
		return
	}
	raw, err := sm.manager.LoadObjectProp(saveObject, saveProperty)
	if err != nil {
		return
	}
	var loaded SaveData
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return
	}
	sm.data = loaded
}

// Flush writes the current record to disk.
func (sm *SaveManager) Flush() error {
	if sm.manager == nil {
		return nil
	}
	raw, err := yaml.Marshal(sm.data)
	if err != nil {
		return fmt.Errorf("marshal save data: %w", err)
	}
	if err := sm.manager.SaveObjectProp(saveObject, saveProperty, raw); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// RecordRun updates the best-rescue count if the finished run beat it.
// Returns true when a new record was set.
func (sm *SaveManager) RecordRun(rescued int) bool {
	if rescued <= sm.data.BestRescued {
		return false
	}
	sm.data.BestRescued = rescued
	return true
}

// BestRescued returns the stored record.
func (sm *SaveManager) BestRescued() int {
	return sm.data.BestRescued
}

// SoundEnabled returns the persisted sound toggle.
func (sm *SaveManager) SoundEnabled() bool {
	return sm.data.SoundEnabled
}

// SetSoundEnabled updates the toggle in memory; call Flush to persist.
func (sm *SaveManager) SetSoundEnabled(on bool) {
	sm.data.SoundEnabled = on
}
