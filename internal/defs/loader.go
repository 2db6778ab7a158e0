// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the decoder for game data.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

var (
	ErrNoTowers  = errors.New("configuration has no towers")
	ErrNoEnemies = errors.New("configuration has no enemies")
	ErrNoWaves   = errors.New("configuration has no waves")
)

// FormatForPath picks the decoder from the file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads and validates a game data file.
func LoadFile(path string) (*GameData, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game data file: %w", err)
	}
	return Parse(file, FormatForPath(path))
}

// Parse decodes and validates game data.
func Parse(data []byte, format Format) (*GameData, error) {
	var gd GameData
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &gd); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game data YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &gd); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game data: %w", err)
		}
	}
	if err := Validate(&gd); err != nil {
		return nil, fmt.Errorf("invalid game data: %w", err)
	}
	log.Printf("Loaded %d tower definitions, %d enemy definitions, %d waves", len(gd.Towers), len(gd.Enemies), len(gd.Waves))
	return &gd, nil
}

// Validate rejects configurations the run cannot start with and drops
// individual broken entries with a warning. It mutates gd in place.
func Validate(gd *GameData) error {
	if gd == nil || len(gd.Towers) == 0 {
		return ErrNoTowers
	}
	if len(gd.Enemies) == 0 {
		return ErrNoEnemies
	}
	if len(gd.Waves) == 0 {
		return ErrNoWaves
	}

	towers := gd.Towers[:0]
	seen := make(map[string]bool)
	for _, t := range gd.Towers {
		switch {
		case t.ID == "":
			log.Printf("Validate: skipping tower without id (%q)", t.Name)
			continue
		case seen[t.ID]:
			log.Printf("Validate: skipping duplicate tower id %s", t.ID)
			continue
		case !t.Type.Valid():
			log.Printf("Validate: skipping tower %s with unknown type %q", t.ID, t.Type)
			continue
		}
		seen[t.ID] = true
		upgrades := t.Upgrades[:0]
		for i, u := range t.Upgrades {
			if u.Cost <= 0 {
				log.Printf("Validate: tower %s upgrade %d has no cost, skipping", t.ID, i)
				continue
			}
			upgrades = append(upgrades, u)
		}
		t.Upgrades = upgrades
		towers = append(towers, t)
	}
	gd.Towers = towers
	if len(gd.Towers) == 0 {
		return ErrNoTowers
	}

	enemies := gd.Enemies[:0]
	seen = make(map[string]bool)
	for _, e := range gd.Enemies {
		if e.ID == "" || seen[e.ID] || e.HP <= 0 {
			log.Printf("Validate: skipping enemy %q (missing id, duplicate or hp <= 0)", e.ID)
			continue
		}
		seen[e.ID] = true
		enemies = append(enemies, e)
	}
	gd.Enemies = enemies
	if len(gd.Enemies) == 0 {
		return ErrNoEnemies
	}

	if inf := gd.Settings.Infection; inf != nil && (inf.EverySeconds <= 0 || inf.CureClicksRequired <= 0) {
		log.Printf("Validate: infection_mechanic needs every_s > 0 and cure_clicks_required > 0, disabling")
		gd.Settings.Infection = nil
	}
	return nil
}
