package catalog

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/hfriedrich/roomplan/internal/entity"
)

// PresetDef defines a furniture preset loaded from JSON. Dimensions are in
// centimeters.
type PresetDef struct {
	ID        string  `json:"id"`        // Unique identifier (e.g., "bed_double")
	Name      string  `json:"name"`      // Display name (e.g., "Double Bed")
	Width     float64 `json:"width"`     // X extent at rotation 0
	Length    float64 `json:"length"`    // Y extent at rotation 0
	Height    float64 `json:"height"`    // Z extent
	Color     string  `json:"color"`     // Hex color code (e.g., "#8B4513")
	Collision bool    `json:"collision"` // Whether the preset participates in collision
}

// NewObject creates a placeable object from this preset. The id and creation
// order are assigned by the plan at insertion.
func (p *PresetDef) NewObject() *entity.Object {
	o := entity.NewObject(p.Name, entity.Dimensions{
		Width:  p.Width,
		Length: p.Length,
		Height: p.Height,
	})
	o.Color = p.Color
	o.CollisionEnabled = p.Collision
	return o
}

// TCellColor returns the preset color as a tcell.Color.
func (p *PresetDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(p.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []PresetDef `json:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]PresetDef, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}

// Registry holds loaded preset definitions and provides lookup utilities.
type Registry struct {
	presets map[string]*PresetDef
	all     []PresetDef
}

// NewRegistry creates a registry from loaded preset definitions.
func NewRegistry(presets []PresetDef) *Registry {
	registry := &Registry{
		presets: make(map[string]*PresetDef),
		all:     presets,
	}
	for i := range presets {
		registry.presets[presets[i].ID] = &presets[i]
	}
	return registry
}

// LoadRegistry loads and creates a registry from the embedded presets.json.
func LoadRegistry() (*Registry, error) {
	presets, err := LoadPresets()
	if err != nil {
		return nil, err
	}
	if len(presets) == 0 {
		return nil, errors.New("no presets loaded from presets.json")
	}
	return NewRegistry(presets), nil
}

// MustLoadRegistry loads a registry, panicking on error.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the preset definition with the given ID, or nil if not found.
func (r *Registry) GetByID(id string) *PresetDef {
	return r.presets[id]
}

// All returns all preset definitions.
func (r *Registry) All() []PresetDef {
	return r.all
}

// Count returns the number of presets in the registry.
func (r *Registry) Count() int {
	return len(r.all)
}
