package game

import (
	"gorm.io/gorm"
)

// MinLevel is the lowest level a character or enemy may hold. Levels below
// this bound are rejected with an out-of-range error before any state changes.
const MinLevel = 1

// AttributeValues maps attribute names to their raw numeric values.
// Lookups for absent names must resolve to 0 (see engine.Evaluate).
type AttributeValues map[string]float64

// StatValues maps stat names to derived numeric values. Instances stored on
// characters and enemies are caches: they always reflect the owning project's
// current stat definitions at the moment any successful mutation returns.
type StatValues map[string]float64

// Modifier is one additive term of a stat formula. It references an attribute
// by name — a lookup key into the entity's value map, never an owned link —
// so a dangling reference degrades to a zero contribution instead of failing.
type Modifier struct {
	Attribute  string  `json:"attribute"`
	Multiplier float64 `json:"multiplier"`
	BaseBonus  float64 `json:"base_bonus"`
}

// StatDefinition describes how one derived stat is computed:
//
//	base_value + Σ(attr*multiplier + base_bonus) + (level-1)*per_level_bonus
//
// The modifier order carries no numeric meaning; it is preserved only so the
// editor shows modifiers in the order the designer entered them. Duplicate
// modifiers for the same attribute are legal and simply sum.
type StatDefinition struct {
	gorm.Model
	ProjectID     uint       `json:"-"`
	Name          string     `json:"name"`
	BaseValue     float64    `json:"base_value"`
	PerLevelBonus float64    `json:"per_level_bonus"`
	Modifiers     []Modifier `json:"modifiers" gorm:"serializer:json"`
}

// Character is a designer-authored playable entity. BaseAttributes holds the
// raw inputs; CalculatedStats is derived cached data and never authoritative.
type Character struct {
	gorm.Model
	ProjectID       uint            `json:"-"`
	PublicID        string          `json:"id" gorm:"uniqueIndex"`
	Name            string          `json:"name"`
	CharacterClass  string          `json:"character_class,omitempty"`
	Level           int             `json:"level"`
	BaseAttributes  AttributeValues `json:"base_attributes" gorm:"serializer:json"`
	CalculatedStats StatValues      `json:"calculated_stats" gorm:"serializer:json"`
}

// Enemy derives its stats exactly like a Character; it only carries an
// additional designer-facing type label. Its raw inputs are named BaseStats
// to match the client contract, but they play the same role as a character's
// BaseAttributes.
type Enemy struct {
	gorm.Model
	ProjectID       uint            `json:"-"`
	PublicID        string          `json:"id" gorm:"uniqueIndex"`
	Name            string          `json:"name"`
	EnemyType       string          `json:"enemy_type"`
	Level           int             `json:"level"`
	BaseStats       AttributeValues `json:"base_stats" gorm:"serializer:json"`
	CalculatedStats StatValues      `json:"calculated_stats" gorm:"serializer:json"`
}

// Project owns its attribute universe, stat definitions, characters and
// enemies. Entities never outlive their project. Revision supports the
// storage layer's optimistic concurrency check and is not exposed to clients.
type Project struct {
	gorm.Model
	PublicID        string           `json:"id" gorm:"uniqueIndex"`
	Name            string           `json:"name" gorm:"size:64"`
	Description     string           `json:"description" gorm:"size:256"`
	Attributes      []string         `json:"attributes" gorm:"serializer:json"`
	StatDefinitions []StatDefinition `json:"stat_definitions" gorm:"constraint:OnDelete:CASCADE"`
	Characters      []Character      `json:"characters" gorm:"constraint:OnDelete:CASCADE"`
	Enemies         []Enemy          `json:"enemies" gorm:"constraint:OnDelete:CASCADE"`
	Revision        uint             `json:"-"`
}

// StatDefinitionByName returns the project's definition for the given stat
// name, or nil when no such stat exists.
func (p *Project) StatDefinitionByName(name string) *StatDefinition {
	for i := range p.StatDefinitions {
		if p.StatDefinitions[i].Name == name {
			return &p.StatDefinitions[i]
		}
	}
	return nil
}

// HasAttribute reports whether name is part of the project's attribute set.
func (p *Project) HasAttribute(name string) bool {
	for _, a := range p.Attributes {
		if a == name {
			return true
		}
	}
	return false
}

// CharacterByPublicID returns the project's character with the given public
// id, or nil when not found.
func (p *Project) CharacterByPublicID(id string) *Character {
	for i := range p.Characters {
		if p.Characters[i].PublicID == id {
			return &p.Characters[i]
		}
	}
	return nil
}

// EnemyByPublicID returns the project's enemy with the given public id, or
// nil when not found.
func (p *Project) EnemyByPublicID(id string) *Enemy {
	for i := range p.Enemies {
		if p.Enemies[i].PublicID == id {
			return &p.Enemies[i]
		}
	}
	return nil
}
