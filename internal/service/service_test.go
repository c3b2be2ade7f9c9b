package service

import (
	"errors"
	"testing"

	"github.com/ericogr/game-balance/internal/engine"
	"github.com/ericogr/game-balance/internal/game"
	"github.com/ericogr/game-balance/internal/storage"

	"gorm.io/gorm"
)

type mockRepo struct {
	projects          map[string]*game.Project
	created           *game.Project
	updated           *game.Project
	deletedCharacters []uint
	deletedEnemies    []uint
}

func (m *mockRepo) CreateProject(p *game.Project) error {
	m.created = p
	if m.projects == nil {
		m.projects = map[string]*game.Project{}
	}
	m.projects[p.PublicID] = p
	return nil
}

func (m *mockRepo) GetProjectByPublicID(publicID string) (*game.Project, error) {
	if p, ok := m.projects[publicID]; ok {
		return p, nil
	}
	return nil, storage.ErrNotFound
}

func (m *mockRepo) UpdateProject(p *game.Project) error {
	m.updated = p
	return nil
}

func (m *mockRepo) DeleteCharacter(id uint) error {
	m.deletedCharacters = append(m.deletedCharacters, id)
	return nil
}

func (m *mockRepo) DeleteEnemy(id uint) error {
	m.deletedEnemies = append(m.deletedEnemies, id)
	return nil
}

func testProject() *game.Project {
	p := &game.Project{
		PublicID:   "prj-1",
		Name:       "Arena",
		Attributes: []string{"strength", "constitution", "intelligence"},
		StatDefinitions: []game.StatDefinition{
			{Name: "health", BaseValue: 100, PerLevelBonus: 10, Modifiers: []game.Modifier{{Attribute: "constitution", Multiplier: 5}}},
			{Name: "power", BaseValue: 20, PerLevelBonus: 2, Modifiers: []game.Modifier{{Attribute: "strength", Multiplier: 2}}},
		},
		Characters: []game.Character{
			{Model: withID(11), PublicID: "ch-1", Name: "Knight", Level: 3, BaseAttributes: game.AttributeValues{"strength": 12, "constitution": 14}},
		},
		Enemies: []game.Enemy{
			{Model: withID(21), PublicID: "en-1", Name: "Goblin", EnemyType: "minion", Level: 2, BaseStats: game.AttributeValues{"strength": 6}},
		},
	}
	engine.RecalculateProject(p)
	return p
}

func withID(id uint) gorm.Model {
	return gorm.Model{ID: id}
}

func repoWith(p *game.Project) *mockRepo {
	return &mockRepo{projects: map[string]*game.Project{p.PublicID: p}}
}

func TestCreateProject_SeedsDefaults(t *testing.T) {
	mr := &mockRepo{}
	defaults := []game.StatDefinition{
		{Name: "health", BaseValue: 100, PerLevelBonus: 10, Modifiers: []game.Modifier{{Attribute: "constitution", Multiplier: 5}}},
	}

	p, err := CreateProject(mr, "New Game", "balancing sandbox", []string{"Strength", "Constitution"}, defaults)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PublicID == "" {
		t.Fatalf("expected a public id to be assigned")
	}
	if len(p.Attributes) != 2 || p.Attributes[0] != "strength" {
		t.Fatalf("expected canonicalized attributes, got %v", p.Attributes)
	}
	if len(p.StatDefinitions) != 1 || p.StatDefinitions[0].Name != "health" {
		t.Fatalf("expected seeded stat definitions, got %v", p.StatDefinitions)
	}
	if mr.created == nil {
		t.Fatalf("expected project to be persisted")
	}
}

func TestCreateProject_NameRequired(t *testing.T) {
	if _, err := CreateProject(&mockRepo{}, "", "", nil, nil); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestCreateCharacter_StatsComputedOnCreation(t *testing.T) {
	p := testProject()
	mr := repoWith(p)

	ch, err := CreateCharacter(mr, "prj-1", CreateCharacterRequest{
		Name:           "Mage",
		Level:          5,
		BaseAttributes: game.AttributeValues{"constitution": 10, "strength": 4},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mr.updated == nil {
		t.Fatalf("expected project to be saved")
	}
	for _, def := range p.StatDefinitions {
		want := engine.Evaluate(def, ch.BaseAttributes, ch.Level)
		if got := ch.CalculatedStats[def.Name]; got != want {
			t.Fatalf("stat %s: expected %v, got %v", def.Name, want, got)
		}
	}
}

func TestCreateCharacter_ZeroLevelDefaultsToMinimum(t *testing.T) {
	mr := repoWith(testProject())
	ch, err := CreateCharacter(mr, "prj-1", CreateCharacterRequest{Name: "Squire"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.Level != game.MinLevel {
		t.Fatalf("expected level %d, got %d", game.MinLevel, ch.Level)
	}
}

func TestCreateCharacter_NegativeLevel(t *testing.T) {
	mr := repoWith(testProject())
	if _, err := CreateCharacter(mr, "prj-1", CreateCharacterRequest{Name: "Ghost", Level: -2}); !errors.Is(err, ErrLevelOutOfRange) {
		t.Fatalf("expected ErrLevelOutOfRange, got %v", err)
	}
	if mr.updated != nil {
		t.Fatalf("expected no save on rejected create")
	}
}

func TestSetCharacterLevel_Recalculates(t *testing.T) {
	p := testProject()
	mr := repoWith(p)

	ch, err := SetCharacterLevel(mr, "prj-1", "ch-1", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.Level != 10 {
		t.Fatalf("expected level 10, got %d", ch.Level)
	}
	// health = 100 + 14*5 + (10-1)*10 = 260
	if got := ch.CalculatedStats["health"]; got != 260 {
		t.Fatalf("expected health 260, got %v", got)
	}
	if mr.updated == nil {
		t.Fatalf("expected project to be saved")
	}
}

func TestSetCharacterLevel_OutOfRange(t *testing.T) {
	p := testProject()
	mr := repoWith(p)
	levelBefore := p.Characters[0].Level
	healthBefore := p.Characters[0].CalculatedStats["health"]

	for _, level := range []int{0, -5} {
		if _, err := SetCharacterLevel(mr, "prj-1", "ch-1", level); !errors.Is(err, ErrLevelOutOfRange) {
			t.Fatalf("level %d: expected ErrLevelOutOfRange, got %v", level, err)
		}
	}
	if mr.updated != nil {
		t.Fatalf("expected no save on rejected level change")
	}
	if p.Characters[0].Level != levelBefore || p.Characters[0].CalculatedStats["health"] != healthBefore {
		t.Fatalf("stored level or cache changed after failed call")
	}
}

func TestSetCharacterLevel_NotFound(t *testing.T) {
	mr := repoWith(testProject())
	if _, err := SetCharacterLevel(mr, "prj-1", "nope", 2); !errors.Is(err, ErrCharacterNotFound) {
		t.Fatalf("expected ErrCharacterNotFound, got %v", err)
	}
	if _, err := SetCharacterLevel(mr, "missing", "ch-1", 2); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestSetCharacterAttribute_RecalculatesThatEntityOnly(t *testing.T) {
	p := testProject()
	mr := repoWith(p)
	enemyPowerBefore := p.Enemies[0].CalculatedStats["power"]

	ch, err := SetCharacterAttribute(mr, "prj-1", "ch-1", "Strength", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.BaseAttributes["strength"] != 20 {
		t.Fatalf("expected canonicalized attribute write, got %v", ch.BaseAttributes)
	}
	// power = 20 + 20*2 + (3-1)*2 = 64
	if got := ch.CalculatedStats["power"]; got != 64 {
		t.Fatalf("expected power 64, got %v", got)
	}
	if p.Enemies[0].CalculatedStats["power"] != enemyPowerBefore {
		t.Fatalf("enemy cache changed by character attribute write")
	}
}

func TestSetCharacterAttribute_OutsideSetTolerated(t *testing.T) {
	mr := repoWith(testProject())
	ch, err := SetCharacterAttribute(mr, "prj-1", "ch-1", "luck", 7)
	if err != nil {
		t.Fatalf("expected tolerated write, got %v", err)
	}
	if ch.BaseAttributes["luck"] != 7 {
		t.Fatalf("expected value stored, got %v", ch.BaseAttributes)
	}
}

func TestSetEnemyLevel_Recalculates(t *testing.T) {
	p := testProject()
	mr := repoWith(p)

	e, err := SetEnemyLevel(mr, "prj-1", "en-1", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// power = 20 + 6*2 + (4-1)*2 = 38
	if got := e.CalculatedStats["power"]; got != 38 {
		t.Fatalf("expected power 38, got %v", got)
	}
}

func TestSetEnemyLevel_OutOfRange(t *testing.T) {
	mr := repoWith(testProject())
	if _, err := SetEnemyLevel(mr, "prj-1", "en-1", 0); !errors.Is(err, ErrLevelOutOfRange) {
		t.Fatalf("expected ErrLevelOutOfRange, got %v", err)
	}
}

func TestUpdateStatDefinition_RecomputesAcrossEntities(t *testing.T) {
	p := testProject()
	mr := repoWith(p)
	healthBefore := map[string]float64{
		"ch-1": p.Characters[0].CalculatedStats["health"],
		"en-1": p.Enemies[0].CalculatedStats["health"],
	}

	updated, err := UpdateStatDefinition(mr, "prj-1", "power", StatDefinitionRequest{
		BaseValue:     50,
		PerLevelBonus: 1,
		Modifiers:     []game.Modifier{{Attribute: "strength", Multiplier: 3}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	def := updated.StatDefinitionByName("power")
	for i := range updated.Characters {
		c := &updated.Characters[i]
		if want := engine.Evaluate(*def, c.BaseAttributes, c.Level); c.CalculatedStats["power"] != want {
			t.Fatalf("character %s: expected power %v, got %v", c.PublicID, want, c.CalculatedStats["power"])
		}
	}
	for i := range updated.Enemies {
		e := &updated.Enemies[i]
		if want := engine.Evaluate(*def, e.BaseStats, e.Level); e.CalculatedStats["power"] != want {
			t.Fatalf("enemy %s: expected power %v, got %v", e.PublicID, want, e.CalculatedStats["power"])
		}
	}
	if updated.Characters[0].CalculatedStats["health"] != healthBefore["ch-1"] ||
		updated.Enemies[0].CalculatedStats["health"] != healthBefore["en-1"] {
		t.Fatalf("other stats changed during targeted recalculation")
	}
	if mr.updated == nil {
		t.Fatalf("expected project to be saved")
	}
}

func TestUpdateStatDefinition_NotFound(t *testing.T) {
	p := testProject()
	mr := repoWith(p)
	powerBefore := p.Characters[0].CalculatedStats["power"]

	if _, err := UpdateStatDefinition(mr, "prj-1", "luck", StatDefinitionRequest{BaseValue: 1}); !errors.Is(err, ErrStatNotFound) {
		t.Fatalf("expected ErrStatNotFound, got %v", err)
	}
	if mr.updated != nil {
		t.Fatalf("expected no save on unknown stat")
	}
	if p.Characters[0].CalculatedStats["power"] != powerBefore {
		t.Fatalf("cache modified by failed update")
	}
}

func TestCreateStatDefinition_AddsKeyEverywhere(t *testing.T) {
	p := testProject()
	mr := repoWith(p)

	def, err := CreateStatDefinition(mr, "prj-1", StatDefinitionRequest{
		Name:          "Initiative",
		BaseValue:     10,
		PerLevelBonus: 1,
		Modifiers:     []game.Modifier{{Attribute: "dexterity", Multiplier: 1.5}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.Name != "initiative" {
		t.Fatalf("expected canonical stat name, got %q", def.Name)
	}
	if _, ok := p.Characters[0].CalculatedStats["initiative"]; !ok {
		t.Fatalf("new stat missing from character cache")
	}
	if _, ok := p.Enemies[0].CalculatedStats["initiative"]; !ok {
		t.Fatalf("new stat missing from enemy cache")
	}
}

func TestCreateStatDefinition_Duplicate(t *testing.T) {
	mr := repoWith(testProject())
	if _, err := CreateStatDefinition(mr, "prj-1", StatDefinitionRequest{Name: "health"}); !errors.Is(err, ErrStatExists) {
		t.Fatalf("expected ErrStatExists, got %v", err)
	}
}

func TestUpdateProjectAttributes_NoRecalculation(t *testing.T) {
	p := testProject()
	mr := repoWith(p)
	healthBefore := p.Characters[0].CalculatedStats["health"]

	updated, err := UpdateProjectAttributes(mr, "prj-1", []string{"Strength", "Wisdom"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.Attributes) != 2 || updated.Attributes[1] != "wisdom" {
		t.Fatalf("expected replaced attribute set, got %v", updated.Attributes)
	}
	// Removing constitution from the set does not touch cached stats.
	if p.Characters[0].CalculatedStats["health"] != healthBefore {
		t.Fatalf("cache changed by attribute set edit")
	}
}

func TestDeleteCharacter(t *testing.T) {
	mr := repoWith(testProject())
	if err := DeleteCharacter(mr, "prj-1", "ch-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mr.deletedCharacters) != 1 || mr.deletedCharacters[0] != 11 {
		t.Fatalf("expected character row 11 deleted, got %v", mr.deletedCharacters)
	}
	if err := DeleteCharacter(mr, "prj-1", "nope"); !errors.Is(err, ErrCharacterNotFound) {
		t.Fatalf("expected ErrCharacterNotFound, got %v", err)
	}
}

func TestDeleteEnemy(t *testing.T) {
	mr := repoWith(testProject())
	if err := DeleteEnemy(mr, "prj-1", "en-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mr.deletedEnemies) != 1 || mr.deletedEnemies[0] != 21 {
		t.Fatalf("expected enemy row 21 deleted, got %v", mr.deletedEnemies)
	}
}
