package loadout

import (
	"sync"

	"github.com/udisondev/mhwbuild/internal/model"
)

// Service recomputes the build on every update and notifies subscribers.
type Service struct {
	mu     sync.Mutex
	engine *Engine
	latest *Result

	SkillsUpdated     *Topic[[]*model.EquippedSkill]
	SetBonusesUpdated *Topic[[]*model.EquippedSetBonus]
}

// NewService creates a service over catalog.
func NewService(catalog Catalog) *Service {
	return &Service{
		engine:            NewEngine(catalog),
		SkillsUpdated:     NewTopic[[]*model.EquippedSkill](),
		SetBonusesUpdated: NewTopic[[]*model.EquippedSetBonus](),
	}
}

// Update aggregates in, stores the result as the latest snapshot and publishes both collections.
// On error nothing is published and the previous snapshot is kept.
func (s *Service) Update(in Input) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.engine.Aggregate(in)
	if err != nil {
		return nil, err
	}
	s.latest = res

	s.SkillsUpdated.Publish(res.Skills)
	s.SetBonusesUpdated.Publish(res.SetBonuses)
	return res, nil
}

// Latest returns the last successfully published result, or nil.
func (s *Service) Latest() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}
