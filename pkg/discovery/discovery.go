/*
 * Copyright 2025 The homelab authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package discovery enumerates systemd units, classifies them into
// functional categories, attaches educational context, and resolves the
// curated critical-service set.
package discovery

import (
	"context"

	"github.com/homelab-edu/homelab/pkg/logger"
	"github.com/homelab-edu/homelab/pkg/models"
)

// Config carries the static rule tables. All fields are optional; nil
// or empty fields fall back to the compiled-in defaults. The tables are
// loaded once at process start and treated as immutable afterwards.
type Config struct {
	Rules            []ClassificationRule                               `json:"classification_rules,omitempty"`
	UnitNotes        map[string]models.EducationalContext               `json:"unit_notes,omitempty"`
	CategoryNotes    map[models.CategoryLabel]models.EducationalContext `json:"category_notes,omitempty"`
	CriticalServices []CriticalServiceDef                               `json:"critical_services,omitempty"`
}

// Service is the discovery facade. Every query enumerates fresh; there
// is no cache and no background poller.
type Service struct {
	manager    SystemManager
	classifier *Classifier
	educator   *Educator
	critical   *CriticalResolver
	log        logger.Logger
}

func NewService(manager SystemManager, cfg *Config, log logger.Logger) *Service {
	if cfg == nil {
		cfg = &Config{}
	}

	return &Service{
		manager:    manager,
		classifier: NewClassifier(cfg.Rules),
		educator:   NewEducator(cfg.UnitNotes, cfg.CategoryNotes),
		critical:   NewCriticalResolver(cfg.CriticalServices),
		log:        log,
	}
}

// GetAllServices returns every enumerated unit with its category and
// educational context attached. Fails only when enumeration fails.
func (s *Service) GetAllServices(ctx context.Context) ([]models.EnrichedUnit, error) {
	units, err := s.manager.ListUnits(ctx)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedUnit, 0, len(units))

	for _, unit := range units {
		category := s.classifier.Classify(unit)

		enriched = append(enriched, models.EnrichedUnit{
			ServiceUnit: unit,
			Category:    category,
			Education:   s.educator.Enrich(unit, category),
		})
	}

	s.log.Debug().Int("units", len(enriched)).Msg("enriched service units")

	return enriched, nil
}

// GetServicesByCategory groups the all-services result by category.
// The map is sparse: categories with no members are omitted.
func (s *Service) GetServicesByCategory(ctx context.Context) (map[models.CategoryLabel][]models.EnrichedUnit, error) {
	all, err := s.GetAllServices(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[models.CategoryLabel][]models.EnrichedUnit)
	for _, unit := range all {
		grouped[unit.Category] = append(grouped[unit.Category], unit)
	}

	return grouped, nil
}

// GetCriticalServices joins the allow-list against a fresh enumeration.
func (s *Service) GetCriticalServices(ctx context.Context) (models.CriticalServices, error) {
	units, err := s.manager.ListUnits(ctx)
	if err != nil {
		return nil, err
	}

	return s.critical.ResolveCritical(units), nil
}
