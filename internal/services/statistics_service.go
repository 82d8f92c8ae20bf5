package services

import (
	"errors"
	"fmt"

	"github.com/markjessn/mini-pms/internal/repository"
	"gorm.io/gorm"
)

// StatisticsService aggregates per-organization project statistics.
type StatisticsService struct {
	statsRepo repository.StatisticsRepository
	orgRepo   repository.OrganizationRepository
}

// NewStatisticsService creates a new StatisticsService.
func NewStatisticsService(statsRepo repository.StatisticsRepository, orgRepo repository.OrganizationRepository) *StatisticsService {
	return &StatisticsService{
		statsRepo: statsRepo,
		orgRepo:   orgRepo,
	}
}

// Get returns the organization's statistics, or nil when the slug is unknown.
func (s *StatisticsService) Get(organizationSlug string) (*repository.ProjectStatistics, error) {
	org, err := s.orgRepo.FindBySlug(organizationSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}

	stats, err := s.statsRepo.Collect(org.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to collect statistics: %w", err)
	}
	return stats, nil
}
