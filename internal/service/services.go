package service

import (
	"github.com/mgavrilov/blackraven/internal/config"
	"github.com/mgavrilov/blackraven/internal/logger"
	"github.com/mgavrilov/blackraven/internal/store"
)

type Services struct {
	AuthService     AuthService
	CaseService     CaseService
	PatternService  PatternService
	TimelineService TimelineService
}

func NewServices(repos *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(repos.UserRepository, cfg.App, logger),
		CaseService:     NewCaseService(repos, logger),
		PatternService:  NewPatternService(repos, DefaultPatternPolicies(cfg.Patterns), logger),
		TimelineService: NewTimelineService(repos, logger),
	}
}
