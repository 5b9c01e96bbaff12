package store

import "github.com/mgavrilov/blackraven/internal/logger"

// Repositories aggregates every repository backed by the shared database
// connection. It is the single dependency the service layer receives from
// the persistence layer.
type Repositories struct {
	UserRepository     UserRepository
	DossierRepository  DossierRepository
	TargetRepository   TargetRepository
	IntelRepository    IntelRepository
	PatternRepository  PatternRepository
	TimelineRepository TimelineRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, logger),
		DossierRepository:  NewDossierRepository(db, logger),
		TargetRepository:   NewTargetRepository(db, logger),
		IntelRepository:    NewIntelRepository(db, logger),
		PatternRepository:  NewPatternRepository(db, logger),
		TimelineRepository: NewTimelineRepository(db, logger),
	}
}
