package repositories

import (
	"github.com/ethos-training/ethos/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     *UserRepository
	ModuleRepository   *ModuleRepository
	ProgressRepository *ProgressRepository
	QuizRepository     *QuizRepository
}

// NewRepositories initializes all repositories
func NewRepositories(pool db.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(pool),
		ModuleRepository:   NewModuleRepository(pool),
		ProgressRepository: NewProgressRepository(pool),
		QuizRepository:     NewQuizRepository(pool),
	}
}
