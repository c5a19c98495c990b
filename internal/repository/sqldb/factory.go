package sqldb

import (
	"database/sql"

	repo "github.com/dvmorais/daily-diet-api/internal/repository"
)

// Repositories bundles the stores built over one shared database handle.
// The same SQL serves both drivers: sqlite accepts the $N parameter form
// postgres uses.
type Repositories struct {
	Users repo.Users
	Foods repo.Foods
}

func NewRepositories(db *sql.DB) Repositories {
	return Repositories{
		Users: &usersRepo{db},
		Foods: &foodsRepo{db},
	}
}
