package repositories

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Repositories are stateless; every method receives the per-request
// transaction so all statements of one request share one scope.

const (
	mysqlDuplicateEntry  = 1062
	mysqlRowIsReferenced = 1451
)

// ErrRowReferenced is returned when a delete is blocked by rows that still
// reference the target through a foreign key.
var ErrRowReferenced = errors.New("row is still referenced")

// isDuplicateEntry recognizes a unique-constraint violation from the MySQL
// driver so it can surface as a domain conflict instead of a 500.
func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isRowReferenced(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlRowIsReferenced
}
