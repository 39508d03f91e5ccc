package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dealsdray/empdirapi/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testCreateDate = time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return gdb, mock, sqlDB
}

func employeeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "image", "name", "email", "mobile", "designation", "gender", "courses", "create_date"})
}

func TestGetEmployeeByID_Found(t *testing.T) {
	gdb, mock, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	repo := NewEmployeeRepository(gdb)

	rows := employeeRows().
		AddRow(7, "https://img.example.com/7.png", "John Doe", "john@x.com", "9999999999", "HR", "M", "{MCA,BCA}", testCreateDate)
	mock.ExpectQuery(`SELECT (.+) FROM "employees" WHERE`).
		WithArgs(7, 1).
		WillReturnRows(rows)

	employee, err := repo.GetEmployeeByID(7)
	require.NoError(t, err)
	assert.Equal(t, uint(7), employee.ID)
	assert.Equal(t, "John Doe", employee.Name)
	assert.Equal(t, []string{"MCA", "BCA"}, []string(employee.Courses))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployeeByID_NotFound(t *testing.T) {
	gdb, mock, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	repo := NewEmployeeRepository(gdb)

	mock.ExpectQuery(`SELECT (.+) FROM "employees" WHERE`).
		WithArgs(99, 1).
		WillReturnRows(employeeRows())

	_, err := repo.GetEmployeeByID(99)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestCreateEmployee_AssignsID(t *testing.T) {
	gdb, mock, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	repo := NewEmployeeRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "employees"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	employee := &models.EmployeeModel{
		Name:    "A",
		Email:   "a@x.com",
		Courses: []string{"MCA"},
	}
	err := repo.CreateEmployee(employee)
	require.NoError(t, err)
	assert.Equal(t, uint(11), employee.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	gdb, mock, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	repo := NewEmployeeRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "employees"`).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.DeleteEmployee(42)
	assert.ErrorIs(t, err, ErrEmployeeNotFound)
}

func TestDeleteEmployee_Success(t *testing.T) {
	gdb, mock, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	repo := NewEmployeeRepository(gdb)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "employees"`).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteEmployee(42))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmailExists(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		want  bool
	}{
		{"present", 1, true},
		{"absent", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gdb, mock, sqlDB := newTestDB(t)
			defer sqlDB.Close()
			repo := NewEmployeeRepository(gdb)

			mock.ExpectQuery(`SELECT count\(\*\) FROM "employees"`).
				WithArgs("a@x.com").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(tt.count))

			exists, err := repo.EmailExists("a@x.com")
			require.NoError(t, err)
			assert.Equal(t, tt.want, exists)
		})
	}
}

func TestSearchEmployees_InvalidIDFilter(t *testing.T) {
	gdb, _, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	repo := NewEmployeeRepository(gdb)

	_, err := repo.SearchEmployees(&models.EmployeeFilters{ID: "abc"}, "")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestSearchEmployees_InvalidCreateDateFilter(t *testing.T) {
	gdb, _, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	repo := NewEmployeeRepository(gdb)

	_, err := repo.SearchEmployees(&models.EmployeeFilters{CreateDate: "notadate"}, "")
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestSearchEmployees_NameFilterAndSearchTerm(t *testing.T) {
	gdb, mock, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	repo := NewEmployeeRepository(gdb)

	rows := employeeRows().
		AddRow(1, "", "Jordan", "jordan@x.com", "", "", "", "{}", testCreateDate).
		AddRow(3, "", "Joan", "joan@y.com", "", "", "", "{}", testCreateDate)
	mock.ExpectQuery(`SELECT (.+) FROM "employees" WHERE name ILIKE \$1 AND \(name ILIKE \$2 OR email ILIKE \$3\) ORDER BY id ASC`).
		WithArgs("%jo%", "%an%", "%an%").
		WillReturnRows(rows)

	employees, err := repo.SearchEmployees(&models.EmployeeFilters{Name: "jo"}, "an")
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, uint(1), employees[0].ID)
	assert.Equal(t, uint(3), employees[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchEmployees_NoCriteriaMatchesEverything(t *testing.T) {
	gdb, mock, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	repo := NewEmployeeRepository(gdb)

	mock.ExpectQuery(`SELECT (.+) FROM "employees" ORDER BY id ASC`).
		WillReturnRows(employeeRows().AddRow(1, "", "A", "a@x.com", "", "", "", "{}", testCreateDate))

	employees, err := repo.SearchEmployees(nil, "")
	require.NoError(t, err)
	assert.Len(t, employees, 1)
}

func TestSearchEmployees_CreateDateLowerBound(t *testing.T) {
	gdb, mock, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	repo := NewEmployeeRepository(gdb)

	mock.ExpectQuery(`SELECT (.+) FROM "employees" WHERE create_date >= \$1 ORDER BY id ASC`).
		WillReturnRows(employeeRows())

	_, err := repo.SearchEmployees(&models.EmployeeFilters{CreateDate: "2024-01-01"}, "")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
