package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dealsdray/empdirapi/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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

func newEmployeeTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetEmployeeByID_NonIntegerParam(t *testing.T) {
	gdb, _, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	h := NewEmployeeHandler(service.NewEmployeeService(gdb, nil))

	c, rec := newEmployeeTestContext(t, http.MethodGet, "/employees/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.GetEmployeeByID(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "InputException")
}

func TestGetEmployeeByID_Absent(t *testing.T) {
	gdb, mock, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	h := NewEmployeeHandler(service.NewEmployeeService(gdb, nil))

	mock.ExpectQuery(`SELECT (.+) FROM "employees" WHERE`).
		WithArgs(12, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	c, rec := newEmployeeTestContext(t, http.MethodGet, "/employees/12", "")
	c.SetParamNames("id")
	c.SetParamValues("12")

	require.NoError(t, h.GetEmployeeByID(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NotFoundException")
}

func TestGetAllEmployees_EmptyStoreReturnsEmptyArray(t *testing.T) {
	gdb, mock, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	h := NewEmployeeHandler(service.NewEmployeeService(gdb, nil))

	mock.ExpectQuery(`SELECT (.+) FROM "employees"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	c, rec := newEmployeeTestContext(t, http.MethodGet, "/employees", "")

	require.NoError(t, h.GetAllEmployees(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestSearchEmployees_InvalidIDFilter(t *testing.T) {
	gdb, _, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	h := NewEmployeeHandler(service.NewEmployeeService(gdb, nil))

	body := `{"filters":{"ID":"abc"}}`
	c, rec := newEmployeeTestContext(t, http.MethodPost, "/employees/filter", body)

	require.NoError(t, h.SearchEmployees(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "InputException")
}

func TestSearchEmployees_NameFilter(t *testing.T) {
	gdb, mock, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	h := NewEmployeeHandler(service.NewEmployeeService(gdb, nil))

	rows := sqlmock.NewRows([]string{"id", "name", "email"}).
		AddRow(2, "Jo", "jo@x.com")
	mock.ExpectQuery(`SELECT (.+) FROM "employees" WHERE name ILIKE \$1 ORDER BY id ASC`).
		WithArgs("%jo%").
		WillReturnRows(rows)

	body := `{"filters":{"Name":"jo"}}`
	c, rec := newEmployeeTestContext(t, http.MethodPost, "/employees/filter", body)

	require.NoError(t, h.SearchEmployees(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"jo@x.com"`)
}

func TestEmailCheck(t *testing.T) {
	gdb, mock, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	h := NewEmployeeHandler(service.NewEmployeeService(gdb, nil))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "employees"`).
		WithArgs("present@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	body := `{"email":"present@x.com"}`
	c, rec := newEmployeeTestContext(t, http.MethodPost, "/employees/email-check", body)

	require.NoError(t, h.EmailCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"exists":true}`, rec.Body.String())
}

func TestDeleteEmployee_NonIntegerParam(t *testing.T) {
	gdb, _, sqlDB := newTestDB(t)
	defer sqlDB.Close()
	h := NewEmployeeHandler(service.NewEmployeeService(gdb, nil))

	c, rec := newEmployeeTestContext(t, http.MethodDelete, "/employees/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.DeleteEmployee(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
