package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/shubhra2160/Airline-market-demand-analysis/models"
	"github.com/shubhra2160/Airline-market-demand-analysis/utils"
)

// Стаб-драйвер базы данных: выполняет запросы в памяти, фиксирует
// количество Commit/Rollback и отклоняет запросы с заданной подстрокой.
type stubDriver struct {
	conn *stubConn
}

func (d *stubDriver) Open(name string) (driver.Conn, error) {
	return d.conn, nil
}

type stubConn struct {
	failOn    string // подстрока запроса, исполнение которого отклоняется
	lastID    int64
	commits   int
	rollbacks int
}

func (c *stubConn) Prepare(query string) (driver.Stmt, error) {
	return &stubStmt{conn: c, query: query}, nil
}

func (c *stubConn) Close() error { return nil }

func (c *stubConn) Begin() (driver.Tx, error) {
	return &stubTx{conn: c}, nil
}

type stubStmt struct {
	conn  *stubConn
	query string
}

func (s *stubStmt) Close() error  { return nil }
func (s *stubStmt) NumInput() int { return -1 }

func (s *stubStmt) Exec(args []driver.Value) (driver.Result, error) {
	if s.conn.failOn != "" && strings.Contains(s.query, s.conn.failOn) {
		return nil, errors.New("запрос отклонен")
	}
	s.conn.lastID++
	return stubResult{id: s.conn.lastID}, nil
}

func (s *stubStmt) Query(args []driver.Value) (driver.Rows, error) {
	return nil, errors.New("выборка не поддерживается")
}

type stubResult struct {
	id int64
}

func (r stubResult) LastInsertId() (int64, error) { return r.id, nil }
func (r stubResult) RowsAffected() (int64, error) { return 1, nil }

type stubTx struct {
	conn *stubConn
}

func (t *stubTx) Commit() error {
	t.conn.commits++
	return nil
}

func (t *stubTx) Rollback() error {
	t.conn.rollbacks++
	return nil
}

func newStubFlightRepository(t *testing.T, name, failOn string) (*MySQLFlightRepository, *stubConn) {
	t.Helper()
	// t.Chdir недоступен до Go 1.24 — эквивалент через os.Chdir
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil { // файл лога не должен попадать в каталог пакета
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	conn := &stubConn{failOn: failOn}
	sql.Register(name, &stubDriver{conn: conn})

	db, err := sql.Open(name, "stub")
	if err != nil {
		t.Fatalf("открытие стаб-базы: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := utils.NewAnalysisLogger(false)
	t.Cleanup(func() { logger.Close() })

	return NewMySQLFlightRepository(db, logger), conn
}

func scoredRecordFixture() models.ScoredFlightRecord {
	return models.ScoredFlightRecord{
		CleanFlightRecord: models.CleanFlightRecord{
			Origin:        "SYD",
			Destination:   "MEL",
			DepartureDate: time.Date(2024, 7, 27, 0, 0, 0, 0, time.UTC),
			Price:         150,
			Currency:      "AUD",
			Availability:  40,
			IsDomestic:    true,
			DataSource:    "amadeus",
		},
		DemandScore: 69.0,
		Season:      "winter",
	}
}

func TestSaveScoredFlightsCommitsBatch(t *testing.T) {
	repo, conn := newStubFlightRepository(t, "stub-flights-ok", "")

	records := []models.ScoredFlightRecord{scoredRecordFixture(), scoredRecordFixture()}
	if err := repo.SaveScoredFlights(records); err != nil {
		t.Fatalf("сохранение пакета: %v", err)
	}

	if conn.commits != 1 {
		t.Errorf("commits = %d, ожидается 1", conn.commits)
	}
	if conn.rollbacks != 0 {
		t.Errorf("rollbacks = %d, ожидается 0", conn.rollbacks)
	}
}

func TestSaveScoredFlightsRollsBackOnFlightInsertError(t *testing.T) {
	repo, conn := newStubFlightRepository(t, "stub-flights-fail-insert", "INSERT INTO flights")

	err := repo.SaveScoredFlights([]models.ScoredFlightRecord{scoredRecordFixture()})
	if err == nil {
		t.Fatal("ошибка вставки рейса не возвращена")
	}

	// Ошибка внутри цикла должна попасть во внешний err и вызвать откат
	if conn.rollbacks != 1 {
		t.Errorf("rollbacks = %d, ожидается 1", conn.rollbacks)
	}
	if conn.commits != 0 {
		t.Errorf("commits = %d, ожидается 0", conn.commits)
	}
}

func TestSaveScoredFlightsRollsBackOnMetricInsertError(t *testing.T) {
	repo, conn := newStubFlightRepository(t, "stub-flights-fail-metric", "INSERT INTO demand_metrics")

	err := repo.SaveScoredFlights([]models.ScoredFlightRecord{scoredRecordFixture()})
	if err == nil {
		t.Fatal("ошибка вставки метрики не возвращена")
	}

	if conn.rollbacks != 1 {
		t.Errorf("rollbacks = %d, ожидается 1", conn.rollbacks)
	}
	if conn.commits != 0 {
		t.Errorf("commits = %d, ожидается 0", conn.commits)
	}
}

func TestSaveScoredFlightsEmptyBatch(t *testing.T) {
	repo, conn := newStubFlightRepository(t, "stub-flights-empty", "")

	if err := repo.SaveScoredFlights(nil); err != nil {
		t.Fatalf("пустой пакет: %v", err)
	}
	if conn.commits != 0 || conn.rollbacks != 0 {
		t.Errorf("пустой пакет не должен открывать транзакцию: commits=%d rollbacks=%d", conn.commits, conn.rollbacks)
	}
}
