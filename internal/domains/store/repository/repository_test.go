package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	consumption "frontdesk/internal/domains/consumption/model"
	stay "frontdesk/internal/domains/stay/model"
	"frontdesk/internal/domains/store/repository"
	"frontdesk/shared/failure"
	sharedRepository "frontdesk/shared/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stayColumns = []string{
	"id", "position", "room_number", "check_in", "check_out", "occupant_name",
	"age", "party_size", "group_key", "services", "notes",
}

func newSQLStore(t *testing.T) (repository.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	return repository.NewSQL(&sharedRepository.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), mock
}

func TestSQLStore_ReadStays(t *testing.T) {
	store, mock := newSQLStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM stays ORDER BY position")).
		WillReturnRows(sqlmock.NewRows(stayColumns).
			AddRow("s1", 0, 101, "2026-03-01", "2026-03-05", "Ana Diaz", 40, 2, "V1", "BREAKFAST", "").
			AddRow("s2", 1, 102, "not-a-date", "2026-03-05", "Luis Diaz", 12, 1, "V1", "BREAKFAST", ""))

	stays, err := store.ReadStays(context.Background())

	require.NoError(t, err)
	require.Len(t, stays, 2)
	assert.Equal(t, 101, stays[0].Room)
	assert.Equal(t, "not-a-date", stays[1].CheckIn, "malformed dates are preserved verbatim")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_ReadStaysUnavailable(t *testing.T) {
	store, mock := newSQLStore(t)

	mock.ExpectQuery("FROM stays").WillReturnError(errors.New("relation \"stays\" does not exist"))

	_, err := store.ReadStays(context.Background())

	assert.True(t, failure.IsStoreUnavailable(err))
}

func TestSQLStore_ReadConsumptions(t *testing.T) {
	store, mock := newSQLStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, position, room_number, amount, description, recorded_at FROM consumptions")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "position", "room_number", "amount", "description", "recorded_at"}).
			AddRow("c1", 0, 101, 12.5, "minibar", "2026-03-02"))

	consumptions, err := store.ReadConsumptions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []consumption.Consumption{{ID: "c1", Room: 101, Amount: 12.5, Description: "minibar", RecordedAt: "2026-03-02"}}, consumptions)
}

func TestSQLStore_ReplaceStaysNumbersPositions(t *testing.T) {
	store, mock := newSQLStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM stays")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO stays")).
		WithArgs(
			"s1", 0, 201, "2026-03-01", "2026-03-02", "Ana", 30, 1, "", "", "",
			"s2", 1, 202, "2026-03-01", "2026-03-02", "Luis", 31, 1, "", "", "",
		).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := store.ReplaceStays(context.Background(), []stay.StayRecord{
		{ID: "s1", Position: 7, Room: 201, CheckIn: "2026-03-01", CheckOut: "2026-03-02", Name: "Ana", Age: 30, PartySize: 1},
		{ID: "s2", Position: 3, Room: 202, CheckIn: "2026-03-01", CheckOut: "2026-03-02", Name: "Luis", Age: 31, PartySize: 1},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_ReplaceAll(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   bool
	}{
		{
			name: "both sets in one transaction",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM stays")).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO stays")).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM consumptions")).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO consumptions")).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "consumption failure rolls back stays too",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM stays")).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO stays")).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM consumptions")).WillReturnError(errors.New("lock timeout"))
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newSQLStore(t)
			tt.setupMock(mock)

			err := store.ReplaceAll(context.Background(),
				[]stay.StayRecord{{ID: "s1", Room: 202, CheckIn: "2026-03-01", CheckOut: "2026-03-04", Name: "Ana", PartySize: 1}},
				[]consumption.Consumption{{ID: "c1", Room: 202, Amount: 5}},
			)

			if tt.wantErr {
				assert.True(t, failure.IsStoreUnavailable(err))
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNew_MemoryDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Store.Driver = config.StoreDriverMemory

	store := repository.New(cfg, nil, mocks.NewOtel())

	stays, err := store.ReadStays(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stays)
}

func TestMemoryStore_CopiesOnReadAndWrite(t *testing.T) {
	seed := []stay.StayRecord{{ID: "s1", Room: 101, Name: "Ana"}}
	store := repository.NewMemory(seed, nil)

	seed[0].Name = "changed by caller"

	stays, err := store.ReadStays(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ana", stays[0].Name)

	stays[0].Name = "changed after read"

	again, _ := store.ReadStays(context.Background())
	assert.Equal(t, "Ana", again[0].Name)

	require.NoError(t, store.ReplaceAll(context.Background(),
		[]stay.StayRecord{{ID: "s2", Room: 202}, {ID: "s3", Room: 203}},
		[]consumption.Consumption{{ID: "c1", Room: 202, Amount: 3}},
	))

	stays, _ = store.ReadStays(context.Background())
	consumptions, _ := store.ReadConsumptions(context.Background())

	assert.Equal(t, []int{0, 1}, []int{stays[0].Position, stays[1].Position})
	assert.Len(t, consumptions, 1)
}
