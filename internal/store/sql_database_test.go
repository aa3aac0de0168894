package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/recipe-keeper/internal/config"
	"github.com/MKhiriev/recipe-keeper/internal/logger"
)

func TestParseDSN(t *testing.T) {
	tests := []struct {
		name        string
		dsn         string
		wantDriver  string
		wantSource  string
		wantDialect string
		wantErr     error
	}{
		{
			name:        "postgres",
			dsn:         "postgres://u:p@localhost:5432/recipes?sslmode=disable",
			wantDriver:  "pgx",
			wantSource:  "postgres://u:p@localhost:5432/recipes?sslmode=disable",
			wantDialect: DialectPostgres,
		},
		{
			name:        "postgresql scheme",
			dsn:         "postgresql://localhost/recipes",
			wantDriver:  "pgx",
			wantSource:  "postgresql://localhost/recipes",
			wantDialect: DialectPostgres,
		},
		{
			name:        "sqlite path",
			dsn:         "sqlite://recipes.db",
			wantDriver:  "sqlite3",
			wantSource:  "recipes.db?_foreign_keys=on",
			wantDialect: DialectSQLite,
		},
		{
			name:        "sqlite file uri with params",
			dsn:         "file:recipes.db?cache=shared",
			wantDriver:  "sqlite3",
			wantSource:  "file:recipes.db?cache=shared&_foreign_keys=on",
			wantDialect: DialectSQLite,
		},
		{
			name:        "sqlite with explicit fk setting",
			dsn:         "file:recipes.db?_fk=1",
			wantDriver:  "sqlite3",
			wantSource:  "file:recipes.db?_fk=1",
			wantDialect: DialectSQLite,
		},
		{
			name:    "unsupported",
			dsn:     "mysql://localhost/recipes",
			wantErr: ErrUnsupportedDSN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			driver, source, dialect, err := parseDSN(tt.dsn)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDriver, driver)
			assert.Equal(t, tt.wantSource, source)
			assert.Equal(t, tt.wantDialect, dialect)
		})
	}
}

func TestNewConnect_UnsupportedDSN(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{DSN: "redis://localhost"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestNewDB_PlaceholderFormat(t *testing.T) {
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	pg := NewDB(conn, DialectPostgres, logger.Nop())
	query, _, err := pg.builder.Select("id").From("tags").Where(ownedBy("tags", 1)).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM tags WHERE tags.user_id = $1", query)

	lite := NewDB(conn, DialectSQLite, logger.Nop())
	query, _, err = lite.builder.Select("id").From("tags").Where(ownedBy("tags", 1)).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM tags WHERE tags.user_id = ?", query)
	assert.Equal(t, DialectSQLite, lite.Dialect())
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := db.withTx(context.Background(), func(_ *sql.Tx) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_BeginError(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := db.withTx(context.Background(), func(_ *sql.Tx) error { return nil })
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, UniqueViolation, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, ForeignKeyViolation, c.Classify(pgError(pgerrcode.ForeignKeyViolation)))
	assert.Equal(t, Unclassified, c.Classify(pgError(pgerrcode.SyntaxError)))
	assert.Equal(t, Unclassified, c.Classify(errors.New("plain")))
	assert.Equal(t, Unclassified, c.Classify(nil))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	fk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}
	notNull := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}

	assert.Equal(t, UniqueViolation, c.Classify(unique))
	assert.Equal(t, ForeignKeyViolation, c.Classify(fk))
	assert.Equal(t, Unclassified, c.Classify(notNull))
	assert.Equal(t, Unclassified, c.Classify(pgError(pgerrcode.UniqueViolation)))
}
