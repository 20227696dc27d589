package database

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestGetTableColumns(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"field", "type"}).
		AddRow("MID", "BIGINT").
		AddRow("property", "text")
	mock.ExpectQuery(regexp.QuoteMeta("FROM information_schema.columns WHERE table_schema = DATABASE() AND table_name = ?")).
		WithArgs("metadata").
		WillReturnRows(rows)

	columns, err := GetTableColumns(db, "metadata")
	require.NoError(t, err)
	assert.Equal(t, []ColumnInfo{{Field: "mid", Type: "bigint"}, {Field: "property", Type: "text"}}, columns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTableColumns_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("information_schema").WillReturnError(errors.New("denied"))

	_, err := GetTableColumns(db, "metadata")
	assert.ErrorContains(t, err, "failed to get columns for table metadata: denied")
}

func TestDialect(t *testing.T) {
	db, _ := setupMockDB(t)
	assert.Equal(t, MySQL, DialectOf(db))
	assert.Equal(t, Postgres, DialectOf(nil))

	assert.Equal(t, "MATCH (f.raw) AGAINST (? IN NATURAL LANGUAGE MODE)", MySQL.FullText("f"))
	assert.Equal(t, "websearch_to_tsquery('simple', ?) @@ f.segments", Postgres.FullText("f"))
	assert.Equal(t, "value ~ ?", Postgres.Regexp("value"))
	assert.Equal(t, "value REGEXP ?", MySQL.Regexp("value"))
	assert.Equal(t, "CAST(? AS CHAR)", MySQL.Text())
	assert.Equal(t, "CAST(? AS TEXT)", Postgres.Text())
}
