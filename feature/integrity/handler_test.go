package integrity

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"arche-openrefine/core/apierror"
	"arche-openrefine/core/profile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
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

func testProfile() *profile.Profile {
	return &profile.Profile{
		Schema: profile.Schema{ID: "acdh:hasIdentifier", Type: "rdf:type", Name: "acdh:hasTitle"},
		Types:  []profile.Type{{ID: "acdh:Person", Name: "person"}},
		Properties: []profile.Property{
			{ID: "birth", Source: "acdh:hasBirthDate", ValueType: "date"},
		},
	}
}

func setupTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	db, sqlMock := setupMockDB(t)
	sqlMock.MatchExpectationsInOrder(false)

	app := fiber.New(fiber.Config{ErrorHandler: apierror.Handler(false, zap.NewNop())})
	require.NoError(t, NewFeature(db, testProfile(), zap.NewNop()).Load(app))
	return app, sqlMock
}

func expectTables(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("information_schema.columns").WithArgs("metadata").
		WillReturnRows(sqlmock.NewRows([]string{"field", "type"}).
			AddRow("mid", "bigint").AddRow("id", "bigint").AddRow("property", "text").
			AddRow("lang", "text").AddRow("value", "text"))
	mock.ExpectQuery("information_schema.columns").WithArgs("identifiers").
		WillReturnRows(sqlmock.NewRows([]string{"field", "type"}).AddRow("ids", "text").AddRow("id", "bigint"))
	mock.ExpectQuery("information_schema.columns").WithArgs("full_text_search").
		WillReturnRows(sqlmock.NewRows([]string{"field", "type"}).
			AddRow("ftsid", "bigint").AddRow("mid", "bigint").AddRow("iid", "bigint").AddRow("raw", "text"))
}

func get(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	_ = json.Unmarshal(b, &body)
	return resp.StatusCode, body
}

func TestHandleDatastoreCheck(t *testing.T) {
	app, sqlMock := setupTestApp(t)
	expectTables(sqlMock)

	code, body := get(t, app, "/integrity/datastore")
	require.Equal(t, 200, code)
	require.NoError(t, sqlMock.ExpectationsWereMet())

	assert.Equal(t, "mysql", body["dialect"])
	assert.Equal(t, true, body["matched"])
}

func TestHandleProfileCheck(t *testing.T) {
	app, sqlMock := setupTestApp(t)
	sqlMock.ExpectQuery("substring").WillReturnRows(sqlmock.NewRows([]string{"name", "n"}).AddRow("acdh:Person", 4))
	sqlMock.ExpectQuery("property AS name").WillReturnRows(sqlmock.NewRows([]string{"name", "n"}))

	code, body := get(t, app, "/integrity/profile")
	require.Equal(t, 200, code)

	assert.Equal(t, false, body["matched"])
	assert.Equal(t, []any{}, body["empty_types"])
	assert.Equal(t, []any{"birth"}, body["empty_properties"])
}

func TestHandleProfileCheck_Error(t *testing.T) {
	app, sqlMock := setupTestApp(t)
	sqlMock.ExpectQuery("substring").WillReturnError(errors.New("connection refused"))
	sqlMock.ExpectQuery("property AS name").WillReturnRows(sqlmock.NewRows([]string{"name", "n"}))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/profile", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}

func TestHandleIntegrityCheck(t *testing.T) {
	app, sqlMock := setupTestApp(t)
	expectTables(sqlMock)
	sqlMock.ExpectQuery("substring").WillReturnError(errors.New("connection refused"))
	sqlMock.ExpectQuery("property AS name").WillReturnRows(sqlmock.NewRows([]string{"name", "n"}))

	code, body := get(t, app, "/integrity")
	require.Equal(t, 200, code)

	ds, ok := body["datastore"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, ds["matched"])

	pr, ok := body["profile"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "error", pr["status"])
	assert.Contains(t, pr["error"], "connection refused")
}

func TestLoader(t *testing.T) {
	db, _ := setupMockDB(t)
	feature := NewFeature(db, testProfile(), zap.NewNop())

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())
	assert.NoError(t, feature.Load(fiber.New()))
}
