package suggest

import (
	"errors"
	"io"
	"net/http/httptest"
	"regexp"
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
		Schema: profile.Schema{
			ID:          "acdh:hasIdentifier",
			Type:        "rdf:type",
			Name:        "acdh:hasTitle",
			Description: "acdh:hasDescription",
		},
		PreferredLanguages: []string{"en"},
		Types: []profile.Type{
			{ID: "https://vocabs.acdh.oeaw.ac.at/schema#Person", Name: "person"},
			{ID: "https://vocabs.acdh.oeaw.ac.at/schema#Organisation", Name: "organization"},
			{ID: "Journal", Name: "Zeitschrift"},
		},
	}
}

func setupTestApp(t *testing.T, limit int) (*fiber.App, sqlmock.Sqlmock) {
	db, sqlMock := setupMockDB(t)
	app := fiber.New(fiber.Config{
		ErrorHandler: apierror.Handler(false, zap.NewNop()),
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	require.NoError(t, NewFeature(db, testProfile(), limit, zap.NewNop()).Load(app))
	return app, sqlMock
}

func get(t *testing.T, app *fiber.App, target string) (int, string) {
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestHandleSuggest_Type(t *testing.T) {
	app, sqlMock := setupTestApp(t, 25)

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"ByName", "/suggest/type?prefix=per", `{"result":[{"id":"https://vocabs.acdh.oeaw.ac.at/schema#Person","name":"person"}]}`},
		{"CaseInsensitive", "/suggest/type?prefix=PERS", `{"result":[{"id":"https://vocabs.acdh.oeaw.ac.at/schema#Person","name":"person"}]}`},
		{"CaseInsensitiveName", "/suggest/type?prefix=zeit", `{"result":[{"id":"Journal","name":"Zeitschrift"}]}`},
		{"ByID", "/suggest/type?prefix=https://vocabs", `{"result":[
			{"id":"https://vocabs.acdh.oeaw.ac.at/schema#Person","name":"person"},
			{"id":"https://vocabs.acdh.oeaw.ac.at/schema#Organisation","name":"organization"}]}`},
		{"CursorIgnored", "/suggest/type?prefix=org&cursor=10", `{"result":[{"id":"https://vocabs.acdh.oeaw.ac.at/schema#Organisation","name":"organization"}]}`},
		{"NoMatch", "/suggest/type?prefix=xyz", `{"result":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, b := get(t, app, tt.target)
			assert.Equal(t, 200, code)
			assert.JSONEq(t, tt.want, b)
		})
	}
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestHandleSuggest_Entity(t *testing.T) {
	app, sqlMock := setupTestApp(t, 1)

	sqlMock.ExpectQuery(regexp.QuoteMeta("FROM identifiers i WHERE i.ids LIKE ?")).
		WithArgs(`Moz\%%`, "rdf:type", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
			"acdh:hasTitle", `Moz\%%`, "rdf:type", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("1").AddRow("2").AddRow("3"))
	sqlMock.ExpectQuery(regexp.QuoteMeta("FROM metadata WHERE property IN")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "property", "lang", "value"}).
			AddRow("1", "acdh:hasTitle", "en", "Mozart").
			AddRow("2", "acdh:hasTitle", "en", "Mozart Society").
			AddRow("2", "rdf:type", "", "https://vocabs.acdh.oeaw.ac.at/schema#Organisation").
			AddRow("3", "acdh:hasTitle", "en", "Mozarteum"))

	code, b := get(t, app, "/suggest/entity?prefix=Moz%25&cursor=1")
	require.Equal(t, 200, code, b)
	require.NoError(t, sqlMock.ExpectationsWereMet())

	assert.JSONEq(t, `{"result":[{"id":"2","name":"Mozart Society","description":"",
		"notable":[{"id":"https://vocabs.acdh.oeaw.ac.at/schema#Organisation","name":"organization"}]}]}`, b)
}

func TestHandleSuggest_EntityError(t *testing.T) {
	app, sqlMock := setupTestApp(t, 0)
	sqlMock.ExpectQuery("identifiers").WillReturnError(errors.New("relation does not exist"))

	code, b := get(t, app, "/suggest/entity?prefix=Moz")
	assert.Equal(t, 500, code)
	assert.Contains(t, b, "Suggest failed")
}

func TestHandleSuggest_Unsupported(t *testing.T) {
	app, _ := setupTestApp(t, 25)

	for _, kind := range []string{"property", "other"} {
		code, b := get(t, app, "/suggest/"+kind+"?prefix=a")
		assert.Equal(t, 404, code)
		assert.Equal(t, "Unsupported suggest type "+kind, b)
	}
}

func TestLoader(t *testing.T) {
	db, _ := setupMockDB(t)
	feature := NewFeature(db, testProfile(), 25, zap.NewNop())

	assert.Equal(t, "suggest", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}
