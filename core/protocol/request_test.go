package protocol_test

import (
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"arche-openrefine/core/apierror"
	"arche-openrefine/core/profile"
	"arche-openrefine/core/protocol"
	"arche-openrefine/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *profile.Profile {
	return &profile.Profile{
		Types: []profile.Type{{ID: "acdh:Person", Name: "person"}},
	}
}

// capture mounts a route that stores the parsed request.
func capture(trigger string, extended bool) (*fiber.App, *protocol.Request, *error) {
	var got protocol.Request
	var gotErr error
	app := fiber.New()
	app.All("/reconcile", func(c *fiber.Ctx) error {
		got, gotErr = protocol.ParseReconcile(c, trigger, extended, testProfile())
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app, &got, &gotErr
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestParseReconcile_Manifest(t *testing.T) {
	app, got, gotErr := capture(server.TriggerQueryAndBody, true)

	_, err := app.Test(httptest.NewRequest("GET", "/reconcile", nil))
	require.NoError(t, err)
	require.NoError(t, *gotErr)
	assert.Equal(t, protocol.ManifestRequest{}, *got)
	assert.Equal(t, "manifest", (*got).Operation())
}

func TestParseReconcile_Trigger(t *testing.T) {
	form := url.Values{"queries": {`{"q0":{"query":"Mozart"}}`}}

	t.Run("QueryAndBody", func(t *testing.T) {
		app, got, gotErr := capture(server.TriggerQueryAndBody, true)
		_, err := app.Test(postForm("/reconcile", form))
		require.NoError(t, err)
		require.NoError(t, *gotErr)

		batch, ok := (*got).(protocol.BatchRequest)
		require.True(t, ok)
		assert.Equal(t, "Mozart", batch.Queries["q0"].Text)
	})

	t.Run("QueryOnly", func(t *testing.T) {
		app, got, _ := capture(server.TriggerQuery, false)
		_, err := app.Test(postForm("/reconcile", form))
		require.NoError(t, err)
		assert.Equal(t, protocol.ManifestRequest{}, *got)
	})

	t.Run("QueryOnlyWithQueryString", func(t *testing.T) {
		app, got, _ := capture(server.TriggerQuery, false)
		_, err := app.Test(httptest.NewRequest("GET", "/reconcile?queries="+url.QueryEscape(`{"q0":{"query":"Mozart","type":"acdh:Person","limit":3}}`), nil))
		require.NoError(t, err)

		batch, ok := (*got).(protocol.BatchRequest)
		require.True(t, ok)
		assert.Equal(t, 3, batch.Queries["q0"].Limit)
		assert.Equal(t, []string{"acdh:Person"}, batch.Queries["q0"].Types)
	})
}

func TestParseReconcile_Batch(t *testing.T) {
	tests := []struct {
		name    string
		queries string
		wantLen int
		wantErr bool
	}{
		{"EmptyObject", `{}`, 0, false},
		{"EmptyArray", `[]`, 0, false},
		{"Missing", ``, 0, false},
		{"TwoQueries", `{"a":{"query":"x"},"b":{"query":"y"}}`, 2, false},
		{"NotJSON", `{"a":`, 0, true},
		{"NotAMapping", `"text"`, 0, true},
		{"NonEmptyArray", `[{"query":"x"}]`, 0, true},
		{"EntryNotObject", `{"a":"x"}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, got, gotErr := capture(server.TriggerQueryAndBody, true)

			target := "/reconcile?queries=" + url.QueryEscape(tt.queries)
			if tt.queries == "" {
				target = "/reconcile?other=1"
			}
			_, err := app.Test(httptest.NewRequest("GET", target, nil))
			require.NoError(t, err)

			if tt.wantErr {
				require.Error(t, *gotErr)
				assert.Equal(t, 400, apierror.Code(*gotErr))
				return
			}
			require.NoError(t, *gotErr)
			batch, ok := (*got).(protocol.BatchRequest)
			require.True(t, ok)
			assert.NotNil(t, batch.Queries)
			assert.Len(t, batch.Queries, tt.wantLen)
		})
	}
}

func TestParseReconcile_Extend(t *testing.T) {
	extend := `{"ids":["1",2],"properties":[{"id":"birthDate"},"title"]}`

	t.Run("Extended", func(t *testing.T) {
		app, got, gotErr := capture(server.TriggerQueryAndBody, true)
		form := url.Values{"extend": {extend}, "queries": {`{"q":{"query":"x"}}`}}
		_, err := app.Test(postForm("/reconcile", form))
		require.NoError(t, err)
		require.NoError(t, *gotErr)

		assert.Equal(t, protocol.ExtendRequest{
			IDs:        []string{"1", "2"},
			Properties: []string{"birthDate", "title"},
		}, *got)
	})

	t.Run("BasicIgnoresExtend", func(t *testing.T) {
		app, got, gotErr := capture(server.TriggerQuery, false)
		_, err := app.Test(httptest.NewRequest("GET", "/reconcile?extend="+url.QueryEscape(extend), nil))
		require.NoError(t, err)
		require.NoError(t, *gotErr)
		assert.IsType(t, protocol.BatchRequest{}, *got)
	})

	t.Run("Malformed", func(t *testing.T) {
		app, _, gotErr := capture(server.TriggerQueryAndBody, true)
		_, err := app.Test(httptest.NewRequest("GET", "/reconcile?extend="+url.QueryEscape(`{"ids":`), nil))
		require.NoError(t, err)
		assert.Equal(t, 400, apierror.Code(*gotErr))
	})

	t.Run("BadProperty", func(t *testing.T) {
		app, _, gotErr := capture(server.TriggerQueryAndBody, true)
		_, err := app.Test(httptest.NewRequest("GET", "/reconcile?extend="+url.QueryEscape(`{"ids":["1"],"properties":[1]}`), nil))
		require.NoError(t, err)
		assert.Equal(t, 400, apierror.Code(*gotErr))
	})
}

func TestParseSuggestProposalPreview(t *testing.T) {
	var suggest protocol.SuggestRequest
	var proposal protocol.ProposalRequest
	var preview protocol.PreviewRequest

	app := fiber.New()
	app.Get("/suggest/:kind", func(c *fiber.Ctx) error {
		suggest = protocol.ParseSuggest(c)
		return nil
	})
	app.Get("/properties", func(c *fiber.Ctx) error {
		proposal = protocol.ParseProposal(c)
		return nil
	})
	app.Get("/preview", func(c *fiber.Ctx) error {
		preview = protocol.ParsePreview(c)
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/suggest/entity?prefix=Moz&cursor=20", nil))
	require.NoError(t, err)
	assert.Equal(t, protocol.SuggestRequest{Kind: protocol.SuggestEntity, Prefix: "Moz", Cursor: 20}, suggest)
	assert.Equal(t, "suggest-entity", suggest.Operation())

	_, err = app.Test(httptest.NewRequest("GET", "/suggest/type?prefix=per&cursor=abc", nil))
	require.NoError(t, err)
	assert.Equal(t, protocol.SuggestRequest{Kind: protocol.SuggestType, Prefix: "per"}, suggest)

	_, err = app.Test(httptest.NewRequest("GET", "/properties?type=person&limit=5", nil))
	require.NoError(t, err)
	assert.Equal(t, protocol.ProposalRequest{Type: "person", Limit: 5}, proposal)

	_, err = app.Test(httptest.NewRequest("GET", "/properties", nil))
	require.NoError(t, err)
	assert.Equal(t, protocol.ProposalRequest{Limit: math.MaxInt}, proposal)

	_, err = app.Test(httptest.NewRequest("GET", "/preview?id=42", nil))
	require.NoError(t, err)
	assert.Equal(t, protocol.PreviewRequest{ID: "42"}, preview)
}
