package profile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"arche-openrefine/core/profile"
	"arche-openrefine/core/reconcile"
	"arche-openrefine/core/storage"
	"arche-openrefine/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
name: Archives
identifier_space: https://data.example.org/entity/
schema_space: https://data.example.org/schema/
view_url: https://data.example.org/entity/${id}
schema:
  id: dcterms:identifier
  type: rdf:type
  name: skos:prefLabel
  description: dcterms:description
preferred_languages: [EN, fr-ca]
partial_match_coefficient: 0.5
property_weights:
  skos:prefLabel: 2
types:
  - id: https://data.example.org/schema/Person
    name: Person
  - id: https://data.example.org/schema/Place
properties:
  - id: birthDate
    name: Birth date
    property: schema:birthDate
    value_type: date
    types: [Person]
  - id: identifier
    property: dcterms:identifier
    value_type: str
`

func TestParse_LanguagesMatchStoredTags(t *testing.T) {
	doc := strings.Replace(sample, "preferred_languages: [EN, fr-ca]", "preferred_languages: [en-us, iw, de]", 1)
	p, err := profile.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"en-us", "iw", "de"}, p.PreferredLanguages)
	assert.Equal(t, "American", reconcile.Localize(map[string]string{"de": "German", "en-us": "American"}, p.PreferredLanguages))
	assert.Equal(t, "Hebrew", reconcile.Localize(map[string]string{"de": "German", "iw": "Hebrew"}, p.PreferredLanguages))
}

func TestParse(t *testing.T) {
	p, err := profile.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, "Archives", p.Name)
	assert.Equal(t, []string{"EN", "fr-ca"}, p.PreferredLanguages)
	assert.Equal(t, "https://data.example.org/entity/{{id}}", p.ViewURL)
	assert.Equal(t, "https://data.example.org/entity/{{id}}/metadata", p.PreviewURL)
	assert.Equal(t, "https://data.example.org/schema/Place", p.Types[1].Name)

	assert.Equal(t, 2.0, p.Weight("skos:prefLabel"))
	assert.Equal(t, 1.0, p.Weight("dcterms:identifier"))
	assert.Equal(t, []string{"https://data.example.org/schema/Person", "https://data.example.org/schema/Place"}, p.TypeIDs())
	assert.Equal(t, "Person", p.TypeName("https://data.example.org/schema/Person"))
	assert.Equal(t, "urn:other", p.TypeName("urn:other"))
}

func TestParse_UnknownField(t *testing.T) {
	_, err := profile.Parse(strings.NewReader(sample + "\nunknown_key: 1\n"))
	assert.ErrorContains(t, err, "unknown_key")
}

func TestValidate(t *testing.T) {
	base := func() profile.Profile {
		return profile.Profile{
			Schema: profile.Schema{ID: "id", Type: "type", Name: "name", Description: "desc"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(p *profile.Profile)
		wantErr string
	}{
		{"Valid", func(p *profile.Profile) {}, ""},
		{"MissingSchema", func(p *profile.Profile) { p.Schema.Name = "" }, "schema"},
		{"Coefficient", func(p *profile.Profile) { p.PartialMatchCoefficient = 1.5 }, "partial_match_coefficient"},
		{"NegativeWeight", func(p *profile.Profile) { p.PropertyWeights = map[string]float64{"x": -1} }, "negative weight"},
		{"BadLanguage", func(p *profile.Profile) { p.PreferredLanguages = []string{"not a tag"} }, "preferred_languages"},
		{"DuplicateType", func(p *profile.Profile) { p.Types = []profile.Type{{ID: "a"}, {ID: "a"}} }, "duplicate id a"},
		{"IncompleteProperty", func(p *profile.Profile) { p.Properties = []profile.Property{{ID: "p"}} }, "value_type"},
		{"TemplateWithoutPlaceholder", func(p *profile.Profile) { p.ViewURL = "https://example.org/" }, "placeholder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestProperty(t *testing.T) {
	p, err := profile.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	birth, ok := p.Property("birthDate")
	require.True(t, ok)
	assert.Equal(t, "Birth date", birth.Label())

	person, ok := p.FindType("Person")
	require.True(t, ok)
	place, ok := p.FindType("https://data.example.org/schema/Place")
	require.True(t, ok)
	assert.True(t, birth.AppliesTo(person))
	assert.False(t, birth.AppliesTo(place))

	ident, ok := p.Property("identifier")
	require.True(t, ok)
	assert.Equal(t, "identifier", ident.Label())

	_, ok = p.Property("missing")
	assert.False(t, ok)
}

func TestExpand(t *testing.T) {
	assert.Equal(t, "https://x/42/metadata", profile.Expand("https://x/{{id}}/metadata", "42"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	p, err := profile.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Archives", p.Name)

	_, err = profile.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to open profile")
}

func TestLoad_Object(t *testing.T) {
	client := mocks.WithObject("openrefine", "profiles/archives.yaml", sample)

	p, err := profile.Load(context.Background(), profile.Config{Object: "profiles/archives.yaml"}, "openrefine",
		func() (storage.Client, error) { return client, nil })
	require.NoError(t, err)
	assert.Equal(t, "Archives", p.Name)
	client.AssertExpectations(t)
}

func TestLoad_ClientError(t *testing.T) {
	_, err := profile.Load(context.Background(), profile.Config{Object: "p.yaml"}, "openrefine",
		func() (storage.Client, error) { return nil, errors.New("no endpoint") })
	assert.ErrorContains(t, err, "no endpoint")
}
