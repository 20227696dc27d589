package profile

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// IDPlaceholder is the entity id marker in URL templates.
const IDPlaceholder = "{{id}}"

// Schema names the RDF properties holding the core entity fields.
type Schema struct {
	// ID is the identifier property. It is also the fallback feature
	// property for full-text hits that carry no metadata row.
	ID string `yaml:"id"`
	// Type is the class membership property.
	Type string `yaml:"type"`
	// Name is the label property.
	Name string `yaml:"name"`
	// Description is the description property.
	Description string `yaml:"description"`
}

// Type is an entry of the type catalog.
type Type struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Choice is a selectable value of a property setting.
type Choice struct {
	Name  string `yaml:"name" json:"name"`
	Value string `yaml:"value" json:"value"`
}

// Property is an entry of the extend-property catalog.
type Property struct {
	// ID is the property id exposed through the API.
	ID string `yaml:"id"`
	// Name is the display label; defaults to ID.
	Name string `yaml:"name"`
	// Source is the metadata property the values are read from. Equal to
	// Schema.ID means values come from the identifier table.
	Source string `yaml:"property"`
	// ValueType is the key wrapping each returned value, e.g. "str" or "date".
	ValueType string `yaml:"value_type"`
	// Filter is an optional regular expression values must match.
	Filter string `yaml:"filter"`
	// Types lists type ids or names the property applies to.
	Types []string `yaml:"types"`
	// SettingType is the form widget advertised in the manifest.
	SettingType string `yaml:"type"`
	// HelpText is shown next to the setting; defaults to the label.
	HelpText string `yaml:"help_text"`
	// Choices are the options of a select setting.
	Choices []Choice `yaml:"choices"`
	// Default is accepted for compatibility but never advertised.
	Default string `yaml:"default"`
}

// Label returns the display name of the property.
func (p Property) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// AppliesTo reports whether the property is declared for t (by id or name).
func (p Property) AppliesTo(t Type) bool {
	for _, x := range p.Types {
		if x == t.ID || x == t.Name {
			return true
		}
	}
	return false
}

// Profile describes a reconciliation data source: schema, scoring and catalogs.
type Profile struct {
	Name            string `yaml:"name"`
	IdentifierSpace string `yaml:"identifier_space"`
	SchemaSpace     string `yaml:"schema_space"`
	// ViewURL turns an entity id into a browsable page.
	ViewURL string `yaml:"view_url"`
	// PreviewURL is the redirect target of the preview endpoint.
	PreviewURL string `yaml:"preview_url"`

	Schema Schema `yaml:"schema"`

	// PreferredLanguages orders the languages tried by the localization resolver.
	PreferredLanguages []string `yaml:"preferred_languages"`
	// PartialMatchCoefficient is the feature value of a non-verbatim hit.
	PartialMatchCoefficient float64 `yaml:"partial_match_coefficient"`
	// PropertyWeights multiplies feature values per property; absent means 1.
	PropertyWeights map[string]float64 `yaml:"property_weights"`

	Types      []Type     `yaml:"types"`
	Properties []Property `yaml:"properties"`
}

// Weight returns the scoring multiplier of a property.
func (p *Profile) Weight(property string) float64 {
	if w, ok := p.PropertyWeights[property]; ok {
		return w
	}
	return 1
}

// TypeIDs lists the ids of the type catalog in declaration order.
func (p *Profile) TypeIDs() []string {
	ids := make([]string, len(p.Types))
	for i, t := range p.Types {
		ids[i] = t.ID
	}
	return ids
}

// TypeName returns the catalog name of a type id, or the id itself.
func (p *Profile) TypeName(id string) string {
	for _, t := range p.Types {
		if t.ID == id {
			return t.Name
		}
	}
	return id
}

// FindType looks a type up by id or name.
func (p *Profile) FindType(idOrName string) (Type, bool) {
	for _, t := range p.Types {
		if t.ID == idOrName || t.Name == idOrName {
			return t, true
		}
	}
	return Type{}, false
}

// Property returns the catalog entry with the given id.
func (p *Profile) Property(id string) (Property, bool) {
	for _, x := range p.Properties {
		if x.ID == id {
			return x, true
		}
	}
	return Property{}, false
}

// Validate checks the profile and normalizes it in place: URL templates use
// the {{id}} placeholder and the preview URL defaults to the entity metadata
// page in the identifier space. Preferred languages must be well-formed tags
// but are kept as written, they are compared verbatim with the lang column.
func (p *Profile) Validate() error {
	var errs []error

	if p.Schema.ID == "" || p.Schema.Type == "" || p.Schema.Name == "" || p.Schema.Description == "" {
		errs = append(errs, errors.New("schema: id, type, name and description properties are required"))
	}
	if p.PartialMatchCoefficient < 0 || p.PartialMatchCoefficient > 1 {
		errs = append(errs, fmt.Errorf("partial_match_coefficient %v is outside [0,1]", p.PartialMatchCoefficient))
	}
	for prop, w := range p.PropertyWeights {
		if w < 0 {
			errs = append(errs, fmt.Errorf("property_weights: %s has negative weight %v", prop, w))
		}
	}

	for _, l := range p.PreferredLanguages {
		if _, err := language.Parse(l); err != nil {
			errs = append(errs, fmt.Errorf("preferred_languages: %q: %w", l, err))
		}
	}

	seen := make(map[string]struct{}, len(p.Types))
	for i, t := range p.Types {
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("types[%d]: id is required", i))
			continue
		}
		if _, ok := seen[t.ID]; ok {
			errs = append(errs, fmt.Errorf("types[%d]: duplicate id %s", i, t.ID))
		}
		seen[t.ID] = struct{}{}
		if t.Name == "" {
			p.Types[i].Name = t.ID
		}
	}

	seen = make(map[string]struct{}, len(p.Properties))
	for i, prop := range p.Properties {
		if prop.ID == "" || prop.Source == "" || prop.ValueType == "" {
			errs = append(errs, fmt.Errorf("properties[%d]: id, property and value_type are required", i))
			continue
		}
		if _, ok := seen[prop.ID]; ok {
			errs = append(errs, fmt.Errorf("properties[%d]: duplicate id %s", i, prop.ID))
		}
		seen[prop.ID] = struct{}{}
	}

	if p.PreviewURL == "" && p.IdentifierSpace != "" {
		p.PreviewURL = p.IdentifierSpace + IDPlaceholder + "/metadata"
	}
	for _, tmpl := range []*string{&p.ViewURL, &p.PreviewURL} {
		*tmpl = normalizeTemplate(*tmpl)
		if *tmpl != "" && !strings.Contains(*tmpl, IDPlaceholder) {
			errs = append(errs, fmt.Errorf("url template has no placeholder %s: %s", IDPlaceholder, *tmpl))
		}
	}

	return errors.Join(errs...)
}

// Expand interpolates an entity id into a URL template.
func Expand(template, id string) string {
	return strings.ReplaceAll(template, IDPlaceholder, id)
}

// normalizeTemplate translates the ${id} spelling into {{id}}.
func normalizeTemplate(s string) string {
	return strings.ReplaceAll(s, "${id}", IDPlaceholder)
}
