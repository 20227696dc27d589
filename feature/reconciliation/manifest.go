package reconciliation

import (
	"arche-openrefine/core/profile"
	"arche-openrefine/core/server"
)

// Manifest is the service capability document served on the bare reconcile path.
type Manifest struct {
	Versions        []string       `json:"versions"`
	Name            string         `json:"name"`
	IdentifierSpace string         `json:"identifierSpace"`
	SchemaSpace     string         `json:"schemaSpace"`
	DefaultTypes    []profile.Type `json:"defaultTypes"`
	View            View           `json:"view"`
	Preview         Preview        `json:"preview"`
	Suggest         SuggestSection `json:"suggest"`
	Extend          *ExtendSection `json:"extend,omitempty"`
}

type View struct {
	URL string `json:"url"`
}

type Preview struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ServiceDef points a client at a sub-service.
type ServiceDef struct {
	ServiceURL  string `json:"service_url"`
	ServicePath string `json:"service_path"`
}

type SuggestSection struct {
	Entity ServiceDef `json:"entity"`
	Type   ServiceDef `json:"type"`
}

type ExtendSection struct {
	ProposeProperties ServiceDef        `json:"propose_properties"`
	PropertySettings  []PropertySetting `json:"property_settings"`
}

// PropertySetting describes one extend property as a client form field.
type PropertySetting struct {
	Name     string           `json:"name"`
	Label    string           `json:"label"`
	Type     string           `json:"type"`
	HelpText string           `json:"help_text"`
	Choices  []profile.Choice `json:"choices,omitempty"`
}

var defaultTypes = []profile.Type{{ID: "defaultType", Name: "defaultType"}}

// BuildManifest derives the manifest from the profile and server settings.
// It has no other inputs, so equal settings give byte identical documents.
// Property defaults are not advertised.
func BuildManifest(p *profile.Profile, cfg server.Config) Manifest {
	base := cfg.ServiceURL()

	m := Manifest{
		Versions:        []string{"0.1", "0.2"},
		Name:            p.Name,
		IdentifierSpace: p.IdentifierSpace,
		SchemaSpace:     p.SchemaSpace,
		DefaultTypes:    p.Types,
		View:            View{URL: p.ViewURL},
		Preview: Preview{
			URL:    base + "preview?id=" + profile.IDPlaceholder,
			Width:  600,
			Height: 400,
		},
		Suggest: SuggestSection{
			Entity: ServiceDef{ServiceURL: base + "suggest", ServicePath: "/entity"},
			Type:   ServiceDef{ServiceURL: base + "suggest", ServicePath: "/type"},
		},
	}
	if len(m.DefaultTypes) == 0 {
		m.DefaultTypes = defaultTypes
	}

	if !cfg.Extended() {
		return m
	}

	settings := make([]PropertySetting, 0, len(p.Properties))
	for _, prop := range p.Properties {
		s := PropertySetting{
			Name:     prop.ID,
			Label:    prop.Label(),
			Type:     prop.SettingType,
			HelpText: prop.HelpText,
			Choices:  prop.Choices,
		}
		if s.HelpText == "" {
			s.HelpText = s.Label
		}
		settings = append(settings, s)
	}
	m.Extend = &ExtendSection{
		ProposeProperties: ServiceDef{ServiceURL: base + "properties", ServicePath: ""},
		PropertySettings:  settings,
	}
	return m
}
