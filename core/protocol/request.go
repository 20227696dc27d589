package protocol

import (
	"math"
	"strings"

	"arche-openrefine/core/apierror"
	"arche-openrefine/core/profile"
	"arche-openrefine/core/reconcile"
	"arche-openrefine/core/server"
	"arche-openrefine/core/utils"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

// Request is one parsed inbound operation. The concrete type selects the
// handler; it is resolved once and then passed along explicitly.
type Request interface {
	// Operation names the protocol operation, e.g. "reconcile-batch".
	Operation() string
}

// ManifestRequest asks for the service capability document.
type ManifestRequest struct{}

func (ManifestRequest) Operation() string { return "manifest" }

// BatchRequest maps caller chosen query ids to match queries.
type BatchRequest struct {
	Queries map[string]reconcile.Query
}

func (BatchRequest) Operation() string { return "reconcile-batch" }

// ExtendRequest asks for property values of known entities.
type ExtendRequest struct {
	IDs        []string
	Properties []string
}

func (ExtendRequest) Operation() string { return "data-extension" }

// SuggestKind is the typeahead flavour.
type SuggestKind string

const (
	SuggestEntity   SuggestKind = "entity"
	SuggestType     SuggestKind = "type"
	SuggestProperty SuggestKind = "property"
)

// SuggestRequest is a typeahead lookup.
type SuggestRequest struct {
	Kind   SuggestKind
	Prefix string
	// Cursor is the number of results to skip.
	Cursor int
}

func (r SuggestRequest) Operation() string { return "suggest-" + string(r.Kind) }

// ProposalRequest asks which extend properties apply to a type.
type ProposalRequest struct {
	// Type is a type id or name; empty means every property.
	Type string
	// Limit caps the list; math.MaxInt when the caller sent none.
	Limit int
}

func (ProposalRequest) Operation() string { return "property-proposal" }

// PreviewRequest asks for the preview page of an entity.
type PreviewRequest struct {
	ID string
}

func (PreviewRequest) Operation() string { return "preview" }

// ParseReconcile resolves a request on the reconcile path. A request carrying
// no parameters at all is a manifest request. Which parameters count depends
// on trigger: the query string only, or the query string and the form body.
// The extend parameter is only honoured when extended is set and wins over
// queries.
func ParseReconcile(c *fiber.Ctx, trigger string, extended bool, p *profile.Profile) (Request, error) {
	if countParams(c, trigger) == 0 {
		return ManifestRequest{}, nil
	}

	if extended {
		if raw := c.FormValue("extend"); raw != "" {
			return parseExtend(raw)
		}
	}
	return parseBatch(c.FormValue("queries"), p)
}

func countParams(c *fiber.Ctx, trigger string) int {
	n := c.Request().URI().QueryArgs().Len()
	if trigger != server.TriggerQueryAndBody {
		return n
	}
	n += c.Request().PostArgs().Len()
	if form, err := c.MultipartForm(); err == nil {
		n += len(form.Value) + len(form.File)
	}
	return n
}

func parseBatch(raw string, p *profile.Profile) (BatchRequest, error) {
	req := BatchRequest{Queries: map[string]reconcile.Query{}}
	if strings.TrimSpace(raw) == "" {
		return req, nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return req, apierror.BadRequest("Bad request", err)
	}

	switch v := decoded.(type) {
	case map[string]any:
		for id, q := range v {
			payload, ok := q.(map[string]any)
			if !ok {
				return req, apierror.BadRequest("Bad request: query "+id+" is not an object", nil)
			}
			req.Queries[id] = reconcile.NewQuery(payload, p)
		}
		return req, nil
	case []any:
		// An empty JSON array is how some clients spell an empty map
		if len(v) == 0 {
			return req, nil
		}
	}
	return req, apierror.BadRequest("Bad request: queries must be an object", nil)
}

type extendPayload struct {
	IDs        []any `json:"ids"`
	Properties []any `json:"properties"`
}

func parseExtend(raw string) (ExtendRequest, error) {
	var payload extendPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return ExtendRequest{}, apierror.BadRequest("Bad request", err)
	}

	req := ExtendRequest{
		IDs:        utils.ToStringSlice(payload.IDs),
		Properties: make([]string, 0, len(payload.Properties)),
	}
	for _, prop := range payload.Properties {
		switch v := prop.(type) {
		case map[string]any:
			req.Properties = append(req.Properties, utils.ToString(v["id"]))
		case string:
			req.Properties = append(req.Properties, v)
		default:
			return ExtendRequest{}, apierror.BadRequest("Bad request: property entries must be objects", nil)
		}
	}
	return req, nil
}

// ParseSuggest reads a typeahead request. An unparsable cursor counts as 0.
func ParseSuggest(c *fiber.Ctx) SuggestRequest {
	cursor, _ := utils.ToInt(c.Query("cursor"))
	return SuggestRequest{
		Kind:   SuggestKind(c.Params("kind")),
		Prefix: c.Query("prefix"),
		Cursor: max(cursor, 0),
	}
}

// ParseProposal reads a property proposal request.
func ParseProposal(c *fiber.Ctx) ProposalRequest {
	req := ProposalRequest{Type: c.Query("type"), Limit: math.MaxInt}
	if raw := c.Query("limit"); raw != "" {
		if n, ok := utils.ToInt(raw); ok {
			req.Limit = max(n, 0)
		}
	}
	return req
}

// ParsePreview reads a preview request.
func ParsePreview(c *fiber.Ctx) PreviewRequest {
	return PreviewRequest{ID: c.Query("id")}
}
