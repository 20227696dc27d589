package reconcile

import (
	"math"

	"arche-openrefine/core/profile"
	"arche-openrefine/core/sqlbuilder"
	"arche-openrefine/core/utils"
)

// NewQuery decodes a reconciliation query payload. Only query, type,
// properties, limit and type_strict (or typeStrict) are read; scalars given
// where a list is expected become one element lists. A missing limit means
// no limit and an empty type list means every catalog type.
func NewQuery(payload map[string]any, p *profile.Profile) Query {
	q := Query{
		Text:   utils.ToString(payload["query"]),
		Types:  utils.ToStringSlice(payload["type"]),
		Limit:  math.MaxInt,
		Strict: StrictAll,
	}

	if v, ok := payload["limit"]; ok && v != nil {
		if n, ok := utils.ToInt(v); ok {
			q.Limit = max(n, 0)
		}
	}

	strict, ok := payload["type_strict"]
	if !ok {
		strict = payload["typeStrict"]
	}
	switch s := Strictness(utils.ToString(strict)); s {
	case StrictShould, StrictAll, StrictAny:
		q.Strict = s
	}

	q.Properties = decodeConstraints(payload["properties"])

	if len(q.Types) == 0 {
		q.Types = p.TypeIDs()
	}
	return q
}

func decodeConstraints(v any) []PropertyConstraint {
	var items []any
	switch x := v.(type) {
	case nil:
		return nil
	case []any:
		items = x
	default:
		items = []any{x}
	}

	out := make([]PropertyConstraint, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, PropertyConstraint{PID: utils.ToString(m["pid"]), V: m["v"]})
	}
	return out
}

// NewSuggestQuery builds a prefix lookup over every catalog type.
func NewSuggestQuery(prefix string, p *profile.Profile) SuggestQuery {
	return SuggestQuery{
		Prefix:  prefix,
		Pattern: sqlbuilder.EscapeLike(prefix) + "%",
		Types:   p.TypeIDs(),
	}
}
