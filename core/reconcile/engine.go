package reconcile

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"arche-openrefine/core/database"
	"arche-openrefine/core/profile"
	"arche-openrefine/core/sqlbuilder"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// labelChunkSize bounds the number of ids bound into one label query.
const labelChunkSize = 1000

// Engine runs reconciliation and typeahead queries against the datastore.
// It holds no per-request state and is safe for concurrent use.
type Engine struct {
	db      *gorm.DB
	profile *profile.Profile
	dialect database.Dialect
	logger  *zap.Logger
}

// NewEngine creates an engine bound to a connection pool and a profile.
func NewEngine(db *gorm.DB, p *profile.Profile, logger *zap.Logger) *Engine {
	return &Engine{
		db:      db,
		profile: p,
		dialect: database.DialectOf(db),
		logger:  logger,
	}
}

// Profile returns the profile the engine scores with.
func (e *Engine) Profile() *profile.Profile {
	return e.profile
}

type hitRow struct {
	ID       string
	Property string
	Raw      string
}

type labelRow struct {
	ID       string
	Property string
	Lang     string
	Value    string
}

type idRow struct {
	ID string
}

// labels are the localizable fields of one entity.
type labels struct {
	types        []string
	names        map[string]string
	descriptions map[string]string
}

// FindMatches returns the candidates of q sorted by descending score.
// Candidates are entities of one of q.Types whose indexed text matches q.Text;
// every matching index segment contributes one feature.
func (e *Engine) FindMatches(ctx context.Context, q Query) ([]Candidate, error) {
	if q.Limit <= 0 || len(q.Types) == 0 || strings.TrimSpace(q.Text) == "" {
		return []Candidate{}, nil
	}

	schema := e.profile.Schema
	part := sqlbuilder.New("SELECT COALESCE(m1.id, f.iid) AS id, COALESCE(m1.property, "+e.dialect.Text()+") AS property, f.raw AS raw", schema.ID).
		Append(" FROM full_text_search f LEFT JOIN metadata m1 ON m1.mid = f.mid WHERE "+e.dialect.FullText("f"), q.Text).
		AppendPart(e.typeFilter("COALESCE(m1.id, f.iid)", q.Types))

	sql, args, err := part.Build()
	if err != nil {
		return nil, err
	}

	var hits []hitRow
	if err := e.db.WithContext(ctx).Raw(sql, args...).Scan(&hits).Error; err != nil {
		return nil, fmt.Errorf("failed to query full text index: %w", err)
	}

	var order []string
	byID := make(map[string]*Candidate)
	for _, h := range hits {
		c, ok := byID[h.ID]
		if !ok {
			c = &Candidate{ID: h.ID, Match: true}
			byID[h.ID] = c
			order = append(order, h.ID)
		}
		value := e.profile.PartialMatchCoefficient
		if h.Raw == q.Text {
			value = 1.0
		}
		c.Features = append(c.Features, Feature{ID: h.Property, Value: value})
	}

	info, err := e.loadLabels(ctx, order)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(order))
	for _, id := range order {
		l, ok := info[id]
		if !ok || len(l.names) == 0 {
			continue
		}
		c := byID[id]
		c.Name = Localize(l.names, e.profile.PreferredLanguages)
		c.Description = Localize(l.descriptions, e.profile.PreferredLanguages)
		c.Type = e.typeRefs(l.types)
		c.Score = Score(c.Features, e.profile)
		candidates = append(candidates, *c)
	}

	e.logger.Debug("Match query executed",
		zap.String("query", q.Text),
		zap.Int("hits", len(hits)),
		zap.Int("candidates", len(candidates)))

	return Rank(candidates, q.Limit), nil
}

// SuggestEntities returns entities whose identifier or name starts with the
// query prefix, ordered by localized name. The first offset entries are
// skipped and at most limit are returned; limit <= 0 means no cap.
func (e *Engine) SuggestEntities(ctx context.Context, q SuggestQuery, offset, limit int) ([]Suggestion, error) {
	if len(q.Types) == 0 {
		return []Suggestion{}, nil
	}

	part := sqlbuilder.New("SELECT i.id AS id FROM identifiers i WHERE i.ids LIKE ?", q.Pattern).
		AppendPart(e.typeFilter("i.id", q.Types)).
		Append(" UNION SELECT m1.id AS id FROM metadata m1 WHERE m1.property = ? AND m1.value LIKE ?", e.profile.Schema.Name, q.Pattern).
		AppendPart(e.typeFilter("m1.id", q.Types))

	sql, args, err := part.Build()
	if err != nil {
		return nil, err
	}

	var rows []idRow
	if err := e.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query suggestions: %w", err)
	}

	ids := make([]string, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		ids = append(ids, r.ID)
	}

	info, err := e.loadLabels(ctx, ids)
	if err != nil {
		return nil, err
	}

	suggestions := make([]Suggestion, 0, len(ids))
	for _, id := range ids {
		l, ok := info[id]
		if !ok || len(l.names) == 0 {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			ID:          id,
			Name:        Localize(l.names, e.profile.PreferredLanguages),
			Description: Localize(l.descriptions, e.profile.PreferredLanguages),
			Notable:     e.typeRefs(l.types),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Name != suggestions[j].Name {
			return suggestions[i].Name < suggestions[j].Name
		}
		return suggestions[i].ID < suggestions[j].ID
	})

	e.logger.Debug("Suggest query executed",
		zap.String("prefix", q.Prefix),
		zap.Int("suggestions", len(suggestions)))

	offset = max(offset, 0)
	if offset >= len(suggestions) {
		return []Suggestion{}, nil
	}
	suggestions = suggestions[offset:]
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

// typeFilter restricts idExpr to entities declaring one of types.
// Type values are compared on their first 1000 characters, the indexed prefix.
func (e *Engine) typeFilter(idExpr string, types []string) *sqlbuilder.Part {
	return sqlbuilder.New(" AND EXISTS (SELECT 1 FROM metadata m2 WHERE m2.id = "+idExpr+" AND m2.property = ? AND ", e.profile.Schema.Type).
		In("substring(m2.value, 1, 1000)", types).
		Append(")")
}

// loadLabels reads types, names and descriptions of the given entities.
// Rows come in insertion order so the first value per language is stable.
func (e *Engine) loadLabels(ctx context.Context, ids []string) (map[string]*labels, error) {
	out := make(map[string]*labels, len(ids))
	schema := e.profile.Schema

	for start := 0; start < len(ids); start += labelChunkSize {
		chunk := ids[start:min(start+labelChunkSize, len(ids))]

		part := sqlbuilder.New("SELECT id, property, COALESCE(lang, '') AS lang, value FROM metadata WHERE ").
			In("property", []string{schema.Type, schema.Name, schema.Description}).
			Append(" AND ").
			In("id", chunk).
			Append(" ORDER BY mid")

		sql, args, err := part.Build()
		if err != nil {
			return nil, err
		}

		var rows []labelRow
		if err := e.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to load entity labels: %w", err)
		}

		for _, r := range rows {
			l, ok := out[r.ID]
			if !ok {
				l = &labels{names: map[string]string{}, descriptions: map[string]string{}}
				out[r.ID] = l
			}
			switch r.Property {
			case schema.Type:
				l.types = append(l.types, r.Value)
			case schema.Name:
				if _, ok := l.names[r.Lang]; !ok {
					l.names[r.Lang] = r.Value
				}
			case schema.Description:
				if _, ok := l.descriptions[r.Lang]; !ok {
					l.descriptions[r.Lang] = r.Value
				}
			}
		}
	}
	return out, nil
}

func (e *Engine) typeRefs(ids []string) []TypeRef {
	refs := make([]TypeRef, len(ids))
	for i, id := range ids {
		refs[i] = TypeRef{ID: id, Name: e.profile.TypeName(id)}
	}
	return refs
}
