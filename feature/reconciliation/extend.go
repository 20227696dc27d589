package reconciliation

import (
	"context"
	"fmt"

	"arche-openrefine/core/profile"
	"arche-openrefine/core/protocol"
	"arche-openrefine/core/sqlbuilder"

	"go.uber.org/zap"
)

// PropertyMeta names a column of a data extension or proposal response.
type PropertyMeta struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ExtendResponse carries property values per entity. Every requested entity
// has a slot for every retained property, empty when no value was found.
type ExtendResponse struct {
	Meta []PropertyMeta                           `json:"meta"`
	Rows map[string]map[string][]map[string]string `json:"rows"`
}

type extendRow struct {
	ID       string
	Property string
	Value    string
}

// Extend fetches the requested property values. Properties missing from the
// catalog are dropped silently. All retained properties are read with a single
// UNION ALL query.
func (s *Service) Extend(ctx context.Context, req protocol.ExtendRequest) (*ExtendResponse, error) {
	resp := &ExtendResponse{
		Meta: []PropertyMeta{},
		Rows: make(map[string]map[string][]map[string]string, len(req.IDs)),
	}

	var retained []profile.Property
	seen := make(map[string]struct{}, len(req.Properties))
	for _, pid := range req.Properties {
		prop, ok := s.profile.Property(pid)
		if !ok {
			continue
		}
		if _, dup := seen[pid]; dup {
			continue
		}
		seen[pid] = struct{}{}
		retained = append(retained, prop)
		resp.Meta = append(resp.Meta, PropertyMeta{ID: prop.ID, Name: prop.Label()})
	}

	for _, id := range req.IDs {
		slots := make(map[string][]map[string]string, len(retained))
		for _, prop := range retained {
			slots[prop.ID] = []map[string]string{}
		}
		resp.Rows[id] = slots
	}

	if len(retained) == 0 || len(req.IDs) == 0 {
		return resp, nil
	}

	sql, args, err := s.extendQuery(req.IDs, retained).Build()
	if err != nil {
		return nil, err
	}

	var rows []extendRow
	if err := s.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query property values: %w", err)
	}

	valueTypes := make(map[string]string, len(retained))
	for _, prop := range retained {
		valueTypes[prop.ID] = prop.ValueType
	}
	for _, r := range rows {
		slots, ok := resp.Rows[r.ID]
		if !ok {
			continue
		}
		slots[r.Property] = append(slots[r.Property], map[string]string{valueTypes[r.Property]: r.Value})
	}

	s.logger.Debug("Data extension query executed",
		zap.Int("ids", len(req.IDs)),
		zap.Int("properties", len(retained)),
		zap.Int("values", len(rows)))

	return resp, nil
}

func (s *Service) extendQuery(ids []string, props []profile.Property) *sqlbuilder.Part {
	part := sqlbuilder.New("WITH idf AS (SELECT DISTINCT id FROM identifiers WHERE ").
		In("id", ids).
		Append(")")

	for i, prop := range props {
		if i > 0 {
			part.Append(" UNION ALL")
		}
		if prop.Source == s.profile.Schema.ID {
			part.Append(" SELECT d.id AS id, "+s.dialect.Text()+" AS property, d.ids AS value FROM identifiers d JOIN idf ON idf.id = d.id", prop.ID)
			if prop.Filter != "" {
				part.Append(" WHERE "+s.dialect.Regexp("d.ids"), prop.Filter)
			}
			continue
		}
		part.Append(" SELECT d.id AS id, "+s.dialect.Text()+" AS property, d.value AS value FROM metadata d JOIN idf ON idf.id = d.id WHERE d.property = ?", prop.ID, prop.Source)
		if prop.Filter != "" {
			part.Append(" AND "+s.dialect.Regexp("d.value"), prop.Filter)
		}
	}
	return part
}
