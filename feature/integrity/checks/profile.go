package checks

import (
	"context"
	"fmt"

	"arche-openrefine/core/profile"
	"arche-openrefine/core/sqlbuilder"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ProfileReport lists profile catalog entries the datastore has no data for.
type ProfileReport struct {
	Matched bool `json:"matched"`
	// EmptyTypes are catalog types no entity declares.
	EmptyTypes []string `json:"empty_types"`
	// EmptyProperties are extend properties whose source property has no values.
	EmptyProperties []string `json:"empty_properties"`
}

type countRow struct {
	Name string
	N   int64
}

// CheckProfile counts the entities per catalog type and the values per extend
// property source. Both counts run concurrently.
func CheckProfile(ctx context.Context, db *gorm.DB, p *profile.Profile) (*ProfileReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &ProfileReport{EmptyTypes: []string{}, EmptyProperties: []string{}}

	var typeCounts, propCounts map[string]int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		typeCounts, err = countTypes(gctx, db, p)
		return err
	})
	g.Go(func() error {
		var err error
		propCounts, err = countProperties(gctx, db, p)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, t := range p.Types {
		if typeCounts[t.ID] == 0 {
			report.EmptyTypes = append(report.EmptyTypes, t.ID)
		}
	}
	for _, prop := range p.Properties {
		if prop.Source == p.Schema.ID {
			continue
		}
		if propCounts[prop.Source] == 0 {
			report.EmptyProperties = append(report.EmptyProperties, prop.ID)
		}
	}
	report.Matched = len(report.EmptyTypes) == 0 && len(report.EmptyProperties) == 0
	return report, nil
}

func countTypes(ctx context.Context, db *gorm.DB, p *profile.Profile) (map[string]int64, error) {
	if len(p.Types) == 0 {
		return map[string]int64{}, nil
	}
	part := sqlbuilder.New("SELECT substring(value, 1, 1000) AS name, COUNT(*) AS n FROM metadata WHERE property = ? AND ", p.Schema.Type).
		In("substring(value, 1, 1000)", p.TypeIDs()).
		Append(" GROUP BY 1")
	return count(ctx, db, part, "types")
}

func countProperties(ctx context.Context, db *gorm.DB, p *profile.Profile) (map[string]int64, error) {
	var sources []string
	seen := map[string]struct{}{}
	for _, prop := range p.Properties {
		if prop.Source == p.Schema.ID {
			continue
		}
		if _, ok := seen[prop.Source]; !ok {
			seen[prop.Source] = struct{}{}
			sources = append(sources, prop.Source)
		}
	}
	if len(sources) == 0 {
		return map[string]int64{}, nil
	}
	part := sqlbuilder.New("SELECT property AS name, COUNT(*) AS n FROM metadata WHERE ").
		In("property", sources).
		Append(" GROUP BY 1")
	return count(ctx, db, part, "properties")
}

func count(ctx context.Context, db *gorm.DB, part *sqlbuilder.Part, what string) (map[string]int64, error) {
	sql, args, err := part.Build()
	if err != nil {
		return nil, err
	}
	var rows []countRow
	if err := db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count %s: %w", what, err)
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Name] = r.N
	}
	return out, nil
}
