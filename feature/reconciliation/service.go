package reconciliation

import (
	"context"

	"arche-openrefine/core/database"
	"arche-openrefine/core/profile"
	"arche-openrefine/core/protocol"
	"arche-openrefine/core/reconcile"
	"arche-openrefine/core/server"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service answers reconcile, data extension, property proposal and preview
// requests.
type Service struct {
	db      *gorm.DB
	dialect database.Dialect
	engine  *reconcile.Engine
	profile *profile.Profile
	config  server.Config
	logger  *zap.Logger
}

// NewService creates a new reconciliation service.
func NewService(db *gorm.DB, p *profile.Profile, cfg server.Config, logger *zap.Logger) *Service {
	return &Service{
		db:      db,
		dialect: database.DialectOf(db),
		engine:  reconcile.NewEngine(db, p, logger),
		profile: p,
		config:  cfg,
		logger:  logger,
	}
}

// QueryResult is the answer to one query of a batch.
type QueryResult struct {
	Result []reconcile.Candidate `json:"result"`
}

// Manifest returns the service manifest.
func (s *Service) Manifest() Manifest {
	return BuildManifest(s.profile, s.config)
}

// Reconcile runs every query of the batch. One failing query fails the batch.
func (s *Service) Reconcile(ctx context.Context, req protocol.BatchRequest) (map[string]QueryResult, error) {
	out := make(map[string]QueryResult, len(req.Queries))
	for id, q := range req.Queries {
		candidates, err := s.engine.FindMatches(ctx, q)
		if err != nil {
			return nil, err
		}
		out[id] = QueryResult{Result: candidates}
	}
	return out, nil
}

// ProposalResponse lists the extend properties applicable to a type.
type ProposalResponse struct {
	Type       string         `json:"type"`
	Limit      int            `json:"limit"`
	Properties []PropertyMeta `json:"properties"`
}

// ProposeProperties filters the property catalog by type id or name. An
// empty type selects every property; an undeclared type selects none.
func (s *Service) ProposeProperties(req protocol.ProposalRequest) ProposalResponse {
	resp := ProposalResponse{Type: req.Type, Limit: req.Limit, Properties: []PropertyMeta{}}

	var typ profile.Type
	if req.Type != "" {
		var ok bool
		if typ, ok = s.profile.FindType(req.Type); !ok {
			return resp
		}
	}

	for _, prop := range s.profile.Properties {
		if len(resp.Properties) >= req.Limit {
			break
		}
		if req.Type == "" || prop.AppliesTo(typ) {
			resp.Properties = append(resp.Properties, PropertyMeta{ID: prop.ID, Name: prop.Label()})
		}
	}
	return resp
}

// PreviewURL returns the redirect target for an entity.
func (s *Service) PreviewURL(req protocol.PreviewRequest) string {
	return profile.Expand(s.profile.PreviewURL, req.ID)
}
