package suggest

import (
	"context"
	"strings"

	"arche-openrefine/core/apierror"
	"arche-openrefine/core/profile"
	"arche-openrefine/core/protocol"
	"arche-openrefine/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// Service answers typeahead requests.
type Service struct {
	engine  *reconcile.Engine
	profile *profile.Profile
	limit   int
	logger  *zap.Logger
}

// NewService creates a suggest service. limit caps entity suggestions per
// page; 0 disables the cap.
func NewService(db *gorm.DB, p *profile.Profile, limit int, logger *zap.Logger) *Service {
	return &Service{
		engine:  reconcile.NewEngine(db, p, logger),
		profile: p,
		limit:   limit,
		logger:  logger,
	}
}

// Response wraps suggestions the way clients expect them.
type Response[T any] struct {
	Result []T `json:"result"`
}

// Suggest dispatches on the request kind. Property suggestions are not
// supported.
func (s *Service) Suggest(ctx context.Context, req protocol.SuggestRequest) (any, error) {
	switch req.Kind {
	case protocol.SuggestEntity:
		return s.Entities(ctx, req)
	case protocol.SuggestType:
		return s.Types(req), nil
	default:
		return nil, apierror.NotFound("Unsupported suggest type " + string(req.Kind))
	}
}

// Entities looks up entities by identifier or name prefix.
func (s *Service) Entities(ctx context.Context, req protocol.SuggestRequest) (*Response[reconcile.Suggestion], error) {
	q := reconcile.NewSuggestQuery(req.Prefix, s.profile)
	result, err := s.engine.SuggestEntities(ctx, q, req.Cursor, s.limit)
	if err != nil {
		return nil, apierror.Internal("Suggest failed", err)
	}
	return &Response[reconcile.Suggestion]{Result: result}, nil
}

// Types matches the prefix case-insensitively against catalog type ids and
// names. The cursor is ignored.
func (s *Service) Types(req protocol.SuggestRequest) *Response[profile.Type] {
	fold := cases.Fold()
	prefix := fold.String(req.Prefix)

	result := []profile.Type{}
	for _, t := range s.profile.Types {
		if strings.HasPrefix(fold.String(t.ID), prefix) || strings.HasPrefix(fold.String(t.Name), prefix) {
			result = append(result, t)
		}
	}
	return &Response[profile.Type]{Result: result}
}
