// internal/service/system/option.go
package system

import (
	"context"

	"coreadmin-service/internal/domain/option"
)

// OptionService manages system option flags.
type OptionService struct {
	options option.Repository
}

func NewOptionService(options option.Repository) *OptionService {
	return &OptionService{options: options}
}

func (s *OptionService) List(ctx context.Context, category string) ([]option.Resp, error) {
	opts, err := s.options.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	out := make([]option.Resp, 0, len(opts))
	for _, o := range opts {
		out = append(out, option.Resp{
			ID:          o.ID,
			Name:        o.Name,
			Code:        o.Code,
			Value:       o.EffectiveValue(),
			Description: strVal(o.Description),
		})
	}
	return out, nil
}

func (s *OptionService) Update(ctx context.Context, reqs []option.UpdateReq, operator int64) error {
	for _, req := range reqs {
		if err := s.options.UpdateValue(ctx, req.Code, req.Value, operator); err != nil {
			return err
		}
	}
	return nil
}

func (s *OptionService) Reset(ctx context.Context, req option.ResetReq) error {
	return s.options.ResetValue(ctx, req.Category, req.Code)
}
