// internal/service/system/dict.go
package system

import (
	"context"

	"coreadmin-service/internal/domain/dict"
	xerrors "coreadmin-service/internal/pkg/errors"
	"coreadmin-service/internal/pkg/response"
)

// DictService manages dictionaries and their items.
type DictService struct {
	dicts dict.Repository
}

func NewDictService(dicts dict.Repository) *DictService {
	return &DictService{dicts: dicts}
}

func (s *DictService) List(ctx context.Context, description string) ([]dict.Resp, error) {
	dicts, err := s.dicts.List(ctx, description)
	if err != nil {
		return nil, err
	}
	out := make([]dict.Resp, 0, len(dicts))
	for _, d := range dicts {
		out = append(out, toDictResp(d))
	}
	return out, nil
}

func (s *DictService) Get(ctx context.Context, id int64) (*dict.Resp, error) {
	d, err := s.dicts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toDictResp(*d)
	return &resp, nil
}

func (s *DictService) Create(ctx context.Context, req dict.Req, operator int64) (int64, error) {
	d := &dict.Dict{
		Name:        req.Name,
		Code:        req.Code,
		Description: optStr(req.Description),
		CreateUser:  &operator,
	}
	if err := s.dicts.Create(ctx, d); err != nil {
		return 0, err
	}
	return d.ID, nil
}

func (s *DictService) Update(ctx context.Context, id int64, req dict.Req, operator int64) error {
	d, err := s.dicts.Get(ctx, id)
	if err != nil {
		return err
	}
	if d.IsSystem {
		return xerrors.Validation("system dictionaries cannot be modified")
	}
	d.Name = req.Name
	d.Code = req.Code
	d.Description = optStr(req.Description)
	d.UpdateUser = &operator
	return s.dicts.Update(ctx, d)
}

func (s *DictService) Delete(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		d, err := s.dicts.Get(ctx, id)
		if err != nil {
			if xerrors.Is(err, xerrors.ErrNotFound) {
				continue
			}
			return err
		}
		if d.IsSystem {
			return xerrors.Validation("system dictionaries cannot be deleted")
		}
	}
	return s.dicts.Delete(ctx, ids)
}

func (s *DictService) PageItems(ctx context.Context, q dict.ItemPageQuery) (*response.PageResult, error) {
	items, total, err := s.dicts.PageItems(ctx, q)
	if err != nil {
		return nil, err
	}
	list := make([]dict.ItemResp, 0, len(items))
	for _, it := range items {
		list = append(list, toDictItemResp(it))
	}
	return &response.PageResult{List: list, Total: total}, nil
}

func (s *DictService) GetItem(ctx context.Context, id int64) (*dict.ItemResp, error) {
	it, err := s.dicts.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toDictItemResp(*it)
	return &resp, nil
}

func (s *DictService) CreateItem(ctx context.Context, req dict.ItemReq, operator int64) (int64, error) {
	if _, err := s.dicts.Get(ctx, req.DictID); err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return 0, xerrors.Validation("dictionary does not exist")
		}
		return 0, err
	}
	it := &dict.Item{
		DictID:      req.DictID,
		Label:       req.Label,
		Value:       req.Value,
		Color:       optStr(req.Color),
		Sort:        req.Sort,
		Status:      req.Status,
		Description: optStr(req.Description),
		CreateUser:  &operator,
	}
	if it.Status == 0 {
		it.Status = 1
	}
	if err := s.dicts.CreateItem(ctx, it); err != nil {
		return 0, err
	}
	return it.ID, nil
}

func (s *DictService) UpdateItem(ctx context.Context, id int64, req dict.ItemReq, operator int64) error {
	it, err := s.dicts.GetItem(ctx, id)
	if err != nil {
		return err
	}
	it.Label = req.Label
	it.Value = req.Value
	it.Color = optStr(req.Color)
	it.Sort = req.Sort
	it.Status = req.Status
	it.Description = optStr(req.Description)
	it.UpdateUser = &operator
	return s.dicts.UpdateItem(ctx, it)
}

func (s *DictService) DeleteItems(ctx context.Context, ids []int64) error {
	return s.dicts.DeleteItems(ctx, ids)
}

// Options returns the enabled items of a dictionary as select-box options.
func (s *DictService) Options(ctx context.Context, code string) ([]dict.Option, error) {
	items, err := s.dicts.ListItemsByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	out := make([]dict.Option, 0, len(items))
	for _, it := range items {
		out = append(out, dict.Option{
			Label: it.Label,
			Value: it.Value,
			Color: strVal(it.Color),
		})
	}
	return out, nil
}

func toDictResp(d dict.Dict) dict.Resp {
	return dict.Resp{
		ID:          d.ID,
		Name:        d.Name,
		Code:        d.Code,
		Description: strVal(d.Description),
		IsSystem:    d.IsSystem,
		CreateTime:  formatTime(d.CreateTime),
		UpdateTime:  formatTimePtr(d.UpdateTime),
	}
}

func toDictItemResp(it dict.Item) dict.ItemResp {
	return dict.ItemResp{
		ID:          it.ID,
		DictID:      it.DictID,
		Label:       it.Label,
		Value:       it.Value,
		Color:       strVal(it.Color),
		Sort:        it.Sort,
		Status:      it.Status,
		Description: strVal(it.Description),
		CreateTime:  formatTime(it.CreateTime),
		UpdateTime:  formatTimePtr(it.UpdateTime),
	}
}
