// internal/service/system/dept.go
package system

import (
	"context"
	"sort"

	"coreadmin-service/internal/domain/dept"
	xerrors "coreadmin-service/internal/pkg/errors"
)

// DeptService manages the department tree.
type DeptService struct {
	depts dept.Repository
}

func NewDeptService(depts dept.Repository) *DeptService {
	return &DeptService{depts: depts}
}

func (s *DeptService) Tree(ctx context.Context, name string) ([]*dept.Resp, error) {
	depts, err := s.depts.List(ctx, name)
	if err != nil {
		return nil, err
	}
	return buildDeptTree(depts), nil
}

func (s *DeptService) Get(ctx context.Context, id int64) (*dept.Resp, error) {
	d, err := s.depts.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDeptResp(*d), nil
}

func (s *DeptService) Create(ctx context.Context, req dept.Req, operator int64) (int64, error) {
	if req.ParentID != 0 {
		if _, err := s.depts.Get(ctx, req.ParentID); err != nil {
			if xerrors.Is(err, xerrors.ErrNotFound) {
				return 0, xerrors.Validation("parent department does not exist")
			}
			return 0, err
		}
	}
	d := &dept.Dept{
		ParentID:    req.ParentID,
		Name:        req.Name,
		Sort:        req.Sort,
		Status:      req.Status,
		Description: optStr(req.Description),
		CreateUser:  &operator,
	}
	if d.Status == 0 {
		d.Status = 1
	}
	if err := s.depts.Create(ctx, d); err != nil {
		return 0, err
	}
	return d.ID, nil
}

func (s *DeptService) Update(ctx context.Context, id int64, req dept.Req, operator int64) error {
	d, err := s.depts.Get(ctx, id)
	if err != nil {
		return err
	}
	if d.IsSystem {
		return xerrors.Validation("system departments cannot be modified")
	}
	if req.ParentID == id {
		return xerrors.Validation("a department cannot be its own parent")
	}
	d.ParentID = req.ParentID
	d.Name = req.Name
	d.Sort = req.Sort
	d.Status = req.Status
	d.Description = optStr(req.Description)
	d.UpdateUser = &operator
	return s.depts.Update(ctx, d)
}

func (s *DeptService) Delete(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		d, err := s.depts.Get(ctx, id)
		if err != nil {
			if xerrors.Is(err, xerrors.ErrNotFound) {
				continue
			}
			return err
		}
		if d.IsSystem {
			return xerrors.Validation("system departments cannot be deleted")
		}
		hasChildren, err := s.depts.HasChildren(ctx, id)
		if err != nil {
			return err
		}
		if hasChildren {
			return xerrors.Validation("department has children, delete them first")
		}
	}
	return s.depts.Delete(ctx, ids)
}

func toDeptResp(d dept.Dept) *dept.Resp {
	return &dept.Resp{
		ID:          d.ID,
		ParentID:    d.ParentID,
		Name:        d.Name,
		Sort:        d.Sort,
		Status:      d.Status,
		IsSystem:    d.IsSystem,
		Description: strVal(d.Description),
		CreateTime:  formatTime(d.CreateTime),
		UpdateTime:  formatTimePtr(d.UpdateTime),
		Children:    []*dept.Resp{},
	}
}

func buildDeptTree(depts []dept.Dept) []*dept.Resp {
	nodes := make(map[int64]*dept.Resp, len(depts))
	for _, d := range depts {
		nodes[d.ID] = toDeptResp(d)
	}

	var roots []*dept.Resp
	for _, n := range nodes {
		parent, ok := nodes[n.ParentID]
		if !ok || n.ParentID == n.ID {
			roots = append(roots, n)
			continue
		}
		parent.Children = append(parent.Children, n)
	}
	if roots == nil {
		roots = []*dept.Resp{}
	}
	sortDeptResps(roots)
	return roots
}

func sortDeptResps(items []*dept.Resp) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Sort != items[j].Sort {
			return items[i].Sort < items[j].Sort
		}
		return items[i].ID < items[j].ID
	})
	for _, it := range items {
		sortDeptResps(it.Children)
	}
}
