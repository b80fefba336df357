// internal/service/system/menu.go
package system

import (
	"context"
	"sort"

	"coreadmin-service/internal/domain/rbac"
	xerrors "coreadmin-service/internal/pkg/errors"
)

// MenuService manages the menu catalogue.
type MenuService struct {
	menus rbac.MenuRepository
}

func NewMenuService(menus rbac.MenuRepository) *MenuService {
	return &MenuService{menus: menus}
}

// Tree returns the full menu management tree. Unlike the route tree this
// one includes buttons and disabled entries.
func (s *MenuService) Tree(ctx context.Context, title string) ([]*rbac.MenuResp, error) {
	menus, err := s.menus.ListMenus(ctx, title)
	if err != nil {
		return nil, err
	}
	return buildMenuTree(menus), nil
}

func (s *MenuService) Get(ctx context.Context, id int64) (*rbac.MenuResp, error) {
	m, err := s.menus.GetMenu(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMenuResp(*m), nil
}

func (s *MenuService) Create(ctx context.Context, req rbac.MenuReq, operator int64) (int64, error) {
	if req.ParentID != 0 {
		if _, err := s.menus.GetMenu(ctx, req.ParentID); err != nil {
			if xerrors.Is(err, xerrors.ErrNotFound) {
				return 0, xerrors.Validation("parent menu does not exist")
			}
			return 0, err
		}
	}
	m := menuFromReq(req)
	m.CreateUser = &operator
	if err := s.menus.CreateMenu(ctx, m); err != nil {
		return 0, err
	}
	return m.ID, nil
}

func (s *MenuService) Update(ctx context.Context, id int64, req rbac.MenuReq, operator int64) error {
	m, err := s.menus.GetMenu(ctx, id)
	if err != nil {
		return err
	}
	if req.ParentID == id {
		return xerrors.Validation("a menu cannot be its own parent")
	}
	updated := menuFromReq(req)
	updated.ID = m.ID
	updated.CreateUser = m.CreateUser
	updated.CreateTime = m.CreateTime
	updated.UpdateUser = &operator
	return s.menus.UpdateMenu(ctx, updated)
}

func (s *MenuService) Delete(ctx context.Context, ids []int64) error {
	return s.menus.DeleteMenus(ctx, ids)
}

func menuFromReq(req rbac.MenuReq) *rbac.Menu {
	status := req.Status
	if status == 0 {
		status = rbac.MenuStatusEnabled
	}
	return &rbac.Menu{
		ParentID:   req.ParentID,
		Title:      req.Title,
		Type:       req.Type,
		Path:       optStr(req.Path),
		Name:       optStr(req.Name),
		Component:  optStr(req.Component),
		Redirect:   optStr(req.Redirect),
		Icon:       optStr(req.Icon),
		IsExternal: req.IsExternal,
		IsCache:    req.IsCache,
		IsHidden:   req.IsHidden,
		Permission: optStr(req.Permission),
		Sort:       req.Sort,
		Status:     status,
	}
}

func toMenuResp(m rbac.Menu) *rbac.MenuResp {
	return &rbac.MenuResp{
		ID:         m.ID,
		ParentID:   m.ParentID,
		Title:      m.Title,
		Type:       m.Type,
		Path:       strVal(m.Path),
		Name:       strVal(m.Name),
		Component:  strVal(m.Component),
		Redirect:   strVal(m.Redirect),
		Icon:       strVal(m.Icon),
		IsExternal: m.IsExternal,
		IsCache:    m.IsCache,
		IsHidden:   m.IsHidden,
		Permission: strVal(m.Permission),
		Sort:       m.Sort,
		Status:     m.Status,
		CreateTime: formatTime(m.CreateTime),
		Children:   []*rbac.MenuResp{},
	}
}

func buildMenuTree(menus []rbac.Menu) []*rbac.MenuResp {
	nodes := make(map[int64]*rbac.MenuResp, len(menus))
	for _, m := range menus {
		nodes[m.ID] = toMenuResp(m)
	}

	var roots []*rbac.MenuResp
	for _, n := range nodes {
		parent, ok := nodes[n.ParentID]
		if !ok || n.ParentID == n.ID {
			roots = append(roots, n)
			continue
		}
		parent.Children = append(parent.Children, n)
	}
	if roots == nil {
		roots = []*rbac.MenuResp{}
	}
	sortMenuResps(roots)
	return roots
}

func sortMenuResps(items []*rbac.MenuResp) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Sort != items[j].Sort {
			return items[i].Sort < items[j].Sort
		}
		return items[i].ID < items[j].ID
	})
	for _, it := range items {
		sortMenuResps(it.Children)
	}
}
