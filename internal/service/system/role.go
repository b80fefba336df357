// internal/service/system/role.go
package system

import (
	"context"

	"coreadmin-service/internal/domain/rbac"
	xerrors "coreadmin-service/internal/pkg/errors"
)

// RoleService manages roles and their menu grants.
type RoleService struct {
	roles rbac.RoleRepository
}

func NewRoleService(roles rbac.RoleRepository) *RoleService {
	return &RoleService{roles: roles}
}

func (s *RoleService) List(ctx context.Context, name string) ([]rbac.RoleResp, error) {
	roles, err := s.roles.ListRoles(ctx, name)
	if err != nil {
		return nil, err
	}
	out := make([]rbac.RoleResp, 0, len(roles))
	for _, r := range roles {
		out = append(out, toRoleResp(&r, nil))
	}
	return out, nil
}

func (s *RoleService) Get(ctx context.Context, id int64) (*rbac.RoleResp, error) {
	r, err := s.roles.GetRole(ctx, id)
	if err != nil {
		return nil, err
	}
	menuIDs, err := s.roles.ListMenuIDsByRoleID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toRoleResp(r, menuIDs)
	return &resp, nil
}

func (s *RoleService) Create(ctx context.Context, req rbac.RoleReq, operator int64) (int64, error) {
	r := &rbac.Role{
		Name:        req.Name,
		Code:        req.Code,
		DataScope:   req.DataScope,
		Description: optStr(req.Description),
		Sort:        req.Sort,
		CreateUser:  &operator,
	}
	if err := s.roles.CreateRole(ctx, r); err != nil {
		return 0, err
	}
	if len(req.MenuIDs) > 0 {
		if err := s.roles.SetRoleMenus(ctx, r.ID, req.MenuIDs); err != nil {
			return 0, err
		}
	}
	return r.ID, nil
}

func (s *RoleService) Update(ctx context.Context, id int64, req rbac.RoleReq, operator int64) error {
	r, err := s.roles.GetRole(ctx, id)
	if err != nil {
		return err
	}
	if r.IsSystem {
		return xerrors.Validation("system roles cannot be modified")
	}
	r.Name = req.Name
	r.Code = req.Code
	r.DataScope = req.DataScope
	r.Description = optStr(req.Description)
	r.Sort = req.Sort
	r.UpdateUser = &operator
	if err := s.roles.UpdateRole(ctx, r); err != nil {
		return err
	}
	if req.MenuIDs != nil {
		return s.roles.SetRoleMenus(ctx, id, req.MenuIDs)
	}
	return nil
}

func (s *RoleService) Delete(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		r, err := s.roles.GetRole(ctx, id)
		if err != nil {
			if xerrors.Is(err, xerrors.ErrNotFound) {
				continue
			}
			return err
		}
		if r.IsSystem {
			return xerrors.Validation("system roles cannot be deleted")
		}
	}
	return s.roles.DeleteRoles(ctx, ids)
}

func toRoleResp(r *rbac.Role, menuIDs []int64) rbac.RoleResp {
	return rbac.RoleResp{
		ID:          r.ID,
		Name:        r.Name,
		Code:        r.Code,
		DataScope:   r.DataScope,
		Description: strVal(r.Description),
		Sort:        r.Sort,
		IsSystem:    r.IsSystem,
		MenuIDs:     menuIDs,
		CreateTime:  formatTime(r.CreateTime),
		UpdateTime:  formatTimePtr(r.UpdateTime),
	}
}
