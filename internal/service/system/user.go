// internal/service/system/user.go
package system

import (
	"context"

	"coreadmin-service/internal/domain/dept"
	"coreadmin-service/internal/domain/rbac"
	"coreadmin-service/internal/domain/user"
	xerrors "coreadmin-service/internal/pkg/errors"
	"coreadmin-service/internal/pkg/response"
	"coreadmin-service/internal/pkg/security"
)

// UserService manages user accounts and their role assignments.
type UserService struct {
	users     user.Repository
	roles     rbac.RoleRepository
	depts     dept.Repository
	decryptor *security.RSADecryptor
}

func NewUserService(users user.Repository, roles rbac.RoleRepository, depts dept.Repository, decryptor *security.RSADecryptor) *UserService {
	return &UserService{users: users, roles: roles, depts: depts, decryptor: decryptor}
}

func (s *UserService) Page(ctx context.Context, q user.PageQuery) (*response.PageResult, error) {
	users, total, err := s.users.Page(ctx, q)
	if err != nil {
		return nil, err
	}
	list := make([]user.Resp, 0, len(users))
	for _, u := range users {
		resp, err := s.toResp(ctx, u)
		if err != nil {
			return nil, err
		}
		list = append(list, *resp)
	}
	return &response.PageResult{List: list, Total: total}, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*user.Resp, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResp(ctx, u)
}

func (s *UserService) Create(ctx context.Context, req user.CreateReq, operator int64) (int64, error) {
	taken, err := s.users.ExistsByUsername(ctx, req.Username, 0)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, xerrors.Validation("username already exists")
	}

	password := req.Password
	if password != "" {
		// Management console sends passwords RSA-encrypted, same as login.
		password, err = s.decryptor.DecryptBase64(req.Password)
		if err != nil {
			return 0, xerrors.ErrPasswordDecrypt
		}
	} else {
		password = "123456"
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		return 0, err
	}

	u := &user.User{
		Username:    req.Username,
		Nickname:    req.Nickname,
		Password:    hash,
		Gender:      req.Gender,
		Email:       optStr(req.Email),
		Phone:       optStr(req.Phone),
		Description: optStr(req.Description),
		Status:      req.Status,
		DeptID:      req.DeptID,
		CreateUser:  &operator,
	}
	if u.Status == 0 {
		u.Status = user.StatusEnabled
	}
	if err := s.users.Create(ctx, u); err != nil {
		return 0, err
	}
	if len(req.RoleIDs) > 0 {
		if err := s.roles.SetUserRoles(ctx, u.ID, req.RoleIDs); err != nil {
			return 0, err
		}
	}
	return u.ID, nil
}

func (s *UserService) Update(ctx context.Context, id int64, req user.UpdateReq, operator int64) error {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	u.Nickname = req.Nickname
	u.Gender = req.Gender
	u.Email = optStr(req.Email)
	u.Phone = optStr(req.Phone)
	u.Description = optStr(req.Description)
	u.Status = req.Status
	u.DeptID = req.DeptID
	u.UpdateUser = &operator
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}
	if req.RoleIDs != nil {
		return s.roles.SetUserRoles(ctx, id, req.RoleIDs)
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		u, err := s.users.FindByID(ctx, id)
		if err != nil {
			if xerrors.Is(err, xerrors.ErrNotFound) {
				continue
			}
			return err
		}
		if u.IsSystem {
			return xerrors.Validation("system users cannot be deleted")
		}
	}
	return s.users.Delete(ctx, ids)
}

// ResetPassword replaces a user's password with a new RSA-encrypted one.
func (s *UserService) ResetPassword(ctx context.Context, id int64, encrypted string) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	password, err := s.decryptor.DecryptBase64(encrypted)
	if err != nil {
		return xerrors.ErrPasswordDecrypt
	}
	hash, err := security.HashPassword(password)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, id, hash)
}

func (s *UserService) UpdateRoles(ctx context.Context, id int64, roleIDs []int64) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	return s.roles.SetUserRoles(ctx, id, roleIDs)
}

// LabelValue is a select-box entry.
type LabelValue struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// Options returns every user as a select-box option.
func (s *UserService) Options(ctx context.Context) ([]LabelValue, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]LabelValue, 0, len(users))
	for _, u := range users {
		opts = append(opts, LabelValue{Label: u.Nickname, Value: u.ID})
	}
	return opts, nil
}

func (s *UserService) toResp(ctx context.Context, u *user.User) (*user.Resp, error) {
	roles, err := s.roles.ListRolesByUserID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	deptName, err := s.depts.GetName(ctx, u.DeptID)
	if err != nil {
		return nil, err
	}

	roleIDs := make([]int64, 0, len(roles))
	roleNames := make([]string, 0, len(roles))
	for _, r := range roles {
		roleIDs = append(roleIDs, r.ID)
		roleNames = append(roleNames, r.Name)
	}

	resp := &user.Resp{
		ID:          u.ID,
		Username:    u.Username,
		Nickname:    u.Nickname,
		Gender:      u.Gender,
		Email:       strVal(u.Email),
		Phone:       strVal(u.Phone),
		Avatar:      strVal(u.Avatar),
		Description: strVal(u.Description),
		Status:      u.Status,
		IsSystem:    u.IsSystem,
		DeptID:      u.DeptID,
		DeptName:    deptName,
		RoleIDs:     roleIDs,
		RoleNames:   roleNames,
		CreateTime:  formatTime(u.CreateTime),
	}
	if u.UpdateTime != nil {
		resp.UpdateTime = formatTime(*u.UpdateTime)
	}
	return resp, nil
}
