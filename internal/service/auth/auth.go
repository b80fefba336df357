// internal/service/auth/auth.go
package auth

import (
	"context"
	"strings"

	authdto "coreadmin-service/internal/domain/auth"
	"coreadmin-service/internal/domain/dept"
	"coreadmin-service/internal/domain/option"
	"coreadmin-service/internal/domain/rbac"
	"coreadmin-service/internal/domain/user"
	"coreadmin-service/internal/pkg/captcha"
	xerrors "coreadmin-service/internal/pkg/errors"
	"coreadmin-service/internal/pkg/online"
	"coreadmin-service/internal/pkg/security"
	"coreadmin-service/internal/pkg/token"

	"go.uber.org/zap"
)

const authTypeAccount = "ACCOUNT"

// Service drives the login/logout/session lifecycle.
type Service struct {
	users     user.Repository
	roles     rbac.RoleRepository
	menus     rbac.MenuRepository
	depts     dept.Repository
	flags     option.FlagSource
	captchas  *captcha.Store
	decryptor *security.RSADecryptor
	tokens    *token.Service
	online    *online.Store
	logger    *zap.Logger
}

func NewService(
	users user.Repository,
	roles rbac.RoleRepository,
	menus rbac.MenuRepository,
	depts dept.Repository,
	flags option.FlagSource,
	captchas *captcha.Store,
	decryptor *security.RSADecryptor,
	tokens *token.Service,
	onlineStore *online.Store,
	logger *zap.Logger,
) *Service {
	return &Service{
		users:     users,
		roles:     roles,
		menus:     menus,
		depts:     depts,
		flags:     flags,
		captchas:  captchas,
		decryptor: decryptor,
		tokens:    tokens,
		online:    onlineStore,
		logger:    logger,
	}
}

// Login runs the account login pipeline and returns a session token.
func (s *Service) Login(ctx context.Context, req authdto.LoginRequest) (*authdto.LoginResponse, error) {
	authType := strings.ToUpper(strings.TrimSpace(req.AuthType))
	if authType != "" && authType != authTypeAccount {
		return nil, xerrors.ErrUnsupportedAuthType
	}

	if err := s.checkCaptcha(ctx, req.UUID, req.Captcha); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.ClientID) == "" {
		return nil, xerrors.Validation("client id must not be blank")
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, xerrors.Validation("username must not be blank")
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, xerrors.Validation("password must not be blank")
	}

	password, err := s.decryptor.DecryptBase64(req.Password)
	if err != nil {
		return nil, xerrors.ErrPasswordDecrypt
	}

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !security.VerifyPassword(password, u.Password) {
		return nil, xerrors.ErrInvalidCredentials
	}
	if !u.IsEnabled() {
		return nil, xerrors.ErrAccountDisabled
	}

	tok, err := s.tokens.Generate(u.ID)
	if err != nil {
		return nil, err
	}

	s.online.RecordLogin(u.ID, u.Username, u.Nickname, req.ClientID, tok, req.IP, req.UserAgent)
	s.logger.Info("user logged in", zap.Int64("userId", u.ID), zap.String("username", u.Username))

	return &authdto.LoginResponse{Token: tok}, nil
}

// checkCaptcha enforces the login captcha when the option flag is on.
// A stored code is consumed on first lookup regardless of outcome.
func (s *Service) checkCaptcha(ctx context.Context, uuid, code string) error {
	enabled, err := s.flags.IsEnabled(ctx, option.LoginCaptchaEnabled)
	if err != nil {
		s.logger.Warn("captcha flag lookup failed", zap.Error(err))
		return nil
	}
	if !enabled {
		return nil
	}
	if strings.TrimSpace(code) == "" {
		return xerrors.Validation("captcha is required")
	}
	if strings.TrimSpace(uuid) == "" {
		return xerrors.Validation("captcha uuid is required")
	}
	stored, err := s.captchas.Get(ctx, uuid)
	if err != nil {
		return err
	}
	if stored == "" {
		return xerrors.ErrCaptchaExpired
	}
	// Single-use: consume the code before comparing so a wrong guess
	// cannot be retried against the same challenge.
	if err := s.captchas.Delete(ctx, uuid); err != nil {
		s.logger.Warn("captcha delete failed", zap.String("uuid", uuid), zap.Error(err))
	}
	if !strings.EqualFold(stored, strings.TrimSpace(code)) {
		return xerrors.ErrCaptchaIncorrect
	}
	return nil
}

// Logout removes the caller's session. Unknown tokens are a no-op.
func (s *Service) Logout(headerValue string) {
	tok := token.StripBearer(headerValue)
	s.online.RemoveByToken(tok)
}

// Kickout force-terminates another user's session. A caller cannot kick
// their own token.
func (s *Service) Kickout(callerToken, targetToken string) error {
	target := strings.TrimSpace(targetToken)
	if target == "" {
		return xerrors.Validation("token must not be blank")
	}
	caller := token.StripBearer(callerToken)
	if caller == target {
		return xerrors.ErrCannotKickSelf
	}
	s.online.RemoveByToken(target)
	return nil
}

// GetUserInfo assembles the "who am I" payload for an authenticated user.
func (s *Service) GetUserInfo(ctx context.Context, userID int64) (*authdto.UserInfo, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, xerrors.ErrUnauthorized
		}
		return nil, err
	}

	roles, err := s.roles.ListRolesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	perms, err := s.roles.ListPermissionsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	deptName, err := s.depts.GetName(ctx, u.DeptID)
	if err != nil {
		return nil, err
	}

	roleCodes := make([]string, 0, len(roles))
	for _, r := range roles {
		roleCodes = append(roleCodes, r.Code)
	}
	if perms == nil {
		perms = []string{}
	}

	info := &authdto.UserInfo{
		ID:               u.ID,
		Username:         u.Username,
		Nickname:         u.Nickname,
		Gender:           u.Gender,
		Email:            deref(u.Email),
		Phone:            deref(u.Phone),
		Avatar:           deref(u.Avatar),
		Description:      deref(u.Description),
		RegistrationDate: u.CreateTime.Format("2006-01-02"),
		DeptName:         deptName,
		Roles:            roleCodes,
		Permissions:      perms,
	}
	if u.PwdResetTime != nil {
		info.PwdResetTime = u.PwdResetTime.Format("2006-01-02 15:04:05")
	}
	return info, nil
}

// GetRoutes builds the front-end route tree for the user's roles.
func (s *Service) GetRoutes(ctx context.Context, userID int64) ([]*authdto.RouteItem, error) {
	roleIDs, err := s.roles.ListRoleIDsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	menus, err := s.menus.ListMenusByRoleIDs(ctx, roleIDs)
	if err != nil {
		return nil, err
	}
	return buildRouteTree(menus), nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
