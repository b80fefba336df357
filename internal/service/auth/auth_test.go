// internal/service/auth/auth_test.go
package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"testing"
	"time"

	authdto "coreadmin-service/internal/domain/auth"
	"coreadmin-service/internal/domain/dept"
	"coreadmin-service/internal/domain/rbac"
	"coreadmin-service/internal/domain/user"
	xerrors "coreadmin-service/internal/pkg/errors"
	"coreadmin-service/internal/pkg/online"
	"coreadmin-service/internal/pkg/security"
	"coreadmin-service/internal/pkg/token"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ---- fakes ----

type fakeUserRepo struct {
	byUsername map[string]*user.User
	byID       map[int64]*user.User
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*user.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeUserRepo) ExistsByUsername(context.Context, string, int64) (bool, error) {
	return false, nil
}

func (f *fakeUserRepo) Page(context.Context, user.PageQuery) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) ListAll(context.Context) ([]*user.User, error) { return nil, nil }
func (f *fakeUserRepo) Create(context.Context, *user.User) error      { return nil }
func (f *fakeUserRepo) Update(context.Context, *user.User) error      { return nil }
func (f *fakeUserRepo) Delete(context.Context, []int64) error         { return nil }
func (f *fakeUserRepo) UpdatePassword(context.Context, int64, string) error {
	return nil
}

type fakeRoleRepo struct {
	roles   []rbac.Role
	perms   []string
	roleIDs []int64
}

func (f *fakeRoleRepo) ListRoles(context.Context, string) ([]rbac.Role, error) { return f.roles, nil }
func (f *fakeRoleRepo) GetRole(context.Context, int64) (*rbac.Role, error) {
	return nil, xerrors.ErrNotFound
}
func (f *fakeRoleRepo) CreateRole(context.Context, *rbac.Role) error { return nil }
func (f *fakeRoleRepo) UpdateRole(context.Context, *rbac.Role) error { return nil }
func (f *fakeRoleRepo) DeleteRoles(context.Context, []int64) error   { return nil }
func (f *fakeRoleRepo) ListRolesByUserID(context.Context, int64) ([]rbac.Role, error) {
	return f.roles, nil
}
func (f *fakeRoleRepo) ListPermissionsByUserID(context.Context, int64) ([]string, error) {
	return f.perms, nil
}
func (f *fakeRoleRepo) ListRoleIDsByUserID(context.Context, int64) ([]int64, error) {
	return f.roleIDs, nil
}
func (f *fakeRoleRepo) SetUserRoles(context.Context, int64, []int64) error { return nil }
func (f *fakeRoleRepo) ListMenuIDsByRoleID(context.Context, int64) ([]int64, error) {
	return nil, nil
}
func (f *fakeRoleRepo) SetRoleMenus(context.Context, int64, []int64) error { return nil }

type fakeMenuRepo struct {
	menus []rbac.Menu
}

func (f *fakeMenuRepo) ListMenus(context.Context, string) ([]rbac.Menu, error) {
	return f.menus, nil
}
func (f *fakeMenuRepo) GetMenu(context.Context, int64) (*rbac.Menu, error) {
	return nil, xerrors.ErrNotFound
}
func (f *fakeMenuRepo) CreateMenu(context.Context, *rbac.Menu) error { return nil }
func (f *fakeMenuRepo) UpdateMenu(context.Context, *rbac.Menu) error { return nil }
func (f *fakeMenuRepo) DeleteMenus(context.Context, []int64) error   { return nil }
func (f *fakeMenuRepo) ListMenusByRoleIDs(context.Context, []int64) ([]rbac.Menu, error) {
	return f.menus, nil
}

type fakeDeptRepo struct {
	names map[int64]string
}

func (f *fakeDeptRepo) List(context.Context, string) ([]dept.Dept, error) { return nil, nil }
func (f *fakeDeptRepo) Get(context.Context, int64) (*dept.Dept, error) {
	return nil, xerrors.ErrNotFound
}
func (f *fakeDeptRepo) GetName(_ context.Context, id int64) (string, error) {
	return f.names[id], nil
}
func (f *fakeDeptRepo) Create(context.Context, *dept.Dept) error      { return nil }
func (f *fakeDeptRepo) Update(context.Context, *dept.Dept) error      { return nil }
func (f *fakeDeptRepo) Delete(context.Context, []int64) error         { return nil }
func (f *fakeDeptRepo) HasChildren(context.Context, int64) (bool, error) {
	return false, nil
}

type fakeFlags struct {
	enabled bool
}

func (f *fakeFlags) IsEnabled(context.Context, string) (bool, error) {
	return f.enabled, nil
}

// ---- fixture ----

type fixture struct {
	svc    *Service
	pub    *rsa.PublicKey
	online *online.Store
	tokens *token.Service
}

func newFixture(t *testing.T, users *fakeUserRepo) *fixture {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)
	decryptor, err := security.NewRSADecryptorFromBase64(base64.StdEncoding.EncodeToString(der))
	require.NoError(t, err)

	tokens := token.NewService(token.Config{Secret: "test-secret", TTL: time.Hour})
	onlineStore := online.NewStore()

	svc := NewService(
		users,
		&fakeRoleRepo{
			roles:   []rbac.Role{{ID: 1, Name: "Admin", Code: "admin"}},
			perms:   []string{"system:user:list"},
			roleIDs: []int64{1},
		},
		&fakeMenuRepo{},
		&fakeDeptRepo{names: map[int64]string{5: "Engineering"}},
		&fakeFlags{enabled: false},
		nil, // captcha store unused while the flag is off
		decryptor,
		tokens,
		onlineStore,
		zap.NewNop(),
	)
	return &fixture{svc: svc, pub: &priv.PublicKey, online: onlineStore, tokens: tokens}
}

func (f *fixture) encrypt(t *testing.T, plaintext string) string {
	t.Helper()
	cipherBytes, err := rsa.EncryptPKCS1v15(rand.Reader, f.pub, []byte(plaintext))
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(cipherBytes)
}

func testUser(t *testing.T, password string) *user.User {
	t.Helper()
	hash, err := security.HashPassword(password)
	require.NoError(t, err)
	return &user.User{
		ID:       10,
		Username: "admin",
		Nickname: "Administrator",
		Password: hash,
		Status:   user.StatusEnabled,
		DeptID:   5,
	}
}

func usersWith(u *user.User) *fakeUserRepo {
	return &fakeUserRepo{
		byUsername: map[string]*user.User{u.Username: u},
		byID:       map[int64]*user.User{u.ID: u},
	}
}

// ---- tests ----

func TestLoginSucceeds(t *testing.T) {
	t.Parallel()
	u := testUser(t, "admin123")
	f := newFixture(t, usersWith(u))

	resp, err := f.svc.Login(context.Background(), authdto.LoginRequest{
		ClientID: "web",
		Username: "admin",
		Password: f.encrypt(t, "admin123"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims := f.tokens.Parse(resp.Token)
	require.NotNil(t, claims)
	require.Equal(t, int64(10), claims.UserID)

	list, total := f.online.List("", nil, nil, 1, 10)
	require.Equal(t, int64(1), total)
	require.Equal(t, "admin", list[0].Username)
	require.Equal(t, resp.Token, list[0].Token)
}

func TestLoginRejectsUnsupportedAuthType(t *testing.T) {
	t.Parallel()
	f := newFixture(t, usersWith(testUser(t, "admin123")))

	_, err := f.svc.Login(context.Background(), authdto.LoginRequest{
		AuthType: "EMAIL",
		ClientID: "web",
		Username: "admin",
		Password: f.encrypt(t, "admin123"),
	})
	require.ErrorIs(t, err, xerrors.ErrUnsupportedAuthType)
}

func TestLoginAcceptsAccountAuthType(t *testing.T) {
	t.Parallel()
	f := newFixture(t, usersWith(testUser(t, "admin123")))

	for _, authType := range []string{"", "ACCOUNT", "account"} {
		_, err := f.svc.Login(context.Background(), authdto.LoginRequest{
			AuthType: authType,
			ClientID: "web",
			Username: "admin",
			Password: f.encrypt(t, "admin123"),
		})
		require.NoError(t, err, authType)
	}
}

func TestLoginRejectsBlankFields(t *testing.T) {
	t.Parallel()
	f := newFixture(t, usersWith(testUser(t, "admin123")))

	cases := []authdto.LoginRequest{
		{ClientID: "", Username: "admin", Password: "x"},
		{ClientID: "web", Username: "  ", Password: "x"},
		{ClientID: "web", Username: "admin", Password: ""},
	}
	for _, req := range cases {
		_, err := f.svc.Login(context.Background(), req)
		require.Error(t, err)
		appErr := xerrors.AsAppError(err)
		require.NotNil(t, appErr)
		require.Equal(t, "400", appErr.Code)
	}
}

func TestLoginRejectsUndecryptablePassword(t *testing.T) {
	t.Parallel()
	f := newFixture(t, usersWith(testUser(t, "admin123")))

	_, err := f.svc.Login(context.Background(), authdto.LoginRequest{
		ClientID: "web",
		Username: "admin",
		Password: base64.StdEncoding.EncodeToString([]byte("not rsa")),
	})
	require.ErrorIs(t, err, xerrors.ErrPasswordDecrypt)
}

func TestLoginWrongPasswordLeavesNoSession(t *testing.T) {
	t.Parallel()
	f := newFixture(t, usersWith(testUser(t, "admin123")))

	_, err := f.svc.Login(context.Background(), authdto.LoginRequest{
		ClientID: "web",
		Username: "admin",
		Password: f.encrypt(t, "wrong-password"),
	})
	require.ErrorIs(t, err, xerrors.ErrInvalidCredentials)

	_, total := f.online.List("", nil, nil, 1, 10)
	require.Zero(t, total)
}

func TestLoginUnknownUserMatchesWrongPasswordError(t *testing.T) {
	t.Parallel()
	f := newFixture(t, usersWith(testUser(t, "admin123")))

	_, err := f.svc.Login(context.Background(), authdto.LoginRequest{
		ClientID: "web",
		Username: "nobody",
		Password: f.encrypt(t, "admin123"),
	})
	require.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	t.Parallel()
	u := testUser(t, "admin123")
	u.Status = 2
	f := newFixture(t, usersWith(u))

	_, err := f.svc.Login(context.Background(), authdto.LoginRequest{
		ClientID: "web",
		Username: "admin",
		Password: f.encrypt(t, "admin123"),
	})
	require.ErrorIs(t, err, xerrors.ErrAccountDisabled)
}

func TestLogoutRemovesSession(t *testing.T) {
	t.Parallel()
	f := newFixture(t, usersWith(testUser(t, "admin123")))

	resp, err := f.svc.Login(context.Background(), authdto.LoginRequest{
		ClientID: "web",
		Username: "admin",
		Password: f.encrypt(t, "admin123"),
	})
	require.NoError(t, err)

	f.svc.Logout("Bearer " + resp.Token)
	_, total := f.online.List("", nil, nil, 1, 10)
	require.Zero(t, total)

	// Logging out again is harmless.
	f.svc.Logout("Bearer " + resp.Token)
}

func TestKickout(t *testing.T) {
	t.Parallel()
	f := newFixture(t, usersWith(testUser(t, "admin123")))

	resp, err := f.svc.Login(context.Background(), authdto.LoginRequest{
		ClientID: "web",
		Username: "admin",
		Password: f.encrypt(t, "admin123"),
	})
	require.NoError(t, err)

	// Cannot kick your own session.
	err = f.svc.Kickout("Bearer "+resp.Token, resp.Token)
	require.ErrorIs(t, err, xerrors.ErrCannotKickSelf)

	// Blank target is rejected.
	err = f.svc.Kickout("Bearer "+resp.Token, "  ")
	require.Error(t, err)

	// Kicking someone else's token removes it.
	require.NoError(t, f.svc.Kickout("Bearer other-token", resp.Token))
	_, total := f.online.List("", nil, nil, 1, 10)
	require.Zero(t, total)

	// Unknown targets are a no-op, not an error.
	require.NoError(t, f.svc.Kickout("Bearer other-token", "unknown"))
}

func TestLoginRequiresCaptchaWhenFlagOn(t *testing.T) {
	t.Parallel()
	f := newFixture(t, usersWith(testUser(t, "admin123")))
	f.svc.flags = &fakeFlags{enabled: true}

	// Missing captcha fields are rejected before any store lookup.
	_, err := f.svc.Login(context.Background(), authdto.LoginRequest{
		ClientID: "web",
		Username: "admin",
		Password: f.encrypt(t, "admin123"),
	})
	var appErr *xerrors.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "400", appErr.Code)
	require.Equal(t, "captcha is required", appErr.Message)

	// A code without a uuid reports the missing uuid.
	_, err = f.svc.Login(context.Background(), authdto.LoginRequest{
		ClientID: "web",
		Username: "admin",
		Password: f.encrypt(t, "admin123"),
		Captcha:  "1234",
	})
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "captcha uuid is required", appErr.Message)
}

func TestGetUserInfo(t *testing.T) {
	t.Parallel()
	f := newFixture(t, usersWith(testUser(t, "admin123")))

	info, err := f.svc.GetUserInfo(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, "admin", info.Username)
	require.Equal(t, "Engineering", info.DeptName)
	require.Equal(t, []string{"admin"}, info.Roles)
	require.Equal(t, []string{"system:user:list"}, info.Permissions)
}

func TestGetUserInfoUnknownUser(t *testing.T) {
	t.Parallel()
	f := newFixture(t, usersWith(testUser(t, "admin123")))

	_, err := f.svc.GetUserInfo(context.Background(), 999)
	require.ErrorIs(t, err, xerrors.ErrUnauthorized)
}
