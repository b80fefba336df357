// internal/service/system/system_test.go
package system

import (
	"context"
	"testing"
	"time"

	"coreadmin-service/internal/domain/dept"
	"coreadmin-service/internal/domain/storage"
	xerrors "coreadmin-service/internal/pkg/errors"

	"github.com/stretchr/testify/require"
)

type fakeDeptRepo struct {
	depts map[int64]dept.Dept
}

func (f *fakeDeptRepo) List(context.Context, string) ([]dept.Dept, error) {
	out := make([]dept.Dept, 0, len(f.depts))
	for _, d := range f.depts {
		out = append(out, d)
	}
	return out, nil
}

func (f *fakeDeptRepo) Get(_ context.Context, id int64) (*dept.Dept, error) {
	if d, ok := f.depts[id]; ok {
		return &d, nil
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeDeptRepo) GetName(_ context.Context, id int64) (string, error) {
	return f.depts[id].Name, nil
}

func (f *fakeDeptRepo) Create(_ context.Context, d *dept.Dept) error {
	d.ID = int64(len(f.depts) + 1)
	f.depts[d.ID] = *d
	return nil
}

func (f *fakeDeptRepo) Update(_ context.Context, d *dept.Dept) error {
	f.depts[d.ID] = *d
	return nil
}

func (f *fakeDeptRepo) Delete(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(f.depts, id)
	}
	return nil
}

func (f *fakeDeptRepo) HasChildren(_ context.Context, id int64) (bool, error) {
	for _, d := range f.depts {
		if d.ParentID == id {
			return true, nil
		}
	}
	return false, nil
}

func TestDeptTreeNestsAndSorts(t *testing.T) {
	t.Parallel()

	repo := &fakeDeptRepo{depts: map[int64]dept.Dept{
		1: {ID: 1, ParentID: 0, Name: "HQ", Sort: 1, CreateTime: time.Now()},
		2: {ID: 2, ParentID: 1, Name: "Engineering", Sort: 2, CreateTime: time.Now()},
		3: {ID: 3, ParentID: 1, Name: "Finance", Sort: 1, CreateTime: time.Now()},
	}}
	svc := NewDeptService(repo)

	tree, err := svc.Tree(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Equal(t, "HQ", tree[0].Name)
	require.Len(t, tree[0].Children, 2)
	require.Equal(t, "Finance", tree[0].Children[0].Name)
	require.Equal(t, "Engineering", tree[0].Children[1].Name)
}

func TestDeptDeleteRejectsParents(t *testing.T) {
	t.Parallel()

	repo := &fakeDeptRepo{depts: map[int64]dept.Dept{
		1: {ID: 1, ParentID: 0, Name: "HQ", CreateTime: time.Now()},
		2: {ID: 2, ParentID: 1, Name: "Engineering", CreateTime: time.Now()},
	}}
	svc := NewDeptService(repo)

	err := svc.Delete(context.Background(), []int64{1})
	require.Error(t, err)

	require.NoError(t, svc.Delete(context.Background(), []int64{2}))
	require.NoError(t, svc.Delete(context.Background(), []int64{1}))
}

type fakeStorageRepo struct {
	storages map[int64]storage.Storage
}

func (f *fakeStorageRepo) List(context.Context, string) ([]storage.Storage, error) {
	out := make([]storage.Storage, 0, len(f.storages))
	for _, s := range f.storages {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStorageRepo) Get(_ context.Context, id int64) (*storage.Storage, error) {
	if s, ok := f.storages[id]; ok {
		return &s, nil
	}
	return nil, xerrors.ErrNotFound
}

func (f *fakeStorageRepo) Create(_ context.Context, s *storage.Storage) error {
	s.ID = int64(len(f.storages) + 1)
	f.storages[s.ID] = *s
	return nil
}

func (f *fakeStorageRepo) Update(_ context.Context, s *storage.Storage) error {
	f.storages[s.ID] = *s
	return nil
}

func (f *fakeStorageRepo) Delete(_ context.Context, ids []int64) error {
	for _, id := range ids {
		delete(f.storages, id)
	}
	return nil
}

func (f *fakeStorageRepo) ClearDefault(context.Context) error {
	for id, s := range f.storages {
		s.IsDefault = false
		f.storages[id] = s
	}
	return nil
}

func TestStorageSecretIsMasked(t *testing.T) {
	t.Parallel()

	secret := "super-secret-key"
	repo := &fakeStorageRepo{storages: map[int64]storage.Storage{
		1: {ID: 1, Name: "S3", Code: "s3", Type: storage.TypeS3, SecretKey: &secret, CreateTime: time.Now()},
	}}
	svc := NewStorageService(repo)

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "******", resp.SecretKey)
	require.NotContains(t, resp.SecretKey, "super")
}

func TestStorageUpdateKeepsSecretWhenMaskEchoed(t *testing.T) {
	t.Parallel()

	secret := "super-secret-key"
	repo := &fakeStorageRepo{storages: map[int64]storage.Storage{
		1: {ID: 1, Name: "S3", Code: "s3", Type: storage.TypeS3, SecretKey: &secret, CreateTime: time.Now()},
	}}
	svc := NewStorageService(repo)

	err := svc.Update(context.Background(), 1, storage.Req{
		Name:      "S3",
		Code:      "s3",
		Type:      storage.TypeS3,
		SecretKey: "******",
	}, 1)
	require.NoError(t, err)

	stored := repo.storages[1]
	require.NotNil(t, stored.SecretKey)
	require.Equal(t, "super-secret-key", *stored.SecretKey)
}

func TestStorageCreateValidatesS3Fields(t *testing.T) {
	t.Parallel()

	svc := NewStorageService(&fakeStorageRepo{storages: map[int64]storage.Storage{}})

	_, err := svc.Create(context.Background(), storage.Req{
		Name: "S3",
		Code: "s3",
		Type: storage.TypeS3,
	}, 1)
	require.Error(t, err)
}

func TestStorageSingleDefault(t *testing.T) {
	t.Parallel()

	repo := &fakeStorageRepo{storages: map[int64]storage.Storage{}}
	svc := NewStorageService(repo)

	_, err := svc.Create(context.Background(), storage.Req{Name: "Local A", Code: "a", IsDefault: true}, 1)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), storage.Req{Name: "Local B", Code: "b", IsDefault: true}, 1)
	require.NoError(t, err)

	defaults := 0
	for _, s := range repo.storages {
		if s.IsDefault {
			defaults++
		}
	}
	require.Equal(t, 1, defaults)
}
