// internal/service/system/storage.go
package system

import (
	"context"

	"coreadmin-service/internal/domain/storage"
	xerrors "coreadmin-service/internal/pkg/errors"
)

const secretMask = "******"

// StorageService manages storage backend configurations. It never touches
// the backends themselves.
type StorageService struct {
	storages storage.Repository
}

func NewStorageService(storages storage.Repository) *StorageService {
	return &StorageService{storages: storages}
}

func (s *StorageService) List(ctx context.Context, description string) ([]storage.Resp, error) {
	storages, err := s.storages.List(ctx, description)
	if err != nil {
		return nil, err
	}
	out := make([]storage.Resp, 0, len(storages))
	for _, st := range storages {
		out = append(out, toStorageResp(st))
	}
	return out, nil
}

func (s *StorageService) Get(ctx context.Context, id int64) (*storage.Resp, error) {
	st, err := s.storages.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toStorageResp(*st)
	return &resp, nil
}

func (s *StorageService) Create(ctx context.Context, req storage.Req, operator int64) (int64, error) {
	if req.Type == storage.TypeS3 {
		if req.AccessKey == "" || req.SecretKey == "" || req.Endpoint == "" || req.BucketName == "" {
			return 0, xerrors.Validation("S3 storage requires access key, secret key, endpoint and bucket")
		}
	}
	st := &storage.Storage{
		Name:        req.Name,
		Code:        req.Code,
		Type:        req.Type,
		AccessKey:   optStr(req.AccessKey),
		SecretKey:   optStr(req.SecretKey),
		Endpoint:    optStr(req.Endpoint),
		BucketName:  optStr(req.BucketName),
		Domain:      optStr(req.Domain),
		Description: optStr(req.Description),
		IsDefault:   req.IsDefault,
		Sort:        req.Sort,
		Status:      req.Status,
		CreateUser:  &operator,
	}
	if st.Type == 0 {
		st.Type = storage.TypeLocal
	}
	if st.Status == 0 {
		st.Status = 1
	}
	if st.IsDefault {
		if err := s.storages.ClearDefault(ctx); err != nil {
			return 0, err
		}
	}
	if err := s.storages.Create(ctx, st); err != nil {
		return 0, err
	}
	return st.ID, nil
}

func (s *StorageService) Update(ctx context.Context, id int64, req storage.Req, operator int64) error {
	st, err := s.storages.Get(ctx, id)
	if err != nil {
		return err
	}
	st.Name = req.Name
	st.Code = req.Code
	st.Type = req.Type
	st.AccessKey = optStr(req.AccessKey)
	// The front-end echoes the mask back on edit; keep the stored secret.
	if req.SecretKey != "" && req.SecretKey != secretMask {
		st.SecretKey = optStr(req.SecretKey)
	}
	st.Endpoint = optStr(req.Endpoint)
	st.BucketName = optStr(req.BucketName)
	st.Domain = optStr(req.Domain)
	st.Description = optStr(req.Description)
	st.Sort = req.Sort
	st.Status = req.Status
	st.UpdateUser = &operator

	if req.IsDefault && !st.IsDefault {
		if err := s.storages.ClearDefault(ctx); err != nil {
			return err
		}
	}
	st.IsDefault = req.IsDefault
	return s.storages.Update(ctx, st)
}

func (s *StorageService) Delete(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		st, err := s.storages.Get(ctx, id)
		if err != nil {
			if xerrors.Is(err, xerrors.ErrNotFound) {
				continue
			}
			return err
		}
		if st.IsDefault {
			return xerrors.Validation("the default storage cannot be deleted")
		}
	}
	return s.storages.Delete(ctx, ids)
}

func toStorageResp(st storage.Storage) storage.Resp {
	resp := storage.Resp{
		ID:          st.ID,
		Name:        st.Name,
		Code:        st.Code,
		Type:        st.Type,
		AccessKey:   strVal(st.AccessKey),
		Endpoint:    strVal(st.Endpoint),
		BucketName:  strVal(st.BucketName),
		Domain:      strVal(st.Domain),
		Description: strVal(st.Description),
		IsDefault:   st.IsDefault,
		Sort:        st.Sort,
		Status:      st.Status,
		CreateTime:  formatTime(st.CreateTime),
		UpdateTime:  formatTimePtr(st.UpdateTime),
	}
	if st.SecretKey != nil && *st.SecretKey != "" {
		resp.SecretKey = secretMask
	}
	return resp
}
