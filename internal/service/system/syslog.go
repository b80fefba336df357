// internal/service/system/syslog.go
package system

import (
	"context"

	"coreadmin-service/internal/domain/syslog"
	"coreadmin-service/internal/pkg/response"
)

// LogService serves the request log listing and detail views.
type LogService struct {
	logs syslog.Repository
}

func NewLogService(logs syslog.Repository) *LogService {
	return &LogService{logs: logs}
}

func (s *LogService) Page(ctx context.Context, q syslog.PageQuery) (*response.PageResult, error) {
	recs, total, err := s.logs.Page(ctx, q)
	if err != nil {
		return nil, err
	}
	list := make([]syslog.Resp, 0, len(recs))
	for _, rec := range recs {
		list = append(list, toLogResp(rec))
	}
	return &response.PageResult{List: list, Total: total}, nil
}

func (s *LogService) Get(ctx context.Context, id int64) (*syslog.DetailResp, error) {
	rec, err := s.logs.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &syslog.DetailResp{
		Resp:            toLogResp(*rec),
		RequestHeaders:  rec.RequestHeaders,
		RequestBody:     rec.RequestBody,
		ResponseHeaders: rec.ResponseHeaders,
		ResponseBody:    rec.ResponseBody,
		ErrorMsg:        strVal(rec.ErrorMsg),
	}, nil
}

func toLogResp(rec syslog.Record) syslog.Resp {
	return syslog.Resp{
		ID:            rec.ID,
		Description:   rec.Description,
		Module:        rec.Module,
		RequestURL:    rec.RequestURL,
		RequestMethod: rec.RequestMethod,
		StatusCode:    rec.StatusCode,
		TimeTaken:     rec.TimeTaken,
		IP:            rec.IP,
		Address:       rec.Address,
		Browser:       rec.Browser,
		OS:            rec.OS,
		Status:        rec.Status,
		CreateUser:    rec.CreateUser,
		CreateTime:    formatTime(rec.CreateTime),
	}
}
