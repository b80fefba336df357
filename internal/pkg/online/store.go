// internal/pkg/online/store.go
package online

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Session is one active login, owned exclusively by the Store. The
// last-active timestamp is set at login and not refreshed by later
// requests; the registry is login/logout bookkeeping, not a liveness
// tracker.
type Session struct {
	UserID         int64
	Username       string
	Nickname       string
	Token          string
	ClientType     string
	ClientID       string
	IP             string
	Address        string
	Browser        string
	OS             string
	LoginTime      time.Time
	LastActiveTime time.Time
}

// UserResp is the projection returned to the online monitor front-end.
type UserResp struct {
	ID             int64  `json:"id"`
	Token          string `json:"token"`
	Username       string `json:"username"`
	Nickname       string `json:"nickname"`
	ClientType     string `json:"clientType"`
	ClientID       string `json:"clientId"`
	IP             string `json:"ip"`
	Address        string `json:"address"`
	Browser        string `json:"browser"`
	OS             string `json:"os"`
	LoginTime      string `json:"loginTime"`
	LastActiveTime string `json:"lastActiveTime"`
}

// Store is a concurrent in-memory registry of active sessions keyed by
// token. Lifetime is the process; there is no persistence. A kicked or
// logged-out token stays cryptographically valid until expiry; only
// online-aware endpoints observe the removal.
type Store struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]Session)}
}

// RecordLogin inserts (or overwrites) the session for token. It is a no-op
// when userID is zero or token is empty, so a failed login can never leave
// a partial record. Address and OS stay empty: geolocation and user-agent
// OS parsing are not implemented, and Browser holds the raw UA string.
func (s *Store) RecordLogin(userID int64, username, nickname, clientID, token, ip, userAgent string) {
	if userID == 0 || token == "" {
		return
	}
	now := time.Now()
	sess := Session{
		UserID:         userID,
		Username:       username,
		Nickname:       nickname,
		Token:          token,
		ClientType:     "PC",
		ClientID:       clientID,
		IP:             strings.TrimSpace(ip),
		Address:        "",
		Browser:        strings.TrimSpace(userAgent),
		OS:             "",
		LoginTime:      now,
		LastActiveTime: now,
	}

	s.mu.Lock()
	s.sessions[token] = sess
	s.mu.Unlock()
}

// RemoveByToken deletes the session for token. Blank input and unknown
// tokens are no-ops; the operation is idempotent.
func (s *Store) RemoveByToken(token string) {
	t := strings.TrimSpace(token)
	if t == "" {
		return
	}
	s.mu.Lock()
	delete(s.sessions, t)
	s.mu.Unlock()
}

// List returns one page of sessions ordered by login time descending,
// plus the total filtered count. The nickname filter is a case-sensitive
// substring match against either username or nickname; loginStart and
// loginEnd bound the login time when non-nil. Filtering and sorting happen
// on a snapshot copied under the lock, so the result reflects a state that
// existed at some point during the call.
func (s *Store) List(nickname string, loginStart, loginEnd *time.Time, page, size int) ([]UserResp, int64) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 10
	}
	filter := strings.TrimSpace(nickname)

	s.mu.Lock()
	all := make([]Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		all = append(all, sess)
	}
	s.mu.Unlock()

	filtered := all[:0]
	for _, sess := range all {
		if filter != "" &&
			!strings.Contains(sess.Username, filter) &&
			!strings.Contains(sess.Nickname, filter) {
			continue
		}
		if loginStart != nil && sess.LoginTime.Before(*loginStart) {
			continue
		}
		if loginEnd != nil && sess.LoginTime.After(*loginEnd) {
			continue
		}
		filtered = append(filtered, sess)
	}

	if len(filtered) > 1 {
		sort.Slice(filtered, func(i, j int) bool {
			return filtered[i].LoginTime.After(filtered[j].LoginTime)
		})
	}

	total := int64(len(filtered))
	start := (page - 1) * size
	end := start + size
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]UserResp, 0, end-start)
	for _, sess := range filtered[start:end] {
		items = append(items, UserResp{
			ID:             sess.UserID,
			Token:          sess.Token,
			Username:       sess.Username,
			Nickname:       sess.Nickname,
			ClientType:     sess.ClientType,
			ClientID:       sess.ClientID,
			IP:             sess.IP,
			Address:        sess.Address,
			Browser:        sess.Browser,
			OS:             sess.OS,
			LoginTime:      formatTime(sess.LoginTime),
			LastActiveTime: formatTime(sess.LastActiveTime),
		})
	}
	return items, total
}

func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
