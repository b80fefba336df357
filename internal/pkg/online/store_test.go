// internal/pkg/online/store_test.go
package online

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRecordLoginAndRemove(t *testing.T) {
	t.Parallel()
	s := NewStore()

	s.RecordLogin(1, "alice", "Alice", "client-1", "tok-1", "10.0.0.1", "Mozilla/5.0")
	list, total := s.List("", nil, nil, 1, 10)
	require.Equal(t, int64(1), total)
	require.Len(t, list, 1)
	require.Equal(t, "alice", list[0].Username)
	require.Equal(t, "PC", list[0].ClientType)
	require.Equal(t, "Mozilla/5.0", list[0].Browser)
	require.Empty(t, list[0].Address)
	require.Empty(t, list[0].OS)

	s.RemoveByToken("tok-1")
	_, total = s.List("", nil, nil, 1, 10)
	require.Zero(t, total)

	// Idempotent: removing again (and blanks) is a no-op.
	s.RemoveByToken("tok-1")
	s.RemoveByToken("")
	s.RemoveByToken("   ")
}

func TestRecordLoginIgnoresInvalid(t *testing.T) {
	t.Parallel()
	s := NewStore()

	s.RecordLogin(0, "ghost", "Ghost", "c", "tok", "", "")
	s.RecordLogin(1, "alice", "Alice", "c", "", "", "")

	_, total := s.List("", nil, nil, 1, 10)
	require.Zero(t, total)
}

func TestRecordLoginOverwritesSameToken(t *testing.T) {
	t.Parallel()
	s := NewStore()

	s.RecordLogin(1, "alice", "Alice", "c1", "tok", "", "")
	s.RecordLogin(2, "bob", "Bob", "c2", "tok", "", "")

	list, total := s.List("", nil, nil, 1, 10)
	require.Equal(t, int64(1), total)
	require.Equal(t, "bob", list[0].Username)
}

func TestListPaginates(t *testing.T) {
	t.Parallel()
	s := NewStore()

	for i := 0; i < 25; i++ {
		s.RecordLogin(int64(i+1), fmt.Sprintf("user%02d", i), "Nick", "c", fmt.Sprintf("tok-%d", i), "", "")
	}

	page1, total := s.List("", nil, nil, 1, 10)
	require.Equal(t, int64(25), total)
	require.Len(t, page1, 10)

	page3, total := s.List("", nil, nil, 3, 10)
	require.Equal(t, int64(25), total)
	require.Len(t, page3, 5)

	beyond, total := s.List("", nil, nil, 4, 10)
	require.Equal(t, int64(25), total)
	require.Empty(t, beyond)

	// Non-positive paging falls back to defaults.
	def, _ := s.List("", nil, nil, 0, 0)
	require.Len(t, def, 10)
}

func TestListSortsByLoginTimeDesc(t *testing.T) {
	t.Parallel()
	s := NewStore()

	s.RecordLogin(1, "early", "Early", "c", "tok-early", "", "")
	time.Sleep(10 * time.Millisecond)
	s.RecordLogin(2, "late", "Late", "c", "tok-late", "", "")

	list, _ := s.List("", nil, nil, 1, 10)
	require.Len(t, list, 2)
	require.Equal(t, "late", list[0].Username)
	require.Equal(t, "early", list[1].Username)
}

func TestListFiltersByNickname(t *testing.T) {
	t.Parallel()
	s := NewStore()

	s.RecordLogin(1, "alice", "Alice Wang", "c", "tok-1", "", "")
	s.RecordLogin(2, "bob", "Bob Li", "c", "tok-2", "", "")

	// Matches against username or nickname, case-sensitively.
	list, total := s.List("alice", nil, nil, 1, 10)
	require.Equal(t, int64(1), total)
	require.Equal(t, "alice", list[0].Username)

	list, total = s.List("Li", nil, nil, 1, 10)
	require.Equal(t, int64(1), total)
	require.Equal(t, "bob", list[0].Username)

	_, total = s.List("ALICE", nil, nil, 1, 10)
	require.Zero(t, total)
}

func TestListFiltersByLoginWindow(t *testing.T) {
	t.Parallel()
	s := NewStore()

	s.RecordLogin(1, "alice", "Alice", "c", "tok-1", "", "")

	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)

	_, total := s.List("", &future, nil, 1, 10)
	require.Zero(t, total)

	_, total = s.List("", nil, &past, 1, 10)
	require.Zero(t, total)

	_, total = s.List("", &past, &future, 1, 10)
	require.Equal(t, int64(1), total)
}
