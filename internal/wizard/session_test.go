package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"optimizer/internal/model"
)

func TestRegistrySupersedesStaleSession(t *testing.T) {
	reg := NewSessionRegistry()

	reg.Put(&Session{UserID: 1, State: StateBranch, FullName: "Stale"})
	reg.Put(&Session{UserID: 1, State: StateLanguage})

	sess, ok := reg.Get(1)
	require.True(t, ok)
	require.Equal(t, StateLanguage, sess.State)
	require.Empty(t, sess.FullName)
	require.Equal(t, 1, reg.Len())
}

func TestRegistryDelete(t *testing.T) {
	reg := NewSessionRegistry()
	reg.Put(&Session{UserID: 1})
	reg.Delete(1)

	_, ok := reg.Get(1)
	require.False(t, ok)
	require.Equal(t, 0, reg.Len())
}

func TestSweepRemovesOnlyIdleSessions(t *testing.T) {
	reg := NewSessionRegistry()
	current := time.Now()
	reg.now = func() time.Time { return current }

	reg.Put(&Session{UserID: 1})
	reg.Put(&Session{UserID: 2})

	// User 2 stays active, user 1 goes idle.
	current = current.Add(20 * time.Minute)
	_, ok := reg.Get(2)
	require.True(t, ok)

	current = current.Add(15 * time.Minute)
	removed := reg.Sweep(30 * time.Minute)
	require.Equal(t, 1, removed)

	_, ok = reg.Get(1)
	require.False(t, ok)
	_, ok = reg.Get(2)
	require.True(t, ok)
}

func TestGetRefreshesActivity(t *testing.T) {
	reg := NewSessionRegistry()
	current := time.Now()
	reg.now = func() time.Time { return current }

	reg.Put(&Session{UserID: 1, Language: model.LanguageUZ})

	current = current.Add(29 * time.Minute)
	_, ok := reg.Get(1)
	require.True(t, ok)

	current = current.Add(29 * time.Minute)
	require.Equal(t, 0, reg.Sweep(30*time.Minute))
}
