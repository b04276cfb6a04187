package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestManagerCreateAndGet(t *testing.T) {
	m := NewManager(time.Minute, nopLogger{})

	sess := m.Create()
	require.NotEmpty(t, sess.ID)
	require.NotNil(t, sess.Accumulator)
	require.NotNil(t, sess.Snapshot)

	got, err := m.Get(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	// Разные сессии получают разные id
	other := m.Create()
	assert.NotEqual(t, sess.ID, other.ID)
}

func TestManagerGetUnknown(t *testing.T) {
	m := NewManager(time.Minute, nopLogger{})

	_, err := m.Get("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerDelete(t *testing.T) {
	m := NewManager(time.Minute, nopLogger{})

	sess := m.Create()
	m.Delete(sess.ID)

	_, err := m.Get(sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerCleanupExpired(t *testing.T) {
	m := NewManager(10*time.Millisecond, nopLogger{})

	expired := m.Create()
	time.Sleep(25 * time.Millisecond)
	fresh := m.Create()

	m.cleanup()

	_, err := m.Get(expired.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = m.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestManagerGetExtendsTTL(t *testing.T) {
	m := NewManager(30*time.Millisecond, nopLogger{})

	sess := m.Create()
	time.Sleep(20 * time.Millisecond)

	// Обращение продлевает жизнь сессии
	_, err := m.Get(sess.ID)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	m.cleanup()

	_, err = m.Get(sess.ID)
	assert.NoError(t, err)
}
