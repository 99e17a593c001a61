package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerStartAndEnd(t *testing.T) {
	m := NewManager(0, quietLogger())

	s, err := m.Start("alice", 0)
	require.NoError(t, err)
	_, err = uuid.Parse(s.ID())
	assert.NoError(t, err, "session IDs are UUIDs")
	assert.Equal(t, "alice", s.Owner())
	assert.Equal(t, 1, m.Count())

	got, ok := m.Get(s.ID())
	require.True(t, ok)
	assert.Same(t, s, got)

	assert.True(t, m.End(s.ID()))
	assert.False(t, m.End(s.ID()), "second End is a no-op")
	assert.Equal(t, 0, m.Count())

	_, ok = m.Get(s.ID())
	assert.False(t, ok)
}

func TestManagerLimit(t *testing.T) {
	m := NewManager(2, quietLogger())

	a, err := m.Start("a", 0)
	require.NoError(t, err)
	_, err = m.Start("b", 0)
	require.NoError(t, err)

	_, err = m.Start("c", 0)
	assert.ErrorIs(t, err, ErrTooManySessions)
	assert.Equal(t, 2, m.Count())

	m.End(a.ID())
	_, err = m.Start("c", 0)
	assert.NoError(t, err)
}

func TestManagerListOldestFirst(t *testing.T) {
	m := NewManager(0, quietLogger())

	first, err := m.Start("a", 0)
	require.NoError(t, err)
	second, err := m.Start("b", 0)
	require.NoError(t, err)

	list := m.List()
	require.Len(t, list, 2)
	assert.False(t, list[0].Started().After(list[1].Started()))
	assert.ElementsMatch(t, []*Session{first, second}, list)
}

func TestManagerSessionsAreIndependent(t *testing.T) {
	m := NewManager(0, quietLogger())

	a, err := m.Start("a", 5)
	require.NoError(t, err)
	b, err := m.Start("b", 5)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID(), b.ID())
	require.NoError(t, a.NewGame(boardSmall))
	assert.Equal(t, 1, a.Stats().Games)
	assert.Equal(t, 0, b.Stats().Games)
	assert.Nil(t, b.Snapshot())
}
