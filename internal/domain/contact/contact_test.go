package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionValidate(t *testing.T) {
	valid := Submission{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello there"}
	assert.NoError(t, valid.Validate())

	missing := valid
	missing.Message = ""
	assert.Error(t, missing.Validate())

	badEmail := valid
	badEmail.Email = "not-an-email"
	assert.Error(t, badEmail.Validate())
}

type mapStore struct {
	states map[string]State
	sets   int
	err    error
}

func (m *mapStore) Get(_ context.Context, key string) (State, error) {
	if m.err != nil {
		return NotSubmitted, m.err
	}
	return m.states[key], nil
}

func (m *mapStore) Set(_ context.Context, key string, s State) error {
	m.sets++
	m.states[key] = s
	return nil
}

func TestLock_OneWayTransition(t *testing.T) {
	ctx := context.Background()
	store := &mapStore{states: map[string]State{}}
	lock := NewLock(store)

	state, err := lock.Check(ctx, "client-a")
	require.NoError(t, err)
	assert.Equal(t, NotSubmitted, state)

	require.NoError(t, lock.MarkSubmitted(ctx, "client-a"))
	require.NoError(t, lock.MarkSubmitted(ctx, "client-a"))
	assert.Equal(t, 1, store.sets, "second mark must not write")

	state, err = lock.Check(ctx, "client-a")
	require.NoError(t, err)
	assert.Equal(t, Submitted, state)

	state, err = lock.Check(ctx, "client-b")
	require.NoError(t, err)
	assert.Equal(t, NotSubmitted, state)
}

func TestLock_StoreError(t *testing.T) {
	lock := NewLock(&mapStore{states: map[string]State{}, err: errors.New("down")})

	_, err := lock.Check(context.Background(), "x")
	assert.Error(t, err)
	assert.Error(t, lock.MarkSubmitted(context.Background(), "x"))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "submitted", Submitted.String())
	assert.Equal(t, "not_submitted", NotSubmitted.String())
}
