package state_test

import (
	"siesta/internal/domains/sync/state"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		from      state.Code
		event     state.Event
		wantCode  state.Code
		wantMoved bool
	}{
		{
			name:      "new record accepted by remote becomes synced",
			from:      state.New,
			event:     state.CreateAccepted,
			wantCode:  state.Synced,
			wantMoved: true,
		},
		{
			name:      "new record mutated locally stays new",
			from:      state.New,
			event:     state.LocalMutation,
			wantCode:  state.New,
			wantMoved: false,
		},
		{
			name:      "synced record mutated locally becomes dirty",
			from:      state.Synced,
			event:     state.LocalMutation,
			wantCode:  state.DirtyUpdate,
			wantMoved: true,
		},
		{
			name:      "synced record completed by server becomes update synced",
			from:      state.Synced,
			event:     state.ServerCompleted,
			wantCode:  state.UpdateSynced,
			wantMoved: true,
		},
		{
			name:      "dirty record accepted by remote becomes update synced",
			from:      state.DirtyUpdate,
			event:     state.UpdateAccepted,
			wantCode:  state.UpdateSynced,
			wantMoved: true,
		},
		{
			name:      "dirty record completed by server becomes update synced",
			from:      state.DirtyUpdate,
			event:     state.ServerCompleted,
			wantCode:  state.UpdateSynced,
			wantMoved: true,
		},
		{
			name:      "update synced record mutated locally becomes dirty again",
			from:      state.UpdateSynced,
			event:     state.LocalMutation,
			wantCode:  state.DirtyUpdate,
			wantMoved: true,
		},
		{
			name:      "create accepted on already synced record is ignored",
			from:      state.Synced,
			event:     state.CreateAccepted,
			wantCode:  state.Synced,
			wantMoved: false,
		},
		{
			name:      "update accepted on new record is ignored",
			from:      state.New,
			event:     state.UpdateAccepted,
			wantCode:  state.New,
			wantMoved: false,
		},
		{
			name:      "server completed on update synced record is ignored",
			from:      state.UpdateSynced,
			event:     state.ServerCompleted,
			wantCode:  state.UpdateSynced,
			wantMoved: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			gotCode, gotMoved := state.Next(test.from, test.event)

			assert.Equal(t, test.wantCode, gotCode)
			assert.Equal(t, test.wantMoved, gotMoved)
		})
	}
}

func TestPending(t *testing.T) {
	t.Parallel()

	assert.True(t, state.New.Pending())
	assert.True(t, state.DirtyUpdate.Pending())
	assert.False(t, state.Synced.Pending())
	assert.False(t, state.UpdateSynced.Pending())
}

func TestReplayedEventsAreIdempotent(t *testing.T) {
	t.Parallel()

	code := state.New

	code, _ = state.Next(code, state.CreateAccepted)
	code, moved := state.Next(code, state.CreateAccepted)

	assert.Equal(t, state.Synced, code)
	assert.False(t, moved)
}

func TestValid(t *testing.T) {
	t.Parallel()

	for _, code := range []state.Code{state.New, state.Synced, state.DirtyUpdate, state.UpdateSynced} {
		assert.True(t, state.Valid(code))
	}

	assert.False(t, state.Valid(state.Code(4)))
	assert.False(t, state.Valid(state.Code(-1)))
}
