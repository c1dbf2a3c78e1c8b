package machine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateMachine(t *testing.T) {
	type TestState string

	const (
		StateMenu      TestState = "Menu"
		StateOperation TestState = "Operation"
		StateExit      TestState = "Exit"
	)

	newMachine := func() *StateMachine[TestState] {
		return New(StateMenu,
			From(StateMenu).To(StateOperation, StateExit),
			From(StateOperation).To(StateMenu, StateExit),
		)
	}

	t.Run("valid transition", func(t *testing.T) {
		m := newMachine()
		assert.Equal(t, StateMenu, m.Current())
		assert.True(t, m.CanTransition(StateOperation))

		err := m.Transition(StateOperation)
		require.NoError(t, err)
		assert.Equal(t, StateOperation, m.Current())

		err = m.Transition(StateMenu)
		require.NoError(t, err)
		assert.Equal(t, StateMenu, m.Current())
	})

	t.Run("invalid transition", func(t *testing.T) {
		m := newMachine()
		assert.False(t, m.CanTransition(StateMenu))

		err := m.Transition(StateMenu)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, StateMenu, m.Current())
	})

	t.Run("terminal state", func(t *testing.T) {
		m := newMachine()
		require.NoError(t, m.Transition(StateExit))

		for _, s := range []TestState{StateMenu, StateOperation, StateExit} {
			assert.ErrorIs(t, m.Transition(s), ErrInvalidTransition)
		}
		assert.Equal(t, StateExit, m.Current())
	})
}
