package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isoteriksoftware/tictac-api/internal/apperror"
)

func newTestSession() *Session {
	alice := &Participant{ID: "alice", Name: "Alice", Marker: MarkerX, OpponentID: "bob", Status: StatusEngaged}
	bob := &Participant{ID: "bob", Name: "Bob", Marker: MarkerO, OpponentID: "alice", Status: StatusEngaged}

	session := NewSession(alice, bob)
	session.Turn = alice.ID

	return session
}

func TestNewSession(t *testing.T) {
	t.Run("Derives the id from challenger and opponent in that order", func(t *testing.T) {
		// Given: two participants
		alice := &Participant{ID: "alice"}
		bob := &Participant{ID: "bob"}

		// When: sessions are created with the two orderings
		ab := NewSession(alice, bob)
		ba := NewSession(bob, alice)

		// Then: the ids are order-dependent
		assert.Equal(t, "alicebob", ab.ID)
		assert.Equal(t, "bobalice", ba.ID)
	})
}

func TestParsePosition(t *testing.T) {
	t.Run("Decodes row and column into a board index", func(t *testing.T) {
		cell, err := ParsePosition("1|2")

		require.NoError(t, err)
		assert.Equal(t, 5, cell)
	})

	t.Run("Rejects malformed encodings", func(t *testing.T) {
		for _, move := range []string{"", "1", "1|", "|2", "a|b", "1|2|3", "1-2"} {
			_, err := ParsePosition(move)
			assert.ErrorIs(t, err, apperror.ErrInvalidPosition, "move %q", move)
		}
	})

	t.Run("Rejects out of range positions", func(t *testing.T) {
		for _, move := range []string{"3|0", "0|3", "-1|0", "0|-1", "9|9"} {
			_, err := ParsePosition(move)
			assert.ErrorIs(t, err, apperror.ErrInvalidPosition, "move %q", move)
		}
	})
}

func TestSession_MakeMove(t *testing.T) {
	t.Run("Marks the cell and flips the turn on a legal move", func(t *testing.T) {
		// Given: a fresh session with alice to move
		session := newTestSession()

		// When: alice plays the top-left cell
		err := session.MakeMove("alice", "0|0")

		// Then: the cell carries her marker and the turn is bob's
		require.NoError(t, err)
		assert.Equal(t, MarkerX, session.Board[0])
		assert.Equal(t, "bob", session.Turn)
	})

	t.Run("Rejects a move out of turn without touching the board", func(t *testing.T) {
		// Given: a fresh session with alice to move
		session := newTestSession()

		// When: bob tries to move first
		err := session.MakeMove("bob", "0|0")

		// Then: nothing changed
		assert.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, EmptyCell, session.Board[0])
		assert.Equal(t, "alice", session.Turn)
	})

	t.Run("Rejects a move on an occupied cell and keeps the turn", func(t *testing.T) {
		// Given: alice already played the top-left cell
		session := newTestSession()
		require.NoError(t, session.MakeMove("alice", "0|0"))

		// When: bob plays the same cell
		err := session.MakeMove("bob", "0|0")

		// Then: the cell keeps alice's marker and the turn stays with bob
		assert.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, MarkerX, session.Board[0])
		assert.Equal(t, "bob", session.Turn)
	})

	t.Run("Rejects a malformed position without flipping the turn", func(t *testing.T) {
		session := newTestSession()

		err := session.MakeMove("alice", "nonsense")

		assert.ErrorIs(t, err, apperror.ErrInvalidPosition)
		assert.Equal(t, "alice", session.Turn)
	})

	t.Run("Alternates the turn exactly once per accepted move", func(t *testing.T) {
		// Given: a fresh session and a sequence of legal alternating moves
		session := newTestSession()
		moves := []struct {
			player string
			move   string
		}{
			{"alice", "0|0"},
			{"bob", "1|1"},
			{"alice", "0|1"},
			{"bob", "2|2"},
			{"alice", "1|0"},
		}

		// When: the moves are applied in order
		for _, m := range moves {
			require.Equal(t, m.player, session.Turn)
			require.NoError(t, session.MakeMove(m.player, m.move))
		}

		// Then: after five moves the turn points at bob again
		assert.Equal(t, "bob", session.Turn)
	})
}

func TestSession_HasWinner(t *testing.T) {
	lines := [][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
		{0, 3, 6},
		{1, 4, 7},
		{2, 5, 8},
		{0, 4, 8},
		{2, 4, 6},
	}

	t.Run("Detects every winning line for the owning marker only", func(t *testing.T) {
		for _, line := range lines {
			// Given: a board where one marker fills the line
			session := newTestSession()
			for _, cell := range line {
				session.Board[cell] = MarkerX
			}

			// Then: the line wins for X and not for O
			assert.True(t, session.HasWinner(MarkerX), "line %v", line)
			assert.False(t, session.HasWinner(MarkerO), "line %v", line)
		}
	})

	t.Run("Reports no winner on an empty board", func(t *testing.T) {
		session := newTestSession()

		assert.False(t, session.HasWinner(MarkerX))
		assert.False(t, session.HasWinner(MarkerO))
	})

	t.Run("A line with an empty cell never matches", func(t *testing.T) {
		// Given: two X cells and a gap on the top row
		session := newTestSession()
		session.Board[0] = MarkerX
		session.Board[1] = MarkerX

		assert.False(t, session.HasWinner(MarkerX))
	})
}

func TestSession_IsBoardFull(t *testing.T) {
	t.Run("False while any cell is empty", func(t *testing.T) {
		session := newTestSession()
		for i := 0; i < 8; i++ {
			session.Board[i] = MarkerX
		}

		assert.False(t, session.IsBoardFull())
	})

	t.Run("True when all nine cells are occupied", func(t *testing.T) {
		// Given: a full board with no winning line
		session := newTestSession()
		session.Board = [9]string{
			MarkerX, MarkerO, MarkerX,
			MarkerX, MarkerO, MarkerO,
			MarkerO, MarkerX, MarkerX,
		}

		// Then: the board is full and nobody won, a draw
		assert.True(t, session.IsBoardFull())
		assert.False(t, session.HasWinner(MarkerX))
		assert.False(t, session.HasWinner(MarkerO))
	})
}

func TestSession_OpponentOf(t *testing.T) {
	session := newTestSession()

	require.NotNil(t, session.OpponentOf("alice"))
	assert.Equal(t, "bob", session.OpponentOf("alice").ID)
	assert.Equal(t, "alice", session.OpponentOf("bob").ID)
	assert.Nil(t, session.ParticipantByID("carol"))
}

func TestRandomMarkers(t *testing.T) {
	t.Run("Always deals both markers", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			first, second := RandomMarkers()

			assert.NotEqual(t, first, second)
			assert.Contains(t, []string{MarkerX, MarkerO}, first)
			assert.Contains(t, []string{MarkerX, MarkerO}, second)
		}
	})
}
