package entity

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/isoteriksoftware/tictac-api/internal/apperror"
)

const (
	MarkerX = "X"
	MarkerO = "O"

	EmptyCell = ""

	boardSize = 3
)

// winLines indexes the 3 rows, 3 columns and 2 diagonals of the board.
var winLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Session is one paired two-party game. Turn always holds the id of the
// participant allowed to move next, not a marker.
type Session struct {
	ID      string         `json:"id"`
	Board   [9]string      `json:"board"`
	Turn    string         `json:"turn"`
	Players []*Participant `json:"players"`
}

// NewSession derives the session id by concatenating the challenger id and
// the opponent id, in that order. The id is order-dependent on purpose.
func NewSession(challenger, opponent *Participant) *Session {
	return &Session{
		ID:      challenger.ID + opponent.ID,
		Players: []*Participant{challenger, opponent},
	}
}

// ParsePosition decodes the "row|col" wire encoding into a board index.
func ParsePosition(move string) (int, error) {
	parts := strings.Split(move, "|")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, move)
	}

	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, move)
	}

	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, move)
	}

	if row < 0 || row >= boardSize || col < 0 || col >= boardSize {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPosition, move)
	}

	return row*boardSize + col, nil
}

// MakeMove applies one move for the given participant. On any rejection the
// board and the turn pointer stay untouched.
func (that *Session) MakeMove(participantID, move string) error {
	if that.Turn != participantID {
		return apperror.ErrNotYourTurn
	}

	cell, err := ParsePosition(move)
	if err != nil {
		return err
	}

	if that.Board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	mover := that.ParticipantByID(participantID)
	if mover == nil {
		return apperror.ErrParticipantNotFound
	}

	that.Board[cell] = mover.Marker
	that.Turn = mover.OpponentID

	return nil
}

// HasWinner reports whether the given marker occupies a full line. Each line
// is compared as a concatenated string against the marker repeated three
// times, so a line with any empty cell can never match.
func (that *Session) HasWinner(marker string) bool {
	want := marker + marker + marker

	for _, line := range winLines {
		got := that.Board[line[0]] + that.Board[line[1]] + that.Board[line[2]]
		if got == want {
			return true
		}
	}

	return false
}

func (that *Session) IsBoardFull() bool {
	for _, cell := range that.Board {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

func (that *Session) ParticipantByID(id string) *Participant {
	for _, player := range that.Players {
		if player.ID == id {
			return player
		}
	}

	return nil
}

// OpponentOf returns the other participant of the session.
func (that *Session) OpponentOf(id string) *Participant {
	for _, player := range that.Players {
		if player.ID != id {
			return player
		}
	}

	return nil
}

// RandomMarkers deals the challenger and opponent markers with a single
// fair coin flip. The holder of MarkerX moves first.
func RandomMarkers() (string, string) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return MarkerX, MarkerO
	}
	return MarkerO, MarkerX
}
