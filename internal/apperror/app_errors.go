package apperror

import "errors"

var (
	ErrEmptyName           = errors.New("display name is empty")
	ErrAlreadyJoined       = errors.New("participant already joined")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrNoPendingProposal   = errors.New("no pending proposal")
	ErrSessionNotFound     = errors.New("session not found")
	ErrNotYourTurn         = errors.New("it's not your turn")
	ErrCellOccupied        = errors.New("cell is already occupied")
	ErrInvalidPosition     = errors.New("invalid board position")
)
