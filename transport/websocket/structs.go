package websocket

import (
	"encoding/json"

	"github.com/isoteriksoftware/tictac-api/internal/entity"
)

// frame represents a WebSocket frame and its metadata.
type frame struct {
	isFin   bool
	opCode  byte
	length  uint64
	payload []byte
}

// Message is the tagged union every connection speaks: an action name plus
// an action-specific payload, validated at this boundary.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Inbound actions.
const (
	actionJoin             = "player:join"
	actionReady            = "player:ready"
	actionLeave            = "player:leave"
	actionChallengePropose = "challenge:propose"
	actionChallengeAccept  = "challenge:accept"
	actionChallengeDecline = "challenge:decline"
	actionMove             = "game:move"
	actionForfeit          = "game:forfeit"
)

// Outbound actions.
const (
	actionStatusChanged        = "status:changed"
	actionWelcome              = "player:welcome"
	actionConnect              = "player:connect"
	actionJoined               = "player:joined"
	actionLeft                 = "player:left"
	actionChallengeReceived    = "challenge:received"
	actionOpponentNotFound     = "challenge:opponent-not-found"
	actionOpponentEngaged      = "challenge:opponent-engaged"
	actionChallengeDeclined    = "challenge:declined"
	actionSessionStart         = "game:start"
	actionMatched              = "player:matched"
	actionSessionWon           = "game:won"
	actionSessionDraw          = "game:draw"
	actionSessionForfeited     = "game:forfeited"
	actionOpponentDisconnected = "game:opponent-disconnected"
)

type JoinPayload struct {
	Name string `json:"name"`
}

type ChallengePayload struct {
	OpponentID string `json:"opponent_id"`
}

// ChallengeAnswerPayload carries the declared challenger id an accept or
// decline answers to.
type ChallengeAnswerPayload struct {
	ID string `json:"id"`
}

type MovePayload struct {
	SessionID string `json:"session_id"`
	Move      string `json:"move"`
}

type ForfeitPayload struct {
	SessionID string `json:"session_id"`
}

type StatusPayload struct {
	Participants int `json:"participants"`
	Sessions     int `json:"sessions"`
}

type ConnectPayload struct {
	ID        string                `json:"id"`
	Available []entity.PublicRecord `json:"available"`
}

type ParticipantIDPayload struct {
	ID string `json:"id"`
}

type RejectPayload struct {
	OpponentID string `json:"opponent_id"`
}

type DeclinedPayload struct {
	OpponentName string `json:"opponent_name"`
}

type OpponentInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Marker string `json:"marker"`
}

// SessionStartPayload is what each paired participant receives: its own
// identity and marker, the session id, whose turn it is and the opponent's
// public identity.
type SessionStartPayload struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Marker    string       `json:"marker"`
	SessionID string       `json:"session_id"`
	Turn      string       `json:"turn"`
	Opponent  OpponentInfo `json:"opponent"`
}

type MoveMadePayload struct {
	Marker string `json:"marker"`
	Move   string `json:"move"`
	Turn   string `json:"turn"`
}

type WonPayload struct {
	WinnerID string `json:"winner_id"`
}

type ForfeitedPayload struct {
	ForfeiterID string `json:"forfeiter_id"`
}
