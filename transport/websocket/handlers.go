package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/isoteriksoftware/tictac-api/internal/apperror"
	"github.com/isoteriksoftware/tictac-api/internal/entity"
	"github.com/isoteriksoftware/tictac-api/internal/usecase"
)

// isProtocolNoOp reports whether the error is one of the out-of-contract
// request classes that are absorbed without any reply, so protocol internals
// never leak to misbehaving clients.
func isProtocolNoOp(err error) bool {
	return errors.Is(err, apperror.ErrEmptyName) ||
		errors.Is(err, apperror.ErrAlreadyJoined) ||
		errors.Is(err, apperror.ErrParticipantNotFound) ||
		errors.Is(err, apperror.ErrNoPendingProposal) ||
		errors.Is(err, apperror.ErrSessionNotFound) ||
		errors.Is(err, apperror.ErrNotYourTurn) ||
		errors.Is(err, apperror.ErrCellOccupied) ||
		errors.Is(err, apperror.ErrInvalidPosition)
}

func (that *Server) handleJoin(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleJoin", "connectionID", conn.id)

	var payload JoinPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	result, err := that.matchmaker.Join(ctx, conn.id, payload.Name)
	if isProtocolNoOp(err) {
		log.Debug("join request dropped", "reason", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to join: %w", err)
	}

	that.broadcast(actionStatusChanged, StatusPayload{
		Participants: result.Counts.Participants,
		Sessions:     result.Counts.Sessions,
	})

	if err = that.sendMessage(conn, actionWelcome, nil); err != nil {
		log.Error("failed to send welcome", "error", err)
	}

	that.broadcastExcept(conn.id, actionJoined, result.Participant.Public())

	log.Info("participant joined", "name", result.Participant.Name)

	return nil
}

func (that *Server) handleReady(ctx context.Context, conn *connection, _ *Message) error {
	result, err := that.matchmaker.Ready(ctx, conn.id)
	if isProtocolNoOp(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get ready state: %w", err)
	}

	return that.sendMessage(conn, actionConnect, ConnectPayload{
		ID:        result.ID,
		Available: result.Available,
	})
}

func (that *Server) handleLeave(ctx context.Context, conn *connection, _ *Message) error {
	log := that.logger.With("method", "handleLeave", "connectionID", conn.id)

	result, err := that.matchmaker.Leave(ctx, conn.id)
	if err != nil {
		return fmt.Errorf("failed to leave: %w", err)
	}

	if result.Survivor != nil {
		that.sendTo(result.Survivor.ID, actionOpponentDisconnected, nil)
		that.broadcastExcept(result.Survivor.ID, actionJoined, result.Survivor.Public())
	}

	if !result.Removed {
		return nil
	}

	that.broadcastExcept(conn.id, actionLeft, ParticipantIDPayload{ID: conn.id})
	that.broadcast(actionStatusChanged, StatusPayload{
		Participants: result.Counts.Participants,
		Sessions:     result.Counts.Sessions,
	})

	log.Info("participant left")

	return nil
}

func (that *Server) handlePropose(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handlePropose", "connectionID", conn.id)

	var payload ChallengePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	result, err := that.matchmaker.Propose(ctx, conn.id, payload.OpponentID)
	if isProtocolNoOp(err) {
		log.Debug("proposal dropped", "reason", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to propose challenge: %w", err)
	}

	switch result.Outcome {
	case usecase.ProposeDelivered:
		that.sendTo(result.OpponentID, actionChallengeReceived, result.Challenger)
		log.Info("challenge delivered", "opponentID", result.OpponentID)
	case usecase.ProposeOpponentNotFound:
		return that.sendMessage(conn, actionOpponentNotFound, RejectPayload{OpponentID: result.OpponentID})
	case usecase.ProposeOpponentEngaged:
		return that.sendMessage(conn, actionOpponentEngaged, RejectPayload{OpponentID: result.OpponentID})
	}

	return nil
}

func (that *Server) handleAccept(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleAccept", "connectionID", conn.id)

	var payload ChallengeAnswerPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	result, err := that.matchmaker.Accept(ctx, conn.id, payload.ID)
	if isProtocolNoOp(err) {
		log.Debug("accept dropped", "reason", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to accept challenge: %w", err)
	}

	that.broadcast(actionStatusChanged, StatusPayload{
		Participants: result.Counts.Participants,
		Sessions:     result.Counts.Sessions,
	})

	that.sendSessionStart(result.Session, result.Challenger, result.Opponent)
	that.sendSessionStart(result.Session, result.Opponent, result.Challenger)

	that.broadcast(actionMatched, ParticipantIDPayload{ID: result.Challenger.ID})
	that.broadcast(actionMatched, ParticipantIDPayload{ID: result.Opponent.ID})

	log.Info("session started", "sessionID", result.Session.ID)

	return nil
}

func (that *Server) sendSessionStart(session *entity.Session, receiver, opponent *entity.Participant) {
	that.sendTo(receiver.ID, actionSessionStart, SessionStartPayload{
		ID:        receiver.ID,
		Name:      receiver.Name,
		Marker:    receiver.Marker,
		SessionID: session.ID,
		Turn:      session.Turn,
		Opponent: OpponentInfo{
			ID:     opponent.ID,
			Name:   opponent.Name,
			Marker: opponent.Marker,
		},
	})
}

func (that *Server) handleDecline(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleDecline", "connectionID", conn.id)

	var payload ChallengeAnswerPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	result, err := that.matchmaker.Decline(ctx, conn.id, payload.ID)
	if isProtocolNoOp(err) {
		log.Debug("decline dropped", "reason", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to decline challenge: %w", err)
	}

	that.sendTo(result.ChallengerID, actionChallengeDeclined, DeclinedPayload{OpponentName: result.OpponentName})

	log.Info("challenge declined", "challengerID", result.ChallengerID)

	return nil
}

func (that *Server) handleMove(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleMove", "connectionID", conn.id)

	var payload MovePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	result, err := that.matchmaker.MakeMove(ctx, conn.id, payload.SessionID, payload.Move)
	if isProtocolNoOp(err) {
		log.Debug("move dropped", "reason", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to make move: %w", err)
	}

	that.sendToSession(result.Session, actionMove, MoveMadePayload{
		Marker: result.Marker,
		Move:   result.Move,
		Turn:   result.Turn,
	})

	if result.WinnerID != "" {
		that.sendToSession(result.Session, actionSessionWon, WonPayload{WinnerID: result.WinnerID})
	}

	if result.Draw {
		that.sendToSession(result.Session, actionSessionDraw, nil)
	}

	if result.Ended {
		that.announceReturned(result.Returned, result.Counts)
		log.Info("session finished", "sessionID", result.Session.ID, "winnerID", result.WinnerID, "draw", result.Draw)
	}

	return nil
}

func (that *Server) handleForfeit(ctx context.Context, conn *connection, msg *Message) error {
	log := that.logger.With("method", "handleForfeit", "connectionID", conn.id)

	var payload ForfeitPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	result, err := that.matchmaker.Forfeit(ctx, conn.id, payload.SessionID)
	if isProtocolNoOp(err) {
		log.Debug("forfeit dropped", "reason", err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to forfeit: %w", err)
	}

	that.sendToSession(result.Session, actionSessionForfeited, ForfeitedPayload{ForfeiterID: result.ForfeiterID})
	that.announceReturned(result.Returned, result.Counts)

	log.Info("session forfeited", "sessionID", result.Session.ID)

	return nil
}

func (that *Server) sendToSession(session *entity.Session, action string, payload any) {
	for _, player := range session.Players {
		that.sendTo(player.ID, action, payload)
	}
}

// announceReturned re-announces participants that came back to the available
// pool after a session ended, so lobbies can offer them again.
func (that *Server) announceReturned(returned []*entity.Participant, counts usecase.Counts) {
	that.broadcast(actionStatusChanged, StatusPayload{
		Participants: counts.Participants,
		Sessions:     counts.Sessions,
	})

	for _, participant := range returned {
		that.broadcastExcept(participant.ID, actionJoined, participant.Public())
	}
}
