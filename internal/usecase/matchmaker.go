package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/isoteriksoftware/tictac-api/internal/apperror"
	"github.com/isoteriksoftware/tictac-api/internal/entity"
	"github.com/isoteriksoftware/tictac-api/internal/metrics"
	"github.com/isoteriksoftware/tictac-api/internal/repository"
)

type participantRepo interface {
	CreateOrUpdate(ctx context.Context, participant *entity.Participant) error
	GetByID(ctx context.Context, id string) (*entity.Participant, error)
	GetByName(ctx context.Context, name string) (*entity.Participant, error)
	ListAvailable(ctx context.Context) ([]*entity.Participant, error)
	Count(ctx context.Context) (int, error)
	DeleteByID(ctx context.Context, id string) error
}

type sessionRepo interface {
	CreateOrUpdate(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	Count(ctx context.Context) (int, error)
	DeleteByID(ctx context.Context, id string) error
}

// Matchmaker owns the participant registry, the available pool, the pending
// proposal table and the live session set. Every public method takes the
// single mutex, so pool membership, proposal state and session registration
// always mutate as one atomic unit.
type Matchmaker struct {
	logger *slog.Logger

	participantRepo participantRepo
	sessionRepo     sessionRepo

	proposalTTL time.Duration

	mu        sync.Mutex
	proposals map[string]*entity.Proposal // keyed by opponent id
}

func NewMatchmaker(logger *slog.Logger, participantRepo participantRepo, sessionRepo sessionRepo, proposalTTL time.Duration) *Matchmaker {
	return &Matchmaker{
		logger: logger,

		participantRepo: participantRepo,
		sessionRepo:     sessionRepo,

		proposalTTL: proposalTTL,
		proposals:   make(map[string]*entity.Proposal),
	}
}

// Counts is the population snapshot broadcast as status:changed.
type Counts struct {
	Participants int
	Sessions     int
}

// Status reports the current population snapshot, sent to every connection
// the moment it is established.
func (that *Matchmaker) Status(ctx context.Context) (Counts, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.counts(ctx)
}

type JoinResult struct {
	Participant *entity.Participant
	Counts      Counts
}

// Join registers a new participant and adds it to the available pool.
// Duplicate joins and empty names are rejected with sentinel errors the
// transport absorbs silently.
func (that *Matchmaker) Join(ctx context.Context, id, requestedName string) (*JoinResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if requestedName == "" {
		return nil, apperror.ErrEmptyName
	}

	if _, err := that.participantRepo.GetByID(ctx, id); err == nil {
		return nil, apperror.ErrAlreadyJoined
	} else if !errors.Is(err, repository.ErrParticipantNotFound) {
		return nil, fmt.Errorf("failed to look up participant: %w", err)
	}

	name, err := that.disambiguateName(ctx, id, requestedName)
	if err != nil {
		return nil, err
	}

	participant := &entity.Participant{
		ID:     id,
		Name:   name,
		Status: entity.StatusAvailable,
	}

	if err = that.participantRepo.CreateOrUpdate(ctx, participant); err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	counts, err := that.counts(ctx)
	if err != nil {
		return nil, err
	}

	return &JoinResult{Participant: participant, Counts: counts}, nil
}

type ReadyResult struct {
	ID        string
	Available []entity.PublicRecord
}

// Ready reports the caller's own id together with the current available
// pool, so a client can render the lobby.
func (that *Matchmaker) Ready(ctx context.Context, id string) (*ReadyResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	available, err := that.participantRepo.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list available participants: %w", err)
	}

	records := make([]entity.PublicRecord, 0, len(available))
	for _, participant := range available {
		records = append(records, participant.Public())
	}

	return &ReadyResult{ID: id, Available: records}, nil
}

type LeaveResult struct {
	Removed  bool
	Survivor *entity.Participant
	Counts   Counts
}

// Leave removes the participant from the registry and the pool. A live
// session ends the same way a dropped connection ends it: only the surviving
// side returns to the pool. Unknown ids report Removed=false and change
// nothing.
func (that *Matchmaker) Leave(ctx context.Context, id string) (*LeaveResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	removed, survivor, err := that.removeParticipant(ctx, id)
	if err != nil {
		return nil, err
	}

	counts, err := that.counts(ctx)
	if err != nil {
		return nil, err
	}

	return &LeaveResult{Removed: removed, Survivor: survivor, Counts: counts}, nil
}

// ProposeOutcome distinguishes the three resolutions of a proposal attempt.
type ProposeOutcome int

const (
	ProposeDelivered ProposeOutcome = iota
	ProposeOpponentNotFound
	ProposeOpponentEngaged
)

type ProposeResult struct {
	Outcome    ProposeOutcome
	Challenger entity.PublicRecord
	OpponentID string
}

// Propose starts a challenge negotiation. The challenger must be a known,
// available participant; otherwise the request is dropped. A failed proposal
// (unknown or engaged opponent, self-challenge, or an opponent already
// holding a pending proposal) removes the challenger from the available
// pool, mirroring upstream behavior.
func (that *Matchmaker) Propose(ctx context.Context, challengerID, opponentID string) (*ProposeResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.pruneExpiredProposals()

	challenger, err := that.participantRepo.GetByID(ctx, challengerID)
	if errors.Is(err, repository.ErrParticipantNotFound) {
		return nil, apperror.ErrParticipantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up challenger: %w", err)
	}

	if !challenger.IsAvailable() {
		return nil, apperror.ErrParticipantNotFound
	}

	opponent, err := that.participantRepo.GetByID(ctx, opponentID)
	if errors.Is(err, repository.ErrParticipantNotFound) {
		if err = that.removeFromPool(ctx, challenger); err != nil {
			return nil, err
		}
		return &ProposeResult{Outcome: ProposeOpponentNotFound, OpponentID: opponentID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up opponent: %w", err)
	}

	_, pending := that.proposals[opponentID]
	if !opponent.IsAvailable() || opponentID == challengerID || pending {
		if err = that.removeFromPool(ctx, challenger); err != nil {
			return nil, err
		}
		return &ProposeResult{Outcome: ProposeOpponentEngaged, OpponentID: opponentID}, nil
	}

	that.proposals[opponentID] = entity.NewProposal(challengerID, opponentID)
	metrics.ChallengesProposed.Inc()

	return &ProposeResult{
		Outcome:    ProposeDelivered,
		Challenger: challenger.Public(),
		OpponentID: opponentID,
	}, nil
}

type AcceptResult struct {
	Session    *entity.Session
	Challenger *entity.Participant
	Opponent   *entity.Participant
	Counts     Counts
}

// Accept resolves the pending proposal addressed to opponentID, but only if
// the declared challenger matches it and both parties are still available.
// Removing the proposal entry is what guarantees exactly one of
// accept/decline ever resolves it; pairing then sweeps whatever other
// proposals either party was involved in, so nobody can be paired twice.
func (that *Matchmaker) Accept(ctx context.Context, opponentID, challengerID string) (*AcceptResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.pruneExpiredProposals()

	proposal, ok := that.proposals[opponentID]
	if !ok || proposal.ChallengerID != challengerID {
		return nil, apperror.ErrNoPendingProposal
	}
	delete(that.proposals, opponentID)

	challenger, err := that.participantRepo.GetByID(ctx, challengerID)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return nil, apperror.ErrNoPendingProposal
		}
		return nil, fmt.Errorf("failed to look up challenger: %w", err)
	}

	opponent, err := that.participantRepo.GetByID(ctx, opponentID)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return nil, apperror.ErrNoPendingProposal
		}
		return nil, fmt.Errorf("failed to look up opponent: %w", err)
	}

	if !challenger.IsAvailable() || !opponent.IsAvailable() {
		return nil, apperror.ErrNoPendingProposal
	}

	challenger.Marker, opponent.Marker = entity.RandomMarkers()
	challenger.OpponentID = opponent.ID
	opponent.OpponentID = challenger.ID
	challenger.Status = entity.StatusEngaged
	opponent.Status = entity.StatusEngaged

	session := entity.NewSession(challenger, opponent)
	if challenger.Marker == entity.MarkerX {
		session.Turn = challenger.ID
	} else {
		session.Turn = opponent.ID
	}

	challenger.SessionID = session.ID
	opponent.SessionID = session.ID

	if err = that.participantRepo.CreateOrUpdate(ctx, challenger); err != nil {
		return nil, fmt.Errorf("failed to update challenger: %w", err)
	}
	if err = that.participantRepo.CreateOrUpdate(ctx, opponent); err != nil {
		return nil, fmt.Errorf("failed to update opponent: %w", err)
	}
	if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	that.sweepProposalsFor(challenger.ID)
	that.sweepProposalsFor(opponent.ID)

	counts, err := that.counts(ctx)
	if err != nil {
		return nil, err
	}

	return &AcceptResult{
		Session:    session,
		Challenger: challenger,
		Opponent:   opponent,
		Counts:     counts,
	}, nil
}

type DeclineResult struct {
	ChallengerID string
	OpponentName string
}

// Decline resolves the pending proposal addressed to opponentID without
// pairing. The challenger learns the opponent's display name.
func (that *Matchmaker) Decline(ctx context.Context, opponentID, challengerID string) (*DeclineResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.pruneExpiredProposals()

	proposal, ok := that.proposals[opponentID]
	if !ok || proposal.ChallengerID != challengerID {
		return nil, apperror.ErrNoPendingProposal
	}
	delete(that.proposals, opponentID)

	opponent, err := that.participantRepo.GetByID(ctx, opponentID)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return nil, apperror.ErrNoPendingProposal
		}
		return nil, fmt.Errorf("failed to look up opponent: %w", err)
	}

	return &DeclineResult{ChallengerID: challengerID, OpponentName: opponent.Name}, nil
}

type MoveResult struct {
	Session  *entity.Session
	Marker   string
	Move     string
	Turn     string
	WinnerID string
	Draw     bool
	Ended    bool
	Returned []*entity.Participant
	Counts   Counts
}

// MakeMove applies one move and, right after it, evaluates the mover's win
// condition before the opponent's. A terminal result tears the session down
// and returns both participants to the pool.
func (that *Matchmaker) MakeMove(ctx context.Context, participantID, sessionID, move string) (*MoveResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if move == "" {
		return nil, apperror.ErrInvalidPosition
	}

	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, apperror.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err = session.MakeMove(participantID, move); err != nil {
		return nil, err
	}
	metrics.MovesApplied.Inc()

	mover := session.ParticipantByID(participantID)
	opponent := session.OpponentOf(participantID)

	result := &MoveResult{
		Session: session,
		Marker:  mover.Marker,
		Move:    move,
		Turn:    session.Turn,
	}

	switch {
	case session.HasWinner(mover.Marker):
		result.WinnerID = mover.ID
	case session.HasWinner(opponent.Marker):
		result.WinnerID = opponent.ID
	case session.IsBoardFull():
		result.Draw = true
	}

	if result.WinnerID == "" && !result.Draw {
		if err = that.sessionRepo.CreateOrUpdate(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to update session: %w", err)
		}
		return result, nil
	}

	returned, err := that.endSession(ctx, session, "")
	if err != nil {
		return nil, err
	}

	counts, err := that.counts(ctx)
	if err != nil {
		return nil, err
	}

	result.Ended = true
	result.Returned = returned
	result.Counts = counts

	return result, nil
}

type ForfeitResult struct {
	Session     *entity.Session
	ForfeiterID string
	Returned    []*entity.Participant
	Counts      Counts
}

// Forfeit ends the session unilaterally. The forfeiter must belong to the
// session; anything else is dropped.
func (that *Matchmaker) Forfeit(ctx context.Context, participantID, sessionID string) (*ForfeitResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.sessionRepo.GetByID(ctx, sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, apperror.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.ParticipantByID(participantID) == nil {
		return nil, apperror.ErrSessionNotFound
	}

	returned, err := that.endSession(ctx, session, "")
	if err != nil {
		return nil, err
	}

	counts, err := that.counts(ctx)
	if err != nil {
		return nil, err
	}

	return &ForfeitResult{
		Session:     session,
		ForfeiterID: participantID,
		Returned:    returned,
		Counts:      counts,
	}, nil
}

type DisconnectResult struct {
	Removed  bool
	Survivor *entity.Participant
	Counts   Counts
}

// Disconnect handles a dropped connection: any pending proposal involving
// the participant is abandoned, a live session ends on the disconnect path
// (only the surviving side returns to the pool) and the participant itself
// is removed from the registry.
func (that *Matchmaker) Disconnect(ctx context.Context, id string) (*DisconnectResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	removed, survivor, err := that.removeParticipant(ctx, id)
	if err != nil {
		return nil, err
	}

	counts, err := that.counts(ctx)
	if err != nil {
		return nil, err
	}

	return &DisconnectResult{Removed: removed, Survivor: survivor, Counts: counts}, nil
}

// removeParticipant is the shared teardown behind Leave and Disconnect.
// Pending proposals are abandoned, a live session ends with only the
// surviving side returning to the pool, and the participant leaves the
// registry. Callers must hold the mutex.
func (that *Matchmaker) removeParticipant(ctx context.Context, id string) (bool, *entity.Participant, error) {
	participant, err := that.participantRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrParticipantNotFound) {
		return false, nil, nil
	}
	if err != nil {
		return false, nil, fmt.Errorf("failed to look up participant: %w", err)
	}

	that.sweepProposalsFor(id)

	var survivor *entity.Participant

	if participant.SessionID != "" {
		session, sessionErr := that.sessionRepo.GetByID(ctx, participant.SessionID)
		if sessionErr != nil && !errors.Is(sessionErr, repository.ErrSessionNotFound) {
			return false, nil, fmt.Errorf("failed to get session: %w", sessionErr)
		}

		if session != nil {
			survivorID := ""
			if other := session.OpponentOf(id); other != nil {
				survivorID = other.ID
			}

			returned, endErr := that.endSession(ctx, session, survivorID)
			if endErr != nil {
				return false, nil, endErr
			}

			if len(returned) > 0 {
				survivor = returned[0]
			}
		}
	}

	if err = that.participantRepo.DeleteByID(ctx, id); err != nil {
		return false, nil, fmt.Errorf("failed to delete participant: %w", err)
	}

	return true, survivor, nil
}

// endSession deregisters the session and returns participants to the pool.
// With a survivor id set (disconnect path) only the survivor comes back; the
// other side is gone and must not be re-added.
func (that *Matchmaker) endSession(ctx context.Context, session *entity.Session, survivorID string) ([]*entity.Participant, error) {
	log := that.logger.With("method", "endSession", "sessionID", session.ID)

	if err := that.sessionRepo.DeleteByID(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}

	returned := make([]*entity.Participant, 0, len(session.Players))

	for _, player := range session.Players {
		if survivorID != "" && player.ID != survivorID {
			continue
		}

		player.ResetEngagement()
		if err := that.participantRepo.CreateOrUpdate(ctx, player); err != nil {
			return nil, fmt.Errorf("failed to update participant: %w", err)
		}

		returned = append(returned, player)
	}

	log.Info("session ended")

	return returned, nil
}

// removeFromPool takes a participant out of the available pool without
// touching registry membership.
func (that *Matchmaker) removeFromPool(ctx context.Context, participant *entity.Participant) error {
	participant.Status = entity.StatusIdle

	if err := that.participantRepo.CreateOrUpdate(ctx, participant); err != nil {
		return fmt.Errorf("failed to update participant: %w", err)
	}

	return nil
}

func (that *Matchmaker) disambiguateName(ctx context.Context, id, requestedName string) (string, error) {
	_, err := that.participantRepo.GetByName(ctx, requestedName)
	if errors.Is(err, repository.ErrParticipantNotFound) {
		return requestedName, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up participant by name: %w", err)
	}

	prefix := id
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	return fmt.Sprintf("%s (%s%d)", requestedName, prefix, rand.Intn(10)), nil //nolint: gosec // it's ok
}

func (that *Matchmaker) pruneExpiredProposals() {
	for opponentID, proposal := range that.proposals {
		if proposal.Expired(that.proposalTTL) {
			delete(that.proposals, opponentID)
		}
	}
}

// sweepProposalsFor abandons every proposal the participant is a party to,
// closing the stale-listener leak on leave and disconnect.
func (that *Matchmaker) sweepProposalsFor(id string) {
	for opponentID, proposal := range that.proposals {
		if proposal.OpponentID == id || proposal.ChallengerID == id {
			delete(that.proposals, opponentID)
		}
	}
}

func (that *Matchmaker) counts(ctx context.Context) (Counts, error) {
	participants, err := that.participantRepo.Count(ctx)
	if err != nil {
		return Counts{}, fmt.Errorf("failed to count participants: %w", err)
	}

	sessions, err := that.sessionRepo.Count(ctx)
	if err != nil {
		return Counts{}, fmt.Errorf("failed to count sessions: %w", err)
	}

	metrics.ConnectedParticipants.Set(float64(participants))
	metrics.LiveSessions.Set(float64(sessions))

	return Counts{Participants: participants, Sessions: sessions}, nil
}
