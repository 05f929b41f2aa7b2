package entity

import "time"

// Proposal is one pending challenge awaiting accept or decline. Proposals
// live in process memory only; they never outlive their own resolution.
type Proposal struct {
	ChallengerID string
	OpponentID   string
	CreatedAt    time.Time
}

func NewProposal(challengerID, opponentID string) *Proposal {
	return &Proposal{
		ChallengerID: challengerID,
		OpponentID:   opponentID,
		CreatedAt:    time.Now(),
	}
}

func (that *Proposal) Expired(ttl time.Duration) bool {
	return time.Since(that.CreatedAt) > ttl
}
