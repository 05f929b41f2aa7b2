package entity

const (
	StatusAvailable = "available"
	StatusEngaged   = "engaged"

	// StatusIdle marks a participant that is in the registry but neither
	// available nor in a session, the state a challenger lands in after a
	// failed proposal.
	StatusIdle = "idle"
)

type Participant struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Marker     string `json:"marker,omitempty"`
	SessionID  string `json:"session_id,omitempty"`
	OpponentID string `json:"opponent_id,omitempty"`
	Status     string `json:"status"`
}

// PublicRecord is the participant shape shared with other connections:
// identity only, no session linkage.
type PublicRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (that *Participant) Public() PublicRecord {
	return PublicRecord{ID: that.ID, Name: that.Name}
}

func (that *Participant) IsAvailable() bool {
	return that.Status == StatusAvailable
}

// ResetEngagement returns the participant to the available pool shape,
// dropping marker, session and opponent links.
func (that *Participant) ResetEngagement() {
	that.Marker = ""
	that.SessionID = ""
	that.OpponentID = ""
	that.Status = StatusAvailable
}
