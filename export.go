package annotate

import "time"

// Export is the self-sufficient session document: feeding it back in as input
// reconstructs the same ids, order, and payloads, with all recorded judgments
// prefilled. Unjudged items appear in Order and Payloads but carry no entry
// in Judgments.
type Export struct {
	Judgments map[string]Value     `json:"judgments_by_id"`
	JudgedAt  map[string]time.Time `json:"judged_at_by_id,omitempty"`
	Order     []string             `json:"order"`
	Payloads  map[string]Payload   `json:"item_payloads"`
	Meta      ExportMeta           `json:"metadata"`
}

// ExportMeta describes the session that produced an export.
type ExportMeta struct {
	SessionID   string    `json:"session_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Count       int       `json:"count"`
	ValidValues []Value   `json:"valid_values"`
}

// Judgment returns the recorded value for id, if any.
func (e *Export) Judgment(id string) (Value, bool) {
	v, ok := e.Judgments[id]
	return v, ok
}
