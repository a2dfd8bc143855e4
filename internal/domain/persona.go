package domain

// NudgeKind identifies what triggered a nudge
type NudgeKind string

const (
	NudgeDistraction NudgeKind = "distraction"
	NudgeIdle        NudgeKind = "idle"
)

// Persona is the voice nudges and reports are written in
type Persona struct {
	Icon     string
	ID       string
	Messages map[NudgeKind][]string // canned fallbacks per nudge kind
	Name     string
	Prompt   string // system prompt for the message generator
}

// Fallbacks returns the canned messages for a nudge kind, possibly empty
func (p Persona) Fallbacks(kind NudgeKind) []string {
	if p.Messages == nil {
		return nil
	}
	return p.Messages[kind]
}

// DisplayName returns the persona name, or its id when unnamed
func (p Persona) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}
