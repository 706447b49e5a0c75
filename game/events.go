package game

import "fmt"

// EventKind classifies narration lines.
type EventKind string

const (
	EventLeader     EventKind = "leader"
	EventCombat     EventKind = "combat"
	EventCapture    EventKind = "capture"
	EventSuccession EventKind = "succession"
	EventReinforce  EventKind = "reinforce"
	EventConclusion EventKind = "conclusion"
)

// Event is one line of the chronological narration feed.
type Event struct {
	Turn int       `json:"turn"`
	Kind EventKind `json:"kind"`
	Text string    `json:"text"`
}

func (e Event) String() string {
	return fmt.Sprintf("[T=%03d] %-10s %s", e.Turn, e.Kind, e.Text)
}

// narrator appends to the match feed unless silenced. Silence never changes what the
// engine computes or draws.
type narrator struct {
	m      *Match
	silent bool
}

func (n narrator) say(kind EventKind, format string, args ...any) {
	if n.silent {
		return
	}
	n.m.Events = append(n.m.Events, Event{
		Turn: n.m.Turn,
		Kind: kind,
		Text: fmt.Sprintf(format, args...),
	})
}
