package world

// Event is one immutable record in the world's chronological log.
// Events are append-only and ordered; ticks are non-decreasing.
type Event struct {
	Tick   int    `json:"tick"`
	Kind   string `json:"kind"`            // e.g. "move", "attack", "action_invalid"
	Detail string `json:"detail"`          // Free-form description
	Actor  string `json:"actor,omitempty"` // Acting entity ID, if any
}
