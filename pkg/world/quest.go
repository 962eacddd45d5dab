package world

// Quest is a quest definition. Objectives map objective keys
// (e.g. "gather:wood", "travel:Forest", "defeat_tag:mob") to required counts.
// Objectives are immutable once the quest is created.
type Quest struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Objectives  map[string]int `json:"objectives"`
}

// QuestProgress tracks one entity's progress against a quest definition.
// Completed is monotonic: once set it is never cleared.
type QuestProgress struct {
	QuestID   string         `json:"quest_id"`
	Progress  map[string]int `json:"progress"` // Objective key → accumulated count
	Completed bool           `json:"completed"`
}

// newQuestProgress creates an empty progress record bound to a quest.
func newQuestProgress(questID string) *QuestProgress {
	return &QuestProgress{
		QuestID:  questID,
		Progress: make(map[string]int),
	}
}

// satisfies reports whether every objective of the quest has been met.
func (qp *QuestProgress) satisfies(q *Quest) bool {
	for key, required := range q.Objectives {
		if qp.Progress[key] < required {
			return false
		}
	}
	return true
}
