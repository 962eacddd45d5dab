package action

// Status distinguishes successful effects from expected domain failures.
type Status string

const (
	StatusOK    Status = "ok"
	StatusError Status = "error"
)

// Result is the structured outcome of one action attempt. Expected domain
// failures (missing actor, insufficient resources, and so on) are reported
// here as reason codes, never as Go errors, and never leave partial
// mutation behind.
type Result struct {
	Status Status `json:"status"`
	Detail string `json:"detail"`
}

// Reason codes for expected domain failures.
const (
	ReasonActorNotFound     = "actor_not_found"
	ReasonTargetNotFound    = "target_not_found"
	ReasonEntityNotFound    = "entity_not_found"
	ReasonAreaNotFound      = "area_not_found"
	ReasonResourceDepleted  = "resource_depleted"
	ReasonMissingMaterials  = "missing_materials"
	ReasonInsufficientItems = "insufficient_items"
	ReasonInsufficientMana  = "insufficient_mana"
	ReasonSkillMissing      = "skill_missing"
	ReasonQuestUnavailable  = "quest_unavailable"
	ReasonInvalidAction     = "invalid_action"
)

// OK builds a success result.
func OK(detail string) Result {
	return Result{Status: StatusOK, Detail: detail}
}

// Error builds a failure result carrying a reason code.
func Error(reason string) Result {
	return Result{Status: StatusError, Detail: reason}
}
