package achievementqueue

// TierAuditArgs is the periodic self-healing sweep job. It carries no
// arguments; the sweep derives its candidate set from durable state.
type TierAuditArgs struct{}

// Kind returns the job type identifier for River.
func (TierAuditArgs) Kind() string { return "tier_audit" }
