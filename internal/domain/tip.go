package domain

// ─── Tip / Insight Types ────────────────────────────────────────────────────
// Tips and insights are ephemeral: generated fresh per request or event,
// handed to the notification layer, never persisted.

// TipType is the severity class of a tip or insight.
type TipType string

const (
	TipInfo    TipType = "info"
	TipSuccess TipType = "success"
	TipWarning TipType = "warning"
	TipAlert   TipType = "alert"
)

// TipPriority orders delivery of tips at the notification layer.
type TipPriority string

const (
	PriorityLow    TipPriority = "low"
	PriorityMedium TipPriority = "medium"
	PriorityHigh   TipPriority = "high"
)

// Tip is a contextual notification derived from an activity or a period of
// activity. The same shape serves per-activity tips and weekly insights.
type Tip struct {
	Type        TipType     `json:"type"`
	Title       string      `json:"title"`
	Message     string      `json:"message"`
	Priority    TipPriority `json:"priority"`
	Category    Category    `json:"category,omitempty"`
	Actionable  bool        `json:"actionable"`
	Suggestions []string    `json:"suggestions,omitempty"`
}
