package configs

import "time"

// Wizard configures the campaign creation wizard.
//
// AdvanceDelay is the quiet period after which a completed section collapses
// and the next one opens. LeadObjective names the objective that switches
// ads to lead forms. OptimizationObjectives lists the objectives whose ad
// groups must carry an optimization event.
type Wizard struct {
	AdvanceDelay           time.Duration `env:"ADVANCE_DELAY" envDefault:"5s"`
	LeadObjective          string        `env:"LEAD_OBJECTIVE" envDefault:"LEAD_GENERATION"`
	OptimizationObjectives []string      `env:"OPTIMIZATION_OBJECTIVES" envDefault:"CONVERSIONS,WEB_CONVERSIONS,PRODUCT_SALES" envSeparator:","`
	// SessionLimit caps concurrently open wizard sessions.
	SessionLimit int `env:"SESSION_LIMIT" envDefault:"1000"`
}
