package wizard

import (
	"slices"
	"sync"
	"time"
)

// DefaultAdvanceDelay is the quiescence window after which a completed,
// expanded section collapses and the next section opens.
const DefaultAdvanceDelay = 5 * time.Second

type sectionState struct {
	unlocked  bool
	collapsed bool
	completed bool
	timer     Timer
	gen       uint64
}

// Controller drives one wizard instance. All methods are safe for
// concurrent use; each one runs to completion under the controller lock, so
// field changes and their recomputation never interleave.
//
// Auto-advance: a section that becomes completed while expanded, or receives
// a field change while completed and expanded, (re)starts its timer. When the
// timer fires the section collapses and, unless already completed, the next
// section is unlocked and expanded. Timers are cancelled when their section
// becomes incomplete or loses interactability, and on Reset and Close.
// Manually reopening a completed section does not start a timer. Targeting
// completes together with the ad, so it unlocks already completed and stays
// collapsed until the user opens it.
type Controller struct {
	mu        sync.Mutex
	rules     Rules
	sched     Scheduler
	delay     time.Duration
	form      Form
	sections  [sectionCount]sectionState
	closed    bool
	onAdvance func(from Section)
}

// Option configures a Controller.
type Option func(*Controller)

// WithAdvanceHook registers fn to be called, outside the controller lock,
// every time a section auto-advances.
func WithAdvanceHook(fn func(from Section)) Option {
	return func(c *Controller) { c.onAdvance = fn }
}

// NewController returns a controller holding the default form. A nil
// scheduler means wall-clock timers; a non-positive delay means
// DefaultAdvanceDelay.
func NewController(rules Rules, sched Scheduler, delay time.Duration, opts ...Option) *Controller {
	if sched == nil {
		sched = RealScheduler{}
	}
	if delay <= 0 {
		delay = DefaultAdvanceDelay
	}
	c := &Controller{rules: rules, sched: sched, delay: delay}
	for _, opt := range opts {
		opt(c)
	}
	c.mu.Lock()
	c.resetLocked()
	c.mu.Unlock()
	return c
}

// Apply performs a field change. Changes to sections that are not yet
// interactable, and changes after Close, are ignored; the return value
// reports whether the change was applied.
func (c *Controller) Apply(ch Change) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || ch.set == nil || !c.interactable(ch.Section) {
		return false
	}
	next := c.form.Clone()
	ch.set(&next)
	c.form = next
	c.reconcile(ch.Section)
	return true
}

// Seed overwrites the draft with values derived from an existing entity.
// Completion is recomputed from the resulting fields; nothing is marked
// completed just because it was seeded.
func (c *Controller) Seed(seed CloneSeed) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	next := c.form.Clone()
	touched := seed.apply(&next)
	c.form = next
	c.reconcile(touched...)
}

// Toggle flips the collapsed state of an interactable section. It does not
// touch timers or the lock state of other sections.
func (c *Controller) Toggle(s Section) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || !c.interactable(s) {
		return false
	}
	c.sections[s].collapsed = !c.sections[s].collapsed
	return true
}

// Form returns a copy of the current draft.
func (c *Controller) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Clone()
}

// Ready reports whether every section is complete.
func (c *Controller) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rules.Ready(c.form)
}

// ReadyForm returns a copy of the draft together with its readiness, both
// read under one lock acquisition.
func (c *Controller) ReadyForm() (Form, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Clone(), c.rules.Ready(c.form)
}

// View returns a snapshot of the draft and of every section.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := View{Form: c.form.Clone(), Ready: c.rules.Ready(c.form)}
	for _, s := range Sections() {
		st := c.sections[s]
		v.Sections = append(v.Sections, SectionView{
			Section:        s,
			Phase:          phaseOf(st),
			Unlocked:       st.unlocked,
			Interactable:   c.interactable(s),
			Collapsed:      st.collapsed,
			Completed:      st.completed,
			AdvancePending: st.timer != nil,
		})
	}
	return v
}

// Phase returns the lifecycle state of one section.
func (c *Controller) Phase(s Section) Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return phaseOf(c.sections[s])
}

// Reset discards the draft and returns to the initial state.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

// Close cancels every pending timer. A closed controller ignores all further
// input.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
	c.closed = true
}

func (c *Controller) resetLocked() {
	for s := range c.sections {
		c.cancel(Section(s))
	}
	c.form = DefaultForm()
	c.closed = false
	for s := range c.sections {
		gen := c.sections[s].gen
		c.sections[s] = sectionState{collapsed: true, gen: gen}
	}
	c.sections[SectionCampaign].unlocked = true
	c.sections[SectionCampaign].collapsed = false
	c.reconcile()
}

// reconcile recomputes completion and lock state after the form changed,
// then updates the auto-advance timers. touched names the sections whose
// fields were edited.
func (c *Controller) reconcile(touched ...Section) {
	var was [sectionCount]bool
	for s := range c.sections {
		was[s] = c.sections[s].completed
		c.sections[s].completed = c.rules.Complete(Section(s), c.form)
	}
	for s := 1; s < int(sectionCount); s++ {
		if c.sections[s-1].completed {
			c.sections[s].unlocked = true
		}
	}
	for s := range c.sections {
		sec := Section(s)
		st := &c.sections[s]
		switch {
		case !c.interactable(sec):
			st.collapsed = true
			c.cancel(sec)
		case !st.completed:
			c.cancel(sec)
		case st.collapsed:
		case !was[s] || slices.Contains(touched, sec):
			c.arm(sec)
		}
	}
}

func (c *Controller) interactable(s Section) bool {
	if s < 0 || s >= sectionCount || !c.sections[s].unlocked {
		return false
	}
	for p := SectionCampaign; p < s; p++ {
		if !c.sections[p].completed {
			return false
		}
	}
	return true
}

func (c *Controller) arm(s Section) {
	c.cancel(s)
	gen := c.sections[s].gen
	c.sections[s].timer = c.sched.AfterFunc(c.delay, func() { c.advance(s, gen) })
}

func (c *Controller) cancel(s Section) {
	st := &c.sections[s]
	if st.timer != nil {
		st.timer.Stop()
		st.timer = nil
	}
	st.gen++
}

func (c *Controller) advance(s Section, gen uint64) {
	c.mu.Lock()
	st := &c.sections[s]
	if c.closed || st.gen != gen || st.timer == nil {
		c.mu.Unlock()
		return
	}
	st.timer = nil
	if !st.completed || st.collapsed {
		c.mu.Unlock()
		return
	}
	st.collapsed = true
	if next := s + 1; next < sectionCount {
		ns := &c.sections[next]
		ns.unlocked = true
		if !ns.completed && c.interactable(next) {
			ns.collapsed = false
		}
	}
	hook := c.onAdvance
	c.mu.Unlock()
	if hook != nil {
		hook(s)
	}
}

func phaseOf(st sectionState) Phase {
	switch {
	case !st.unlocked:
		return PhaseLocked
	case st.completed && st.collapsed:
		return PhaseCompletedCollapsed
	case st.completed:
		return PhaseCompletedExpanded
	case st.collapsed:
		return PhaseUnlockedCollapsed
	}
	return PhaseUnlockedExpanded
}
