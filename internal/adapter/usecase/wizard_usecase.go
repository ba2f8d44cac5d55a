package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"adsdesk/internal/core/domain"
	"adsdesk/internal/core/port"
	"adsdesk/internal/core/wizard"
)

var _ port.WizardService = (*WizardUseCase)(nil)

// WizardConfig carries the wizard settings of a WizardUseCase.
type WizardConfig struct {
	Rules        wizard.Rules
	Scheduler    wizard.Scheduler
	AdvanceDelay time.Duration
	SessionLimit int
}

type wizardSession struct {
	ctrl       *wizard.Controller
	submitting sync.Mutex
}

// WizardUseCase keeps one wizard controller per open creation dialog.
type WizardUseCase struct {
	cfg       WizardConfig
	mutations *MutationUseCase
	logger    *slog.Logger

	mu       sync.Mutex
	sessions map[string]*wizardSession
}

func NewWizardUseCase(cfg WizardConfig, mutations *MutationUseCase, logger *slog.Logger) *WizardUseCase {
	return &WizardUseCase{
		cfg:       cfg,
		mutations: mutations,
		logger:    logger,
		sessions:  make(map[string]*wizardSession),
	}
}

// Open starts a wizard session, optionally seeded from an existing entity.
func (u *WizardUseCase) Open(seed *wizard.CloneSeed) (string, wizard.View, error) {
	id := uuid.NewString()
	ctrl := wizard.NewController(u.cfg.Rules, u.cfg.Scheduler, u.cfg.AdvanceDelay,
		wizard.WithAdvanceHook(func(from wizard.Section) {
			u.logger.Debug("wizard section advanced", slog.String("session", id), slog.String("section", from.String()))
		}))
	if seed != nil {
		ctrl.Seed(*seed)
	}

	u.mu.Lock()
	if u.cfg.SessionLimit > 0 && len(u.sessions) >= u.cfg.SessionLimit {
		u.mu.Unlock()
		ctrl.Close()
		return "", wizard.View{}, port.ErrTooManySessions
	}
	u.sessions[id] = &wizardSession{ctrl: ctrl}
	u.mu.Unlock()
	return id, ctrl.View(), nil
}

// View returns the current state of a session.
func (u *WizardUseCase) View(id string) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	return s.ctrl.View(), nil
}

// Change applies a batch of field edits in order. Every edit is validated
// before any is applied. The returned count is the number of edits that
// took effect; edits to sections that are not interactable are ignored.
func (u *WizardUseCase) Change(id string, changes []port.FieldChange) (wizard.View, int, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, 0, err
	}
	parsed := make([]wizard.Change, 0, len(changes))
	for _, ch := range changes {
		sec, err := wizard.ParseSection(ch.Section)
		if err != nil {
			return wizard.View{}, 0, fmt.Errorf("%w: %v", wizard.ErrUnknownField, err)
		}
		c, err := wizard.ParseChange(sec, ch.Field, ch.Value)
		if err != nil {
			return wizard.View{}, 0, err
		}
		parsed = append(parsed, c)
	}
	applied := 0
	for _, c := range parsed {
		if s.ctrl.Apply(c) {
			applied++
		}
	}
	return s.ctrl.View(), applied, nil
}

// Seed pre-populates an open session from an existing entity.
func (u *WizardUseCase) Seed(id string, seed wizard.CloneSeed) (wizard.View, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, err
	}
	s.ctrl.Seed(seed)
	return s.ctrl.View(), nil
}

// Toggle collapses or expands a section by hand.
func (u *WizardUseCase) Toggle(id string, section wizard.Section) (wizard.View, bool, error) {
	s, err := u.session(id)
	if err != nil {
		return wizard.View{}, false, err
	}
	ok := s.ctrl.Toggle(section)
	return s.ctrl.View(), ok, nil
}

// Submit creates the drafted campaign. It is refused until every section is
// complete. A successful submission clears the draft; a failed one keeps it
// so the user can retry.
func (u *WizardUseCase) Submit(ctx context.Context, id string) (domain.CompositeResult, domain.Notification, error) {
	s, err := u.session(id)
	if err != nil {
		return domain.CompositeResult{}, domain.Notification{}, err
	}
	if !s.submitting.TryLock() {
		return domain.CompositeResult{}, domain.Notification{}, port.ErrMutationInFlight
	}
	defer s.submitting.Unlock()

	form, ready := s.ctrl.ReadyForm()
	if !ready {
		return domain.CompositeResult{}, domain.Notification{}, port.ErrWizardIncomplete
	}
	draft, err := form.Draft()
	if err != nil {
		return domain.CompositeResult{}, domain.Notification{}, err
	}
	res, n, err := u.mutations.CreateComposite(ctx, draft)
	if err != nil {
		return domain.CompositeResult{}, domain.Notification{}, err
	}
	if n.Level == domain.LevelSuccess {
		s.ctrl.Reset()
	}
	return res, n, nil
}

// Close ends a session and cancels its timers.
func (u *WizardUseCase) Close(id string) error {
	u.mu.Lock()
	s, ok := u.sessions[id]
	delete(u.sessions, id)
	u.mu.Unlock()
	if !ok {
		return port.ErrSessionNotFound
	}
	s.ctrl.Close()
	return nil
}

// CloseAll ends every session.
func (u *WizardUseCase) CloseAll() {
	u.mu.Lock()
	sessions := u.sessions
	u.sessions = make(map[string]*wizardSession)
	u.mu.Unlock()
	for _, s := range sessions {
		s.ctrl.Close()
	}
}

func (u *WizardUseCase) session(id string) (*wizardSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[id]
	if !ok {
		return nil, port.ErrSessionNotFound
	}
	return s, nil
}
