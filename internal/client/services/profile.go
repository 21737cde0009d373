package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/trananh2004/shopfront/internal/client/imaging"
	"github.com/trananh2004/shopfront/internal/client/models"
	"github.com/trananh2004/shopfront/internal/client/rest"
	"github.com/trananh2004/shopfront/internal/client/session"
	"github.com/trananh2004/shopfront/internal/client/validation"
	"github.com/trananh2004/shopfront/internal/common"
	"github.com/trananh2004/shopfront/internal/logging"
)

// EditState is the coordinator's position in the edit lifecycle.
type EditState string

const (
	StateViewing EditState = "viewing"
	StateEditing EditState = "editing"
	StateSaving  EditState = "saving"
)

// ProfileService coordinates "load -> edit -> validate -> persist ->
// propagate" for the profile form, plus the avatar and password sub-flows
// that run outside the edit-mode state machine.
//
// The remote store only does full-record replacement, so every write merges
// the change onto the last-known full record first; otherwise untouched
// fields would be silently cleared.
type ProfileService interface {
	// Load fetches the authenticated profile and caches it as the last-known
	// full record.
	Load(ctx context.Context) (*models.Profile, error)

	// Current returns the cached record, or nil before the first Load.
	Current() *models.Profile

	State() EditState

	// BeginEdit enters edit mode with a draft pre-filled from the cached
	// record and clears any stale validation errors.
	BeginEdit() (*models.FormDraft, error)

	// Draft returns the live draft while editing, nil otherwise.
	Draft() *models.FormDraft

	// FieldErrors returns the validation errors from the last save attempt.
	FieldErrors() validation.Errors

	// Save validates the draft and, when clean, replaces the remote record
	// and patches the session. A non-empty Errors return means validation
	// blocked the write; the error return reports transport failures.
	Save(ctx context.Context) (validation.Errors, error)

	// Cancel discards the draft unconditionally.
	Cancel() error

	// UpdateAvatar compresses the image and persists it immediately,
	// independent of edit mode.
	UpdateAvatar(ctx context.Context, img io.Reader) error

	// ChangePassword re-fetches the record, verifies the old password and
	// replaces the record with only the password changed.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
}

type profileService struct {
	client  rest.Client
	session *session.Store
	log     logging.Logger

	mu      sync.Mutex
	state   EditState
	profile *models.Profile
	draft   *models.FormDraft
	errs    validation.Errors
}

func NewProfileService(client rest.Client, store *session.Store, log logging.Logger) ProfileService {
	return &profileService{
		client:  client,
		session: store,
		log:     log.With("component", "profile"),
		state:   StateViewing,
	}
}

func (s *profileService) Load(ctx context.Context) (*models.Profile, error) {
	id, ok := s.sessionID()
	if !ok {
		return nil, common.ErrNotLoggedIn
	}

	p, err := s.client.GetProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
	return p.Clone(), nil
}

func (s *profileService) Current() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

func (s *profileService) State() EditState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *profileService) BeginEdit() (*models.FormDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile == nil {
		return nil, common.ErrNotLoggedIn
	}
	if s.state == StateSaving {
		return nil, common.ErrSaveInProgress
	}

	s.state = StateEditing
	s.draft = models.NewFormDraft(s.profile)
	s.errs = nil
	return s.draft, nil
}

func (s *profileService) Draft() *models.FormDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *profileService) FieldErrors() validation.Errors {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errs
}

func (s *profileService) Save(ctx context.Context) (validation.Errors, error) {
	s.mu.Lock()
	switch s.state {
	case StateSaving:
		s.mu.Unlock()
		return nil, common.ErrSaveInProgress
	case StateViewing:
		s.mu.Unlock()
		return nil, common.ErrNotEditing
	}

	// Validation gates all writes: on any field error no network call is
	// made and the coordinator stays in edit mode.
	errs := validation.ValidateDraft(s.draft)
	if !errs.Empty() {
		s.errs = errs
		s.mu.Unlock()
		return errs, nil
	}

	s.errs = nil
	s.state = StateSaving
	body := s.draft.ApplyTo(s.profile)
	s.mu.Unlock()

	updated, err := s.client.ReplaceProfile(ctx, body.ID, body)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		// Draft stays intact; the user resumes editing where they left off.
		s.state = StateEditing
		return nil, fmt.Errorf("save profile: %w", err)
	}

	s.profile = updated
	s.draft = nil
	s.state = StateViewing

	// Session is patched only after the store write succeeded, so cached
	// display fields never run ahead of the persisted record.
	s.session.Patch(session.Fields{
		Name:        &updated.Name,
		Email:       &updated.Email,
		PhoneNumber: &updated.PhoneNumber,
		Address:     &updated.Address,
		Company:     &updated.Company,
		Dob:         &updated.Dob,
	})

	s.log.Info(ctx, "profile saved", "id", updated.ID)
	return nil, nil
}

func (s *profileService) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSaving {
		return common.ErrSaveInProgress
	}
	s.draft = nil
	s.errs = nil
	s.state = StateViewing
	return nil
}

func (s *profileService) UpdateAvatar(ctx context.Context, img io.Reader) error {
	id, ok := s.sessionID()
	if !ok {
		return common.ErrNotLoggedIn
	}

	dataURL, err := imaging.Compress(img)
	if err != nil {
		return err
	}

	base, err := s.lastKnownOrFetch(ctx, id)
	if err != nil {
		return err
	}

	body := base.Clone()
	body.Avatar = dataURL

	updated, err := s.client.ReplaceProfile(ctx, id, body)
	if err != nil {
		// Previous avatar stays; session was never touched.
		return fmt.Errorf("save avatar: %w", err)
	}

	s.mu.Lock()
	s.profile = updated
	s.mu.Unlock()

	s.session.Patch(session.Fields{Avatar: &updated.Avatar})
	s.log.Info(ctx, "avatar updated", "id", id, "bytes", len(updated.Avatar))
	return nil
}

func (s *profileService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	id, ok := s.sessionID()
	if !ok {
		return common.ErrNotLoggedIn
	}

	// Always act on a fresh record: the cached copy may hold a stale
	// password if another client changed it meanwhile.
	fresh, err := s.client.GetProfile(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch profile: %w", err)
	}

	if fresh.Password != oldPassword {
		return common.ErrOldPasswordIncorrect
	}

	body := fresh.Clone()
	body.Password = newPassword

	updated, err := s.client.ReplaceProfile(ctx, id, body)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	s.mu.Lock()
	s.profile = updated
	s.mu.Unlock()

	s.log.Info(ctx, "password changed", "id", id)
	return nil
}

func (s *profileService) sessionID() (string, bool) {
	identity, ok := s.session.Current()
	if !ok {
		return "", false
	}
	return identity.ID, true
}

// lastKnownOrFetch returns the cached full record, falling back to a fresh
// GET when nothing is cached yet (e.g. avatar change before opening the
// profile page).
func (s *profileService) lastKnownOrFetch(ctx context.Context, id string) (*models.Profile, error) {
	s.mu.Lock()
	p := s.profile
	s.mu.Unlock()
	if p != nil {
		return p, nil
	}

	fresh, err := s.client.GetProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	s.mu.Lock()
	s.profile = fresh
	s.mu.Unlock()
	return fresh, nil
}
