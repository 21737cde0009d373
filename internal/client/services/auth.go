// Package services contains the application services of the account shell:
// authentication, the profile update coordinator, and the product catalog.
package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/trananh2004/shopfront/internal/client/models"
	"github.com/trananh2004/shopfront/internal/client/rest"
	"github.com/trananh2004/shopfront/internal/client/session"
	"github.com/trananh2004/shopfront/internal/client/validation"
	"github.com/trananh2004/shopfront/internal/common"
)

// AuthService drives login, registration and logout against the user
// collection of the remote store.
//
// The store keeps passwords in plaintext and the credential check is a
// client-side equality test. That is the store's contract, not a security
// property; see DESIGN.md.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, req RegisterRequest) (*models.Profile, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// RegisterRequest carries the new-account fields. Optional fields may stay
// empty; they pass through the same validation rules as the profile form.
type RegisterRequest struct {
	Name        string
	Email       string
	Password    string
	PhoneNumber string
	Address     string
	Company     string
	Dob         int64
}

type authService struct {
	client        rest.Client
	session       *session.Store
	markerKey     []byte
	tokenValidity time.Duration
}

// NewAuthService constructs an AuthService. markerKey signs the local
// session marker; a fresh random key per process is fine since markers
// never leave the client.
func NewAuthService(client rest.Client, store *session.Store, markerKey []byte, tokenValidity time.Duration) AuthService {
	return &authService{client: client, session: store, markerKey: markerKey, tokenValidity: tokenValidity}
}

// Login looks the email up in the store and compares the supplied password
// with the stored one. Unknown email and wrong password both return
// common.ErrInvalidEmailPassword so the response does not reveal whether
// the account exists.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	users, err := a.client.FindUsersByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("login lookup: %w", err)
	}
	if len(users) == 0 {
		return common.ErrInvalidEmailPassword
	}

	user := users[0]
	if subtle.ConstantTimeCompare([]byte(user.Password), password) == 0 {
		return common.ErrInvalidEmailPassword
	}

	token, err := session.NewMarker(user.ID, a.markerKey, a.tokenValidity)
	if err != nil {
		return fmt.Errorf("session marker: %w", err)
	}

	a.session.SetCredentials(identityFrom(user), token)
	return nil
}

// Register validates the new-account fields with the profile rule set and
// creates the record. The caller logs in separately.
func (a *authService) Register(ctx context.Context, req RegisterRequest) (*models.Profile, error) {
	draft := &models.FormDraft{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Company:     req.Company,
	}
	if errs := validation.ValidateDraft(draft); !errs.Empty() {
		return nil, &ValidationFailedError{Errors: errs}
	}
	if err := validation.ValidateDob(req.Dob); err != nil {
		return nil, &ValidationFailedError{Errors: validation.Errors{validation.FieldDob: err.Error()}}
	}

	p := &models.Profile{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Company:     req.Company,
		Dob:         req.Dob,
	}

	created, err := a.client.CreateUser(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return created, nil
}

// Logout destroys the session. The store holds no server-side session, so
// there is nothing to revoke remotely.
func (a *authService) Logout(ctx context.Context) error {
	a.session.Clear()
	return nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// ValidationFailedError carries the field error map across the service
// boundary for flows that validate inside the service.
type ValidationFailedError struct {
	Errors validation.Errors
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Errors))
}

func identityFrom(p *models.Profile) session.Identity {
	return session.Identity{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		Address:     p.Address,
		Company:     p.Company,
		Dob:         p.Dob,
		Avatar:      p.Avatar,
	}
}
