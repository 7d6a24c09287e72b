// Package identity owns the signed-in session and the registered-users
// directory. Credentials are stored as plain strings keyed by user id,
// separate from the user record; this mirrors the documented stand-in
// contract, not a real security model.
package identity

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopverse/shopverse/pkg/enums"
	pkgerrors "github.com/shopverse/shopverse/pkg/errors"
	"github.com/shopverse/shopverse/pkg/ids"
	"github.com/shopverse/shopverse/pkg/kv"
	"github.com/shopverse/shopverse/pkg/logger"
	"github.com/shopverse/shopverse/pkg/models"
	"github.com/shopverse/shopverse/pkg/types"
)

const (
	sessionKey          = "shopverse_user"
	directoryKey        = "shopverse_users"
	credentialKeyPrefix = "password_"
)

// RegisterInput carries the sign-up form fields.
type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Phone    string `validate:"required"`
}

// ProfilePatch holds the fields UpdateProfile merges; nil fields are
// left untouched.
type ProfilePatch struct {
	Name         *string
	Email        *string
	Phone        *string
	ProfileImage *string
	Address      *types.Address
}

// StoreParams groups dependencies for the identity store.
type StoreParams struct {
	KV     kv.Store
	Logger *logger.Logger

	// SimulatedLatency delays Login and Register before they resolve, to
	// emulate a remote identity provider. Zero disables it.
	SimulatedLatency time.Duration

	// Now and NewID are injectable for tests.
	Now   func() time.Time
	NewID func() string
}

// Store holds the session and mediates access to the directory.
type Store struct {
	kv       kv.Store
	log      *logger.Logger
	validate *validator.Validate
	delay    time.Duration
	now      func() time.Time
	newID    func() string

	mu      sync.Mutex
	user    *models.User
	loading bool
}

// NewStore builds an identity store with the required dependencies.
func NewStore(params StoreParams) (*Store, error) {
	if params.KV == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "kv store is required")
	}
	if params.Logger == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "logger is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	newID := params.NewID
	if newID == nil {
		newID = ids.NewUserID
	}
	return &Store{
		kv:       params.KV,
		log:      params.Logger,
		validate: validator.New(),
		delay:    params.SimulatedLatency,
		now:      now,
		newID:    newID,
	}, nil
}

// Load restores the signed-in session, if any. Corrupt session data is
// discarded and the visitor starts signed out.
func (s *Store) Load(ctx context.Context) error {
	value, ok, err := s.kv.Get(ctx, sessionKey)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading session")
	}
	if !ok {
		return nil
	}

	var user models.User
	if err := json.Unmarshal([]byte(value), &user); err != nil {
		s.log.Warn(ctx, "discarding corrupt session data")
		if delErr := s.kv.Delete(ctx, sessionKey); delErr != nil {
			s.log.Error(ctx, "removing corrupt session entry", delErr)
		}
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &user
	return nil
}

// Register creates an account with role user and a default address,
// stores the credential under its own key, and signs the new user in.
// It fails with a conflict error when the email is already registered,
// matched case-insensitively.
func (s *Store) Register(ctx context.Context, input RegisterInput) (models.User, error) {
	if err := s.beginAuth(); err != nil {
		return models.User{}, err
	}
	defer s.endAuth()

	if err := s.validate.Struct(input); err != nil {
		return models.User{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid registration details")
	}

	if err := s.simulateLatency(ctx); err != nil {
		return models.User{}, err
	}

	users, err := s.loadDirectory(ctx)
	if err != nil {
		return models.User{}, err
	}
	for _, existing := range users {
		if strings.EqualFold(existing.Email, input.Email) {
			return models.User{}, pkgerrors.New(pkgerrors.CodeConflict, "an account with this email already exists")
		}
	}

	user := models.User{
		ID:        s.newID(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   types.DefaultAddress(),
		Role:      enums.UserRoleUser,
		CreatedAt: s.now(),
	}

	users = append(users, user)
	if err := s.saveDirectory(ctx, users); err != nil {
		return models.User{}, err
	}
	if err := s.kv.Set(ctx, credentialKeyPrefix+user.ID, input.Password); err != nil {
		return models.User{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "storing credential")
	}
	if err := s.saveSession(ctx, user); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return user, nil
}

// Login signs a registered user in. It fails with a not-found error when
// no account matches the email (case-insensitively) and an unauthorized
// error when the stored credential does not exactly match.
func (s *Store) Login(ctx context.Context, email, password string) (models.User, error) {
	if err := s.beginAuth(); err != nil {
		return models.User{}, err
	}
	defer s.endAuth()

	if err := s.simulateLatency(ctx); err != nil {
		return models.User{}, err
	}

	users, err := s.loadDirectory(ctx)
	if err != nil {
		return models.User{}, err
	}

	var user *models.User
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			user = &users[i]
			break
		}
	}
	if user == nil {
		return models.User{}, pkgerrors.New(pkgerrors.CodeNotFound, "no account found with this email")
	}

	credential, ok, err := s.kv.Get(ctx, credentialKeyPrefix+user.ID)
	if err != nil {
		return models.User{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading credential")
	}
	if !ok || credential != password {
		return models.User{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "incorrect password")
	}

	if err := s.saveSession(ctx, *user); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return *user, nil
}

// Logout clears the signed-in session. The registered-users directory is
// untouched, so the account can sign back in.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.kv.Delete(ctx, sessionKey); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing session")
	}
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return nil
}

// UpdateProfile merges the patch into the signed-in session and the
// matching directory entry. A signed-out store is a no-op.
func (s *Store) UpdateProfile(ctx context.Context, patch ProfilePatch) error {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return nil
	}
	updated := *s.user
	s.mu.Unlock()

	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Email != nil {
		updated.Email = *patch.Email
	}
	if patch.Phone != nil {
		updated.Phone = *patch.Phone
	}
	if patch.ProfileImage != nil {
		updated.ProfileImage = *patch.ProfileImage
	}
	if patch.Address != nil {
		updated.Address = *patch.Address
	}

	users, err := s.loadDirectory(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == updated.ID {
			users[i] = updated
			if err := s.saveDirectory(ctx, users); err != nil {
				return err
			}
			break
		}
	}

	if err := s.saveSession(ctx, updated); err != nil {
		return err
	}

	s.mu.Lock()
	s.user = &updated
	s.mu.Unlock()
	return nil
}

// CurrentUser returns the signed-in user and whether one exists.
func (s *Store) CurrentUser() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a user is signed in.
func (s *Store) IsAuthenticated() bool {
	_, ok := s.CurrentUser()
	return ok
}

// Loading reports whether a Login or Register call is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// beginAuth claims the single in-flight auth slot. The original had no
// guard here; a second concurrent attempt now fails fast instead of
// racing the first.
func (s *Store) beginAuth() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "another sign-in attempt is already in progress")
	}
	s.loading = true
	return nil
}

func (s *Store) endAuth() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

func (s *Store) simulateLatency(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return pkgerrors.Wrap(pkgerrors.CodeDependency, ctx.Err(), "sign-in aborted")
	}
}

func (s *Store) loadDirectory(ctx context.Context) ([]models.User, error) {
	value, ok, err := s.kv.Get(ctx, directoryKey)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading user directory")
	}
	if !ok {
		return []models.User{}, nil
	}

	var users []models.User
	if err := json.Unmarshal([]byte(value), &users); err != nil {
		s.log.Warn(ctx, "discarding corrupt user directory")
		return []models.User{}, nil
	}
	return users, nil
}

func (s *Store) saveDirectory(ctx context.Context, users []models.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding user directory")
	}
	if err := s.kv.Set(ctx, directoryKey, string(raw)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting user directory")
	}
	return nil
}

func (s *Store) saveSession(ctx context.Context, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding session")
	}
	if err := s.kv.Set(ctx, sessionKey, string(raw)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting session")
	}
	return nil
}
