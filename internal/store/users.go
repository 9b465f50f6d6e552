package store

import (
	"context"
	"strings"
	"sync"

	"github.com/KailasVS666/Inventory-Management-System/internal/model"
	"github.com/KailasVS666/Inventory-Management-System/internal/persistence"
	"github.com/KailasVS666/Inventory-Management-System/prometheus"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultAdminUsername is the account seeded into an empty user store
	DefaultAdminUsername = "admin"
	// DefaultAdminPassword is used when no other bootstrap password is configured
	DefaultAdminPassword = "admin123"
	// MaxLoginAttempts is the console login retry budget
	MaxLoginAttempts = 3
)

// UserOption configures a UserStore
type UserOption func(*UserStore)

// WithHashCost sets the bcrypt cost used for new password hashes
func WithHashCost(cost int) UserOption {
	return func(s *UserStore) { s.hashCost = cost }
}

// UserStore owns the user accounts and the single current session
type UserStore struct {
	mu       sync.RWMutex
	users    []model.User
	current  *model.Session
	hashCost int

	gw  persistence.Gateway
	log *zap.Logger
}

// NewUserStore returns an empty user store persisting through gw
func NewUserStore(gw persistence.Gateway, log *zap.Logger, opts ...UserOption) *UserStore {
	s := &UserStore{
		hashCost: bcrypt.DefaultCost,
		gw:       gw,
		log:      log.With(zap.String("store", "users")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory accounts with the persisted ones
func (s *UserStore) Load(ctx context.Context) error {
	users, err := loadCollection[model.User](ctx, s.gw, s.log, persistence.UsersFile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
	return nil
}

// Save writes all accounts
func (s *UserStore) Save(ctx context.Context) error {
	return saveCollection(ctx, s.gw, s.log, persistence.UsersFile, s.snapshot())
}

// EnsureDefaultAdmin seeds an ADMIN account when the store is empty and
// persists it at once. It reports whether an account was created.
func (s *UserStore) EnsureDefaultAdmin(ctx context.Context, password string) (bool, error) {
	if password == "" {
		password = DefaultAdminPassword
	}

	s.mu.Lock()
	if len(s.users) > 0 {
		s.mu.Unlock()
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		s.mu.Unlock()
		return false, err
	}
	s.users = append(s.users, model.User{
		Username:     DefaultAdminUsername,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	})
	s.mu.Unlock()

	s.log.Info("Default admin account created", zap.String("username", DefaultAdminUsername))
	return true, s.Save(ctx)
}

// Authenticate checks the credentials. Usernames are case-sensitive.
func (s *UserStore) Authenticate(username, password string) (model.User, bool) {
	prometheus.AuthAttemptsCounter.Inc()

	s.mu.RLock()
	i := s.indexLocked(username)
	var u model.User
	if i >= 0 {
		u = s.users[i]
	}
	s.mu.RUnlock()

	if i < 0 {
		prometheus.RecordAuthError("user_not_found")
		return model.User{}, false
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		prometheus.RecordAuthError("invalid_password")
		return model.User{}, false
	}
	prometheus.AuthSuccessCounter.Inc()
	return u, true
}

// Login authenticates and makes the user the current session
func (s *UserStore) Login(username, password string) (model.Session, error) {
	u, ok := s.Authenticate(username, password)
	if !ok {
		s.log.Warn("Login failed", zap.String("username", username))
		return model.Session{}, &AuthenticationError{Username: username}
	}

	sess := model.Session{Username: u.Username, Role: u.Role}
	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()

	s.log.Info("User logged in", zap.String("username", u.Username), zap.String("role", u.Role))
	return sess, nil
}

// Logout clears the current session
func (s *UserStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.log.Info("User logged out", zap.String("username", s.current.Username))
	}
	s.current = nil
}

// Current returns the current session, if any
func (s *UserStore) Current() (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return model.Session{}, false
	}
	return *s.current, true
}

// CreateUser adds an account. Only ADMIN requestors may do so.
func (s *UserStore) CreateUser(requestorRole, username, password, role string) (model.User, error) {
	prometheus.RecordStoreOperation("users", "create")

	if requestorRole != model.RoleAdmin {
		return model.User{}, &PermissionError{Action: "create user", Role: requestorRole}
	}
	username = strings.TrimSpace(username)
	role = strings.ToUpper(strings.TrimSpace(role))
	switch {
	case username == "":
		return model.User{}, invalid("username", "must not be empty")
	case password == "":
		return model.User{}, invalid("password", "must not be empty")
	case !model.ValidRole(role):
		return model.User{}, invalid("role", "must be ADMIN or STAFF")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return model.User{}, invalid("password", "%v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(username) >= 0 {
		return model.User{}, invalid("username", "%q already exists", username)
	}
	u := model.User{Username: username, PasswordHash: string(hash), Role: role}
	s.users = append(s.users, u)

	s.log.Info("User created", zap.String("username", username), zap.String("role", role))
	return u, nil
}

// ChangePassword replaces the password of the session's user after
// verifying the old one.
func (s *UserStore) ChangePassword(session model.Session, oldPassword, newPassword string) error {
	prometheus.RecordStoreOperation("users", "change_password")

	if _, ok := s.Authenticate(session.Username, oldPassword); !ok {
		return &AuthenticationError{Username: session.Username}
	}
	if newPassword == "" {
		return invalid("new_password", "must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.hashCost)
	if err != nil {
		return invalid("new_password", "%v", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(session.Username)
	if i < 0 {
		return &NotFoundError{Kind: "user", ID: session.Username}
	}
	s.users[i].PasswordHash = string(hash)

	s.log.Info("Password changed", zap.String("username", session.Username))
	return nil
}

// List returns all accounts. Only ADMIN requestors may list users.
func (s *UserStore) List(requestorRole string) ([]model.User, error) {
	if requestorRole != model.RoleAdmin {
		return nil, &PermissionError{Action: "list users", Role: requestorRole}
	}
	return s.snapshot(), nil
}

// Len returns the number of accounts
func (s *UserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func (s *UserStore) snapshot() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *UserStore) indexLocked(username string) int {
	for i := range s.users {
		if s.users[i].Username == username {
			return i
		}
	}
	return -1
}
