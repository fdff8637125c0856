package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hopechain/hopechain/internal/identity"
)

// Default simulated network latency for the two asynchronous operations.
// These are design placeholders for future real calls; tests inject zero.
const (
	DefaultLoginDelay    = time.Second
	DefaultRegisterDelay = 1500 * time.Millisecond
)

// Store is the single authority over "who is logged in". It holds at most
// one Identity, writes through to a durable slot on every successful
// mutation, and notifies subscribers synchronously.
//
// Mutations (Login, Register, Logout) serialize behind a single writer lock;
// when calls race, the policy is last-write-wins in arrival order.
type Store struct {
	directory *identity.DemoDirectory
	persister Persister
	logger    *slog.Logger

	loginDelay    time.Duration
	registerDelay time.Duration
	sleep         func(time.Duration)
	now           func() time.Time

	opMu sync.Mutex // serializes mutations

	mu          sync.RWMutex // guards current, loading, subscribers
	current     *identity.Identity
	loading     bool
	subscribers []func()
}

// Option configures a Store.
type Option func(*Store)

// WithDelays overrides the simulated login/register latency.
func WithDelays(login, register time.Duration) Option {
	return func(s *Store) {
		s.loginDelay = login
		s.registerDelay = register
	}
}

// WithSleeper replaces the wait primitive, letting tests observe or skip the
// simulated latency without wall-clock sleeps.
func WithSleeper(sleep func(time.Duration)) Option {
	return func(s *Store) { s.sleep = sleep }
}

// WithClock replaces the time source used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a session store. The store starts in the loading state until
// Initialize resolves.
func New(directory *identity.DemoDirectory, persister Persister, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		directory:     directory,
		persister:     persister,
		logger:        logger,
		loginDelay:    DefaultLoginDelay,
		registerDelay: DefaultRegisterDelay,
		sleep:         time.Sleep,
		now:           time.Now,
		loading:       true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize adopts a previously persisted identity, if present and
// well-formed, as the current session. A malformed or incompatible record
// loads as "no session" so the application always reaches a usable state.
func (s *Store) Initialize(ctx context.Context) {
	id, ok, err := s.persister.Load(ctx)
	if err != nil {
		s.logger.Warn("session restore failed, starting logged out", "error", err)
		ok = false
	}

	s.mu.Lock()
	if ok {
		s.current = &id
	}
	s.loading = false
	s.mu.Unlock()
}

// Current returns a read copy of the authenticated identity, if any.
func (s *Store) Current() (identity.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return identity.Identity{}, false
	}
	return *s.current, true
}

// Loading reports whether initialization or a mutation is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Subscribe registers a callback invoked synchronously after every
// successful session change.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// Login authenticates against the fixed demo directory. It returns true and
// adopts the matching identity only when the email matches exactly and the
// password equals the demo secret; otherwise the session is left untouched.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	s.sleep(s.loginDelay)

	id, ok := s.directory.Authenticate(email, password)
	if !ok {
		return false
	}

	if err := s.persister.Save(ctx, id); err != nil {
		s.logger.Error("persist session", "error", err)
		return false
	}

	s.adopt(id)
	s.logger.Info("session login", "user_id", id.ID, "role", string(id.Role))
	return true
}

// Register synthesizes a new identity from the draft and adopts it. There is
// no duplicate-email check in the current design; the only failure mode is a
// durable write error.
func (s *Store) Register(ctx context.Context, draft identity.RegistrationDraft) bool {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.setLoading(true)
	defer s.setLoading(false)

	s.sleep(s.registerDelay)

	id := identity.NewRegistered(draft, s.now())

	if err := s.persister.Save(ctx, id); err != nil {
		s.logger.Error("persist session", "error", err)
		return false
	}

	s.adopt(id)
	s.logger.Info("session register", "user_id", id.ID, "role", string(id.Role))
	return true
}

// Logout clears the session and removes the durable record. Calling it with
// no active session is a no-op.
func (s *Store) Logout(ctx context.Context) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.RLock()
	active := s.current != nil
	s.mu.RUnlock()
	if !active {
		return
	}

	if err := s.persister.Clear(ctx); err != nil {
		// The in-process session still ends; the stale record is
		// overwritten by the next login.
		s.logger.Warn("clear persisted session", "error", err)
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	s.logger.Info("session logout")
	s.notify()
}

func (s *Store) adopt(id identity.Identity) {
	s.mu.Lock()
	s.current = &id
	s.mu.Unlock()
	s.notify()
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.RLock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn()
	}
}
