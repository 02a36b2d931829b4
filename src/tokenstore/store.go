package tokenstore

import (
	"sync"
	"time"
)

// Context is the authorization context bound to a token. Exactly two variants
// exist so a data endpoint can never accept an app-level token where a
// user-level token is required.
type Context interface {
	tokenContext()
}

// AppContext authorizes application-to-gateway calls issued via the
// client-credentials grant.
type AppContext struct {
	ClientID string
}

func (AppContext) tokenContext() {}

// UserContext authorizes data access limited to one user's linked accounts.
type UserContext struct {
	UserID               string
	AuthorizedAccountIDs map[string]struct{}
}

func (UserContext) tokenContext() {}

// Authorized reports whether the account is inside this token's scope.
func (c UserContext) Authorized(accountID string) bool {
	_, ok := c.AuthorizedAccountIDs[accountID]
	return ok
}

// Record is a stored token with its issuance bookkeeping. TTLSeconds of zero
// means no forced expiry.
type Record struct {
	Context    Context
	IssuedAt   time.Time
	TTLSeconds int64
}

func (r Record) expired(now time.Time) bool {
	if r.TTLSeconds <= 0 {
		return false
	}
	return now.After(r.IssuedAt.Add(time.Duration(r.TTLSeconds) * time.Second))
}

// Store is a concurrency-safe map of opaque token strings to authorization
// records. It is constructed at boot and injected; the gateway keeps separate
// instances for public tokens and access tokens.
type Store struct {
	mu      sync.Mutex
	records map[string]Record
}

func New() *Store {
	return &Store{records: make(map[string]Record)}
}

// Put stores or overwrites the record for token.
func (s *Store) Put(token string, rec Record) {
	if rec.IssuedAt.IsZero() {
		rec.IssuedAt = time.Now()
	}
	s.mu.Lock()
	s.records[token] = rec
	s.mu.Unlock()
}

// Get returns the record for token. Expired records are dropped and reported
// as absent.
func (s *Store) Get(token string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[token]
	if !ok {
		return Record{}, false
	}
	if rec.expired(time.Now()) {
		delete(s.records, token)
		return Record{}, false
	}
	return rec, true
}

// ConsumeOnce atomically retrieves and deletes the record for token. Under
// concurrent redemption of the same token exactly one caller wins.
func (s *Store) ConsumeOnce(token string) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[token]
	if !ok {
		return Record{}, false
	}
	delete(s.records, token)
	if rec.expired(time.Now()) {
		return Record{}, false
	}
	return rec, true
}

// Revoke removes the record for token if present.
func (s *Store) Revoke(token string) {
	s.mu.Lock()
	delete(s.records, token)
	s.mu.Unlock()
}
