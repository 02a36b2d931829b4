package tokenstore

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutAndGet(t *testing.T) {
	s := New()

	s.Put("tok_1", Record{Context: AppContext{ClientID: "client_1"}, TTLSeconds: 60})

	rec, ok := s.Get("tok_1")
	require.True(t, ok)
	app, ok := rec.Context.(AppContext)
	require.True(t, ok)
	assert.Equal(t, "client_1", app.ClientID)
	assert.False(t, rec.IssuedAt.IsZero())

	_, ok = s.Get("tok_unknown")
	assert.False(t, ok)
}

func TestGetDropsExpired(t *testing.T) {
	s := New()

	s.Put("tok_old", Record{
		Context:    AppContext{ClientID: "client_1"},
		IssuedAt:   time.Now().Add(-2 * time.Minute),
		TTLSeconds: 60,
	})

	_, ok := s.Get("tok_old")
	assert.False(t, ok)

	// zero TTL means no forced expiry
	s.Put("tok_forever", Record{
		Context:  UserContext{UserID: "user_1"},
		IssuedAt: time.Now().Add(-24 * time.Hour),
	})
	_, ok = s.Get("tok_forever")
	assert.True(t, ok)
}

func TestConsumeOnce(t *testing.T) {
	s := New()
	s.Put("tok_public", Record{Context: UserContext{UserID: "user_1"}})

	rec, ok := s.ConsumeOnce("tok_public")
	require.True(t, ok)
	user, ok := rec.Context.(UserContext)
	require.True(t, ok)
	assert.Equal(t, "user_1", user.UserID)

	_, ok = s.ConsumeOnce("tok_public")
	assert.False(t, ok, "second consume must see absent")
	_, ok = s.Get("tok_public")
	assert.False(t, ok)
}

func TestConsumeOnceConcurrent(t *testing.T) {
	s := New()
	s.Put("tok_public", Record{Context: UserContext{UserID: "user_1"}})

	const callers = 64
	var wins int64
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, ok := s.ConsumeOnce("tok_public"); ok {
				atomic.AddInt64(&wins, 1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), wins, "exactly one redemption must succeed")
}

func TestRevoke(t *testing.T) {
	s := New()
	s.Put("tok_1", Record{Context: AppContext{ClientID: "client_1"}})
	s.Revoke("tok_1")

	_, ok := s.Get("tok_1")
	assert.False(t, ok)
}

func TestUserContextAuthorized(t *testing.T) {
	c := UserContext{
		UserID: "user_1",
		AuthorizedAccountIDs: map[string]struct{}{
			"acc_1": {},
		},
	}
	assert.True(t, c.Authorized("acc_1"))
	assert.False(t, c.Authorized("acc_2"))
}
