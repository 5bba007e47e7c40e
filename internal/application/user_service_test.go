package application

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Koundinya12/UserService/internal/domain/entity"
)

type fakeRepo struct {
	mu        sync.Mutex
	users     map[string]*entity.User
	findErr   error
	saveErr   error
	findCalls int
	saveCalls int

	// optional gates for concurrency tests
	findStarted chan struct{}
	findRelease chan struct{}
}

func newFakeRepo(users ...*entity.User) *fakeRepo {
	r := &fakeRepo{users: map[string]*entity.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeRepo) FindByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	r.findCalls++
	started := r.findStarted
	release := r.findRelease
	r.mu.Unlock()

	if started != nil {
		started <- struct{}{}
	}
	if release != nil {
		<-release
	}
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.users[id], nil
}

func (r *fakeRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	u, _ := r.FindByUsername(ctx, username)
	return u != nil, nil
}

func (r *fakeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	r.users[u.ID] = u
	return u, nil
}

type fakeCache struct {
	mu       sync.Mutex
	data     map[string][]byte
	getErr   error
	putErr   error
	getCalls int
	putCalls int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func cacheKey(ns, field string) string { return ns + "/" + field }

func (c *fakeCache) Get(ctx context.Context, ns, field string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.getCalls++
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.data[cacheKey(ns, field)]
	return v, ok, nil
}

func (c *fakeCache) Put(ctx context.Context, ns, field string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.putCalls++
	if c.putErr != nil {
		return c.putErr
	}
	c.data[cacheKey(ns, field)] = value
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []map[string]any
	err    error
}

func (p *fakePublisher) PublishJSON(ctx context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	b, _ := json.Marshal(body)
	var m map[string]any
	_ = json.Unmarshal(b, &m)
	p.events = append(p.events, m)
	return nil
}

func TestGetUserDetailsCacheHitShortCircuit(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	raw, err := encodeProjection(&UserProjection{ID: "123", Name: "john", Email: "john@example.com"})
	require.NoError(t, err)
	cache.data[cacheKey("USERS", "USER123")] = raw

	svc := NewService(repo, cache, nil, nil)
	p, err := svc.GetUserDetails(context.Background(), "123")
	require.NoError(t, err)

	assert.Equal(t, &UserProjection{ID: "123", Name: "john", Email: "john@example.com"}, p)
	assert.Equal(t, 0, repo.findCalls, "store must not be consulted on a cache hit")
	assert.Equal(t, 0, cache.putCalls, "cache must not be written on a hit")
}

func TestGetUserDetailsMissThenFill(t *testing.T) {
	repo := newFakeRepo(&entity.User{ID: "321", Username: "alice", Email: "alice@example.com"})
	cache := newFakeCache()

	svc := NewService(repo, cache, nil, nil)
	p, err := svc.GetUserDetails(context.Background(), "321")
	require.NoError(t, err)

	want := &UserProjection{ID: "321", Name: "alice", Email: "alice@example.com"}
	assert.Equal(t, want, p)
	assert.Equal(t, 1, repo.findCalls)

	raw, ok := cache.data[cacheKey("USERS", "USER321")]
	require.True(t, ok, "projection must be written under USERS/USER321")
	cached, err := decodeProjection(raw)
	require.NoError(t, err)
	assert.Equal(t, want, cached, "cached value must equal the returned projection")
}

func TestGetUserDetailsNotFound(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()

	svc := NewService(repo, cache, nil, nil)
	_, err := svc.GetUserDetails(context.Background(), "999")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, 0, cache.putCalls, "no cache write when the store reports absent")
}

func TestGetUserDetailsCorruptEntry(t *testing.T) {
	repo := newFakeRepo(&entity.User{ID: "777", Username: "bob", Email: "bob@example.com"})
	cache := newFakeCache()
	cache.data[cacheKey("USERS", "USER777")] = []byte("not-a-dto")

	svc := NewService(repo, cache, nil, nil)
	_, err := svc.GetUserDetails(context.Background(), "777")

	assert.ErrorIs(t, err, ErrCorruptCache)
	assert.Equal(t, 0, repo.findCalls, "store must not be consulted on a corrupt entry")
}

func TestGetUserDetailsCacheGetFailure(t *testing.T) {
	repo := newFakeRepo(&entity.User{ID: "1", Username: "a", Email: "a@example.com"})
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")

	svc := NewService(repo, cache, nil, nil)
	_, err := svc.GetUserDetails(context.Background(), "1")

	assert.EqualError(t, err, "redis down")
	assert.Equal(t, 0, repo.findCalls, "store is not a fallback for a broken cache")
}

func TestGetUserDetailsCachePutFailure(t *testing.T) {
	repo := newFakeRepo(&entity.User{ID: "1", Username: "a", Email: "a@example.com"})
	cache := newFakeCache()
	cache.putErr = errors.New("redis down")

	svc := NewService(repo, cache, nil, nil)
	_, err := svc.GetUserDetails(context.Background(), "1")

	assert.EqualError(t, err, "redis down")
}

func TestGetUserDetailsStoreFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.findErr = errors.New("store unavailable")
	cache := newFakeCache()

	svc := NewService(repo, cache, nil, nil)
	_, err := svc.GetUserDetails(context.Background(), "1")

	assert.EqualError(t, err, "store unavailable")
	assert.Equal(t, 0, cache.putCalls)
}

func TestGetUserDetailsCoalescesConcurrentMisses(t *testing.T) {
	repo := newFakeRepo(&entity.User{ID: "5", Username: "eve", Email: "eve@example.com"})
	repo.findStarted = make(chan struct{}, 2)
	repo.findRelease = make(chan struct{})
	cache := newFakeCache()

	svc := NewService(repo, cache, nil, nil)

	results := make(chan error, 2)
	go func() {
		_, err := svc.GetUserDetails(context.Background(), "5")
		results <- err
	}()
	<-repo.findStarted // first load is in flight

	go func() {
		_, err := svc.GetUserDetails(context.Background(), "5")
		results <- err
	}()
	time.Sleep(20 * time.Millisecond) // let the second caller join the flight
	close(repo.findRelease)

	require.NoError(t, <-results)
	require.NoError(t, <-results)
	assert.Equal(t, 1, repo.findCalls, "concurrent misses for one id must share a single load")
}

func TestRegisterUser(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	pub := &fakePublisher{}

	svc := NewService(repo, cache, pub, nil)
	p, err := svc.RegisterUser(context.Background(), RegisterInput{ID: "555", Name: "reqName", Email: "req@example.com"})
	require.NoError(t, err)

	assert.Equal(t, &UserProjection{ID: "555", Name: "reqName", Email: "req@example.com"}, p)

	saved := repo.users["555"]
	require.NotNil(t, saved)
	assert.Equal(t, "reqName", saved.Username)
	assert.Equal(t, "req@example.com", saved.Email)
	assert.Empty(t, saved.Addresses)
	assert.Equal(t, 0, cache.putCalls, "register must not warm the cache")

	require.Len(t, pub.events, 1)
	assert.Equal(t, "user.registered", pub.events[0]["event"])
	assert.Equal(t, "555", pub.events[0]["id"])
}

func TestRegisterUserConflict(t *testing.T) {
	repo := newFakeRepo(&entity.User{ID: "555", Username: "existing", Email: "e@example.com"})
	cache := newFakeCache()

	svc := NewService(repo, cache, nil, nil)
	_, err := svc.RegisterUser(context.Background(), RegisterInput{ID: "555", Name: "reqName", Email: "req@example.com"})

	var exists *AlreadyExistsError
	require.ErrorAs(t, err, &exists)
	assert.Equal(t, "555", exists.ID)
	assert.Equal(t, "User with id 555 already exists", exists.Error())
	assert.Equal(t, 0, repo.saveCalls, "save must not run on an id conflict")
}

func TestRegisterUserPublishFailureIsSwallowed(t *testing.T) {
	repo := newFakeRepo()
	pub := &fakePublisher{err: errors.New("broker down")}

	svc := NewService(repo, newFakeCache(), pub, nil)
	p, err := svc.RegisterUser(context.Background(), RegisterInput{ID: "1", Name: "n", Email: "n@example.com"})

	require.NoError(t, err, "a broker failure must not fail a completed registration")
	assert.Equal(t, "1", p.ID)
}

func TestRegisterUserStoreFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.saveErr = errors.New("store unavailable")

	svc := NewService(repo, newFakeCache(), nil, nil)
	_, err := svc.RegisterUser(context.Background(), RegisterInput{ID: "1", Name: "n", Email: "n@example.com"})

	assert.EqualError(t, err, "store unavailable")
}
