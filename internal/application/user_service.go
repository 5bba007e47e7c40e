package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Koundinya12/UserService/internal/domain/cache"
	"github.com/Koundinya12/UserService/internal/domain/entity"
	repo "github.com/Koundinya12/UserService/internal/domain/repository"
)

// Cache layout: one hash named after the namespace, fields "USER"+id.
// The field format is shared with other consumers of the keyspace and
// must not change.
const (
	userCacheNamespace   = "USERS"
	userCacheFieldPrefix = "USER"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrCorruptCache = errors.New("corrupt cache entry")
)

// AlreadyExistsError reports an id collision on the register path.
type AlreadyExistsError struct {
	ID string
}

func (e *AlreadyExistsError) Error() string {
	return "User with id " + e.ID + " already exists"
}

// EventPublisher is the narrow contract the service needs for emitting
// registration events. A nil publisher disables publishing.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type Service struct {
	Repo   repo.UserRepository
	Cache  cache.ProjectionCache
	Events EventPublisher
	Logger *logrus.Logger

	loads singleflight.Group
}

func NewService(r repo.UserRepository, c cache.ProjectionCache, events EventPublisher, logger *logrus.Logger) *Service {
	return &Service{Repo: r, Cache: c, Events: events, Logger: logger}
}

func userCacheField(id string) string {
	return userCacheFieldPrefix + id
}

// GetUserDetails implements the cache-aside read path: a valid cached
// projection is returned without touching the store; on a miss the user is
// loaded, projected, written back to the cache, and returned. Cache
// failures propagate; the store is never used as a fallback for a broken
// cache.
func (s *Service) GetUserDetails(ctx context.Context, id string) (*UserProjection, error) {
	field := userCacheField(id)

	raw, found, err := s.Cache.Get(ctx, userCacheNamespace, field)
	if err != nil {
		return nil, err
	}
	if found {
		p, err := decodeProjection(raw)
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithField("user_id", id).Warn("cache entry failed projection decode")
			}
			return nil, err
		}
		return p, nil
	}

	// Collapse concurrent misses for the same id into one store load.
	v, err, _ := s.loads.Do(id, func() (interface{}, error) {
		return s.loadAndFill(ctx, id, field)
	})
	if err != nil {
		return nil, err
	}
	return v.(*UserProjection), nil
}

func (s *Service) loadAndFill(ctx context.Context, id, field string) (*UserProjection, error) {
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	p := projectUser(id, u)
	raw, err := encodeProjection(p)
	if err != nil {
		return nil, err
	}
	if err := s.Cache.Put(ctx, userCacheNamespace, field, raw); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", id).Debug("user projection cached")
	}
	return p, nil
}

// RegisterInput carries the register request payload.
type RegisterInput struct {
	ID    string
	Name  string
	Email string
}

// RegisterUser creates a new user under the id-uniqueness invariant. The
// register path does not warm the cache and enforces uniqueness on id
// only.
func (s *Service) RegisterUser(ctx context.Context, in RegisterInput) (*UserProjection, error) {
	existing, err := s.Repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &AlreadyExistsError{ID: in.ID}
	}

	saved, err := s.Repo.Save(ctx, &entity.User{
		ID:        in.ID,
		Username:  in.Name,
		Email:     in.Email,
		Addresses: []entity.Address{},
	})
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", saved.ID).Info("user registered")
	}

	s.publishRegistered(ctx, saved)
	return projectUser(saved.ID, saved), nil
}

// publishRegistered emits a user.registered event. Publishing is
// best-effort: a broker failure must not fail a completed registration.
func (s *Service) publishRegistered(ctx context.Context, u *entity.User) {
	if s.Events == nil {
		return
	}
	event := map[string]any{
		"event":    "user.registered",
		"id":       u.ID,
		"name":     u.Username,
		"email":    u.Email,
		"occurred": time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := s.Events.PublishJSON(ctx, event); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("publish user.registered failed")
	}
}

func projectUser(id string, u *entity.User) *UserProjection {
	return &UserProjection{ID: id, Name: u.Username, Email: u.Email}
}
