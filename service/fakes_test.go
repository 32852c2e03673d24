package service

import (
	"context"
	"errors"
	"sync"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

type recordingLogger struct {
	sync.Mutex
	infos, warnings, errors []string
}

func (l *recordingLogger) Info(msg string) {
	l.Lock()
	defer l.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warning(msg string) {
	l.Lock()
	defer l.Unlock()
	l.warnings = append(l.warnings, msg)
}

func (l *recordingLogger) Error(msg string) {
	l.Lock()
	defer l.Unlock()
	l.errors = append(l.errors, msg)
}

type memoryUserRepo struct {
	users   map[uuid.UUID]*dmn.User
	saveErr error
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[uuid.UUID]*dmn.User)}
}

func (r *memoryUserRepo) Save(_ context.Context, user *dmn.User) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.users[user.ID] = user
	return nil
}

func (r *memoryUserRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, dmn.ErrUserNotFound
}

func (r *memoryUserRepo) ByUsername(_ context.Context, username string) (*dmn.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, dmn.ErrUserNotFound
}

type stubTokenizer struct {
	claims map[string]interface{}
	ttl    time.Duration
	err    error
}

func (s *stubTokenizer) Generate(claims map[string]interface{}, ttl time.Duration) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.claims, s.ttl = claims, ttl
	return "signed-token", nil
}

func (s *stubTokenizer) Decode(token string) (map[string]interface{}, error) {
	if token != "signed-token" {
		return nil, errors.New("invalid token")
	}
	return s.claims, nil
}
