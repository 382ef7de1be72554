// Package userlist keeps the ordered, in-memory list of accounts composed
// during a session.
//
// Usernames are unique within a Store. Every successful mutation notifies the
// registered listeners with a snapshot of the list, which is how the CLI
// keeps its prompt and previews current.
//
// A Store is not safe for concurrent use.
package userlist

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/userseed/internal/common"
	"github.com/dmitrijs2005/userseed/internal/models"
)

// Listener receives a snapshot of the list after a change.
type Listener func(users []models.User)

type subscription struct {
	id int
	fn Listener
}

type Store struct {
	users     []models.User
	listeners []subscription
	nextID    int
	now       func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// NewStoreWithClock returns a Store that stamps CreatedAt using now.
func NewStoreWithClock(now func() time.Time) *Store {
	s := NewStore()
	s.now = now
	return s
}

func (s *Store) indexOf(username string) int {
	for i, u := range s.users {
		if u.Username == username {
			return i
		}
	}
	return -1
}

// Add validates u and appends it. CreatedAt is set when empty.
func (s *Store) Add(u models.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if s.indexOf(u.Username) >= 0 {
		return fmt.Errorf("user %q: %w", u.Username, common.ErrAlreadyExists)
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now().UTC()
	}
	s.users = append(s.users, u)
	s.notify()
	return nil
}

// Delete removes the user with the given username.
func (s *Store) Delete(username string) error {
	i := s.indexOf(username)
	if i < 0 {
		return fmt.Errorf("user %q: %w", username, common.ErrNotFound)
	}
	s.users = append(s.users[:i], s.users[i+1:]...)
	s.notify()
	return nil
}

// Update replaces the user stored under oldUsername with u, keeping its
// position. Renaming onto another existing username is rejected.
func (s *Store) Update(oldUsername string, u models.User) error {
	i := s.indexOf(oldUsername)
	if i < 0 {
		return fmt.Errorf("user %q: %w", oldUsername, common.ErrNotFound)
	}
	if err := u.Validate(); err != nil {
		return err
	}
	if j := s.indexOf(u.Username); j >= 0 && j != i {
		return fmt.Errorf("user %q: %w", u.Username, common.ErrAlreadyExists)
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.users[i].CreatedAt
	}
	s.users[i] = u
	s.notify()
	return nil
}

func (s *Store) Clear() {
	s.users = nil
	s.notify()
}

func (s *Store) Get(username string) (models.User, bool) {
	i := s.indexOf(username)
	if i < 0 {
		return models.User{}, false
	}
	return s.users[i], true
}

// CheckDuplicate reports whether username is already taken.
func (s *Store) CheckDuplicate(username string) bool {
	return s.indexOf(username) >= 0
}

// Users returns a copy of the list in insertion order.
func (s *Store) Users() []models.User {
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

func (s *Store) Len() int { return len(s.users) }

// Subscribe registers fn and returns a function that removes it. Listeners
// are called in subscription order, each with its own copy of the list.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify() {
	for _, sub := range s.listeners {
		sub.fn(s.Users())
	}
}
