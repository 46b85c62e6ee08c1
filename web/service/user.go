package service

import (
	"sync"

	"github.com/userhub-dev/userhub/util/common"
	"github.com/userhub-dev/userhub/web/entity"
)

var (
	ErrUsernameTaken = common.NewError("username already exists")
	ErrUserNotFound  = common.NewError("user not found")
)

// User is the stored identity record. Passwords are kept verbatim and
// compared by equality at login; hashing is out of scope for this service.
type User struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserPatch carries a partial update. Empty fields are left untouched,
// matching the partial-update semantics of the HTTP API.
type UserPatch struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserService is the sole owner of the user records and the id counter.
// Mutations hold the write lock across the whole check-then-act sequence so
// the uniqueness and id-assignment invariants stay atomic; reads share the
// read lock and never observe a half-applied mutation.
type UserService struct {
	mu     sync.RWMutex
	users  []*User
	nextID int
}

func NewUserService() *UserService {
	return &UserService{nextID: 1}
}

// findByUsername does an exact, case-sensitive match. Callers must hold mu.
func (s *UserService) findByUsername(username string) *User {
	for _, u := range s.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

func (s *UserService) findByID(id int) *User {
	for _, u := range s.users {
		if u.Id == id {
			return u
		}
	}
	return nil
}

// Create appends a new user with the next sequential id. Ids are never
// reused, even after deletions.
func (s *UserService) Create(username, password string) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByUsername(username) != nil {
		return entity.User{}, ErrUsernameTaken
	}

	user := &User{Id: s.nextID, Username: username, Password: password}
	s.nextID++
	s.users = append(s.users, user)
	return entity.User{Id: user.Id, Username: user.Username}, nil
}

// FindByUsername returns a copy of the matching record, if any.
func (s *UserService) FindByUsername(username string) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u := s.findByUsername(username); u != nil {
		return *u, true
	}
	return User{}, false
}

// FindByID returns a copy of the matching record, if any.
func (s *UserService) FindByID(id int) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u := s.findByID(id); u != nil {
		return *u, true
	}
	return User{}, false
}

// List returns all users in creation order, projected to id and username.
func (s *UserService) List() []entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, entity.User{Id: u.Id, Username: u.Username})
	}
	return out
}

// Update applies a partial patch to the user with the given id. A username
// change fails with ErrUsernameTaken when a different user already holds the
// new name; renaming a user to its current name is allowed.
func (s *UserService) Update(id int, patch UserPatch) (entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findByID(id)
	if user == nil {
		return entity.User{}, ErrUserNotFound
	}

	if patch.Username != "" {
		if other := s.findByUsername(patch.Username); other != nil && other.Id != id {
			return entity.User{}, ErrUsernameTaken
		}
		user.Username = patch.Username
	}
	if patch.Password != "" {
		user.Password = patch.Password
	}

	return entity.User{Id: user.Id, Username: user.Username}, nil
}

// Delete removes the user with the given id and reports whether a removal
// occurred. Deleting an absent id is not an error.
func (s *UserService) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.Id == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return true
		}
	}
	return false
}
