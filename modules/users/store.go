package users

import "sync"

// User is the demo user record served by the API.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Update carries partial changes for a user; nil fields are left untouched.
type Update struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// Store is an in-memory user collection. Data lives for the process lifetime
// and resets on restart. The mutex makes the demo safe under concurrent
// HTTP requests.
type Store struct {
	mu     sync.RWMutex
	users  []User
	nextID int
}

// NewStore returns a store seeded with demo users.
func NewStore() *Store {
	return &Store{
		users: []User{
			{ID: 1, Name: "John Doe", Email: "john@example.com", Role: "admin"},
			{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: "user"},
			{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: "user"},
		},
		nextID: 4,
	}
}

// List returns a snapshot of all users.
func (s *Store) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

// Get returns the user with the given id.
func (s *Store) Get(id int) (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// Create appends a new user and returns it. An empty role defaults to "user".
func (s *Store) Create(name, email, role string) User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if role == "" {
		role = "user"
	}
	u := User{ID: s.nextID, Name: name, Email: email, Role: role}
	s.nextID++
	s.users = append(s.users, u)
	return u
}

// Update applies the non-nil fields of upd to the user with the given id.
func (s *Store) Update(id int, upd Update) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		if upd.Name != nil {
			s.users[i].Name = *upd.Name
		}
		if upd.Email != nil {
			s.users[i].Email = *upd.Email
		}
		if upd.Role != nil {
			s.users[i].Role = *upd.Role
		}
		return s.users[i], true
	}
	return User{}, false
}

// Delete removes the user with the given id and returns the removed record.
func (s *Store) Delete(id int) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return u, true
		}
	}
	return User{}, false
}
