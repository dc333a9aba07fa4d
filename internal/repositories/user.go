package repositories

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/sbilibin2017/user-profile-api/internal/logger"
	"github.com/sbilibin2017/user-profile-api/internal/models"
)

// Error variables
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameExists = errors.New("username already exists")
	ErrEmailExists    = errors.New("email already exists")
)

// UserRepository is the authoritative in-memory store of user records for
// the process lifetime. One mutex serializes every operation so uniqueness
// and ID-monotonicity hold without finer-grained locking.
type UserRepository struct {
	mu     sync.Mutex
	users  map[int64]*models.User
	nextID int64
}

// NewUserRepository creates a store preloaded with the seed records.
func NewUserRepository() *UserRepository {
	r := &UserRepository{
		users:  make(map[int64]*models.User),
		nextID: 1,
	}
	for _, u := range models.SeedUsers() {
		r.users[u.ID] = u.Clone()
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	return r
}

// Get returns a copy of the record with the given ID.
func (r *UserRepository) Get(ctx context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user.Clone(), nil
}

// List returns copies of all records in insertion order. IDs are assigned
// monotonically, so insertion order and ascending ID order coincide.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, *r.users[id].Clone())
	}
	return users, nil
}

// Save assigns the next ID to the user and inserts it. The ID counter only
// ever grows, so IDs are never reused after a delete. Username uniqueness
// is checked before email uniqueness.
func (r *UserRepository) Save(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == user.Username {
			return nil, ErrUsernameExists
		}
	}
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, ErrEmailExists
		}
	}

	stored := user.Clone()
	stored.ID = r.nextID
	r.nextID++
	r.users[stored.ID] = stored

	logger.Log.Infow("user saved", "id", stored.ID, "username", stored.Username)
	return stored.Clone(), nil
}

// Update applies the patch to the record with the given ID. Uniqueness
// checks exclude the record being updated. ID and CreatedAt are immutable.
func (r *UserRepository) Update(ctx context.Context, id int64, patch models.UserPatch) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	if patch.Username != nil {
		for _, existing := range r.users {
			if existing.Username == *patch.Username && existing.ID != id {
				return nil, ErrUsernameExists
			}
		}
	}
	if patch.Email != nil {
		for _, existing := range r.users {
			if existing.Email == *patch.Email && existing.ID != id {
				return nil, ErrEmailExists
			}
		}
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.AgeSet {
		if patch.Age != nil {
			age := *patch.Age
			user.Age = &age
		} else {
			user.Age = nil
		}
	}

	logger.Log.Infow("user updated", "id", id)
	return user.Clone(), nil
}

// Delete removes the record with the given ID and returns the ID. The ID
// is never recycled for later inserts.
func (r *UserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return 0, ErrUserNotFound
	}
	delete(r.users, id)

	logger.Log.Infow("user deleted", "id", id)
	return id, nil
}
