package test

import (
	"context"

	domainErrors "github.com/polkiloo/zoopark/internal/domain/errors"
	"github.com/polkiloo/zoopark/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{ID: s.Next, Username: username, PasswordHash: passwordHash}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// AnimalRepositoryStub stores animal records in-memory for tests.
type AnimalRepositoryStub struct {
	Records map[int64]*model.Animal
	Next    int64
	Err     error

	Deleted []int64
}

// NewAnimalRepositoryStub constructs stub repository with initialized maps.
func NewAnimalRepositoryStub() *AnimalRepositoryStub {
	return &AnimalRepositoryStub{
		Records: make(map[int64]*model.Animal),
		Next:    1,
	}
}

// Create assigns an id and stores the record. The persist callback runs
// before the record becomes visible; its error discards the insert, the
// same way the transactional repository rolls back.
func (s *AnimalRepositoryStub) Create(ctx context.Context, animal *model.Animal, persist func() error) (*model.Animal, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	created := *animal
	created.ID = s.Next
	if persist != nil {
		if err := persist(); err != nil {
			return nil, err
		}
	}
	s.Next++
	s.Records[created.ID] = &created
	return &created, nil
}

// GetByID fetches a record or returns not found.
func (s *AnimalRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Animal, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if animal, ok := s.Records[id]; ok {
		copied := *animal
		return &copied, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all records in id order.
func (s *AnimalRepositoryStub) List(ctx context.Context) ([]model.Animal, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Animal
	for id := int64(1); id < s.Next; id++ {
		if animal, ok := s.Records[id]; ok {
			result = append(result, *animal)
		}
	}
	return result, nil
}

// Update replaces a stored record or returns not found.
func (s *AnimalRepositoryStub) Update(ctx context.Context, animal *model.Animal) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Records[animal.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	copied := *animal
	s.Records[animal.ID] = &copied
	return nil
}

// Delete removes a record; unknown ids are a no-op.
func (s *AnimalRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	s.Deleted = append(s.Deleted, id)
	delete(s.Records, id)
	return nil
}

// StoredPhotoKeys lists keys of stored-file photo references.
func (s *AnimalRepositoryStub) StoredPhotoKeys(ctx context.Context) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var keys []string
	for _, animal := range s.Records {
		if animal.Photo.Kind == model.PhotoStoredFile {
			keys = append(keys, animal.Photo.Ref)
		}
	}
	return keys, nil
}
