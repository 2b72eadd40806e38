package usecase

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/zoopark/internal/domain/errors"
	"github.com/polkiloo/zoopark/internal/domain/model"
	"github.com/polkiloo/zoopark/internal/domain/repository"
)

// AnimalUseCase encapsulates animal record lifecycle logic.
type AnimalUseCase struct {
	animals repository.AnimalRepository
	photos  repository.PhotoStore
}

// NewAnimalUseCase constructs AnimalUseCase.
func NewAnimalUseCase(animals repository.AnimalRepository, photos repository.PhotoStore) *AnimalUseCase {
	return &AnimalUseCase{animals: animals, photos: photos}
}

// List returns all animal records in insertion order.
func (u *AnimalUseCase) List(ctx context.Context) ([]model.Animal, error) {
	return u.animals.List(ctx)
}

// Get fetches a single record by identifier.
func (u *AnimalUseCase) Get(ctx context.Context, id int64) (*model.Animal, error) {
	return u.animals.GetByID(ctx, id)
}

// Add creates a record with an uploaded photo. The storage key is a
// generated UUID; the client filename is kept only as display metadata.
// The photo write happens inside the insert transaction, so a record
// never references a file that was not saved.
func (u *AnimalUseCase) Add(ctx context.Context, name, age, species, fileName string, photo io.Reader) (*model.Animal, error) {
	if name == "" || age == "" || species == "" || fileName == "" || photo == nil {
		return nil, domainErrors.ErrMissingFields
	}

	key := photoStorageKey(fileName)
	animal := &model.Animal{
		Name:    name,
		Age:     age,
		Species: species,
		Photo:   model.StoredFilePhoto(key, fileName),
	}

	return u.animals.Create(ctx, animal, func() error {
		return u.photos.Save(ctx, key, photo)
	})
}

// Update performs a full-row replace with an external photo URL. Returns
// ErrNotFound when the record does not exist.
func (u *AnimalUseCase) Update(ctx context.Context, id int64, name, age, species, photoURL string) (*model.Animal, error) {
	existing, err := u.animals.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name == "" || age == "" || species == "" || photoURL == "" {
		return nil, domainErrors.ErrMissingFields
	}

	updated := *existing
	updated.Name = name
	updated.Age = age
	updated.Species = species
	updated.Photo = model.ExternalURLPhoto(photoURL)

	if err := u.animals.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a record. Deleting an unknown id succeeds silently.
// Stored photo files are reclaimed later by the sweeper.
func (u *AnimalUseCase) Delete(ctx context.Context, id int64) error {
	return u.animals.Delete(ctx, id)
}

// ReferencedPhotoKeys lists storage keys still referenced by records.
func (u *AnimalUseCase) ReferencedPhotoKeys(ctx context.Context) ([]string, error) {
	return u.animals.StoredPhotoKeys(ctx)
}

func photoStorageKey(fileName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(fileName)))
	return uuid.NewString() + ext
}
