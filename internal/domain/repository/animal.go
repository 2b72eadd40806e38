package repository

import (
	"context"

	"github.com/polkiloo/zoopark/internal/domain/model"
)

// AnimalRepository describes persistence operations for animal records.
type AnimalRepository interface {
	// Create inserts the record and invokes persist inside the same
	// transaction. When persist fails the insert is rolled back, so a
	// row never outlives a failed photo write.
	Create(ctx context.Context, animal *model.Animal, persist func() error) (*model.Animal, error)
	GetByID(ctx context.Context, id int64) (*model.Animal, error)
	List(ctx context.Context) ([]model.Animal, error)
	// Update performs a full-row replace. Returns ErrNotFound when no
	// row matches the id.
	Update(ctx context.Context, animal *model.Animal) error
	// Delete removes the row. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id int64) error
	// StoredPhotoKeys lists storage keys still referenced by records.
	StoredPhotoKeys(ctx context.Context) ([]string, error)
}
