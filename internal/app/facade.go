package app

import (
	"context"
	"io"

	"github.com/polkiloo/zoopark/internal/domain/model"
	"github.com/polkiloo/zoopark/internal/usecase"
)

// ZooFacade aggregates the application operations used by the HTTP layer
// and the background sweeper.
type ZooFacade struct {
	auth    *usecase.AuthUseCase
	animals *usecase.AnimalUseCase
}

// NewZooFacade constructs ZooFacade.
func NewZooFacade(auth *usecase.AuthUseCase, animals *usecase.AnimalUseCase) *ZooFacade {
	return &ZooFacade{auth: auth, animals: animals}
}

func (f *ZooFacade) Register(ctx context.Context, username, password string) error {
	_, err := f.auth.Register(ctx, username, password)
	return err
}

func (f *ZooFacade) Authenticate(ctx context.Context, username, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, username, password)
	return token, err
}

func (f *ZooFacade) ParseSession(token string) (int64, error) {
	return f.auth.ParseSession(token)
}

func (f *ZooFacade) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *ZooFacade) Animals(ctx context.Context) ([]model.Animal, error) {
	return f.animals.List(ctx)
}

func (f *ZooFacade) Animal(ctx context.Context, id int64) (*model.Animal, error) {
	return f.animals.Get(ctx, id)
}

func (f *ZooFacade) AddAnimal(ctx context.Context, name, age, species, fileName string, photo io.Reader) (*model.Animal, error) {
	return f.animals.Add(ctx, name, age, species, fileName, photo)
}

func (f *ZooFacade) UpdateAnimal(ctx context.Context, id int64, name, age, species, photoURL string) (*model.Animal, error) {
	return f.animals.Update(ctx, id, name, age, species, photoURL)
}

func (f *ZooFacade) DeleteAnimal(ctx context.Context, id int64) error {
	return f.animals.Delete(ctx, id)
}

func (f *ZooFacade) ReferencedPhotoKeys(ctx context.Context) ([]string, error) {
	return f.animals.ReferencedPhotoKeys(ctx)
}
