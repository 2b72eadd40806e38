package test

import (
	"context"
	"io"

	"github.com/polkiloo/zoopark/internal/domain/model"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) error
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, error)
	GetUserFn      func(context.Context, int64) (*model.User, error)
}

// Register succeeds unless an override says otherwise.
func (s AuthFacadeStub) Register(ctx context.Context, username, password string) error {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, password)
	}
	return nil
}

// Authenticate returns a token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, username, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, username, password)
	}
	return "token", nil
}

// ParseSession returns the stored identifier for the authenticated user.
func (s AuthFacadeStub) ParseSession(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// GetUser resolves the default test identity.
func (s AuthFacadeStub) GetUser(ctx context.Context, id int64) (*model.User, error) {
	if s.GetUserFn != nil {
		return s.GetUserFn(ctx, id)
	}
	return &model.User{ID: id, Username: "alice"}, nil
}

// AnimalFacadeStub provides controllable behaviour for animal pages.
type AnimalFacadeStub struct {
	AnimalsFn func(context.Context) ([]model.Animal, error)
	AnimalFn  func(context.Context, int64) (*model.Animal, error)
	AddFn     func(context.Context, string, string, string, string, io.Reader) (*model.Animal, error)
	UpdateFn  func(context.Context, int64, string, string, string, string) (*model.Animal, error)
	DeleteFn  func(context.Context, int64) error
}

// Animals returns predefined records.
func (s AnimalFacadeStub) Animals(ctx context.Context) ([]model.Animal, error) {
	if s.AnimalsFn != nil {
		return s.AnimalsFn(ctx)
	}
	return []model.Animal{{ID: 1, Name: "Luna", Age: "4", Species: "Snow leopard"}}, nil
}

// Animal returns a single predefined record.
func (s AnimalFacadeStub) Animal(ctx context.Context, id int64) (*model.Animal, error) {
	if s.AnimalFn != nil {
		return s.AnimalFn(ctx, id)
	}
	return &model.Animal{ID: id, Name: "Luna", Age: "4", Species: "Snow leopard"}, nil
}

// AddAnimal delegates to the override or reports success.
func (s AnimalFacadeStub) AddAnimal(ctx context.Context, name, age, species, fileName string, photo io.Reader) (*model.Animal, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, name, age, species, fileName, photo)
	}
	return &model.Animal{ID: 1, Name: name, Age: age, Species: species}, nil
}

// UpdateAnimal delegates to the override or reports success.
func (s AnimalFacadeStub) UpdateAnimal(ctx context.Context, id int64, name, age, species, photoURL string) (*model.Animal, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, name, age, species, photoURL)
	}
	return &model.Animal{ID: id, Name: name, Age: age, Species: species, Photo: model.ExternalURLPhoto(photoURL)}, nil
}

// DeleteAnimal delegates to the override or reports success.
func (s AnimalFacadeStub) DeleteAnimal(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// ZooFacadeStub aggregates facade dependencies for HTTP layer tests.
type ZooFacadeStub struct {
	AuthFacadeStub
	AnimalFacadeStub
}

// SweeperFacadeStub feeds referenced keys to the photo sweeper.
type SweeperFacadeStub struct {
	Keys []string
	Err  error
}

// ReferencedPhotoKeys returns the configured key set.
func (s SweeperFacadeStub) ReferencedPhotoKeys(ctx context.Context) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Keys, nil
}
