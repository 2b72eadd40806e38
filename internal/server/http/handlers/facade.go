package handlers

import (
	"context"
	"io"

	"github.com/polkiloo/zoopark/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) (string, error)
	ParseSession(token string) (int64, error)
	GetUser(ctx context.Context, id int64) (*model.User, error)
}

// AnimalFacade encapsulates animal record operations exposed via HTTP.
type AnimalFacade interface {
	Animals(ctx context.Context) ([]model.Animal, error)
	Animal(ctx context.Context, id int64) (*model.Animal, error)
	AddAnimal(ctx context.Context, name, age, species, fileName string, photo io.Reader) (*model.Animal, error)
	UpdateAnimal(ctx context.Context, id int64, name, age, species, photoURL string) (*model.Animal, error)
	DeleteAnimal(ctx context.Context, id int64) error
}

// ZooFacade aggregates the full set of operations used across handlers.
type ZooFacade interface {
	AuthFacade
	AnimalFacade
}
