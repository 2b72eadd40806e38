package app

import (
	"context"
	"strings"
	"testing"

	domainErrors "github.com/polkiloo/zoopark/internal/domain/errors"
	"github.com/polkiloo/zoopark/internal/domain/model"
	testhelpers "github.com/polkiloo/zoopark/internal/test"
	"github.com/polkiloo/zoopark/internal/usecase"
)

func newTestFacade() (*ZooFacade, *testhelpers.AnimalRepositoryStub, *testhelpers.PhotoStoreStub) {
	users := testhelpers.NewUserRepositoryStub()
	animals := testhelpers.NewAnimalRepositoryStub()
	photos := testhelpers.NewPhotoStoreStub()

	auth := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.CodecStub{})
	animalUC := usecase.NewAnimalUseCase(animals, photos)
	return NewZooFacade(auth, animalUC), animals, photos
}

func TestFacadeAuthFlow(t *testing.T) {
	facade, _, _ := newTestFacade()
	ctx := context.Background()

	if err := facade.Register(ctx, "alice", "secret123"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	token, err := facade.Authenticate(ctx, "alice", "secret123")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token == "" {
		t.Fatal("expected session token")
	}

	id, err := facade.ParseSession(token)
	if err != nil {
		t.Fatalf("parse session returned error: %v", err)
	}
	user, err := facade.GetUser(ctx, id)
	if err != nil {
		t.Fatalf("get user returned error: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("expected alice, got %q", user.Username)
	}

	if _, err := facade.Authenticate(ctx, "alice", "wrongpass"); err != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestFacadeAnimalFlow(t *testing.T) {
	facade, _, photos := newTestFacade()
	ctx := context.Background()

	created, err := facade.AddAnimal(ctx, "Luna", "4", "Snow leopard", "luna.jpg", strings.NewReader("image"))
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if _, ok := photos.Files[created.Photo.Ref]; !ok {
		t.Fatal("photo not stored on add")
	}

	animals, err := facade.Animals(ctx)
	if err != nil || len(animals) != 1 {
		t.Fatalf("expected one animal, got %v %v", animals, err)
	}

	fetched, err := facade.Animal(ctx, created.ID)
	if err != nil || fetched.Name != "Luna" {
		t.Fatalf("unexpected fetch result %v %v", fetched, err)
	}

	updated, err := facade.UpdateAnimal(ctx, created.ID, "Luna II", "5", "Leopard", "https://example.com/luna.jpg")
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Photo.Kind != model.PhotoExternalURL {
		t.Fatalf("expected external photo after update, got %q", updated.Photo.Kind)
	}

	keys, err := facade.ReferencedPhotoKeys(ctx)
	if err != nil {
		t.Fatalf("referenced keys returned error: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("no stored photos may remain referenced, got %v", keys)
	}

	if err := facade.DeleteAnimal(ctx, created.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, err := facade.Animal(ctx, created.ID); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
