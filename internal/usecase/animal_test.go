package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	domainErrors "github.com/polkiloo/zoopark/internal/domain/errors"
	"github.com/polkiloo/zoopark/internal/domain/model"
	testhelpers "github.com/polkiloo/zoopark/internal/test"
)

func TestAnimalUseCaseAdd(t *testing.T) {
	repo := testhelpers.NewAnimalRepositoryStub()
	photos := testhelpers.NewPhotoStoreStub()
	uc := NewAnimalUseCase(repo, photos)

	animal, err := uc.Add(context.Background(), "Luna", "4", "Snow leopard", "luna.JPG", strings.NewReader("image-bytes"))
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if animal.ID != 1 {
		t.Fatalf("expected id 1, got %d", animal.ID)
	}
	if animal.Photo.Kind != model.PhotoStoredFile {
		t.Fatalf("expected stored file photo, got %q", animal.Photo.Kind)
	}
	if animal.Photo.DisplayName != "luna.JPG" {
		t.Fatalf("client filename must be kept as display name, got %q", animal.Photo.DisplayName)
	}
	if animal.Photo.Ref == "luna.JPG" || animal.Photo.Ref == "luna.jpg" {
		t.Fatalf("storage key must not be the client filename, got %q", animal.Photo.Ref)
	}
	if !strings.HasSuffix(animal.Photo.Ref, ".jpg") {
		t.Fatalf("storage key must keep lowercased extension, got %q", animal.Photo.Ref)
	}
	if _, ok := photos.Files[animal.Photo.Ref]; !ok {
		t.Fatalf("photo bytes not saved under %q", animal.Photo.Ref)
	}
	if string(photos.Files[animal.Photo.Ref]) != "image-bytes" {
		t.Fatal("stored bytes do not match upload")
	}
}

func TestAnimalUseCaseAddGeneratesDistinctKeys(t *testing.T) {
	repo := testhelpers.NewAnimalRepositoryStub()
	photos := testhelpers.NewPhotoStoreStub()
	uc := NewAnimalUseCase(repo, photos)

	first, err := uc.Add(context.Background(), "Rex", "2", "Wolf", "photo.png", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	second, err := uc.Add(context.Background(), "Max", "3", "Wolf", "photo.png", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	if first.Photo.Ref == second.Photo.Ref {
		t.Fatal("same client filename must not collide in storage")
	}
	if len(photos.Files) != 2 {
		t.Fatalf("expected 2 stored files, got %d", len(photos.Files))
	}
}

func TestAnimalUseCaseAddValidation(t *testing.T) {
	repo := testhelpers.NewAnimalRepositoryStub()
	photos := testhelpers.NewPhotoStoreStub()
	uc := NewAnimalUseCase(repo, photos)

	cases := []struct {
		name, age, species, file string
	}{
		{"", "4", "Snow leopard", "luna.jpg"},
		{"Luna", "", "Snow leopard", "luna.jpg"},
		{"Luna", "4", "", "luna.jpg"},
		{"Luna", "4", "Snow leopard", ""},
	}
	for _, tc := range cases {
		if _, err := uc.Add(context.Background(), tc.name, tc.age, tc.species, tc.file, strings.NewReader("x")); err != domainErrors.ErrMissingFields {
			t.Fatalf("expected missing fields error for %+v, got %v", tc, err)
		}
	}
	if _, err := uc.Add(context.Background(), "Luna", "4", "Snow leopard", "luna.jpg", nil); err != domainErrors.ErrMissingFields {
		t.Fatalf("expected missing fields error for nil photo, got %v", err)
	}
	if len(repo.Records) != 0 {
		t.Fatalf("no record may be created on validation failure, got %d", len(repo.Records))
	}
	if len(photos.Files) != 0 {
		t.Fatalf("no file may be saved on validation failure, got %d", len(photos.Files))
	}
}

func TestAnimalUseCaseAddRollsBackOnSaveFailure(t *testing.T) {
	repo := testhelpers.NewAnimalRepositoryStub()
	photos := testhelpers.NewPhotoStoreStub()
	photos.SaveErr = errors.New("disk full")
	uc := NewAnimalUseCase(repo, photos)

	if _, err := uc.Add(context.Background(), "Luna", "4", "Snow leopard", "luna.jpg", strings.NewReader("x")); err == nil {
		t.Fatal("expected save failure to propagate")
	}
	if len(repo.Records) != 0 {
		t.Fatalf("insert must be discarded when the file write fails, got %d records", len(repo.Records))
	}
}

func TestAnimalUseCaseUpdate(t *testing.T) {
	repo := testhelpers.NewAnimalRepositoryStub()
	photos := testhelpers.NewPhotoStoreStub()
	uc := NewAnimalUseCase(repo, photos)

	created, err := uc.Add(context.Background(), "Luna", "4", "Snow leopard", "luna.jpg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	updated, err := uc.Update(context.Background(), created.ID, "Luna II", "5", "Leopard", "https://example.com/luna.jpg")
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Name != "Luna II" || updated.Age != "5" || updated.Species != "Leopard" {
		t.Fatalf("record not fully replaced: %+v", updated)
	}
	if updated.Photo.Kind != model.PhotoExternalURL {
		t.Fatalf("update must switch photo to external URL, got %q", updated.Photo.Kind)
	}
	if updated.Photo.Ref != "https://example.com/luna.jpg" {
		t.Fatalf("unexpected photo ref %q", updated.Photo.Ref)
	}

	stored, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get after update returned error: %v", err)
	}
	if stored.Name != "Luna II" {
		t.Fatalf("update not persisted: %+v", stored)
	}
}

func TestAnimalUseCaseUpdateNotFound(t *testing.T) {
	uc := NewAnimalUseCase(testhelpers.NewAnimalRepositoryStub(), testhelpers.NewPhotoStoreStub())
	if _, err := uc.Update(context.Background(), 99, "Luna", "4", "Leopard", "https://example.com/x.jpg"); err != domainErrors.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAnimalUseCaseUpdateValidation(t *testing.T) {
	repo := testhelpers.NewAnimalRepositoryStub()
	uc := NewAnimalUseCase(repo, testhelpers.NewPhotoStoreStub())

	created, err := uc.Add(context.Background(), "Luna", "4", "Snow leopard", "luna.jpg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	if _, err := uc.Update(context.Background(), created.ID, "", "4", "Leopard", "https://example.com/x.jpg"); err != domainErrors.ErrMissingFields {
		t.Fatalf("expected missing fields error, got %v", err)
	}

	stored, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if stored.Name != "Luna" {
		t.Fatalf("record must stay unchanged on validation failure: %+v", stored)
	}
}

func TestAnimalUseCaseDelete(t *testing.T) {
	repo := testhelpers.NewAnimalRepositoryStub()
	uc := NewAnimalUseCase(repo, testhelpers.NewPhotoStoreStub())

	first, err := uc.Add(context.Background(), "Luna", "4", "Snow leopard", "luna.jpg", strings.NewReader("a"))
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	second, err := uc.Add(context.Background(), "Rex", "2", "Wolf", "rex.jpg", strings.NewReader("b"))
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}

	if err := uc.Delete(context.Background(), first.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, err := uc.Get(context.Background(), first.ID); err != domainErrors.ErrNotFound {
		t.Fatalf("deleted record must be gone, got %v", err)
	}
	if _, err := uc.Get(context.Background(), second.ID); err != nil {
		t.Fatalf("other records must survive delete: %v", err)
	}

	// Unknown id is a silent no-op.
	if err := uc.Delete(context.Background(), 777); err != nil {
		t.Fatalf("delete of unknown id must succeed, got %v", err)
	}
}

func TestAnimalUseCaseList(t *testing.T) {
	repo := testhelpers.NewAnimalRepositoryStub()
	uc := NewAnimalUseCase(repo, testhelpers.NewPhotoStoreStub())

	names := []string{"Luna", "Rex", "Max"}
	for _, name := range names {
		if _, err := uc.Add(context.Background(), name, "1", "Wolf", name+".jpg", strings.NewReader("x")); err != nil {
			t.Fatalf("add returned error: %v", err)
		}
	}

	animals, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list returned error: %v", err)
	}
	if len(animals) != len(names) {
		t.Fatalf("expected %d animals, got %d", len(names), len(animals))
	}
	for i, animal := range animals {
		if animal.Name != names[i] {
			t.Fatalf("expected insertion order, got %q at %d", animal.Name, i)
		}
	}
}

func TestAnimalUseCaseReferencedPhotoKeys(t *testing.T) {
	repo := testhelpers.NewAnimalRepositoryStub()
	uc := NewAnimalUseCase(repo, testhelpers.NewPhotoStoreStub())

	created, err := uc.Add(context.Background(), "Luna", "4", "Snow leopard", "luna.jpg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	other, err := uc.Add(context.Background(), "Rex", "2", "Wolf", "rex.jpg", strings.NewReader("y"))
	if err != nil {
		t.Fatalf("add returned error: %v", err)
	}
	// Switching Rex to an external URL drops his key from the set.
	if _, err := uc.Update(context.Background(), other.ID, "Rex", "2", "Wolf", "https://example.com/rex.jpg"); err != nil {
		t.Fatalf("update returned error: %v", err)
	}

	keys, err := uc.ReferencedPhotoKeys(context.Background())
	if err != nil {
		t.Fatalf("referenced keys returned error: %v", err)
	}
	if len(keys) != 1 || keys[0] != created.Photo.Ref {
		t.Fatalf("expected only %q referenced, got %v", created.Photo.Ref, keys)
	}
}
