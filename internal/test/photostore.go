package test

import (
	"context"
	"io"
	"time"

	"github.com/polkiloo/zoopark/internal/domain/repository"
)

// PhotoStoreStub keeps photo bytes in-memory for tests.
type PhotoStoreStub struct {
	Files    map[string][]byte
	ModTimes map[string]time.Time

	SaveErr   error
	RemoveErr error
	ListErr   error

	Removed []string
}

// NewPhotoStoreStub constructs the stub with initialized maps.
func NewPhotoStoreStub() *PhotoStoreStub {
	return &PhotoStoreStub{
		Files:    make(map[string][]byte),
		ModTimes: make(map[string]time.Time),
	}
}

// Save stores the reader's bytes under key.
func (s *PhotoStoreStub) Save(ctx context.Context, key string, r io.Reader) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.Files[key] = data
	if _, ok := s.ModTimes[key]; !ok {
		s.ModTimes[key] = time.Now()
	}
	return nil
}

// Remove drops the stored file and records the call.
func (s *PhotoStoreStub) Remove(ctx context.Context, key string) error {
	if s.RemoveErr != nil {
		return s.RemoveErr
	}
	s.Removed = append(s.Removed, key)
	delete(s.Files, key)
	delete(s.ModTimes, key)
	return nil
}

// List returns stored files with their mod times.
func (s *PhotoStoreStub) List(ctx context.Context) ([]repository.StoredPhoto, error) {
	if s.ListErr != nil {
		return nil, s.ListErr
	}
	var photos []repository.StoredPhoto
	for key := range s.Files {
		photos = append(photos, repository.StoredPhoto{Key: key, ModTime: s.ModTimes[key]})
	}
	return photos, nil
}
