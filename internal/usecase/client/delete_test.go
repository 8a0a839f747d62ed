package client

import (
	"context"
	"errors"
	"testing"

	"github.com/VetCareServices/vetclinic-api/internal/audit"
	"github.com/VetCareServices/vetclinic-api/internal/httperr"
	"github.com/VetCareServices/vetclinic-api/internal/models"
)

type fakeRepo struct {
	clients map[uint]*models.Client
	animals map[uint]*models.Animal
	media   map[uint]*models.Media

	failOn string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients: map[uint]*models.Client{},
		animals: map[uint]*models.Animal{},
		media:   map[uint]*models.Media{},
	}
}

func (r *fakeRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, httperr.NotFoundError{Resource: "client", ID: id}
	}
	return c, nil
}

func (r *fakeRepo) ListAnimalsByOwner(_ context.Context, ownerID uint) ([]models.Animal, error) {
	var out []models.Animal
	for _, a := range r.animals {
		if a.OwnerID == ownerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeRepo) DeleteAnimal(_ context.Context, id uint) error {
	if r.failOn == "animal" {
		return errors.New("boom")
	}
	delete(r.animals, id)
	return nil
}

func (r *fakeRepo) DeleteMedia(_ context.Context, id uint) error {
	if r.failOn == "media" {
		return errors.New("boom")
	}
	delete(r.media, id)
	return nil
}

func (r *fakeRepo) DeleteClient(_ context.Context, id uint) error {
	delete(r.clients, id)
	return nil
}

// InTx runs against a snapshot and commits only on success, mirroring the
// all-or-nothing contract of the real transaction.
func (r *fakeRepo) InTx(_ context.Context, fn func(Repository) error) error {
	tx := &fakeRepo{
		clients: cloneMap(r.clients),
		animals: cloneMap(r.animals),
		media:   cloneMap(r.media),
		failOn:  r.failOn,
	}
	if err := fn(tx); err != nil {
		return err
	}
	r.clients = tx.clients
	r.animals = tx.animals
	r.media = tx.media
	return nil
}

func cloneMap[V any](m map[uint]V) map[uint]V {
	out := make(map[uint]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

var _ Repository = (*fakeRepo)(nil)

type nopSink struct{}

func (nopSink) Log(*uint, string, string, *uint, any) error { return nil }

func seed(r *fakeRepo) {
	photoID := uint(100)
	r.clients[1] = &models.Client{ID: 1, FirstName: "Marc"}
	r.media[photoID] = &models.Media{ID: photoID, FilePath: "media/rex.jpg"}
	r.animals[10] = &models.Animal{ID: 10, Name: "Rex", OwnerID: 1, PhotoID: &photoID}
	r.animals[11] = &models.Animal{ID: 11, Name: "Milo", OwnerID: 1}
	// another client's animal must survive
	r.clients[2] = &models.Client{ID: 2}
	r.animals[20] = &models.Animal{ID: 20, Name: "Luna", OwnerID: 2}
}

func TestDeleteClient_CascadesToAnimalsAndPhotos(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)

	uc := NewDeleteClient(repo, audit.NewDispatcher(nopSink{}))

	if err := uc.Execute(context.Background(), 5, 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, ok := repo.clients[1]; ok {
		t.Fatalf("client survived the delete")
	}
	if _, ok := repo.animals[10]; ok {
		t.Fatalf("owned animal survived the cascade")
	}
	if _, ok := repo.animals[11]; ok {
		t.Fatalf("owned animal survived the cascade")
	}
	if _, ok := repo.media[100]; ok {
		t.Fatalf("orphan media row survived the cascade")
	}
	if _, ok := repo.animals[20]; !ok {
		t.Fatalf("foreign animal was deleted")
	}
}

func TestDeleteClient_FailureRollsBackEverything(t *testing.T) {
	repo := newFakeRepo()
	seed(repo)
	repo.failOn = "media"

	uc := NewDeleteClient(repo, audit.NewDispatcher(nopSink{}))

	if err := uc.Execute(context.Background(), 5, 1); err == nil {
		t.Fatalf("expected failure")
	}

	if _, ok := repo.clients[1]; !ok {
		t.Fatalf("client deleted despite rollback")
	}
	if len(repo.animals) != 3 {
		t.Fatalf("partial delete persisted: %d animals left", len(repo.animals))
	}
}

func TestDeleteClient_UnknownClient(t *testing.T) {
	repo := newFakeRepo()

	uc := NewDeleteClient(repo, audit.NewDispatcher(nopSink{}))

	err := uc.Execute(context.Background(), 5, 42)
	var nf httperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
