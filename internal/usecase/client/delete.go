package client

import (
	"context"

	"github.com/VetCareServices/vetclinic-api/internal/audit"
	"github.com/VetCareServices/vetclinic-api/internal/models"
)

// Repository is the slice of persistence the cascade needs. InTx must make
// the whole cascade atomic: partial deletes never persist.
type Repository interface {
	GetClient(ctx context.Context, id uint) (*models.Client, error)
	ListAnimalsByOwner(ctx context.Context, ownerID uint) ([]models.Animal, error)
	DeleteAnimal(ctx context.Context, id uint) error
	DeleteMedia(ctx context.Context, id uint) error
	DeleteClient(ctx context.Context, id uint) error
	InTx(ctx context.Context, fn func(Repository) error) error
}

// DeleteClient removes a client together with everything it exclusively
// owns: its animals and, transitively, their photos. No orphan media rows
// may survive the cascade.
type DeleteClient struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewDeleteClient(repo Repository, audit *audit.Dispatcher) *DeleteClient {
	return &DeleteClient{repo: repo, audit: audit}
}

func (uc *DeleteClient) Execute(ctx context.Context, callerID uint, id uint) error {
	cl, err := uc.repo.GetClient(ctx, id)
	if err != nil {
		return err
	}

	err = uc.repo.InTx(ctx, func(r Repository) error {
		animals, err := r.ListAnimalsByOwner(ctx, cl.ID)
		if err != nil {
			return err
		}
		for _, a := range animals {
			if err := r.DeleteAnimal(ctx, a.ID); err != nil {
				return err
			}
			if a.PhotoID != nil {
				if err := r.DeleteMedia(ctx, *a.PhotoID); err != nil {
					return err
				}
			}
		}
		return r.DeleteClient(ctx, cl.ID)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &cl.ID,
	})
	return nil
}
