package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/VetCareServices/vetclinic-api/internal/domain/appointment"
	"github.com/VetCareServices/vetclinic-api/internal/httperr"
	"github.com/VetCareServices/vetclinic-api/internal/models"
	ucclient "github.com/VetCareServices/vetclinic-api/internal/usecase/client"
)

type ClinicGormRepository struct {
	db *gorm.DB
}

func NewClinicGormRepository(db *gorm.DB) *ClinicGormRepository {
	return &ClinicGormRepository{db: db}
}

func notFound(err error, resource string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.NotFoundError{Resource: resource, ID: id}
	}
	return err
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *ClinicGormRepository) GetAnimal(
	ctx context.Context,
	id uint,
) (*models.Animal, error) {

	var animal models.Animal
	if err := r.db.WithContext(ctx).
		Preload("Photo").
		Preload("Owner").
		First(&animal, id).Error; err != nil {
		return nil, notFound(err, "animal", id)
	}
	return &animal, nil
}

func (r *ClinicGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, notFound(err, "user", id)
	}
	return &user, nil
}

func (r *ClinicGormRepository) GetTreatments(
	ctx context.Context,
	ids []uint,
) ([]*models.Treatment, error) {

	if len(ids) == 0 {
		return nil, nil
	}

	var treatments []*models.Treatment
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&treatments).Error; err != nil {
		return nil, err
	}

	if len(treatments) != len(ids) {
		return nil, httperr.NotFoundError{Resource: "treatment"}
	}
	return treatments, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *ClinicGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *ClinicGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Animal").
		Preload("Animal.Photo").
		Preload("Animal.Owner").
		Preload("Assistant").
		Preload("Veterinarian").
		Preload("Treatments").
		First(&ap, id).Error; err != nil {
		return nil, notFound(err, "appointment", id)
	}
	return &ap, nil
}

// UpdateAppointment replaces the record and its treatment associations in a
// single transaction.
func (r *ClinicGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Treatments", "Animal", "Assistant", "Veterinarian").
			Save(ap).Error; err != nil {
			return err
		}
		return tx.Model(ap).Association("Treatments").Replace(ap.Treatments)
	})
}

func (r *ClinicGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Animal").
		Preload("Assistant").
		Preload("Veterinarian").
		Preload("Treatments").
		Order("appointment_date ASC").
		Limit(f.PerPage).
		Offset((f.Page - 1) * f.PerPage).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Client cascade
// --------------------------------------------------

func (r *ClinicGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var cl models.Client
	if err := r.db.WithContext(ctx).First(&cl, id).Error; err != nil {
		return nil, notFound(err, "client", id)
	}
	return &cl, nil
}

func (r *ClinicGormRepository) ListAnimalsByOwner(
	ctx context.Context,
	ownerID uint,
) ([]models.Animal, error) {

	var animals []models.Animal
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *ClinicGormRepository) DeleteAnimal(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Animal{}, id).Error
}

func (r *ClinicGormRepository) DeleteMedia(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Media{}, id).Error
}

func (r *ClinicGormRepository) DeleteClient(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Client{}, id).Error
}

func (r *ClinicGormRepository) InTx(
	ctx context.Context,
	fn func(ucclient.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewClinicGormRepository(tx))
	})
}

// Compile-time checks
var (
	_ domain.Repository   = (*ClinicGormRepository)(nil)
	_ ucclient.Repository = (*ClinicGormRepository)(nil)
)
