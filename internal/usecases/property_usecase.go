package usecases

import (
	"context"
	"io"

	"github.com/google/uuid"
	"rentora.backend/internal/domain/entities"
	domainerrors "rentora.backend/internal/domain/errors"
	"rentora.backend/internal/domain/repositories"
	"rentora.backend/pkg/utils"
)

// ImageUpload carries one uploaded image file
type ImageUpload struct {
	Filename string
	Reader   io.Reader
}

// PropertyUsecase handles property listing business logic
type PropertyUsecase struct {
	propertyRepo repositories.PropertyRepository
	billRepo     repositories.UtilityBillRepository
	userRepo     repositories.UserRepository
	store        FileStore
}

// NewPropertyUsecase creates a new property usecase
func NewPropertyUsecase(
	propertyRepo repositories.PropertyRepository,
	billRepo repositories.UtilityBillRepository,
	userRepo repositories.UserRepository,
	store FileStore,
) *PropertyUsecase {
	return &PropertyUsecase{
		propertyRepo: propertyRepo,
		billRepo:     billRepo,
		userRepo:     userRepo,
		store:        store,
	}
}

// CreateProperty creates a listing owned by the given landlord
func (u *PropertyUsecase) CreateProperty(ctx context.Context, landlordID uuid.UUID, input *entities.CreatePropertyInput) (*entities.Property, error) {
	landlord, err := u.userRepo.GetByID(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	if landlord.Role != entities.UserRoleLandlord && landlord.Role != entities.UserRoleAdmin {
		return nil, domainerrors.ErrForbidden
	}

	property := &entities.Property{
		LandlordID:  landlordID,
		Title:       input.Title,
		Address:     input.Address,
		City:        input.City,
		Rent:        input.Rent,
		Deposit:     input.Deposit,
		Bedrooms:    input.Bedrooms,
		Bathrooms:   input.Bathrooms,
		Description: input.Description,
		IsAvailable: true,
	}

	if err := u.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

// GetProperty gets a property with its images
func (u *PropertyUsecase) GetProperty(ctx context.Context, id uuid.UUID) (*entities.Property, error) {
	property, err := u.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	images, err := u.propertyRepo.GetImages(ctx, id)
	if err != nil {
		return nil, err
	}
	property.Images = images
	return property, nil
}

// UpdateProperty applies a partial update, owner or admin only
func (u *PropertyUsecase) UpdateProperty(ctx context.Context, id, actorID uuid.UUID, actorRole entities.UserRole, input *entities.UpdatePropertyInput) (*entities.Property, error) {
	property, err := u.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManage(property, actorID, actorRole) {
		return nil, domainerrors.ErrForbidden
	}

	if input.Title != nil {
		property.Title = *input.Title
	}
	if input.Address != nil {
		property.Address = *input.Address
	}
	if input.City != nil {
		property.City = *input.City
	}
	if input.Rent != nil {
		property.Rent = *input.Rent
	}
	if input.Deposit != nil {
		property.Deposit = *input.Deposit
	}
	if input.Bedrooms != nil {
		property.Bedrooms = *input.Bedrooms
	}
	if input.Bathrooms != nil {
		property.Bathrooms = *input.Bathrooms
	}
	if input.Description != nil {
		property.Description = *input.Description
	}

	if err := u.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	return property, nil
}

// DeleteProperty removes a listing, owner or admin only
func (u *PropertyUsecase) DeleteProperty(ctx context.Context, id, actorID uuid.UUID, actorRole entities.UserRole) error {
	property, err := u.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(property, actorID, actorRole) {
		return domainerrors.ErrForbidden
	}
	return u.propertyRepo.Delete(ctx, id)
}

// SetAvailability flips the availability flag, owner or admin only
func (u *PropertyUsecase) SetAvailability(ctx context.Context, id, actorID uuid.UUID, actorRole entities.UserRole, available bool) error {
	property, err := u.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(property, actorID, actorRole) {
		return domainerrors.ErrForbidden
	}
	return u.propertyRepo.SetAvailability(ctx, id, available)
}

// GetPropertiesByLandlord lists a landlord's properties
func (u *PropertyUsecase) GetPropertiesByLandlord(ctx context.Context, landlordID uuid.UUID) ([]*entities.Property, error) {
	return u.propertyRepo.GetByLandlordID(ctx, landlordID)
}

// SearchProperties searches available listings with filters and paging
func (u *PropertyUsecase) SearchProperties(ctx context.Context, input *entities.PropertySearchInput) ([]*entities.Property, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(input.Page, input.Limit)

	filter := repositories.PropertySearchFilter{
		City:     input.City,
		MinRent:  input.MinRent,
		MaxRent:  input.MaxRent,
		Bedrooms: input.Bedrooms,
		SortBy:   input.SortBy,
		SortDesc: input.SortDir == "desc",
		Limit:    params.Limit,
		Offset:   params.CalculateOffset(),
	}

	properties, total, err := u.propertyRepo.Search(ctx, filter)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}

	return properties, utils.CalculateMeta(int64(total), params.Page, params.Limit), nil
}

// AddImages stores uploaded images and attaches them to the property
func (u *PropertyUsecase) AddImages(ctx context.Context, propertyID, actorID uuid.UUID, actorRole entities.UserRole, uploads []ImageUpload) ([]*entities.PropertyImage, error) {
	property, err := u.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !canManage(property, actorID, actorRole) {
		return nil, domainerrors.ErrForbidden
	}
	if len(uploads) == 0 {
		return nil, domainerrors.NewError("no image files provided", domainerrors.ErrBadRequest)
	}

	images := make([]*entities.PropertyImage, 0, len(uploads))
	for _, up := range uploads {
		path, err := u.store.SaveImage(up.Filename, up.Reader)
		if err != nil {
			return nil, err
		}
		images = append(images, &entities.PropertyImage{PropertyID: propertyID, Path: path})
	}

	if err := u.propertyRepo.AddImages(ctx, images); err != nil {
		return nil, err
	}

	return images, nil
}

// AddUtilityBill records a utility bill against a property
func (u *PropertyUsecase) AddUtilityBill(ctx context.Context, propertyID, actorID uuid.UUID, actorRole entities.UserRole, input *entities.CreateUtilityBillInput) (*entities.UtilityBill, error) {
	property, err := u.propertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if !canManage(property, actorID, actorRole) {
		return nil, domainerrors.ErrForbidden
	}

	bill := &entities.UtilityBill{
		PropertyID:   propertyID,
		BillType:     input.BillType,
		Amount:       input.Amount,
		BillingMonth: input.BillingMonth,
	}

	if err := u.billRepo.Create(ctx, bill); err != nil {
		return nil, err
	}

	return bill, nil
}

// GetUtilityBills lists bills recorded against a property
func (u *PropertyUsecase) GetUtilityBills(ctx context.Context, propertyID uuid.UUID) ([]*entities.UtilityBill, error) {
	if _, err := u.propertyRepo.GetByID(ctx, propertyID); err != nil {
		return nil, err
	}
	return u.billRepo.GetByPropertyID(ctx, propertyID)
}

// MarkUtilityBillPaid marks a bill settled
func (u *PropertyUsecase) MarkUtilityBillPaid(ctx context.Context, billID uuid.UUID) error {
	return u.billRepo.MarkPaid(ctx, billID)
}

func canManage(property *entities.Property, actorID uuid.UUID, actorRole entities.UserRole) bool {
	return property.LandlordID == actorID || actorRole == entities.UserRoleAdmin
}
