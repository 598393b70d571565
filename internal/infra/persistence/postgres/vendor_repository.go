package postgres

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/repository"
	"tiffin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var vendorSortColumns = map[string]string{
	repository.VendorSortRating: "rating",
	repository.VendorSortPrice:  "monthly_rate",
	repository.VendorSortName:   "service_name",
	repository.VendorSortNewest: "created_at",
}

type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository is the constructor for vendorRepository.
func NewVendorRepository(db *gorm.DB) repository.VendorRepository {
	return &vendorRepository{db: db}
}

func (repo *vendorRepository) CreateVendor(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	if err := repo.db.WithContext(ctx).Create(vendorM).Error; err != nil {
		return createError(err, repository.ErrDuplicateVendor, "failed to create vendor")
	}

	vendor.ID = vendorM.ID
	vendor.CreatedAt = vendorM.CreatedAt
	vendor.UpdatedAt = vendorM.UpdatedAt

	return nil
}

func (repo *vendorRepository) FindVendorByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *vendorRepository) FindVendorByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *vendorRepository) findOne(ctx context.Context, cond string, arg any) (*entity.Vendor, error) {
	var vendorM model.VendorModel

	if err := repo.db.WithContext(ctx).Where(cond, arg).First(&vendorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVendorNotFound
		}

		return nil, errors.Wrap(err, "failed to find vendor")
	}

	return toVendorDomain(&vendorM), nil
}

func (repo *vendorRepository) UpdateVendor(ctx context.Context, vendor *entity.Vendor) error {
	vendorM := fromVendorDomain(vendor)

	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", vendor.ID).
		Select(
			"full_name", "phone", "years_experience",
			"service_name", "description", "food_type", "cuisines", "address", "pincode", "delivery_locations",
			"latitude", "longitude", "monthly_rate", "one_time_rate", "weekly_holiday",
			"min_subscription_days", "delivery_radius_km", "is_active",
		).
		Updates(vendorM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update vendor")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

func (repo *vendorRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return repo.updateColumn(ctx, id, "last_login", at)
}

func (repo *vendorRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return repo.updateColumn(ctx, id, "password_hash", passwordHash)
}

func (repo *vendorRepository) AddRevenue(ctx context.Context, id uuid.UUID, amount float64) error {
	return repo.updateColumn(ctx, id, "total_revenue", gorm.Expr("total_revenue + ?", amount))
}

func (repo *vendorRepository) IncrementTotalOrders(ctx context.Context, id uuid.UUID) error {
	return repo.updateColumn(ctx, id, "total_orders", gorm.Expr("total_orders + 1"))
}

func (repo *vendorRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VendorModel{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update vendor %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrVendorNotFound
	}

	return nil
}

// ListVendors applies the filter in SQL. Sorting by distance is left to the caller.
func (repo *vendorRepository) ListVendors(ctx context.Context, filter repository.VendorFilter) ([]*entity.Vendor, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.VendorModel{}).Where("is_active = ?", true)

	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}

	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where(
			"service_name ILIKE ? OR description ILIKE ? OR address ILIKE ? OR cuisines::text ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	if filter.Cuisine != "" {
		query = query.Where(datatypes.JSONArrayQuery("cuisines").Contains(filter.Cuisine))
	}

	if len(filter.FoodTypes) > 0 {
		query = query.Where("food_type IN ?", filter.FoodTypes)
	}

	if filter.PriceMin != nil {
		query = query.Where("monthly_rate >= ?", *filter.PriceMin)
	}

	if filter.PriceMax != nil {
		query = query.Where("monthly_rate <= ?", *filter.PriceMax)
	}

	if filter.Location != "" {
		pattern := likePattern(filter.Location)
		query = query.Where("delivery_locations::text ILIKE ? OR address ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count vendors")
	}

	column, ok := vendorSortColumns[filter.SortBy]
	if !ok {
		column = vendorSortColumns[repository.VendorSortRating]
	}

	direction := " ASC"
	if filter.SortDesc {
		direction = " DESC"
	}

	query = query.Order(column + direction).Order("id")
	if !filter.Unpaged {
		query = query.Scopes(paginate(filter.Page))
	}

	var vendorModels []*model.VendorModel
	if err := query.Find(&vendorModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list vendors")
	}

	return mapModels(vendorModels, toVendorDomain), total, nil
}

// --- Mapper Functions ---

func toVendorDomain(data *model.VendorModel) *entity.Vendor {
	if data == nil {
		return nil
	}

	vendor := &entity.Vendor{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		PersonalInfo: entity.VendorPersonalInfo{
			FullName:        data.FullName,
			Phone:           data.Phone,
			YearsExperience: data.YearsExperience,
		},
		BusinessInfo: entity.VendorBusinessInfo{
			ServiceName:       data.ServiceName,
			Description:       data.Description,
			FoodType:          entity.FoodType(data.FoodType),
			Cuisines:          []string(data.Cuisines),
			Address:           data.Address,
			Pincode:           data.Pincode,
			DeliveryLocations: []string(data.DeliveryLocations),
		},
		Pricing: entity.VendorPricing{
			MonthlyRate: data.MonthlyRate,
			OneTimeRate: data.OneTimeRate,
		},
		Availability: entity.VendorAvailability{WeeklyHoliday: data.WeeklyHoliday},
		SubscriptionSettings: entity.SubscriptionSettings{
			MinSubscriptionDays: data.MinSubscriptionDays,
			DeliveryRadiusKm:    data.DeliveryRadiusKm,
		},
		Status:       entity.VendorStatus(data.Status),
		Rating:       data.Rating,
		TotalOrders:  data.TotalOrders,
		TotalRevenue: data.TotalRevenue,
		IsVerified:   data.IsVerified,
		IsActive:     data.IsActive,
		LastLogin:    data.LastLogin,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.Latitude != nil && data.Longitude != nil {
		vendor.Location = &entity.Coordinates{Lat: *data.Latitude, Lng: *data.Longitude}
	}

	return vendor
}

func fromVendorDomain(data *entity.Vendor) *model.VendorModel {
	if data == nil {
		return nil
	}

	vendorM := &model.VendorModel{
		ID:                  data.ID,
		Email:               data.Email,
		PasswordHash:        data.PasswordHash,
		FullName:            data.PersonalInfo.FullName,
		Phone:               data.PersonalInfo.Phone,
		YearsExperience:     data.PersonalInfo.YearsExperience,
		ServiceName:         data.BusinessInfo.ServiceName,
		Description:         data.BusinessInfo.Description,
		FoodType:            string(data.BusinessInfo.FoodType),
		Cuisines:            datatypes.NewJSONSlice(data.BusinessInfo.Cuisines),
		Address:             data.BusinessInfo.Address,
		Pincode:             data.BusinessInfo.Pincode,
		DeliveryLocations:   datatypes.NewJSONSlice(data.BusinessInfo.DeliveryLocations),
		MonthlyRate:         data.Pricing.MonthlyRate,
		OneTimeRate:         data.Pricing.OneTimeRate,
		WeeklyHoliday:       data.Availability.WeeklyHoliday,
		MinSubscriptionDays: data.SubscriptionSettings.MinSubscriptionDays,
		DeliveryRadiusKm:    data.SubscriptionSettings.DeliveryRadiusKm,
		Status:              string(data.Status),
		Rating:              data.Rating,
		TotalOrders:         data.TotalOrders,
		TotalRevenue:        data.TotalRevenue,
		IsVerified:          data.IsVerified,
		IsActive:            data.IsActive,
		LastLogin:           data.LastLogin,
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}

	if data.Location != nil {
		vendorM.Latitude = &data.Location.Lat
		vendorM.Longitude = &data.Location.Lng
	}

	return vendorM
}
