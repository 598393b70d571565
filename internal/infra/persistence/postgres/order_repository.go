package postgres

import (
	"context"

	"tiffin/internal/domain/entity"
	domainerrors "tiffin/internal/domain/errors"
	"tiffin/internal/domain/repository"
	"tiffin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return createError(err, domainerrors.ErrConflict, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, order *entity.Order) error {
	updates := map[string]any{
		"status":           string(order.Status),
		"rejection_reason": "",
		"rejected_by":      "",
		"rejected_at":      nil,
		"rejection_notes":  "",
	}

	if r := order.Rejection; r != nil {
		updates["rejection_reason"] = r.Reason
		updates["rejected_by"] = string(r.RejectedBy)
		updates["rejected_at"] = r.RejectedAt
		updates["rejection_notes"] = r.Notes
	}

	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) FindOrders(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Scopes(orderFilterScope(filter)).
		Order("delivery_date DESC").
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	return mapModels(orderModels, toOrderDomain), nil
}

func (repo *orderRepository) CountOrders(ctx context.Context, filter repository.OrderFilter) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Scopes(orderFilterScope(filter)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders")
	}

	return count, nil
}

func (repo *orderRepository) CountByLocation(ctx context.Context, filter repository.OrderFilter) ([]repository.LocationCount, error) {
	var rows []struct {
		Hostel   string
		DietType string
		Count    int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Scopes(orderFilterScope(filter)).
		Select("hostel, diet_type, COUNT(*) AS count").
		Group("hostel, diet_type").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count orders by location")
	}

	counts := make([]repository.LocationCount, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, repository.LocationCount{
			Hostel:   entity.Hostel(row.Hostel),
			DietType: entity.MealDiet(row.DietType),
			Count:    row.Count,
		})
	}

	return counts, nil
}

func orderFilterScope(filter repository.OrderFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.VendorID != uuid.Nil {
			db = db.Where("vendor_id = ?", filter.VendorID)
		}

		if filter.StudentID != uuid.Nil {
			db = db.Where("student_id = ?", filter.StudentID)
		}

		if !filter.From.IsZero() {
			db = db.Where("delivery_date >= ?", filter.From)
		}

		if !filter.To.IsZero() {
			db = db.Where("delivery_date < ?", filter.To)
		}

		if filter.OrderType != "" {
			db = db.Where("order_type = ?", string(filter.OrderType))
		}

		if filter.DietType != "" {
			db = db.Where("diet_type = ?", string(filter.DietType))
		}

		if len(filter.Statuses) > 0 {
			db = db.Where("status IN ?", filter.Statuses)
		}

		return db
	}
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:             data.ID,
		VendorID:       data.VendorID,
		CustomerID:     data.CustomerID,
		StudentID:      data.StudentID,
		SubscriptionID: data.SubscriptionID,
		CustomerName:   data.CustomerName,
		DeliveryDate:   entity.DateOnly(data.DeliveryDate),
		OrderType:      entity.OrderType(data.OrderType),
		MealSlot:       entity.MealSlot(data.MealSlot),
		DietType:       entity.MealDiet(data.DietType),
		Location: entity.DeliveryLocation{
			Hostel: entity.Hostel(data.Hostel),
			Room:   data.Room,
		},
		Price:               data.Price,
		SpecialInstructions: data.SpecialInstructions,
		Status:              entity.OrderStatus(data.Status),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}

	if data.RejectedAt != nil {
		order.Rejection = &entity.OrderRejection{
			Reason:     data.RejectionReason,
			RejectedBy: entity.RejectedBy(data.RejectedBy),
			RejectedAt: *data.RejectedAt,
			Notes:      data.RejectionNotes,
		}
	}

	return order
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:                  data.ID,
		VendorID:            data.VendorID,
		CustomerID:          data.CustomerID,
		StudentID:           data.StudentID,
		SubscriptionID:      data.SubscriptionID,
		CustomerName:        data.CustomerName,
		DeliveryDate:        entity.DateOnly(data.DeliveryDate),
		OrderType:           string(data.OrderType),
		MealSlot:            string(data.MealSlot),
		DietType:            string(data.DietType),
		Hostel:              string(data.Location.Hostel),
		Room:                data.Location.Room,
		Price:               data.Price,
		SpecialInstructions: data.SpecialInstructions,
		Status:              string(data.Status),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}

	if r := data.Rejection; r != nil {
		rejectedAt := r.RejectedAt
		orderM.RejectionReason = r.Reason
		orderM.RejectedBy = string(r.RejectedBy)
		orderM.RejectedAt = &rejectedAt
		orderM.RejectionNotes = r.Notes
	}

	return orderM
}
