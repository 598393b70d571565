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

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		return createError(err, domainerrors.ErrConflict.WithDetails("customer already exists"), "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

func (repo *customerRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return findCustomer(repo.db.WithContext(ctx).Where("id = ?", id))
}

func (repo *customerRepository) FindCustomerByStudent(ctx context.Context, vendorID, studentID uuid.UUID) (*entity.Customer, error) {
	return findCustomer(repo.db.WithContext(ctx).Where("vendor_id = ? AND student_id = ?", vendorID, studentID))
}

func findCustomer(query *gorm.DB) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := query.First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return toCustomerDomain(&customerM), nil
}

func (repo *customerRepository) FindCustomersByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Customer, error) {
	if len(ids) == 0 {
		return []*entity.Customer{}, nil
	}

	var customerModels []*model.CustomerModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find customers by ids")
	}

	return mapModels(customerModels, toCustomerDomain), nil
}

func (repo *customerRepository) ListCustomers(ctx context.Context, filter repository.CustomerFilter) ([]*entity.Customer, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.CustomerModel{}).Where("vendor_id = ?", filter.VendorID)

	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("name ILIKE ? OR phone ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}

	if filter.Hostel != "" {
		query = query.Where("hostel = ?", string(filter.Hostel))
	}

	if len(filter.Statuses) > 0 {
		query = query.Where("payment_status IN ?", filter.Statuses)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count customers")
	}

	var customerModels []*model.CustomerModel
	if err := query.
		Order("created_at DESC").
		Scopes(paginate(filter.Page)).
		Find(&customerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list customers")
	}

	return mapModels(customerModels, toCustomerDomain), total, nil
}

func (repo *customerRepository) FindAllCustomers(ctx context.Context, vendorID uuid.UUID) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find customers")
	}

	return mapModels(customerModels, toCustomerDomain), nil
}

func (repo *customerRepository) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", customer.ID).
		Select(
			"student_id", "name", "phone", "email", "hostel", "room", "plan_type", "monthly_amount",
			"payment_status", "last_payment_date", "next_payment_date", "overdue_days",
			"reminder_count", "reminder_last_sent",
		).
		Updates(customerM)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

func (repo *customerRepository) CountCustomers(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("vendor_id = ?", vendorID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count customers")
	}

	return count, nil
}

func (repo *customerRepository) SummarizeUnpaid(ctx context.Context, vendorID uuid.UUID) (*repository.UnpaidSummary, error) {
	var row struct {
		Overdue  int64
		Pending  int64
		TotalDue float64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Select(
			"COUNT(*) FILTER (WHERE payment_status = ?) AS overdue, "+
				"COUNT(*) FILTER (WHERE payment_status = ?) AS pending, "+
				"COALESCE(SUM(monthly_amount), 0) AS total_due",
			string(entity.CustomerOverdue), string(entity.CustomerPending),
		).
		Where("vendor_id = ? AND payment_status IN ?", vendorID,
			[]string{string(entity.CustomerOverdue), string(entity.CustomerPending)}).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize unpaid customers")
	}

	return &repository.UnpaidSummary{
		TotalUnpaid: row.Overdue + row.Pending,
		Overdue:     row.Overdue,
		Pending:     row.Pending,
		TotalDue:    row.TotalDue,
	}, nil
}

// --- Mapper Functions ---

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:        data.ID,
		VendorID:  data.VendorID,
		StudentID: data.StudentID,
		Name:      data.Name,
		Phone:     data.Phone,
		Email:     data.Email,
		Location: entity.DeliveryLocation{
			Hostel: entity.Hostel(data.Hostel),
			Room:   data.Room,
		},
		PlanType:        data.PlanType,
		MonthlyAmount:   data.MonthlyAmount,
		PaymentStatus:   entity.CustomerPaymentStatus(data.PaymentStatus),
		LastPaymentDate: data.LastPaymentDate,
		NextPaymentDate: data.NextPaymentDate,
		OverdueDays:     data.OverdueDays,
		Reminder: entity.ReminderInfo{
			Count:    data.ReminderCount,
			LastSent: data.ReminderLastSent,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:               data.ID,
		VendorID:         data.VendorID,
		StudentID:        data.StudentID,
		Name:             data.Name,
		Phone:            data.Phone,
		Email:            data.Email,
		Hostel:           string(data.Location.Hostel),
		Room:             data.Location.Room,
		PlanType:         data.PlanType,
		MonthlyAmount:    data.MonthlyAmount,
		PaymentStatus:    string(data.PaymentStatus),
		LastPaymentDate:  data.LastPaymentDate,
		NextPaymentDate:  data.NextPaymentDate,
		OverdueDays:      data.OverdueDays,
		ReminderCount:    data.Reminder.Count,
		ReminderLastSent: data.Reminder.LastSent,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
