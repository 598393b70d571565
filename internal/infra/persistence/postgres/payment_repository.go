package postgres

import (
	"context"
	"time"

	"tiffin/internal/domain/entity"
	"tiffin/internal/domain/repository"
	"tiffin/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := fromPaymentDomain(payment)

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		return createError(err, repository.ErrDuplicateReceipt, "failed to create payment")
	}

	payment.ID = paymentM.ID
	payment.CreatedAt = paymentM.CreatedAt
	payment.UpdatedAt = paymentM.UpdatedAt

	return nil
}

func (repo *paymentRepository) FindPaymentByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	var paymentM model.PaymentModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment by id")
	}

	return toPaymentDomain(&paymentM), nil
}

func (repo *paymentRepository) ListPayments(ctx context.Context, filter repository.PaymentFilter) ([]*entity.Payment, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.PaymentModel{}).Where("vendor_id = ?", filter.VendorID)

	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	if filter.Method != "" {
		query = query.Where("method = ?", string(filter.Method))
	}

	if !filter.From.IsZero() {
		query = query.Where("payment_date >= ?", filter.From)
	}

	if !filter.To.IsZero() {
		query = query.Where("payment_date < ?", filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count payments")
	}

	query = query.Order("payment_date DESC")
	if !filter.Unpaged {
		query = query.Scopes(paginate(filter.Page))
	}

	var paymentModels []*model.PaymentModel
	if err := query.Find(&paymentModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list payments")
	}

	return mapModels(paymentModels, toPaymentDomain), total, nil
}

// CountPaymentsByVendor reads from the primary; the result seeds the next receipt number.
func (repo *paymentRepository) CountPaymentsByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.PaymentModel{}).
		Where("vendor_id = ?", vendorID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count payments")
	}

	return count, nil
}

func (repo *paymentRepository) SumCompleted(ctx context.Context, vendorID uuid.UUID, from, to time.Time) (*repository.PaymentTotals, error) {
	var row struct {
		PaidCustomers int64
		Revenue       float64
	}

	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.PaymentModel{}).
		Select("COUNT(DISTINCT customer_id) AS paid_customers, COALESCE(SUM(amount), 0) AS revenue").
		Where("vendor_id = ? AND status = ?", vendorID, string(entity.PaymentCompleted))
	if !from.IsZero() {
		query = query.Where("payment_date >= ?", from)
	}

	if !to.IsZero() {
		query = query.Where("payment_date < ?", to)
	}

	if err := query.Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum completed payments")
	}

	return &repository.PaymentTotals{PaidCustomers: row.PaidCustomers, Revenue: row.Revenue}, nil
}

func (repo *paymentRepository) FindPaidCustomerIDs(ctx context.Context, vendorID uuid.UUID, page entity.PageQuery) ([]uuid.UUID, int64, error) {
	base := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("vendor_id = ? AND status = ?", vendorID, string(entity.PaymentCompleted))

	var total int64
	if err := base.Session(&gorm.Session{}).Distinct("customer_id").Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count paid customers")
	}

	var ids []uuid.UUID
	if err := base.Session(&gorm.Session{}).
		Select("customer_id").
		Group("customer_id").
		Order("MAX(payment_date) DESC").
		Scopes(paginate(page)).
		Pluck("customer_id", &ids).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find paid customers")
	}

	return ids, total, nil
}

// --- Mapper Functions ---

func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:            data.ID,
		VendorID:      data.VendorID,
		CustomerID:    data.CustomerID,
		Amount:        data.Amount,
		Method:        entity.PaymentMethod(data.Method),
		Status:        entity.PaymentStatus(data.Status),
		PaymentDate:   data.PaymentDate,
		TransactionID: data.TransactionID,
		BillingPeriod: entity.BillingPeriod{
			Month:     data.BillingMonth,
			StartDate: data.BillingStart,
			EndDate:   data.BillingEnd,
		},
		ReceiptNumber: data.ReceiptNumber,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromPaymentDomain(data *entity.Payment) *model.PaymentModel {
	if data == nil {
		return nil
	}

	return &model.PaymentModel{
		ID:            data.ID,
		VendorID:      data.VendorID,
		CustomerID:    data.CustomerID,
		Amount:        data.Amount,
		Method:        string(data.Method),
		Status:        string(data.Status),
		PaymentDate:   data.PaymentDate,
		TransactionID: data.TransactionID,
		BillingMonth:  data.BillingPeriod.Month,
		BillingStart:  data.BillingPeriod.StartDate,
		BillingEnd:    data.BillingPeriod.EndDate,
		ReceiptNumber: data.ReceiptNumber,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
