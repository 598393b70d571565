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

type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository is the constructor for studentRepository.
func NewStudentRepository(db *gorm.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) CreateStudent(ctx context.Context, student *entity.Student) error {
	studentM := fromStudentDomain(student)

	if err := repo.db.WithContext(ctx).Create(studentM).Error; err != nil {
		return createError(err, repository.ErrDuplicateStudent, "failed to create student")
	}

	student.ID = studentM.ID
	student.CreatedAt = studentM.CreatedAt
	student.UpdatedAt = studentM.UpdatedAt

	return nil
}

func (repo *studentRepository) FindStudentByID(ctx context.Context, id uuid.UUID) (*entity.Student, error) {
	var studentM model.StudentModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&studentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by id")
	}

	return toStudentDomain(&studentM), nil
}

func (repo *studentRepository) FindStudentByEmail(ctx context.Context, email string) (*entity.Student, error) {
	var studentM model.StudentModel

	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&studentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStudentNotFound
		}

		return nil, errors.Wrap(err, "failed to find student by email")
	}

	return toStudentDomain(&studentM), nil
}

func (repo *studentRepository) FindStudentsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Student, error) {
	if len(ids) == 0 {
		return []*entity.Student{}, nil
	}

	var studentModels []*model.StudentModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&studentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find students by ids")
	}

	return mapModels(studentModels, toStudentDomain), nil
}

func (repo *studentRepository) UpdateStudent(ctx context.Context, student *entity.Student) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Where("id = ?", student.ID).
		Updates(map[string]any{
			"first_name":  student.FirstName,
			"last_name":   student.LastName,
			"phone":       student.Phone,
			"address":     datatypes.NewJSONType(student.Address),
			"preferences": datatypes.NewJSONType(student.Preferences),
			"settings":    datatypes.NewJSONType(student.Settings),
			"is_active":   student.IsActive,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update student")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStudentNotFound
	}

	return nil
}

func (repo *studentRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return repo.updateColumn(ctx, id, "password_hash", passwordHash)
}

func (repo *studentRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return repo.updateColumn(ctx, id, "last_login", at)
}

func (repo *studentRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Where("id = ?", id).
		Update(column, value)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update student %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrStudentNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toStudentDomain(data *model.StudentModel) *entity.Student {
	if data == nil {
		return nil
	}

	return &entity.Student{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Phone:        data.Phone,
		Address:      data.Address.Data(),
		Preferences:  data.Preferences.Data(),
		Settings:     data.Settings.Data(),
		IsActive:     data.IsActive,
		LastLogin:    data.LastLogin,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromStudentDomain(data *entity.Student) *model.StudentModel {
	if data == nil {
		return nil
	}

	return &model.StudentModel{
		ID:           data.ID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Phone:        data.Phone,
		Address:      datatypes.NewJSONType(data.Address),
		Preferences:  datatypes.NewJSONType(data.Preferences),
		Settings:     datatypes.NewJSONType(data.Settings),
		IsActive:     data.IsActive,
		LastLogin:    data.LastLogin,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
