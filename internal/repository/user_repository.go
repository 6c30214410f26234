package repository

import (
	"context"
	"errors"

	"chat-platform/internal/domain/user"
	apperrors "chat-platform/pkg/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	res := r.db.WithContext(ctx).Create(u)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists
		}
		return res.Error
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).Preload("Roles").Where("id = ?", id).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, apperrors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).Preload("Roles").Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, apperrors.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *PostgresUserRepository) GetAll(ctx context.Context) ([]user.User, error) {
	var users []user.User
	if err := r.db.WithContext(ctx).Preload("Roles").Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *PostgresUserRepository) Filter(ctx context.Context, filter string) ([]user.User, error) {
	var users []user.User
	pattern := "%" + filter + "%"
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("name ILIKE ? OR email ILIKE ?", pattern, pattern).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// EnsureRole fetches the role by name, creating it on first use.
func (r *PostgresUserRepository) EnsureRole(ctx context.Context, name string) (user.Role, error) {
	var role user.Role
	err := r.db.WithContext(ctx).
		Where(user.Role{Name: name}).
		Attrs(user.Role{ID: uuid.New()}).
		FirstOrCreate(&role).Error
	if err != nil {
		return user.Role{}, err
	}
	return role, nil
}

func (r *PostgresUserRepository) AssignRole(ctx context.Context, userID uuid.UUID, role user.Role) error {
	u := user.User{ID: userID}
	return r.db.WithContext(ctx).Model(&u).Association("Roles").Append(&role)
}
