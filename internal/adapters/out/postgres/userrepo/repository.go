package userrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orderhub/internal/core/domain/model/user"
	"orderhub/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a duplicate key.
const uniqueViolation = "23505"

// GormUserRepository implements ports.UserRepository.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&UserDTO{})
}

func (r *GormUserRepository) Add(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%s is already registered", u.Email()))
		}
		return err
	}
	return nil
}

func (r *GormUserRepository) Update(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", dto.ID).Select("*").Omit("created_at").Updates(&dto)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%s is already registered", u.Email()))
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("user", u.ID())
	}
	return nil
}

func (r *GormUserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return r.first(ctx, id, "id = ?", id)
}

func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.first(ctx, email, "email = ?", email)
}

// ListDeliveryCandidates returns every delivery account in registration order.
func (r *GormUserRepository) ListDeliveryCandidates(ctx context.Context) ([]user.Candidate, error) {
	var dtos []UserDTO
	err := r.db.WithContext(ctx).
		Where("role = ?", user.RoleDelivery.String()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	candidates := make([]user.Candidate, 0, len(dtos))
	for _, dto := range dtos {
		candidates = append(candidates, user.Candidate{
			ID:          dto.ID,
			Name:        dto.Name,
			StudentID:   dto.StudentID,
			IsAvailable: dto.IsAvailable,
		})
	}
	return candidates, nil
}

// Reset deletes every account.
func (r *GormUserRepository) Reset(ctx context.Context) error {
	return r.db.WithContext(ctx).Exec("TRUNCATE TABLE users").Error
}

func (r *GormUserRepository) first(ctx context.Context, key string, query string, args ...any) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).Where(query, args...).First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", key)
		}
		return nil, err
	}
	return toDomain(dto)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
