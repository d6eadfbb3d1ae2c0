package repository

import (
	"errors"

	"food-donation-backend/internal/database/models"
	apperrors "food-donation-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. The unique index on email makes concurrent
// registrations with the same address fail here rather than both succeeding.
func (r *UserRepository) Create(user *models.User) error {
	err := r.db.Create(user).Error
	if isUniqueViolation(err) {
		return apperrors.ErrEmailTaken
	}
	return err
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by exact email match
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyByToken marks the user holding the given email token as verified in a
// single conditional update and returns the number of affected rows. The token
// is left in place so the verification link stays repeatable.
func (r *UserRepository) VerifyByToken(token string) (int64, error) {
	res := r.db.Model(&models.User{}).
		Where("email_token = ?", token).
		Update("is_verified", true)
	return res.RowsAffected, res.Error
}

// Update saves a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
