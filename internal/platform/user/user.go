package user

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"registrar/internal/database"
)

var ErrUserNotFound = errors.New("user not found")

type UserService struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetUser(ctx context.Context, uid string) (*database.User, error) {
	var user database.User
	result := s.db.WithContext(ctx).First(&user, "uid = ?", uid)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, result.Error
	}
	return &user, nil
}

// CreateIfAbsent writes the record only when no row exists for its
// uid. Under concurrent registration exactly one caller inserts; the
// read-back returns the winner's row for everyone.
func (s *UserService) CreateIfAbsent(ctx context.Context, user *database.User) (*database.User, error) {
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		DoNothing: true,
	}).Create(user)
	if result.Error != nil {
		return nil, result.Error
	}

	var stored database.User
	if err := s.db.WithContext(ctx).First(&stored, "uid = ?", user.UID).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}
