package dao

import (
	"amora/amora/sources/psql/models"
	"amora/amora/types"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type UserDAO struct {
	DB *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{DB: db}
}

// GetUserByUsername loads the user aggregate with its photos.
// Returns (nil, nil) when no such user exists.
func (dao *UserDAO) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := dao.DB.WithContext(ctx).
		Preload("Photos").
		Where("username = ?", username).
		First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetMembers returns one page of users matching params plus the total
// match count. The current user is always excluded.
func (dao *UserDAO) GetMembers(ctx context.Context, params types.UserParams) ([]models.User, int64, error) {
	now := time.Now()
	minDob := now.AddDate(-params.MaxAge-1, 0, 1)
	maxDob := now.AddDate(-params.MinAge, 0, 0)

	query := dao.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("username <> ?", params.CurrentUser).
		Where("date_of_birth BETWEEN ? AND ?", minDob, maxDob)
	if params.Gender != "" {
		query = query.Where("gender = ?", params.Gender)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch params.OrderBy {
	case "created":
		query = query.Order("created DESC")
	default:
		query = query.Order("last_active DESC")
	}

	var users []models.User
	err := query.
		Preload("Photos").
		Offset((params.PageNumber - 1) * params.PageSize).
		Limit(params.PageSize).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (dao *UserDAO) CreateUser(ctx context.Context, user *models.User) error {
	return dao.DB.WithContext(ctx).Create(user).Error
}

// SaveUser persists the aggregate including modified photos. A save
// that touches no rows (e.g. the user row vanished underneath us) is
// reported as an error, not silently swallowed.
func (dao *UserDAO) SaveUser(ctx context.Context, user *models.User) error {
	res := dao.DB.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(user)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("no rows were saved")
	}
	return nil
}

// DeletePhoto removes a single photo row.
func (dao *UserDAO) DeletePhoto(ctx context.Context, photo *models.Photo) error {
	return dao.DB.WithContext(ctx).Delete(photo).Error
}
