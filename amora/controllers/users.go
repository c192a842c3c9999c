package controllers

import (
	"amora/amora/sources/psql/dao"
	"amora/amora/sources/psql/models"
	"amora/amora/sources/storage"
	"amora/amora/types"
	"amora/amora/utils/logging"
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

var (
	// ErrNotFound: acting user or referenced photo does not exist / is not owned.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyMain: set-main requested for the photo that is already main.
	ErrAlreadyMain = errors.New("already main photo")
	// ErrMainPhoto: delete requested for the current main photo.
	ErrMainPhoto = errors.New("main photo can not be deleted")
	// ErrNothingSaved: the repository reported the save did not take effect.
	ErrNothingSaved = errors.New("nothing was saved")
	// ErrInternal: repository read failure, not the caller's fault.
	ErrInternal = errors.New("internal error")
)

type UsersController struct {
	dao    *dao.UserDAO
	photos storage.PhotoStorage
}

func NewUsersController(dao *dao.UserDAO, photos storage.PhotoStorage) *UsersController {
	return &UsersController{dao: dao, photos: photos}
}

func (c *UsersController) getUser(ctx context.Context, username string) (*models.User, error) {
	user, err := c.dao.GetUserByUsername(ctx, username)
	if err != nil {
		logging.ErrorLogger.Error("load user failed",
			zap.String("username", username), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (c *UsersController) GetMemberByUsername(ctx context.Context, username string) (*types.MemberDTO, error) {
	user, err := c.getUser(ctx, username)
	if err != nil {
		return nil, err
	}
	return types.NewMemberDTO(user), nil
}

// GetMembers returns one page of the member listing for the acting
// user. The acting user is excluded from the results, and an unset
// gender filter defaults to the opposite of their own.
func (c *UsersController) GetMembers(ctx context.Context, username string, params types.UserParams) (*types.PagedList[*types.MemberDTO], error) {
	defer logging.LogDuration(ctx, "GetMembers")()

	current, err := c.getUser(ctx, username)
	if err != nil {
		return nil, err
	}

	params.CurrentUser = current.Username
	if params.Gender == "" {
		if current.Gender == "male" {
			params.Gender = "female"
		} else {
			params.Gender = "male"
		}
	}
	params.Normalize()

	users, total, err := c.dao.GetMembers(ctx, params)
	if err != nil {
		logging.ErrorLogger.Error("member query failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	members := make([]*types.MemberDTO, 0, len(users))
	for i := range users {
		members = append(members, types.NewMemberDTO(&users[i]))
	}
	return types.NewPagedList(members, total, params.PageNumber, params.PageSize), nil
}

// UpdateUser applies a partial profile update to the acting user.
func (c *UsersController) UpdateUser(ctx context.Context, username string, req types.MemberUpdateRequest) error {
	user, err := c.getUser(ctx, username)
	if err != nil {
		return err
	}

	types.ApplyMemberUpdate(user, req)

	if err := c.dao.SaveUser(ctx, user); err != nil {
		logging.ErrorLogger.Error("profile update not persisted",
			zap.String("username", username), zap.Error(err))
		return ErrNothingSaved
	}
	return nil
}

// AddPhoto uploads the image to the hosting backend and appends the
// resulting photo to the acting user's gallery. The first photo a user
// ever adds becomes their main photo.
//
// If the save fails after the upload succeeded, the uploaded object is
// removed again on a best-effort basis so it does not linger as an
// orphan.
func (c *UsersController) AddPhoto(ctx context.Context, username string, file io.Reader, size int64, filename, contentType string) (*types.PhotoDTO, error) {
	user, err := c.getUser(ctx, username)
	if err != nil {
		return nil, err
	}

	result, err := c.photos.UploadPhoto(ctx, file, size, filename, contentType)
	if err != nil {
		return nil, err
	}

	photo := models.Photo{
		URL:      result.URL,
		PublicID: result.PublicID,
	}
	if len(user.Photos) == 0 {
		photo.IsMain = true
	}
	user.Photos = append(user.Photos, photo)

	if err := c.dao.SaveUser(ctx, user); err != nil {
		logging.ErrorLogger.Error("photo not persisted, removing upload",
			zap.String("username", username), zap.Error(err))
		if delErr := c.photos.DeletePhoto(ctx, result.PublicID); delErr != nil {
			logging.ErrorLogger.Error("orphaned upload left behind",
				zap.String("public_id", result.PublicID), zap.Error(delErr))
		}
		return nil, ErrNothingSaved
	}

	saved := &user.Photos[len(user.Photos)-1]
	dto := types.NewPhotoDTO(saved)
	return &dto, nil
}

// SetMainPhoto moves the main flag to the given photo. The photo must
// belong to the acting user and must not already be main.
func (c *UsersController) SetMainPhoto(ctx context.Context, username string, photoID int) error {
	user, err := c.getUser(ctx, username)
	if err != nil {
		return err
	}

	photo := user.PhotoByID(photoID)
	if photo == nil {
		return ErrNotFound
	}
	if photo.IsMain {
		return ErrAlreadyMain
	}

	if current := user.MainPhoto(); current != nil {
		current.IsMain = false
	}
	photo.IsMain = true

	if err := c.dao.SaveUser(ctx, user); err != nil {
		logging.ErrorLogger.Error("main photo change not persisted",
			zap.String("username", username), zap.Int("photo_id", photoID), zap.Error(err))
		return ErrNothingSaved
	}
	return nil
}

// DeletePhoto removes a non-main photo, remote-first: the hosted object
// is deleted before the local record so the two never diverge when the
// provider call fails.
func (c *UsersController) DeletePhoto(ctx context.Context, username string, photoID int) error {
	user, err := c.getUser(ctx, username)
	if err != nil {
		return err
	}

	photo := user.PhotoByID(photoID)
	if photo == nil {
		return ErrNotFound
	}
	if photo.IsMain {
		return ErrMainPhoto
	}

	if err := c.photos.DeletePhoto(ctx, photo.PublicID); err != nil {
		return err
	}

	removed := *photo
	for i := range user.Photos {
		if user.Photos[i].ID == photoID {
			user.Photos = append(user.Photos[:i], user.Photos[i+1:]...)
			break
		}
	}

	if err := c.dao.DeletePhoto(ctx, &removed); err != nil {
		logging.ErrorLogger.Error("photo delete not persisted",
			zap.String("username", username), zap.Int("photo_id", photoID), zap.Error(err))
		return ErrNothingSaved
	}
	return nil
}
