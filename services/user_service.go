package services

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pizzastore/authz"
	"pizzastore/models"
)

// UserService manages the user directory: self-registration, profile
// edits, and the manager-only add/update/delete operations.
type UserService struct {
	db     *gorm.DB
	policy *authz.Policy
}

func NewUserService(db *gorm.DB, policy *authz.Policy) *UserService {
	return &UserService{db: db, policy: policy}
}

// ProfileField names a user column that may be updated individually.
type ProfileField string

const (
	FieldFavoriteItems ProfileField = "favoriteItems"
	FieldPhoneNum      ProfileField = "phoneNum"
	FieldRole          ProfileField = "role"
)

func profileColumn(f ProfileField) (string, bool) {
	switch f {
	case FieldFavoriteItems:
		return "favorite_items", true
	case FieldPhoneNum:
		return "phone_num", true
	case FieldRole:
		return "role", true
	}
	return "", false
}

type RegisterRequest struct {
	Login    string      `json:"login" binding:"required"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     models.Role `json:"role" binding:"required"`
	Phone    string      `json:"phone"`
}

// Register creates a user via self-registration. Any caller may pick any
// of the three roles; anything else is rejected before touching the
// store. FavoriteItems always starts empty.
func (s *UserService) Register(req RegisterRequest) (*models.User, error) {
	login := strings.TrimSpace(req.Login)
	if login == "" {
		return nil, fmt.Errorf("%w: login must not be blank", ErrInvalidInput)
	}
	if !req.Role.Valid() {
		return nil, ErrInvalidRole
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("login = ?", login).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("login %q: %w", login, ErrAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Login:         login,
		Password:      string(hash),
		Role:          req.Role,
		FavoriteItems: "",
		PhoneNum:      req.Phone,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Authenticate verifies a login/password pair. Zero matches map to
// ErrInvalidCredentials; a store failure surfaces as its own error and
// is never mistaken for success.
func (s *UserService) Authenticate(login, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("login = ?", login).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// Profile returns the directory record for a login.
func (s *UserService) Profile(login string) (*models.User, error) {
	var user models.User
	err := s.db.Where("login = ?", login).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("login %q: %w", login, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a single-field replacement on the caller's own
// record. The write is always applied once a field is chosen; there is
// no compare-against-current check.
func (s *UserService) UpdateProfile(login string, field ProfileField, value string) error {
	return s.updateUserField(login, field, value)
}

// ManagerUpdateUser is the manager override of UpdateProfile for any
// target login.
func (s *UserService) ManagerUpdateUser(actor, target string, field ProfileField, value string) error {
	if err := s.policy.Require(actor, authz.CapManageUsers); err != nil {
		return mapAuthzErr(err)
	}
	return s.updateUserField(target, field, value)
}

func (s *UserService) updateUserField(login string, field ProfileField, value string) error {
	column, ok := profileColumn(field)
	if !ok {
		return fmt.Errorf("%w: unknown field %q", ErrInvalidInput, field)
	}
	if field == FieldRole && !models.Role(value).Valid() {
		return ErrInvalidRole
	}
	return s.db.Model(&models.User{}).Where("login = ?", login).Update(column, value).Error
}

type AddUserRequest struct {
	Login         string      `json:"login" binding:"required"`
	Password      string      `json:"password" binding:"required,min=6"`
	Role          models.Role `json:"role" binding:"required"`
	FavoriteItems string      `json:"favorite_items"`
	Phone         string      `json:"phone"`
}

// AddUser creates a user on behalf of a manager. Unlike Register, the
// manager may seed favorite items directly.
func (s *UserService) AddUser(actor string, req AddUserRequest) (*models.User, error) {
	if err := s.policy.Require(actor, authz.CapManageUsers); err != nil {
		return nil, mapAuthzErr(err)
	}
	user, err := s.Register(RegisterRequest{
		Login:    req.Login,
		Password: req.Password,
		Role:     req.Role,
		Phone:    req.Phone,
	})
	if err != nil {
		return nil, err
	}
	if req.FavoriteItems != "" {
		if err := s.db.Model(user).Update("favorite_items", req.FavoriteItems).Error; err != nil {
			return nil, err
		}
		user.FavoriteItems = req.FavoriteItems
	}
	return user, nil
}

// DeleteUser removes a directory record. Deleting an absent login is a
// no-op success, matching the original "attempt made" semantics.
func (s *UserService) DeleteUser(actor, target string) error {
	if err := s.policy.Require(actor, authz.CapManageUsers); err != nil {
		return mapAuthzErr(err)
	}
	return s.db.Where("login = ?", target).Delete(&models.User{}).Error
}

// ListUsers returns the directory, optionally filtered by role.
func (s *UserService) ListUsers(actor string, role string) ([]models.User, error) {
	if err := s.policy.Require(actor, authz.CapManageUsers); err != nil {
		return nil, mapAuthzErr(err)
	}
	query := s.db.Order("login")
	if role != "" {
		query = query.Where("role = ?", role)
	}
	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// mapAuthzErr folds policy errors into the service taxonomy. Anything
// else (a store failure during the role lookup) passes through.
func mapAuthzErr(err error) error {
	if errors.Is(err, authz.ErrDenied) {
		return ErrPermissionDenied
	}
	return err
}
