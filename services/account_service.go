package services

import (
	"fmt"
	"strings"

	"github.com/MarsCSmajor/PizzaStore-Project-DataBase/models"
	"gorm.io/gorm"
)

// AccountService implements account creation, authentication, profile
// maintenance and the manager-only user updates.
type AccountService struct {
	db *gorm.DB
}

// NewAccountService returns a service bound to an open database handle.
func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// CreateUser inserts a new account with the role fixed to "customer".
// The login is checked for uniqueness with a preliminary lookup, not a
// constraint-driven retry.
func (s *AccountService) CreateUser(login, phoneNum, password string) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("login = ?", login).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrLoginExists
	}

	user := models.User{
		Login:    login,
		Password: password,
		Role:     models.RoleCustomer,
		PhoneNum: phoneNum,
	}
	return s.db.Create(&user).Error
}

// Authenticate checks a login/password pair. It returns the login on
// success and an empty identity on any failure path: unknown login,
// wrong password, or a query error.
func (s *AccountService) Authenticate(login, password string) (string, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("login = ?", login).Count(&count).Error; err != nil {
		return "", err
	}
	if count != 1 {
		return "", ErrLoginNotFound
	}

	if err := s.db.Model(&models.User{}).
		Where("login = ? AND password = ?", login, password).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count != 1 {
		return "", ErrWrongPassword
	}
	return login, nil
}

// LoginExists reports whether an account with this login is present.
func (s *AccountService) LoginExists(login string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("login = ?", login).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Role returns the caller's current role, freshly queried from the store.
func (s *AccountService) Role(login string) (string, error) {
	return lookupRole(s.db, login)
}

// GetProfile returns the full user row for a login.
func (s *AccountService) GetProfile(login string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("login = ?", login).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrLoginNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdatePassword changes a user's password after the current one has been
// re-entered. The check compares against a freshly fetched copy of the row,
// not against the live row at update time.
func (s *AccountService) UpdatePassword(login, current, newPassword string) error {
	user, err := s.GetProfile(login)
	if err != nil {
		return err
	}
	if current != user.Password {
		return ErrPasswordMismatch
	}
	return s.db.Model(&models.User{}).Where("login = ?", login).
		Update("password", newPassword).Error
}

// UpdatePhoneNum changes a user's phone number, gated on re-entering the
// current number.
func (s *AccountService) UpdatePhoneNum(login, current, newPhone string) error {
	user, err := s.GetProfile(login)
	if err != nil {
		return err
	}
	if current != user.PhoneNum {
		return ErrPhoneMismatch
	}
	return s.db.Model(&models.User{}).Where("login = ?", login).
		Update("phone_num", newPhone).Error
}

// UpdateFavoriteItems sets the favorite item without any verification.
func (s *AccountService) UpdateFavoriteItems(login, item string) error {
	return s.db.Model(&models.User{}).Where("login = ?", login).
		Update("favorite_items", item).Error
}

// RenameLogin changes a user's login (manager only). The foreign key from
// orders to users is dropped for the duration of the two updates and
// re-added afterwards; the steps are not wrapped in a transaction.
func (s *AccountService) RenameLogin(manager, oldLogin, newLogin string) error {
	if err := requireManager(s.db, manager); err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("login = ?", oldLogin).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("user %q: %w", oldLogin, ErrLoginNotFound)
	}

	if err := s.db.Model(&models.User{}).Where("login = ?", newLogin).Count(&count).Error; err != nil {
		return err
	}
	if count != 0 {
		return fmt.Errorf("new login %q: %w", newLogin, ErrLoginExists)
	}

	migrator := s.db.Migrator()
	hadConstraint := migrator.HasConstraint(&models.FoodOrder{}, "User")
	if hadConstraint {
		if err := migrator.DropConstraint(&models.FoodOrder{}, "User"); err != nil {
			return fmt.Errorf("error updating login: %w", err)
		}
	}

	if err := s.db.Model(&models.User{}).Where("login = ?", oldLogin).
		Update("login", newLogin).Error; err != nil {
		return fmt.Errorf("error updating login: %w", err)
	}
	if err := s.db.Model(&models.FoodOrder{}).Where("login = ?", oldLogin).
		Update("login", newLogin).Error; err != nil {
		return fmt.Errorf("error updating login: %w", err)
	}

	if hadConstraint {
		if err := migrator.CreateConstraint(&models.FoodOrder{}, "User"); err != nil {
			return fmt.Errorf("error updating login: %w", err)
		}
	}
	return nil
}

// UpdateRole changes a user's role (manager only). The new role is
// validated against the closed three-value set.
func (s *AccountService) UpdateRole(manager, login, role string) error {
	if err := requireManager(s.db, manager); err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("login = ?", login).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("user %q: %w", login, ErrLoginNotFound)
	}

	if !models.IsValidRole(role) {
		return ErrInvalidRole
	}
	return s.db.Model(&models.User{}).Where("login = ?", login).
		Update("role", role).Error
}

// requireManager re-queries the caller's role and rejects everyone but
// managers. Privileged actions run this check inline every time instead
// of trusting any cached state.
func requireManager(db *gorm.DB, login string) error {
	var count int64
	if err := db.Model(&models.User{}).
		Where("login = ? AND role = ?", login, models.RoleManager).
		Count(&count).Error; err != nil {
		return err
	}
	if count != 1 {
		return fmt.Errorf("%w: only managers can perform this action", ErrAccessDenied)
	}
	return nil
}

// lookupRole fetches a user's current role, trimmed of padding.
func lookupRole(db *gorm.DB, login string) (string, error) {
	var user models.User
	if err := db.Select("role").Where("login = ?", login).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", ErrLoginNotFound
		}
		return "", err
	}
	return strings.TrimSpace(user.Role), nil
}
