package database

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// User represents an account in the database.
// The password is stored as a bcrypt hash and never leaves this layer in
// plaintext form. Deleting a user cascades to their events.
type User struct {
	gorm.Model
	Username     string       `gorm:"uniqueIndex;not null"`
	PasswordHash string       `gorm:"not null" json:"-"`
	Score        int          `gorm:"not null;default:0"`
	Groups       []*Group     `gorm:"many2many:group_members;"`
	Events       []TimedEvent `gorm:"constraint:OnDelete:CASCADE;"`
}

// CreateUser inserts a new user with the given username and password hash.
// The uniqueness check and the insert run in a single transaction.
func (c *Client) CreateUser(ctx context.Context, username, passwordHash string) (*User, error) {
	if username == "" || passwordHash == "" {
		return nil, ErrInvalidInput
	}

	user := User{
		Username:     username,
		PasswordHash: passwordHash,
	}
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrConflict
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if !expected(err) {
			log.Error("failed to create user", "error", err)
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername looks up a user by their unique username.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Error("failed to get user by username", "error", err)
		return nil, err
	}
	return &user, nil
}

// GetUserByID looks up a user by their id.
func (c *Client) GetUserByID(ctx context.Context, id uint) (*User, error) {
	var user User
	if err := c.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		log.Error("failed to get user by ID", "error", err)
		return nil, err
	}
	return &user, nil
}

// UpdateUserScore replaces the user's score and returns the updated record.
func (c *Client) UpdateUserScore(ctx context.Context, userID uint, score int) (*User, error) {
	if score < 0 {
		return nil, ErrInvalidInput
	}

	var user User
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Model(&user).Update("score", score).Error
	})
	if err != nil {
		if !expected(err) {
			log.Error("failed to update user score", "error", err)
		}
		return nil, err
	}
	return &user, nil
}
