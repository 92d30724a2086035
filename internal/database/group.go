package database

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// Group is a named collection of users. Membership is a plain many-to-many
// relation without extra attributes.
type Group struct {
	gorm.Model
	Name    string  `gorm:"uniqueIndex;not null"`
	Members []*User `gorm:"many2many:group_members;"`
}

// isMember reports whether the user is currently listed in the group's
// membership relation.
func isMember(tx *gorm.DB, groupID, userID uint) (bool, error) {
	var count int64
	err := tx.Table("group_members").
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

// CreateGroup inserts a group and adds the creator as its sole initial
// member. Name uniqueness, the insert and the membership write share one
// transaction.
func (c *Client) CreateGroup(ctx context.Context, name string, creatorID uint) (*Group, error) {
	if name == "" {
		return nil, ErrInvalidInput
	}

	group := Group{Name: name}
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var creator User
		if err := tx.First(&creator, creatorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&Group{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrConflict
		}

		if err := tx.Create(&group).Error; err != nil {
			return err
		}
		return tx.Model(&group).Association("Members").Append(&creator)
	})
	if err != nil {
		if !expected(err) {
			log.Error("failed to create group", "error", err)
		}
		return nil, err
	}
	return &group, nil
}

// ListGroupsForUser returns id+name summaries of every group the user
// belongs to, ordered by group id.
func (c *Client) ListGroupsForUser(ctx context.Context, userID uint) ([]Group, error) {
	var groups []Group
	err := c.db.WithContext(ctx).
		Joins("JOIN group_members ON group_members.group_id = groups.id").
		Where("group_members.user_id = ?", userID).
		Order("groups.id").
		Find(&groups).Error
	if err != nil {
		log.Error("failed to list groups for user", "error", err)
		return nil, err
	}
	return groups, nil
}

// GetGroupDetail returns the group with its full member list. Only members
// may see the detail; a missing group reports ErrNotFound before any
// membership check.
func (c *Client) GetGroupDetail(ctx context.Context, groupID, requesterID uint) (*Group, error) {
	var group Group
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("users.id")
		}).First(&group, groupID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		member, err := isMember(tx, groupID, requesterID)
		if err != nil {
			return err
		}
		if !member {
			return ErrForbidden
		}
		return nil
	})
	if err != nil {
		if !expected(err) {
			log.Error("failed to get group detail", "error", err)
		}
		return nil, err
	}
	return &group, nil
}

// AddMember adds the user to the group. Joining a group the user already
// belongs to is not an error; the returned bool reports that case.
func (c *Client) AddMember(ctx context.Context, groupID, userID uint) (bool, error) {
	var already bool
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var group Group
		if err := tx.First(&group, groupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var user User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		member, err := isMember(tx, groupID, userID)
		if err != nil {
			return err
		}
		if member {
			already = true
			return nil
		}
		return tx.Model(&group).Association("Members").Append(&user)
	})
	if err != nil {
		if !expected(err) {
			log.Error("failed to add group member", "error", err)
		}
		return false, err
	}
	return already, nil
}

// RemoveMember removes the user from the group. Unlike AddMember this is
// not idempotent: leaving a group the user does not belong to reports
// ErrNotMember.
func (c *Client) RemoveMember(ctx context.Context, groupID, userID uint) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var group Group
		if err := tx.First(&group, groupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		member, err := isMember(tx, groupID, userID)
		if err != nil {
			return err
		}
		if !member {
			return ErrNotMember
		}
		return tx.Model(&group).Association("Members").Delete(&User{Model: gorm.Model{ID: userID}})
	})
	if err != nil {
		if !expected(err) {
			log.Error("failed to remove group member", "error", err)
		}
		return err
	}
	return nil
}
