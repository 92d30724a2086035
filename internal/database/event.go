package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// TimedEvent is a single weekly-recurring reminder owned by exactly one
// user. The owner is fixed at creation time.
type TimedEvent struct {
	gorm.Model
	Title   string `gorm:"not null"`
	Weekday int    `gorm:"not null"` // 0-6
	Hour    int    `gorm:"not null"` // 0-23
	Minute  int    `gorm:"not null"` // 0-59
	UserID  uint   `gorm:"index;not null"`
}

// CreateEvent validates the fields (title, weekday, hour, minute, in that
// order) and persists the event owned by ownerID.
func (c *Client) CreateEvent(ctx context.Context, ownerID uint, title string, weekday, hour, minute int) (*TimedEvent, error) {
	switch {
	case title == "":
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	case weekday < 0 || weekday > 6:
		return nil, fmt.Errorf("%w: weekday must be an integer between 0 and 6", ErrInvalidInput)
	case hour < 0 || hour > 23:
		return nil, fmt.Errorf("%w: hour must be an integer between 0 and 23", ErrInvalidInput)
	case minute < 0 || minute > 59:
		return nil, fmt.Errorf("%w: minute must be an integer between 0 and 59", ErrInvalidInput)
	}

	event := TimedEvent{
		Title:   title,
		Weekday: weekday,
		Hour:    hour,
		Minute:  minute,
		UserID:  ownerID,
	}
	if err := c.db.WithContext(ctx).Create(&event).Error; err != nil {
		log.Error("failed to create event", "error", err)
		return nil, err
	}
	return &event, nil
}

// ListEventsForUser returns the user's events in weekly-chronological
// order, ascending by (weekday, hour, minute).
func (c *Client) ListEventsForUser(ctx context.Context, userID uint) ([]TimedEvent, error) {
	var events []TimedEvent
	err := c.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("weekday, hour, minute").
		Find(&events).Error
	if err != nil {
		log.Error("failed to list events for user", "error", err)
		return nil, err
	}
	return events, nil
}

// DeleteEvent deletes the event if the requester owns it. A missing event
// reports ErrNotFound before the ownership check; a failed check leaves the
// event intact.
func (c *Client) DeleteEvent(ctx context.Context, eventID, requesterID uint) error {
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var event TimedEvent
		if err := tx.First(&event, eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if event.UserID != requesterID {
			return ErrForbidden
		}
		return tx.Delete(&event).Error
	})
	if err != nil {
		if !expected(err) {
			log.Error("failed to delete event", "error", err)
		}
		return err
	}
	return nil
}

// ListEventsForGroup returns the events of every current member of the
// group, ascending by (weekday, hour, minute). Only members may read the
// aggregate; a missing group reports ErrNotFound first.
func (c *Client) ListEventsForGroup(ctx context.Context, groupID, requesterID uint) ([]TimedEvent, error) {
	var events []TimedEvent
	err := c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var group Group
		if err := tx.First(&group, groupID).Error; err != nil {
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

		return tx.
			Joins("JOIN group_members ON group_members.user_id = timed_events.user_id").
			Where("group_members.group_id = ?", groupID).
			Order("timed_events.weekday, timed_events.hour, timed_events.minute").
			Find(&events).Error
	})
	if err != nil {
		if !expected(err) {
			log.Error("failed to list events for group", "error", err)
		}
		return nil, err
	}
	return events, nil
}
