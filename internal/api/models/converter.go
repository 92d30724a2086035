package models

import (
	"github.com/samber/lo"

	"github.com/schedoosh/schedoosh/internal/database"
)

// ToUserSummary converts a database.User to its JSON shape.
func ToUserSummary(u *database.User) UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Score:    u.Score,
	}
}

// ToGroupSummary converts a database.Group to its id+name shape.
func ToGroupSummary(g database.Group) GroupSummary {
	return GroupSummary{
		ID:   g.ID,
		Name: g.Name,
	}
}

// ToGroupSummaries converts a slice of database.Group to GroupSummaries.
func ToGroupSummaries(groups []database.Group) []GroupSummary {
	return lo.Map(groups, func(g database.Group, _ int) GroupSummary {
		return ToGroupSummary(g)
	})
}

// ToGroupDetail converts a database.Group with preloaded members to its
// detail shape.
func ToGroupDetail(g *database.Group) GroupDetail {
	return GroupDetail{
		ID:   g.ID,
		Name: g.Name,
		Members: lo.Map(g.Members, func(m *database.User, _ int) UserSummary {
			return ToUserSummary(m)
		}),
	}
}

// ToEvent converts a database.TimedEvent to its JSON shape.
func ToEvent(e *database.TimedEvent) Event {
	return Event{
		ID:      e.ID,
		Title:   e.Title,
		Weekday: e.Weekday,
		Hour:    e.Hour,
		Minute:  e.Minute,
		UserID:  e.UserID,
	}
}

// ToEvents converts a slice of database.TimedEvent to Events.
func ToEvents(events []database.TimedEvent) []Event {
	return lo.Map(events, func(e database.TimedEvent, _ int) Event {
		return ToEvent(&e)
	})
}
