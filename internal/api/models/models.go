package models

// UserSummary is the JSON shape of an account.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// GroupSummary is the id+name shape used in group listings.
type GroupSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// GroupDetail extends GroupSummary with the full member list.
type GroupDetail struct {
	ID      uint          `json:"id"`
	Name    string        `json:"name"`
	Members []UserSummary `json:"members"`
}

// Event is the JSON shape of a timed event.
type Event struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Weekday int    `json:"weekday"`
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
	UserID  uint   `json:"user_id"`
}

// UpdateScoreRequest is the PATCH /api/me body.
type UpdateScoreRequest struct {
	Score *int `json:"score"`
}

// CreateGroupRequest is the POST /api/groups body.
type CreateGroupRequest struct {
	Name string `json:"name"`
}

// InviteRequest is the POST /api/groups/:id/invite body.
type InviteRequest struct {
	Username string `json:"username"`
}

// CreateEventRequest is the POST /api/events body. The numeric fields are
// pointers so that a missing field is distinguishable from a zero value.
type CreateEventRequest struct {
	Title   string `json:"title"`
	Weekday *int   `json:"weekday"`
	Hour    *int   `json:"hour"`
	Minute  *int   `json:"minute"`
}
