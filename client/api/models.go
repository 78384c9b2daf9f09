package api

import (
	"time"
)

type Club struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Joined       bool      `json:"joined"`
	MembersCount int       `json:"members_count"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Member struct {
	ID             int    `json:"id"`
	Username       string `json:"username"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profile_picture"`
}

func (m Member) FullName() string {
	if m.FirstName != "" && m.LastName != "" {
		return m.FirstName + " " + m.LastName
	}
	if m.Username != "" {
		return m.Username
	}
	return "Unknown User"
}

type Event struct {
	ID               int       `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Location         string    `json:"location"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	RSVPed           bool      `json:"rsvped"`
	Category         string    `json:"category"`
	Organizer        string    `json:"organizer"`
	CurrentAttendees int       `json:"current_attendees"`
	MaxAttendees     int       `json:"max_attendees"`
}

type Notification struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type MarketplaceItem struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Category    string    `json:"category"`
	Condition   string    `json:"condition"`
	Image       string    `json:"image"`
	Sold        bool      `json:"sold"`
	Seller      string    `json:"seller"`
	CreatedAt   time.Time `json:"created_at"`
}

type LostFoundItem struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	Image       string    `json:"image"`
	PostedBy    string    `json:"posted_by"`
	CreatedAt   time.Time `json:"created_at"`
}
