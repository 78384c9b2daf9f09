package api

import (
	"context"
	"fmt"
)

func (c *Client) GetEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	if err := c.get(ctx, "/events/", &events); err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	return events, nil
}

// RSVPEvent toggles the current user's RSVP for the event.
func (c *Client) RSVPEvent(ctx context.Context, eventID int) error {
	if err := c.post(ctx, fmt.Sprintf("/events/%d/rsvp/", eventID), nil, nil); err != nil {
		return fmt.Errorf("failed to toggle RSVP: %w", err)
	}
	return nil
}
