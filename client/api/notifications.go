package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// notificationList accepts both a bare array and a DRF-paginated
// {"results": [...]} body, which the backend switches between per deployment.
type notificationList []Notification

func (l *notificationList) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		var plain []Notification
		if err := json.Unmarshal(data, &plain); err != nil {
			return err
		}
		*l = plain
		return nil
	}
	var page struct {
		Results []Notification `json:"results"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return err
	}
	*l = page.Results
	return nil
}

func (c *Client) GetNotifications(ctx context.Context) ([]Notification, error) {
	var notifications notificationList
	if err := c.get(ctx, "/notifications/", &notifications); err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return notifications, nil
}

func (c *Client) GetUnreadNotificationCount(ctx context.Context) (int, error) {
	var body struct {
		UnreadCount int `json:"unread_count"`
	}
	if err := c.get(ctx, "/notifications/unread-count/", &body); err != nil {
		return 0, fmt.Errorf("failed to fetch unread notification count: %w", err)
	}
	return body.UnreadCount, nil
}

func (c *Client) MarkNotificationAsRead(ctx context.Context, notificationID int) error {
	if err := c.post(ctx, fmt.Sprintf("/notifications/%d/read/", notificationID), nil, nil); err != nil {
		return fmt.Errorf("failed to mark notification as read: %w", err)
	}
	return nil
}

func (c *Client) MarkAllNotificationsAsRead(ctx context.Context) error {
	if err := c.post(ctx, "/notifications/mark-all-read/", nil, nil); err != nil {
		return fmt.Errorf("failed to mark all notifications as read: %w", err)
	}
	return nil
}
