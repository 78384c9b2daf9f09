package screen

import (
	"context"
	"sync"

	"github.com/campushub/campus-client/client/api"
	"github.com/campushub/campus-client/internal/tsync"
)

// NotificationsController drives the notifications screen. Unlike the club
// and event screens, read-state mutations here are applied only after the
// backend confirms them.
type NotificationsController struct {
	client *api.Client

	mu            sync.Mutex
	phase         Phase
	refreshing    bool
	err           *Descriptor
	notifications []api.Notification
	unread        int
}

func NewNotificationsController(client *api.Client) *NotificationsController {
	return &NotificationsController{
		client: client,
		phase:  PhaseLoading,
	}
}

// Load fetches the notification list and the unread count concurrently.
func (c *NotificationsController) Load(ctx context.Context, showSpinner bool) error {
	c.mu.Lock()
	if showSpinner {
		c.phase = PhaseLoading
	}
	c.err = nil
	c.mu.Unlock()

	var (
		notifications []api.Notification
		unread        int
	)
	eg, ctx := tsync.ErrorGroupWithContext(ctx)
	eg.Go(func() error {
		var err error
		notifications, err = c.client.GetNotifications(ctx)
		return err
	})
	eg.Go(func() error {
		var err error
		unread, err = c.client.GetUnreadNotificationCount(ctx)
		return err
	})
	err := eg.Wait()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshing = false
	if err != nil {
		desc := Classify(err)
		c.err = &desc
		c.phase = PhaseError
		return desc
	}
	c.notifications = notifications
	c.unread = unread
	c.phase = PhaseReady
	return nil
}

func (c *NotificationsController) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.refreshing = true
	c.mu.Unlock()
	return c.Load(ctx, false)
}

// MarkRead marks a single notification as read. The local flip and unread
// decrement happen only after the backend accepts the request.
func (c *NotificationsController) MarkRead(ctx context.Context, notificationID int) error {
	if err := c.client.MarkNotificationAsRead(ctx, notificationID); err != nil {
		return Classify(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.notifications {
		if c.notifications[i].ID != notificationID {
			continue
		}
		if !c.notifications[i].IsRead {
			c.notifications[i].IsRead = true
			if c.unread > 0 {
				c.unread--
			}
		}
		break
	}
	return nil
}

func (c *NotificationsController) MarkAllRead(ctx context.Context) error {
	if err := c.client.MarkAllNotificationsAsRead(ctx); err != nil {
		return Classify(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.notifications {
		c.notifications[i].IsRead = true
	}
	c.unread = 0
	return nil
}

func (c *NotificationsController) Notifications() []api.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	notifications := make([]api.Notification, len(c.notifications))
	copy(notifications, c.notifications)
	return notifications
}

func (c *NotificationsController) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unread
}

func (c *NotificationsController) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *NotificationsController) Refreshing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshing
}

func (c *NotificationsController) Err() *Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		return nil
	}
	desc := *c.err
	return &desc
}
