package api

import (
	"context"
	"fmt"
)

type CreateLostFoundItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	Image       string `json:"image,omitempty"`
}

func (c *Client) CreateLostFoundItem(ctx context.Context, item CreateLostFoundItemRequest) (*LostFoundItem, error) {
	var created LostFoundItem
	if err := c.post(ctx, "/lost-found/", item, &created); err != nil {
		return nil, fmt.Errorf("failed to create lost-found item: %w", err)
	}
	return &created, nil
}

func (c *Client) GetLostFoundItems(ctx context.Context) ([]LostFoundItem, error) {
	var items []LostFoundItem
	if err := c.get(ctx, "/lost-found/", &items); err != nil {
		return nil, fmt.Errorf("failed to fetch lost-found items: %w", err)
	}
	return items, nil
}

func (c *Client) GetLostFoundItemByID(ctx context.Context, itemID int) (*LostFoundItem, error) {
	var item LostFoundItem
	if err := c.get(ctx, fmt.Sprintf("/lost-found/%d/", itemID), &item); err != nil {
		return nil, fmt.Errorf("failed to fetch lost-found item: %w", err)
	}
	return &item, nil
}

func (c *Client) UpdateLostFoundStatus(ctx context.Context, itemID int, status string) (*LostFoundItem, error) {
	var item LostFoundItem
	if err := c.patch(ctx, fmt.Sprintf("/lost-found/%d/", itemID), map[string]string{"status": status}, &item); err != nil {
		return nil, fmt.Errorf("failed to update lost-found status: %w", err)
	}
	return &item, nil
}
