package api

import (
	"context"
	"fmt"
)

type CreateMarketplaceItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Condition   string `json:"condition"`
	Image       string `json:"image,omitempty"`
}

func (c *Client) CreateMarketplaceItem(ctx context.Context, item CreateMarketplaceItemRequest) (*MarketplaceItem, error) {
	var created MarketplaceItem
	if err := c.post(ctx, "/marketplace/", item, &created); err != nil {
		return nil, fmt.Errorf("failed to create marketplace item: %w", err)
	}
	return &created, nil
}

func (c *Client) GetMarketplaceItems(ctx context.Context) ([]MarketplaceItem, error) {
	var items []MarketplaceItem
	if err := c.get(ctx, "/marketplace/", &items); err != nil {
		return nil, fmt.Errorf("failed to fetch marketplace items: %w", err)
	}
	return items, nil
}

func (c *Client) GetMarketplaceItemByID(ctx context.Context, itemID int) (*MarketplaceItem, error) {
	var item MarketplaceItem
	if err := c.get(ctx, fmt.Sprintf("/marketplace/%d/", itemID), &item); err != nil {
		return nil, fmt.Errorf("failed to fetch marketplace item: %w", err)
	}
	return &item, nil
}

func (c *Client) MarkMarketplaceItemSold(ctx context.Context, itemID int) (*MarketplaceItem, error) {
	var item MarketplaceItem
	if err := c.patch(ctx, fmt.Sprintf("/marketplace/%d/mark_sold/", itemID), nil, &item); err != nil {
		return nil, fmt.Errorf("failed to mark marketplace item as sold: %w", err)
	}
	return &item, nil
}
