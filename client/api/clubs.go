package api

import (
	"context"
	"fmt"
)

func (c *Client) GetClubs(ctx context.Context) ([]Club, error) {
	var clubs []Club
	if err := c.get(ctx, "/clubs/", &clubs); err != nil {
		return nil, fmt.Errorf("failed to fetch clubs: %w", err)
	}
	return clubs, nil
}

func (c *Client) GetClubMembers(ctx context.Context, clubID int) ([]Member, error) {
	var members []Member
	if err := c.get(ctx, fmt.Sprintf("/clubs/%d/members/", clubID), &members); err != nil {
		return nil, fmt.Errorf("failed to fetch club members: %w", err)
	}
	return members, nil
}

// JoinLeaveClub toggles the current user's membership of the club. The
// backend flips the state on every call, so the caller is responsible for
// tracking which direction it expects.
func (c *Client) JoinLeaveClub(ctx context.Context, clubID int) error {
	if err := c.post(ctx, fmt.Sprintf("/clubs/%d/join_leave/", clubID), nil, nil); err != nil {
		return fmt.Errorf("failed to toggle club membership: %w", err)
	}
	return nil
}
