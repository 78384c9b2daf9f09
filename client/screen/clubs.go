package screen

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/campushub/campus-client/client/api"
)

// newCollator builds the locale-aware comparer for name sorts. Collators keep
// internal buffers and are not safe for concurrent use, so every sort builds
// its own.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.IgnoreCase)
}

type ClubSort string

const (
	ClubSortName    ClubSort = "name"
	ClubSortMembers ClubSort = "members"
	ClubSortRecent  ClubSort = "recent"
)

// ClubQuery holds the user's current search, filter, and sort selection for
// the clubs screen. It carries no server state.
type ClubQuery struct {
	Search     string
	Category   string
	JoinedOnly bool
	Sort       ClubSort
}

type ClubsController struct {
	client *api.Client
	col    *collection[api.Club]

	mu         sync.Mutex
	query      ClubQuery
	categories []string
}

func NewClubsController(client *api.Client) *ClubsController {
	c := &ClubsController{
		client:     client,
		query:      ClubQuery{Category: "all", Sort: ClubSortName},
		categories: []string{"all"},
	}
	c.col = newCollection(client.GetClubs, func(club api.Club) int { return club.ID })
	return c
}

// Load fetches the canonical club list and recomputes the category facets.
// showSpinner selects the full-screen loading state over a silent reload.
func (c *ClubsController) Load(ctx context.Context, showSpinner bool) error {
	if err := c.col.load(ctx, showSpinner); err != nil {
		return err
	}
	c.mu.Lock()
	c.categories = clubCategories(c.col.snapshot())
	c.mu.Unlock()
	return nil
}

func (c *ClubsController) Refresh(ctx context.Context) error {
	if err := c.col.refresh(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	c.categories = clubCategories(c.col.snapshot())
	c.mu.Unlock()
	return nil
}

// ToggleJoin flips the club's membership immediately and adjusts its member
// count, then issues the backend toggle. On failure the optimistic state
// stays; the caller offers Cancel/Retry, and Retry calls ToggleJoin again.
func (c *ClubsController) ToggleJoin(ctx context.Context, clubID int) error {
	return c.col.toggle(ctx, clubID, func(club *api.Club) {
		if club.Joined {
			club.Joined = false
			if club.MembersCount > 0 {
				club.MembersCount--
			}
		} else {
			club.Joined = true
			club.MembersCount++
		}
	}, func(ctx context.Context) error {
		return c.client.JoinLeaveClub(ctx, clubID)
	})
}

// Members fetches the member list for a single club. Failures are classified
// but not stored; the members modal shows them inline.
func (c *ClubsController) Members(ctx context.Context, clubID int) ([]api.Member, error) {
	members, err := c.client.GetClubMembers(ctx, clubID)
	if err != nil {
		return nil, Classify(err)
	}
	return members, nil
}

func (c *ClubsController) SetQuery(query ClubQuery) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
}

func (c *ClubsController) Query() ClubQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

func (c *ClubsController) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	categories := make([]string, len(c.categories))
	copy(categories, c.categories)
	return categories
}

// Clubs returns a copy of the canonical club list.
func (c *ClubsController) Clubs() []api.Club {
	return c.col.snapshot()
}

// Display returns the filtered and sorted projection of the canonical list
// under the current query. It recomputes over the full collection every call.
func (c *ClubsController) Display() []api.Club {
	return filterAndSortClubs(c.col.snapshot(), c.Query())
}

func (c *ClubsController) Phase() Phase          { return c.col.currentPhase() }
func (c *ClubsController) Refreshing() bool      { return c.col.isRefreshing() }
func (c *ClubsController) Err() *Descriptor      { return c.col.currentErr() }
func (c *ClubsController) Pending(clubID int) bool { return c.col.pending(clubID) }

func filterAndSortClubs(clubs []api.Club, query ClubQuery) []api.Club {
	search := strings.ToLower(query.Search)

	filtered := make([]api.Club, 0, len(clubs))
	for _, club := range clubs {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(club.Name), search) ||
			strings.Contains(strings.ToLower(club.Description), search) ||
			strings.Contains(strings.ToLower(club.Category), search)

		matchesCategory := query.Category == "" || query.Category == "all" || club.Category == query.Category
		matchesJoined := !query.JoinedOnly || club.Joined

		if matchesSearch && matchesCategory && matchesJoined {
			filtered = append(filtered, club)
		}
	}

	collator := newCollator()
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch query.Sort {
		case ClubSortMembers:
			return a.MembersCount > b.MembersCount
		case ClubSortRecent:
			// Missing timestamps are the zero value and sort last.
			return a.CreatedAt.After(b.CreatedAt)
		default:
			return collator.CompareString(a.Name, b.Name) < 0
		}
	})

	return filtered
}

// clubCategories derives the distinct category facets, "all" first, then in
// order of first appearance.
func clubCategories(clubs []api.Club) []string {
	categories := []string{"all"}
	seen := map[string]struct{}{}
	for _, club := range clubs {
		if _, ok := seen[club.Category]; ok {
			continue
		}
		seen[club.Category] = struct{}{}
		categories = append(categories, club.Category)
	}
	return categories
}
