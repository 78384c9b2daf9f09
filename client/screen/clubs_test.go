package screen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-client/client/api"
	"github.com/campushub/campus-client/internal/xtime"
)

func newTestClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(api.Config{
		BaseURL: srv.URL,
		Every:   xtime.Duration(time.Millisecond),
		Burst:   100,
	}, srv.Client(), nil)
}

func testClubs() []api.Club {
	return []api.Club{
		{ID: 1, Name: "Chess", Description: "Strategy and tactics", Category: "academic", Joined: true, MembersCount: 12},
		{ID: 2, Name: "Football", Description: "Weekly matches", Category: "sports", Joined: false, MembersCount: 40},
		{ID: 3, Name: "Astronomy", Description: "Star gazing", Category: "academic", Joined: false, MembersCount: 8},
	}
}

func TestFilterClubs_JoinedOnly(t *testing.T) {
	clubs := []api.Club{
		{ID: 1, Name: "Chess", Category: "academic", Joined: true},
		{ID: 2, Name: "Football", Category: "sports", Joined: false},
	}

	got := filterAndSortClubs(clubs, ClubQuery{Category: "all", JoinedOnly: true, Sort: ClubSortName})
	require.Len(t, got, 1)
	assert.Equal(t, "Chess", got[0].Name)
}

func TestFilterClubs_CategoryAndJoinedCombine(t *testing.T) {
	clubs := testClubs()

	got := filterAndSortClubs(clubs, ClubQuery{Category: "academic", JoinedOnly: true, Sort: ClubSortName})
	require.Len(t, got, 1)
	assert.Equal(t, "Chess", got[0].Name)

	got = filterAndSortClubs(clubs, ClubQuery{Category: "academic", Sort: ClubSortName})
	require.Len(t, got, 2)
}

func TestFilterClubs_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	clubs := testClubs()

	got := filterAndSortClubs(clubs, ClubQuery{Search: "STAR", Category: "all", Sort: ClubSortName})
	require.Len(t, got, 1)
	assert.Equal(t, "Astronomy", got[0].Name)

	// Matches category text too.
	got = filterAndSortClubs(clubs, ClubQuery{Search: "sport", Category: "all", Sort: ClubSortName})
	require.Len(t, got, 1)
	assert.Equal(t, "Football", got[0].Name)
}

func TestFilterClubs_SortKeys(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	clubs := []api.Club{
		{ID: 1, Name: "Chess", MembersCount: 12, CreatedAt: now.AddDate(0, -1, 0)},
		{ID: 2, Name: "astronomy", MembersCount: 8, CreatedAt: now},
		{ID: 3, Name: "Football", MembersCount: 40},
	}

	byName := filterAndSortClubs(clubs, ClubQuery{Category: "all", Sort: ClubSortName})
	assert.Equal(t, []int{2, 1, 3}, clubIDs(byName))

	byMembers := filterAndSortClubs(clubs, ClubQuery{Category: "all", Sort: ClubSortMembers})
	assert.Equal(t, []int{3, 1, 2}, clubIDs(byMembers))

	// Missing createdAt sorts last.
	byRecent := filterAndSortClubs(clubs, ClubQuery{Category: "all", Sort: ClubSortRecent})
	assert.Equal(t, []int{2, 1, 3}, clubIDs(byRecent))
}

func TestFilterClubs_StableOnTies(t *testing.T) {
	clubs := []api.Club{
		{ID: 1, Name: "A", MembersCount: 10},
		{ID: 2, Name: "B", MembersCount: 10},
		{ID: 3, Name: "C", MembersCount: 10},
	}
	got := filterAndSortClubs(clubs, ClubQuery{Category: "all", Sort: ClubSortMembers})
	assert.Equal(t, []int{1, 2, 3}, clubIDs(got))
}

func TestFilterClubs_Idempotent(t *testing.T) {
	clubs := testClubs()
	query := ClubQuery{Search: "a", Category: "all", Sort: ClubSortMembers}
	first := filterAndSortClubs(clubs, query)
	second := filterAndSortClubs(clubs, query)
	assert.Equal(t, first, second)
}

func TestFilterClubs_EmptyCollection(t *testing.T) {
	got := filterAndSortClubs(nil, ClubQuery{Search: "anything", Category: "sports", JoinedOnly: true, Sort: ClubSortRecent})
	assert.Empty(t, got)
}

func TestFilterAndSort_ConcurrentScreens(t *testing.T) {
	clubs := testClubs()
	events := testEvents()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			got := filterAndSortClubs(clubs, ClubQuery{Category: "all", Sort: ClubSortName})
			assert.Equal(t, []int{3, 1, 2}, clubIDs(got))
		}()
		go func() {
			defer wg.Done()
			got := filterAndSortEvents(events, EventQuery{Filter: EventFilterAll, Sort: EventSortTitle}, testNow)
			assert.Equal(t, []int{2, 1, 3}, eventIDs(got))
		}()
	}
	wg.Wait()
}

func TestClubCategories(t *testing.T) {
	clubs := []api.Club{
		{Category: "sports"},
		{Category: "academic"},
		{Category: "sports"},
	}
	assert.Equal(t, []string{"all", "sports", "academic"}, clubCategories(clubs))
}

func TestClubsController_Load(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/clubs/", r.URL.Path)
		_ = json.NewEncoder(w).Encode(testClubs())
	}))

	c := NewClubsController(client)
	assert.Equal(t, PhaseLoading, c.Phase())

	require.NoError(t, c.Load(context.Background(), true))
	assert.Equal(t, PhaseReady, c.Phase())
	assert.Nil(t, c.Err())
	assert.Len(t, c.Clubs(), 3)
	assert.Equal(t, []string{"all", "academic", "sports"}, c.Categories())
}

func TestClubsController_LoadFailureKeepsStaleList(t *testing.T) {
	var fail bool
	var mu sync.Mutex
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		shouldFail := fail
		mu.Unlock()
		if shouldFail {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "boom"})
			return
		}
		_ = json.NewEncoder(w).Encode(testClubs())
	}))

	c := NewClubsController(client)
	require.NoError(t, c.Load(context.Background(), true))

	mu.Lock()
	fail = true
	mu.Unlock()

	err := c.Load(context.Background(), true)
	require.Error(t, err)

	var desc Descriptor
	require.ErrorAs(t, err, &desc)
	assert.Equal(t, CodeServerError, desc.Code)
	assert.Equal(t, "boom", desc.Message)

	assert.Equal(t, PhaseError, c.Phase())
	require.NotNil(t, c.Err())
	assert.Equal(t, CodeServerError, c.Err().Code)
	// Previous canonical list stays available.
	assert.Len(t, c.Clubs(), 3)
}

func TestClubsController_ToggleJoin(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/clubs/":
			_ = json.NewEncoder(w).Encode(testClubs())
		case "/clubs/2/join_leave/":
			require.Equal(t, http.MethodPost, r.Method)
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	c := NewClubsController(client)
	require.NoError(t, c.Load(context.Background(), true))

	require.NoError(t, c.ToggleJoin(context.Background(), 2))

	club := findClub(t, c.Clubs(), 2)
	assert.True(t, club.Joined)
	assert.Equal(t, 41, club.MembersCount)

	// Toggling back reverses both fields.
	require.NoError(t, c.ToggleJoin(context.Background(), 2))
	club = findClub(t, c.Clubs(), 2)
	assert.False(t, club.Joined)
	assert.Equal(t, 40, club.MembersCount)
}

func TestClubsController_ToggleJoinFailureKeepsOptimisticState(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/clubs/":
			_ = json.NewEncoder(w).Encode(testClubs())
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	c := NewClubsController(client)
	require.NoError(t, c.Load(context.Background(), true))

	err := c.ToggleJoin(context.Background(), 2)
	require.Error(t, err)

	var desc Descriptor
	require.ErrorAs(t, err, &desc)
	assert.Equal(t, CodeServerError, desc.Code)

	// No rollback: the flip stays in place for the user-driven retry.
	club := findClub(t, c.Clubs(), 2)
	assert.True(t, club.Joined)
	assert.Equal(t, 41, club.MembersCount)
	assert.False(t, c.Pending(2))
}

func TestClubsController_ToggleJoinUnknownIDIsNoOp(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/clubs/":
			_ = json.NewEncoder(w).Encode(testClubs())
		default:
			// A refresh removed the club; no mutation may reach the backend.
			t.Errorf("unexpected request to %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	c := NewClubsController(client)
	require.NoError(t, c.Load(context.Background(), true))

	require.NoError(t, c.ToggleJoin(context.Background(), 99))
	assert.False(t, c.Pending(99))
	assert.Len(t, c.Clubs(), 3)
}

func TestClubsController_MembersCountClampsAtZero(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/clubs/":
			_ = json.NewEncoder(w).Encode([]api.Club{
				{ID: 7, Name: "Empty", Joined: true, MembersCount: 0},
			})
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))

	c := NewClubsController(client)
	require.NoError(t, c.Load(context.Background(), true))
	require.NoError(t, c.ToggleJoin(context.Background(), 7))

	club := findClub(t, c.Clubs(), 7)
	assert.False(t, club.Joined)
	assert.Equal(t, 0, club.MembersCount)
}

func TestClubsController_PendingDuringToggle(t *testing.T) {
	release := make(chan struct{})
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/clubs/":
			_ = json.NewEncoder(w).Encode(testClubs())
		default:
			<-release
			w.WriteHeader(http.StatusOK)
		}
	}))

	c := NewClubsController(client)
	require.NoError(t, c.Load(context.Background(), true))

	done := make(chan error, 1)
	go func() {
		done <- c.ToggleJoin(context.Background(), 1)
	}()

	require.Eventually(t, func() bool { return c.Pending(1) }, time.Second, time.Millisecond)
	assert.False(t, c.Pending(2))

	close(release)
	require.NoError(t, <-done)
	assert.False(t, c.Pending(1))
}

func TestClubsController_RefreshClearsFlag(t *testing.T) {
	var fail bool
	var mu sync.Mutex
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		shouldFail := fail
		mu.Unlock()
		if shouldFail {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(testClubs())
	}))

	c := NewClubsController(client)
	require.NoError(t, c.Load(context.Background(), true))

	require.NoError(t, c.Refresh(context.Background()))
	assert.False(t, c.Refreshing())

	mu.Lock()
	fail = true
	mu.Unlock()

	require.Error(t, c.Refresh(context.Background()))
	assert.False(t, c.Refreshing())
}

func TestClubsController_Members(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/clubs/1/members/", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]api.Member{
			{ID: 1, Username: "ada", FirstName: "Ada", LastName: "Lovelace"},
		})
	}))

	c := NewClubsController(client)
	members, err := c.Members(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Ada Lovelace", members[0].FullName())
}

func clubIDs(clubs []api.Club) []int {
	ids := make([]int, len(clubs))
	for i, club := range clubs {
		ids[i] = club.ID
	}
	return ids
}

func findClub(t *testing.T, clubs []api.Club, id int) api.Club {
	t.Helper()
	for _, club := range clubs {
		if club.ID == id {
			return club
		}
	}
	t.Fatalf("club %d not found", id)
	return api.Club{}
}
