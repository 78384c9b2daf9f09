package screen

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/campushub/campus-client/client/api"
)

type EventFilter string

const (
	EventFilterAll      EventFilter = "all"
	EventFilterToday    EventFilter = "today"
	EventFilterUpcoming EventFilter = "upcoming"
	EventFilterRSVPed   EventFilter = "rsvped"
)

type EventSort string

const (
	EventSortDate     EventSort = "date"
	EventSortTitle    EventSort = "title"
	EventSortLocation EventSort = "location"
)

// EventQuery holds the user's current search, filter, and sort selection for
// the events screen. The status filter buckets are mutually exclusive.
type EventQuery struct {
	Search string
	Filter EventFilter
	Sort   EventSort
}

type EventsController struct {
	client *api.Client
	col    *collection[api.Event]

	mu    sync.Mutex
	query EventQuery
	now   func() time.Time
}

func NewEventsController(client *api.Client) *EventsController {
	c := &EventsController{
		client: client,
		query:  EventQuery{Filter: EventFilterAll, Sort: EventSortDate},
		now:    time.Now,
	}
	c.col = newCollection(client.GetEvents, func(event api.Event) int { return event.ID })
	return c
}

func (c *EventsController) Load(ctx context.Context, showSpinner bool) error {
	return c.col.load(ctx, showSpinner)
}

func (c *EventsController) Refresh(ctx context.Context) error {
	return c.col.refresh(ctx)
}

// ToggleRSVP flips the event's RSVP state immediately and adjusts the
// attendee count, then issues the backend toggle. Failed toggles keep the
// optimistic state; Retry calls ToggleRSVP again.
func (c *EventsController) ToggleRSVP(ctx context.Context, eventID int) error {
	return c.col.toggle(ctx, eventID, func(event *api.Event) {
		if event.RSVPed {
			event.RSVPed = false
			if event.CurrentAttendees > 0 {
				event.CurrentAttendees--
			}
		} else {
			event.RSVPed = true
			event.CurrentAttendees++
		}
	}, func(ctx context.Context) error {
		return c.client.RSVPEvent(ctx, eventID)
	})
}

func (c *EventsController) SetQuery(query EventQuery) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
}

func (c *EventsController) Query() EventQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Events returns a copy of the canonical event list.
func (c *EventsController) Events() []api.Event {
	return c.col.snapshot()
}

// Display returns the filtered and sorted projection of the canonical list
// under the current query.
func (c *EventsController) Display() []api.Event {
	return filterAndSortEvents(c.col.snapshot(), c.Query(), c.clock())
}

// FilterCounts reports how many events fall into each status bucket, for the
// filter chips in the events header.
func (c *EventsController) FilterCounts() map[EventFilter]int {
	events := c.col.snapshot()
	now := c.clock()
	counts := map[EventFilter]int{EventFilterAll: len(events)}
	for _, event := range events {
		if matchesEventFilter(event, EventFilterToday, now) {
			counts[EventFilterToday]++
		}
		if matchesEventFilter(event, EventFilterUpcoming, now) {
			counts[EventFilterUpcoming]++
		}
		if event.RSVPed {
			counts[EventFilterRSVPed]++
		}
	}
	return counts
}

func (c *EventsController) Phase() Phase           { return c.col.currentPhase() }
func (c *EventsController) Refreshing() bool       { return c.col.isRefreshing() }
func (c *EventsController) Err() *Descriptor       { return c.col.currentErr() }
func (c *EventsController) Pending(eventID int) bool { return c.col.pending(eventID) }

func (c *EventsController) clock() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now()
}

func filterAndSortEvents(events []api.Event, query EventQuery, now time.Time) []api.Event {
	search := strings.ToLower(query.Search)

	filtered := make([]api.Event, 0, len(events))
	for _, event := range events {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(event.Title), search) ||
			strings.Contains(strings.ToLower(event.Location), search) ||
			strings.Contains(strings.ToLower(event.Description), search) ||
			strings.Contains(strings.ToLower(event.Organizer), search)

		if matchesSearch && matchesEventFilter(event, query.Filter, now) {
			filtered = append(filtered, event)
		}
	}

	collator := newCollator()
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		switch query.Sort {
		case EventSortTitle:
			return collator.CompareString(a.Title, b.Title) < 0
		case EventSortLocation:
			return collator.CompareString(a.Location, b.Location) < 0
		default:
			return a.StartTime.Before(b.StartTime)
		}
	})

	return filtered
}

func matchesEventFilter(event api.Event, filter EventFilter, now time.Time) bool {
	switch filter {
	case EventFilterUpcoming:
		return event.StartTime.After(now)
	case EventFilterRSVPed:
		return event.RSVPed
	case EventFilterToday:
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		tomorrow := today.AddDate(0, 0, 1)
		return !event.StartTime.Before(today) && event.StartTime.Before(tomorrow)
	default:
		return true
	}
}
