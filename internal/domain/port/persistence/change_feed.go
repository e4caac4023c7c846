package persistence

import "context"

// ChangeAction identifies the kind of row change a feed event describes
type ChangeAction string

// ChangeAction constants
const (
	ActionInsert ChangeAction = "insert"
	ActionUpdate ChangeAction = "update"
	ActionDelete ChangeAction = "delete"
)

// Table names used to key change notifications
const (
	TableDonations         = "donations"
	TableProfiles          = "profiles"
	TableContributionRooms = "contribution_rooms"
	TableRoomContributions = "room_contributions"
)

// ChangeEvent is one change notification scoped to a table
type ChangeEvent struct {
	Table  string
	Action ChangeAction
}

// ChangeFeed is the change-notification stream the realtime refresh controller
// subscribes to. Writers publish after a successful commit; subscribers receive
// events until their context is cancelled or the returned unsubscribe function
// is called.
type ChangeFeed interface {
	// Publish delivers an event to all current subscribers. Slow subscribers
	// may miss events; the periodic refresh backstop covers dropped
	// notifications.
	Publish(event ChangeEvent)

	// Subscribe registers a subscriber scoped to ctx. The unsubscribe function
	// releases the subscription and closes the channel.
	Subscribe(ctx context.Context) (<-chan ChangeEvent, func())
}
