package persistence

import (
	"context"
)

// UnitOfWork coordinates the multi-table writes performed when a payment
// finalizes (mark completed, create trees, bump the site counter, notify the
// site admin) so they commit or roll back as one transaction.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Donations returns a donation repository bound to the current transaction
	Donations(ctx context.Context) DonationRepository

	// Trees returns a tree repository bound to the current transaction
	Trees(ctx context.Context) TreeRepository

	// Sites returns a site repository bound to the current transaction
	Sites(ctx context.Context) SiteRepository

	// Rooms returns a room repository bound to the current transaction
	Rooms(ctx context.Context) RoomRepository

	// Notifications returns a notification repository bound to the current transaction
	Notifications(ctx context.Context) NotificationRepository
}
