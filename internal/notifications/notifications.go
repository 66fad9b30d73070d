// Package notifications tracks per-user read state for broadcast
// announcements. An item counts as unread only while it is younger than one
// month; anything older is treated as read and persisted as such, so the read
// set does not grow without bound.
package notifications

import (
	"context"
	"time"

	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/entity"
)

// ReadStore persists the set of notification IDs a user has read.
type ReadStore interface {
	ReadIDs(ctx context.Context, dni string) (map[uint]bool, error)
	MarkRead(ctx context.Context, dni string, ids ...uint) error
}

// Item is a notification annotated with its read state for one user.
type Item struct {
	entity.Notificacion
	Leida bool `json:"leida"`
}

type Tracker struct {
	store ReadStore
}

func NewTracker(store ReadStore) *Tracker {
	return &Tracker{store: store}
}

// stale reports whether the notification is at least one month old at now.
func stale(createdAt, now time.Time) bool {
	return !createdAt.After(now.AddDate(0, -1, 0))
}

// Status annotates every notification with its read state and returns the
// unread count. Stale items not yet in the read set are persisted into it as a
// side effect, even if the user never viewed them.
func (t *Tracker) Status(ctx context.Context, dni string, notifs []entity.Notificacion, now time.Time) ([]Item, int, error) {
	readIDs, err := t.store.ReadIDs(ctx, dni)
	if err != nil {
		return nil, 0, err
	}

	items := make([]Item, 0, len(notifs))
	var toPersist []uint
	unread := 0

	for _, n := range notifs {
		read := readIDs[n.ID]
		if stale(n.CreatedAt, now) {
			if !read {
				toPersist = append(toPersist, n.ID)
			}
			read = true
		}
		if !read {
			unread++
		}
		items = append(items, Item{Notificacion: n, Leida: read})
	}

	if len(toPersist) > 0 {
		if err := t.store.MarkRead(ctx, dni, toPersist...); err != nil {
			return nil, 0, err
		}
	}

	return items, unread, nil
}

// MarkRead adds the id to the user's read set. Already-read ids are a no-op.
func (t *Tracker) MarkRead(ctx context.Context, dni string, id uint) error {
	return t.store.MarkRead(ctx, dni, id)
}

// IsRead reports whether the notification is read for the user, either because
// it is in the read set or because it is stale at now.
func (t *Tracker) IsRead(ctx context.Context, dni string, n entity.Notificacion, now time.Time) (bool, error) {
	if stale(n.CreatedAt, now) {
		return true, nil
	}

	readIDs, err := t.store.ReadIDs(ctx, dni)
	if err != nil {
		return false, err
	}
	return readIDs[n.ID], nil
}
