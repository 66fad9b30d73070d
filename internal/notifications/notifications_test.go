package notifications

import (
	"context"
	"testing"
	"time"

	"github.com/AlumniUPNFM/alumni-upnfm-sub000/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDNI = "0801199901234"

func notif(id uint, createdAt time.Time) entity.Notificacion {
	return entity.Notificacion{ID: id, Content: "test", Tipo: entity.NotificacionTrabajo, CreatedAt: createdAt}
}

func TestStatusMonthCutoff(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		createdAt  time.Time
		markedRead bool
		wantLeida  bool
		wantUnread int
	}{
		{
			name:       "one month minus one second old and unseen is unread",
			createdAt:  now.AddDate(0, -1, 0).Add(time.Second),
			wantLeida:  false,
			wantUnread: 1,
		},
		{
			name:       "one month and one second old is read regardless of the set",
			createdAt:  now.AddDate(0, -1, 0).Add(-time.Second),
			wantLeida:  true,
			wantUnread: 0,
		},
		{
			name:       "fresh but already read",
			createdAt:  now.Add(-time.Hour),
			markedRead: true,
			wantLeida:  true,
			wantUnread: 0,
		},
		{
			name:       "exactly one month old is read",
			createdAt:  now.AddDate(0, -1, 0),
			wantLeida:  true,
			wantUnread: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			tracker := NewTracker(store)

			if tt.markedRead {
				require.NoError(t, store.MarkRead(context.Background(), testDNI, 1))
			}

			items, unread, err := tracker.Status(context.Background(), testDNI, []entity.Notificacion{notif(1, tt.createdAt)}, now)
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, tt.wantLeida, items[0].Leida)
			assert.Equal(t, tt.wantUnread, unread)
		})
	}
}

func TestStatusPersistsStaleItems(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	store := NewMemoryStore()
	tracker := NewTracker(store)

	stale := notif(7, now.AddDate(0, -2, 0))
	_, _, err := tracker.Status(context.Background(), testDNI, []entity.Notificacion{stale}, now)
	require.NoError(t, err)

	ids, err := store.ReadIDs(context.Background(), testDNI)
	require.NoError(t, err)
	assert.True(t, ids[7], "stale notification should be added to the read set even if never viewed")
}

func TestStatusEmptyListAndFirstRun(t *testing.T) {
	now := time.Now()
	tracker := NewTracker(NewMemoryStore())

	items, unread, err := tracker.Status(context.Background(), testDNI, nil, now)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Equal(t, 0, unread)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore()
	tracker := NewTracker(store)

	require.NoError(t, tracker.MarkRead(context.Background(), testDNI, 3))
	require.NoError(t, tracker.MarkRead(context.Background(), testDNI, 3))

	notifs := []entity.Notificacion{notif(3, now.Add(-time.Hour)), notif(4, now.Add(-time.Hour))}
	items, unread, err := tracker.Status(context.Background(), testDNI, notifs, now)
	require.NoError(t, err)
	assert.True(t, items[0].Leida)
	assert.False(t, items[1].Leida)
	assert.Equal(t, 1, unread)
}

func TestIsRead(t *testing.T) {
	now := time.Now()
	store := NewMemoryStore()
	tracker := NewTracker(store)

	fresh := notif(1, now.Add(-time.Hour))
	old := notif(2, now.AddDate(0, -2, 0))

	// Unknown fresh id: not read.
	read, err := tracker.IsRead(context.Background(), testDNI, fresh, now)
	require.NoError(t, err)
	assert.False(t, read)

	// Stale items are read without store lookups.
	read, err = tracker.IsRead(context.Background(), testDNI, old, now)
	require.NoError(t, err)
	assert.True(t, read)

	require.NoError(t, tracker.MarkRead(context.Background(), testDNI, 1))
	read, err = tracker.IsRead(context.Background(), testDNI, fresh, now)
	require.NoError(t, err)
	assert.True(t, read)
}
