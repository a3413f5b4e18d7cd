package service

import (
	"fmt"
	"time"

	"github.com/shenikar/siren_dashboard/internal/models"
)

// notificationFeed - лента уведомлений сессии, новые сверху.
// Не потокобезопасна, защищается мьютексом контроллера.
type notificationFeed struct {
	items  []models.Notification
	lastID int64
}

func (f *notificationFeed) appendAccepted(incidentID int64, at time.Time) models.Notification {
	f.lastID++
	n := models.Notification{
		ID:        f.lastID,
		Title:     "Incident Accepted",
		Message:   fmt.Sprintf("You accepted incident #%d", incidentID),
		Timestamp: at,
	}
	f.items = append([]models.Notification{n}, f.items...)
	return n
}

func (f *notificationFeed) list() []models.Notification {
	return append([]models.Notification(nil), f.items...)
}

func (f *notificationFeed) unread() int {
	count := 0
	for _, n := range f.items {
		if !n.IsRead {
			count++
		}
	}
	return count
}

func (f *notificationFeed) markRead(id int64) bool {
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].IsRead = true
			return true
		}
	}
	return false
}

func (f *notificationFeed) markAllRead() {
	for i := range f.items {
		f.items[i].IsRead = true
	}
}
