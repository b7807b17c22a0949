package api

import (
	"context"
	"net/http"
)

// NotificationsService covers the caller's in-app notifications.
type NotificationsService struct {
	core *core
}

// List returns the caller's most recent notifications, newest first.
func (s *NotificationsService) List(ctx context.Context) ([]Notification, error) {
	var out []Notification
	if err := s.core.do(ctx, http.MethodGet, "/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkRead marks one notification read.
func (s *NotificationsService) MarkRead(ctx context.Context, id string) error {
	return s.core.do(ctx, http.MethodPut, "/notifications/"+id+"/read", nil, nil)
}

// MarkAllRead marks every unread notification read.
func (s *NotificationsService) MarkAllRead(ctx context.Context) error {
	return s.core.do(ctx, http.MethodPut, "/notifications/read-all", nil, nil)
}
