package domain

import (
	"context"
	"time"
)

// Information is an announcement posted by an admin and shown on every
// account dashboard, newest first.
type Information struct {
	Id        int
	Title     string
	Content   string
	AuthorId  int
	CreatedAt time.Time
}

type InformationRepository interface {
	PostInformation(ctx context.Context, info Information) (Information, error)
	ListInformation(ctx context.Context) ([]Information, error)
}
