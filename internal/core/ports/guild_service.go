package ports

import (
	"context"

	"github.com/rpgbuilder/character-builder/internal/core/domain"
)

// CreateGuildInput carries the raw values submitted by the guild form.
type CreateGuildInput struct {
	GuildName              string
	Description            string
	Type                   string
	NotificationPreference string
	AcceptTerms            bool
}

// GuildListener receives the full guild list after every change.
type GuildListener func(workspaceID string, guilds []domain.Guild)

type GuildService interface {
	Create(ctx context.Context, workspaceID string, input CreateGuildInput) ([]domain.Guild, error)
	// Remove deletes every guild named guildName and reports how many were removed.
	Remove(ctx context.Context, workspaceID, guildName string) ([]domain.Guild, int, error)
	Clear(ctx context.Context, workspaceID string) error
	List(ctx context.Context, workspaceID string) ([]domain.Guild, error)
	OnChange(fn GuildListener)
}
