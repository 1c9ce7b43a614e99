package service

import (
	"context"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/rpgbuilder/character-builder/internal/core/domain"
	"github.com/rpgbuilder/character-builder/internal/core/ports"
)

// GuildService manages the guild list of a visitor's workspace.
type GuildService struct {
	store  ports.WorkspaceStore
	logger zerolog.Logger

	mu        sync.RWMutex
	listeners []ports.GuildListener
}

func NewGuildService(store ports.WorkspaceStore, logger zerolog.Logger) *GuildService {
	return &GuildService{store: store, logger: logger}
}

// OnChange registers fn to be called with the full list after create,
// remove and clear.
func (s *GuildService) OnChange(fn ports.GuildListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Create appends a guild built from input. The acceptTerms flag is checked
// and then dropped; it is not part of the stored record.
func (s *GuildService) Create(ctx context.Context, workspaceID string, input ports.CreateGuildInput) ([]domain.Guild, error) {
	guild, err := buildGuild(input)
	if err != nil {
		return nil, err
	}

	ws, err := s.store.Update(ctx, workspaceID, func(w *domain.Workspace) error {
		w.Guilds = append(w.Guilds, guild)
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Str("workspace_id", workspaceID).Msg("failed to create guild")
		return nil, err
	}

	s.logger.Info().
		Str("workspace_id", workspaceID).
		Str("guild_name", guild.GuildName).
		Str("type", string(guild.Type)).
		Msg("guild created")

	s.notify(workspaceID, ws.Guilds)
	return ws.Guilds, nil
}

// Remove deletes every guild whose name equals guildName. Names are not
// unique, so duplicates are removed together.
func (s *GuildService) Remove(ctx context.Context, workspaceID, guildName string) ([]domain.Guild, int, error) {
	var removed int
	ws, err := s.store.Update(ctx, workspaceID, func(w *domain.Workspace) error {
		// fn may run more than once when the store retries.
		removed = 0
		kept := w.Guilds[:0]
		for _, g := range w.Guilds {
			if g.GuildName == guildName {
				removed++
				continue
			}
			kept = append(kept, g)
		}
		w.Guilds = kept
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	s.logger.Info().
		Str("workspace_id", workspaceID).
		Str("guild_name", guildName).
		Int("removed", removed).
		Msg("guilds removed")

	s.notify(workspaceID, ws.Guilds)
	return ws.Guilds, removed, nil
}

// Clear empties the guild list.
func (s *GuildService) Clear(ctx context.Context, workspaceID string) error {
	ws, err := s.store.Update(ctx, workspaceID, func(w *domain.Workspace) error {
		w.Guilds = []domain.Guild{}
		return nil
	})
	if err != nil {
		return err
	}
	s.logger.Info().Str("workspace_id", workspaceID).Msg("guilds cleared")
	s.notify(workspaceID, ws.Guilds)
	return nil
}

func (s *GuildService) List(ctx context.Context, workspaceID string) ([]domain.Guild, error) {
	ws, err := s.store.Load(ctx, workspaceID)
	if err == domain.ErrWorkspaceNotFound {
		return []domain.Guild{}, nil
	}
	if err != nil {
		return nil, err
	}
	return ws.Guilds, nil
}

func (s *GuildService) notify(workspaceID string, guilds []domain.Guild) {
	s.mu.RLock()
	listeners := append([]ports.GuildListener(nil), s.listeners...)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(workspaceID, append([]domain.Guild(nil), guilds...))
	}
}

func buildGuild(input ports.CreateGuildInput) (domain.Guild, error) {
	switch {
	case input.GuildName == "":
		return domain.Guild{}, domain.ErrGuildNameRequired
	case utf8.RuneCountInString(input.GuildName) > domain.MaxGuildNameLen:
		return domain.Guild{}, domain.ErrGuildNameTooLong
	case input.Description == "":
		return domain.Guild{}, domain.ErrDescriptionRequired
	case utf8.RuneCountInString(input.Description) > domain.MaxDescriptionLen:
		return domain.Guild{}, domain.ErrDescriptionTooLong
	case !input.AcceptTerms:
		return domain.Guild{}, domain.ErrTermsNotAccepted
	}

	guildType, err := domain.ParseGuildType(input.Type)
	if err != nil {
		return domain.Guild{}, err
	}
	pref, err := domain.ParseNotificationPreference(input.NotificationPreference)
	if err != nil {
		return domain.Guild{}, err
	}

	return domain.Guild{
		GuildName:              input.GuildName,
		Description:            input.Description,
		Type:                   guildType,
		NotificationPreference: pref,
	}, nil
}
