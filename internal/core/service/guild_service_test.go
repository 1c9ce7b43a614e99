package service

import (
	"context"
	"strings"
	"testing"

	"github.com/rpgbuilder/character-builder/internal/core/domain"
	"github.com/rpgbuilder/character-builder/internal/core/ports"
)

func validGuild(name string) ports.CreateGuildInput {
	return ports.CreateGuildInput{
		GuildName:              name,
		Description:            "We raid on Fridays.",
		Type:                   "Casual",
		NotificationPreference: "Email",
		AcceptTerms:            true,
	}
}

func TestGuildService_Create_Success(t *testing.T) {
	svc := NewGuildService(newStubWorkspaceStore(), discardLogger)

	list, err := svc.Create(context.Background(), "ws", validGuild("Night Owls"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	want := domain.Guild{
		GuildName:              "Night Owls",
		Description:            "We raid on Fridays.",
		Type:                   domain.GuildCasual,
		NotificationPreference: domain.NotifyEmail,
	}
	if len(list) != 1 || list[0] != want {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestGuildService_Create_Validation(t *testing.T) {
	store := newStubWorkspaceStore()
	svc := NewGuildService(store, discardLogger)

	tooLong := validGuild(strings.Repeat("g", domain.MaxGuildNameLen+1))
	longDesc := validGuild("ok")
	longDesc.Description = strings.Repeat("d", domain.MaxDescriptionLen+1)
	noTerms := validGuild("ok")
	noTerms.AcceptTerms = false
	badType := validGuild("ok")
	badType.Type = ""
	badPref := validGuild("ok")
	badPref.NotificationPreference = "Fax"
	noDesc := validGuild("ok")
	noDesc.Description = ""

	cases := []struct {
		name  string
		input ports.CreateGuildInput
		want  error
	}{
		{"empty name", validGuild(""), domain.ErrGuildNameRequired},
		{"long name", tooLong, domain.ErrGuildNameTooLong},
		{"empty description", noDesc, domain.ErrDescriptionRequired},
		{"long description", longDesc, domain.ErrDescriptionTooLong},
		{"terms", noTerms, domain.ErrTermsNotAccepted},
		{"type", badType, domain.ErrInvalidGuildType},
		{"preference", badPref, domain.ErrInvalidNotification},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), "ws", tc.input); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if len(store.workspaces) != 0 {
		t.Fatalf("invalid guilds must not be stored")
	}
}

func TestGuildService_Create_BoundaryLengths(t *testing.T) {
	svc := NewGuildService(newStubWorkspaceStore(), discardLogger)
	in := validGuild(strings.Repeat("n", domain.MaxGuildNameLen))
	in.Description = strings.Repeat("d", domain.MaxDescriptionLen)
	if _, err := svc.Create(context.Background(), "ws", in); err != nil {
		t.Fatalf("max lengths must be accepted: %v", err)
	}
}

func TestGuildService_Remove_AllMatching(t *testing.T) {
	svc := NewGuildService(newStubWorkspaceStore(), discardLogger)
	ctx := context.Background()

	_, _ = svc.Create(ctx, "ws", validGuild("Alpha"))
	_, _ = svc.Create(ctx, "ws", validGuild("Beta"))
	_, _ = svc.Create(ctx, "ws", validGuild("Alpha"))

	list, removed, err := svc.Remove(ctx, "ws", "Alpha")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if len(list) != 1 || list[0].GuildName != "Beta" {
		t.Fatalf("unexpected remaining list: %+v", list)
	}

	list, removed, err = svc.Remove(ctx, "ws", "Beta")
	if err != nil || removed != 1 || len(list) != 0 {
		t.Fatalf("expected empty list, got %+v removed=%d err=%v", list, removed, err)
	}
}

func TestGuildService_Remove_NoMatch(t *testing.T) {
	svc := NewGuildService(newStubWorkspaceStore(), discardLogger)
	ctx := context.Background()
	_, _ = svc.Create(ctx, "ws", validGuild("Alpha"))

	list, removed, err := svc.Remove(ctx, "ws", "Gamma")
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed != 0 || len(list) != 1 {
		t.Fatalf("expected no change, got removed=%d list=%+v", removed, list)
	}
}

func TestGuildService_Clear(t *testing.T) {
	svc := NewGuildService(newStubWorkspaceStore(), discardLogger)
	ctx := context.Background()

	var notifications []int
	svc.OnChange(func(_ string, guilds []domain.Guild) {
		notifications = append(notifications, len(guilds))
	})

	_, _ = svc.Create(ctx, "ws", validGuild("Alpha"))
	_, _ = svc.Create(ctx, "ws", validGuild("Beta"))
	if err := svc.Clear(ctx, "ws"); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	list, err := svc.List(ctx, "ws")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected empty list after clear, got %d", len(list))
	}

	want := []int{1, 2, 0}
	if len(notifications) != len(want) {
		t.Fatalf("expected %d notifications, got %v", len(want), notifications)
	}
	for i := range want {
		if notifications[i] != want[i] {
			t.Fatalf("notification %d: expected %d, got %d", i, want[i], notifications[i])
		}
	}
}
