package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func guildValues(name string) url.Values {
	return url.Values{
		"guildName":              {name},
		"description":            {"Tuesday night raids."},
		"type":                   {"Competitive"},
		"notificationPreference": {"SMS"},
		"acceptTerms":            {"true"},
	}
}

func TestGuildHandler_Create_AllInvalid(t *testing.T) {
	f := newFixture()
	h := NewGuildHandler(f.guilds, f.auth, f.metrics, nopLog)

	c, rec := f.request(http.MethodPost, "/create-guild", url.Values{})
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	body := rec.Body.String()
	for _, msg := range []string{
		"Guild name is required.",
		"Description is required.",
		"Type is required.",
		"Notification preference is required.",
		"You must accept the terms.",
	} {
		if !strings.Contains(body, msg) {
			t.Fatalf("missing %q in body", msg)
		}
	}

	list, _ := f.guilds.List(context.Background(), testWorkspace)
	if len(list) != 0 {
		t.Fatalf("invalid form must not create a guild")
	}
}

func TestGuildHandler_Create_TooLong(t *testing.T) {
	f := newFixture()
	h := NewGuildHandler(f.guilds, f.auth, f.metrics, nopLog)

	v := guildValues(strings.Repeat("x", 101))
	v.Set("description", strings.Repeat("y", 1001))
	c, rec := f.request(http.MethodPost, "/create-guild", v)
	_ = h.Create(c)

	body := rec.Body.String()
	if !strings.Contains(body, "Max 100 characters.") || !strings.Contains(body, "Max 1000 characters.") {
		t.Fatalf("expected max-length messages, body: %s", body)
	}
}

func TestGuildHandler_Create_Success(t *testing.T) {
	f := newFixture()
	h := NewGuildHandler(f.guilds, f.auth, f.metrics, nopLog)

	c, rec := f.request(http.MethodPost, "/create-guild", guildValues("Iron Wolves"))
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "Guild created") {
		t.Fatalf("expected created notice")
	}
	if !strings.Contains(body, `<h3 class="title">Iron Wolves</h3>`) {
		t.Fatalf("expected guild card, body: %s", body)
	}
	if !strings.Contains(body, `placeholder="Enter guild name" value=""`) {
		t.Fatalf("expected form reset")
	}
	if strings.Contains(body, "checked") {
		t.Fatalf("reset form must not keep radio or checkbox selections")
	}

	list, _ := f.guilds.List(context.Background(), testWorkspace)
	if len(list) != 1 || list[0].GuildName != "Iron Wolves" {
		t.Fatalf("expected exactly one guild, got %+v", list)
	}
	if got := testutil.ToFloat64(f.metrics.GuildsCreatedTotal.WithLabelValues("Competitive")); got != 1 {
		t.Fatalf("expected counter 1, got %v", got)
	}
}

func TestGuildHandler_RemoveAndEmptyState(t *testing.T) {
	f := newFixture()
	h := NewGuildHandler(f.guilds, f.auth, f.metrics, nopLog)

	for _, name := range []string{"Alpha", "Alpha", "Beta"} {
		c, _ := f.request(http.MethodPost, "/create-guild", guildValues(name))
		if err := h.Create(c); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}

	c, rec := f.request(http.MethodPost, "/create-guild/remove", url.Values{"guildName": {"Alpha"}})
	if err := h.Remove(c); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/create-guild" {
		t.Fatalf("expected redirect to /create-guild, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	if got := testutil.ToFloat64(f.metrics.GuildsRemovedTotal); got != 2 {
		t.Fatalf("expected 2 removals counted, got %v", got)
	}

	c, _ = f.request(http.MethodPost, "/create-guild/remove", url.Values{"guildName": {"Beta"}})
	_ = h.Remove(c)

	c, rec = f.request(http.MethodGet, "/create-guild", nil)
	if err := h.Show(c); err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(rec.Body.String(), "Use the form to create your first guild.") {
		t.Fatalf("expected empty state after removing all guilds")
	}
}

func TestGuildHandler_Clear(t *testing.T) {
	f := newFixture()
	h := NewGuildHandler(f.guilds, f.auth, f.metrics, nopLog)

	c, _ := f.request(http.MethodPost, "/create-guild", guildValues("Alpha"))
	_ = h.Create(c)

	c, rec := f.request(http.MethodPost, "/create-guild/clear", url.Values{})
	if err := h.Clear(c); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	list, _ := f.guilds.List(context.Background(), testWorkspace)
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %+v", list)
	}
}
