package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func characterValues(name, gender, class string) url.Values {
	return url.Values{"name": {name}, "gender": {gender}, "charClass": {class}}
}

func TestCharacterHandler_Show_Empty(t *testing.T) {
	f := newFixture()
	h := NewCharacterHandler(f.characters, f.auth, f.metrics, nopLog)

	c, rec := f.request(http.MethodGet, "/create-character", nil)
	if err := h.Show(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No characters created yet.") {
		t.Fatalf("expected empty state message")
	}
}

func TestCharacterHandler_Create_Success(t *testing.T) {
	f := newFixture()
	h := NewCharacterHandler(f.characters, f.auth, f.metrics, nopLog)

	c, rec := f.request(http.MethodPost, "/create-character", characterValues("  Ana  ", "Female", "Warrior"))
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<strong>Ana</strong>") {
		t.Fatalf("expected trimmed name in list, body: %s", body)
	}
	if !strings.Contains(body, `name="name" class="text-input" value=""`) {
		t.Fatalf("expected name field to be reset")
	}

	list, _ := f.characters.List(context.Background(), testWorkspace)
	if len(list) != 1 || list[0].ID != 1 || list[0].Name != "Ana" {
		t.Fatalf("unexpected stored list: %+v", list)
	}
	if got := testutil.ToFloat64(f.metrics.CharactersCreatedTotal.WithLabelValues("Warrior")); got != 1 {
		t.Fatalf("expected counter 1, got %v", got)
	}
}

func TestCharacterHandler_Create_SequentialRows(t *testing.T) {
	f := newFixture()
	h := NewCharacterHandler(f.characters, f.auth, f.metrics, nopLog)

	var body string
	for i := 1; i <= 3; i++ {
		c, rec := f.request(http.MethodPost, "/create-character", characterValues(fmt.Sprintf("Hero %d", i), "Other", "Rogue"))
		if err := h.Create(c); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		body = rec.Body.String()
	}
	if !strings.Contains(body, "<td>3</td>") || !strings.Contains(body, "<strong>Hero 3</strong>") {
		t.Fatalf("expected three rows, body: %s", body)
	}

	list, _ := f.characters.List(context.Background(), testWorkspace)
	for i, ch := range list {
		if ch.ID != i+1 {
			t.Fatalf("expected id %d, got %d", i+1, ch.ID)
		}
	}
}

func TestCharacterHandler_Create_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		values url.Values
		want   string
	}{
		{"whitespace name", characterValues("   ", "Male", "Mage"), "Name is required."},
		{"missing gender", characterValues("Ana", "", "Mage"), "Gender is required."},
		{"unknown class", characterValues("Ana", "Male", "Bard"), "Class is required."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			h := NewCharacterHandler(f.characters, f.auth, f.metrics, nopLog)

			c, rec := f.request(http.MethodPost, "/create-character", tc.values)
			if err := h.Create(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tc.want) {
				t.Fatalf("expected %q in body", tc.want)
			}
			list, _ := f.characters.List(context.Background(), testWorkspace)
			if len(list) != 0 {
				t.Fatalf("invalid submission must not create, got %+v", list)
			}
		})
	}
}
