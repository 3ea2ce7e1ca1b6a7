package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/louisbranch/zenstats/internal/charsheet"
	"github.com/louisbranch/zenstats/internal/miniapp"
)

func TestNewSheetViewAppliesDefaults(t *testing.T) {
	t.Parallel()

	view := NewSheetView(charsheet.CharacterState{})
	if view.Name != charsheet.DefaultName {
		t.Fatalf("Name = %q, want %q", view.Name, charsheet.DefaultName)
	}
	if view.Class != charsheet.DefaultClass {
		t.Fatalf("Class = %q, want %q", view.Class, charsheet.DefaultClass)
	}
	if len(view.Attributes) != 6 {
		t.Fatalf("len(Attributes) = %d, want 6", len(view.Attributes))
	}
	for _, row := range view.Attributes {
		if row.Value != charsheet.StatPlaceholder {
			t.Fatalf("%s value = %q, want %q", row.Key, row.Value, charsheet.StatPlaceholder)
		}
	}
	if view.HP != "0/0" {
		t.Fatalf("HP = %q, want %q", view.HP, "0/0")
	}
	if view.KarmaProgress != 0 {
		t.Fatalf("KarmaProgress = %d, want 0", view.KarmaProgress)
	}
}

func TestCharacterSheetRendersEverySlot(t *testing.T) {
	t.Parallel()

	view := NewSheetView(charsheet.CharacterState{
		Name:      "Tenzin",
		Class:     "Monk",
		Wisdom:    charsheet.NewStat("18"),
		HP:        42,
		MaxHP:     50,
		Energy:    30,
		MaxEnergy: 40,
		Karma:     250,
		Abilities: []string{"Meditate", "Strike"},
	})

	var b strings.Builder
	if err := CharacterSheet(view).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := b.String()

	for _, want := range []string{
		`<h1 id="char-name">Tenzin</h1>`,
		`<p id="char-class">Monk</p>`,
		`<span class="value">18</span>`,
		`id="attr-charisma"`,
		`<span id="char-hp">HP: 42/50</span>`,
		`<span id="char-energy">Energy: 30/40</span>`,
		`<span id="char-karma">Karma: 250</span>`,
		`style="width: 50%"`,
		`<li>Meditate</li>`,
		`<li>Strike</li>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("sheet output missing %q in %s", want, got)
		}
	}
	// Abilities keep producer order.
	if strings.Index(got, "Meditate") > strings.Index(got, "Strike") {
		t.Fatal("abilities rendered out of order")
	}
}

func TestCharacterSheetRendersNoAbilitiesFallback(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	if err := CharacterSheet(NewSheetView(charsheet.CharacterState{})).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(b.String(), "<li>"+charsheet.NoAbilitiesLabel+"</li>") {
		t.Fatalf("sheet output missing %q fallback", charsheet.NoAbilitiesLabel)
	}
}

func TestCharacterSheetEscapesFieldValues(t *testing.T) {
	t.Parallel()

	view := NewSheetView(charsheet.CharacterState{Name: `<script>alert(1)</script>`})
	var b strings.Builder
	if err := CharacterSheet(view).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := b.String()
	if strings.Contains(got, "<script>alert") {
		t.Fatal("field value was not escaped")
	}
	if !strings.Contains(got, "&lt;script&gt;") {
		t.Fatalf("escaped name missing from %s", got)
	}
}

func TestErrorNoticeRendersExactMessage(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	if err := ErrorNotice(charsheet.MissingPayloadNotice).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := `<p class="error" id="error-message">` + charsheet.MissingPayloadNotice + `</p>`
	if b.String() != want {
		t.Fatalf("ErrorNotice() = %s, want %s", b.String(), want)
	}
}

func TestPageWiresShellSDK(t *testing.T) {
	t.Parallel()

	shell := miniapp.Shell{SDKURL: miniapp.DefaultSDKURL}
	var b strings.Builder
	err := Page(PageTitle, shell, ErrorNotice(charsheet.MissingPayloadNotice)).Render(context.Background(), &b)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := b.String()
	if !strings.Contains(got, `<script src="`+miniapp.DefaultSDKURL+`"></script>`) {
		t.Fatalf("page missing SDK script tag in %s", got)
	}
	if !strings.Contains(got, "expand()") {
		t.Fatal("page missing expand bootstrap")
	}
	if !strings.Contains(got, "<title>"+PageTitle+"</title>") {
		t.Fatal("page missing title")
	}
}

func TestPageWithoutShellOmitsSDK(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	if err := Page(PageTitle, miniapp.Shell{}, nil).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(b.String(), "<script") {
		t.Fatalf("shell-less page should not include scripts: %s", b.String())
	}
}
