package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/zenstats/internal/charsheet"
)

// CharacterSheet renders every named sheet slot from a populated view.
func CharacterSheet(view SheetView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(
			w,
			`<div class="sheet"><header class="sheet-header"><h1 id="char-name">%s</h1><p id="char-class">%s</p></header>`,
			html.EscapeString(view.Name),
			html.EscapeString(view.Class),
		); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<section class="attributes">`); err != nil {
			return err
		}
		for _, row := range view.Attributes {
			if _, err := fmt.Fprintf(
				w,
				`<div class="attribute" id="attr-%s"><span class="label">%s</span><span class="value">%s</span></div>`,
				html.EscapeString(row.Key),
				html.EscapeString(row.Label),
				html.EscapeString(row.Value),
			); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</section>`); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(
			w,
			`<section class="resources"><span id="char-hp">HP: %s</span><span id="char-energy">Energy: %s</span></section>`,
			html.EscapeString(view.HP),
			html.EscapeString(view.Energy),
		); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(
			w,
			`<section class="karma"><span id="char-karma">Karma: %s</span><div class="progress"><div class="progress-fill" id="karma-progress" style="width: %d%%"></div></div></section>`,
			html.EscapeString(view.Karma),
			view.KarmaProgress,
		); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<section><ul class="abilities" id="char-abilities">`); err != nil {
			return err
		}
		if len(view.Abilities) == 0 {
			if _, err := fmt.Fprintf(w, `<li>%s</li>`, html.EscapeString(charsheet.NoAbilitiesLabel)); err != nil {
				return err
			}
		}
		for _, ability := range view.Abilities {
			if _, err := fmt.Fprintf(w, `<li>%s</li>`, html.EscapeString(ability)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ul></section></div>`)
		return err
	})
}

// ErrorNotice renders the single inline error slot. No other slot is
// populated when a payload fails to decode.
func ErrorNotice(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<p class="error" id="error-message">%s</p>`, html.EscapeString(message))
		return err
	})
}
