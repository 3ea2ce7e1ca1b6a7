package templates

import (
	"context"
	"fmt"
	"html"
	"io"

	"github.com/a-h/templ"
	"github.com/louisbranch/zenstats/internal/miniapp"
)

// PageTitle is the browser title for the character sheet page.
const PageTitle = "Character Sheet"

const stylesheet = `
  :root { color-scheme: dark; }
  body {
    margin: 0;
    padding: 16px;
    font-family: -apple-system, system-ui, sans-serif;
    background: var(--tg-theme-bg-color, #17212b);
    color: var(--tg-theme-text-color, #f5f5f5);
  }
  .sheet { max-width: 480px; margin: 0 auto; }
  .sheet-header { text-align: center; margin-bottom: 16px; }
  .sheet-header h1 { margin: 0; font-size: 1.4em; }
  .sheet-header p { margin: 4px 0 0; opacity: 0.7; }
  .attributes {
    display: grid;
    grid-template-columns: repeat(3, 1fr);
    gap: 8px;
    margin-bottom: 16px;
  }
  .attribute {
    background: var(--tg-theme-secondary-bg-color, #232e3c);
    border-radius: 8px;
    padding: 8px;
    text-align: center;
  }
  .attribute .label { display: block; font-size: 0.7em; text-transform: uppercase; opacity: 0.7; }
  .attribute .value { font-size: 1.2em; font-weight: 600; }
  .resources { display: flex; justify-content: space-between; margin-bottom: 16px; }
  .karma { margin-bottom: 16px; }
  .progress {
    height: 8px;
    border-radius: 4px;
    background: var(--tg-theme-secondary-bg-color, #232e3c);
    overflow: hidden;
  }
  .progress-fill { height: 100%; background: #7bc862; }
  .abilities { margin: 0; padding: 0; list-style: none; }
  .abilities li {
    background: var(--tg-theme-secondary-bg-color, #232e3c);
    border-radius: 8px;
    padding: 8px 12px;
    margin-bottom: 8px;
  }
  .error { text-align: center; opacity: 0.8; }
`

// Page wraps a body fragment in the mini-app page shell: document head,
// embedded stylesheet, and the host SDK bootstrap when a shell is injected.
func Page(title string, shell miniapp.Shell, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!doctype html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s</title>`, html.EscapeString(title)); err != nil {
			return err
		}
		if shell.Enabled() {
			if _, err := fmt.Fprintf(w, `<script src="%s"></script>`, html.EscapeString(shell.ScriptURL())); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, `<style>%s</style></head><body>`, stylesheet); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		if script := shell.InitScript(); script != "" {
			if _, err := fmt.Fprintf(w, `<script>%s</script>`, script); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
