// Package miniapp models the chat-platform shell hosting the stats page.
//
// The shell loads an SDK script into the webview and exposes an expand()
// affordance that resizes the mini-app to full height. Pages receive the
// shell as an injected value rather than reaching for a global, so they
// render (and test) without a host.
package miniapp

import "strings"

// DefaultSDKURL is the Telegram mini-app SDK script.
const DefaultSDKURL = "https://telegram.org/js/telegram-web-app.js"

// Shell describes the host runtime embedding the page. The zero value is a
// shell-less page: no SDK script, no expand call.
type Shell struct {
	// SDKURL is the script that installs the host SDK object.
	SDKURL string
}

// Enabled reports whether the page should wire up the host SDK.
func (s Shell) Enabled() bool {
	return strings.TrimSpace(s.SDKURL) != ""
}

// ScriptURL returns the SDK script source.
func (s Shell) ScriptURL() string {
	return strings.TrimSpace(s.SDKURL)
}

// InitScript returns the inline bootstrap that expands the webview once the
// SDK is present. expand() is the only SDK surface the page uses.
func (s Shell) InitScript() string {
	if !s.Enabled() {
		return ""
	}
	return "if (window.Telegram && window.Telegram.WebApp) { window.Telegram.WebApp.expand(); }"
}
