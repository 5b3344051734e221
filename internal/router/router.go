// Package router decides which page may be shown given the authentication
// state, mirroring a navigation guard: gated pages bounce unauthenticated
// visitors to login, and the auth pages bounce logged-in users home.
package router

// Page identifies one screen of the application.
type Page string

const (
	PageHome      Page = "home"
	PageTry       Page = "try"
	PageLogin     Page = "login"
	PageRegister  Page = "register"
	PageSummarize Page = "summarize"
	PageChat      Page = "chat"
	PageDraft     Page = "draft"
	PageHistory   Page = "history"
	PageSettings  Page = "settings"
)

// AuthState is the slice of session state navigation depends on.
type AuthState interface {
	Authenticated() bool
}

var requiresAuth = map[Page]bool{
	PageSummarize: true,
	PageChat:      true,
	PageDraft:     true,
	PageHistory:   true,
	PageSettings:  true,
}

// RequiresAuth reports whether a page is gated behind login.
func RequiresAuth(p Page) bool {
	return requiresAuth[p]
}

// Resolve maps a requested page to the page actually shown. Unauthenticated
// requests for gated pages land on login; authenticated requests for the
// auth pages land on home; everything else passes through.
func Resolve(p Page, auth AuthState) Page {
	if requiresAuth[p] && !auth.Authenticated() {
		return PageLogin
	}
	if auth.Authenticated() && (p == PageLogin || p == PageRegister) {
		return PageHome
	}
	return p
}

// Pages lists every page in navigation order.
func Pages() []Page {
	return []Page{
		PageHome,
		PageSummarize,
		PageChat,
		PageDraft,
		PageHistory,
		PageSettings,
		PageTry,
		PageLogin,
		PageRegister,
	}
}
