// Package routing holds the single source of truth for the application's
// route surface: which paths exist, which are public, and what chrome a
// path gets. Components consult this package instead of comparing path
// strings themselves.
package routing

// Known navigation paths.
const (
	PathLanding          = "/"
	PathLogin            = "/login"
	PathSignup           = "/signup"
	PathDashboard        = "/dashboard"
	PathDocumentAnalysis = "/document-analysis"
	PathCaseSearch       = "/case-search"
	PathLegalNews        = "/legal-news"
	PathProfile          = "/profile"
)

// RouteDescriptor is the display policy derived from a navigation path.
// It is computed, never stored.
type RouteDescriptor struct {
	IsPublic        bool
	ShowTopNav      bool
	ShowSidebar     bool
	ShowFooter      bool
	ShowAccountMenu bool
}

var publicPaths = map[string]struct{}{
	PathLanding: {},
	PathLogin:   {},
	PathSignup:  {},
}

// Classify maps a navigation path to its display policy. Any path outside
// the public set, including unknown ones, gets the authenticated chrome.
func Classify(path string) RouteDescriptor {
	_, public := publicPaths[path]
	return RouteDescriptor{
		IsPublic:        public,
		ShowTopNav:      path == PathLanding,
		ShowSidebar:     !public,
		ShowFooter:      path == PathLanding,
		ShowAccountMenu: !public,
	}
}
