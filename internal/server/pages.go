package server

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/url"
	"os"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/yashdubey2004/AI-law/internal/appctx"
	"github.com/yashdubey2004/AI-law/internal/catalog"
	"github.com/yashdubey2004/AI-law/internal/layout"
	"github.com/yashdubey2004/AI-law/internal/news"
	"github.com/yashdubey2004/AI-law/internal/routing"
	"github.com/yashdubey2004/AI-law/internal/viewmodel"
)

// Pages serves every server-rendered page and the form posts that mutate
// their view state. One Pages instance carries the whole session's UI state,
// matching a single mounted client.
type Pages struct {
	App      *appctx.Context
	Composer *layout.Composer
	Feed     *news.Feed

	Dashboard *viewmodel.DashboardViewModel
	Chat      *viewmodel.ChatViewModel
	Search    *viewmodel.SearchViewModel
	Profile   *viewmodel.ProfileViewModel

	logger *log.Logger
}

func NewPages(app *appctx.Context, composer *layout.Composer, feed *news.Feed,
	dashboard *viewmodel.DashboardViewModel, chat *viewmodel.ChatViewModel,
	search *viewmodel.SearchViewModel, profile *viewmodel.ProfileViewModel) *Pages {
	return &Pages{
		App:       app,
		Composer:  composer,
		Feed:      feed,
		Dashboard: dashboard,
		Chat:      chat,
		Search:    search,
		Profile:   profile,
		logger:    log.New(os.Stdout, "[HTTP] ", log.LstdFlags),
	}
}

// Register wires the public pages on e and the authenticated pages plus
// their form posts on authed.
func (p *Pages) Register(e *echo.Echo, authed *echo.Group) {
	e.GET(routing.PathLanding, p.page("NyayMantra", func() g.Node { return landingView() }))
	e.GET(routing.PathLogin, p.page("Login | NyayMantra", func() g.Node { return loginView() }))
	e.GET(routing.PathSignup, p.page("Sign Up | NyayMantra", func() g.Node { return signupView() }))

	authed.GET(routing.PathDashboard, p.page("Dashboard | NyayMantra", func() g.Node { return dashboardView(p.Dashboard) }))
	authed.GET(routing.PathDocumentAnalysis, p.page("Document Analysis | NyayMantra", func() g.Node {
		return documentAnalysisView(catalog.SeedClauses(), p.Chat)
	}))
	authed.GET(routing.PathCaseSearch, p.page("Case Search | NyayMantra", func() g.Node { return caseSearchView(p.Search) }))
	authed.GET(routing.PathLegalNews, p.page("Legal News | NyayMantra", func() g.Node { return legalNewsView(p.Feed.Articles()) }))
	authed.GET(routing.PathProfile, p.page("Profile | NyayMantra", func() g.Node { return profileView(p.Profile) }))

	authed.POST("/sidebar/open", p.openSidebar)
	authed.POST("/sidebar/close", p.closeSidebar)
	e.POST("/theme/toggle", p.toggleTheme)

	authed.POST("/dashboard/upload/open", p.uploadOpen)
	authed.POST("/dashboard/upload/dismiss", p.uploadDismiss)
	authed.POST("/dashboard/upload/confirm", p.uploadConfirm)
	authed.POST("/dashboard/view", p.viewAnalysis)
	authed.POST("/dashboard/delete", p.deleteDocument)

	authed.POST("/document-analysis/chat", p.sendChat)
	authed.POST(routing.PathCaseSearch, p.submitSearch)

	authed.POST("/profile/save", p.saveProfile)
	authed.POST("/profile/password", p.changePassword)
	authed.POST("/profile/preferences", p.savePreferences)
}

// page renders content inside the chrome for the request path. Pending
// notifications are drained into the rendered toasts.
func (p *Pages) page(title string, content func() g.Node) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		pageRenders.WithLabelValues(path).Inc()
		body := html.Div(
			p.Composer.Compose(path, content()),
			layout.Toasts(p.App.Drain()),
		)
		return p.render(c, title, body)
	}
}

func (p *Pages) render(c echo.Context, title string, body g.Node) error {
	var buf bytes.Buffer
	if err := layout.Document(title, body).Render(&buf); err != nil {
		p.logger.Printf("render %s: %v", c.Request().URL.Path, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "render failed")
	}
	return c.HTML(http.StatusOK, buf.String())
}

// NotFound renders the 404 slot inside the chrome for the path it landed on.
func (p *Pages) NotFound(c echo.Context) error {
	path := c.Request().URL.Path
	body := html.Div(
		p.Composer.Compose(path, notFoundView(path)),
		layout.Toasts(p.App.Drain()),
	)
	var buf bytes.Buffer
	if err := layout.Document("Not Found | NyayMantra", body).Render(&buf); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "render failed")
	}
	return c.HTML(http.StatusNotFound, buf.String())
}

func (p *Pages) openSidebar(c echo.Context) error {
	p.Composer.OpenSidebar(backPath(c, routing.PathDashboard))
	return back(c, routing.PathDashboard)
}

func (p *Pages) closeSidebar(c echo.Context) error {
	p.Composer.CloseSidebar()
	return back(c, routing.PathDashboard)
}

func (p *Pages) toggleTheme(c echo.Context) error {
	p.App.ToggleTheme()
	return back(c, routing.PathLanding)
}

func (p *Pages) uploadOpen(c echo.Context) error {
	p.Dashboard.Upload.Open()
	return back(c, routing.PathDashboard)
}

func (p *Pages) uploadDismiss(c echo.Context) error {
	p.Dashboard.Upload.Dismiss()
	return back(c, routing.PathDashboard)
}

func (p *Pages) uploadConfirm(c echo.Context) error {
	p.Dashboard.Upload.ConfirmUpload()
	return back(c, routing.PathDashboard)
}

func (p *Pages) viewAnalysis(c echo.Context) error {
	dest := p.Dashboard.ViewAnalysis(c.FormValue("name"))
	return c.Redirect(http.StatusSeeOther, dest)
}

func (p *Pages) deleteDocument(c echo.Context) error {
	p.Dashboard.Delete(c.FormValue("name"))
	return back(c, routing.PathDashboard)
}

func (p *Pages) sendChat(c echo.Context) error {
	p.Chat.Send(c.FormValue("message"))
	return back(c, routing.PathDocumentAnalysis)
}

func (p *Pages) submitSearch(c echo.Context) error {
	err := p.Search.Submit(c.Request().Context(), c.FormValue("query"))
	switch {
	case errors.Is(err, viewmodel.ErrSearchPending):
		// A search is already running; the resubmit is dropped.
		searchSubmissions.WithLabelValues("ignored").Inc()
	case err != nil:
		searchSubmissions.WithLabelValues("error").Inc()
		p.logger.Printf("search failed: %v", err)
	default:
		searchSubmissions.WithLabelValues("ok").Inc()
	}
	return back(c, routing.PathCaseSearch)
}

func (p *Pages) saveProfile(c echo.Context) error {
	p.Profile.SaveProfile(c.FormValue("full_name"), c.FormValue("email"))
	return back(c, routing.PathProfile)
}

func (p *Pages) changePassword(c echo.Context) error {
	p.Profile.SetPasswordFields(
		c.FormValue("current_password"),
		c.FormValue("new_password"),
		c.FormValue("confirm_password"),
	)
	_ = p.Profile.ChangePassword()
	return back(c, routing.PathProfile)
}

func (p *Pages) savePreferences(c echo.Context) error {
	p.Profile.SetPreferences(
		c.FormValue("email_notifications") != "",
		c.FormValue("push_notifications") != "",
	)
	return back(c, routing.PathProfile)
}

// back redirects to the page the form was submitted from, falling back when
// the Referer header is absent.
func back(c echo.Context, fallback string) error {
	return c.Redirect(http.StatusSeeOther, backPath(c, fallback))
}

func backPath(c echo.Context, fallback string) string {
	ref := c.Request().Header.Get("Referer")
	if ref == "" {
		return fallback
	}
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" {
		return fallback
	}
	return u.Path
}
