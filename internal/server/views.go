package server

import (
	"fmt"
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/yashdubey2004/AI-law/internal/catalog"
	"github.com/yashdubey2004/AI-law/internal/layout"
	"github.com/yashdubey2004/AI-law/internal/routing"
	"github.com/yashdubey2004/AI-law/internal/viewmodel"
)

func landingView() g.Node {
	return html.Div(
		html.Class("flex flex-col items-center text-center py-24 px-4"),
		html.H1(
			html.Class("text-4xl md:text-6xl font-bold tracking-tight"),
			g.Text("Legal Documents, "),
			html.Span(html.Class("text-primary"), g.Text("Decoded")),
		),
		html.P(
			html.Class("mt-6 max-w-2xl text-lg text-muted-foreground"),
			g.Text("Upload contracts and agreements, get plain-language explanations, and stay on top of legal developments that matter to you."),
		),
		html.Div(
			html.Class("mt-10 flex gap-4"),
			html.A(
				html.Href(routing.PathSignup),
				html.Class("inline-flex h-11 items-center rounded-md bg-primary px-8 text-primary-foreground hover:bg-primary/90"),
				g.Text("Get Started"),
			),
			html.A(
				html.Href(routing.PathLogin),
				html.Class("inline-flex h-11 items-center rounded-md border px-8 hover:bg-accent"),
				g.Text("Login"),
			),
		),
	)
}

func loginView() g.Node {
	return authCard("Welcome back", "Sign in to your account",
		html.Form(
			html.Method("post"), html.Action("/auth/login"),
			html.Class("space-y-4"),
			formField("Email", "email", "email", "you@example.com"),
			formField("Password", "password", "password", ""),
			submitButton("Login"),
		),
		html.P(
			html.Class("text-sm text-muted-foreground text-center"),
			g.Text("Don't have an account? "),
			html.A(html.Href(routing.PathSignup), html.Class("text-primary underline"), g.Text("Sign up")),
		),
	)
}

func signupView() g.Node {
	return authCard("Create an account", "Start decoding your legal documents",
		html.Form(
			html.Method("post"), html.Action("/auth/signup"),
			html.Class("space-y-4"),
			formField("Full Name", "full_name", "text", "John Doe"),
			formField("Email", "email", "email", "you@example.com"),
			formField("Password", "password", "password", ""),
			formField("Confirm Password", "confirm_password", "password", ""),
			submitButton("Sign Up"),
		),
		html.P(
			html.Class("text-sm text-muted-foreground text-center"),
			g.Text("Already have an account? "),
			html.A(html.Href(routing.PathLogin), html.Class("text-primary underline"), g.Text("Login")),
		),
	)
}

func authCard(title, subtitle string, children ...g.Node) g.Node {
	return html.Div(
		html.Class("flex justify-center py-16 px-4"),
		html.Div(
			html.Class("w-full max-w-md rounded-lg border bg-card p-8 shadow-sm space-y-6"),
			html.Div(
				html.H2(html.Class("text-2xl font-semibold"), g.Text(title)),
				html.P(html.Class("text-sm text-muted-foreground"), g.Text(subtitle)),
			),
			g.Group(children),
		),
	)
}

func formField(label, name, typ, placeholder string) g.Node {
	return html.Div(
		html.Class("space-y-2"),
		html.Label(html.For(name), html.Class("text-sm font-medium"), g.Text(label)),
		html.Input(
			html.Type(typ), html.Name(name), html.ID(name),
			g.If(placeholder != "", html.Placeholder(placeholder)),
			html.Class("flex h-10 w-full rounded-md border bg-background px-3 py-2 text-sm"),
		),
	)
}

func submitButton(label string) g.Node {
	return html.Button(
		html.Type("submit"),
		html.Class("inline-flex h-10 w-full items-center justify-center rounded-md bg-primary text-primary-foreground hover:bg-primary/90"),
		g.Text(label),
	)
}

func dashboardView(vm *viewmodel.DashboardViewModel) g.Node {
	return html.Div(
		html.Class("space-y-6"),
		newsTicker(vm.Ticker()),
		html.Div(
			html.Class("flex items-center justify-between"),
			html.H1(html.Class("text-3xl font-bold"), g.Text("Document Locker")),
			html.Form(
				html.Method("post"), html.Action("/dashboard/upload/open"),
				html.Button(
					html.Type("submit"),
					html.Class("inline-flex h-10 items-center rounded-md bg-primary px-4 text-primary-foreground hover:bg-primary/90"),
					g.Text("Upload Document"),
				),
			),
		),
		html.Div(
			html.Class("grid gap-4 md:grid-cols-2 lg:grid-cols-3"),
			g.Group(g.Map(vm.Documents(), documentCard)),
		),
		g.If(vm.Upload.IsOpen(), uploadDialog()),
	)
}

func newsTicker(items []string) g.Node {
	return html.Div(
		html.Class("overflow-hidden rounded-md border bg-muted/50 px-4 py-2"),
		html.Div(
			html.Class("flex gap-8 whitespace-nowrap text-sm text-muted-foreground animate-marquee"),
			g.Group(g.Map(items, func(item string) g.Node {
				return html.Span(g.Text(item))
			})),
		),
	)
}

func documentCard(doc catalog.LockerDocument) g.Node {
	return html.Div(
		html.Class("rounded-lg border bg-card p-6 space-y-4"),
		html.Div(
			html.Class("flex items-start justify-between"),
			html.H3(html.Class("font-semibold"), g.Text(doc.Name)),
			layout.Badge(doc.Status.Badge(), doc.Status.String()),
		),
		html.P(html.Class("text-sm text-muted-foreground"), g.Text("Uploaded "+doc.UploadDate)),
		html.Div(
			html.Class("flex gap-2"),
			html.Form(
				html.Method("post"), html.Action("/dashboard/view"),
				html.Input(html.Type("hidden"), html.Name("name"), html.Value(doc.Name)),
				html.Button(
					html.Type("submit"),
					html.Class("inline-flex h-9 items-center rounded-md border px-3 text-sm hover:bg-accent"),
					g.Text("View Analysis"),
				),
			),
			html.Form(
				html.Method("post"), html.Action("/dashboard/delete"),
				html.Input(html.Type("hidden"), html.Name("name"), html.Value(doc.Name)),
				html.Button(
					html.Type("submit"),
					html.Class("inline-flex h-9 items-center rounded-md border px-3 text-sm text-destructive hover:bg-destructive/10"),
					g.Text("Delete"),
				),
			),
		),
	)
}

func uploadDialog() g.Node {
	return html.Div(
		html.ID("upload-dialog"),
		html.Class("fixed inset-0 z-50 flex items-center justify-center bg-black/50"),
		html.Div(
			html.Class("w-full max-w-md rounded-lg border bg-card p-6 space-y-4"),
			html.H2(html.Class("text-xl font-semibold"), g.Text("Upload Document")),
			html.P(html.Class("text-sm text-muted-foreground"), g.Text("Select a legal document to analyze. PDF, DOC and DOCX are supported.")),
			html.Div(
				html.Class("flex justify-end gap-2"),
				html.Form(
					html.Method("post"), html.Action("/dashboard/upload/dismiss"),
					html.Button(
						html.Type("submit"),
						html.Class("inline-flex h-10 items-center rounded-md border px-4 hover:bg-accent"),
						g.Text("Cancel"),
					),
				),
				html.Form(
					html.Method("post"), html.Action("/dashboard/upload/confirm"),
					html.Button(
						html.Type("submit"),
						html.Class("inline-flex h-10 items-center rounded-md bg-primary px-4 text-primary-foreground hover:bg-primary/90"),
						g.Text("Upload"),
					),
				),
			),
		),
	)
}

func documentAnalysisView(clauses []catalog.Clause, chat *viewmodel.ChatViewModel) g.Node {
	return html.Div(
		html.Class("grid gap-6 lg:grid-cols-2"),
		html.Div(
			html.Class("space-y-4"),
			html.H1(html.Class("text-3xl font-bold"), g.Text("Document Analysis")),
			html.P(html.Class("text-muted-foreground"), g.Text("Employment Contract.pdf")),
			g.Group(g.Map(clauses, clauseCard)),
		),
		chatPanel(chat),
	)
}

func clauseCard(cl catalog.Clause) g.Node {
	return html.Div(
		html.Class("rounded-lg border bg-card p-6 space-y-3"),
		html.Div(
			html.Class("flex items-start justify-between"),
			html.H3(html.Class("font-semibold"), g.Text(cl.Title)),
			layout.Badge(cl.Importance.Badge(), cl.Importance.String()),
		),
		html.Div(
			html.Class("rounded-md bg-muted p-3 text-sm italic"),
			g.Text(cl.OriginalText),
		),
		html.P(html.Class("text-sm"), g.Text(cl.Translation)),
	)
}

func chatPanel(chat *viewmodel.ChatViewModel) g.Node {
	return html.Div(
		html.Class("flex flex-col rounded-lg border bg-card"),
		html.Div(
			html.Class("border-b p-4"),
			html.H2(html.Class("font-semibold"), g.Text("Ask about this document")),
		),
		html.Div(
			html.ID("chat-messages"),
			html.Class("flex-1 space-y-4 overflow-y-auto p-4"),
			g.Group(g.Map(chat.Messages(), chatBubble)),
		),
		html.Form(
			html.Method("post"), html.Action("/document-analysis/chat"),
			html.Class("flex gap-2 border-t p-4"),
			html.Input(
				html.Type("text"), html.Name("message"),
				html.Placeholder("Ask a question about your document..."),
				html.Class("flex h-10 flex-1 rounded-md border bg-background px-3 text-sm"),
			),
			html.Button(
				html.Type("submit"),
				html.Class("inline-flex h-10 items-center rounded-md bg-primary px-4 text-primary-foreground hover:bg-primary/90"),
				g.Text("Send"),
			),
		),
	)
}

func chatBubble(m viewmodel.ChatMessage) g.Node {
	wrap := "flex justify-start"
	bubble := "max-w-[80%] rounded-lg bg-muted px-4 py-2 text-sm"
	if m.Author == viewmodel.AuthorUser {
		wrap = "flex justify-end"
		bubble = "max-w-[80%] rounded-lg bg-primary px-4 py-2 text-sm text-primary-foreground"
	}
	return html.Div(
		html.Class(wrap),
		g.Attr("data-message-id", strconv.Itoa(m.ID)),
		html.Div(html.Class(bubble), g.Text(m.Text)),
	)
}

func caseSearchView(vm *viewmodel.SearchViewModel) g.Node {
	return html.Div(
		html.Class("space-y-6"),
		html.H1(html.Class("text-3xl font-bold"), g.Text("Case Law Search")),
		html.Form(
			html.Method("post"), html.Action("/case-search"),
			html.Class("flex gap-2"),
			html.Input(
				html.Type("text"), html.Name("query"), html.Value(vm.Query()),
				html.Placeholder("Search cases by topic, e.g. wrongful termination..."),
				html.Class("flex h-10 flex-1 rounded-md border bg-background px-3 text-sm"),
			),
			html.Button(
				html.Type("submit"),
				g.If(vm.State() == viewmodel.SearchPending, html.Disabled()),
				html.Class("inline-flex h-10 items-center rounded-md bg-primary px-4 text-primary-foreground hover:bg-primary/90 disabled:opacity-50"),
				g.If(vm.State() == viewmodel.SearchPending, g.Text("Searching...")),
				g.If(vm.State() != viewmodel.SearchPending, g.Text("Search")),
			),
		),
		g.If(vm.LastError() != "", html.P(html.Class("text-sm text-destructive"), g.Text(vm.LastError()))),
		html.Div(
			html.Class("space-y-4"),
			g.Group(g.Map(vm.Results(), caseCard)),
		),
	)
}

func caseCard(cs catalog.Case) g.Node {
	return html.Div(
		html.Class("rounded-lg border bg-card p-6 space-y-3"),
		html.Div(
			html.Class("flex items-start justify-between"),
			html.Div(
				html.H3(html.Class("font-semibold"), g.Text(cs.Title)),
				html.P(html.Class("text-sm text-muted-foreground"), g.Text(fmt.Sprintf("%s (%s)", cs.Court, cs.Year))),
			),
			layout.Badge(catalog.RelevanceBadge(cs.RelevanceScore), fmt.Sprintf("%d%% relevant", cs.RelevanceScore)),
		),
		html.P(html.Class("text-sm"), g.Text(cs.Summary)),
		html.Ul(
			html.Class("list-disc space-y-1 pl-5 text-sm text-muted-foreground"),
			g.Group(g.Map(cs.KeyPoints, func(p string) g.Node { return html.Li(g.Text(p)) })),
		),
		html.P(html.Class("text-xs text-muted-foreground"), g.Text(cs.Citation)),
	)
}

func legalNewsView(articles []catalog.Article) g.Node {
	return html.Div(
		html.Class("space-y-6"),
		html.H1(html.Class("text-3xl font-bold"), g.Text("Legal News")),
		html.Div(
			html.Class("flex flex-wrap gap-2"),
			g.Group(g.Map(catalog.Categories(), func(c catalog.NewsCategory) g.Node {
				return html.Span(
					html.Class("inline-flex items-center rounded-full border px-3 py-1 text-xs"),
					g.Text(c.String()),
				)
			})),
		),
		html.Div(
			html.Class("space-y-4"),
			g.Group(g.Map(articles, articleCard)),
		),
	)
}

func articleCard(a catalog.Article) g.Node {
	return html.Div(
		html.Class("rounded-lg border bg-card p-6 space-y-3"),
		html.Div(
			html.Class("flex items-start justify-between gap-4"),
			html.H3(html.Class("font-semibold"), g.Text(a.Title)),
			html.Div(
				html.Class("flex gap-2"),
				g.If(a.Urgent, layout.Badge(catalog.BadgeDestructive, "Urgent")),
				layout.Badge(a.Category.Badge(), a.Category.String()),
			),
		),
		html.P(html.Class("text-sm text-muted-foreground"), g.Text(a.Summary)),
		html.P(
			html.Class("text-xs text-muted-foreground"),
			g.Text(fmt.Sprintf("%s · %s · %s", a.Source, a.Date, a.ReadTime)),
		),
	)
}

func profileView(vm *viewmodel.ProfileViewModel) g.Node {
	fullName, email := vm.Details()
	current, newPass, confirm := vm.PasswordFields()
	emailPref, pushPref := vm.Preferences()
	return html.Div(
		html.Class("max-w-2xl space-y-8"),
		html.H1(html.Class("text-3xl font-bold"), g.Text("Profile Settings")),
		profileSection("Personal Information",
			html.Form(
				html.Method("post"), html.Action("/profile/save"),
				html.Class("space-y-4"),
				filledField("Full Name", "full_name", "text", fullName),
				filledField("Email", "email", "email", email),
				submitButton("Save Changes"),
			),
		),
		profileSection("Change Password",
			html.Form(
				html.Method("post"), html.Action("/profile/password"),
				html.Class("space-y-4"),
				filledField("Current Password", "current_password", "password", current),
				filledField("New Password", "new_password", "password", newPass),
				filledField("Confirm New Password", "confirm_password", "password", confirm),
				submitButton("Update Password"),
			),
		),
		profileSection("Notifications",
			html.Form(
				html.Method("post"), html.Action("/profile/preferences"),
				html.Class("space-y-4"),
				checkboxField("Email notifications", "email_notifications", emailPref),
				checkboxField("Push notifications", "push_notifications", pushPref),
				submitButton("Save Preferences"),
			),
		),
	)
}

func profileSection(title string, body g.Node) g.Node {
	return html.Div(
		html.Class("rounded-lg border bg-card p-6 space-y-4"),
		html.H2(html.Class("text-xl font-semibold"), g.Text(title)),
		body,
	)
}

func filledField(label, name, typ, value string) g.Node {
	return html.Div(
		html.Class("space-y-2"),
		html.Label(html.For(name), html.Class("text-sm font-medium"), g.Text(label)),
		html.Input(
			html.Type(typ), html.Name(name), html.ID(name), html.Value(value),
			html.Class("flex h-10 w-full rounded-md border bg-background px-3 py-2 text-sm"),
		),
	)
}

func checkboxField(label, name string, checked bool) g.Node {
	return html.Div(
		html.Class("flex items-center gap-2"),
		html.Input(
			html.Type("checkbox"), html.Name(name), html.ID(name),
			g.If(checked, html.Checked()),
			html.Class("h-4 w-4 rounded border"),
		),
		html.Label(html.For(name), html.Class("text-sm"), g.Text(label)),
	)
}

func notFoundView(path string) g.Node {
	return html.Div(
		html.Class("flex flex-col items-center py-24 text-center"),
		html.H1(html.Class("text-5xl font-bold"), g.Text("404")),
		html.P(html.Class("mt-4 text-muted-foreground"), g.Text("No page exists at "+path+".")),
		html.A(
			html.Href(routing.PathDashboard),
			html.Class("mt-8 inline-flex h-10 items-center rounded-md bg-primary px-4 text-primary-foreground hover:bg-primary/90"),
			g.Text("Back to Dashboard"),
		),
	)
}
