package routing

// IconKey identifies the glyph rendered next to a sidebar destination.
// The set is closed; the renderer maps every key exhaustively.
type IconKey int

const (
	IconDashboard IconKey = iota
	IconDocument
	IconSearch
	IconNewspaper
	IconSettings
)

// SidebarItem is one destination in the app sidebar.
type SidebarItem struct {
	Title string
	Href  string
	Icon  IconKey
}

var sidebarItems = []SidebarItem{
	{Title: "Dashboard", Href: PathDashboard, Icon: IconDashboard},
	{Title: "Document Analysis", Href: PathDocumentAnalysis, Icon: IconDocument},
	{Title: "Case Law Search", Href: PathCaseSearch, Icon: IconSearch},
	{Title: "Legal News", Href: PathLegalNews, Icon: IconNewspaper},
	{Title: "Settings", Href: PathProfile, Icon: IconSettings},
}

// SidebarItems returns the fixed, ordered navigation list. Callers must not
// mutate the returned slice contents; a copy is returned to keep the
// registry read-only.
func SidebarItems() []SidebarItem {
	out := make([]SidebarItem, len(sidebarItems))
	copy(out, sidebarItems)
	return out
}

// IsActive reports whether item is the current destination. Matching is
// exact; no prefix matching.
func (s SidebarItem) IsActive(path string) bool {
	return s.Href == path
}
