package routes

// NavItem is one link in the header or footer.
type NavItem struct {
	Label    string
	Path     string
	External bool
}

// DefaultSourceURL is the footer's source link when none is configured.
const DefaultSourceURL = "https://github.com/tjscooper/virtual-team-planner"

// HeaderNav lists the header links in display order.
func HeaderNav() []NavItem {
	return []NavItem{
		{Label: "Home", Path: "/"},
		{Label: "Agents", Path: "/agents"},
		{Label: "Lifecycle", Path: "/lifecycle"},
		{Label: "Examples", Path: "/examples"},
		{Label: "Interactive", Path: "/interactive"},
		{Label: "Resources", Path: "/resources"},
	}
}

// FooterNav lists the footer links, ending with the external source link.
func FooterNav(sourceURL string) []NavItem {
	if sourceURL == "" {
		sourceURL = DefaultSourceURL
	}
	return []NavItem{
		{Label: "Agents", Path: "/agents"},
		{Label: "Lifecycle", Path: "/lifecycle"},
		{Label: "Glossary", Path: "/resources/glossary"},
		{Label: "GitHub", Path: sourceURL, External: true},
	}
}
