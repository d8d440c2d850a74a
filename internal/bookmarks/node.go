// Package bookmarks parses and generates Netscape-format bookmark files,
// the de-facto HTML export format shared by Chrome, Firefox and friends.
package bookmarks

// Node is a parse-time bookmark tree node: either a folder with children
// or a link. It carries no persistent identity.
type Node struct {
	Name     string
	Folder   bool
	Children []*Node // folders only
	URL      string  // links only
	Icon     string  // links only
}

// ParsedSite is a single link after flattening.
type ParsedSite struct {
	Name string
	URL  string
	Icon string
}

// ParsedCategory is one flattened folder: the immediate parent folder name
// plus every link that sat directly inside a folder of that name.
type ParsedCategory struct {
	Name  string
	Sites []ParsedSite
}
