package bookmarks

import (
	"fmt"
	"html"
	"strings"
	"time"
)

const header = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<!-- This is an automatically generated file.
     It will be read and overwritten.
     DO NOT EDIT! -->
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
`

// Generate renders categories as a Netscape bookmark document that browsers
// accept for re-import. Names and URLs are user-supplied and must be
// HTML-escaped to keep the document valid. Timestamps carry no meaning to
// consumers, so every entry is stamped with the generation time.
func Generate(categories []ParsedCategory) string {
	ts := time.Now().Unix()

	var b strings.Builder
	b.WriteString(header)

	for _, cat := range categories {
		fmt.Fprintf(&b, "    <DT><H3 ADD_DATE=\"%d\" LAST_MODIFIED=\"%d\">%s</H3>\n", ts, ts, html.EscapeString(cat.Name))
		b.WriteString("    <DL><p>\n")
		for _, site := range cat.Sites {
			iconAttr := ""
			if site.Icon != "" {
				iconAttr = fmt.Sprintf(" ICON=\"%s\"", html.EscapeString(site.Icon))
			}
			fmt.Fprintf(&b, "        <DT><A HREF=\"%s\" ADD_DATE=\"%d\"%s>%s</A>\n", html.EscapeString(site.URL), ts, iconAttr, html.EscapeString(site.Name))
		}
		b.WriteString("    </DL><p>\n")
	}

	b.WriteString("</DL><p>\n")
	return b.String()
}
