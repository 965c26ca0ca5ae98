package grammar

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// TableAsHTML exports the FIRST and FOLLOW sets, as selected for caps, in
// HTML format. Option dependent productions are marked with the slot in use.
func TableAsHTML(t *Table, caps Capabilities, w io.Writer) error {
	var b strings.Builder
	b.WriteString("<html><body>\n")
	b.WriteString("<table border=1 cellspacing=0 cellpadding=5>\n")
	b.WriteString("<tr bgcolor=#cccccc><td>production</td><td>FIRST</td><td>FOLLOW</td></tr>\n")
	for p := Production(0); p < productionCount; p++ {
		name := p.String()
		if IsOptionDependent(p) {
			name = fmt.Sprintf("%s <i>(%s/%s)</i>", name, FirstSlot(p, caps), FollowSlot(p, caps))
		}
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>\n", name,
			html.EscapeString(t.First(p, caps).String()),
			html.EscapeString(t.Follow(p, caps).String()))
	}
	b.WriteString("</table></body></html>\n")
	_, err := io.WriteString(w, b.String())
	return err
}
