package goquery

import (
	"strings"

	"github.com/CarlosDimare/soccerwiki"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// unknownLeague is used when no section heading precedes a listing table.
const unknownLeague = "Unknown"

// ParseClubList extracts every club from a league listing (country.php)
// document. Each roster-style table is one league section; the league
// name comes from the nearest preceding post heading in document order.
func (p *Parser) ParseClubList(htmlText, sourceURL string) ([]*soccerwiki.Club, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, soccerwiki.Errorf(soccerwiki.EINVALID, "failed to parse HTML: %v", err)
	}

	clubs := []*soccerwiki.Club{}

	// Walk the tree once in document order, carrying the league name of
	// the last heading article seen, so each table picks up the heading
	// that precedes it.
	league := unknownLeague
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch {
			case n.Data == "article" && nodeHasClass(n, "post-classic"):
				if name := firstLinkText(n); name != "" {
					league = name
				}
			case n.Data == "table" && nodeHasClass(n, "table-roster"):
				clubs = append(clubs, p.parseClubTable(n, league)...)
				return // rows handled, no need to descend further
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, root := range doc.Selection.Nodes {
		walk(root)
	}

	return clubs, nil
}

// parseClubTable extracts the clubs of a single listing table. The first
// row is a header and skipped; rows with fewer than three cells are
// skipped silently.
func (p *Parser) parseClubTable(table *html.Node, league string) []*soccerwiki.Club {
	var clubs []*soccerwiki.Club

	sel := goquery.NewDocumentFromNode(table).Selection
	sel.Find("tr").Each(func(idx int, row *goquery.Selection) {
		if idx == 0 {
			return
		}

		cells := row.Find("td")
		if cells.Length() < 3 {
			return
		}

		link := cells.Eq(1).Find("a").First()
		if link.Length() == 0 {
			return
		}

		href := link.AttrOr("href", "")
		club := &soccerwiki.Club{
			ID:             queryParam(href, "clubid"),
			Name:           strings.TrimSpace(link.Text()),
			FoundationYear: strings.TrimSpace(cells.Eq(2).Text()),
			League:         league,
			URL:            p.resolve(href),
		}

		if img := cells.Eq(0).Find("img").First(); img.Length() > 0 {
			club.Logo = imgSrc(img)
		}
		if cells.Length() > 3 {
			club.Location = strings.TrimSpace(cells.Eq(3).Text())
		}

		clubs = append(clubs, club)
	})

	return clubs
}

// nodeHasClass reports whether the element carries the CSS class.
func nodeHasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// firstLinkText returns the trimmed text of the first anchor in the
// subtree rooted at n.
func firstLinkText(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "a" {
		return strings.TrimSpace(nodeText(n))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if text := firstLinkText(c); text != "" {
			return text
		}
	}
	return ""
}

// nodeText flattens the text content of a subtree.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}
