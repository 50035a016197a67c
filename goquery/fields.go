package goquery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Field extractors shared by the assemblers. Each one searches a scope (a
// row, a content block, or the whole document) for a single semantic
// field and returns the empty string when nothing matches. Absence is
// never an error.

var (
	reHeightCM  = regexp.MustCompile(`(?i)(\d{2,3})\s*cm`)
	reWeightKG  = regexp.MustCompile(`(?i)(\d{2,3})\s*kg`)
	reBareNum   = regexp.MustCompile(`(\d{2,3})`)
	reRatingNum = regexp.MustCompile(`(\d{1,3})`)
	reCellNum   = regexp.MustCompile(`\b(\d{1,2})\b`)
	reBirthDMY  = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`)
	reBirthMDY  = regexp.MustCompile(`(\w+)\s+(\d{1,2}),?\s+(\d{4})`)
	reAgeLead   = regexp.MustCompile(`^(\d+)`)
	reAgeYears  = regexp.MustCompile(`(?i)(\d{1,2})\s*años?`)
	reParen     = regexp.MustCompile(`\(([^)]+)\)`)
)

// positionTitles is the catalogue of long-form position names the site
// uses in span title attributes, in both languages the markup mixes.
var positionTitles = map[string]bool{
	"Portero":        true,
	"Defensa":        true,
	"Centrocampista": true,
	"Delantero":      true,
	"Goalkeeper":     true,
	"Defender":       true,
	"Midfielder":     true,
	"Forward":        true,
}

// queryParam extracts one query parameter from a URL or href.
// Relative hrefs are fine; malformed ones yield the empty string.
func queryParam(rawURL, key string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		// Degrade to a substring scan so a single bad character in an
		// href does not cost us the id.
		if _, after, ok := strings.Cut(rawURL, key+"="); ok {
			value, _, _ := strings.Cut(after, "&")
			return value
		}
		return ""
	}
	return u.Query().Get(key)
}

// imgSrc returns an image's lazy-load source, preferring data-src over
// src the way the site's lazy loader populates them.
func imgSrc(img *goquery.Selection) string {
	if src, ok := img.Attr("data-src"); ok && src != "" {
		return src
	}
	src, _ := img.Attr("src")
	return src
}

// flagCode extracts a nationality code from a flag-icon element inside
// scope: the marker class "flag-icon-ar" encodes the code as its suffix.
func flagCode(scope *goquery.Selection) string {
	code := ""
	scope.Find(".flag-icon").EachWithBreak(func(_ int, flag *goquery.Selection) bool {
		class, _ := flag.Attr("class")
		for _, cls := range strings.Fields(class) {
			if cls != "flag-icon" && strings.HasPrefix(cls, "flag-icon-") {
				code = strings.ToUpper(strings.TrimPrefix(cls, "flag-icon-"))
				return false
			}
		}
		return false
	})
	return code
}

// positionSpan finds a span whose title attribute names a known position
// and returns (code, longForm): the span text is the short code, the
// title the human-readable position.
func positionSpan(scope *goquery.Selection) (code, position string) {
	scope.Find("span[title]").EachWithBreak(func(_ int, span *goquery.Selection) bool {
		title := strings.TrimSpace(span.AttrOr("title", ""))
		if !positionTitles[title] {
			return true
		}
		code = strings.TrimSpace(span.Text())
		position = title
		return false
	})
	return code, position
}

// squadBadge returns the text of a squad-number badge inside scope.
// When digitsOnly is set, non-numeric badge text is rejected.
func squadBadge(scope *goquery.Selection, digitsOnly bool) string {
	badge := scope.Find(".squad-number-footer, .squad-number").First()
	if badge.Length() == 0 {
		return ""
	}
	num := strings.TrimSpace(badge.Text())
	if digitsOnly && !isDigits(num) {
		return ""
	}
	return num
}

// playerPhoto returns the first image in scope whose source points at a
// player asset.
func playerPhoto(scope *goquery.Selection) string {
	photo := ""
	scope.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src := imgSrc(img)
		if strings.Contains(src, "player") {
			photo = src
			return false
		}
		return true
	})
	return photo
}

// labeledValue splits a "Label : value" text block on its first
// separator and returns the trimmed trailing text.
func labeledValue(text string) (string, bool) {
	_, after, ok := strings.Cut(text, ":")
	if !ok {
		return "", false
	}
	return strings.TrimSpace(after), true
}

// footFromCell detects the dominant-foot value from free cell text.
// Keyword order matches the roster assembler's historical chain.
func footFromCell(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "derecho"), strings.Contains(lower, "right"):
		return "Derecho"
	case strings.Contains(lower, "izquierdo"), strings.Contains(lower, "left"):
		return "Izquierdo"
	case strings.Contains(lower, "ambos"), strings.Contains(lower, "both"):
		return "Ambos"
	}
	return ""
}

// preferredFootFromText is the document-wide variant used by the profile
// assembler's final fallback pass. Case-sensitive, left checked first.
func preferredFootFromText(text string) string {
	switch {
	case strings.Contains(text, "Izquierdo"), strings.Contains(text, "Left"):
		return "Izquierdo"
	case strings.Contains(text, "Derecho"), strings.Contains(text, "Right"):
		return "Derecho"
	case strings.Contains(text, "Ambos"), strings.Contains(text, "Both"):
		return "Ambos"
	}
	return ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// setIfEmpty writes value into dst only when dst is still unset. All row
// and fallback extraction is first-writer-wins per field.
func setIfEmpty(dst *string, value string) {
	if *dst == "" && value != "" {
		*dst = value
	}
}
