package soccerwiki

import "strings"

// PageKind identifies which of the three known page shapes a URL refers to.
type PageKind string

// Known page kinds. The zero value means the URL matched none of them.
const (
	KindUnknown  PageKind = ""
	KindClubList PageKind = "clubs"
	KindRoster   PageKind = "squad"
	KindPlayer   PageKind = "player"
)

// DetectPageKind classifies a URL by the site's page scripts.
// URLs matching none of the known shapes fail fast with EINVALID;
// no partial record is ever produced for them.
func DetectPageKind(rawURL string) (PageKind, error) {
	switch {
	case strings.Contains(rawURL, "country.php"):
		return KindClubList, nil
	case strings.Contains(rawURL, "squad.php"):
		return KindRoster, nil
	case strings.Contains(rawURL, "player.php"):
		return KindPlayer, nil
	}
	return KindUnknown, Errorf(EINVALID, "unrecognized page URL %q", rawURL)
}
