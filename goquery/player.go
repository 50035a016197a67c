package goquery

import (
	"strconv"
	"strings"

	"github.com/CarlosDimare/soccerwiki"
	"github.com/PuerkitoBio/goquery"
)

// ParsePlayer extracts a full player profile from a player.php document.
// The primary pass walks the labeled text blocks of the page's main
// content container; a final document-wide pass fills any field still
// empty without ever overwriting a primary result.
func (p *Parser) ParsePlayer(htmlText, sourceURL string) (*soccerwiki.PlayerProfile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, soccerwiki.Errorf(soccerwiki.EINVALID, "failed to parse HTML: %v", err)
	}

	profile := &soccerwiki.PlayerProfile{
		PlayerID:  queryParam(sourceURL, "pid"),
		SourceURL: sourceURL,
	}
	bounds := soccerwiki.ProfileBounds()

	scope := profileScope(doc)
	if scope != nil {
		scope.Find("p.player-info-subtitle").Each(func(_ int, block *goquery.Selection) {
			parseLabeledBlock(block, profile, bounds)
		})

		if num := strings.TrimSpace(scope.Find("div.block-number span").First().Text()); isDigits(num) {
			profile.SquadNumber = num
		}

		if img := scope.Find("div.player-img img").First(); img.Length() > 0 {
			profile.Photo = imgSrc(img)
		}

		scope.Find("div.player-info-figure").Each(func(_ int, figure *goquery.Selection) {
			classifyFigure(figure, profile)
		})
	}

	// The labeled blocks missed the name: fall back to the page title,
	// formatted "Name - Soccer Wiki: ...".
	if profile.FullName == "" {
		title := doc.Find("title").First().Text()
		if before, _, ok := strings.Cut(title, " - "); ok {
			profile.FullName = strings.TrimSpace(before)
		}
	}

	documentFallback(doc, profile, bounds)

	return profile, nil
}

// profileScope returns the first of the ranked content containers.
func profileScope(doc *goquery.Document) *goquery.Selection {
	for _, selector := range []string{
		"div.player-info-corporate",
		"div.player-info-main",
		"main",
		"article",
		"div.container",
	} {
		if scope := doc.Find(selector).First(); scope.Length() > 0 {
			return scope
		}
	}
	return nil
}

// parseLabeledBlock dispatches one "Label : value" block on the known
// label catalogue. Each label owns its own parsing rule; the first label
// the block matches wins and the rest of the chain is skipped.
func parseLabeledBlock(block *goquery.Selection, profile *soccerwiki.PlayerProfile, bounds soccerwiki.Bounds) {
	text := block.Text()

	switch {
	case strings.Contains(text, "Nombre completo"):
		if value, ok := labeledValue(text); ok {
			profile.FullName = value
		}

	case strings.Contains(text, "Nombre de la camisa"):
		if value, ok := labeledValue(text); ok {
			profile.ShirtName = value
		}

	case strings.Contains(text, "Posición"):
		value, ok := labeledValue(text)
		if !ok {
			return
		}
		if code, position := positionSpan(block); position != "" {
			profile.PositionCode = code
			profile.Position = position
		} else {
			profile.Position = value
		}

	case strings.Contains(text, "Valoración"):
		value, ok := labeledValue(text)
		if !ok {
			return
		}
		if m := reRatingNum.FindStringSubmatch(value); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && bounds.Accept(soccerwiki.FieldRating, n) {
				profile.Rating = strconv.Itoa(n)
			}
		}

	case strings.Contains(text, "Edad"):
		value, ok := labeledValue(text)
		if !ok {
			return
		}
		// Compound value: a leading integer plus a parenthesized birth
		// date, e.g. "36 (Jun 25, 1989)".
		if m := reAgeLead.FindStringSubmatch(value); m != nil {
			profile.Age = m[1]
		}
		if m := reParen.FindStringSubmatch(value); m != nil {
			profile.BirthDate = strings.TrimSpace(m[1])
		}

	case strings.Contains(text, "Nación"), strings.Contains(text, "Nacionalidad"):
		value, ok := labeledValue(text)
		if !ok {
			return
		}
		if code := flagCode(block); code != "" {
			profile.NationalityCode = code
		}
		// The value mixes the country name with the flag link's text;
		// strip the link text and keep the remainder.
		if link := block.Find("a").First(); link.Length() > 0 {
			value = strings.TrimSpace(strings.Replace(value, strings.TrimSpace(link.Text()), "", 1))
		}
		profile.Nationality = value

	case strings.Contains(text, "Altura"):
		profile.Height = boundedNumber(text, soccerwiki.FieldHeight, bounds)

	case strings.Contains(text, "Peso"):
		profile.Weight = boundedNumber(text, soccerwiki.FieldWeight, bounds)

	case strings.Contains(text, "Club"):
		value, ok := labeledValue(text)
		if !ok {
			return
		}
		if link := block.Find(`a[href*="squad.php"]`).First(); link.Length() > 0 {
			profile.CurrentClub = strings.TrimSpace(link.Text())
			profile.CurrentClubID = queryParam(link.AttrOr("href", ""), "clubid")
		} else {
			profile.CurrentClub = value
		}

	case strings.Contains(text, "Squad Number"):
		if value, ok := labeledValue(text); ok {
			profile.SquadNumber = value
		}

	case strings.Contains(text, "Pie preferido"):
		if value, ok := labeledValue(text); ok {
			profile.PreferredFoot = value
		}

	case strings.Contains(text, "Hair Colour"):
		if value, ok := labeledValue(text); ok {
			profile.HairColour = value
		}

	case strings.Contains(text, "Hairstyle"):
		if value, ok := labeledValue(text); ok {
			profile.Hairstyle = value
		}

	case strings.Contains(text, "Skin Colour"):
		if value, ok := labeledValue(text); ok {
			profile.SkinColour = value
		}

	case strings.Contains(text, "Facial Hair"):
		if value, ok := labeledValue(text); ok {
			profile.FacialHair = value
		}
	}
}

// boundedNumber extracts the first 2-3 digit number from a labeled value
// and returns it only when the range validator accepts it.
func boundedNumber(text string, field soccerwiki.NumericField, bounds soccerwiki.Bounds) string {
	value, ok := labeledValue(text)
	if !ok {
		return ""
	}
	m := reBareNum.FindStringSubmatch(value)
	if m == nil {
		return ""
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || !bounds.Accept(field, n) {
		return ""
	}
	return strconv.Itoa(n)
}

// classifyFigure sorts a secondary figure image into its photo variant by
// keywords in the source path. Combined youth+profile wins over either
// keyword alone.
func classifyFigure(figure *goquery.Selection, profile *soccerwiki.PlayerProfile) {
	img := figure.Find("img").First()
	if img.Length() == 0 {
		return
	}
	src := imgSrc(img)
	lower := strings.ToLower(src)

	switch {
	case strings.Contains(lower, "action"):
		profile.ActionPhoto = src
	case strings.Contains(lower, "peak"):
		profile.PeakPhoto = src
	case strings.Contains(lower, "youth") && !strings.Contains(lower, "profile"):
		profile.YouthPhoto = src
	case strings.Contains(lower, "profile"):
		if strings.Contains(lower, "youth") {
			profile.YouthProfilePhoto = src
		} else {
			profile.ProfilePhoto = src
		}
	}
}

// documentFallback repeats detection document-wide for every field the
// primary pass left empty. It must never overwrite a populated field.
func documentFallback(doc *goquery.Document, profile *soccerwiki.PlayerProfile, bounds soccerwiki.Bounds) {
	doc.Find("span.squad-number-footer, span.squad-number, div.squad-number-footer, div.squad-number").
		EachWithBreak(func(_ int, badge *goquery.Selection) bool {
			num := strings.TrimSpace(badge.Text())
			if !isDigits(num) {
				return true
			}
			setIfEmpty(&profile.SquadNumber, num)
			return false
		})

	setIfEmpty(&profile.NationalityCode, flagCode(doc.Selection))

	if code, position := positionSpan(doc.Selection); position != "" {
		setIfEmpty(&profile.Position, position)
		setIfEmpty(&profile.PositionCode, code)
	}

	text := doc.Selection.Text()

	if profile.Height == "" {
		if m := reHeightCM.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && bounds.Accept(soccerwiki.FieldHeight, n) {
				profile.Height = strconv.Itoa(n)
			}
		}
	}
	if profile.Weight == "" {
		if m := reWeightKG.FindStringSubmatch(text); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && bounds.Accept(soccerwiki.FieldWeight, n) {
				profile.Weight = strconv.Itoa(n)
			}
		}
	}

	if profile.Age == "" {
		if m := reAgeYears.FindStringSubmatch(text); m != nil {
			profile.Age = m[1]
		}
	}

	if profile.BirthDate == "" {
		if m := reBirthMDY.FindStringSubmatch(text); m != nil {
			profile.BirthDate = m[1] + " " + m[2] + ", " + m[3]
		}
	}

	setIfEmpty(&profile.PreferredFoot, preferredFootFromText(text))

	if profile.Photo == "" {
		if img := doc.Find("img.player-img").First(); img.Length() > 0 {
			profile.Photo = imgSrc(img)
		}
	}
	if profile.Photo == "" && profile.PlayerID != "" {
		marker := "/player/" + profile.PlayerID
		doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
			if src := imgSrc(img); strings.Contains(src, marker) {
				profile.Photo = src
				return false
			}
			return true
		})
	}

	if profile.CurrentClub == "" {
		doc.Find(`a[href*="squad.php"]`).EachWithBreak(func(_ int, link *goquery.Selection) bool {
			name := strings.TrimSpace(link.Text())
			if len(name) <= 2 {
				return true
			}
			profile.CurrentClub = name
			profile.CurrentClubID = queryParam(link.AttrOr("href", ""), "clubid")
			return false
		})
	}
}
