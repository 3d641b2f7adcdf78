package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Extraction primitives shared by both source profiles. Each step takes
// raw text (or a parsed document) and returns an optional typed value plus
// an ok flag; nothing in here propagates an error.

var (
	integerPattern = regexp.MustCompile(`[0-9]+`)
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
	spacePattern   = regexp.MustCompile(`\s+`)
	ordinalPattern = regexp.MustCompile(`(?i)([0-9])(st|nd|rd|th)`)
)

const (
	// sectionWindowBytes bounds how far past the anchor phrase the number
	// scan looks.
	sectionWindowBytes = 600

	historyDateLayout = "2006-01-02"
)

// collectIntegers returns every integer substring of s in document order.
func collectIntegers(s string) []int {
	matches := integerPattern.FindAllString(s, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// sectionAfter returns the text window following the first match of
// anchor, or ok=false if the phrase does not appear.
func sectionAfter(text string, anchor *regexp.Regexp) (string, bool) {
	loc := anchor.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	end := loc[1] + sectionWindowBytes
	if end > len(text) {
		end = len(text)
	}
	return text[loc[1]:end], true
}

// cleanCell strips residual markup and collapses whitespace in a table
// cell.
func cleanCell(s string) string {
	s = tagPattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(spacePattern.ReplaceAllString(s, " "))
}

// stripTags renders HTML to rough plain text when goquery cannot parse the
// document.
func stripTags(html string) string {
	return spacePattern.ReplaceAllString(tagPattern.ReplaceAllString(html, " "), " ")
}

// parseLenientDate tries the date formats seen across upstream markup.
// Ordinal suffixes are dropped and dot separators normalized first.
func parseLenientDate(token string) (time.Time, bool) {
	token = strings.TrimSpace(ordinalPattern.ReplaceAllString(token, "$1"))
	token = strings.ReplaceAll(token, ".", "/")

	layouts := []string{
		"2006-01-02",
		"02-01-2006",
		"2006/01/02",
		"02/01/2006",
		"01/02/2006",
		"2 January 2006",
		"2 Jan 2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, token); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// rowCells returns the cleaned cell texts of a table row.
func rowCells(row *goquery.Selection) []string {
	var cells []string
	row.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
		cells = append(cells, cleanCell(cell.Text()))
	})
	return cells
}

// looksLikeHeader reports whether a first-column cell reads as a table
// header rather than data. Cells carrying digits ("Division 1",
// "22/08/2026") are data even when they contain a marker word.
func looksLikeHeader(cell string, markers ...string) bool {
	if strings.ContainsAny(cell, "0123456789") {
		return false
	}
	lower := strings.ToLower(cell)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// parseWinnerCount reads a non-negative winner count from a cell,
// tolerating thousands separators and surrounding prose.
func parseWinnerCount(cell string) int {
	digits := integerPattern.FindAllString(strings.ReplaceAll(cell, ",", ""), -1)
	if len(digits) == 0 {
		return 0
	}
	v, err := strconv.Atoi(digits[0])
	if err != nil || v < 0 {
		return 0
	}
	return v
}
