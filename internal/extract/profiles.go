package extract

import "regexp"

// SourceProfile parametrizes the shared extraction pipeline for one
// upstream source family: which phrase anchors the results section, how a
// jackpot figure is phrased, how draw dates are anchored, and whether the
// source exposes a usable prize-division table at all.
type SourceProfile struct {
	Name           string
	SectionAnchor  *regexp.Regexp
	JackpotPattern *regexp.Regexp
	DateAnchors    []*regexp.Regexp
	ParseDivisions bool
}

// dateToken matches slash/dash/dot-separated numerics or "day month year"
// prose (with optional ordinal suffix).
const dateToken = `([0-9]{1,4}[./-][0-9]{1,2}[./-][0-9]{2,4}|[0-9]{1,2}(?:st|nd|rd|th)?\s+[A-Za-z]{3,9}\s+[0-9]{4})`

// Primary is tuned to the main source family's markup conventions.
var Primary = SourceProfile{
	Name:           "primary",
	SectionAnchor:  regexp.MustCompile(`(?i)latest\s+results|winning\s+numbers|draw\s+results`),
	JackpotPattern: regexp.MustCompile(`(?i)jackpot[^$£€R0-9]{0,80}([$£€R]\s?[0-9][0-9,. ]*[0-9](?:\s*million)?)`),
	DateAnchors: []*regexp.Regexp{
		regexp.MustCompile(`(?i)draw\s*date[^0-9]{0,20}` + dateToken),
		regexp.MustCompile(`(?i)drawn\s+on[^0-9]{0,20}` + dateToken),
	},
	ParseDivisions: true,
}

// Fallback is tuned to the alternate source family. That upstream never
// exposes a reliable division table, so table extraction is skipped and
// the family default set substituted.
var Fallback = SourceProfile{
	Name:           "fallback",
	SectionAnchor:  regexp.MustCompile(`(?i)latest\s+draw|results\s+for|winning\s+numbers`),
	JackpotPattern: regexp.MustCompile(`(?i)(?:estimated\s+)?jackpot[^$£€R0-9]{0,80}([$£€R]\s?[0-9][0-9,. ]*[0-9](?:\s*million)?)`),
	DateAnchors: []*regexp.Regexp{
		regexp.MustCompile(`(?i)drawn\s+on[^0-9]{0,20}` + dateToken),
		regexp.MustCompile(`(?i)date\s+of\s+draw[^0-9]{0,20}` + dateToken),
		regexp.MustCompile(`(?i)draw\s*date[^0-9]{0,20}` + dateToken),
	},
	ParseDivisions: false,
}
