package extract

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/joelapexsolutions/lottery-api-service/internal/domain"
	"github.com/joelapexsolutions/lottery-api-service/internal/schedule"
	"github.com/joelapexsolutions/lottery-api-service/internal/synth"
	"github.com/joelapexsolutions/lottery-api-service/pkg/lotteries"
)

const (
	maxHTMLBodyBytes = 1 << 20 // 1 MiB
	historyLimit     = 50
)

// Extract assembles a structurally complete LotteryRecord from raw HTML.
// It never fails on heuristics finding nothing — missing fields degrade to
// defaults or synthesized data. The one failure path is an internal fault
// (panic) inside a parse step, surfaced as *ExtractionError for the
// orchestrator to catch.
func Extract(html string, lot lotteries.Lottery, profile SourceProfile, now time.Time) (rec *domain.LotteryRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec = nil
			err = &ExtractionError{Identifier: lot.ID, Cause: r}
		}
	}()

	if len(html) > maxHTMLBodyBytes {
		html = html[:maxHTMLBodyBytes]
	}

	rules := lotteries.RulesFor(lot.ID)
	rec = seedRecord(lot, rules, now)

	var doc *goquery.Document
	if d, derr := goquery.NewDocumentFromReader(strings.NewReader(html)); derr == nil {
		doc = d
	}

	// Tags become spaces so adjacent inline elements keep their word
	// boundaries; a DOM Text() join would run <span>5</span><span>12</span>
	// together into a single token.
	text := stripTags(html)

	if main, bonus, ok := extractNumbers(text, profile, rules); ok {
		rec.WinningNumbers = main
		rec.BonusNumber = bonus
	} else {
		rec.WinningNumbers, rec.BonusNumber = synth.Numbers(rules)
		rec.Synthetic = true
	}

	if jackpot, ok := extractJackpot(text, profile); ok {
		rec.JackpotAmount = jackpot
	}

	if drawDate, ok := extractDrawDate(text, profile); ok {
		rec.LastDrawDate = drawDate
	}

	if doc != nil {
		if profile.ParseDivisions {
			if divisions := extractDivisions(doc); len(divisions) > 0 {
				rec.PrizeDivisions = divisions
			}
		}
		if history := extractHistory(doc, rules); len(history) > 0 {
			rec.History = history
		}
	}

	if len(rec.History) == 0 {
		rec.History = synth.History(rules, historyLimit, now)
	}

	return rec, nil
}

// seedRecord fills every field with its identifier-derived default so the
// record is complete before any heuristic runs.
func seedRecord(lot lotteries.Lottery, rules lotteries.Rules, now time.Time) *domain.LotteryRecord {
	rec := &domain.LotteryRecord{
		Identifier:     lot.ID,
		DisplayName:    domain.DisplayNameFor(lot.ID),
		NextDrawAt:     schedule.NextDraw(lot.ID, now),
		JackpotAmount:  rules.DefaultJackpot,
		LastDrawDate:   now.Format(historyDateLayout),
		HasBonusBall:   rules.HasBonusBall,
		PrizeDivisions: lotteries.DefaultDivisions(lot.ID),
	}
	return rec
}

// extractNumbers locates the results section and reads the winning
// numbers from it: the first N integers become the main numbers, the next
// one the bonus when the format has a bonus ball. Fewer than 5 integers in
// the section means no usable draw.
func extractNumbers(text string, profile SourceProfile, rules lotteries.Rules) ([]int, *int, bool) {
	section, ok := sectionAfter(text, profile.SectionAnchor)
	if !ok {
		return nil, nil, false
	}

	ints := collectIntegers(section)
	if len(ints) < 5 || len(ints) < rules.MainBalls {
		return nil, nil, false
	}

	main := append([]int(nil), ints[:rules.MainBalls]...)

	var bonus *int
	if rules.HasBonusBall {
		if len(ints) > rules.MainBalls {
			b := ints[rules.MainBalls]
			bonus = &b
		} else {
			// Invariant: bonus is present iff the format has one.
			_, bonus = synth.Numbers(rules)
		}
	}

	return main, bonus, true
}

// extractJackpot finds a currency-prefixed figure following the word
// "jackpot" and uses it verbatim.
func extractJackpot(text string, profile SourceProfile) (string, bool) {
	m := profile.JackpotPattern.FindStringSubmatch(text)
	if len(m) < 2 {
		return "", false
	}
	jackpot := strings.TrimSpace(m[1])
	if jackpot == "" {
		return "", false
	}
	return jackpot, true
}

// extractDrawDate finds the last draw date behind one of the profile's
// anchor phrases. A phrase whose date token fails to parse is simply
// skipped; date trouble never propagates.
func extractDrawDate(text string, profile SourceProfile) (string, bool) {
	for _, anchor := range profile.DateAnchors {
		m := anchor.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		if t, ok := parseLenientDate(m[1]); ok {
			return t.Format(historyDateLayout), true
		}
	}
	return "", false
}

// extractDivisions walks table rows with at least 4 cells, skipping header
// rows, and accumulates the prize-division breakdown.
func extractDivisions(doc *goquery.Document) []domain.PrizeDivision {
	var divisions []domain.PrizeDivision

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := rowCells(row)
		if len(cells) < 4 {
			return
		}
		if looksLikeHeader(cells[0], "division", "tier") {
			return
		}
		divisions = append(divisions, domain.PrizeDivision{
			Tier:    cells[0],
			Match:   cells[1],
			Winners: parseWinnerCount(cells[2]),
			Prize:   cells[3],
		})
	})

	return divisions
}

// extractHistory walks table rows with at least 2 cells: the first cell is
// the draw date, the rest carry the numbers. Rows whose date fails to
// parse are dropped. Document order is preserved (assumed newest-first)
// and the list is capped at historyLimit.
func extractHistory(doc *goquery.Document, rules lotteries.Rules) []domain.DrawEntry {
	var history []domain.DrawEntry

	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		if len(history) >= historyLimit {
			return
		}
		cells := rowCells(row)
		if len(cells) < 2 {
			return
		}
		if looksLikeHeader(cells[0], "date", "draw") {
			return
		}
		drawDate, ok := parseLenientDate(cells[0])
		if !ok {
			return
		}

		ints := collectIntegers(strings.Join(cells[1:], " "))
		if len(ints) < rules.MainBalls {
			return
		}

		entry := domain.DrawEntry{
			Date:    drawDate.Format(historyDateLayout),
			Numbers: append([]int(nil), ints[:rules.MainBalls]...),
		}
		if rules.HasBonusBall && len(ints) > rules.MainBalls {
			b := ints[rules.MainBalls]
			entry.BonusNumber = &b
		}
		history = append(history, entry)
	})

	return history
}
