package lotteries

import (
	"fmt"
	"strings"

	"github.com/joelapexsolutions/lottery-api-service/internal/domain"
)

// Rules captures the number format of one lottery: how many main balls are
// drawn, the number universes, and the presentation defaults used when
// extraction comes up empty.
type Rules struct {
	MainBalls      int
	MaxNumber      int
	MaxBonus       int
	HasBonusBall   bool
	CadenceDays    int
	DefaultJackpot string
}

// Documented defaults for identifiers without a tuned entry.
const (
	defaultMainBalls   = 6
	defaultMaxNumber   = 50
	defaultMaxBonus    = 20
	defaultCadenceDays = 7
)

// fiveBallFamily lists the identifiers whose main draw is 5 numbers;
// everything else draws 6.
var fiveBallFamily = map[string]bool{
	"us-mega-millions":  true,
	"us-powerball":      true,
	"za-powerball":      true,
	"za-powerball-plus": true,
	"euro-jackpot":      true,
}

// bonusBallFamily is the fixed membership set of identifiers whose format
// includes a secondary ball.
var bonusBallFamily = map[string]bool{
	"us-mega-millions":  true,
	"us-powerball":      true,
	"za-powerball":      true,
	"za-powerball-plus": true,
	"za-lotto":          true,
	"uk-lotto":          true,
	"euro-jackpot":      true,
}

// tunedRules carries the per-identifier number universes where the generic
// defaults would produce implausible draws.
var tunedRules = map[string]Rules{
	"us-powerball":      {MainBalls: 5, MaxNumber: 69, MaxBonus: 26, HasBonusBall: true, CadenceDays: 3, DefaultJackpot: "$20,000,000"},
	"us-mega-millions":  {MainBalls: 5, MaxNumber: 70, MaxBonus: 25, HasBonusBall: true, CadenceDays: 3, DefaultJackpot: "$20,000,000"},
	"za-powerball":      {MainBalls: 5, MaxNumber: 50, MaxBonus: 20, HasBonusBall: true, CadenceDays: 3, DefaultJackpot: "R5,000,000"},
	"za-powerball-plus": {MainBalls: 5, MaxNumber: 50, MaxBonus: 20, HasBonusBall: true, CadenceDays: 3, DefaultJackpot: "R2,000,000"},
	"za-lotto":          {MainBalls: 6, MaxNumber: 52, MaxBonus: 52, HasBonusBall: true, CadenceDays: 3, DefaultJackpot: "R3,000,000"},
	"uk-lotto":          {MainBalls: 6, MaxNumber: 59, MaxBonus: 59, HasBonusBall: true, CadenceDays: 3, DefaultJackpot: "£2,000,000"},
	"euro-jackpot":      {MainBalls: 5, MaxNumber: 50, MaxBonus: 12, HasBonusBall: true, CadenceDays: 3, DefaultJackpot: "€10,000,000"},
}

// RulesFor returns the number-format rules for an identifier. Unknown
// identifiers get the documented generic defaults, with the ball count and
// bonus membership still honoring the family sets.
func RulesFor(identifier string) Rules {
	id := strings.ToLower(strings.TrimSpace(identifier))
	if r, ok := tunedRules[id]; ok {
		return r
	}

	r := Rules{
		MainBalls:      defaultMainBalls,
		MaxNumber:      defaultMaxNumber,
		MaxBonus:       defaultMaxBonus,
		HasBonusBall:   bonusBallFamily[id],
		CadenceDays:    defaultCadenceDays,
		DefaultJackpot: defaultJackpotFor(id),
	}
	if fiveBallFamily[id] {
		r.MainBalls = 5
	}
	return r
}

// defaultJackpotFor picks the per-region default jackpot by identifier prefix.
func defaultJackpotFor(id string) string {
	switch {
	case strings.HasPrefix(id, "us-"):
		return "$1,000,000"
	case strings.HasPrefix(id, "za-"):
		return "R1,000,000"
	case strings.HasPrefix(id, "uk-"):
		return "£1,000,000"
	case strings.HasPrefix(id, "euro"):
		return "€1,000,000"
	default:
		return "$1,000,000"
	}
}

// DefaultDivisions builds the identifier-family default prize table used
// when no division table can be extracted. Never returns an empty slice.
func DefaultDivisions(identifier string) []domain.PrizeDivision {
	rules := RulesFor(identifier)
	currency := currencySymbol(rules.DefaultJackpot)

	bonusLabel := "Bonus"
	if strings.HasPrefix(strings.ToLower(identifier), "us-") {
		bonusLabel = "Powerball"
		if strings.Contains(identifier, "mega") {
			bonusLabel = "Mega Ball"
		}
	}

	amounts := []string{"10,000,000", "250,000", "55,000", "6,500", "300", "120", "50", "20"}
	divisions := make([]domain.PrizeDivision, 0, rules.MainBalls+2)
	div := 1
	for match := rules.MainBalls; match >= rules.MainBalls-3 && match > 0; match-- {
		if rules.HasBonusBall {
			divisions = append(divisions, domain.PrizeDivision{
				Tier:    fmt.Sprintf("Division %d", div),
				Match:   fmt.Sprintf("%d + %s", match, bonusLabel),
				Winners: 0,
				Prize:   currency + amounts[(div-1)%len(amounts)],
			})
			div++
		}
		divisions = append(divisions, domain.PrizeDivision{
			Tier:    fmt.Sprintf("Division %d", div),
			Match:   fmt.Sprintf("%d", match),
			Winners: 0,
			Prize:   currency + amounts[(div-1)%len(amounts)],
		})
		div++
	}
	return divisions
}

func currencySymbol(jackpot string) string {
	for _, sym := range []string{"$", "R", "£", "€"} {
		if strings.HasPrefix(jackpot, sym) {
			return sym
		}
	}
	return "$"
}
