package synth

import (
	"math/rand"
	"sort"
	"time"

	"github.com/joelapexsolutions/lottery-api-service/internal/domain"
	"github.com/joelapexsolutions/lottery-api-service/pkg/lotteries"
)

// Package synth produces plausible, internally-consistent draw data when
// real extraction is unavailable or insufficient. Callers can distinguish
// generated records by the Synthetic flag on the assembled record.

const dateLayout = "2006-01-02"

// Numbers draws one set of main numbers (pairwise distinct, ascending,
// bounded by the rules' number universe) plus a bonus number when the
// format has one.
func Numbers(rules lotteries.Rules) ([]int, *int) {
	main := distinctDraw(rules.MainBalls, rules.MaxNumber)

	if !rules.HasBonusBall {
		return main, nil
	}
	bonus := rand.Intn(rules.MaxBonus) + 1
	return main, &bonus
}

// History generates count draw entries, newest first, stepping back one
// draw cadence per entry from today.
func History(rules lotteries.Rules, count int, now time.Time) []domain.DrawEntry {
	cadence := rules.CadenceDays
	if cadence <= 0 {
		cadence = 7
	}

	entries := make([]domain.DrawEntry, 0, count)
	for i := 0; i < count; i++ {
		numbers, bonus := Numbers(rules)
		entries = append(entries, domain.DrawEntry{
			Date:        now.AddDate(0, 0, -i*cadence).Format(dateLayout),
			Numbers:     numbers,
			BonusNumber: bonus,
		})
	}
	return entries
}

// distinctDraw rejection-samples n distinct integers from [1, max] and
// returns them sorted ascending.
func distinctDraw(n, max int) []int {
	if n <= 0 {
		return nil
	}
	if max < n {
		max = n
	}

	seen := make(map[int]bool, n)
	numbers := make([]int, 0, n)
	for len(numbers) < n {
		v := rand.Intn(max) + 1
		if seen[v] {
			continue
		}
		seen[v] = true
		numbers = append(numbers, v)
	}
	sort.Ints(numbers)
	return numbers
}
