package domain

import (
	"strings"
	"time"
)

// Domain contains the core result models served to API consumers.

// Source tags recording which upstream produced a record.
const (
	SourcePrimary  = "primary"
	SourceFallback = "fallback"
)

// PrizeDivision is one tier of the prize breakdown for a draw.
type PrizeDivision struct {
	Tier    string `json:"tier"`
	Match   string `json:"match"`
	Winners int    `json:"winners"`
	Prize   string `json:"prize"`
}

// DrawEntry is a single historical draw: date plus the numbers drawn.
type DrawEntry struct {
	Date        string `json:"date"`
	Numbers     []int  `json:"numbers"`
	BonusNumber *int   `json:"bonusNumber,omitempty"`
}

// LotteryRecord is the unit of output: one structurally complete snapshot
// of a lottery's current state. Once handed to the cache it is treated as
// immutable.
type LotteryRecord struct {
	Identifier     string          `json:"identifier"`
	DisplayName    string          `json:"displayName"`
	NextDrawAt     time.Time       `json:"nextDrawAt"`
	JackpotAmount  string          `json:"jackpotAmount"`
	LastDrawDate   string          `json:"lastDrawDate"`
	WinningNumbers []int           `json:"winningNumbers"`
	BonusNumber    *int            `json:"bonusNumber,omitempty"`
	HasBonusBall   bool            `json:"hasBonusBall"`
	PrizeDivisions []PrizeDivision `json:"prizeDivisions"`
	History        []DrawEntry     `json:"history"`
	Source         string          `json:"source"`
	Synthetic      bool            `json:"synthetic"`
}

// DisplayNameFor derives the presentational name from an identifier,
// e.g. "us-mega-millions" -> "US MEGA MILLIONS".
func DisplayNameFor(identifier string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(identifier), "-", " "))
}
