package domain

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestLotteryRecordJSONRoundTrip(t *testing.T) {
	bonus := 14
	historyBonus := 6
	rec := LotteryRecord{
		Identifier:     "us-powerball",
		DisplayName:    "US POWERBALL",
		NextDrawAt:     time.Date(2026, time.August, 29, 22, 59, 0, 0, time.UTC),
		JackpotAmount:  "$150,000,000",
		LastDrawDate:   "2026-08-22",
		WinningNumbers: []int{5, 12, 23, 38, 61},
		BonusNumber:    &bonus,
		HasBonusBall:   true,
		PrizeDivisions: []PrizeDivision{
			{Tier: "Division 1", Match: "5 + Powerball", Winners: 0, Prize: "$150,000,000"},
			{Tier: "Division 2", Match: "5", Winners: 3, Prize: "$1,000,000"},
		},
		History: []DrawEntry{
			{Date: "2026-08-22", Numbers: []int{5, 12, 23, 38, 61}, BonusNumber: &bonus},
			{Date: "2026-08-19", Numbers: []int{1, 9, 17, 33, 48}, BonusNumber: &historyBonus},
		},
		Source:    SourcePrimary,
		Synthetic: false,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got LotteryRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(rec, got) {
		t.Errorf("round trip changed the record:\n got %+v\nwant %+v", got, rec)
	}
}

func TestBonusNumberOmittedWhenAbsent(t *testing.T) {
	rec := LotteryRecord{
		Identifier:     "za-lotto",
		WinningNumbers: []int{4, 8, 15, 16, 23, 42},
	}

	data, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if _, present := raw["bonusNumber"]; present {
		t.Error("nil bonus number should be omitted from the payload")
	}
	if _, present := raw["hasBonusBall"]; !present {
		t.Error("hasBonusBall must always be emitted")
	}
}

func TestDisplayNameFor(t *testing.T) {
	cases := map[string]string{
		"us-mega-millions": "US MEGA MILLIONS",
		"za-powerball":     "ZA POWERBALL",
		" euro-jackpot ":   "EURO JACKPOT",
		"lotto":            "LOTTO",
	}
	for in, want := range cases {
		if got := DisplayNameFor(in); got != want {
			t.Errorf("DisplayNameFor(%q) = %q, want %q", in, got, want)
		}
	}
}
