// Package evaluator scores poker hands of up to seven cards into a
// totally ordered strength value. Evaluation is pure: it never mutates
// its inputs and is safe to call repeatedly or in parallel.
package evaluator

import (
	"sort"

	"holdem/internal/deck"
)

// Category is the primary strength class of a hand.
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable hand description
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Score is a hand strength: a category plus tie-break kickers, ordered
// lexicographically. Two equal scores are a genuine tie (e.g. both
// players play an identical board straight).
type Score struct {
	Category Category
	Kickers  []int
}

// Compare returns 1 if s beats other, -1 if other beats s, 0 on a tie.
func (s Score) Compare(other Score) int {
	if s.Category != other.Category {
		if s.Category > other.Category {
			return 1
		}
		return -1
	}
	n := len(s.Kickers)
	if len(other.Kickers) < n {
		n = len(other.Kickers)
	}
	for i := 0; i < n; i++ {
		if s.Kickers[i] != other.Kickers[i] {
			if s.Kickers[i] > other.Kickers[i] {
				return 1
			}
			return -1
		}
	}
	// A longer kicker list carries strictly more information; it only
	// differs when comparing evaluations taken on different streets.
	switch {
	case len(s.Kickers) > len(other.Kickers):
		return 1
	case len(s.Kickers) < len(other.Kickers):
		return -1
	}
	return 0
}

// Evaluate scores the best hand formed from two hole cards and up to
// five community cards. Scores from different street depths remain
// comparable; showdown always sees seven cards.
func Evaluate(hole, community []deck.Card) Score {
	cards := make([]deck.Card, 0, len(hole)+len(community))
	cards = append(cards, hole...)
	cards = append(cards, community...)
	return bestHand(cards)
}

func bestHand(cards []deck.Card) Score {
	var rankCounts [15]int
	var suitCounts [4]int
	suitRanks := [4][]int{}
	for _, c := range cards {
		rankCounts[c.Rank]++
		suitCounts[c.Suit]++
		suitRanks[c.Suit] = append(suitRanks[c.Suit], int(c.Rank))
	}

	flushSuit := -1
	for suit, n := range suitCounts {
		if n >= 5 {
			flushSuit = suit
			break
		}
	}

	// Straight flush (including the wheel and broadway)
	if flushSuit >= 0 {
		if high := straightHigh(suitRanks[flushSuit]); high > 0 {
			if high == int(deck.Ace) {
				return Score{Category: RoyalFlush, Kickers: []int{high}}
			}
			return Score{Category: StraightFlush, Kickers: []int{high}}
		}
	}

	// Four of a kind, kicker is the best remaining card
	if quad := highestWithCount(rankCounts, 4, -1); quad > 0 {
		kickers := []int{quad}
		if k := highestRankExcept(rankCounts, quad); k > 0 {
			kickers = append(kickers, k)
		}
		return Score{Category: FourOfAKind, Kickers: kickers}
	}

	// Full house: with two triples the higher plays as the triple and
	// the next-highest pair-or-triple fills the pair slot.
	trips := highestWithAtLeast(rankCounts, 3, -1)
	if trips > 0 {
		if pair := highestWithAtLeast(rankCounts, 2, trips); pair > 0 {
			return Score{Category: FullHouse, Kickers: []int{trips, pair}}
		}
	}

	// Flush: top five cards of the flush suit
	if flushSuit >= 0 {
		ranks := append([]int(nil), suitRanks[flushSuit]...)
		sort.Sort(sort.Reverse(sort.IntSlice(ranks)))
		return Score{Category: Flush, Kickers: ranks[:5]}
	}

	// Straight: highest run of five consecutive unique ranks
	allRanks := make([]int, 0, len(cards))
	for r := 2; r <= 14; r++ {
		if rankCounts[r] > 0 {
			allRanks = append(allRanks, r)
		}
	}
	if high := straightHigh(allRanks); high > 0 {
		return Score{Category: Straight, Kickers: []int{high}}
	}

	if trips > 0 {
		return Score{Category: ThreeOfAKind, Kickers: append([]int{trips}, topRanksExcept(rankCounts, 2, trips)...)}
	}

	pairs := pairRanks(rankCounts)
	switch {
	case len(pairs) >= 2:
		kickers := []int{pairs[0], pairs[1]}
		if k := highestRankExcept(rankCounts, pairs[0], pairs[1]); k > 0 {
			kickers = append(kickers, k)
		}
		return Score{Category: TwoPair, Kickers: kickers}
	case len(pairs) == 1:
		return Score{Category: Pair, Kickers: append([]int{pairs[0]}, topRanksExcept(rankCounts, 3, pairs[0])...)}
	}

	return Score{Category: HighCard, Kickers: topRanksExcept(rankCounts, 5, -1)}
}

// straightHigh returns the high rank of the best five-card run among
// the given rank values, or 0 if none. The wheel (A-2-3-4-5) counts
// with a high of 5.
func straightHigh(ranks []int) int {
	var present [16]bool
	for _, r := range ranks {
		present[r] = true
	}
	for high := 14; high >= 6; high-- {
		run := true
		for r := high; r > high-5; r-- {
			if !present[r] {
				run = false
				break
			}
		}
		if run {
			return high
		}
	}
	if present[14] && present[2] && present[3] && present[4] && present[5] {
		return 5
	}
	return 0
}

// highestWithCount returns the highest rank held exactly n times,
// excluding except; 0 if none.
func highestWithCount(counts [15]int, n, except int) int {
	for r := 14; r >= 2; r-- {
		if r != except && counts[r] == n {
			return r
		}
	}
	return 0
}

// highestWithAtLeast returns the highest rank held at least n times,
// excluding except; 0 if none.
func highestWithAtLeast(counts [15]int, n, except int) int {
	for r := 14; r >= 2; r-- {
		if r != except && counts[r] >= n {
			return r
		}
	}
	return 0
}

// highestRankExcept returns the highest rank present outside the
// excluded ranks; 0 if none.
func highestRankExcept(counts [15]int, except ...int) int {
	for r := 14; r >= 2; r-- {
		if counts[r] == 0 {
			continue
		}
		skip := false
		for _, e := range except {
			if r == e {
				skip = true
				break
			}
		}
		if !skip {
			return r
		}
	}
	return 0
}

// topRanksExcept returns up to n distinct ranks in descending order,
// skipping except.
func topRanksExcept(counts [15]int, n, except int) []int {
	out := make([]int, 0, n)
	for r := 14; r >= 2 && len(out) < n; r-- {
		if r != except && counts[r] > 0 {
			out = append(out, r)
		}
	}
	return out
}

// pairRanks returns ranks held exactly twice, descending.
func pairRanks(counts [15]int) []int {
	var out []int
	for r := 14; r >= 2; r-- {
		if counts[r] == 2 {
			out = append(out, r)
		}
	}
	return out
}
