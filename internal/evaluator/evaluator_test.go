package evaluator

import (
	"fmt"
	"testing"

	poker "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdem/internal/deck"
	"holdem/internal/randutil"
)

func evalCards(t *testing.T, hole, community string) Score {
	t.Helper()
	return Evaluate(deck.MustParseCards(hole), deck.MustParseCards(community))
}

func TestCategories(t *testing.T) {
	tests := []struct {
		name      string
		hole      string
		community string
		want      Category
	}{
		{"royal flush", "As Ks", "Qs Js Ts 2h 3d", RoyalFlush},
		{"straight flush", "9h 8h", "7h 6h 5h Ad Kc", StraightFlush},
		{"steel wheel", "Ah 2h", "3h 4h 5h Kc Qd", StraightFlush},
		{"four of a kind", "Ac Ad", "Ah As Kd 2c 3h", FourOfAKind},
		{"full house", "Kc Kd", "Kh 2s 2d 9c 4h", FullHouse},
		{"flush", "Ac 9c", "Kc 5c 2c 8d 7h", Flush},
		{"straight", "9c 8d", "7h 6s 5c Kd Ah", Straight},
		{"wheel", "Ac 2d", "3h 4s 5c Kd 9h", Straight},
		{"three of a kind", "7c 7d", "7h Ks 2d 9c 4h", ThreeOfAKind},
		{"two pair", "Ac Ad", "Kh Ks 2d 9c 4h", TwoPair},
		{"pair", "Ac Ad", "Kh Qs 2d 9c 4h", Pair},
		{"high card", "Ac Kd", "Qh Js 2d 9c 4h", HighCard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := evalCards(t, tt.hole, tt.community)
			assert.Equal(t, tt.want, got.Category, "kickers=%v", got.Kickers)
		})
	}
}

func TestRoyalFlushBeatsLowerStraightFlush(t *testing.T) {
	royal := evalCards(t, "As Ks", "Qs Js Ts 2h 3d")
	nine := evalCards(t, "9h 8h", "7h 6h 5h 2s 3d")
	assert.Equal(t, 1, royal.Compare(nine))
	assert.Equal(t, -1, nine.Compare(royal))
}

func TestWheelIsLowestStraight(t *testing.T) {
	wheel := evalCards(t, "Ac 2d", "3h 4s 5c Kd 9h")
	six := evalCards(t, "6c 2d", "3h 4s 5c Kd 9h")
	assert.Equal(t, Straight, wheel.Category)
	assert.Equal(t, Straight, six.Category)
	assert.Equal(t, 1, six.Compare(wheel))
}

func TestTwoTriplesPlayAsFullHouse(t *testing.T) {
	// Sevens full of fives, not fives full of sevens
	got := evalCards(t, "7c 7d", "7h 5s 5d 5c Kh")
	require.Equal(t, FullHouse, got.Category)
	assert.Equal(t, []int{7, 5}, got.Kickers)
}

func TestFullHousePairSlotPrefersHigherPair(t *testing.T) {
	got := evalCards(t, "2c 2d", "2h Ks Kd 9c 9h")
	require.Equal(t, FullHouse, got.Category)
	assert.Equal(t, []int{2, 13}, got.Kickers)
}

func TestTwoPairKickerMayBeThirdPairRank(t *testing.T) {
	// Pairs of aces, kings and queens: queen plays as the kicker
	got := evalCards(t, "Ac Ad", "Kh Ks Qd Qc 2h")
	require.Equal(t, TwoPair, got.Category)
	assert.Equal(t, []int{14, 13, 12}, got.Kickers)
}

func TestQuadsKickerIsBestRemaining(t *testing.T) {
	got := evalCards(t, "Ac Ad", "Ah As Kd Qc 2h")
	require.Equal(t, FourOfAKind, got.Category)
	assert.Equal(t, []int{14, 13}, got.Kickers)
}

func TestBoardPlaysIsATie(t *testing.T) {
	board := "Ts Js Qs Ks As"
	a := evalCards(t, "2c 3d", board)
	b := evalCards(t, "4h 5c", board)
	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, RoyalFlush, a.Category)
}

func TestKickerBreaksTie(t *testing.T) {
	board := "Kh Qs 2d 9c 4h"
	aceKicker := evalCards(t, "Kc Ad", board)
	jackKicker := evalCards(t, "Kd Jc", board)
	require.Equal(t, Pair, aceKicker.Category)
	assert.Equal(t, 1, aceKicker.Compare(jackKicker))
}

func TestCompareIsAntisymmetric(t *testing.T) {
	a := evalCards(t, "Ac Kd", "Qh Js 2d 9c 4h")
	b := evalCards(t, "7c 7d", "Qh Js 2d 9c 4h")
	assert.Equal(t, -a.Compare(b), b.Compare(a))
}

// toReference converts to the reference library's representation,
// which runs aces low in card encoding.
func toReference(t *testing.T, c deck.Card) poker.Card {
	t.Helper()
	suits := map[deck.Suit]poker.Suit{
		deck.Spades:   poker.Spade,
		deck.Hearts:   poker.Heart,
		deck.Diamonds: poker.Diamond,
		deck.Clubs:    poker.Club,
	}
	r := poker.Rank(c.Rank)
	if c.Rank == deck.Ace {
		r = poker.Rank(1)
	}
	card, err := poker.MakeCard(suits[c.Suit], r)
	require.NoError(t, err)
	return card
}

// TestAgainstReferenceEvaluator deals random two-player showdowns and
// checks the comparison outcome against paulhankin's evaluator, where
// a higher Eval7 score wins.
func TestAgainstReferenceEvaluator(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		t.Run(fmt.Sprintf("seed%d", seed), func(t *testing.T) {
			d := deck.New(randutil.New(seed))
			dealt, err := d.Deal(9)
			require.NoError(t, err)

			holeA, holeB, board := dealt[:2], dealt[2:4], dealt[4:]
			scoreA := Evaluate(holeA, board)
			scoreB := Evaluate(holeB, board)

			var sevenA, sevenB [7]poker.Card
			for i, c := range append(append([]deck.Card{}, holeA...), board...) {
				sevenA[i] = toReference(t, c)
			}
			for i, c := range append(append([]deck.Card{}, holeB...), board...) {
				sevenB[i] = toReference(t, c)
			}
			refA, refB := poker.Eval7(&sevenA), poker.Eval7(&sevenB)

			want := 0
			if refA > refB {
				want = 1
			} else if refA < refB {
				want = -1
			}
			assert.Equal(t, want, scoreA.Compare(scoreB),
				"A=%v(%v) B=%v(%v) board=%v", holeA, scoreA, holeB, scoreB, board)
		})
	}
}
