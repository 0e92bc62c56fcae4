package game

// Round represents a stage of the hand lifecycle
type Round int

const (
	Blinds Round = iota
	Preflop
	Flop
	Turn
	River
	Showdown
)

func (r Round) String() string {
	return [...]string{"blinds", "preflop", "flop", "turn", "river", "showdown"}[r]
}
