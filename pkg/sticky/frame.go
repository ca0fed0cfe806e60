package sticky

// Frame is one cycle's complete view of the world: the geometry snapshot
// plus the strategy, layout state, and translate offset that were in force
// when the snapshot was taken.
//
// The controller holds exactly two frames — current and previous — and
// replaces the previous one wholesale at the end of every cycle. The State
// field is always one of the five concrete states; a Rest cycle commits the
// fresh snapshot with the prior state carried over.
type Frame struct {
	Snapshot   Snapshot
	Strategy   Strategy
	State      State
	TranslateY float64
}
