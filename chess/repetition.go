package chess

// checkRepetition implements the repetition rule exactly as specified in
// §4.6 — deliberately weaker than FIDE threefold, and deliberately NOT the
// teacher's map-based "same (pieces, rights, legal moves) seen three times"
// scheme (see DESIGN.md "repetition semantics"). A two-ply pattern is
// repeated when the move just played matches the move eight plies earlier
// and the move four plies earlier — the same (from, to) played three times
// at four-ply intervals. A single-shot latch records the first match; the
// very next move that again matches both ancestors declares the draw. Any
// other move clears the latch.
func checkRepetition(p *Position) bool {
	n := len(p.History)
	if n < 9 {
		p.RepetitionLatch = false
		return false
	}

	justPlayed := p.History[n-1]
	fourPliesAgo := p.History[n-5]
	eightPliesAgo := p.History[n-9]

	matches := justPlayed.SameEndpoints(fourPliesAgo) && justPlayed.SameEndpoints(eightPliesAgo)
	if !matches {
		p.RepetitionLatch = false
		return false
	}

	if p.RepetitionLatch {
		return true
	}
	p.RepetitionLatch = true
	return false
}
