package orbit

// Scorer receives the score and life changes produced by play.
type Scorer interface {
	AddScore(amount int)
	LoseLife()
}

// Player is the in-game Scorer: a score and a life count.
type Player struct {
	Score int
	Lives int
}

// NewPlayer creates a player with the given lives.
func NewPlayer(lives int) *Player {
	return &Player{Lives: lives}
}

// AddScore adds amount to the score.
func (p *Player) AddScore(amount int) {
	p.Score += amount
}

// LoseLife removes one life, stopping at zero.
func (p *Player) LoseLife() {
	if p.Lives > 0 {
		p.Lives--
	}
}

// Dead reports whether no lives remain.
func (p *Player) Dead() bool {
	return p.Lives <= 0
}
