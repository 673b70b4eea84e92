package core

// Kind identifies what occupies a cell for display purposes
// Player and chaser differ only in colour and in what supplies their next move
type Kind uint8

const (
	KindEmpty Kind = iota
	KindWall
	KindPlayer
	KindChaser
)

func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindPlayer:
		return "player"
	case KindChaser:
		return "chaser"
	default:
		return "empty"
	}
}

// Glyph is the single-character form used by text dumps
func (k Kind) Glyph() rune {
	switch k {
	case KindWall:
		return '#'
	case KindPlayer:
		return '@'
	case KindChaser:
		return 'Z'
	default:
		return '.'
	}
}
