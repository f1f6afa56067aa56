// Package registry describes what the variant engine already knows: its
// built-in variants and the option keys a variant section may override.
package registry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidValue indicates an option value that does not match its kind.
var ErrInvalidValue = errors.New("invalid option value")

// Kind classifies the values an option accepts.
type Kind int

const (
	// Bool accepts true or false.
	Bool Kind = iota
	// Int accepts a non-negative decimal integer.
	Int
	// Outcome accepts win, loss, draw or none.
	Outcome
	// PieceTypes accepts a run of piece letters, or * for every piece type.
	PieceTypes
	// PieceLetter accepts one piece letter, or - to remove the piece.
	PieceLetter
	// Squares accepts space-separated squares, rank wildcards (*4) and
	// file wildcards (d*).
	Squares
)

// String returns the kind name used in lint messages.
func (k Kind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Outcome:
		return "outcome"
	case PieceTypes:
		return "piece types"
	case PieceLetter:
		return "piece letter"
	case Squares:
		return "squares"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// BuiltinVariants lists the variants the engine defines without any INI input.
var BuiltinVariants = []string{
	"chess",
	"normal",
	"fischerandom",
	"nocastle",
	"giveaway",
	"antichess",
	"suicide",
	"losers",
	"codrus",
	"extinction",
	"kinglet",
	"threekings",
	"horde",
	"placement",
	"atomic",
	"crazyhouse",
	"loop",
	"chessgi",
	"bughouse",
	"koedem",
	"pocketknight",
	"kingofthehill",
	"racingkings",
	"3check",
	"5check",
	"knightmate",
	"nightrider",
	"grasshopper",
	"seirawan",
	"shouse",
}

// Options maps every recognized option key to its value kind.
var Options = map[string]Kind{
	// Move rules
	"mustCapture":         Bool,
	"mustDrop":            Bool,
	"castling":            Bool,
	"doubleStep":          Bool,
	"checking":            Bool,
	"chess960":            Bool,
	"flagMove":            Bool,
	"passOnStalemate":     Bool,
	"immobilityIllegal":   Bool,
	"promotionPieceTypes": PieceTypes,

	// Drops
	"pieceDrops":          Bool,
	"capturesToHand":      Bool,
	"dropChecks":          Bool,
	"firstRankPawnDrops":  Bool,
	"freeDrops":           Bool,
	"dropPromoted":        Bool,
	"pocketSize":          Int,
	"dropNoDoubled":       PieceLetter,

	// Atomic
	"blastOnCapture":   Bool,
	"blastImmuneTypes": PieceTypes,

	// Game end
	"stalemateValue":        Outcome,
	"checkmateValue":        Outcome,
	"extinctionValue":       Outcome,
	"nFoldValue":            Outcome,
	"extinctionPieceTypes":  PieceTypes,
	"extinctionPieceCount":  Int,
	"extinctionPseudoRoyal": Bool,
	"nMoveRule":             Int,
	"nFoldRule":             Int,
	"checkCounting":         Bool,
	"flagPiece":             PieceLetter,
	"whiteFlag":             Squares,
	"blackFlag":             Squares,

	// Piece letters
	"pawn":        PieceLetter,
	"knight":      PieceLetter,
	"bishop":      PieceLetter,
	"rook":        PieceLetter,
	"queen":       PieceLetter,
	"king":        PieceLetter,
	"commoner":    PieceLetter,
	"fers":        PieceLetter,
	"wazir":       PieceLetter,
	"alfil":       PieceLetter,
	"dabbaba":     PieceLetter,
	"amazon":      PieceLetter,
	"archbishop":  PieceLetter,
	"chancellor":  PieceLetter,
	"centaur":     PieceLetter,
	"grasshopper": PieceLetter,
	"nightrider":  PieceLetter,
}

var builtinSet = func() map[string]bool {
	m := make(map[string]bool, len(BuiltinVariants))
	for _, v := range BuiltinVariants {
		m[v] = true
	}
	return m
}()

// IsBuiltin reports whether name is one of the engine's built-in variants.
func IsBuiltin(name string) bool {
	return builtinSet[name]
}

// Lookup returns the kind of an option key.
func Lookup(key string) (Kind, bool) {
	k, ok := Options[key]
	return k, ok
}

// CheckValue reports whether value is acceptable for an option of the given kind.
func CheckValue(kind Kind, value string) error {
	var ok bool
	switch kind {
	case Bool:
		ok = value == "true" || value == "false"
	case Int:
		n, err := strconv.Atoi(value)
		ok = err == nil && n >= 0
	case Outcome:
		switch value {
		case "win", "loss", "draw", "none":
			ok = true
		}
	case PieceTypes:
		ok = value == "*" || isPieceLetters(value)
	case PieceLetter:
		ok = value == "-" || (len(value) == 1 && isPieceLetters(value))
	case Squares:
		ok = isSquareList(value)
	}

	if !ok {
		return fmt.Errorf("%w: %q is not a valid %s", ErrInvalidValue, value, kind)
	}
	return nil
}

func isPieceLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// isSquareList accepts boards up to 12 files (a-l) and 10 ranks.
func isSquareList(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	for _, f := range fields {
		if !isSquare(f) {
			return false
		}
	}
	return true
}

func isSquare(s string) bool {
	if len(s) < 2 {
		return false
	}
	file, rank := s[0], s[1:]
	if rank == "*" {
		return file >= 'a' && file <= 'l'
	}
	n, err := strconv.Atoi(rank)
	if err != nil || n < 1 || n > 10 || rank[0] == '0' {
		return false
	}
	return file == '*' || (file >= 'a' && file <= 'l')
}
