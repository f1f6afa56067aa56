// Package variants holds the antichess-family variant definitions handed to
// the variant engine.
//
// Ini is an INI document in the engine's dialect. Each section header has the
// form [name:base], where base is a variant the engine already knows, and the
// key = value lines below it override that base's rules. Nothing in this
// package reads the document; see the manifest package for a reader.
package variants

// Ini is the variant definition payload passed verbatim to the engine.
const Ini = `
# Anti-antichess: losing all pieces or getting stalemated loses.
[anti_antichess:giveaway]
extinctionValue = loss
stalemateValue = loss
castling = false

# Antichess and atomic combined, on top of atomic rules.
[antiatomic:atomic]
mustCapture = true
stalemateValue = win
extinctionValue = win
promotionPieceTypes = nbrqk
commoner = k
extinctionPieceTypes = *
castling = false

# Antichess and crazyhouse combined, on top of antichess rules.
[antihouse:giveaway]
pieceDrops = true
capturesToHand = true
pocketSize = 6
castling = false

# Antichess and crazyhouse combined, on top of crazyhouse rules.
[coffeehouse:crazyhouse]
mustCapture = true
castling = false

# Antichess and king of the hill combined.
[coffeehill:kingofthehill]
mustCapture = true
castling = false

# Antichess, atomic and king of the hill combined.
[atomic_giveaway_hill:giveaway]
blastOnCapture = true
flagPiece = k
whiteFlag = d4 e4 d5 e5
blackFlag = d4 e4 d5 e5
castling = false
`

// Names lists the sections defined in Ini, in document order.
var Names = []string{
	"anti_antichess",
	"antiatomic",
	"antihouse",
	"coffeehouse",
	"coffeehill",
	"atomic_giveaway_hill",
}
