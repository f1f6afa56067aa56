package variants

import "strings"

// displayNames maps variant ids to the names shown to players.
var displayNames = map[string]string{
	"antichess":            "antichess",
	"antichess960":         "antichess960",
	"losers":               "losers",
	"losers960":            "losers960",
	"anti_antichess":       "anti-antichess",
	"anti_antichess960":    "anti-antichess960",
	"antiatomic":           "antiatomic",
	"antihouse":            "antihouse",
	"antipawns":            "antipawns",
	"antiplacement":        "antiplacement",
	"coffeehouse":          "coffeehouse",
	"coffeehill":           "coffee-hill",
	"coffee_3check":        "coffee-3check",
	"coffeerace":           "coffee-race",
	"atomic_giveaway_hill": "atomic giveaway hill",
}

// DisplayName returns the lower-case display name for a variant id.
// Ids without a registered name have underscores replaced by spaces.
func DisplayName(variant string) string {
	if name, ok := displayNames[variant]; ok {
		return name
	}
	return strings.ReplaceAll(variant, "_", " ")
}
