package namesource

// Word lists for memorable name generation. Words are short, lowercase ASCII
// so the resulting names stay filesystem-safe on every platform.
var adjectives = []string{
	"amber", "bold", "brisk", "calm", "clever", "crisp", "dusty", "eager",
	"early", "faded", "fuzzy", "gentle", "glad", "grand", "happy", "hardy",
	"hasty", "humble", "keen", "late", "lively", "lone", "loud", "lucky",
	"mellow", "merry", "misty", "neat", "nimble", "odd", "pale", "plain",
	"proud", "quick", "quiet", "rapid", "rough", "round", "rustic", "sharp",
	"shy", "sleepy", "smooth", "snug", "steady", "stout", "swift", "witty",
}

var nouns = []string{
	"badger", "bat", "beaver", "bee", "bison", "crane", "crab", "deer",
	"dove", "duck", "eagle", "eel", "elk", "falcon", "ferret", "finch",
	"fox", "frog", "gecko", "goose", "hare", "hawk", "heron", "ibis",
	"koala", "lark", "lemur", "lynx", "mole", "moose", "moth", "newt",
	"otter", "owl", "perch", "pike", "quail", "raven", "robin", "seal",
	"shrew", "snail", "stork", "swan", "tapir", "trout", "vole", "wren",
}
