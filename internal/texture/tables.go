package texture

// typoEntry maps a canonical phrase to its common misspellings.
type typoEntry struct {
	canonical string
	variants  []string
}

// Kept as an ordered slice so the scan order is stable; the abbreviation pass
// shuffles its own iteration per call.
var typoTable = []typoEntry{
	{"que", []string{"ke", "qu"}},
	{"qui", []string{"ki"}},
	{"quoi", []string{"koi"}},
	{"avec", []string{"ac", "av"}},
	{"beaucoup", []string{"bcp", "bocou"}},
	{"quelque", []string{"kelke"}},
	{"pourquoi", []string{"pk", "pkoi"}},
	{"parce que", []string{"pcq", "pcke"}},
	{"c'est", []string{"c", "ces", "cé"}},
	{"aussi", []string{"ossi"}},
	{"maintenant", []string{"mtn", "maintenan"}},
	{"peut-être", []string{"ptet", "ptetre", "peut etre"}},
	{"vraiment", []string{"vrmt", "vraimen"}},
	{"quelqu'un", []string{"kelkun", "qqun"}},
	{"quelque chose", []string{"kelke choz", "qqch"}},
	{"toujours", []string{"tjrs", "tjs"}},
	{"jamais", []string{"jamé", "jms"}},
	{"comment", []string{"commen", "comm"}},
	{"très", []string{"trè", "tré"}},
	{"après", []string{"apré", "aprè"}},
}

var abbreviationTable = []typoEntry{
	{"salut", []string{"slt"}},
	{"bonjour", []string{"bjr"}},
	{"bonsoir", []string{"bsr"}},
	{"beaucoup", []string{"bcp"}},
	{"pourquoi", []string{"pk"}},
	{"quelqu'un", []string{"qqun"}},
	{"quelque chose", []string{"qqch"}},
	{"aujourd'hui", []string{"ajd"}},
	{"d'accord", []string{"dacc", "d'acc"}},
	{"je sais pas", []string{"jsp"}},
	{"maintenant", []string{"mtn"}},
	{"toujours", []string{"tjrs"}},
	{"vraiment", []string{"vrmt"}},
	{"rien", []string{"r"}},
	{"pas grave", []string{"pg"}},
}

var hesitations = []string{"euh", "hmm", "bah", "ben"}

var selfCorrections = []string{"*enfin", "*bref", "*voila"}

// repeatableChars are the vowel-like characters eligible for elongation.
var repeatableChars = "aeiouh"
