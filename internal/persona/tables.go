package persona

// Location is a plausible French hometown with its département code.
type Location struct {
	City    string
	Region  string
	Country string
}

var frenchLocations = []Location{
	{"Paris", "75", "France"},
	{"Lyon", "69", "France"},
	{"Marseille", "13", "France"},
	{"Toulouse", "31", "France"},
	{"Nice", "06", "France"},
	{"Nantes", "44", "France"},
	{"Strasbourg", "67", "France"},
	{"Montpellier", "34", "France"},
	{"Bordeaux", "33", "France"},
	{"Lille", "59", "France"},
	{"Rennes", "35", "France"},
	{"Reims", "51", "France"},
	{"Toulon", "83", "France"},
	{"Grenoble", "38", "France"},
	{"Dijon", "21", "France"},
	{"Angers", "49", "France"},
	{"Nîmes", "30", "France"},
	{"Villeurbanne", "69", "France"},
	{"Clermont-Ferrand", "63", "France"},
	{"Le Havre", "76", "France"},
}

var masculineNames = []string{
	"Alex", "Thomas", "Nicolas", "Julien", "Maxime", "Antoine", "Pierre",
	"Paul", "Louis", "Hugo", "Lucas", "Nathan", "Enzo", "Léo", "Gabriel",
	"Arthur", "Jules", "Ethan", "Noah", "Tom",
}

var feminineNames = []string{
	"Emma", "Jade", "Louise", "Alice", "Chloé", "Lina", "Léa", "Manon",
	"Julia", "Zoé", "Camille", "Sarah", "Eva", "Inès", "Jeanne", "Margot",
	"Adèle", "Anna", "Rose", "Clara",
}

var neutralNames = []string{
	"Alex", "Sam", "Charlie", "Jordan", "Casey", "Morgan", "Taylor",
	"River", "Sage", "Quinn",
}

var interestsPool = []string{
	"jeux vidéo", "cinéma", "musique", "sport", "lecture", "cuisine",
	"voyages", "photo", "programmation", "manga", "anime", "séries", "bd",
	"dessin", "guitare", "piano", "foot", "basket", "tennis", "natation",
	"randonnée", "politique", "sciences", "histoire", "philo", "art",
	"mode", "déco",
}

var defaultDislikes = []string{"spam", "drama", "politique extrême", "trolls"}

var defaultExpressions = []string{
	"ah ouais", "c'est clair", "grave", "tout à fait", "exactement",
	"bah écoute", "en même temps", "du coup", "après bon", "n'empêche que",
}

var defaultGreetings = []string{
	"salut", "coucou", "yo", "hello", "re", "slt", "bonsoir", "bjr",
}

var defaultEmojis = []string{
	"😂", "😊", "🙄", "👍", "🤔", "😅", "🥰", "😎", "🔥", "💯",
}

var allWritingStyles = []string{"sms", "correct", "argot", "old_school"}

// writingPattern holds one writing style's substitutions. Content, not
// logic: swappable without touching behavior.
type writingPattern struct {
	replacements map[string][]string
	expressions  []string
	shortcuts    []string
}

var writingPatterns = map[string]writingPattern{
	"sms": {
		replacements: map[string][]string{
			"salut":         {"slt", "coucou", "yo"},
			"comment":       {"comm", "cmt"},
			"beaucoup":      {"bcp", "bocou"},
			"quelqu'un":     {"qqun", "kelkun"},
			"quelque chose": {"qqch", "kelke choz"},
			"pourquoi":      {"pk", "pkoi"},
			"parce que":     {"pcq", "pcke"},
			"aujourd'hui":   {"ajd", "aujourd8"},
			"c'est":         {"c", "cé"},
			"aussi":         {"ossi"},
			"avec":          {"ac", "av"},
			"vraiment":      {"vrmt"},
			"toujours":      {"tjrs", "tjs"},
			"jamais":        {"jamé", "jms"},
			"maintenant":    {"mtn"},
			"peut-être":     {"ptet", "ptetre"},
		},
		shortcuts: []string{"mdr", "lol", "ptdr", "jsp", "jpp", "brf", "oklm"},
	},
	"argot": {
		replacements: map[string][]string{
			"bien":    {"grave", "ouf"},
			"cool":    {"stylé", "chanmé", "ouf"},
			"nul":     {"pourri", "naze", "bidon"},
			"super":   {"grave", "de ouf", "mortel"},
			"bizarre": {"chelou", "zarb"},
			"cher":    {"salé"},
			"fatigué": {"crevé", "naze"},
			"énervé":  {"vénère", "chaud"},
			"fille":   {"meuf", "go"},
			"garçon":  {"mec", "gars"},
			"ami":     {"pote", "reuf"},
			"maison":  {"baraque"},
		},
		expressions: []string{"wesh", "tranquille", "grave", "de ouf", "ça passe"},
	},
	"old_school": {
		replacements: map[string][]string{
			"lol":     {"héhé", "hihi", "ah ah"},
			"cool":    {"chouette", "sympa"},
			"super":   {"génial", "formidable"},
			"nul":     {"pas terrible", "bof bof"},
			"bizarre": {"étrange", "curieux"},
		},
		expressions: []string{"ma foi", "en effet", "tout à fait", "certes"},
	},
}
