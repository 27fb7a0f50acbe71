package responder

import "irchumanizer/internal/mind"

var casualResponses = []string{
	"ah ok je voi",
	"ouai c vrai ça",
	"mdr 😂",
	"jsp trop la",
	"ah bon? intéressant",
	"hmm pas sur",
	"lol",
	"c clair",
	"ptdr",
	"ah ouai d'acc",
	"mouai bof",
	"carrément !",
	"nan mais sérieux ?",
	"ça depend",
	"jpp de ce truc",
	"c'est chiant ça",
	"cool alors",
	"ah merde",
	"jsp quoi dire",
	"ça marche",
	"bon ok",
	"haha",
	"exactement",
	"nan c pas ça",
	"je croi pas",
	"peut etre oui",
}

var questionResponses = []string{
	"bonne question la",
	"aucun idée moi",
	"jsp du tout",
	"faut voir",
	"pourquoi tu demande ça ?",
	"ça depend de quoi tu parle",
	"c compliqué ton truc",
	"j'ai jamais testé",
	"va savoir",
	"bof je sai pas",
}

var greetingKeywords = []string{
	"salut", "hello", "bonjour", "bonsoir", "coucou", "hi", "hey",
}

var interrogativeWords = []string{
	"comment", "pourquoi", "quand", "où", "qui", "quoi",
}

// mentionResponses are bucketed by mood; "{name}" interpolates the sender.
var mentionResponses = map[mind.Mood][]string{
	mind.MoodNeutral: {
		"ouais ?",
		"tu me veux quoi {name} ?",
		"présent",
		"oui ?",
	},
	mind.MoodGood: {
		"yes {name} ?",
		"dis moi tout",
		"ouais je suis la !",
	},
	mind.MoodBad: {
		"quoi encore...",
		"hmm ?",
		"ouais bon",
	},
	mind.MoodExcited: {
		"ouiii ?",
		"vas y balance !",
		"je t'écoute !!",
	},
	mind.MoodTired: {
		"mmh ?",
		"ouais... je suivais pas",
		"hein ?",
	},
}

// reactionBucket is one emotional keyword table with its own fire gate.
type reactionBucket struct {
	keywords    []string
	responses   []string
	probability float64
}

var reactionBuckets = []reactionBucket{
	{
		keywords:    []string{"triste", "relou", "chiant", "deg ", "dégouté", "marre", "ça me saoule"},
		responses:   []string{"ah mince", "c'est relou ça", "courage", "oof"},
		probability: 0.3,
	},
	{
		keywords:    []string{"génial", "trop bien", "excellent", "trop cool", "la classe"},
		responses:   []string{"grave !", "trop cool", "excellent ça", "bien joué"},
		probability: 0.3,
	},
	{
		keywords:    []string{"sérieux ?", "incroyable", "wtf", "j'hallucine", "abusé"},
		responses:   []string{"ah ouais ?!", "sérieux ??", "j'y crois pas", "wtf"},
		probability: 0.35,
	},
	{
		keywords:    []string{"d'accord", "exactement", "pareil", "carrément", "tout à fait"},
		responses:   []string{"pareil", "c'est clair", "exactement", "tout pareil"},
		probability: 0.25,
	},
}

var firstContactWelcome = []string{
	"salut, on se connait ?",
	"hey, tu voulais quoi ?",
	"oh un mp, salut",
	"yo, c'est pour quoi ?",
}

var helpKeywords = []string{"aide", "help", "besoin d'un coup de main"}

var helpResponses = []string{
	"jsp si je peux aider mais dis toujours",
	"vas y explique",
	"euh je peux essayer, c'est quoi le souci ?",
}

var confidentialityKeywords = []string{"secret", "confidentiel", "entre nous", "dis le a personne"}

var confidentialityResponses = []string{
	"tkt ça reste entre nous",
	"motus",
	"je dirai rien promis",
}

var botIdentityKeywords = []string{"t'es un bot", "tu es un bot", "t es un bot", "es tu un bot", "un robot", "une ia", "une intelligence artificielle"}

var botIdentityResponses = []string{
	"mdr non pourquoi",
	"n'importe quoi lol",
	"euh non ? drôle de question",
	"on me la fait souvent celle la mdr",
}

var botLocationKeywords = []string{"tu habites où", "t'es où", "tu viens d'où", "t'habites ou"}

var farewellKeywords = []string{"bye", "a plus", "a+", "bonne nuit", "ciao", "je file", "bonne soirée"}

var farewellResponses = []string{
	"ciao",
	"a plus",
	"bonne soirée à toi",
	"bye bye",
}

var personalEngagementResponses = []string{
	"alors quoi de neuf ?",
	"tu fais quoi de beau ?",
	"raconte",
	"ça va toi ?",
}
