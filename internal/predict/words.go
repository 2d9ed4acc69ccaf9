package predict

// defaultWords is the built-in completion vocabulary: common conversational
// words reachable by fingerspelling, ordered roughly by expected frequency.
// Extending it is a code change, not runtime configuration.
var defaultWords = []string{
	"HELLO",
	"HI",
	"YES",
	"NO",
	"THANK",
	"THANKS",
	"PLEASE",
	"SORRY",
	"HELP",
	"STOP",
	"GOOD",
	"MORNING",
	"AFTERNOON",
	"EVENING",
	"NIGHT",
	"BYE",
	"GOODBYE",
	"WELCOME",
	"FRIEND",
	"FAMILY",
	"MOTHER",
	"FATHER",
	"SISTER",
	"BROTHER",
	"BABY",
	"LOVE",
	"LIKE",
	"WANT",
	"NEED",
	"HAVE",
	"THAT",
	"THE",
	"THIS",
	"THEY",
	"THEM",
	"THERE",
	"WHAT",
	"WHEN",
	"WHERE",
	"WHO",
	"WHY",
	"HOW",
	"WITH",
	"WITHOUT",
	"WATER",
	"FOOD",
	"EAT",
	"DRINK",
	"MILK",
	"BREAD",
	"MORE",
	"AGAIN",
	"FINISH",
	"DONE",
	"WORK",
	"SCHOOL",
	"HOME",
	"HOUSE",
	"TIME",
	"TODAY",
	"TOMORROW",
	"YESTERDAY",
	"NOW",
	"LATER",
	"NAME",
	"MY",
	"YOUR",
	"YOU",
	"ME",
	"WE",
	"US",
	"IT",
	"AND",
	"BUT",
	"CAN",
	"WILL",
	"GO",
	"COME",
	"SIT",
	"STAND",
	"WAIT",
	"LOOK",
	"SEE",
	"HEAR",
	"FEEL",
	"HAPPY",
	"SAD",
	"ANGRY",
	"TIRED",
	"SICK",
	"FINE",
	"OK",
}
