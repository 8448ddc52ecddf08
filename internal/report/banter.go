package report

import "math/rand"

// LinePicker selects one line from a banter pool. Production uses
// RandomPicker; tests inject a fixed picker so output is deterministic.
type LinePicker func(lines []string) string

// RandomPicker picks uniformly at random.
func RandomPicker(lines []string) string {
	return lines[rand.Intn(len(lines))]
}

// FirstLine always picks the first line of the pool.
func FirstLine(lines []string) string {
	return lines[0]
}

var PraisesTop = []string{
	"Bow down, peasants. The juggernaut marches on.",
	"Not even Thanos could snap this streak away.",
	"The only thing scarier than this record is their waiver wire luck.",
	"Three weeks in and already acting like they own the trophy case.",
	"If dominance was a crime, you'd be serving life without parole.",
}

var RoastsDoormat = []string{
	"At this point, you're basically a bye week.",
	"Even AI auto-draft teams feel sorry for you.",
	"Your opponents don't prepare anymore - they just stretch.",
	"The only streak you're building is a losing one.",
	"ESPN just moved your highlight reel to the blooper section.",
}

var RoastsLucky = []string{
	"Frauds, the lot of you. Living on borrowed touchdowns.",
	"This record is faker than a $3 Rolex at a flea market.",
	"Winning matchups the same way toddlers win arguments: volume, not logic.",
	"The Fantasy Gods are carrying you like a drunk friend at 2am.",
	"You've got more plot armor than a main character in a Marvel movie.",
}

var RoastsUnlucky = []string{
	"Someone angered the fantasy gods. Try a blood sacrifice.",
	"You'd beat half the league every week... too bad you always play the wrong half.",
	"Your team's motto should be: 'So close, yet so useless.'",
	"This isn't bad luck anymore - it's a personal vendetta.",
	"You're basically the NFL version of Murphy's Law.",
}

var RoastsEasiest = []string{
	"Congrats on your cupcake diet. Enjoy those empty calories.",
	"Facing this schedule is like speedrunning Easy Mode.",
	"Your toughest opponent so far has been bye weeks.",
	"Padding your stats against charity cases, I see.",
	"This isn't a schedule - it's a fantasy daycare.",
}

var RoastsHardest = []string{
	"Forget fantasy football - you've been dropped into The Hunger Games.",
	"You're not playing matchups, you're facing war crimes.",
	"Your schedule is so brutal, even Dark Souls looks easy.",
	"Every week's a gauntlet, and you're the practice dummy.",
	"This isn't SOS, it's SOS - as in, send help.",
}

const closingWords = "Undefeateds, keep strutting. Winless, keep praying. " +
	"Middle pack, every start/sit could swing your season. Stay classy."
