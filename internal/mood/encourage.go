package mood

import "math/rand/v2"

var encouragements = []string{
	"You're allowed to feel what you feel.",
	"You don't need to have all the answers today.",
	"It's okay to move at your own pace.",
	"Even small steps count.",
	"You're not behind.",
	"Your feelings make sense.",
	"Rest is productive too.",
	"You're doing better than you think.",
	"It's okay to pause.",
	"You don't need to fix everything right now.",
	"You showed up today, and that matters.",
	"Be gentle with yourself.",
	"You're learning as you go.",
	"Not every day needs to be a breakthrough.",
	"You're allowed to take up space.",
	"It's okay to ask for help.",
	"Your effort is enough.",
	"You can take this moment one breath at a time.",
	"You don't have to rush.",
	"You are not alone in this.",
}

// Encouragement returns a random line from the pool.
func Encouragement() string {
	return EncouragementAt(rand.IntN(len(encouragements)))
}

// EncouragementAt returns the i-th line, wrapping around the pool.
func EncouragementAt(i int) string {
	n := len(encouragements)
	return encouragements[((i%n)+n)%n]
}
