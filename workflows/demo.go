package workflows

import (
	"math/rand"

	"careloop/models"
)

// CannedResponder answers chat messages with a random canned line in demo
// deployments. Wire it behind the auto-reply config flag only.
type CannedResponder struct{}

var caregiverReplies = []string{
	"Thank you for your message! I'll be there on time.",
	"Of course, I will take good care of them.",
	"Noted, see you then!",
	"That works for me. Anything else I should prepare?",
	"Thanks for letting me know. I'll bring everything needed.",
}

var userReplies = []string{
	"Thank you so much!",
	"Great, see you then.",
	"Perfect, that's very helpful.",
	"Okay, sounds good!",
	"Thanks for the update!",
}

// Reply returns a canned message from the opposite side of the conversation.
// The prompt is ignored; the demo only needs the thread to feel alive.
func (CannedResponder) Reply(_ string, from models.SenderRole) string {
	if from == models.RoleUser {
		return caregiverReplies[rand.Intn(len(caregiverReplies))]
	}
	return userReplies[rand.Intn(len(userReplies))]
}
