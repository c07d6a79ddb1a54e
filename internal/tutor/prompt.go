package tutor

import (
	"fmt"
	"strings"
)

const tutorSystemPrompt = `You are a patient, encouraging tutor watching a student work through interactive lesson activities. You receive tagged state updates about what the student is doing. Respond with one or two short, warm sentences. Never reveal answers. Never mention the tags or that you are receiving updates.`

func buildCommentUserMessage(transcript []string, latest string) string {
	var b strings.Builder

	if len(transcript) > 0 {
		b.WriteString("Recent session updates:\n")
		for _, line := range transcript {
			b.WriteString(fmt.Sprintf("- %s\n", line))
		}
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Latest update:\n%s\n", latest))

	b.WriteString(`
Instructions:
React to the latest update in one or two sentences. Be specific to what just happened. If the student got something wrong, nudge them toward the idea without giving the answer. Plain ASCII text only.`)

	return b.String()
}
