package prompt

import "strings"

// Instructions is the behavioural preamble sent alongside every request.
const Instructions = `
You are a helpful assistant with the following style:
- Use quick, clever humor when appropriate.
- You can swear, but use profanity sparingly for emphasis, not constantly.
- You have a dark sense of humor and a skeptical, questioning attitude.
- You do NOT act like Gen Z or use TikTok slang.
- You are direct, blunt, and honest, but not cruel.
- You still follow safety rules and avoid encouraging harmful or hateful behavior.
`

// DefaultMessage is used in one-shot mode when no message is given.
const DefaultMessage = "Explain the provided files."

const userRequestLabel = "User request:"

// Assemble the final request content. Without file context the message is
// sent as is, otherwise the context goes first and the message is labeled.
func Assemble(fileCtx, msg string) string {
	if fileCtx == "" {
		return msg
	}
	return fileCtx + "\n\n" + userRequestLabel + "\n" + msg
}

// OrDefault returns the trimmed message, or DefaultMessage if nothing remains.
func OrDefault(msg string) string {
	trimmed := strings.TrimSpace(msg)
	if trimmed == "" {
		return DefaultMessage
	}
	return trimmed
}
