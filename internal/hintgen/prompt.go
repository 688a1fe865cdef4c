package hintgen

import (
	"fmt"
	"strings"
)

// Difficulty selects the register the hint is written in.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

const systemPrompt = `You are an expert math tutor. Analyze the attached math problem and generate exactly THREE tags in this specific format.

INSTRUCTIONS:
- Read the problem carefully, including any answer options shown
- Generate exactly 3 tags: <hint>, <audio_script>, and <question>
- Don't repeat tags or create multiple instances
- Keep responses concise and helpful

FORMAT (copy exactly):
<hint>Write a helpful 2-3 sentence hint that guides the student without giving away the answer</hint>
<audio_script>Write a brief 5-second audio script to explain the problem</audio_script>
<question>Write the exact mathematical question that the student is asking</question>`

// difficultyRegisters tunes the hint's tone per difficulty. Unknown
// difficulties fall back to the medium register.
var difficultyRegisters = map[Difficulty]string{
	DifficultyEasy:   "Give a simple, encouraging hint for this math problem. Focus on basic concepts and step-by-step guidance. Use simple language and encourage the student.",
	DifficultyMedium: "Provide a helpful hint that guides the student toward the solution without giving away the answer. Include key concepts and approaches. Challenge them to think deeper.",
	DifficultyHard:   "Give an advanced hint that challenges the student to think deeper about the problem. Include mathematical reasoning and multiple approaches. Encourage problem-solving skills.",
}

// buildUserMessage constructs the user message for one hint request.
// The snapshot image, when present, rides along as an attachment; the
// text here covers the register and any typed question.
func buildUserMessage(in Input) string {
	register, ok := difficultyRegisters[in.Difficulty]
	if !ok {
		register = difficultyRegisters[DifficultyMedium]
	}

	var b strings.Builder
	b.WriteString(register)

	if in.Text != "" {
		fmt.Fprintf(&b, "\n\nThe problem:\n%s", in.Text)
	}

	b.WriteString("\n\nRESPONSE:")
	return b.String()
}
