// Package problems holds the calculus practice problems: a curated bank
// the app can always fall back on, answer checking, and an LLM generator
// for fresh problems in the same shape.
package problems

import (
	"math/rand"
	"strconv"
	"strings"
)

// Difficulty labels a problem. It doubles as the register tag handed to
// hint generation.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Problem is one multiple-choice question.
type Problem struct {
	// Text is the question prompt shown to the learner.
	Text string

	// Options are the four choices, exactly one of which matches Answer.
	Options []string

	// Answer is the text of the correct option.
	Answer string

	// Explanation is the worked solution shown after answering.
	Explanation string

	// Difficulty labels the problem and tunes hint generation.
	Difficulty Difficulty
}

// CheckAnswer compares the learner's input against the correct answer.
// Input may be the option text (case-insensitive) or a 1-based option
// index.
func CheckAnswer(learnerAnswer string, p *Problem) bool {
	learnerAnswer = strings.TrimSpace(learnerAnswer)
	if learnerAnswer == "" {
		return false
	}
	if idx, err := strconv.Atoi(learnerAnswer); err == nil && idx >= 1 && idx <= len(p.Options) {
		return strings.EqualFold(
			strings.TrimSpace(p.Options[idx-1]),
			strings.TrimSpace(p.Answer),
		)
	}
	return strings.EqualFold(learnerAnswer, strings.TrimSpace(p.Answer))
}

// CorrectIndex returns the 0-based index of the correct option, or -1
// when no option matches the answer.
func (p *Problem) CorrectIndex() int {
	for i, opt := range p.Options {
		if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(p.Answer)) {
			return i
		}
	}
	return -1
}

// Bank is the curated problem set.
var Bank = []Problem{
	{
		Text:   "What is the derivative of f(x) = sin(x)?",
		Answer: "f'(x) = cos(x)",
		Options: []string{
			"f'(x) = -sin(x)",
			"f'(x) = cos(x)",
			"f'(x) = -cos(x)",
			"f'(x) = tan(x)",
		},
		Explanation: "The derivative of the sine function is a fundamental rule in calculus: d/dx(sin(x)) = cos(x). The slope of the sine curve at any point equals the value of the cosine function at that same point.",
		Difficulty:  DifficultyEasy,
	},
	{
		Text:   "What is the indefinite integral of (3x^2 + 2x + 1) dx?",
		Answer: "x^3 + x^2 + x + C",
		Options: []string{
			"x^3 + x^2 + x",
			"x^3 + x^2 + x + C",
			"6x + 2 + C",
			"3x^3 + 2x^2 + x + C",
		},
		Explanation: "Apply the power rule term by term: the antiderivative of 3x^2 is x^3, of 2x is x^2, and of 1 is x. Add the constant of integration C, since any constant differentiates to zero.",
		Difficulty:  DifficultyEasy,
	},
	{
		Text:   "What is the vertex of the parabola given by the equation y = x^2 - 6x + 5?",
		Answer: "(3, -4)",
		Options: []string{
			"(3, 5)",
			"(-6, 5)",
			"(3, -4)",
			"(-3, 32)",
		},
		Explanation: "The x-coordinate of the vertex is -b/(2a) = 6/2 = 3. Substituting back: y = 9 - 18 + 5 = -4, so the vertex is (3, -4).",
		Difficulty:  DifficultyEasy,
	},
	{
		Text:   "A circle with a radius of 5 units is inscribed in a square. What is the area of the square?",
		Answer: "100",
		Options: []string{
			"25",
			"50",
			"75",
			"100",
		},
		Explanation: "The diameter of the inscribed circle equals the side of the square: 2 * 5 = 10. The area is 10^2 = 100 square units.",
		Difficulty:  DifficultyEasy,
	},
}

// Random returns a random bank problem.
func Random(rng *rand.Rand) *Problem {
	p := Bank[rng.Intn(len(Bank))]
	return &p
}
