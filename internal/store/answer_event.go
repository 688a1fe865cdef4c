package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetQuestionText(data.QuestionText).
		SetCorrectAnswer(data.CorrectAnswer).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrect(data.Correct).
		SetDifficulty(data.Difficulty).
		SetTimeMs(data.TimeMs).
		SetHintUsed(data.HintUsed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerStats(ctx context.Context) (AnswerStats, error) {
	events, err := r.client.AnswerEvent.Query().All(ctx)
	if err != nil {
		return AnswerStats{}, fmt.Errorf("query answer events: %w", err)
	}

	var stats AnswerStats
	for _, e := range events {
		stats.Total++
		if e.Correct {
			stats.Correct++
		}
		if e.HintUsed {
			stats.HintUsed++
		}
	}
	return stats, nil
}
