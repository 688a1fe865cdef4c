package store

import (
	"context"
	"fmt"

	"github.com/clulus/clulus/ent"
	"github.com/clulus/clulus/ent/hintsessionevent"
)

func (r *eventRepo) AppendHintSession(ctx context.Context, data HintSessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.HintSessionEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetSessionID(data.SessionID).
		SetTriggerReason(data.TriggerReason).
		SetOutcome(data.Outcome).
		SetHintText(data.HintText).
		SetQuestionText(data.QuestionText).
		SetHadNarration(data.HadNarration).
		SetHadImage(data.HadImage).
		SetErrorMessage(data.ErrorMessage).
		SetDurationMs(data.DurationMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save hint session event: %w", err)
	}
	return nil
}

func (r *eventRepo) HintStats(ctx context.Context) (HintStats, error) {
	events, err := r.client.HintSessionEvent.Query().
		Order(ent.Asc(hintsessionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return HintStats{}, fmt.Errorf("query hint session events: %w", err)
	}

	stats := HintStats{ByReason: make(map[string]int)}
	for _, e := range events {
		stats.Total++
		switch e.Outcome {
		case "ready":
			stats.Ready++
		case "failed":
			stats.Failed++
		case "closed":
			stats.Dismissed++
		}
		stats.ByReason[e.TriggerReason]++
	}
	return stats, nil
}
