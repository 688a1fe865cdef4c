package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAsset(ctx context.Context, data AssetEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AssetEvent.Create().
		SetSequence(seqNum).
		SetRunID(data.RunID).
		SetSessionID(data.SessionID).
		SetKind(data.Kind).
		SetSourceText(data.SourceText).
		SetSuccess(data.Success).
		SetSizeBytes(data.SizeBytes).
		SetMimeType(data.MimeType).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save asset event: %w", err)
	}
	return nil
}
