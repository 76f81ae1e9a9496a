package recorder

import "CoastWatch/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ *RunSnapshot) error { return nil }

func (n *NoopRecorder) RecordYearlyRows(_ string, _ []model.YearRow) error { return nil }

func (n *NoopRecorder) Close() error { return nil }
