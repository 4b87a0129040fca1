package tui

import (
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/engine/poller"
)

// MsgProgress carries one poller update.
type MsgProgress struct {
	Update poller.Update
}

// MsgUpdatesEnded is sent when the update stream is closed.
type MsgUpdatesEnded struct{}

// MsgStarted is sent when the start analysis request returns. Snapshot holds
// the poller state at that moment, which already reflects the refetch the
// request triggered.
type MsgStarted struct {
	Result   *domain.AnalysisBatchResult
	Err      error
	Snapshot poller.Update
}
