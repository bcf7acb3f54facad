package tui

import "github.com/takumin/tempo/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgRecordsLoaded is sent when records are loaded from the store.
type MsgRecordsLoaded struct {
	Records  []domain.Record
	Projects []string
}

func (MsgRecordsLoaded) sealed() {}

// MsgStatsLoaded is sent when summary statistics are computed.
type MsgStatsLoaded struct {
	Stats domain.Stats
}

func (MsgStatsLoaded) sealed() {}

// MsgTimerStarted is sent when a timing session starts or resumes.
type MsgTimerStarted struct {
	Project string
	Resumed bool
}

func (MsgTimerStarted) sealed() {}

// MsgTimerPaused is sent when the running session is paused.
type MsgTimerPaused struct {
	Project   string
	ElapsedMs int64
}

func (MsgTimerPaused) sealed() {}

// MsgTimerStopped is sent when the session ends and a record is stored.
type MsgTimerStopped struct {
	Record   domain.Record
	AutoSync bool
}

func (MsgTimerStopped) sealed() {}

// MsgRecordDeleted is sent when a record is removed from the store.
type MsgRecordDeleted struct {
	ID       int64
	AutoSync bool
}

func (MsgRecordDeleted) sealed() {}

// MsgNotesSaved is sent when record notes are updated.
type MsgNotesSaved struct {
	ID       int64
	AutoSync bool
}

func (MsgNotesSaved) sealed() {}

// MsgConfigLoaded is sent when configuration is loaded.
type MsgConfigLoaded struct {
	Config       *domain.Config
	DashboardURL string
}

func (MsgConfigLoaded) sealed() {}

// MsgConfigSaved is sent when the sync configuration is persisted.
type MsgConfigSaved struct {
	DashboardURL string
	AutoSync     bool
}

func (MsgConfigSaved) sealed() {}

// MsgSyncFinished is sent when a sync attempt completes, successfully
// or not. Err is nil on success.
type MsgSyncFinished struct {
	Err          error
	DashboardURL string
	RecordCount  int
}

func (MsgSyncFinished) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearStatus is sent to clear the current status line message.
type MsgClearStatus struct{}

func (MsgClearStatus) sealed() {}

// MsgDisplayTick drives the live elapsed-time readout while the timer
// is running. Ticks carry the generation they were scheduled under;
// stale generations are dropped.
type MsgDisplayTick struct {
	Gen int
}

func (MsgDisplayTick) sealed() {}

// MsgAutoSyncTick fires the periodic background sync. Generation
// counted like MsgDisplayTick so a config change can cancel the
// pending tick.
type MsgAutoSyncTick struct {
	Gen int
}

func (MsgAutoSyncTick) sealed() {}
