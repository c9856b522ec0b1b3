package db

import (
	"time"

	"github.com/google/uuid"
)

// HistoryAction constants for the append-only audit log
const (
	ActionCreateUser  = "CREATE_USER"
	ActionDeleteUser  = "DELETE_USER"
	ActionUpdateUser  = "UPDATE_USER"
	ActionToggleAdmin = "TOGGLE_ADMIN"

	ActionCreateJob  = "CREATE_JOB"
	ActionUpdateJob  = "UPDATE_JOB"
	ActionArchiveJob = "ARCHIVE_JOB"
	ActionRestoreJob = "RESTORE_JOB"
	ActionDeleteJob  = "DELETE_JOB"

	ActionCreateCandidate  = "CREATE_CANDIDATE"
	ActionUpdateCandidate  = "UPDATE_CANDIDATE"
	ActionArchiveCandidate = "ARCHIVE_CANDIDATE"
	ActionRestoreCandidate = "RESTORE_CANDIDATE"
	ActionDeleteCandidate  = "DELETE_CANDIDATE"

	ActionCreateTalent  = "CREATE_TALENT"
	ActionUpdateTalent  = "UPDATE_TALENT"
	ActionArchiveTalent = "ARCHIVE_TALENT"
	ActionRestoreTalent = "RESTORE_TALENT"
	ActionDeleteTalent  = "DELETE_TALENT"

	ActionSendTalentToJob = "SEND_TALENT_TO_JOB"
	ActionSendMessage     = "SEND_MESSAGE"
	ActionUpdateMessage   = "UPDATE_MESSAGE"

	ActionCreateDynamic = "CREATE_DYNAMIC"
	ActionUpdateDynamic = "UPDATE_DYNAMIC"
	ActionDeleteDynamic = "DELETE_DYNAMIC"

	ActionApplyScreening = "APPLY_SCREENING"
	ActionUndoScreening  = "UNDO_SCREENING"
)

// HistoryEvent is an append-only audit record of a user action
type HistoryEvent struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
}
