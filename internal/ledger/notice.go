package ledger

import (
	"errors"

	"hisab/internal/core"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notice is the user-facing outcome of a command, returned as data so
// any front end can render it.
type Notice struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

var (
	noticeCreated = Notice{"Transaction Added", "The transaction has been successfully added.", SeveritySuccess}
	noticeUpdated = Notice{"Transaction Updated", "The transaction has been successfully updated.", SeveritySuccess}
	noticeDeleted = Notice{"Transaction Deleted", "The transaction has been successfully deleted.", SeveritySuccess}
	noticeCleared = Notice{"Transactions Cleared", "All transactions have been successfully cleared.", SeveritySuccess}

	noticeInvalidInput    = Notice{"Invalid Input", "Please enter valid description and amount.", SeverityError}
	noticeInvalidCategory = Notice{"Invalid Category", "Unknown ledger category.", SeverityError}
	noticeNotFound        = Notice{"Update Failed", "The transaction could not be found.", SeverityError}
	noticeNotConfirmed    = Notice{"Confirmation Required", "This action is irreversible and must be confirmed.", SeverityError}
	noticeEmptyExport     = Notice{"Export Failed", "No transactions to export.", SeverityError}
	noticeInternal        = Notice{"Operation Failed", "Something went wrong. Please try again.", SeverityError}
)

// NoticeFor maps a command outcome to its notice. A nil error yields
// the success notice for the operation.
func NoticeFor(op ChangeOp, err error) Notice {
	if err == nil {
		switch op {
		case OpCreate:
			return noticeCreated
		case OpEdit:
			return noticeUpdated
		case OpDelete:
			return noticeDeleted
		case OpClear:
			return noticeCleared
		}
		return noticeInternal
	}

	switch {
	case IsInvalidInput(err):
		return noticeInvalidInput
	case errors.Is(err, core.ErrInvalidCategory):
		return noticeInvalidCategory
	case errors.Is(err, ErrNotFound):
		return noticeNotFound
	case errors.Is(err, ErrNotConfirmed):
		return noticeNotConfirmed
	case errors.Is(err, ErrEmptyLedger):
		return noticeEmptyExport
	}
	return noticeInternal
}

// IsInvalidInput reports whether the error came from input validation
// rather than from state or infrastructure.
func IsInvalidInput(err error) bool {
	return errors.Is(err, core.ErrInvalidAmount) ||
		errors.Is(err, core.ErrEmptyDescription) ||
		errors.Is(err, core.ErrInvalidKind)
}
