package types

type OrderBy = string

var (
	OrderByAsc  OrderBy = "asc"
	OrderByDesc OrderBy = "desc"
)

type MemberRole = string

var (
	RoleAdmin MemberRole = "admin"
	RoleField MemberRole = "field"
)

type EntryKind = string

var (
	KindPix    EntryKind = "pix"
	KindDebit  EntryKind = "debit"
	KindCredit EntryKind = "credit"
)

type ReceivableStatus = string

var (
	ReceivableOpen            ReceivableStatus = "open"
	ReceivablePendingWriteOff ReceivableStatus = "pending_write_off"
	ReceivableWrittenOff      ReceivableStatus = "written_off"
	ReceivableSettled         ReceivableStatus = "settled"
)

// MonthKey is a YYYY-MM bucket identifier used by every reporting surface.
type MonthKey = string
