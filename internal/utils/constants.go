package utils

// Date and time layouts.
const (
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Pagination.
const (
	DefaultPageNumber    = 0
	DefaultPageSize      = 10
	MaxPageSize          = 100
	DefaultSortBy        = "id"
	DefaultSortDirection = "asc"
)

// User field limits. Passwords are bounded by bcrypt's input size in bytes.
const (
	MaxEmailLength   = 255
	MaxPasswordBytes = 72
)

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

type GroupRole string

const (
	GroupRoleAdmin  GroupRole = "ADMIN"
	GroupRoleMember GroupRole = "MEMBER"
)

func (r GroupRole) Valid() bool {
	return r == GroupRoleAdmin || r == GroupRoleMember
}

type SplitType string

const (
	SplitTypeEqual      SplitType = "EQUAL"
	SplitTypeUnequal    SplitType = "UNEQUAL"
	SplitTypePercentage SplitType = "PERCENTAGE"
	SplitTypeShares     SplitType = "SHARES"
)

func (t SplitType) Valid() bool {
	switch t {
	case SplitTypeEqual, SplitTypeUnequal, SplitTypePercentage, SplitTypeShares:
		return true
	}
	return false
}

type SettlementStatus string

const (
	SettlementStatusPending   SettlementStatus = "PENDING"
	SettlementStatusCompleted SettlementStatus = "COMPLETED"
	SettlementStatusCancelled SettlementStatus = "CANCELLED"
)

func (s SettlementStatus) Valid() bool {
	switch s {
	case SettlementStatusPending, SettlementStatusCompleted, SettlementStatusCancelled:
		return true
	}
	return false
}

type NotificationType string

const (
	NotificationTypeExpenseAdded    NotificationType = "EXPENSE_ADDED"
	NotificationTypeSettlement      NotificationType = "SETTLEMENT"
	NotificationTypeGroupInvitation NotificationType = "GROUP_INVITATION"
	NotificationTypeMemberAdded     NotificationType = "MEMBER_ADDED"
	NotificationTypeMemberRemoved   NotificationType = "MEMBER_REMOVED"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeExpenseAdded, NotificationTypeSettlement, NotificationTypeGroupInvitation,
		NotificationTypeMemberAdded, NotificationTypeMemberRemoved:
		return true
	}
	return false
}

// API messages.
const (
	SuccessMessage         = "Operation completed successfully"
	ErrorMessage           = "An error occurred"
	NotFoundMessage        = "Resource not found"
	ValidationErrorMessage = "Validation failed"
)
