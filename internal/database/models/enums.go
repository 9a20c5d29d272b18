package models

// GroupKind defines what a rotation group represents
type GroupKind string

const (
	GroupKindLocation GroupKind = "location"
	GroupKindSector   GroupKind = "sector"
)

// Shift defines the shift slot of an assignment
type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftFullDay   Shift = "full_day"
)

// CreditStatus defines the lifecycle of a fairness credit
type CreditStatus string

const (
	CreditStatusAvailable CreditStatus = "available"
	CreditStatusUsed      CreditStatus = "used"
)

// ForfeitureReason defines why a participant lost a turn for a period
type ForfeitureReason string

const (
	ForfeitureReasonUnexcusedAbsence       ForfeitureReason = "unexcused_absence"
	ForfeitureReasonMedicalLeave           ForfeitureReason = "medical_leave"
	ForfeitureReasonNoticePeriod           ForfeitureReason = "notice_period"
	ForfeitureReasonDisciplinarySuspension ForfeitureReason = "disciplinary_suspension"
	ForfeitureReasonOther                  ForfeitureReason = "other"
)

// AuditAction defines the mutation recorded in an audit entry
type AuditAction string

const (
	AuditActionAssign           AuditAction = "assign"
	AuditActionMoveAssignment   AuditAction = "move_assignment"
	AuditActionSwapAssignments  AuditAction = "swap_assignments"
	AuditActionRemoveAssignment AuditAction = "remove_assignment"
	AuditActionReduceAllocation AuditAction = "reduce_allocation"
	AuditActionGrantCredit      AuditAction = "grant_credit"
	AuditActionReconcile        AuditAction = "reconcile"
)

// VacationStatus defines the lifecycle of a vacation allocation
type VacationStatus string

const (
	VacationStatusScheduled VacationStatus = "scheduled"
	VacationStatusTaken     VacationStatus = "taken"
	VacationStatusCancelled VacationStatus = "cancelled"
)

// IsValid checks if the GroupKind is valid
func (k GroupKind) IsValid() bool {
	switch k {
	case GroupKindLocation, GroupKindSector:
		return true
	}
	return false
}

// IsValid checks if the Shift is valid
func (s Shift) IsValid() bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftFullDay:
		return true
	}
	return false
}

// IsValid checks if the CreditStatus is valid
func (s CreditStatus) IsValid() bool {
	switch s {
	case CreditStatusAvailable, CreditStatusUsed:
		return true
	}
	return false
}

// IsValid checks if the ForfeitureReason is valid
func (r ForfeitureReason) IsValid() bool {
	switch r {
	case ForfeitureReasonUnexcusedAbsence, ForfeitureReasonMedicalLeave,
		ForfeitureReasonNoticePeriod, ForfeitureReasonDisciplinarySuspension,
		ForfeitureReasonOther:
		return true
	}
	return false
}

// IsValid checks if the VacationStatus is valid
func (s VacationStatus) IsValid() bool {
	switch s {
	case VacationStatusScheduled, VacationStatusTaken, VacationStatusCancelled:
		return true
	}
	return false
}
