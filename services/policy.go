package services

import (
	"github.com/joveey/sistem-bk-online/entity"
)

// All authorization decisions live in this file. Handlers and services
// consult these functions and nothing else; no handler inspects concrete
// user types on its own.

// CanCreateReport: only students open reports.
func CanCreateReport(p entity.Principal) bool {
	return p.IsStudent()
}

// CanViewReport: counselors see every report; a student sees only reports
// they own. An anonymous report has no owner, so even its creator cannot
// view it afterwards.
func CanViewReport(p entity.Principal, report *entity.Report) bool {
	if p.IsCounselor() {
		return true
	}
	return isOwnerStudent(p, report)
}

// CanAcceptReport: any counselor may take a pending report. The state
// guard, not the policy, decides whether the report is still takeable.
func CanAcceptReport(p entity.Principal) bool {
	return p.IsCounselor()
}

// CanCompleteReport: any counselor.
func CanCompleteReport(p entity.Principal) bool {
	return p.IsCounselor()
}

// CanScheduleReport: only the counselor assigned to the report.
func CanScheduleReport(p entity.Principal, report *entity.Report) bool {
	return isAssignedCounselor(p, report)
}

// CanAccessChat: exactly the report's owner student and its assigned
// counselor, for both reading and appending.
func CanAccessChat(p entity.Principal, report *entity.Report) bool {
	return isOwnerStudent(p, report) || isAssignedCounselor(p, report)
}

func isOwnerStudent(p entity.Principal, report *entity.Report) bool {
	return p.IsStudent() && report.StudentID != nil && *report.StudentID == p.ID
}

func isAssignedCounselor(p entity.Principal, report *entity.Report) bool {
	return p.IsCounselor() && report.CounselorID != nil && *report.CounselorID == p.ID
}
