package constants

import "strings"

// ===== Class =====

const (
	ClassTypePhysical = "physical"
	ClassTypeOnline   = "online"
	ClassTypeOnCall   = "on_call"
)

const DefaultClassCapacity = 20

var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// NormalizeWeekday → lowercase; "" kalau bukan nama hari.
func NormalizeWeekday(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Weekdays {
		if d == s {
			return d
		}
	}
	return ""
}

// ===== Attendance =====

const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
)

// ===== Payment =====

const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentOverdue = "overdue"
)

var PaymentStatuses = []string{PaymentPending, PaymentPaid, PaymentOverdue}

// ===== Material =====

const (
	MaterialQuran    = "quran"
	MaterialNotebook = "notebook"
	MaterialOther    = "other"
)

// ===== Fund =====

const (
	FundDonation = "donation"
	FundStudy    = "study"
	FundWaqf     = "waqf"
	FundInfaq    = "infaq"
	FundSadaqa   = "sadaqa"
)

var FundTypes = []string{FundDonation, FundStudy, FundWaqf, FundInfaq, FundSadaqa}
