package user

import "time"

const (
	RegularBalanceSenior  = 30 // ten or more years of service
	RegularBalanceTenured = 21 // at least one year of service
	RegularBalanceNew     = 15
)

// YearsOfService counts calendar years between hire and now (current year minus hire year).
func YearsOfService(hireDate, now time.Time) int {
	return now.Year() - hireDate.Year()
}

// DefaultRegularBalance returns the regular leave allowance for a hire date.
func DefaultRegularBalance(hireDate, now time.Time) int {
	years := YearsOfService(hireDate, now)
	switch {
	case years >= 10:
		return RegularBalanceSenior
	case years >= 1:
		return RegularBalanceTenured
	default:
		return RegularBalanceNew
	}
}
