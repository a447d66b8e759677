package user

import (
	"fmt"
	"strings"

	"cafe/internal/pkg/errs"
)

// Role is the closed set of user kinds. The capabilities of each role are
// fixed in one table, see Role.Can.
type Role int

const (
	UnknownRole Role = iota
	Customer
	Employee
	Manager
)

// Capability is an operation that is only available to some roles.
type Capability int

const (
	UnknownCapability Capability = iota
	PlaceOrder
	ReplaceOwnItems
	ViewOwnHistory
	ViewOrderOfOthers
	ViewHistoryOfOthers
	ViewWindowHistory
	AdvanceItemStatus
	ForceFinishItem
	ChangePaidStatus
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Customer:    "Customer",
		Employee:    "Employee",
		Manager:     "Manager",
	}
}

func getCapabilityStrings() map[Capability]string {
	return map[Capability]string{
		UnknownCapability:   "unknown",
		PlaceOrder:          "place orders",
		ReplaceOwnItems:     "replace items",
		ViewOwnHistory:      "view own history",
		ViewOrderOfOthers:   "view orders of other users",
		ViewHistoryOfOthers: "view history of other users",
		ViewWindowHistory:   "view history window",
		AdvanceItemStatus:   "advance item status",
		ForceFinishItem:     "force finish items",
		ChangePaidStatus:    "change paid status",
	}
}

func getRoleCapabilities() map[Role][]Capability {
	customer := []Capability{PlaceOrder, ReplaceOwnItems, ViewOwnHistory}
	employee := append(append([]Capability{}, customer...),
		ViewOrderOfOthers, ViewHistoryOfOthers, ViewWindowHistory, AdvanceItemStatus, ChangePaidStatus)
	manager := append(append([]Capability{}, employee...), ForceFinishItem)

	//nolint:exhaustive // UnknownRole has no capabilities
	return map[Role][]Capability{
		Customer: customer,
		Employee: employee,
		Manager:  manager,
	}
}

// ParseRole reads the stored role name. Matching ignores case and surrounding
// whitespace.
func ParseRole(s string) (Role, error) {
	s = strings.TrimSpace(s)
	for role, name := range getRoleStrings() {
		if role != UnknownRole && strings.EqualFold(name, s) {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == UnknownRole {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Can reports whether the role holds capability.
func (r Role) Can(capability Capability) bool {
	for _, c := range getRoleCapabilities()[r] {
		if c == capability {
			return true
		}
	}
	return false
}

// IsStaff reports whether the role works behind the counter.
func (r Role) IsStaff() bool {
	return r == Employee || r == Manager
}

func (c Capability) String() string {
	if s, ok := getCapabilityStrings()[c]; ok {
		return s
	}
	return "unknown"
}
