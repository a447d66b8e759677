package order

import (
	"fmt"

	"cafe/internal/pkg/errs"
)

// Status is the fulfillment state of one line item.
//
//	NotStarted ──> Started ──> Finished
//	     │                        ▲
//	     └──── (forced finish) ───┘
//
// Finished is terminal. Only a forced finish may skip Started.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota

	// NotStarted is the status every line item is created with. Only items in
	// this status may be replaced.
	NotStarted

	// Started means staff began preparing the item.
	Started

	// Finished means the item is ready. No further transitions are allowed.
	Finished
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		NotStarted: "NotStarted",
		Started:    "Started",
		Finished:   "Finished",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		NotStarted: "NotStarted",
		Started:    "Started",
		Finished:   "Finished",
	}
}

// ParseStatus maps the external name of a status back to its value.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsReplaceable reports whether an item in this status may still be swapped.
func (s Status) IsReplaceable() bool {
	return s == NotStarted
}

// Start transitions NotStarted -> Started.
func (s Status) Start() (Status, error) {
	if s != NotStarted {
		return Unknown, transitionError(s, "start")
	}
	return Started, nil
}

// Finish transitions Started -> Finished.
func (s Status) Finish() (Status, error) {
	if s != Started {
		return Unknown, transitionError(s, "finish")
	}
	return Finished, nil
}

// ForceFinish transitions any unfinished status straight to Finished.
func (s Status) ForceFinish() (Status, error) {
	if s != NotStarted && s != Started {
		return Unknown, transitionError(s, "force finish")
	}
	return Finished, nil
}

// AdvanceTo moves to target using the matching transition. force is only
// honored when target is Finished.
func (s Status) AdvanceTo(target Status, force bool) (Status, error) {
	switch target { //nolint:exhaustive // every other target is rejected below
	case Started:
		return s.Start()
	case Finished:
		if force {
			return s.ForceFinish()
		}
		return s.Finish()
	default:
		return Unknown, transitionError(s, "advance to "+target.String())
	}
}

func transitionError(from Status, action string) error {
	return errs.NewConflictErrorWithCause(
		"status transition rejected",
		fmt.Errorf("%s is not a valid status to %s", from, action),
	)
}
