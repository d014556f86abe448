package document

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status is the review state of a document.
type Status int

const (
	UnknownStatus Status = iota
	Draft
	Final
	Approved
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Draft:    "Draft",
		Final:    "Final",
		Approved: "Approved",
		Rejected: "Rejected",
	}
}

// ParseStatus converts a status label into a Status, ignoring case.
func ParseStatus(s string) (Status, error) {
	for status, label := range getStatusStrings() {
		if strings.EqualFold(label, strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("document status", fmt.Errorf("%q is not a valid document status", s))
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("document status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if label, ok := getStatusStrings()[s]; ok {
		return label
	}
	return "Unknown"
}
