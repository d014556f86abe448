package document

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Kind is the type of a document.
type Kind int

const (
	UnknownKind Kind = iota
	Invoice
	PackingList
	CertificateOfOrigin
	Label
)

type kindInfo struct {
	label string
	size  string
}

func getKindInfo() map[Kind]kindInfo {
	return map[Kind]kindInfo{
		Invoice:             {label: "Invoice", size: "124 KB"},
		PackingList:         {label: "Packing List", size: "86 KB"},
		CertificateOfOrigin: {label: "Certificate of Origin", size: "210 KB"},
		Label:               {label: "Label", size: "48 KB"},
	}
}

// SeedKinds returns the kinds every order receives when it is placed, in issue order.
func SeedKinds() []Kind {
	return []Kind{Invoice, PackingList, CertificateOfOrigin}
}

// ParseKind converts a kind label such as "Packing List" into a Kind.
func ParseKind(s string) (Kind, error) {
	for kind, info := range getKindInfo() {
		if strings.EqualFold(info.label, strings.TrimSpace(s)) {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("document kind", fmt.Errorf("%q is not a valid document kind", s))
}

// Validate checks that k is a known kind.
func (k Kind) Validate() error {
	if _, ok := getKindInfo()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("document kind", fmt.Errorf("%d is not a valid kind", k))
	}
	return nil
}

func (k Kind) String() string {
	if info, ok := getKindInfo()[k]; ok {
		return info.label
	}
	return "Unknown"
}

// Slug returns the kind as a lower-case, dash-separated token.
func (k Kind) Slug() string {
	return strings.ReplaceAll(strings.ToLower(k.String()), " ", "-")
}

func (k Kind) size() string {
	return getKindInfo()[k].size
}
