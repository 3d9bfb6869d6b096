// Package classify routes an uploaded file to a processing pipeline based on
// its name. The keyword lists are fixed; there is no error case.
package classify

import "strings"

// Kind selects one of the three upload pipelines.
type Kind string

const (
	KindDocument Kind = "document"
	KindContract Kind = "contract"
	KindBank     Kind = "bank"
)

var (
	contractKeywords = []string{"contract", "acord", "conventie"}
	bankKeywords     = []string{"extras", "statement", "sold", "banca", "bank", "cont"}
)

// Detect classifies a file name. Contract keywords are checked first:
// "cont" is a substring of "contract", so the order matters.
func Detect(filename string) Kind {
	name := strings.ToLower(filename)
	for _, kw := range contractKeywords {
		if strings.Contains(name, kw) {
			return KindContract
		}
	}
	for _, kw := range bankKeywords {
		if strings.Contains(name, kw) {
			return KindBank
		}
	}
	return KindDocument
}
