// Package certificate builds barangay certificate prose and renders it into
// single-page PDF documents.
package certificate

import (
	"strings"
	"unicode"
)

// Type selects which legal claim the certificate body asserts.
type Type string

const (
	TypeResidency Type = "residency"
	TypeIndigency Type = "indigency"
	TypeClearance Type = "clearance"
)

// Subject carries the resident fields the generator needs. Address may be
// empty; Body falls back to the barangay locality.
type Subject struct {
	FirstName  string
	MiddleName string
	LastName   string
	Suffix     string
	Address    string
}

// DisplayName renders "First M. Last Suffix", reducing the middle name to
// its first letter plus a period and skipping absent parts.
func DisplayName(s Subject) string {
	parts := make([]string, 0, 4)
	if s.FirstName != "" {
		parts = append(parts, s.FirstName)
	}
	if s.MiddleName != "" {
		parts = append(parts, string([]rune(s.MiddleName)[:1])+".")
	}
	if s.LastName != "" {
		parts = append(parts, s.LastName)
	}
	if s.Suffix != "" {
		parts = append(parts, s.Suffix)
	}
	return strings.Join(parts, " ")
}

// Title returns the printable heading for a certificate type.
func Title(t Type) string {
	switch t {
	case TypeResidency:
		return "Certificate of Residency"
	case TypeIndigency:
		return "Certificate of Indigency"
	case TypeClearance:
		return "Barangay Clearance"
	default:
		return "Certificate"
	}
}

// Body assembles the legal prose for one certificate. It is a pure function
// of its inputs. An unknown type yields an empty string; callers must treat
// that as a configuration error, never a valid document.
func Body(s Subject, t Type, purpose, barangay, municipality, province string) string {
	name := strings.ToUpper(DisplayName(s))

	address := s.Address
	if address == "" {
		address = barangay + ", " + municipality + ", " + province
	}

	// Only the first character of the purpose is lower-cased so it reads
	// mid-sentence without mangling proper nouns further in.
	lowerPurpose := ""
	if purpose != "" {
		r := []rune(purpose)
		r[0] = unicode.ToLower(r[0])
		lowerPurpose = string(r)
	}

	switch t {
	case TypeResidency:
		body := "This is to certify that " + name +
			", a resident of " + address +
			", is a bona fide resident of " + barangay + ", " + municipality + ", " + province +
			". This certification is being issued upon the request of the above-named person "
		if purpose != "" {
			return body + "for " + lowerPurpose + "."
		}
		return body + "for whatever legal purpose it may serve."

	case TypeIndigency:
		body := "This is to certify that " + name +
			", a resident of " + address +
			", is known to this office as an indigent. " +
			"This certification is issued to attest to his/her indigent status "
		if purpose != "" {
			return body + "for " + lowerPurpose + "."
		}
		return body + "for any legal and lawful purpose it may serve."

	case TypeClearance:
		body := "This is to certify that, based on the records of this Barangay, " + name +
			", a resident of " + address +
			", has no derogatory record filed in this office at the time of issuance of this certification. "
		if purpose != "" {
			return body + "This certification is issued upon his/her request for " + lowerPurpose + "."
		}
		return body + "This certification is issued upon his/her request for whatever legal purpose it may serve."

	default:
		return ""
	}
}

// FileName is the download name for a rendered certificate:
// certificate_{type}_{display name lower-cased, whitespace to underscores}.pdf
func FileName(t Type, displayName string) string {
	name := strings.ToLower(strings.Join(strings.Fields(displayName), "_"))
	return "certificate_" + string(t) + "_" + name + ".pdf"
}
