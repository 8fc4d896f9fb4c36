package certificate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisplayNameFirstLastOnly(t *testing.T) {
	name := DisplayName(Subject{FirstName: "Juan", LastName: "Santos"})
	assert.Equal(t, "Juan Santos", name)
	assert.NotContains(t, name, "  ")
}

func TestDisplayNameMiddleInitial(t *testing.T) {
	name := DisplayName(Subject{FirstName: "Juan", MiddleName: "Maria", LastName: "Santos"})
	assert.Equal(t, "Juan M. Santos", name)
	assert.NotContains(t, name, "Maria")
}

func TestDisplayNameWithSuffix(t *testing.T) {
	name := DisplayName(Subject{FirstName: "Juan", MiddleName: "Maria", LastName: "Santos", Suffix: "Jr."})
	assert.Equal(t, "Juan M. Santos Jr.", name)
}

func TestBodyResidencyDefaultClosing(t *testing.T) {
	s := Subject{FirstName: "Juan", LastName: "Santos", Address: "123 Rizal St"}
	body := Body(s, TypeResidency, "", "Catmon", "Malabon", "Metro Manila")

	assert.Contains(t, body, "JUAN SANTOS")
	assert.Contains(t, body, "a resident of 123 Rizal St")
	assert.Contains(t, body, "bona fide resident of Catmon, Malabon, Metro Manila")
	assert.True(t, strings.HasSuffix(body, "for whatever legal purpose it may serve."), "got: %s", body)
}

func TestBodyResidencyPurposeFirstRuneLowered(t *testing.T) {
	s := Subject{FirstName: "Juan", LastName: "Santos", Address: "123 Rizal St"}

	body := Body(s, TypeResidency, "Employment", "Catmon", "Malabon", "Metro Manila")
	assert.True(t, strings.HasSuffix(body, "for employment."), "got: %s", body)

	// Only the first character is touched; the rest keeps its casing.
	body = Body(s, TypeResidency, "Enrollment at PUP", "Catmon", "Malabon", "Metro Manila")
	assert.True(t, strings.HasSuffix(body, "for enrollment at PUP."), "got: %s", body)
}

func TestBodyIndigency(t *testing.T) {
	s := Subject{FirstName: "Juan", LastName: "Santos", Address: "123 Rizal St"}

	body := Body(s, TypeIndigency, "", "Catmon", "Malabon", "Metro Manila")
	assert.Contains(t, body, "known to this office as an indigent")
	assert.True(t, strings.HasSuffix(body, "for any legal and lawful purpose it may serve."), "got: %s", body)

	body = Body(s, TypeIndigency, "Medical assistance", "Catmon", "Malabon", "Metro Manila")
	assert.True(t, strings.HasSuffix(body, "for medical assistance."), "got: %s", body)
}

func TestBodyClearance(t *testing.T) {
	s := Subject{FirstName: "Juan", LastName: "Santos", Address: "123 Rizal St"}

	body := Body(s, TypeClearance, "", "Catmon", "Malabon", "Metro Manila")
	assert.Contains(t, body, "has no derogatory record filed in this office")
	assert.True(t, strings.HasSuffix(body,
		"This certification is issued upon his/her request for whatever legal purpose it may serve."), "got: %s", body)

	body = Body(s, TypeClearance, "Job application", "Catmon", "Malabon", "Metro Manila")
	assert.True(t, strings.HasSuffix(body,
		"This certification is issued upon his/her request for job application."), "got: %s", body)
}

func TestBodyAddressFallsBackToLocality(t *testing.T) {
	s := Subject{FirstName: "Juan", LastName: "Santos"}
	body := Body(s, TypeResidency, "", "Catmon", "Malabon", "Metro Manila")
	assert.Contains(t, body, "a resident of Catmon, Malabon, Metro Manila")
}

func TestBodyUnknownTypeIsEmpty(t *testing.T) {
	s := Subject{FirstName: "Juan", LastName: "Santos"}
	assert.Equal(t, "", Body(s, Type("diploma"), "anything", "Catmon", "Malabon", "Metro Manila"))
}

func TestBodyIsPure(t *testing.T) {
	s := Subject{FirstName: "Juan", MiddleName: "Maria", LastName: "Santos", Suffix: "Jr."}
	first := Body(s, TypeIndigency, "Scholarship application", "Catmon", "Malabon", "Metro Manila")
	second := Body(s, TypeIndigency, "Scholarship application", "Catmon", "Malabon", "Metro Manila")
	require.Equal(t, first, second)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Certificate of Residency", Title(TypeResidency))
	assert.Equal(t, "Certificate of Indigency", Title(TypeIndigency))
	assert.Equal(t, "Barangay Clearance", Title(TypeClearance))
	assert.Equal(t, "Certificate", Title(Type("diploma")))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "certificate_residency_juan_santos.pdf",
		FileName(TypeResidency, "Juan Santos"))
	assert.Equal(t, "certificate_clearance_juan_m._santos_jr..pdf",
		FileName(TypeClearance, "Juan M. Santos Jr."))
}
