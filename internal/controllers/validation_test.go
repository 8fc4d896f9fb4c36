package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests cover the validation layer, which runs before any database
// access, so no store is needed.

func runJSON(handler gin.HandlerFunc, body string, params gin.Params) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = params
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestRegisterMissingFields(t *testing.T) {
	w := runJSON(Register, `{"username":"clerk1"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "username, password, and full_name are required.")
}

func TestLoginMissingFields(t *testing.T) {
	w := runJSON(Login, `{"username":"clerk1"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "username and password are required.")
}

func TestCreateResidentMissingFields(t *testing.T) {
	w := runJSON(CreateResident, `{"last_name":"Santos","first_name":"Juan"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "last_name, first_name, and sex are required.")
}

func TestCreateResidentRejectsUnknownField(t *testing.T) {
	w := runJSON(CreateResident,
		`{"last_name":"Santos","first_name":"Juan","sex":"Male","middle_nmae":"Maria"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown field")
}

func TestCreateResidentRejectsMalformedBody(t *testing.T) {
	w := runJSON(CreateResident, `{"last_name":`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateResidentRejectsBadBirthdate(t *testing.T) {
	w := runJSON(CreateResident,
		`{"last_name":"Santos","first_name":"Juan","sex":"Male","birthdate":"March 14, 1990"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateHouseholdMissingFields(t *testing.T) {
	w := runJSON(CreateHousehold, `{"household_name":"Santos Family"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "household_name and address are required.")
}

func TestAddHouseholdMemberInvalidHouseholdID(t *testing.T) {
	w := runJSON(AddHouseholdMember, `{"resident_id":1}`,
		gin.Params{{Key: "id", Value: "abc"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid household ID format.")
}

func TestAddHouseholdMemberMissingResident(t *testing.T) {
	w := runJSON(AddHouseholdMember, `{"relation_to_head":"Son"}`,
		gin.Params{{Key: "id", Value: "1"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "resident_id is required to add member.")
}

func runForm(handler gin.HandlerFunc, form url.Values, params gin.Params) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = params
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	handler(c)
	return w
}

func TestCreateIncidentMissingFields(t *testing.T) {
	w := runJSON(CreateIncident, `{"incident_type":"Theft"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "incident_date and incident_type are required.")
}

func TestCreateIncidentRejectsMalformedGeoPoint(t *testing.T) {
	w := runJSON(CreateIncident,
		`{"incident_date":"2025-03-14","incident_type":"Theft","geo_point":"not geojson"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid geo_point")
}

func TestCreateIncidentRejectsNonPointGeometry(t *testing.T) {
	w := runJSON(CreateIncident,
		`{"incident_date":"2025-03-14","incident_type":"Theft","geo_point":"{\"type\":\"LineString\",\"coordinates\":[[120.98,14.66],[120.99,14.67]]}"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "geometry must be a Point")
}

func TestGeoPointRoundTrip(t *testing.T) {
	wkbBytes, err := parseGeoPoint(`{"type":"Point","coordinates":[120.98,14.66]}`)
	require.NoError(t, err)
	require.NotEmpty(t, wkbBytes)

	back, err := geoPointToJSON(wkbBytes)
	require.NoError(t, err)
	require.NotNil(t, back)
	assert.Contains(t, *back, `"Point"`)
	assert.Contains(t, *back, "120.98")
}

func TestGeoPointEmptyIsNil(t *testing.T) {
	wkbBytes, err := parseGeoPoint("")
	require.NoError(t, err)
	assert.Nil(t, wkbBytes)

	back, err := geoPointToJSON(nil)
	require.NoError(t, err)
	assert.Nil(t, back)
}

func TestCreateServiceMissingFields(t *testing.T) {
	w := runJSON(CreateService, `{"description":"Free checkup"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "service_name is required.")
}

func TestAddServiceBeneficiaryMissingResident(t *testing.T) {
	w := runJSON(AddServiceBeneficiary, `{"notes":"Senior"}`,
		gin.Params{{Key: "id", Value: "1"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "resident_id is required for beneficiary.")
}

func TestSaveBarangayProfileMissingFields(t *testing.T) {
	w := runJSON(SaveBarangayProfile, `{"barangay_name":"Catmon"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "barangay_name, municipality, and province are required.")
}

func TestCreateOfficialMissingFields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/officials", nil)
	CreateOfficial(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "full_name and position are required.")
}

func TestParseOrderNo(t *testing.T) {
	n, err := parseOrderNo("")
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = parseOrderNo("3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = parseOrderNo("abc")
	assert.Error(t, err)
}

func TestCreateOfficialRejectsBadOrderNo(t *testing.T) {
	w := runForm(CreateOfficial, url.Values{
		"full_name": {"Pedro Reyes"},
		"position":  {"Kagawad"},
		"order_no":  {"abc"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "order_no must be a whole number.")
}

func TestUpdateOfficialRejectsBadOrderNo(t *testing.T) {
	w := runForm(UpdateOfficial, url.Values{
		"full_name": {"Pedro Reyes"},
		"position":  {"Kagawad"},
		"order_no":  {"2.5"},
	}, gin.Params{{Key: "id", Value: "1"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "order_no must be a whole number.")
}

func TestGenerateCertificateMissingFields(t *testing.T) {
	w := runJSON(GenerateCertificate, `{"purpose":"employment"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "resident_id and certificate_type are required.")
}

func TestGenerateCertificateUnknownType(t *testing.T) {
	w := runJSON(GenerateCertificate, `{"resident_id":1,"certificate_type":"diploma"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown certificate type: diploma")
}
