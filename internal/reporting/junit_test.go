package reporting

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readmecheck/readmecheck/internal/checks"
)

func sampleResults() []*checks.CheckResult {
	return []*checks.CheckResult{
		{Name: "readme-title", Passed: true, Summary: "title found on line 1"},
		{
			Name:    "license",
			Passed:  false,
			Summary: "license references incomplete",
			Details: []string{`license badge fragment "license-MIT-blue" not found`},
			Data: &checks.CheckData{Failures: []checks.Failure{
				{Kind: checks.KindLicenseMismatch, Message: `license badge fragment "license-MIT-blue" not found`},
			}},
		},
		{Name: "badges", Passed: true, Summary: "2 badge(s) match the package"},
	}
}

func sampleOutcomes() []SuiteOutcome {
	failing := NewSuiteOutcome("proj/README.md", sampleResults(), 1500*time.Millisecond)
	failing.Timestamp = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	skipped := SkippedSuite("missing/README.md", "README.md not found")
	skipped.Timestamp = time.Date(2025, 6, 15, 12, 0, 1, 0, time.UTC)

	return []SuiteOutcome{failing, skipped}
}

func TestConvertToJUnit_Structure(t *testing.T) {
	suites := ConvertToJUnit(sampleOutcomes())

	assert.Equal(t, 4, suites.Tests) // 3 checks + 1 skipped load case
	assert.Equal(t, 1, suites.Failures)
	assert.Equal(t, 1, suites.Skipped)
	assert.InDelta(t, 1.5, suites.Time, 0.01)

	require.Len(t, suites.TestSuites, 2)
	suite := suites.TestSuites[0]

	assert.Equal(t, "proj/README.md", suite.Name)
	assert.Equal(t, 3, suite.Tests)
	assert.Equal(t, 1, suite.Failures)
	assert.Equal(t, "2025-06-15T12:00:00Z", suite.Timestamp)
	require.Len(t, suite.TestCases, 3)
}

func TestConvertToJUnit_PassedTestCase(t *testing.T) {
	suites := ConvertToJUnit(sampleOutcomes())
	tc := suites.TestSuites[0].TestCases[0]

	assert.Equal(t, "readme-title", tc.Name)
	assert.Equal(t, "proj/README.md", tc.Classname)
	assert.Nil(t, tc.Failure)
	assert.Nil(t, tc.Skipped)
}

func TestConvertToJUnit_FailedTestCase(t *testing.T) {
	suites := ConvertToJUnit(sampleOutcomes())
	tc := suites.TestSuites[0].TestCases[1]

	assert.Equal(t, "license", tc.Name)
	require.NotNil(t, tc.Failure)
	assert.Equal(t, "LicenseMismatch", tc.Failure.Type)
	assert.Equal(t, "license references incomplete", tc.Failure.Message)
	assert.Contains(t, tc.Failure.Body, "license-MIT-blue")
}

func TestConvertToJUnit_SkippedSuite(t *testing.T) {
	suites := ConvertToJUnit(sampleOutcomes())
	suite := suites.TestSuites[1]

	assert.Equal(t, "missing/README.md", suite.Name)
	assert.Equal(t, 1, suite.Tests)
	assert.Equal(t, 1, suite.Skipped)
	require.Len(t, suite.TestCases, 1)

	tc := suite.TestCases[0]
	assert.Equal(t, "load-document", tc.Name)
	require.NotNil(t, tc.Skipped)
	assert.Equal(t, "README.md not found", tc.Skipped.Message)
}

func TestConvertToJUnit_Properties(t *testing.T) {
	suites := ConvertToJUnit(sampleOutcomes())
	props := suites.TestSuites[0].Properties

	propMap := make(map[string]string)
	for _, p := range props {
		propMap[p.Name] = p.Value
	}

	assert.Equal(t, "failed", propMap["status"])
	assert.Equal(t, "0.6667", propMap["pass_rate"])
}

func TestConvertToJUnit_NoOutcomes(t *testing.T) {
	suites := ConvertToJUnit(nil)

	assert.Equal(t, 0, suites.Tests)
	assert.Empty(t, suites.TestSuites)
}

func TestWriteJUnitXML_ValidXML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.xml")

	err := WriteJUnitXML(sampleOutcomes(), path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, "<?xml"))

	// Verify it parses as valid XML
	var parsed JUnitTestSuites
	require.NoError(t, xml.Unmarshal(data, &parsed))
	assert.Equal(t, 4, parsed.Tests)
	require.Len(t, parsed.TestSuites, 2)
}
