package reporting

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/readmecheck/readmecheck/internal/checks"
)

// JUnit XML schema types

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Skipped    int              `xml:"skipped,attr"`
	Time       float64          `xml:"time,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one README's check run.
type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Skipped    int             `xml:"skipped,attr"`
	Time       float64         `xml:"time,attr"`
	Timestamp  string          `xml:"timestamp,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one check.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Time      float64       `xml:"time,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
	Skipped   *JUnitSkipped `xml:"skipped,omitempty"`
}

// JUnitFailure represents a failed check.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitSkipped marks a test as skipped.
type JUnitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

// JUnitProperty is a key-value metadata entry.
type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ConvertToJUnit converts suite outcomes to JUnit XML format. Each README
// becomes one testsuite, each check one testcase. A suite skipped because its
// README is missing carries a single skipped load testcase so CI dashboards
// show the document rather than dropping it silently.
func ConvertToJUnit(outcomes []SuiteOutcome) *JUnitTestSuites {
	all := &JUnitTestSuites{}

	for _, o := range outcomes {
		suite := convertSuiteOutcome(&o)
		all.Tests += suite.Tests
		all.Failures += suite.Failures
		all.Skipped += suite.Skipped
		all.Time += suite.Time
		all.TestSuites = append(all.TestSuites, suite)
	}

	return all
}

func convertSuiteOutcome(o *SuiteOutcome) JUnitTestSuite {
	suite := JUnitTestSuite{
		Name:      o.Target,
		Time:      o.Duration.Seconds(),
		Timestamp: o.Timestamp.Format(time.RFC3339),
		Properties: []JUnitProperty{
			{Name: "status", Value: o.Status},
			{Name: "pass_rate", Value: fmt.Sprintf("%.4f", o.PassRate())},
		},
	}

	if o.Status == StatusSkipped {
		suite.Tests = 1
		suite.Skipped = 1
		suite.TestCases = []JUnitTestCase{{
			Name:      "load-document",
			Classname: o.Target,
			Skipped:   &JUnitSkipped{Message: o.SkipReason},
		}}
		return suite
	}

	suite.Tests = len(o.Results)
	for _, r := range o.Results {
		tc := JUnitTestCase{
			Name:      r.Name,
			Classname: o.Target,
		}
		if !r.Passed {
			suite.Failures++
			tc.Failure = buildFailure(r)
		}
		suite.TestCases = append(suite.TestCases, tc)
	}
	return suite
}

func buildFailure(r *checks.CheckResult) *JUnitFailure {
	// The first taxonomy kind doubles as the JUnit failure type.
	failureType := "CheckFailure"
	if holder, ok := r.Data.(checks.FailureHolder); ok {
		if failures := holder.GetFailures(); len(failures) > 0 {
			failureType = string(failures[0].Kind)
		}
	}

	return &JUnitFailure{
		Message: r.Summary,
		Type:    failureType,
		Body:    strings.Join(r.Details, "\n"),
	}
}

// WriteJUnitXML writes JUnit XML for the outcomes to the specified file path.
func WriteJUnitXML(outcomes []SuiteOutcome, path string) error {
	suites := ConvertToJUnit(outcomes)

	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JUnit XML: %w", err)
	}

	output := append([]byte(xml.Header), data...)
	return os.WriteFile(path, output, 0644)
}
