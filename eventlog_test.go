package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

const sampleXES = `<?xml version="1.0" encoding="UTF-8"?>
<log xes.version="1.0" xmlns="http://www.xes-standard.org/">
  <trace>
    <string key="concept:name" value="declaration 100"/>
    <event>
      <string key="concept:name" value="Declaration SUBMITTED by EMPLOYEE"/>
      <string key="org:resource" value="STAFF MEMBER"/>
      <date key="time:timestamp" value="2018-01-10T09:00:00.000+00:00"/>
    </event>
    <event>
      <string key="concept:name" value="Declaration APPROVED by SUPERVISOR"/>
      <date key="time:timestamp" value="2018-01-13T14:30:00.000+00:00"/>
    </event>
  </trace>
  <trace>
    <string key="concept:name" value="declaration 101"/>
    <event>
      <string key="concept:name" value="Declaration REJECTED by SUPERVISOR"/>
      <date key="time:timestamp" value="2018-01-15T08:00:00.000+00:00"/>
    </event>
  </trace>
</log>
`

func TestLoadXESFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.xes")
	writeTestFile(t, path, sampleXES)

	events, err := LoadXESFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	first := events[0]
	if first.CaseID != "declaration 100" {
		t.Errorf("unexpected case ID %q", first.CaseID)
	}
	if first.Activity != "Declaration SUBMITTED by EMPLOYEE" {
		t.Errorf("unexpected activity %q", first.Activity)
	}
	want := time.Date(2018, 1, 10, 9, 0, 0, 0, time.UTC)
	if !first.Timestamp.Equal(want) {
		t.Errorf("unexpected timestamp %v, want %v", first.Timestamp, want)
	}

	if events[2].CaseID != "declaration 101" {
		t.Errorf("second trace not loaded: %+v", events[2])
	}
}

func TestLoadCSVEventLogHeaderMapped(t *testing.T) {
	// Columns out of order plus an extra column; the header decides.
	path := filepath.Join(t.TempDir(), "events.csv")
	writeTestFile(t, path, "timestamp,extra,case_id,activity\n"+
		"2018-01-10T09:00:00Z,x,c1,Submitted\n"+
		"2018-01-12 10:00:00,y,c1,Approved\n")

	events, err := LoadCSVEventLog(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].CaseID != "c1" || events[0].Activity != "Submitted" {
		t.Errorf("unexpected first event: %+v", events[0])
	}
	if events[1].Timestamp.Hour() != 10 {
		t.Errorf("space-separated timestamp not parsed: %v", events[1].Timestamp)
	}
}

func TestLoadCSVEventLogMissingHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	writeTestFile(t, path, "case,act,when\nc1,Submitted,2018-01-10\n")

	if _, err := LoadCSVEventLog(path); err == nil {
		t.Fatal("expected an error for a missing header")
	}
}

func TestLoadEventLogUnsupportedFormat(t *testing.T) {
	if _, err := LoadEventLog("events.parquet"); err == nil {
		t.Fatal("expected an error for an unsupported extension")
	}
}

func TestParseEventTimeLayouts(t *testing.T) {
	for _, s := range []string{
		"2018-01-10T09:00:00.123+01:00",
		"2018-01-10T09:00:00Z",
		"2018-01-10 09:00:00",
		"2018-01-10",
	} {
		if _, err := parseEventTime(s); err != nil {
			t.Errorf("parseEventTime(%q): %v", s, err)
		}
	}
	if _, err := parseEventTime("10/01/2018"); err == nil {
		t.Error("expected an error for an unrecognized layout")
	}
}

func TestDatasetIsInternational(t *testing.T) {
	if !datasetIsInternational("international_declarations") {
		t.Error("international_declarations should be international")
	}
	if datasetIsInternational("domestic_declarations") {
		t.Error("domestic_declarations should not be international")
	}
}

func TestSortedDatasetNamesStable(t *testing.T) {
	names := sortedDatasetNames()
	if len(names) != len(datasetFiles) {
		t.Fatalf("expected %d names, got %d", len(datasetFiles), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
