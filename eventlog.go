package main

import (
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// The BPI Challenge 2020 datasets. Keys are dataset names, values the XES
// file each dataset is published as. A dataset whose name contains
// "international" is treated as international for labeling purposes.
var datasetFiles = map[string]string{
	"travel_permits":             "PermitLog.xes",
	"domestic_declarations":      "DomesticDeclarations.xes",
	"international_declarations": "InternationalDeclarations.xes",
	"prepaid_travel":             "PrepaidTravelCost.xes",
	"request_for_payment":        "RequestForPayment.xes",
}

func datasetIsInternational(dataset string) bool {
	return strings.Contains(strings.ToLower(dataset), "international")
}

// sortedDatasetNames returns dataset names in a stable order so extraction
// output is deterministic across runs.
func sortedDatasetNames() []string {
	names := make([]string, 0, len(datasetFiles))
	for name := range datasetFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadEventLog reads a case/activity/timestamp event log. The format is
// chosen by extension: .xes is the hierarchical XML exchange format, .csv a
// flat case_id,activity,timestamp table.
func LoadEventLog(path string) ([]CaseEvent, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xes":
		return LoadXESFile(path)
	case ".csv":
		return LoadCSVEventLog(path)
	default:
		return nil, fmt.Errorf("unsupported event log format: %s", path)
	}
}

// Minimal XES subset: a log of traces, each trace carrying string attributes
// (concept:name = case ID) and events with string and date attributes
// (concept:name = activity, time:timestamp = occurrence time).
type xesLog struct {
	XMLName xml.Name   `xml:"log"`
	Traces  []xesTrace `xml:"trace"`
}

type xesTrace struct {
	Strings []xesAttr  `xml:"string"`
	Events  []xesEvent `xml:"event"`
}

type xesEvent struct {
	Strings []xesAttr `xml:"string"`
	Dates   []xesAttr `xml:"date"`
}

type xesAttr struct {
	Key   string `xml:"key,attr"`
	Value string `xml:"value,attr"`
}

func attrValue(attrs []xesAttr, key string) string {
	for _, a := range attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

func LoadXESFile(path string) ([]CaseEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open event log: %w", err)
	}
	defer f.Close()

	var doc xesLog
	if err := xml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse xes %s: %w", filepath.Base(path), err)
	}

	var events []CaseEvent
	for _, trace := range doc.Traces {
		caseID := attrValue(trace.Strings, "concept:name")
		if caseID == "" {
			continue
		}
		for _, ev := range trace.Events {
			activity := attrValue(ev.Strings, "concept:name")
			stamp := attrValue(ev.Dates, "time:timestamp")
			if activity == "" || stamp == "" {
				continue
			}
			ts, err := parseEventTime(stamp)
			if err != nil {
				return nil, fmt.Errorf("parse xes timestamp %q in case %s: %w", stamp, caseID, err)
			}
			events = append(events, CaseEvent{CaseID: caseID, Activity: activity, Timestamp: ts})
		}
	}
	return events, nil
}

// LoadCSVEventLog reads a flat event table with a case_id,activity,timestamp
// header. Column order follows the header, so exports with extra columns or
// reordered columns still load.
func LoadCSVEventLog(path string) ([]CaseEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open event log: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv %s: %w", filepath.Base(path), err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	col := map[string]int{}
	for i, name := range records[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	caseCol, okCase := col["case_id"]
	actCol, okAct := col["activity"]
	tsCol, okTS := col["timestamp"]
	if !okCase || !okAct || !okTS {
		return nil, fmt.Errorf("csv %s missing case_id/activity/timestamp header", filepath.Base(path))
	}

	var events []CaseEvent
	for _, rec := range records[1:] {
		if len(rec) <= caseCol || len(rec) <= actCol || len(rec) <= tsCol {
			continue
		}
		ts, err := parseEventTime(rec[tsCol])
		if err != nil {
			return nil, fmt.Errorf("parse csv timestamp %q: %w", rec[tsCol], err)
		}
		events = append(events, CaseEvent{
			CaseID:    strings.TrimSpace(rec[caseCol]),
			Activity:  strings.TrimSpace(rec[actCol]),
			Timestamp: ts,
		})
	}
	return events, nil
}

var eventTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseEventTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range eventTimeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
