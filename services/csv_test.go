package services

import (
	"strings"
	"testing"
)

func TestParseCSVNormalizesHeadersAndTrims(t *testing.T) {
	input := "Name , REGION\n  North Zone , North \n"
	records, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0]["name"] != "North Zone" || records[0]["region"] != "North" {
		t.Fatalf("unexpected record: %v", records[0])
	}
}

func TestParseCSVSkipsEmptyLines(t *testing.T) {
	input := "name,region\nNorth Zone,North\n\n ,\nSouth Zone,South\n"
	records, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestParseCSVToleratesShortRows(t *testing.T) {
	input := "name,region\nNorth Zone\n"
	records, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if records[0]["name"] != "North Zone" {
		t.Fatalf("unexpected name: %q", records[0]["name"])
	}
	if records[0]["region"] != "" {
		t.Fatalf("missing cell must read as empty, got %q", records[0]["region"])
	}
}

func TestParseCSVMalformedFileFailsWhole(t *testing.T) {
	input := "name,region\n\"unterminated,North\n"
	if _, err := ParseCSV(strings.NewReader(input)); err == nil {
		t.Fatal("expected malformed csv to fail")
	}
}

func TestParseCSVHeaderOnly(t *testing.T) {
	records, err := ParseCSV(strings.NewReader("name,region\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestParseCSVEmptyFileIsError(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected empty file to fail")
	}
}
