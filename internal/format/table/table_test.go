package table

import (
	"reflect"
	"testing"
)

func TestFormatPadsColumns(t *testing.T) {
	rows := [][]string{
		{"GitHub", "@nguyenvanduocit"},
		{"X (Twitter)", "@duocdev"},
	}
	got := Format(rows, nil)
	want := []string{
		"GitHub       @nguyenvanduocit",
		"X (Twitter)  @duocdev",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatRightAlignment(t *testing.T) {
	rows := [][]string{{"stars", "5"}, {"repos", "425"}}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{"stars    5", "repos  425"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatMeasuresWideRunes(t *testing.T) {
	rows := [][]string{{"Được", "a"}, {"日本", "b"}}
	got := Format(rows, nil)
	want := []string{"Được  a", "日本  b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if CellWidth("日本") != 4 {
		t.Fatalf("expected wide runes to count double")
	}
}

func TestFormatEmpty(t *testing.T) {
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
