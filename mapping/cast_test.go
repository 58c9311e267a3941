package mapping_test

import (
	"reflect"
	"testing"

	"github.com/materials-io/emeta/mapping"
)

func TestAsFloat(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{200.0, 200.0},
		{float32(1.5), 1.5},
		{42, 42.0},
		{int64(7), 7.0},
		{uint16(3), 3.0},
		{" 120.5 ", 120.5},
	}
	for _, c := range cases {
		got, err := mapping.AsFloat(c.in)
		if err != nil {
			t.Fatalf("AsFloat(%v): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("AsFloat(%v) = %v, want %v", c.in, got, c.want)
		}
	}
	for _, in := range []any{"watts", nil, []any{1}} {
		if _, err := mapping.AsFloat(in); err == nil {
			t.Fatalf("AsFloat(%v) should fail", in)
		}
	}
}

func TestAsInt(t *testing.T) {
	if got, err := mapping.AsInt("300"); err != nil || got != int64(300) {
		t.Fatalf("AsInt(300) = %v, %v", got, err)
	}
	if got, err := mapping.AsInt(12.0); err != nil || got != int64(12) {
		t.Fatalf("AsInt(12.0) = %v, %v", got, err)
	}
	if _, err := mapping.AsInt(12.5); err == nil {
		t.Fatalf("fractional values must not round silently")
	}
	if _, err := mapping.AsInt("12.5"); err == nil {
		t.Fatalf("fractional strings must fail the int cast")
	}
}

func TestAsString(t *testing.T) {
	if got, _ := mapping.AsString(3.5); got != "3.5" {
		t.Fatalf("AsString(3.5) = %v", got)
	}
	if got, _ := mapping.AsString("s"); got != "s" {
		t.Fatalf("AsString(s) = %v", got)
	}
	if _, err := mapping.AsString(nil); err == nil {
		t.Fatalf("nil is not castable")
	}
}

func TestAsBool(t *testing.T) {
	for in, want := range map[any]bool{true: true, "true": true, "0": false, 1: true, 0.0: false} {
		got, err := mapping.AsBool(in)
		if err != nil || got != want {
			t.Fatalf("AsBool(%v) = %v, %v (want %v)", in, got, err, want)
		}
	}
	if _, err := mapping.AsBool("sometimes"); err == nil {
		t.Fatalf("unparseable bool must fail")
	}
}

func TestAsStringList(t *testing.T) {
	got, err := mapping.AsStringList([]any{"Fe", "O"})
	if err != nil {
		t.Fatalf("AsStringList: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Fe", "O"}) {
		t.Fatalf("got %v", got)
	}
	if _, err := mapping.AsStringList("Fe"); err == nil {
		t.Fatalf("a bare scalar is not a list")
	}
}

func TestFloatSuffix(t *testing.T) {
	cast := mapping.FloatSuffix(" mm")
	got, err := cast("2.5 mm")
	if err != nil || got != 2.5 {
		t.Fatalf("FloatSuffix(2.5 mm) = %v, %v", got, err)
	}
	if _, err := cast("wide open"); err == nil {
		t.Fatalf("non-numeric label must fail")
	}
}

func TestScale(t *testing.T) {
	if got := mapping.Scale(1000)(0.195); got != 195.0 {
		t.Fatalf("Scale(1000)(0.195) = %v", got)
	}
}

func TestKnownUnit(t *testing.T) {
	for _, u := range []mapping.Unit{mapping.KiloEV, mapping.MicroA, mapping.SR, mapping.NUM} {
		if !mapping.KnownUnit(u) {
			t.Fatalf("%s should be known", u)
		}
	}
	if mapping.KnownUnit("Furlong") {
		t.Fatalf("unknown unit accepted")
	}
}

func TestIssues_ErrorSummary(t *testing.T) {
	iss := mapping.Issues{
		{Path: "/a", Code: mapping.CodeCastFailure},
		{Path: "/b", Code: mapping.CodeNoMatch},
		{Path: "/c", Code: mapping.CodeCastFailure},
		{Path: "/d", Code: mapping.CodeCastFailure},
	}
	if s := iss.Error(); s == "" {
		t.Fatalf("expected non-empty summary")
	}
	if got, ok := mapping.AsIssues(error(iss)); !ok || len(got) != 4 {
		t.Fatalf("AsIssues round trip failed: %v %v", got, ok)
	}
}
