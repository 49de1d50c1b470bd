package postgres

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestToDecimal(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "0"},
		{"int64", int64(42), "42"},
		{"int", 7, "7"},
		{"float64", 2.5, "2.5"},
		{"bytes", []byte("123.45"), "123.45"},
		{"string", "99", "99"},
		{"padded string", "  10.5  ", "10.5"},
		{"garbage string", "abc", "0"},
		{"empty string", "", "0"},
		{"unknown type", struct{}{}, "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := toDecimal(tc.in); !got.Equal(mustDec(tc.want)) {
				t.Errorf("toDecimal(%v): expected %s, got %s", tc.in, tc.want, got)
			}
		})
	}

	d := mustDec("3.14")
	if got := toDecimal(d); !got.Equal(d) {
		t.Errorf("decimal passthrough: expected %s, got %s", d, got)
	}
}

func TestToBool(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want bool
	}{
		{"nil", nil, false},
		{"true", true, true},
		{"false", false, false},
		{"int64 zero", int64(0), false},
		{"int64 nonzero", int64(2), true},
		{"float zero", 0.0, false},
		{"string zero", "0", false},
		{"string false", "FALSE", false},
		{"string true", "true", true},
		{"string one", "1", true},
		{"string numeric zero", "0.0", false},
		{"empty string", "", false},
		{"bytes true", []byte("t"), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := toBool(tc.in); got != tc.want {
				t.Errorf("toBool(%v): expected %v, got %v", tc.in, tc.want, got)
			}
		})
	}
}

func TestToDate(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"time", time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC), "2024-03-01"},
		{"plain date", "2024-03-01", "2024-03-01"},
		{"datetime string", "2024-03-01T10:30:00Z", "2024-03-01"},
		{"bytes", []byte("2024-03-01 10:30:00"), "2024-03-01"},
		{"short string", "2024", "2024"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := toDate(tc.in); got != tc.want {
				t.Errorf("toDate(%v): expected %q, got %q", tc.in, tc.want, got)
			}
		})
	}
}

func TestToTime(t *testing.T) {
	if got := toTime(nil); !got.IsZero() {
		t.Errorf("expected zero time for nil, got %v", got)
	}

	loc := time.FixedZone("UTC+6", 6*3600)
	in := time.Date(2024, 3, 1, 10, 0, 0, 0, loc)
	if got := toTime(in); got.Location() != time.UTC || !got.Equal(in) {
		t.Errorf("expected UTC conversion of %v, got %v", in, got)
	}

	want := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	if got := toTime("2024-03-01T10:30:00Z"); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := toTime("2024-03-01 10:30:00"); !got.Equal(want) {
		t.Errorf("space layout: expected %v, got %v", want, got)
	}

	dateOnly := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := toTime("2024-03-01"); !got.Equal(dateOnly) {
		t.Errorf("date fallback: expected %v, got %v", dateOnly, got)
	}

	if got := toTime("garbage"); !got.IsZero() {
		t.Errorf("expected zero time for garbage, got %v", got)
	}
}

func TestMovementTotal(t *testing.T) {
	qty, price := mustDec("10"), mustDec("5")

	if got := movementTotal(nil, qty, price); !got.Equal(mustDec("50")) {
		t.Errorf("nil total: expected 50, got %s", got)
	}
	if got := movementTotal("", qty, price); !got.Equal(mustDec("50")) {
		t.Errorf("empty total: expected 50, got %s", got)
	}
	if got := movementTotal([]byte("  "), qty, price); !got.Equal(mustDec("50")) {
		t.Errorf("blank bytes total: expected 50, got %s", got)
	}
	if got := movementTotal("47", qty, price); !got.Equal(mustDec("47")) {
		t.Errorf("stored total wins: expected 47, got %s", got)
	}
}

func mustDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
