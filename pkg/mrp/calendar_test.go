package mrp

import "testing"

func TestParseDayRoundTrip(t *testing.T) {
	d, err := ParseDay("2025-03-14")
	if err != nil {
		t.Fatalf("ParseDay: %v", err)
	}
	if got := d.String(); got != "2025-03-14" {
		t.Fatalf("String() = %q, want 2025-03-14", got)
	}
}

func TestParseDayInvalid(t *testing.T) {
	if _, err := ParseDay("not-a-date"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestDayArithmetic(t *testing.T) {
	d, _ := ParseDay("2025-01-01")
	if got := d.AddDays(31).String(); got != "2025-02-01" {
		t.Fatalf("AddDays(31) = %q, want 2025-02-01", got)
	}

	a, _ := ParseDay("2025-01-01")
	b, _ := ParseDay("2025-01-10")
	if got := b.Sub(a); got != 9 {
		t.Fatalf("Sub() = %d, want 9", got)
	}
	if !a.Before(b) || b.After(a) == false {
		t.Fatal("Before/After inconsistent")
	}
}

func TestDayClamp(t *testing.T) {
	lo, _ := ParseDay("2025-01-01")
	hi, _ := ParseDay("2025-01-31")
	mid, _ := ParseDay("2025-01-15")
	early, _ := ParseDay("2024-12-01")
	late, _ := ParseDay("2025-02-15")

	if got := mid.Clamp(lo, hi); got != mid {
		t.Fatalf("Clamp(mid) = %v, want %v", got, mid)
	}
	if got := early.Clamp(lo, hi); got != lo {
		t.Fatalf("Clamp(early) = %v, want %v", got, lo)
	}
	if got := late.Clamp(lo, hi); got != hi {
		t.Fatalf("Clamp(late) = %v, want %v", got, hi)
	}
}

func TestDaysInRange(t *testing.T) {
	start, _ := ParseDay("2025-01-01")
	end, _ := ParseDay("2025-01-05")
	days := DaysInRange(start, end)
	if len(days) != 5 {
		t.Fatalf("len(days) = %d, want 5", len(days))
	}
	if days[0] != start || days[len(days)-1] != end {
		t.Fatalf("range endpoints wrong: %v", days)
	}
}

func TestDayJSON(t *testing.T) {
	d, _ := ParseDay("2025-06-30")
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != `"2025-06-30"` {
		t.Fatalf("MarshalJSON = %s, want \"2025-06-30\"", data)
	}

	var roundTrip Day
	if err := roundTrip.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if roundTrip != d {
		t.Fatalf("UnmarshalJSON round trip = %v, want %v", roundTrip, d)
	}
}
