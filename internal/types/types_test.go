package types

import (
	"encoding/json"
	"math"
	"testing"
	"time"
)

func TestTimeUnitString(t *testing.T) {
	tests := []struct {
		unit     TimeUnit
		expected string
	}{
		{Nanoseconds, "nanoseconds"},
		{Microseconds, "microseconds"},
		{Milliseconds, "milliseconds"},
		{Seconds, "seconds"},
		{Minutes, "minutes"},
		{Hours, "hours"},
		{Days, "days"},
		{TimeUnit(0), "unknown"},
		{TimeUnit(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.unit.String(); got != tt.expected {
				t.Errorf("TimeUnit.String() = %s, want %s", got, tt.expected)
			}
		})
	}
}

func TestTimeUnitDuration(t *testing.T) {
	tests := []struct {
		unit     TimeUnit
		expected time.Duration
	}{
		{Nanoseconds, time.Nanosecond},
		{Microseconds, time.Microsecond},
		{Milliseconds, time.Millisecond},
		{Seconds, time.Second},
		{Minutes, time.Minute},
		{Hours, time.Hour},
		{Days, 24 * time.Hour},
		{TimeUnit(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			if got := tt.unit.Duration(); got != tt.expected {
				t.Errorf("Duration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTimeUnitConvert(t *testing.T) {
	tests := []struct {
		name     string
		dst      TimeUnit
		amount   int64
		src      TimeUnit
		expected int64
	}{
		{"same unit", Milliseconds, 42, Milliseconds, 42},
		{"ms to ns", Nanoseconds, 105, Milliseconds, 105_000_000},
		{"s to ms", Milliseconds, 3, Seconds, 3000},
		{"days to hours", Hours, 2, Days, 48},
		{"ns to ms truncates", Milliseconds, 1_999_999, Nanoseconds, 1},
		{"ns to s truncates to zero", Seconds, 999_999_999, Nanoseconds, 0},
		{"negative truncates toward zero", Milliseconds, -1_500_000, Nanoseconds, -1},
		{"saturates high", Nanoseconds, math.MaxInt64 / 1000, Seconds, math.MaxInt64},
		{"saturates low", Nanoseconds, math.MinInt64 / 1000, Seconds, math.MinInt64},
		{"largest exact value", Nanoseconds, math.MaxInt64 / 1000, Microseconds, (math.MaxInt64 / 1000) * 1000},
		{"invalid destination", TimeUnit(0), 5, Seconds, 0},
		{"invalid source", Seconds, 5, TimeUnit(42), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dst.Convert(tt.amount, tt.src); got != tt.expected {
				t.Errorf("%s.Convert(%d, %s) = %d, want %d", tt.dst, tt.amount, tt.src, got, tt.expected)
			}
		})
	}
}

func TestTimeUnitDurationHelpers(t *testing.T) {
	if got := Milliseconds.ToNanos(7); got != 7_000_000 {
		t.Errorf("ToNanos(7) = %d, want 7000000", got)
	}
	if got := Milliseconds.FromDuration(2500 * time.Microsecond); got != 2 {
		t.Errorf("FromDuration(2.5ms) = %d, want 2", got)
	}
	if got := Seconds.ToDuration(90); got != 90*time.Second {
		t.Errorf("ToDuration(90) = %v, want 90s", got)
	}
}

func TestParseTimeUnit(t *testing.T) {
	tests := []struct {
		input    string
		expected TimeUnit
	}{
		{"ns", Nanoseconds},
		{"Nanoseconds", Nanoseconds},
		{"us", Microseconds},
		{"µs", Microseconds},
		{"ms", Milliseconds},
		{" MILLISECONDS ", Milliseconds},
		{"s", Seconds},
		{"m", Minutes},
		{"hours", Hours},
		{"d", Days},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeUnit(tt.input)
			if err != nil {
				t.Fatalf("ParseTimeUnit(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseTimeUnit(%q) = %s, want %s", tt.input, got, tt.expected)
			}
		})
	}

	t.Run("unknown unit", func(t *testing.T) {
		_, err := ParseTimeUnit("fortnights")
		if !IsUnknownUnit(err) {
			t.Errorf("ParseTimeUnit() error = %v, want ErrUnknownUnit", err)
		}
	})
}

func TestTimeUnitTextRoundTrip(t *testing.T) {
	type reportConfig struct {
		Unit TimeUnit `json:"unit"`
	}

	t.Run("decodes from JSON", func(t *testing.T) {
		var cfg reportConfig
		if err := json.Unmarshal([]byte(`{"unit":"ms"}`), &cfg); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		if cfg.Unit != Milliseconds {
			t.Errorf("Unit = %s, want milliseconds", cfg.Unit)
		}
	})

	t.Run("encodes to JSON", func(t *testing.T) {
		data, err := json.Marshal(reportConfig{Unit: Seconds})
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(data) != `{"unit":"seconds"}` {
			t.Errorf("Marshal() = %s", data)
		}
	})

	t.Run("rejects invalid unit", func(t *testing.T) {
		if _, err := json.Marshal(reportConfig{}); err == nil {
			t.Error("Marshal() error = nil, want error for zero unit")
		}
		var cfg reportConfig
		if err := json.Unmarshal([]byte(`{"unit":"lightyears"}`), &cfg); err == nil {
			t.Error("Unmarshal() error = nil, want error")
		}
	})
}

func TestMetricTypeString(t *testing.T) {
	if got := MetricTypeTimer.String(); got != "timer" {
		t.Errorf("MetricTypeTimer.String() = %s, want timer", got)
	}
	if got := MetricType(99).String(); got != "unknown" {
		t.Errorf("MetricType(99).String() = %s, want unknown", got)
	}
}

func TestTimerSnapshotMean(t *testing.T) {
	tests := []struct {
		name     string
		snapshot TimerSnapshot
		expected time.Duration
	}{
		{"empty", TimerSnapshot{}, 0},
		{"single", TimerSnapshot{Count: 1, Total: 10 * time.Millisecond}, 10 * time.Millisecond},
		{"multiple", TimerSnapshot{Count: 4, Total: 100 * time.Millisecond}, 25 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.snapshot.Mean(); got != tt.expected {
				t.Errorf("Mean() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestApplyTimerOptions(t *testing.T) {
	t.Run("no options", func(t *testing.T) {
		opts := ApplyTimerOptions()
		if opts.Clock != nil || opts.Logger != nil {
			t.Errorf("ApplyTimerOptions() = %+v, want zero value", opts)
		}
	})

	t.Run("skips nil options", func(t *testing.T) {
		opts := ApplyTimerOptions(nil, func(o *TimerOptions) { o.Logger = nil })
		if opts == nil {
			t.Fatal("ApplyTimerOptions() returned nil")
		}
	})
}
