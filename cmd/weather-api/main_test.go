package main

import "testing"

func TestCaptureScheduleEnabled(t *testing.T) {
	cities := []string{"Thane,IN"}

	cases := []struct {
		name    string
		enabled bool
		cron    string
		cities  []string
		want    bool
	}{
		{"switched on", true, "@every 1h", cities, true},
		{"switch off ignores defaults", false, "@every 1h", cities, false},
		{"blank cron", true, "  ", cities, false},
		{"no cities", true, "@every 1h", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := captureScheduleEnabled(tc.enabled, tc.cron, tc.cities); got != tc.want {
				t.Errorf("captureScheduleEnabled() = %v, want %v", got, tc.want)
			}
		})
	}
}
