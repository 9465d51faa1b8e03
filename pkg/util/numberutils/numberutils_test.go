package numberutils

import "testing"

func TestToIntWithDefault(t *testing.T) {
	if v, err := ToIntWithDefault("", 72); err != nil || v != 72 {
		t.Errorf("blank: got %d, %v", v, err)
	}
	if v, err := ToIntWithDefault(" 24 ", 72); err != nil || v != 24 {
		t.Errorf("24: got %d, %v", v, err)
	}
	if _, err := ToIntWithDefault("abc", 72); err == nil {
		t.Error("abc: expected an error")
	}
}

func TestRound(t *testing.T) {
	cases := map[float64]float64{
		3.456:  3.46,
		0.004:  0,
		2.5:    2.5,
		-1.005: -1,
		0.125:  0.12,
		0.375:  0.38,
		2.375:  2.38,
	}
	for in, want := range cases {
		if got := Round(in, 2); got != want {
			t.Errorf("Round(%v) = %v, want %v", in, got, want)
		}
	}
}
