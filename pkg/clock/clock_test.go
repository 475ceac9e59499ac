package clock

import "testing"

func TestClockAdvance(t *testing.T) {
	tests := []struct {
		name   string
		start  float64
		deltas []float64
		want   float64
	}{
		{"无推进", 0, nil, 0},
		{"正常推进", 0, []float64{16, 16, 16}, 48},
		{"负值被忽略", 100, []float64{-50, 10}, 110},
		{"负起点归零", -5, []float64{1}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.start)
			for _, d := range tt.deltas {
				c.Advance(d)
			}
			if got := c.Now(); got != tt.want {
				t.Errorf("Now() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClockSetMonotonic(t *testing.T) {
	c := New(1000)
	c.Set(500)
	if c.Now() != 1000 {
		t.Errorf("Set must not move backward, got %v", c.Now())
	}
	c.Set(1500)
	if c.Now() != 1500 {
		t.Errorf("expected 1500, got %v", c.Now())
	}
}

func TestFuncSource(t *testing.T) {
	var src Source = Func(func() float64 { return 42 })
	if src.Now() != 42 {
		t.Errorf("expected 42, got %v", src.Now())
	}
}
