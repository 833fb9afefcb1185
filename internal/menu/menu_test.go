package menu

import "testing"

func TestTransitions(t *testing.T) {
	tests := []struct {
		name  string
		start State
		ev    Event
		key   string
		want  State
	}{
		{"click opens", Closed, ButtonClick, "", Open},
		{"click closes", Open, ButtonClick, "", Closed},
		{"outside click closes", Open, OutsideClick, "", Closed},
		{"outside click keeps closed", Closed, OutsideClick, "", Closed},
		{"escape closes", Open, KeyDown, "Escape", Closed},
		{"other key ignored", Open, KeyDown, "Enter", Open},
		{"resize closes", Open, Resize, "", Closed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Controller{state: tt.start}
			if got := c.Apply(tt.ev, tt.key); got != tt.want {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
			if c.State() != tt.want {
				t.Errorf("State() = %v, want %v", c.State(), tt.want)
			}
		})
	}
}

func TestInitialStateClosed(t *testing.T) {
	if New().IsOpen() {
		t.Error("new controller should start closed")
	}
}

func TestNilControllerIsNoop(t *testing.T) {
	var c *Controller
	if got := c.Apply(ButtonClick, ""); got != Closed {
		t.Errorf("nil Apply() = %v, want closed", got)
	}
	if c.IsOpen() {
		t.Error("nil controller should report closed")
	}
}

func TestFromQuery(t *testing.T) {
	if !FromQuery("open").IsOpen() {
		t.Error(`FromQuery("open") should be open`)
	}
	for _, v := range []string{"", "closed", "OPEN", "1"} {
		if FromQuery(v).IsOpen() {
			t.Errorf("FromQuery(%q) should be closed", v)
		}
	}
}

func TestToggledDoesNotMutate(t *testing.T) {
	c := New()
	if c.Toggled() != Open {
		t.Error("toggle of closed should be open")
	}
	if c.IsOpen() {
		t.Error("Toggled must not change state")
	}
}
