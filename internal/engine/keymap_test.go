package engine

import "testing"

func TestRecognized(t *testing.T) {
	recognized := []string{"0", "5", "9", ".", "+", "-", "*", "/", "=", "%", "+/-", "CE", "AC"}
	for _, key := range recognized {
		if !Recognized(key) {
			t.Errorf("Recognized(%q) = false, want true", key)
		}
	}

	unknown := []string{"", "a", "10", "==", "ce", "ac", "±", " ", "**"}
	for _, key := range unknown {
		if Recognized(key) {
			t.Errorf("Recognized(%q) = true, want false", key)
		}
	}
}

func TestPress_ReportsResolution(t *testing.T) {
	e := New()
	for _, key := range []string{"1", "2", "+", "3"} {
		if _, resolved := e.Press(key); resolved {
			t.Errorf("Press(%q) разрешил операцию раньше времени", key)
		}
	}
	res, resolved := e.Press("=")
	if !resolved {
		t.Fatal("Press(\"=\") не сообщил о разрешённой операции")
	}
	if res.Left != 12 || res.Right != 3 || res.Operator != "+" || res.Result != 15 {
		t.Errorf("Press(\"=\") resolution = %+v", res)
	}
}

func TestPress_UnknownKeyIsNoop(t *testing.T) {
	e := New()
	e.Press("5")
	before := e.State()
	if _, resolved := e.Press("bogus"); resolved {
		t.Error("нераспознанный жест разрешил операцию")
	}
	if e.State() != before {
		t.Errorf("нераспознанный жест изменил состояние: %+v -> %+v", before, e.State())
	}
}
