package voiceloop

import (
	"testing"
)

func TestClassify_WakeGate(t *testing.T) {
	cases := []struct {
		name       string
		transcript string
		assistant  string
		want       Action
	}{
		{"wake name present", "Nova what time is it", "Nova", ActionForward},
		{"wake name case-insensitive", "hey nova, weather please", "Nova", ActionForward},
		{"wake name absent", "what time is it", "Nova", ActionIgnore},
		{"empty transcript", "", "Nova", ActionIgnore},
		{"no assistant configured", "Nova hello", "", ActionIgnore},
		// Substring match has no word-boundary check; kept on purpose.
		{"substring looseness", "Alright then, do nothing", "Al", ActionForward},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.transcript, tc.assistant)
			if got.Action != tc.want {
				t.Errorf("Classify(%q, %q).Action = %v, want %v", tc.transcript, tc.assistant, got.Action, tc.want)
			}
		})
	}
}

func TestClassify_LocalShortcuts(t *testing.T) {
	d := Classify("Nova please logout now", "Nova")
	if d.Action != ActionLogout {
		t.Fatalf("expected logout, got %v", d.Action)
	}
	if d.Say != "Logging you out." {
		t.Errorf("unexpected acknowledgement %q", d.Say)
	}

	d = Classify("Nova customize yourself", "Nova")
	if d.Action != ActionCustomize {
		t.Fatalf("expected customize, got %v", d.Action)
	}
	if d.Say != "Opening customization page." {
		t.Errorf("unexpected acknowledgement %q", d.Say)
	}

	// British spelling is intercepted too.
	d = Classify("Nova customise yourself", "Nova")
	if d.Action != ActionCustomize {
		t.Fatalf("expected customize for 'customise', got %v", d.Action)
	}
}

func TestClassify_ShortcutsRequireWakeName(t *testing.T) {
	d := Classify("logout", "Nova")
	if d.Action != ActionIgnore {
		t.Errorf("shortcuts must not fire without the wake name, got %v", d.Action)
	}
}

func TestClassify_ShortcutsBeforeForward(t *testing.T) {
	// A transcript that both contains a shortcut and would otherwise be a
	// valid remote command never reaches the server.
	d := Classify("Nova logout and tell me the weather", "Nova")
	if d.Action != ActionLogout {
		t.Errorf("expected local shortcut to win, got %v", d.Action)
	}
}

func TestActionString(t *testing.T) {
	if ActionForward.String() != "forward" || ActionIgnore.String() != "ignore" {
		t.Error("unexpected Action string representation")
	}
}
