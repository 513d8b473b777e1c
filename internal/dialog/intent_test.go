package dialog

import (
	"testing"
)

func TestClassifyIntroduceName(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantName string
	}{
		{"simple", "Soy Manuel", "Manuel"},
		{"multi word name", "hola soy ana maria", "ana maria"},
		{"slices after last occurrence", "soy quien soy Pedro", "Pedro"},
		{"surrounding whitespace trimmed", "soy   Lucía  ", "Lucía"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := Classify(tt.body)
			if intent.Kind != IntentIntroduceName {
				t.Fatalf("kind = %v, want introduce_name", intent.Kind)
			}
			if intent.Name != tt.wantName {
				t.Errorf("name = %q, want %q", intent.Name, tt.wantName)
			}
		})
	}
}

func TestClassifyLowercaseChangesByteWidth(t *testing.T) {
	// "Ⱥ" lowercases to "ⱥ", which is one byte longer in UTF-8. Offsets
	// found in the lowered string must be mapped back to the original
	// before slicing, or extraction panics or grabs shifted text.
	tests := []struct {
		name      string
		body      string
		wantKind  IntentKind
		wantName  string
		wantPhone string
	}{
		{"width-changing rune before name trigger", "Ⱥ soy Ana", IntentIntroduceName, "Ana", ""},
		{"trigger at end of message", "Ⱥsoy", IntentIntroduceName, "", ""},
		{"width-changing rune before phone trigger", "Ⱥ mi teléfono es 600111222", IntentProvidePhone, "", "600111222"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := Classify(tt.body)
			if intent.Kind != tt.wantKind {
				t.Fatalf("kind = %v, want %v", intent.Kind, tt.wantKind)
			}
			if intent.Name != tt.wantName {
				t.Errorf("name = %q, want %q", intent.Name, tt.wantName)
			}
			if intent.Phone != tt.wantPhone {
				t.Errorf("phone = %q, want %q", intent.Phone, tt.wantPhone)
			}
		})
	}
}

func TestClassifyProvidePhone(t *testing.T) {
	intent := Classify("Mi teléfono es 600111222")
	if intent.Kind != IntentProvidePhone {
		t.Fatalf("kind = %v, want provide_phone", intent.Kind)
	}
	if intent.Phone != "600111222" {
		t.Errorf("phone = %q, want 600111222", intent.Phone)
	}
}

func TestClassifyPhoneRequiresAccent(t *testing.T) {
	// No diacritic normalization: "telefono" without the accent does not
	// trigger the phone rule.
	intent := Classify("mi telefono es 600111222")
	if intent.Kind != IntentFallback {
		t.Errorf("kind = %v, want fallback", intent.Kind)
	}
}

func TestClassifyNameWinsOverPhone(t *testing.T) {
	// A body matching both rules routes to the name rule; the phone is
	// ignored.
	intent := Classify("soy Ana y mi teléfono es 600111222")
	if intent.Kind != IntentIntroduceName {
		t.Fatalf("kind = %v, want introduce_name", intent.Kind)
	}
	if intent.Phone != "" {
		t.Errorf("phone = %q, want empty", intent.Phone)
	}
}

func TestClassifyRequestBooking(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDate    string
		wantTime    string
		wantService Service
	}{
		{
			name:        "full booking via quiero una cita",
			body:        "quiero una cita el martes a las 17:30 para botox",
			wantDate:    "martes",
			wantTime:    "17:30",
			wantService: ServiceBotox,
		},
		{
			name:        "full booking via reserva",
			body:        "reserva viernes 10:00 carillas",
			wantDate:    "viernes",
			wantTime:    "10:00",
			wantService: ServiceSmileDesign,
		},
		{
			name:        "diseño maps to smile design",
			body:        "reserva lunes 09:00 diseño",
			wantDate:    "lunes",
			wantTime:    "09:00",
			wantService: ServiceSmileDesign,
		},
		{
			name:        "missing date and time",
			body:        "reserva botox",
			wantService: ServiceBotox,
		},
		{
			name:     "later weekday overwrites earlier",
			body:     "quiero una cita lunes o martes 10:00",
			wantDate: "martes",
			wantTime: "10:00",
		},
		{
			name:     "later time overwrites earlier",
			body:     "reserva martes 10:00 mejor 12:30",
			wantDate: "martes",
			wantTime: "12:30",
		},
		{
			name:     "any token with a colon counts as time",
			body:     "reserva martes http://ejemplo.com",
			wantDate: "martes",
			wantTime: "http://ejemplo.com",
		},
		{
			name:     "accented weekdays recognized",
			body:     "quiero una cita el miércoles 11:15",
			wantDate: "miércoles",
			wantTime: "11:15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := Classify(tt.body)
			if intent.Kind != IntentRequestBooking {
				t.Fatalf("kind = %v, want request_booking", intent.Kind)
			}
			if intent.Date != tt.wantDate {
				t.Errorf("date = %q, want %q", intent.Date, tt.wantDate)
			}
			if intent.Time != tt.wantTime {
				t.Errorf("time = %q, want %q", intent.Time, tt.wantTime)
			}
			if intent.Service != tt.wantService {
				t.Errorf("service = %q, want %q", intent.Service, tt.wantService)
			}
		})
	}
}

func TestClassifyAskLocation(t *testing.T) {
	for _, body := range []string{"¿Dónde estáis?", "pásame la ubicación"} {
		if intent := Classify(body); intent.Kind != IntentAskLocation {
			t.Errorf("Classify(%q).Kind = %v, want ask_location", body, intent.Kind)
		}
	}
}

func TestClassifyFallback(t *testing.T) {
	for _, body := range []string{"hola", "buenas tardes", ""} {
		if intent := Classify(body); intent.Kind != IntentFallback {
			t.Errorf("Classify(%q).Kind = %v, want fallback", body, intent.Kind)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	body := "quiero una cita el martes a las 17:30 para botox"
	if Classify(body) != Classify(body) {
		t.Error("Classify is not deterministic")
	}
}

func TestSlotsComplete(t *testing.T) {
	complete := Intent{Kind: IntentRequestBooking, Date: "martes", Time: "17:30", Service: ServiceBotox}
	if !complete.SlotsComplete() {
		t.Error("expected complete slots")
	}
	for _, partial := range []Intent{
		{Kind: IntentRequestBooking, Time: "17:30", Service: ServiceBotox},
		{Kind: IntentRequestBooking, Date: "martes", Service: ServiceBotox},
		{Kind: IntentRequestBooking, Date: "martes", Time: "17:30"},
	} {
		if partial.SlotsComplete() {
			t.Errorf("expected incomplete slots for %+v", partial)
		}
	}
}
