package chat

import "testing"

func TestClassifyNavigation(t *testing.T) {
	tests := []struct {
		text  string
		route string
	}{
		{"go to resources", "/app/resources"},
		{"open the resources", "/app/resources"},
		{"open resources", "/app/resources"},
		{"go to self-assessments", "/app/assessment"},
		{"open assessment", "/app/assessment"},
		{"Go To Dashboard", "/app/dashboard"},
		{"go to profile", "/app/profile"},
		{"show counselors", "/app/counselors"},
		{"open my bookings", "/app/bookings"},
		{"go to chat", "/app/chat"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			intent := Classify(tt.text)
			if intent.Kind != IntentNavigate {
				t.Fatalf("Classify(%q).Kind = %s, want %s", tt.text, intent.Kind, IntentNavigate)
			}
			if intent.Route != tt.route {
				t.Errorf("Route = %s, want %s", intent.Route, tt.route)
			}
		})
	}
}

func TestClassifyListIntents(t *testing.T) {
	tests := []struct {
		text string
		kind IntentKind
	}{
		{"show resources", IntentResourceList},
		{"what are the available resources", IntentResourceList},
		{"can you tell me about resources for sleep", IntentResourceList},
		{"list assessments", IntentAssessmentList},
		{"what self-assessments do you have", IntentAssessmentList},
		{"I want to take an assessment", IntentAssessmentList},
		{"who are the counselors", IntentCounselorList},
		{"list available counselors", IntentCounselorList},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			intent := Classify(tt.text)
			if intent.Kind != tt.kind {
				t.Errorf("Classify(%q).Kind = %s, want %s", tt.text, intent.Kind, tt.kind)
			}
		})
	}
}

func TestClassifyOpenIntents(t *testing.T) {
	// "open <name>" is captured by the assessment matcher before the resource
	// matcher gets a look; name resolution decides what actually opens.
	intent := Classify("open breathing exercises")
	if intent.Kind != IntentAssessmentOpen {
		t.Fatalf("Kind = %s, want %s", intent.Kind, IntentAssessmentOpen)
	}
	if intent.Name != "breathing exercises" {
		t.Errorf("Name = %q, want %q", intent.Name, "breathing exercises")
	}

	intent = Classify("take the depression check")
	if intent.Kind != IntentAssessmentOpen {
		t.Fatalf("Kind = %s, want %s", intent.Kind, IntentAssessmentOpen)
	}
	if intent.Name != "the depression check" {
		t.Errorf("Name = %q, want %q", intent.Name, "the depression check")
	}
}

func TestClassifyBooking(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{
			name: "start",
			text: "book a counseling session",
			want: Intent{Kind: IntentBookingStart},
		},
		{
			name: "start alt phrasing",
			text: "I want to book counseling",
			want: Intent{Kind: IntentBookingStart},
		},
		{
			name: "schedule",
			text: "schedule a counseling appointment",
			want: Intent{Kind: IntentBookingStart},
		},
		{
			name: "set counselor",
			text: "counselor is Dr Smith",
			want: Intent{Kind: IntentBookingSet, Field: FieldCounselorName, Value: "dr smith"},
		},
		{
			name: "set reason",
			text: "reason is exam anxiety",
			want: Intent{Kind: IntentBookingSet, Field: FieldReason, Value: "exam anxiety"},
		},
		{
			name: "set time",
			text: "time is 4-5 pm",
			want: Intent{Kind: IntentBookingSet, Field: FieldPreferredTime, Value: "4-5 pm"},
		},
		{
			name: "direct with counsel meeting",
			text: "book a counsel meeting with Jane Doe for burnout",
			want: Intent{Kind: IntentBookingDirect, CounselorName: "jane doe", Reason: "burnout"},
		},
		{
			name: "submit",
			text: "confirm",
			want: Intent{Kind: IntentBookingSubmit},
		},
		{
			name: "submit word prefix",
			text: "send it",
			want: Intent{Kind: IntentBookingSubmit},
		},
		{
			name: "no intent",
			text: "I feel really anxious today",
			want: Intent{Kind: IntentNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text)
			if got.Kind != tt.want.Kind {
				t.Fatalf("Classify(%q).Kind = %s, want %s", tt.text, got.Kind, tt.want.Kind)
			}
			if got.Field != tt.want.Field || got.Value != tt.want.Value {
				t.Errorf("Field/Value = %q/%q, want %q/%q", got.Field, got.Value, tt.want.Field, tt.want.Value)
			}
			if got.CounselorName != tt.want.CounselorName || got.Reason != tt.want.Reason {
				t.Errorf("Counselor/Reason = %q/%q, want %q/%q",
					got.CounselorName, got.Reason, tt.want.CounselorName, tt.want.Reason)
			}
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// "book a counseling session with ..." matches the start pattern before
	// the direct pattern; the broader phrase still just starts the flow.
	intent := Classify("book a counseling session with Jane Doe for burnout")
	if intent.Kind != IntentBookingStart {
		t.Errorf("Kind = %s, want %s", intent.Kind, IntentBookingStart)
	}

	// A message naming both resources and assessments resolves to the first
	// matcher in the fixed order.
	intent = Classify("what assessment and resources do you have")
	if intent.Kind != IntentAssessmentList {
		t.Errorf("Kind = %s, want %s", intent.Kind, IntentAssessmentList)
	}
}
