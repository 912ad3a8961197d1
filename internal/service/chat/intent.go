package chat

import (
	"regexp"
	"strings"
)

// IntentKind identifies the short-circuit action a user message maps to
type IntentKind string

const (
	IntentNone           IntentKind = "none"
	IntentNavigate       IntentKind = "navigate"
	IntentAssessmentList IntentKind = "assessment_list"
	IntentAssessmentOpen IntentKind = "assessment_open"
	IntentResourceList   IntentKind = "resource_list"
	IntentResourceOpen   IntentKind = "resource_open"
	IntentCounselorList  IntentKind = "counselor_list"
	IntentBookingStart   IntentKind = "booking_start"
	IntentBookingSet     IntentKind = "booking_set"
	IntentBookingDirect  IntentKind = "booking_direct"
	IntentBookingSubmit  IntentKind = "booking_submit"
)

// Booking draft fields targeted by IntentBookingSet
const (
	FieldCounselorName = "counselorName"
	FieldReason        = "reason"
	FieldPreferredTime = "preferredTime"
)

// Intent is the classification result for one user message
type Intent struct {
	Kind  IntentKind
	Route string // IntentNavigate
	Label string // IntentNavigate
	Name  string // IntentAssessmentOpen, IntentResourceOpen
	Field string // IntentBookingSet
	Value string // IntentBookingSet

	// IntentBookingDirect
	CounselorName string
	Reason        string
}

type navigationRule struct {
	route    string
	label    string
	patterns []*regexp.Regexp
}

var navigationRules = []navigationRule{
	{route: "/app/resources", label: "Resources", patterns: compileAll(
		`^go to resources$`, `^open resources$`, `^go to resource$`, `^open resource$`,
		`^go to the resources?$`, `^open the resources?$`,
	)},
	{route: "/app/assessment", label: "Self-Assessment", patterns: compileAll(
		`^go to (self[-\s])?assessments?$`, `^open (self[-\s])?assessments?$`,
	)},
	{route: "/app/profile", label: "Profile", patterns: compileAll(`^go to profile$`, `^open profile$`)},
	{route: "/app/dashboard", label: "Dashboard", patterns: compileAll(`^go to dashboard$`, `^open dashboard$`)},
	{route: "/app/chat", label: "Chat", patterns: compileAll(`^go to chat$`, `^open chat$`)},
	{route: "/app/counselors", label: "Counselors", patterns: compileAll(
		`^go to counselors$`, `^open counselors$`, `^show counselors$`,
		`^go to the counselors?$`, `^open the counselors?$`,
	)},
	{route: "/app/bookings", label: "Bookings", patterns: compileAll(
		`^go to bookings$`, `^open bookings$`, `^go to my bookings$`, `^open my bookings$`,
		`^go to the bookings?$`, `^open the bookings?$`,
	)},
}

var (
	resourceListPatterns = compileAllCI(
		`(what\s+are\s+the\s+resources\s+available)`,
		`(what\s+are\s+the\s+available\s+resources)`,
		`(show|list)\s+(available\s+)?resources`,
		`(what\s+resources\s+(do\s+you\s+have|are\s+there))`,
	)
	assessmentListPatterns = compileAllCI(
		`(what\s+are\s+the\s+available\s+(self[-\s])?assessments)`,
		`(what\s+are\s+the\s+(self[-\s])?assessments\s+available)`,
		`(show|list)\s+(available\s+)?(self[-\s])?assessments`,
		`(what\s+(self[-\s])?assessments\s+(do\s+you\s+have|are\s+there))`,
	)
	counselorListPatterns = compileAllCI(
		`(who\s+are\s+the\s+counselors\s+available)`,
		`(what\s+counselors\s+are\s+available)`,
		`(show|list)\s+(available\s+)?counselors`,
		`(who\s+are\s+the\s+counselors)`,
	)

	openViewPrefixPattern = regexp.MustCompile(`(?i)^\s*(open|view)\s+`)
	resourceOpenPattern   = regexp.MustCompile(`(?i)^(open|view)\s+(.+)$`)
	assessmentOpenPattern = regexp.MustCompile(`(?i)^(open|view|start|begin|take)\s+(.+)$`)

	bookingStartPatterns = compileAllCI(
		`^book\s+(a\s+)?counseling(\s+session)?`,
		`^i\s+want\s+to\s+book\s+(a\s+)?counseling`,
		`^schedule\s+(a\s+)?counseling`,
	)
	bookingCounselorPattern = regexp.MustCompile(`(?i)counselor\s+(is\s+)?(.+)`)
	bookingReasonPattern    = regexp.MustCompile(`(?i)reason\s+(is\s+)?(.+)`)
	bookingTimePattern      = regexp.MustCompile(`(?i)time\s+(is\s+)?(.+)`)
	bookingDirectForPattern = regexp.MustCompile(`(?i)^book\s+(a\s+)?counsel(ing)?\s+(session|meeting)?\s+with\s+(.+?)\s+(for|about|regarding|because|on)\s+(.+)$`)
	bookingDirectAndPattern = regexp.MustCompile(`(?i)^book\s+(a\s+)?counsel(ing)?\s+(session|meeting)?\s+with\s+(.+?)\s+and\s+reason(\s+is|\s+as)?\s+(.+)$`)
	bookingSubmitPattern    = regexp.MustCompile(`^(submit|confirm|book|send)\b`)
)

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

func compileAllCI(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile("(?i)"+e))
	}
	return out
}

func matchAny(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// Classify maps a user message to an intent. Checks run in a fixed order:
// navigation, assessment, resource, counselor, booking. The first hit wins;
// a message matching nothing yields IntentNone and flows to the AI pipeline.
func Classify(text string) Intent {
	t := normalize(text)

	for _, rule := range navigationRules {
		if matchAny(rule.patterns, t) {
			return Intent{Kind: IntentNavigate, Route: rule.route, Label: rule.label}
		}
	}

	if intent, ok := classifyAssessment(text, t); ok {
		return intent
	}
	if intent, ok := classifyResource(text, t); ok {
		return intent
	}
	if matchAny(counselorListPatterns, text) ||
		(strings.Contains(t, "counselors") && !openViewPrefixPattern.MatchString(t)) {
		return Intent{Kind: IntentCounselorList}
	}
	if intent, ok := classifyBooking(text, t); ok {
		return intent
	}

	return Intent{Kind: IntentNone}
}

func classifyAssessment(text, t string) (Intent, bool) {
	if matchAny(assessmentListPatterns, text) ||
		(strings.Contains(t, "assessment") && !openViewPrefixPattern.MatchString(t)) {
		return Intent{Kind: IntentAssessmentList}, true
	}
	if m := assessmentOpenPattern.FindStringSubmatch(t); m != nil {
		name := strings.TrimSpace(m[2])
		if name != "" && name != "assessment" && name != "assessments" {
			return Intent{Kind: IntentAssessmentOpen, Name: name}, true
		}
	}
	return Intent{}, false
}

func classifyResource(text, t string) (Intent, bool) {
	if matchAny(resourceListPatterns, text) ||
		((strings.Contains(t, "resources") || strings.Contains(t, "resource")) && !openViewPrefixPattern.MatchString(t)) {
		return Intent{Kind: IntentResourceList}, true
	}
	if m := resourceOpenPattern.FindStringSubmatch(t); m != nil {
		name := strings.TrimSpace(m[2])
		if name != "" && name != "resources" && name != "resource" {
			return Intent{Kind: IntentResourceOpen, Name: name}, true
		}
	}
	return Intent{}, false
}

func classifyBooking(text, t string) (Intent, bool) {
	if matchAny(bookingStartPatterns, text) {
		return Intent{Kind: IntentBookingStart}, true
	}

	if m := bookingCounselorPattern.FindStringSubmatch(t); m != nil && strings.TrimSpace(m[2]) != "" {
		return Intent{Kind: IntentBookingSet, Field: FieldCounselorName, Value: strings.TrimSpace(m[2])}, true
	}
	if m := bookingReasonPattern.FindStringSubmatch(t); m != nil && strings.TrimSpace(m[2]) != "" {
		return Intent{Kind: IntentBookingSet, Field: FieldReason, Value: strings.TrimSpace(m[2])}, true
	}
	if m := bookingTimePattern.FindStringSubmatch(t); m != nil && strings.TrimSpace(m[2]) != "" {
		return Intent{Kind: IntentBookingSet, Field: FieldPreferredTime, Value: strings.TrimSpace(m[2])}, true
	}

	if m := bookingDirectForPattern.FindStringSubmatch(t); m != nil && strings.TrimSpace(m[4]) != "" && strings.TrimSpace(m[6]) != "" {
		return Intent{Kind: IntentBookingDirect, CounselorName: strings.TrimSpace(m[4]), Reason: strings.TrimSpace(m[6])}, true
	}
	if m := bookingDirectAndPattern.FindStringSubmatch(t); m != nil && strings.TrimSpace(m[4]) != "" && strings.TrimSpace(m[6]) != "" {
		return Intent{Kind: IntentBookingDirect, CounselorName: strings.TrimSpace(m[4]), Reason: strings.TrimSpace(m[6])}, true
	}

	if bookingSubmitPattern.MatchString(t) {
		return Intent{Kind: IntentBookingSubmit}, true
	}
	return Intent{}, false
}
