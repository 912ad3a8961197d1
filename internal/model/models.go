package model

// AllModels is the single registration point used by AutoMigrate.
var AllModels = []interface{}{
	&User{},
	&AuthToken{},
	&Session{},
	&Message{},
	&Counselor{},
	&Booking{},
	&Resource{},
	&Assessment{},
	&AssessmentResponse{},
}
