package assessment

// Option one selectable answer with its score
type Option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// Question one scale question of a template
type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"`
	Reverse  bool     `json:"reverse,omitempty"`
	Options  []Option `json:"options"`
}

// Template a full self-assessment questionnaire
type Template struct {
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// Shared option scales. Reverse-keyed questions carry inverted values so
// scoring stays a plain sum over the selected options.
var (
	frequency5 = []Option{
		{Value: 0, Label: "Never"},
		{Value: 1, Label: "Almost Never"},
		{Value: 2, Label: "Sometimes"},
		{Value: 3, Label: "Fairly Often"},
		{Value: 4, Label: "Very Often"},
	}
	frequency5Reverse = []Option{
		{Value: 4, Label: "Never"},
		{Value: 3, Label: "Almost Never"},
		{Value: 2, Label: "Sometimes"},
		{Value: 1, Label: "Fairly Often"},
		{Value: 0, Label: "Very Often"},
	}
	twoWeekFrequency = []Option{
		{Value: 0, Label: "Not at all"},
		{Value: 1, Label: "Several days"},
		{Value: 2, Label: "More than half the days"},
		{Value: 3, Label: "Nearly every day"},
	}
	weeklyFrequency = []Option{
		{Value: 0, Label: "Not during the past month"},
		{Value: 1, Label: "Less than once a week"},
		{Value: 2, Label: "Once or twice a week"},
		{Value: 3, Label: "Three or more times a week"},
	}
	weeklyFrequencyReverse = []Option{
		{Value: 3, Label: "Never"},
		{Value: 2, Label: "Less than once a week"},
		{Value: 1, Label: "Once or twice a week"},
		{Value: 0, Label: "Three or more times a week"},
	}
	wellbeingFrequency = []Option{
		{Value: 0, Label: "Never"},
		{Value: 1, Label: "Rarely"},
		{Value: 2, Label: "Sometimes"},
		{Value: 3, Label: "Often"},
		{Value: 4, Label: "Always"},
	}
)

// templateOrder is the catalog order shown to clients
var templateOrder = []string{"stress", "anxiety", "depression", "sleep", "general-wellbeing"}

var templates = map[string]*Template{
	"stress": {
		Type:        "stress",
		Title:       "Perceived Stress Scale",
		Description: "This assessment measures your perceived stress levels over the past month.",
		Questions: []Question{
			{ID: "stress_1", Question: "In the last month, how often have you been upset because of something that happened unexpectedly?", Type: "scale", Options: frequency5},
			{ID: "stress_2", Question: "In the last month, how often have you felt that you were unable to control the important things in your life?", Type: "scale", Options: frequency5},
			{ID: "stress_3", Question: "In the last month, how often have you felt nervous and stressed?", Type: "scale", Options: frequency5},
			{ID: "stress_4", Question: "In the last month, how often have you felt confident about your ability to handle your personal problems?", Type: "scale", Reverse: true, Options: frequency5Reverse},
			{ID: "stress_5", Question: "In the last month, how often have you felt that things were going your way?", Type: "scale", Reverse: true, Options: frequency5Reverse},
			{ID: "stress_6", Question: "In the last month, how often have you felt difficulties were piling up so high that you could not overcome them?", Type: "scale", Options: frequency5},
			{ID: "stress_7", Question: "In the last month, how often have you been able to control irritations in your life?", Type: "scale", Reverse: true, Options: frequency5Reverse},
			{ID: "stress_8", Question: "In the last month, how often have you felt that you were on top of things?", Type: "scale", Reverse: true, Options: frequency5Reverse},
			{ID: "stress_9", Question: "In the last month, how often have you been angered because of things that were outside of your control?", Type: "scale", Options: frequency5},
		},
	},
	"anxiety": {
		Type:        "anxiety",
		Title:       "Generalized Anxiety Disorder 9-item (GAD-9)",
		Description: "This assessment screens for generalized anxiety disorder.",
		Questions: []Question{
			{ID: "anxiety_1", Question: "Feeling nervous, anxious, or on edge", Type: "scale", Options: twoWeekFrequency},
			{ID: "anxiety_2", Question: "Not being able to stop or control worrying", Type: "scale", Options: twoWeekFrequency},
			{ID: "anxiety_3", Question: "Worrying too much about different things", Type: "scale", Options: twoWeekFrequency},
			{ID: "anxiety_4", Question: "Trouble relaxing", Type: "scale", Options: twoWeekFrequency},
			{ID: "anxiety_5", Question: "Being so restless that it is hard to sit still", Type: "scale", Options: twoWeekFrequency},
			{ID: "anxiety_6", Question: "Becoming easily annoyed or irritable", Type: "scale", Options: twoWeekFrequency},
			{ID: "anxiety_7", Question: "Feeling afraid, as if something awful might happen", Type: "scale", Options: twoWeekFrequency},
			{ID: "anxiety_8", Question: "Having trouble concentrating on things, such as reading or watching TV", Type: "scale", Options: twoWeekFrequency},
			{ID: "anxiety_9", Question: "Feeling muscle tension, aches, or soreness", Type: "scale", Options: twoWeekFrequency},
		},
	},
	"depression": {
		Type:        "depression",
		Title:       "Patient Health Questionnaire-9 (PHQ-9)",
		Description: "This assessment screens for depression symptoms over the past two weeks.",
		Questions: []Question{
			{ID: "depression_1", Question: "Little interest or pleasure in doing things", Type: "scale", Options: twoWeekFrequency},
			{ID: "depression_2", Question: "Feeling down, depressed, or hopeless", Type: "scale", Options: twoWeekFrequency},
			{ID: "depression_3", Question: "Trouble falling or staying asleep, or sleeping too much", Type: "scale", Options: twoWeekFrequency},
			{ID: "depression_4", Question: "Feeling tired or having little energy", Type: "scale", Options: twoWeekFrequency},
			{ID: "depression_5", Question: "Poor appetite or overeating", Type: "scale", Options: twoWeekFrequency},
			{ID: "depression_6", Question: "Feeling bad about yourself or that you are a failure or have let yourself or your family down", Type: "scale", Options: twoWeekFrequency},
			{ID: "depression_7", Question: "Trouble concentrating on things, such as reading the newspaper or watching television", Type: "scale", Options: twoWeekFrequency},
			{ID: "depression_8", Question: "Moving or speaking so slowly that other people could have noticed, or being so fidgety or restless that you have been moving around a lot more than usual", Type: "scale", Options: twoWeekFrequency},
			{ID: "depression_9", Question: "Thoughts that you would be better off dead, or thoughts of hurting yourself in some way", Type: "scale", Options: twoWeekFrequency},
		},
	},
	"sleep": {
		Type:        "sleep",
		Title:       "Sleep Quality Assessment",
		Description: "This assessment evaluates your sleep quality and patterns.",
		Questions: []Question{
			{ID: "sleep_1", Question: "During the past month, how would you rate your sleep quality overall?", Type: "scale", Options: []Option{
				{Value: 0, Label: "Very good"},
				{Value: 1, Label: "Fairly good"},
				{Value: 2, Label: "Fairly bad"},
				{Value: 3, Label: "Very bad"},
			}},
			{ID: "sleep_2", Question: "During the past month, how often have you had trouble sleeping because you cannot get to sleep within 30 minutes?", Type: "scale", Options: weeklyFrequency},
			{ID: "sleep_3", Question: "During the past month, how often have you had trouble sleeping because you wake up in the middle of the night or early morning?", Type: "scale", Options: weeklyFrequency},
			{ID: "sleep_4", Question: "During the past month, how often have you taken medicine to help you sleep?", Type: "scale", Options: weeklyFrequency},
			{ID: "sleep_5", Question: "During the past month, how often have you had trouble staying awake while driving, eating meals, or engaging in social activity?", Type: "scale", Options: weeklyFrequency},
			{ID: "sleep_6", Question: "During the past month, how often have you felt refreshed after waking up?", Type: "scale", Reverse: true, Options: weeklyFrequencyReverse},
			{ID: "sleep_7", Question: "During the past month, how often have you had trouble sleeping because of bad dreams or nightmares?", Type: "scale", Options: weeklyFrequency},
			{ID: "sleep_8", Question: "During the past month, how often have you felt that your sleep was restless?", Type: "scale", Options: weeklyFrequency},
			{ID: "sleep_9", Question: "During the past month, how often have you felt satisfied with your sleep duration?", Type: "scale", Reverse: true, Options: weeklyFrequencyReverse},
		},
	},
	"general-wellbeing": {
		Type:        "general-wellbeing",
		Title:       "Overall Wellbeing Assessment",
		Description: "This comprehensive assessment evaluates your overall mental wellness and life satisfaction.",
		Questions: []Question{
			{ID: "wellbeing_1", Question: "How satisfied are you with your life as a whole these days?", Type: "scale", Options: []Option{
				{Value: 0, Label: "Extremely dissatisfied"},
				{Value: 1, Label: "Dissatisfied"},
				{Value: 2, Label: "Neither satisfied nor dissatisfied"},
				{Value: 3, Label: "Satisfied"},
				{Value: 4, Label: "Extremely satisfied"},
			}},
			{ID: "wellbeing_2", Question: "How often do you feel that you have a sense of direction in your life?", Type: "scale", Options: wellbeingFrequency},
			{ID: "wellbeing_3", Question: "How often do you feel that your relationships with others are supportive and rewarding?", Type: "scale", Options: wellbeingFrequency},
			{ID: "wellbeing_4", Question: "How often do you feel that you are making progress toward accomplishing your goals?", Type: "scale", Options: wellbeingFrequency},
			{ID: "wellbeing_5", Question: "How often do you feel that you can handle the responsibilities of your daily life?", Type: "scale", Options: wellbeingFrequency},
			{ID: "wellbeing_6", Question: "How often do you feel that you have opportunities to learn and grow as a person?", Type: "scale", Options: wellbeingFrequency},
			{ID: "wellbeing_7", Question: "How often do you feel confident in your ability to think and express your ideas?", Type: "scale", Options: wellbeingFrequency},
			{ID: "wellbeing_8", Question: "How often do you feel that you have a good balance between work/responsibilities and personal time?", Type: "scale", Options: wellbeingFrequency},
			{ID: "wellbeing_9", Question: "How often do you feel optimistic about your future?", Type: "scale", Options: wellbeingFrequency},
		},
	},
}
