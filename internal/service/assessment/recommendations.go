package assessment

import "github.com/ashwinyue/mindwell/internal/model"

// recommendationsFor returns guidance lines for a scored assessment
func recommendationsFor(assessmentType, severity string) []string {
	elevated := severity == model.SeverityHigh || severity == model.SeveritySevere

	switch assessmentType {
	case "stress":
		if elevated {
			return []string{
				"Consider speaking with a mental health professional",
				"Practice deep breathing exercises daily",
				"Try progressive muscle relaxation techniques",
			}
		}
		if severity == model.SeverityModerate {
			return []string{
				"Incorporate regular exercise into your routine",
				"Practice mindfulness meditation",
				"Ensure adequate sleep (7-9 hours per night)",
			}
		}
		return []string{
			"Maintain current stress management practices",
			"Continue regular self-care activities",
		}

	case "anxiety":
		if elevated {
			return []string{
				"Seek professional help from a therapist or counselor",
				"Consider cognitive behavioral therapy (CBT)",
				"Practice grounding techniques (5-4-3-2-1 method)",
			}
		}
		if severity == model.SeverityModerate {
			return []string{
				"Try anxiety management apps or guided meditations",
				"Limit caffeine intake",
				"Practice regular breathing exercises",
			}
		}
		return []string{
			"Continue current coping strategies",
			"Maintain social connections",
		}

	case "sleep":
		if elevated {
			return []string{
				"Consult with a sleep specialist",
				"Establish a consistent bedtime routine",
				"Avoid screens 1 hour before bedtime",
			}
		}
		if severity == model.SeverityModerate {
			return []string{
				"Create a comfortable sleep environment",
				"Limit caffeine after 2 PM",
				"Try relaxation techniques before bed",
			}
		}
		return []string{
			"Maintain current sleep hygiene practices",
			"Continue regular sleep schedule",
		}

	case "depression":
		if elevated {
			return []string{
				"🚨 Seek immediate professional help from a mental health provider",
				"💊 Consider discussing medication options with a psychiatrist",
				"🗣️ Contact a crisis helpline if you have thoughts of self-harm",
				"👥 Reach out to trusted friends or family members for support",
				"🏥 Consider intensive outpatient or inpatient treatment if needed",
			}
		}
		if severity == model.SeverityModerate {
			return []string{
				"🩺 Schedule an appointment with a therapist or counselor",
				"🧠 Consider cognitive behavioral therapy (CBT) or interpersonal therapy",
				"🏃‍♂️ Engage in regular physical exercise (30 minutes, 3-5 times per week)",
				"☀️ Spend time outdoors and get natural sunlight daily",
				"😴 Maintain a consistent sleep schedule (7-9 hours per night)",
				"🥗 Focus on nutritious meals and avoid excessive alcohol",
			}
		}
		if severity == model.SeverityMild {
			return []string{
				"📝 Keep a mood journal to track patterns and triggers",
				"🧘‍♀️ Practice mindfulness meditation or deep breathing exercises",
				"👫 Stay connected with supportive friends and family",
				"🎯 Set small, achievable daily goals",
				"🎨 Engage in enjoyable activities or hobbies",
				"📚 Consider self-help books or mental health apps",
			}
		}
		return []string{
			"✅ Continue current positive mental health practices",
			"🔄 Maintain regular self-care routines",
			"📊 Monitor your mood regularly",
			"🤝 Keep strong social connections",
		}

	case "general-wellbeing":
		if elevated {
			return []string{
				"Consider comprehensive mental health evaluation",
				"Focus on building resilience and coping skills",
				"Prioritize work-life balance",
			}
		}
		if severity == model.SeverityModerate {
			return []string{
				"Explore stress management techniques",
				"Consider lifestyle changes for better wellbeing",
				"Build stronger social support networks",
			}
		}
		return []string{
			"Maintain current positive lifestyle habits",
			"Continue personal growth activities",
		}

	default:
		return []string{
			"Continue monitoring your mental health",
			"Practice self-care regularly",
			"Reach out for support when needed",
		}
	}
}
