package chat

import (
	"regexp"

	"github.com/ashwinyue/mindwell/internal/model"
)

// System prompts per session type. The assessment-discussion type reuses the
// generic chat prompt.
const (
	chatSystemPrompt = `You are a compassionate and supportive AI assistant specializing in mental health and well-being. Your role is to:

1. Provide emotional support and active listening
2. Offer evidence-based coping strategies and techniques
3. Share general mental health information and resources
4. Encourage healthy habits and self-care practices
5. Help users identify patterns in their thoughts and feelings

Important guidelines:
- You are NOT a licensed therapist and cannot provide medical advice or diagnoses
- Always encourage users to seek professional help for serious mental health concerns
- Be empathetic, non-judgmental, and supportive
- If a user expresses suicidal thoughts or self-harm, immediately encourage them to contact emergency services or a crisis hotline
- Keep responses conversational, warm, and accessible
- Avoid clinical jargon unless explaining it in simple terms
- Focus on strengths and resilience while acknowledging struggles

Remember: Your goal is to provide support and guidance while maintaining appropriate boundaries.`

	counselingSystemPrompt = `You are an AI counseling assistant trained to provide therapeutic support using evidence-based approaches. Your role includes:

1. Active listening and empathetic responding
2. Helping users explore their thoughts, feelings, and behaviors
3. Teaching coping skills and stress management techniques
4. Guiding users through problem-solving processes
5. Providing psychoeducation about mental health topics
6. Using techniques from CBT, mindfulness, and other therapeutic modalities

Therapeutic guidelines:
- Maintain a warm, non-judgmental, and professional demeanor
- Use reflective listening and validation techniques
- Ask open-ended questions to encourage self-exploration
- Help users identify cognitive distortions and unhelpful thought patterns
- Teach grounding techniques and mindfulness exercises
- Encourage self-compassion and realistic goal-setting
- Always emphasize that you're a supportive tool, not a replacement for professional therapy

Crisis protocol:
- If users express suicidal ideation, self-harm, or immediate danger, prioritize safety
- Provide crisis resources and encourage immediate professional help
- Document concerning statements for follow-up

Remember: Create a safe, supportive space for healing and growth.`
)

// Welcome messages shown as the first assistant message of a new session.
const (
	chatWelcomeMessage       = "Hi there! I'm here to listen and support you. Whether you want to talk about your day, work through some feelings, or learn about mental wellness, I'm here for you. What's on your mind?"
	counselingWelcomeMessage = "Hello! I'm here to provide you with a safe, supportive space to talk about whatever is on your mind. This is your time, and we can go at whatever pace feels comfortable for you. What would you like to explore today?"
)

// crisisResourcesBlock is appended once per turn to whatever reply the
// pipeline produced whenever crisis language was detected.
const crisisResourcesBlock = "\n\n🚨 **Important**: If you're having thoughts of self-harm or suicide, please reach out for immediate help:\n" +
	"• National Suicide Prevention Lifeline: 988\n" +
	"• Crisis Text Line: Text HOME to 741741\n" +
	"• Emergency Services: 911\n\n" +
	"You don't have to go through this alone. Professional help is available 24/7."

// SystemPrompt returns the system prompt for a session type
func SystemPrompt(sessionType string) string {
	if sessionType == model.SessionTypeCounseling {
		return counselingSystemPrompt
	}
	return chatSystemPrompt
}

// WelcomeMessage returns the welcome message for a session type
func WelcomeMessage(sessionType string) string {
	if sessionType == model.SessionTypeCounseling {
		return counselingWelcomeMessage
	}
	return chatWelcomeMessage
}

var (
	greetingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^hi$`),
		regexp.MustCompile(`^hello$`),
		regexp.MustCompile(`^hey$`),
	}
	stressPattern = regexp.MustCompile(`(stress|stressed|overwhelmed|anxious|anxiety|worry|worried|depressed|sad)`)
)

// SupportiveFallback builds the deterministic reply used when every AI
// provider has failed. It never fails: the latest user text is bucketed into
// greeting, stress or generic, and one of three fixed templates is returned.
func SupportiveFallback(latestUserText, sessionType string) string {
	text := normalize(latestUserText)

	isGreeting := false
	for _, p := range greetingPatterns {
		if p.MatchString(text) {
			isGreeting = true
			break
		}
	}
	mentionsStress := stressPattern.MatchString(text)

	baseIntro := "I hear you. Thanks for reaching out — I’m here to support you."
	if sessionType == model.SessionTypeCounseling {
		baseIntro = "I'm here with you. Thank you for sharing that — I want to make this space safe and supportive."
	}

	if isGreeting {
		return baseIntro + " How are you feeling right now? If it's helpful, try describing what's on your mind in a few words."
	}
	if mentionsStress {
		return baseIntro + " It sounds like things have felt heavy. Would you like to unpack what's been most challenging lately? We can start small. In the meantime, a quick grounding check-in: name 3 things you see, 2 things you feel, and 1 slow breath."
	}
	return baseIntro + " What would you like to explore today? If you're unsure, we can begin with what's been taking most of your energy or anything that’s felt different recently."
}
