package domain

// Mood is the closed set of emotional states the system records.
type Mood string

const (
	MoodHappy       Mood = "happy"
	MoodSad         Mood = "sad"
	MoodEnergetic   Mood = "energetic"
	MoodCalm        Mood = "calm"
	MoodAnxious     Mood = "anxious"
	MoodAngry       Mood = "angry"
	MoodRomantic    Mood = "romantic"
	MoodNostalgic   Mood = "nostalgic"
	MoodFocused     Mood = "focused"
	MoodRelaxed     Mood = "relaxed"
	MoodExcited     Mood = "excited"
	MoodMelancholic Mood = "melancholic"
)

var validMoods = map[Mood]bool{
	MoodHappy: true, MoodSad: true, MoodEnergetic: true, MoodCalm: true,
	MoodAnxious: true, MoodAngry: true, MoodRomantic: true, MoodNostalgic: true,
	MoodFocused: true, MoodRelaxed: true, MoodExcited: true, MoodMelancholic: true,
}

func (m Mood) Valid() bool { return validMoods[m] }

// DetectionMethod is the channel through which a mood was captured.
type DetectionMethod string

const (
	DetectionCamera   DetectionMethod = "camera"
	DetectionVoice    DetectionMethod = "voice"
	DetectionText     DetectionMethod = "text"
	DetectionManual   DetectionMethod = "manual"
	DetectionActivity DetectionMethod = "activity"
	DetectionJournal  DetectionMethod = "journal"
)

var validDetectionMethods = map[DetectionMethod]bool{
	DetectionCamera: true, DetectionVoice: true, DetectionText: true,
	DetectionManual: true, DetectionActivity: true, DetectionJournal: true,
}

func (d DetectionMethod) Valid() bool { return validDetectionMethods[d] }

type TimeOfDay string

const (
	TimeOfDayMorning   TimeOfDay = "morning"
	TimeOfDayAfternoon TimeOfDay = "afternoon"
	TimeOfDayEvening   TimeOfDay = "evening"
	TimeOfDayNight     TimeOfDay = "night"
)

// TimeOfDayForHour maps a wall-clock hour to its band:
// [5,12) morning, [12,17) afternoon, [17,21) evening, else night.
func TimeOfDayForHour(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return TimeOfDayMorning
	case hour >= 12 && hour < 17:
		return TimeOfDayAfternoon
	case hour >= 17 && hour < 21:
		return TimeOfDayEvening
	default:
		return TimeOfDayNight
	}
}

// Trigger is a recorded cause of a mood observation.
type Trigger string

const (
	TriggerWork          Trigger = "work"
	TriggerRelationships Trigger = "relationships"
	TriggerHealth        Trigger = "health"
	TriggerWeather       Trigger = "weather"
	TriggerMusic         Trigger = "music"
	TriggerExercise      Trigger = "exercise"
	TriggerSleep         Trigger = "sleep"
	TriggerSocial        Trigger = "social"
	TriggerNews          Trigger = "news"
	TriggerOther         Trigger = "other"
)

var validTriggers = map[Trigger]bool{
	TriggerWork: true, TriggerRelationships: true, TriggerHealth: true,
	TriggerWeather: true, TriggerMusic: true, TriggerExercise: true,
	TriggerSleep: true, TriggerSocial: true, TriggerNews: true, TriggerOther: true,
}

func (t Trigger) Valid() bool { return validTriggers[t] }
