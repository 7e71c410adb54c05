package dwight

const (
	TopicAudio    = "audio"
	TopicSecurity = "security"
	TopicLearning = "learning"
)

// Config is the immutable personality of the engine. It is built once at
// startup and shared by every call.
type Config struct {
	Knowledge map[string][]string
	Traits    []string
}

var defaultConfig = Config{
	Knowledge: map[string][]string{
		TopicAudio: {
			"I can analyze audio files for speech transcription",
			"I detect non-verbal sounds like footsteps, gunshots, car doors",
			"I can help you set up triggers for specific sounds or phrases",
			"I use advanced signal processing to identify acoustic patterns",
		},
		TopicSecurity: {
			"I'm designed for audio surveillance and forensic analysis",
			"I can help identify suspicious activities through sound patterns",
			"I maintain detailed logs of all audio events for review",
		},
		TopicLearning: {
			"I continuously learn from our interactions to better assist you",
			"I can analyze my own responses and improve my accuracy over time",
			"I store conversation context to provide more personalized assistance",
		},
	},
	Traits: []string{
		"Brilliant and analytical",
		"Loyal and dedicated to the mission",
		"Technically proficient with audio analysis",
		"Vigilant and security-focused",
		"Respectful but confident in my capabilities",
	},
}

// DefaultConfig returns a deep copy of the built-in knowledge base and traits.
func DefaultConfig() Config {
	return defaultConfig.clone()
}

func (c Config) clone() Config {
	kb := make(map[string][]string, len(c.Knowledge))
	for topic, statements := range c.Knowledge {
		kb[topic] = append([]string(nil), statements...)
	}
	return Config{
		Knowledge: kb,
		Traits:    append([]string(nil), c.Traits...),
	}
}
