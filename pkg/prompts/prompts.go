// Package prompts holds the static guidance text shown to patients during
// the guided video and audio capture sequences.
package prompts

const (
	// VideoTaskSeconds is how long each video task is displayed.
	VideoTaskSeconds = 10
	// VideoTotalSeconds is the full length of a guided video capture.
	VideoTotalSeconds = 60

	// AudioTaskSeconds is how long each audio task is displayed.
	AudioTaskSeconds = 15
	// AudioTotalSeconds is the full length of a guided audio capture.
	AudioTotalSeconds = 60
)

// Task is one step in a guided capture sequence.
type Task struct {
	Title    string `json:"title"`
	Guidance string `json:"guidance"`
}

// VideoTasks are displayed one after another during video recording,
// VideoTaskSeconds each.
var VideoTasks = []Task{
	{"Facial expressions & blink rate", "Keep your face visible. Blink normally and show a few natural expressions."},
	{"Resting tremor & postural tremor", "Keep your hands relaxed on your lap. Observe for tremors while resting."},
	{"Finger tapping (bradykinesia)", "Tap your index finger and thumb together repeatedly for 5 seconds."},
	{"Arm swing & gait", "Stand and walk a few steps, letting your arms swing naturally."},
	{"Postural stability", "Stand still, then turn around carefully. Try not to lose balance."},
	{"Facial symmetry & head tremor", "Smile naturally, relax your face, and keep head still."},
}

// AudioTasks are displayed one after another during audio recording,
// AudioTaskSeconds each.
var AudioTasks = []Task{
	{"Reading", "Read aloud: 'The quick brown fox jumps over the lazy dog'"},
	{"Counting", "Count clearly: 'One, two, three ... up to fifteen'"},
	{"Naming", "Say three fruits you like"},
	{"Description", "Describe what you see around you"},
}

// AudioFeatures describe what the audio analysis looks at. They are shown
// on the analysis screen, not during recording.
var AudioFeatures = []Task{
	{"Speech rate & fluency", "Analysis of speaking speed and smoothness of speech"},
	{"Voice quality & stability", "Assessment of voice tremor and pitch variations"},
	{"Articulation precision", "Clarity of consonants and vowel pronunciation"},
	{"Pause patterns", "Frequency and duration of speech pauses"},
	{"Monotonicity", "Variation in pitch and tone during speech"},
	{"Word finding ability", "Ease of retrieving and expressing words"},
	{"Semantic coherence", "Logical flow and meaning in speech"},
	{"Memory recall", "Ability to remember and repeat information"},
	{"Cognitive processing", "Speed of verbal responses and comprehension"},
	{"Neurological speech markers", "Signs of motor speech disorders"},
}

// VideoTaskAt returns the task in effect at the given elapsed second,
// clamped to the last task once the sequence runs out.
func VideoTaskAt(elapsedSeconds int) (int, Task) {
	idx := elapsedSeconds / VideoTaskSeconds
	if idx >= len(VideoTasks) {
		idx = len(VideoTasks) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx, VideoTasks[idx]
}

// AudioTaskAt returns the task in effect at the given elapsed second,
// clamped to the last task once the sequence runs out.
func AudioTaskAt(elapsedSeconds int) (int, Task) {
	idx := elapsedSeconds / AudioTaskSeconds
	if idx >= len(AudioTasks) {
		idx = len(AudioTasks) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx, AudioTasks[idx]
}
