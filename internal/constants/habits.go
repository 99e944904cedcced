package constants

const (
	// MaxHabits is the maximum number of active habits a user can track at once
	MaxHabits = 10

	// HabitNameLimit is the maximum habit name length in runes
	HabitNameLimit = 20
)

// DefaultHabit describes one entry of the seed set inserted by the initial
// schema migration.
type DefaultHabit struct {
	Name  string
	Emoji string
}

// DefaultHabits is the habit set seeded on first launch, in sort order.
var DefaultHabits = []DefaultHabit{
	{Name: "Sleep", Emoji: "🛌"},
	{Name: "Exercise", Emoji: "🚴"},
	{Name: "Nutrition", Emoji: "🥗"},
	{Name: "Mindfulness", Emoji: "🧠"},
	{Name: "Projects", Emoji: "💻"},
}

// EmojiPalette is the set of icons offered when creating or editing a habit.
var EmojiPalette = []string{
	"🛌", "🚴", "🥗", "🧠", "💻",
	"📖", "💪", "🧘", "💊", "🎯",
	"🎨", "🎵", "✍️", "🏃", "🧹",
	"💧", "☀️", "🤝", "📵", "🌿",
}
