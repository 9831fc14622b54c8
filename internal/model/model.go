package model

import "time"

type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

type ColorScheme string

const (
	SchemeLight ColorScheme = "light"
	SchemeDark  ColorScheme = "dark"
)

type TaskKind string

const (
	TaskKindTask     TaskKind = "task"
	TaskKindWellness TaskKind = "wellness"
)

// IconKind identifies a renderable icon. Records carry the key only; resolving
// it to a glyph (and a color) happens at the presentation boundary.
type IconKind string

const (
	IconCoffee   IconKind = "coffee"
	IconDroplets IconKind = "droplets"
	IconTarget   IconKind = "target"
	IconDumbbell IconKind = "dumbbell"
	IconPhone    IconKind = "phone"
	IconBook     IconKind = "book"
	IconHeart    IconKind = "heart"
	IconStar     IconKind = "star"
	IconTrophy   IconKind = "trophy"
	IconAward    IconKind = "award"
	IconFlame    IconKind = "flame"
	IconQuote    IconKind = "quote"
	IconCamera   IconKind = "camera"
	IconTrending IconKind = "trending"
	IconCase     IconKind = "briefcase"
	IconBrain    IconKind = "brain"
	IconDollar   IconKind = "dollar"
	IconCode     IconKind = "code"
	IconPalette  IconKind = "palette"
	IconUsers    IconKind = "users"
	IconSparkles IconKind = "sparkles"
	IconZap      IconKind = "zap"
)

// Task is a single schedulable item in the daily timeline. The Time field is
// the human label shown in the UI ("7:00 AM"); concrete datetimes are derived
// from it on demand.
type Task struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Kind      TaskKind `json:"kind"`
	Time      string   `json:"time"`
	Completed bool     `json:"completed"`
	Category  string   `json:"category"`
	Icon      IconKind `json:"icon,omitempty"`
}

// Notification is an in-memory record of an intended future local reminder.
type Notification struct {
	ID            string    `json:"id"`
	TaskID        string    `json:"taskId"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	ScheduledTime time.Time `json:"scheduledTime"`
	IsScheduled   bool      `json:"isScheduled"`
}

type Book struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Rating      float64 `json:"rating"`
	ReadTime    string  `json:"readTime"`
	Category    string  `json:"category"`
	Content     string  `json:"content,omitempty"`
}

type Category struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Icon  IconKind `json:"icon"`
	Color string   `json:"color"`
	Books []Book   `json:"books"`
}

type TopicItemKind string

const (
	TopicBook    TopicItemKind = "book"
	TopicPodcast TopicItemKind = "podcast"
	TopicVideo   TopicItemKind = "video"
)

type TopicItem struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Image    string        `json:"image"`
	Kind     TopicItemKind `json:"kind"`
	Content  string        `json:"content,omitempty"`
}

type TopicCarousel struct {
	ID    string      `json:"id"`
	Title string      `json:"title"`
	Items []TopicItem `json:"items"`
}

type SavedItemKind string

const (
	SavedQuote SavedItemKind = "quote"
	SavedBook  SavedItemKind = "book"
	SavedTip   SavedItemKind = "tip"
)

type SavedItem struct {
	ID      string        `json:"id"`
	Title   string        `json:"title"`
	Content string        `json:"content"`
	Author  string        `json:"author,omitempty"`
	Kind    SavedItemKind `json:"kind"`
	SavedAt string        `json:"savedAt"`
}

// Collection is a user-defined grouping of saved items. Color holds the
// gradient endpoints used by the card rendering.
type Collection struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ItemCount   int         `json:"itemCount"`
	Color       [2]string   `json:"color"`
	Icon        IconKind    `json:"icon"`
	Items       []SavedItem `json:"items"`
	CreatedAt   string      `json:"createdAt"`
}

type UserStats struct {
	TotalDays          int     `json:"totalDays"`
	CurrentStreak      int     `json:"currentStreak"`
	BestStreak         int     `json:"bestStreak"`
	CompletedTasks     int     `json:"completedTasks"`
	WellnessActivities int     `json:"wellnessActivities"`
	FocusTasks         int     `json:"focusTasks"`
	EarlyPlanningDays  int     `json:"earlyPlanningDays"`
	SuccessRate        float64 `json:"successRate"`
}

type Achievement struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        IconKind `json:"icon"`
	Unlocked    bool     `json:"unlocked"`
	Progress    *int     `json:"progress,omitempty"`
	MaxProgress *int     `json:"maxProgress,omitempty"`
}

type WeekDay struct {
	Day       string `json:"day"`
	Date      int    `json:"date"`
	Completed bool   `json:"completed"`
	Today     bool   `json:"today"`
}

type PlanType string

const (
	PlanAI     PlanType = "ai"
	PlanManual PlanType = "manual"
)

// OnboardingRecord is one of the two persisted settings entries.
type OnboardingRecord struct {
	Completed   bool              `json:"completed"`
	Plan        PlanType          `json:"plan,omitempty"`
	Answers     map[string]string `json:"answers,omitempty"`
	CompletedAt time.Time         `json:"completedAt,omitzero"`
}
