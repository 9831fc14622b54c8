// Package catalog exposes the fixed, read-only discovery content (books,
// podcasts by category) plus achievement definitions and the streak-week
// derivation. Nothing here mutates; the only derived state is the read-marker
// set, which lives with the caller.
package catalog

import (
	"strings"

	"flowpilot/internal/model"
)

var books = map[string][]model.Book{
	"media": {
		{ID: "1", Title: "The Content Code", Author: "Mark Schaefer", Description: "Why content is not enough and how to break through the noise.", Image: "https://images.pexels.com/photos/159711/books-bookstore-book-reading-159711.jpeg", Rating: 4.5, ReadTime: "6 hours", Category: "Media", Content: "In today's digital landscape, creating content is not enough. You need to understand the psychology behind what makes content spread and resonate with audiences..."},
		{ID: "2", Title: "Platform", Author: "Michael Hyatt", Description: "Get noticed in a noisy world by building your platform.", Image: "https://images.pexels.com/photos/1029141/pexels-photo-1029141.jpeg", Rating: 4.3, ReadTime: "5 hours", Category: "Media", Content: "Building a platform is about creating a stage for your message. It's about gathering an audience around your expertise and passion..."},
		{ID: "3", Title: "Crushing It!", Author: "Gary Vaynerchuk", Description: "How great entrepreneurs build their business and influence.", Image: "https://images.pexels.com/photos/1370295/pexels-photo-1370295.jpeg", Rating: 4.7, ReadTime: "7 hours", Category: "Media", Content: "Success in the modern economy requires authenticity, passion, and the willingness to hustle. Gary shares real stories of entrepreneurs who made it..."},
	},
	"productivity": {
		{ID: "4", Title: "Deep Work", Author: "Cal Newport", Description: "Rules for focused success in a distracted world.", Image: "https://images.pexels.com/photos/590016/pexels-photo-590016.jpg", Rating: 4.8, ReadTime: "8 hours", Category: "Productivity", Content: "Deep work is the ability to focus without distraction on cognitively demanding tasks. It's a skill that allows you to quickly master complicated information..."},
		{ID: "5", Title: "Getting Things Done", Author: "David Allen", Description: "The art of stress-free productivity.", Image: "https://images.pexels.com/photos/1181244/pexels-photo-1181244.jpg", Rating: 4.6, ReadTime: "9 hours", Category: "Productivity", Content: "The GTD methodology is about capturing all the things you need to do into a logical and trusted system outside of your head and then doing them..."},
		{ID: "6", Title: "The 4-Hour Workweek", Author: "Tim Ferriss", Description: "Escape 9-5, live anywhere, and join the new rich.", Image: "https://images.pexels.com/photos/1181675/pexels-photo-1181675.jpg", Rating: 4.4, ReadTime: "10 hours", Category: "Productivity", Content: "This book challenges the traditional concept of retirement and the 9-5 lifestyle. Tim shows how to live more and work less through automation and outsourcing..."},
	},
	"marketing": {
		{ID: "7", Title: "Purple Cow", Author: "Seth Godin", Description: "Transform your business by being remarkable.", Image: "https://images.pexels.com/photos/1181467/pexels-photo-1181467.jpg", Rating: 4.5, ReadTime: "4 hours", Category: "Marketing", Content: "In a world full of brown cows, you need to be a purple cow. Being remarkable is the only way to cut through the noise and get noticed..."},
		{ID: "8", Title: "Influence", Author: "Robert Cialdini", Description: "The psychology of persuasion.", Image: "https://images.pexels.com/photos/1181263/pexels-photo-1181263.jpg", Rating: 4.9, ReadTime: "8 hours", Category: "Marketing", Content: "Understanding the psychology behind why people say \"yes\" and how to apply these principles ethically in business and life..."},
	},
	"business": {
		{ID: "9", Title: "The Lean Startup", Author: "Eric Ries", Description: "How today's entrepreneurs use continuous innovation.", Image: "https://images.pexels.com/photos/1181396/pexels-photo-1181396.jpg", Rating: 4.6, ReadTime: "7 hours", Category: "Business", Content: "The Lean Startup methodology teaches you how to drive a startup through the Build-Measure-Learn feedback loop with minimum viable products..."},
		{ID: "10", Title: "Zero to One", Author: "Peter Thiel", Description: "Notes on startups, or how to build the future.", Image: "https://images.pexels.com/photos/1181298/pexels-photo-1181298.jpg", Rating: 4.7, ReadTime: "6 hours", Category: "Business", Content: "Every moment in business happens only once. The next Bill Gates will not build an operating system. The next Larry Page won't make a search engine..."},
	},
	"psychology": {
		{ID: "11", Title: "Thinking, Fast and Slow", Author: "Daniel Kahneman", Description: "The frailties of human judgment and decision-making.", Image: "https://images.pexels.com/photos/1181345/pexels-photo-1181345.jpg", Rating: 4.8, ReadTime: "12 hours", Category: "Psychology", Content: "Our minds are made up of two systems: System 1 is fast, intuitive, and emotional; System 2 is slower, more deliberative, and logical..."},
		{ID: "12", Title: "Mindset", Author: "Carol Dweck", Description: "The new psychology of success.", Image: "https://images.pexels.com/photos/1181424/pexels-photo-1181424.jpg", Rating: 4.5, ReadTime: "7 hours", Category: "Psychology", Content: "The view you adopt for yourself profoundly affects the way you lead your life. Fixed mindset vs growth mindset can determine success..."},
	},
	"health": {
		{ID: "13", Title: "Atomic Habits", Author: "James Clear", Description: "An easy & proven way to build good habits & break bad ones.", Image: "https://images.pexels.com/photos/1181519/pexels-photo-1181519.jpg", Rating: 4.9, ReadTime: "5 hours", Category: "Health", Content: "Habits are the compound interest of self-improvement. Small changes can make a remarkable difference over time..."},
		{ID: "14", Title: "The Power of Now", Author: "Eckhart Tolle", Description: "A guide to spiritual enlightenment.", Image: "https://images.pexels.com/photos/1181562/pexels-photo-1181562.jpg", Rating: 4.4, ReadTime: "6 hours", Category: "Health", Content: "The present moment is the only time over which we have dominion. Learn to live in the now and find peace..."},
	},
	"finance": {
		{ID: "15", Title: "Rich Dad Poor Dad", Author: "Robert Kiyosaki", Description: "What the rich teach their kids about money.", Image: "https://images.pexels.com/photos/1181605/pexels-photo-1181605.jpg", Rating: 4.3, ReadTime: "6 hours", Category: "Finance", Content: "The rich don't work for money. They make money work for them. Learn the difference between assets and liabilities..."},
		{ID: "16", Title: "The Intelligent Investor", Author: "Benjamin Graham", Description: "The definitive book on value investing.", Image: "https://images.pexels.com/photos/1181648/pexels-photo-1181648.jpg", Rating: 4.7, ReadTime: "15 hours", Category: "Finance", Content: "The intelligent investor is a realist who sells to optimists and buys from pessimists. Value investing principles that stand the test of time..."},
	},
	"technology": {
		{ID: "17", Title: "The Innovator's Dilemma", Author: "Clayton Christensen", Description: "When new technologies cause great firms to fail.", Image: "https://images.pexels.com/photos/1181691/pexels-photo-1181691.jpg", Rating: 4.5, ReadTime: "8 hours", Category: "Technology", Content: "Great companies can fail by doing everything right. Disruptive innovation often comes from unexpected places..."},
		{ID: "18", Title: "Code Complete", Author: "Steve McConnell", Description: "A practical handbook of software construction.", Image: "https://images.pexels.com/photos/1181734/pexels-photo-1181734.jpg", Rating: 4.8, ReadTime: "20 hours", Category: "Technology", Content: "Software construction is a craft that requires both technical knowledge and practical wisdom. Best practices for writing clean, maintainable code..."},
	},
	"creativity": {
		{ID: "19", Title: "Big Magic", Author: "Elizabeth Gilbert", Description: "Creative living beyond fear.", Image: "https://images.pexels.com/photos/1181777/pexels-photo-1181777.jpg", Rating: 4.4, ReadTime: "5 hours", Category: "Creativity", Content: "Creativity is sacred, and it is not sacred. What we make matters enormously, and it doesn't matter at all..."},
		{ID: "20", Title: "The War of Art", Author: "Steven Pressfield", Description: "Break through the blocks and win your inner creative battles.", Image: "https://images.pexels.com/photos/1181820/pexels-photo-1181820.jpg", Rating: 4.6, ReadTime: "3 hours", Category: "Creativity", Content: "Resistance is the most toxic force on the planet. It is the root of more unhappiness than poverty, disease, and erectile dysfunction..."},
	},
	"leadership": {
		{ID: "21", Title: "Good to Great", Author: "Jim Collins", Description: "Why some companies make the leap... and others don't.", Image: "https://images.pexels.com/photos/1181863/pexels-photo-1181863.jpg", Rating: 4.7, ReadTime: "10 hours", Category: "Leadership", Content: "Good is the enemy of great. Most companies never become great because they settle for good..."},
		{ID: "22", Title: "Start with Why", Author: "Simon Sinek", Description: "How great leaders inspire everyone to take action.", Image: "https://images.pexels.com/photos/1181906/pexels-photo-1181906.jpg", Rating: 4.5, ReadTime: "7 hours", Category: "Leadership", Content: "People don't buy what you do; they buy why you do it. Great leaders inspire action by starting with why..."},
	},
}

var categories = []model.Category{
	{ID: "media", Name: "Media", Icon: model.IconCamera, Color: "#FF6B6B", Books: books["media"]},
	{ID: "productivity", Name: "Productivity", Icon: model.IconTarget, Color: "#4ECDC4", Books: books["productivity"]},
	{ID: "marketing", Name: "Marketing", Icon: model.IconTrending, Color: "#45B7D1", Books: books["marketing"]},
	{ID: "business", Name: "Business", Icon: model.IconCase, Color: "#96CEB4", Books: books["business"]},
	{ID: "psychology", Name: "Psychology", Icon: model.IconBrain, Color: "#FFEAA7", Books: books["psychology"]},
	{ID: "health", Name: "Health", Icon: model.IconHeart, Color: "#DDA0DD", Books: books["health"]},
	{ID: "finance", Name: "Finance", Icon: model.IconDollar, Color: "#98D8C8", Books: books["finance"]},
	{ID: "technology", Name: "Technology", Icon: model.IconCode, Color: "#F7DC6F", Books: books["technology"]},
	{ID: "creativity", Name: "Creativity", Icon: model.IconPalette, Color: "#BB8FCE", Books: books["creativity"]},
	{ID: "leadership", Name: "Leadership", Icon: model.IconUsers, Color: "#85C1E9", Books: books["leadership"]},
}

var carousels = []model.TopicCarousel{
	{
		ID:    "1",
		Title: "Trending Books",
		Items: []model.TopicItem{
			{ID: "1", Title: "Atomic Habits", Subtitle: "James Clear", Image: "https://images.pexels.com/photos/1181519/pexels-photo-1181519.jpg", Kind: model.TopicBook, Content: "Habits are the compound interest of self-improvement..."},
			{ID: "2", Title: "Deep Work", Subtitle: "Cal Newport", Image: "https://images.pexels.com/photos/590016/pexels-photo-590016.jpg", Kind: model.TopicBook, Content: "Deep work is the ability to focus without distraction..."},
			{ID: "3", Title: "Mindset", Subtitle: "Carol Dweck", Image: "https://images.pexels.com/photos/1181424/pexels-photo-1181424.jpg", Kind: model.TopicBook, Content: "The view you adopt for yourself profoundly affects..."},
		},
	},
	{
		ID:    "2",
		Title: "Popular Podcasts",
		Items: []model.TopicItem{
			{ID: "4", Title: "The Tim Ferriss Show", Subtitle: "Productivity & Performance", Image: "https://images.pexels.com/photos/7130560/pexels-photo-7130560.jpeg", Kind: model.TopicPodcast, Content: "World-class performers share their tactics, routines, and habits..."},
			{ID: "5", Title: "How I Built This", Subtitle: "Entrepreneurship Stories", Image: "https://images.pexels.com/photos/7130469/pexels-photo-7130469.jpeg", Kind: model.TopicPodcast, Content: "Stories behind some of the world's best known companies..."},
			{ID: "6", Title: "The Knowledge Project", Subtitle: "Decision Making", Image: "https://images.pexels.com/photos/7130468/pexels-photo-7130468.jpeg", Kind: model.TopicPodcast, Content: "Master the best of what other people have already figured out..."},
		},
	},
}

// Categories returns the category list in display order.
func Categories() []model.Category {
	return append([]model.Category(nil), categories...)
}

// ByCategory returns the books for a category id; ok=false for unknown ids.
func ByCategory(id string) ([]model.Book, bool) {
	bs, ok := books[id]
	if !ok {
		return nil, false
	}
	return append([]model.Book(nil), bs...), true
}

// All returns every book across categories, in category display order.
func All() []model.Book {
	var out []model.Book
	for _, c := range categories {
		out = append(out, c.Books...)
	}
	return out
}

// Carousels returns the topic carousels (trending books, popular podcasts).
func Carousels() []model.TopicCarousel {
	return append([]model.TopicCarousel(nil), carousels...)
}

// SearchResult is a hit from Search: exactly one of Book/Topic is set.
type SearchResult struct {
	Book  *model.Book
	Topic *model.TopicItem
}

func (r SearchResult) ID() string {
	if r.Book != nil {
		return r.Book.ID
	}
	return r.Topic.ID
}

func (r SearchResult) Title() string {
	if r.Book != nil {
		return r.Book.Title
	}
	return r.Topic.Title
}

func (r SearchResult) Subtitle() string {
	if r.Book != nil {
		return r.Book.Author
	}
	return r.Topic.Subtitle
}

func (r SearchResult) Content() string {
	if r.Book != nil {
		return r.Book.Content
	}
	return r.Topic.Content
}

// Search does a case-insensitive substring match over titles,
// authors/subtitles and content of all books and carousel items. An empty
// query returns an empty result set (not "everything").
func Search(query string) []SearchResult {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)

	var out []SearchResult
	for _, c := range categories {
		for i := range c.Books {
			b := c.Books[i]
			if matches(q, b.Title, b.Author, b.Content) {
				out = append(out, SearchResult{Book: &b})
			}
		}
	}
	for _, car := range carousels {
		for i := range car.Items {
			it := car.Items[i]
			if matches(q, it.Title, it.Subtitle, it.Content) {
				out = append(out, SearchResult{Topic: &it})
			}
		}
	}
	return out
}

func matches(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// ReadSet tracks which catalog items the user has opened this session.
type ReadSet map[string]bool

func (s ReadSet) Mark(id string)      { s[id] = true }
func (s ReadSet) Read(id string) bool { return s[id] }
