package tui

import (
	"fmt"
	"time"

	"flowpilot/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type onboardingQuestion struct {
	icon     model.IconKind
	question string
	options  []string
}

var onboardingQuestions = []onboardingQuestion{
	{
		icon:     model.IconSparkles,
		question: "What time do you usually wake up?",
		options:  []string{"5:00 - 6:00 AM", "6:00 - 7:00 AM", "7:00 - 8:00 AM", "8:00 AM or later"},
	},
	{
		icon:     model.IconTarget,
		question: "What's one goal this week?",
		options:  []string{"Build better habits", "Complete a project", "Learn something new", "Improve health"},
	},
	{
		icon:     model.IconZap,
		question: "What motivates you more?",
		options:  []string{"Rewards & achievements", "Reflection & growth", "Community & sharing", "Personal challenges"},
	},
}

// onboardingModel walks the question cards, then the plan choice. card ==
// len(questions) means the final card.
type onboardingModel struct {
	card    int
	option  int
	answers map[string]string
	plan    model.PlanType
}

func newOnboardingModel() onboardingModel {
	return onboardingModel{answers: map[string]string{}}
}

func (m onboardingModel) update(msg tea.KeyMsg) (onboardingModel, bool) {
	final := m.card >= len(onboardingQuestions)

	optionCount := 2
	if !final {
		optionCount = len(onboardingQuestions[m.card].options)
	}

	switch msg.String() {
	case "up", "k", "left", "h":
		if m.option > 0 {
			m.option--
		}
	case "down", "j", "right", "l":
		if m.option < optionCount-1 {
			m.option++
		}
	case "enter", " ":
		if final {
			if m.option == 0 {
				m.plan = model.PlanAI
			} else {
				m.plan = model.PlanManual
			}
			return m, true
		}
		q := onboardingQuestions[m.card]
		m.answers[fmt.Sprintf("q%d", m.card+1)] = q.options[m.option]
		m.card++
		m.option = 0
	}
	return m, false
}

func (m onboardingModel) record() model.OnboardingRecord {
	return model.OnboardingRecord{
		Completed:   true,
		Plan:        m.plan,
		Answers:     m.answers,
		CompletedAt: time.Now().UTC(),
	}
}

func (m onboardingModel) view(st styles, width, height int) string {
	var rows []string

	total := len(onboardingQuestions) + 1
	step := m.card + 1
	if step > total {
		step = total
	}
	rows = append(rows, st.title.Render("Welcome to FlowPilot"))
	rows = append(rows, st.muted.Render(fmt.Sprintf("Step %d of %d", step, total)))
	rows = append(rows, "")

	if m.card < len(onboardingQuestions) {
		q := onboardingQuestions[m.card]
		rows = append(rows, renderIcon(q.icon, st.palette.Primary)+" "+st.title.Render(q.question))
		rows = append(rows, "")
		for i, opt := range q.options {
			if i == m.option {
				rows = append(rows, st.badge.Render(opt))
			} else {
				rows = append(rows, " "+st.text.Render(opt))
			}
		}
	} else {
		rows = append(rows, renderIcon(model.IconSparkles, st.palette.Coral)+" "+st.title.Render("You're all set!"))
		rows = append(rows, st.muted.Render("How would you like to plan your days?"))
		rows = append(rows, "")
		choices := []struct {
			title, sub string
		}{
			{"Let AI structure my day", "Personalized, adaptive planning"},
			{"I'll plan manually", "With AI assistance"},
		}
		for i, c := range choices {
			style := st.card
			if i == m.option {
				style = st.cardActive
			}
			rows = append(rows, style.Render(st.title.Render(c.title)+"\n"+st.muted.Render(c.sub)))
		}
	}

	rows = append(rows, "")
	rows = append(rows, st.help.Render("↑/↓ choose "+glyphBullet()+" enter confirm"))

	card := lipgloss.JoinVertical(lipgloss.Left, rows...)
	if width > 0 && height > 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
	}
	return card
}
