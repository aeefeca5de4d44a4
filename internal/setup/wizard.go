// Package setup is the interactive profile wizard. It walks through name,
// email, current skills, goals, learning style, weekly hours and budget,
// then validates the answers into a profile.
package setup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillpath/internal/profile"
	"github.com/abhisek/skillpath/internal/ui/components"
	"github.com/abhisek/skillpath/internal/ui/theme"
)

type stage int

const (
	stageName stage = iota
	stageEmail
	stageSkillName
	stageSkillLevel
	stageSkillYears
	stageSkillConfidence
	stageGoalName
	stageGoalLevel
	stageGoalPriority
	stageGoalTimeline
	stageStyle
	stageHours
	stageBudget
	stageDone
)

var levelChoices = []string{"beginner", "intermediate", "advanced", "expert"}
var styleChoices = []string{"video", "reading", "hands-on", "interactive", "project-based", "mixed"}

type wizardModel struct {
	stage stage
	input components.TextInput
	menu  components.Menu

	answers profile.ProfileInput

	// skill and goal under construction
	skill profile.SkillInput
	goal  profile.GoalInput

	errMsg   string
	aborted  bool
	finished bool
}

func newWizardModel() wizardModel {
	m := wizardModel{stage: stageName}
	m.input = components.NewTextInput("Jane Doe", false, 60)
	return m
}

func (m wizardModel) Init() tea.Cmd {
	return m.input.Init()
}

func (m wizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			return m.advance()
		}
	}

	var cmd tea.Cmd
	if m.usesMenu() {
		m.menu, cmd = m.menu.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m wizardModel) usesMenu() bool {
	switch m.stage {
	case stageSkillLevel, stageGoalLevel, stageStyle:
		return true
	}
	return false
}

// advance consumes the current answer and moves to the next stage.
func (m wizardModel) advance() (tea.Model, tea.Cmd) {
	m.errMsg = ""
	value := strings.TrimSpace(m.input.Value())

	switch m.stage {
	case stageName:
		if value == "" {
			m.errMsg = "name is required"
			return m, nil
		}
		m.answers.Name = value
		return m.toInput(stageEmail, "jane@example.com")

	case stageEmail:
		if !strings.Contains(value, "@") {
			m.errMsg = "enter a valid email address"
			return m, nil
		}
		m.answers.Email = value
		return m.toInput(stageSkillName, "Python (blank when done)")

	case stageSkillName:
		if value == "" {
			return m.toInput(stageGoalName, "Machine Learning")
		}
		m.skill = profile.SkillInput{SkillName: value}
		return m.toMenu(stageSkillLevel, levelChoices)

	case stageSkillLevel:
		m.skill.Level = levelChoices[m.menu.Selected]
		return m.toInput(stageSkillYears, "1.0")

	case stageSkillYears:
		years, err := parseFloat(value, 1.0)
		if err != nil {
			m.errMsg = "years must be a number"
			return m, nil
		}
		m.skill.YearsExperience = &years
		return m.toInput(stageSkillConfidence, "5")

	case stageSkillConfidence:
		conf, err := parseInt(value, 5)
		if err != nil || conf < 1 || conf > 10 {
			m.errMsg = "confidence must be between 1 and 10"
			return m, nil
		}
		m.skill.ConfidenceScore = &conf
		m.answers.CurrentSkills = append(m.answers.CurrentSkills, m.skill)
		return m.toInput(stageSkillName, "next skill (blank when done)")

	case stageGoalName:
		if value == "" {
			if len(m.answers.LearningGoals) == 0 {
				m.errMsg = "at least one goal is required"
				return m, nil
			}
			return m.toMenu(stageStyle, styleChoices)
		}
		m.goal = profile.GoalInput{GoalName: value}
		return m.toMenu(stageGoalLevel, levelChoices)

	case stageGoalLevel:
		m.goal.TargetLevel = levelChoices[m.menu.Selected]
		return m.toInput(stageGoalPriority, "3")

	case stageGoalPriority:
		priority, err := parseInt(value, 3)
		if err != nil || priority < 1 || priority > 5 {
			m.errMsg = "priority must be between 1 and 5"
			return m, nil
		}
		m.goal.Priority = &priority
		return m.toInput(stageGoalTimeline, "6")

	case stageGoalTimeline:
		months, err := parseInt(value, 6)
		if err != nil || months < 1 || months > 60 {
			m.errMsg = "timeline must be between 1 and 60 months"
			return m, nil
		}
		m.goal.TimelineMonths = &months
		m.answers.LearningGoals = append(m.answers.LearningGoals, m.goal)
		return m.toInput(stageGoalName, "next goal (blank when done)")

	case stageStyle:
		m.answers.LearningStyle = styleChoices[m.menu.Selected]
		return m.toInput(stageHours, "10")

	case stageHours:
		hours, err := parseInt(value, 10)
		if err != nil || hours < 1 || hours > 80 {
			m.errMsg = "weekly hours must be between 1 and 80"
			return m, nil
		}
		m.answers.WeeklyHours = hours
		return m.toInput(stageBudget, "blank for no limit")

	case stageBudget:
		if value != "" {
			budget, err := strconv.ParseFloat(value, 64)
			if err != nil || budget < 0 {
				m.errMsg = "budget must be a non-negative number"
				return m, nil
			}
			m.answers.BudgetUSD = &budget
		}
		m.stage = stageDone
		m.finished = true
		return m, tea.Quit
	}

	return m, nil
}

func (m wizardModel) toInput(next stage, placeholder string) (tea.Model, tea.Cmd) {
	m.stage = next
	numeric := false
	switch next {
	case stageSkillConfidence, stageGoalPriority, stageGoalTimeline, stageHours:
		numeric = true
	}
	m.input = components.NewTextInput(placeholder, numeric, 60)
	return m, m.input.Init()
}

func (m wizardModel) toMenu(next stage, choices []string) (tea.Model, tea.Cmd) {
	m.stage = next
	items := make([]components.MenuItem, len(choices))
	for i, c := range choices {
		items[i] = components.MenuItem{Label: c}
	}
	m.menu = components.NewMenu(items)
	return m, nil
}

var prompts = map[stage]string{
	stageName:            "What is your name?",
	stageEmail:           "What is your email?",
	stageSkillName:       "Add a current skill",
	stageSkillLevel:      "How proficient are you?",
	stageSkillYears:      "Years of experience?",
	stageSkillConfidence: "Confidence from 1 to 10?",
	stageGoalName:        "Add a learning goal",
	stageGoalLevel:       "What level do you want to reach?",
	stageGoalPriority:    "Priority from 1 (highest) to 5?",
	stageGoalTimeline:    "Timeline in months?",
	stageStyle:           "Preferred learning style?",
	stageHours:           "Hours per week you can commit?",
	stageBudget:          "Budget in USD?",
}

func (m wizardModel) View() tea.View {
	v := tea.NewView("")
	if m.stage == stageDone {
		return v
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Profile setup") + "\n\n")
	b.WriteString(theme.Label.Render(prompts[m.stage]) + "\n")
	if m.usesMenu() {
		b.WriteString(m.menu.View())
	} else {
		b.WriteString(m.input.View() + "\n")
	}
	if m.errMsg != "" {
		b.WriteString(theme.Negative.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + theme.Hint.Render(fmt.Sprintf(
		"%d skills · %d goals · enter to confirm · esc to abort",
		len(m.answers.CurrentSkills), len(m.answers.LearningGoals))))

	v.SetContent(b.String())
	return v
}

// ErrAborted is returned when the user quits the wizard before finishing.
var ErrAborted = errors.New("setup aborted")

// Run starts the wizard and returns the completed, validated profile.
func Run() (*profile.UserProfile, error) {
	p := tea.NewProgram(newWizardModel())
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run setup: %w", err)
	}
	m, ok := final.(wizardModel)
	if !ok || m.aborted || !m.finished {
		return nil, ErrAborted
	}
	return profile.FromInput(m.answers)
}

func parseFloat(s string, fallback float64) (float64, error) {
	if s == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(s, 64)
}

func parseInt(s string, fallback int) (int, error) {
	if s == "" {
		return fallback, nil
	}
	return strconv.Atoi(s)
}
