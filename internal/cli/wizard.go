package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/studyplan/internal/cli/formatter"
	"github.com/alexanderramin/studyplan/internal/domain"
	"github.com/charmbracelet/huh"
)

// runForm runs a form against the terminal. Tests replace it.
var runForm = func(f *huh.Form) error { return f.Run() }

// studyHuhTheme returns a huh theme using the formatter palette.
func studyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()
	dim := formatter.StyleDim

	f := &t.Focused
	f.Title = formatter.StyleHeader
	f.Description = dim
	f.SelectSelector = formatter.StyleBlue.SetString("› ")
	f.MultiSelectSelector = formatter.StyleBlue.SetString("› ")
	f.SelectedOption = formatter.StyleGreen
	f.SelectedPrefix = formatter.StyleGreen.SetString("● ")
	f.UnselectedPrefix = dim.SetString("○ ")
	f.UnselectedOption = formatter.StyleFg
	f.FocusedButton = formatter.StyleBold.Background(formatter.ColorBlue).Padding(0, 2)
	f.BlurredButton = dim.Padding(0, 2)
	f.TextInput.Cursor = formatter.StyleBlue
	f.TextInput.Prompt = formatter.StyleBlue
	f.TextInput.Text = formatter.StyleFg
	f.TextInput.Placeholder = dim
	f.ErrorMessage = formatter.StyleRed
	f.ErrorIndicator = formatter.StyleRed.SetString(" !")

	b := &t.Blurred
	b.Title = dim
	b.SelectSelector = dim.SetString("  ")
	b.SelectedOption = dim
	b.UnselectedOption = dim
	b.TextInput.Prompt = dim
	b.TextInput.Text = dim

	return t
}

// subjectForm collects a new subject's name, difficulty and optional exam date.
func subjectForm(name, difficulty, examDate *string) *huh.Form {
	if *difficulty == "" {
		*difficulty = string(domain.DifficultyMedium)
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Subject").
				Placeholder("Organic Chemistry").
				Value(name).
				Validate(validateRequired("subject name")),
			huh.NewSelect[string]().
				Title("Difficulty").
				Options(
					huh.NewOption("Easy", string(domain.DifficultyEasy)),
					huh.NewOption("Medium", string(domain.DifficultyMedium)),
					huh.NewOption("Hard", string(domain.DifficultyHard)),
				).
				Value(difficulty),
			huh.NewInput().
				Title("Exam date (YYYY-MM-DD, blank for none)").
				Placeholder(time.Now().AddDate(0, 1, 0).Format(domain.DateLayout)).
				Value(examDate).
				Validate(validateOptionalDate),
		),
	).WithTheme(studyHuhTheme()).WithShowHelp(false)
}

// planForm collects plan generation settings. Focus options come from the
// learner's subjects.
func planForm(subjects []domain.Subject, hours, days, examDate *string, focus *[]string) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Hours per day").
			Description("Blank uses the learner's daily goal").
			Value(hours).
			Validate(validateOptionalPositiveFloat),
		huh.NewInput().
			Title("Days").
			Placeholder("7").
			Value(days).
			Validate(validateOptionalPositiveInt),
		huh.NewInput().
			Title("Exam date (YYYY-MM-DD, blank for none)").
			Value(examDate).
			Validate(validateOptionalDate),
	}
	if len(subjects) > 0 {
		options := make([]huh.Option[string], 0, len(subjects))
		for _, s := range subjects {
			options = append(options, huh.NewOption(s.Name, s.Name))
		}
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("Focus subjects").
			Options(options...).
			Value(focus))
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(studyHuhTheme()).WithShowHelp(false)
}

func validateRequired(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}

func validateOptionalDate(s string) error {
	if _, err := domain.ParseDate(s); err != nil {
		return errors.New("use YYYY-MM-DD, e.g. 2025-06-01")
	}
	return nil
}

func validateOptionalPositiveFloat(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !(v > 0) {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validateOptionalPositiveInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}

// confirmForm creates a yes/no confirmation form.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(result),
		),
	).WithTheme(studyHuhTheme()).WithShowHelp(false)
}
