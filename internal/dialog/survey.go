package dialog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chriscorrea/snip/internal/templates"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
)

// AskFunc matches survey.AskOne so prompts can be replaced in tests
type AskFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// Survey is a Dialog backed by interactive terminal prompts
type Survey struct {
	ask  AskFunc
	opts []survey.AskOpt
}

// NewSurvey creates a Survey dialog reading from in and drawing on out
func NewSurvey(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *Survey {
	return &Survey{
		ask:  survey.AskOne,
		opts: []survey.AskOpt{survey.WithStdio(in, out, errOut)},
	}
}

// WithAsk replaces the prompt function
func (s *Survey) WithAsk(ask AskFunc) *Survey {
	s.ask = ask
	return s
}

// Menu shows the insert-template menu as a select list
func (s *Survey) Menu(entries []MenuEntry) (MenuEntry, error) {
	if len(entries) == 0 {
		return MenuEntry{}, fmt.Errorf("menu has no entries")
	}

	cyan := color.New(color.FgCyan).SprintFunc()

	options := make([]string, len(entries))
	for i, entry := range entries {
		options[i] = entry.Label()
	}

	var selected string
	prompt := &survey.Select{
		Message: fmt.Sprintf("%s Insert Template", cyan("📄")),
		Options: options,
		Default: options[0],
	}
	if err := s.run(prompt, &selected); err != nil {
		return MenuEntry{}, err
	}

	for i, option := range options {
		if option == selected {
			return entries[i], nil
		}
	}
	return MenuEntry{}, fmt.Errorf("unknown menu selection %q", selected)
}

// AskName prompts for a required name
func (s *Survey) AskName(title, def string) (string, error) {
	cyan := color.New(color.FgCyan).SprintFunc()

	var name string
	prompt := &survey.Input{
		Message: fmt.Sprintf("%s %s name:", cyan("✏️"), title),
		Default: def,
		Help:    "Used for the class name, the registration id and the label",
	}
	if err := s.run(prompt, &name, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

// AskAuthor prompts for the license author
func (s *Survey) AskAuthor(def Author) (Author, error) {
	cyan := color.New(color.FgCyan).SprintFunc()

	var author Author
	namePrompt := &survey.Input{
		Message: fmt.Sprintf("%s Name:", cyan("👤")),
		Default: def.Name,
	}
	if err := s.run(namePrompt, &author.Name); err != nil {
		return Author{}, err
	}

	mailPrompt := &survey.Input{
		Message: fmt.Sprintf("%s E-Mail:", cyan("📧")),
		Default: def.Mail,
	}
	if err := s.run(mailPrompt, &author.Mail); err != nil {
		return Author{}, err
	}

	return author, nil
}

// AskSubKind prompts for the template variant of kind
func (s *Survey) AskSubKind(kind templates.Kind, def templates.SubKind) (templates.SubKind, error) {
	cyan := color.New(color.FgCyan).SprintFunc()

	subs := templates.SubKinds(kind)
	if len(subs) == 0 {
		return "", fmt.Errorf("%w %q", templates.ErrUnknownKind, kind)
	}
	if len(subs) == 1 {
		return subs[0], nil
	}

	options := make([]string, len(subs))
	defLabel := subs[0].Label()
	for i, sub := range subs {
		options[i] = sub.Label()
		if sub == def {
			defLabel = options[i]
		}
	}

	var selected string
	prompt := &survey.Select{
		Message: fmt.Sprintf("%s %s type:", cyan("🧩"), kind.Label()),
		Options: options,
		Default: defLabel,
	}
	if err := s.run(prompt, &selected); err != nil {
		return "", err
	}

	for i, option := range options {
		if option == selected {
			return subs[i], nil
		}
	}
	return "", fmt.Errorf("%w %q for %s", templates.ErrUnknownKind, selected, kind)
}

// run asks one prompt and maps an interrupt to ErrDismissed
func (s *Survey) run(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
	all := append(append([]survey.AskOpt(nil), s.opts...), opts...)
	err := s.ask(p, response, all...)
	if err == nil {
		return nil
	}
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF) {
		return ErrDismissed
	}
	return fmt.Errorf("survey error: %w", err)
}
