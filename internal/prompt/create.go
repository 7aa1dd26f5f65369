package prompt

import (
	"github.com/any-source/lokio/internal/lang"
	"github.com/any-source/lokio/internal/messages"
)

// CreateAnswers holds the create arguments. Empty strings are asked for;
// Install is asked for only when AskInstall is set.
type CreateAnswers struct {
	TemplateID  string
	ProjectName string
	Language    string
	Install     bool
	AskInstall  bool
}

var languageLabels = map[lang.Tag]string{
	lang.TypeScript: messages.PromptLanguageTypeScript,
	lang.Go:         messages.PromptLanguageGo,
	lang.Kotlin:     messages.PromptLanguageKotlin,
}

// LanguageOptions lists the supported languages for a Select prompt.
func LanguageOptions() []Option {
	tags := lang.Supported()
	options := make([]Option, 0, len(tags))
	for _, tag := range tags {
		label := languageLabels[tag]
		if label == "" {
			label = tag.String()
		}
		options = append(options, Option{Label: label, Value: tag.String()})
	}
	return options
}

// FillCreate asks for every missing answer in order: project name,
// template, language, install.
func FillCreate(ui UI, answers *CreateAnswers, validateName func(string) error, validateTemplate func(string) error) error {
	if answers.ProjectName == "" {
		if err := ui.Input(messages.PromptProjectName, &answers.ProjectName, validateName); err != nil {
			return err
		}
	}
	if answers.TemplateID == "" {
		if err := ui.Input(messages.PromptTemplateID, &answers.TemplateID, validateTemplate); err != nil {
			return err
		}
	}
	if answers.Language == "" {
		answers.Language = lang.TypeScript.String()
		if err := ui.Select(messages.PromptLanguage, LanguageOptions(), &answers.Language); err != nil {
			return err
		}
	}
	if answers.AskInstall {
		if err := ui.Confirm(messages.PromptInstall, &answers.Install); err != nil {
			return err
		}
	}
	return nil
}
