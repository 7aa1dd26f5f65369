package messages

// Create prompt titles and labels.
const (
	PromptProjectName        = "Project name"
	PromptTemplateID         = "Template"
	PromptLanguage           = "Language"
	PromptInstall            = "Install dependencies now?"
	PromptLanguageTypeScript = "TypeScript (ts)"
	PromptLanguageGo         = "Go (go)"
	PromptLanguageKotlin     = "Kotlin (kt)"
	PromptCancelled          = "operation cancelled"
)
