package domain

// FormTemplate is the declarative YAML description of a form used by
// `forms apply` and produced by `forms export-template`.
type FormTemplate struct {
	Form      FormInfo       `yaml:"form"`
	Questions []QuestionSpec `yaml:"questions"`
}
