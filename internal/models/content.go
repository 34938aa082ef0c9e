package models

// Question is one entry of the fixed, ordered question bank.
// Answer is the index into Options of the correct choice.
type Question struct {
	Text    string   `yaml:"text" json:"text"`
	Options []string `yaml:"options" json:"options"`
	Answer  int      `yaml:"answer" json:"answer"`
}

// Resource is one entry of the static resource catalog, keyed by ID.
type Resource struct {
	ID          int    `yaml:"id" json:"id"`
	Level       string `yaml:"level" json:"level"`
	Title       string `yaml:"title" json:"title"`
	Keyword     string `yaml:"keyword" json:"keyword"`
	Description string `yaml:"description" json:"description"`
	URL         string `yaml:"url" json:"url"`
}
