package model

// Question is an immutable interview question supplied by the question bank.
// Keywords are matched case-insensitively against submitted answers.
type Question struct {
	Text     string   `json:"text" yaml:"text"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}
