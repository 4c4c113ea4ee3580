package repository

import (
	"fmt"
	"os"

	"github.com/Dhanushraagav/ai-interview-platform/internal/model"
	"github.com/Dhanushraagav/ai-interview-platform/internal/util"

	"gopkg.in/yaml.v3"
)

// QuestionBank serves the per-topic question catalogue. The catalogue is
// loaded once at startup and read-only afterwards, so lookups need no
// locking.
type QuestionBank struct {
	topics    []string
	questions map[string][]model.Question
}

type questionBankFile struct {
	Topics []struct {
		Name      string           `yaml:"name"`
		Questions []model.Question `yaml:"questions"`
	} `yaml:"topics"`
}

// LoadQuestionBank reads and validates the YAML question catalogue.
func LoadQuestionBank(path string) (*QuestionBank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank %s: %w", path, err)
	}

	var file questionBankFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse question bank %s: %w", path, err)
	}

	if len(file.Topics) == 0 {
		return nil, fmt.Errorf("question bank %s contains no topics", path)
	}

	bank := &QuestionBank{
		questions: make(map[string][]model.Question, len(file.Topics)),
	}
	for _, topic := range file.Topics {
		if topic.Name == "" {
			return nil, fmt.Errorf("question bank %s: topic without a name", path)
		}
		if _, dup := bank.questions[topic.Name]; dup {
			return nil, fmt.Errorf("question bank %s: duplicate topic %q", path, topic.Name)
		}
		if len(topic.Questions) == 0 {
			return nil, fmt.Errorf("question bank %s: topic %q has no questions", path, topic.Name)
		}
		for i, q := range topic.Questions {
			if q.Text == "" {
				return nil, fmt.Errorf("question bank %s: topic %q question %d has no text", path, topic.Name, i+1)
			}
		}
		bank.topics = append(bank.topics, topic.Name)
		bank.questions[topic.Name] = topic.Questions
	}

	return bank, nil
}

// Topics lists the available topics in catalogue order.
func (b *QuestionBank) Topics() []string {
	return append([]string{}, b.topics...)
}

// QuestionsForTopic returns up to count questions for the topic, in
// catalogue order.
func (b *QuestionBank) QuestionsForTopic(topic string, count int) ([]model.Question, error) {
	questions, ok := b.questions[topic]
	if !ok {
		return nil, util.ErrUnknownTopic
	}
	if count > 0 && len(questions) > count {
		questions = questions[:count]
	}
	return append([]model.Question{}, questions...), nil
}
