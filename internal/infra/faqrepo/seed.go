package faqrepo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Sadiya-27/Customer-support-bot/internal/domain/faq"
)

// LoadSeedFile reads knowledge-base entries from a YAML file. Used to fill
// the memory repository when no database is configured.
func LoadSeedFile(path string) ([]faq.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var doc struct {
		Entries []faq.Entry `yaml:"entries"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	for i, entry := range doc.Entries {
		if entry.ID == "" {
			return nil, fmt.Errorf("seed entry %d has no id", i)
		}
	}
	return doc.Entries, nil
}
