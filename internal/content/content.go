// Package content carries the static fixture data the portal consumes:
// the ordered quiz question bank and the resource catalog. Both ship
// embedded in the binary and are parsed once at startup.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/caexamhub/caprep/internal/models"
)

//go:embed questions.yaml
var questionsYAML []byte

//go:embed resources.yaml
var resourcesYAML []byte

// Questions parses the embedded question bank. Order is significant: the
// quiz presents questions in this exact sequence.
func Questions() ([]models.Question, error) {
	var qs []models.Question
	if err := yaml.Unmarshal(questionsYAML, &qs); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}
	for i, q := range qs {
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			return nil, fmt.Errorf("question %d: answer index %d out of range", i, q.Answer)
		}
	}
	return qs, nil
}

// Resources parses the embedded resource catalog.
func Resources() ([]models.Resource, error) {
	var rs []models.Resource
	if err := yaml.Unmarshal(resourcesYAML, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse resource catalog: %w", err)
	}
	return rs, nil
}

// ResourceByID returns the catalog entry with the given id, or false.
func ResourceByID(catalog []models.Resource, id int) (models.Resource, bool) {
	for _, r := range catalog {
		if r.ID == id {
			return r, true
		}
	}
	return models.Resource{}, false
}
