package validation

import (
	"fmt"
	"path/filepath"
	"slices"

	"github.com/zerospeech/zrc2020/internal/schema"
	"github.com/zerospeech/zrc2020/pkg/logger"
)

// validDistances are the ABX distances accepted for 2019 evaluation.
var validDistances = []string{"dtw_cosine", "dtw_kl", "levenshtein"}

// metadataEntries assembles the metadata key sets implied by the detected
// auxiliary embeddings: an auxiliary stage must be described when submitted,
// its description key is merely accepted otherwise.
func metadataEntries(hasAux1, hasAux2 bool) (required, optional map[string]schema.ValueType) {
	required = map[string]schema.ValueType{
		"abx distance":         schema.TypeString,
		"system description":   schema.TypeString,
		"hyperparameters":      schema.TypeAny,
		"using parallel train": schema.TypeBool,
		"using external data":  schema.TypeBool,
	}
	optional = map[string]schema.ValueType{}

	if hasAux1 {
		required["auxiliary1 description"] = schema.TypeString
	} else {
		optional["auxiliary1 description"] = schema.TypeString
	}
	if hasAux2 {
		required["auxiliary2 description"] = schema.TypeString
	} else {
		optional["auxiliary2 description"] = schema.TypeString
	}
	return required, optional
}

// validateMetadata parses and checks metadata.yaml against the schema implied
// by the auxiliary presence flags, then enforces the ABX distance enum.
func (s *Submission) validateMetadata(hasAux1, hasAux2 bool) (map[string]interface{}, error) {
	logger.Info("validating 2019/metadata.yaml")

	required, optional := metadataEntries(hasAux1, hasAux2)
	metadata, err := schema.ValidateFile(
		filepath.Join(s.root, "metadata.yaml"),
		"2019/metadata.yaml", required, optional)
	if err != nil {
		return nil, err
	}

	distance, _ := metadata["abx distance"].(string)
	if !slices.Contains(validDistances, distance) {
		return nil, fmt.Errorf(
			`entry "abx distance" in 2019/metadata.yaml must be in %v but is %q`,
			validDistances, distance)
	}
	return metadata, nil
}
