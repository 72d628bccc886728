// Package validation checks that a 2019-track submission directory conforms
// to the required layout, metadata schema and file-format contract.
//
// Violations come in two tiers. Structural problems (bad layout, inconsistent
// auxiliary embeddings, metadata schema violations) abort immediately:
// such submissions cannot be meaningfully checked further. Content-level
// problems (missing files, malformed embeddings, unreadable audio) accumulate
// in an error log so a single run reports every offending file.
package validation

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zerospeech/zrc2020/pkg/logger"
)

// Options configures a validation run.
type Options struct {
	// Resolver locates the bundled manifests. Defaults to the embedded bundle.
	Resolver *ManifestResolver

	// StrictEmbeddings aborts on the first malformed embedding file instead
	// of accumulating format errors.
	StrictEmbeddings bool

	// AudioExtension selects which manifest entries get audio checks.
	// Defaults to ".wav".
	AudioExtension string
}

func (o Options) withDefaults() Options {
	if o.Resolver == nil {
		o.Resolver = DefaultManifestResolver()
	}
	if o.AudioExtension == "" {
		o.AudioExtension = ".wav"
	}
	return o
}

// Submission validates the 2019 part of a challenge submission.
type Submission struct {
	root         string
	isOpenSource bool
	opts         Options
}

// NewSubmission prepares a validator for the submission rooted at root. The
// root must be an existing directory.
func NewSubmission(root string, isOpenSource bool, opts Options) (*Submission, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("2019 submission not found: %s", root)
	}
	return &Submission{
		root:         root,
		isOpenSource: isOpenSource,
		opts:         opts.withDefaults(),
	}, nil
}

// IsValid reports whether the submission is valid, swallowing the diagnostic.
func (s *Submission) IsValid() bool {
	return s.Validate() == nil
}

// Validate returns an error if the submission is not valid: the first
// structural violation encountered, or the consolidated report of all
// accumulated content-level errors.
func (s *Submission) Validate() error {
	expected := []string{"metadata.yaml", "english", "surprise"}
	if s.isOpenSource {
		expected = append(expected, "code")
	}
	if err := ValidateDirectory(s.root, "2019", expected); err != nil {
		return err
	}

	// detect the auxiliary embeddings first: their presence decides which
	// metadata entries are required
	hasAux1, err := s.detectAuxiliary("auxiliary_embedding1")
	if err != nil {
		return err
	}
	if hasAux1 {
		logger.Info("    found auxiliary_embedding1")
	}
	hasAux2, err := s.detectAuxiliary("auxiliary_embedding2")
	if err != nil {
		return err
	}
	if hasAux2 {
		logger.Info("    found auxiliary_embedding2")
	}
	if hasAux2 && !hasAux1 {
		return fmt.Errorf("found auxiliary_embedding2 but not auxiliary_embedding1")
	}

	if _, err := s.validateMetadata(hasAux1, hasAux2); err != nil {
		return err
	}

	if err := ValidateCode(filepath.Join(s.root, "code"), "2019/code", s.isOpenSource); err != nil {
		return err
	}

	// both languages are always checked: content-level errors in one must
	// not hide problems in the other
	var report []ScopedErrors
	total := 0
	for _, language := range Languages {
		errs, err := s.validateLanguage(language, hasAux1, hasAux2)
		if err != nil {
			return err
		}
		if !errs.Empty() {
			scope := "2019/" + language
			LogErrors(errs, scope)
			report = append(report, ScopedErrors{Scope: scope, Entries: errs.Entries()})
			total += errs.Len()
		}
	}
	if total > 0 {
		return fmt.Errorf("validation failed with %d errors:\n%s",
			total, FormatReport(report))
	}
	return nil
}

// detectAuxiliary reports whether the named auxiliary directory is submitted.
// Presence must be consistent: an auxiliary stage submitted for one language
// but not the other is a structural error.
func (s *Submission) detectAuxiliary(name string) (bool, error) {
	present := 0
	for _, language := range Languages {
		info, err := os.Stat(filepath.Join(s.root, language, name))
		if err == nil && info.IsDir() {
			present++
		}
	}
	switch present {
	case 0:
		return false, nil
	case len(Languages):
		return true, nil
	default:
		return false, fmt.Errorf(
			"%s is present for one language but not for the other", name)
	}
}

func (s *Submission) validateLanguage(language string, hasAux1, hasAux2 bool) (*ErrorLog, error) {
	val, err := NewLanguageValidation(language, s.opts)
	if err != nil {
		return nil, err
	}
	return val.Validate(s.root, hasAux1, hasAux2)
}
