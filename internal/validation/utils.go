package validation

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/zerospeech/zrc2020/pkg/logger"
)

// ValidateDirectory checks that the top-level entries of root are exactly the
// expected set. Both missing and unexpected entries are structural errors.
func ValidateDirectory(root, scope string, expected []string) error {
	logger.Info(fmt.Sprintf("validating %s directory ...", scope))

	listing, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("cannot list %s directory: %v", scope, err)
	}

	actual := make(map[string]bool, len(listing))
	for _, entry := range listing {
		actual[entry.Name()] = true
	}

	var missing []string
	for _, name := range expected {
		if !actual[name] {
			missing = append(missing, name)
		} else {
			delete(actual, name)
		}
	}
	var unexpected []string
	for name := range actual {
		unexpected = append(unexpected, name)
	}
	sort.Strings(missing)
	sort.Strings(unexpected)

	if len(missing) > 0 {
		return fmt.Errorf(
			"invalid %s directory: missing entries %v", scope, missing)
	}
	if len(unexpected) > 0 {
		return fmt.Errorf(
			"invalid %s directory: unexpected entries %v", scope, unexpected)
	}
	return nil
}

// instructionPatterns match files that document how to build or run the
// submitted code.
var instructionPatterns = []string{
	"README*", "readme*", "Readme*", "*.md", "Makefile", "makefile", "setup.py", "*.sh",
}

// ValidateCode enforces the code-bundling policy on a code directory. For
// closed submissions there is nothing to check, the top-level layout already
// rejects a stray code directory. Open-source submissions must bundle a
// non-empty code directory with build/run instructions.
func ValidateCode(dir, scope string, isOpenSource bool) error {
	if !isOpenSource {
		return nil
	}
	logger.Info(fmt.Sprintf("validating %s directory ...", scope))

	listing, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("cannot list %s directory: %v", scope, err)
	}
	if len(listing) == 0 {
		return fmt.Errorf("%s directory is empty but submission is declared open source", scope)
	}

	for _, entry := range listing {
		for _, pattern := range instructionPatterns {
			if ok, _ := doublestar.Match(pattern, entry.Name()); ok {
				return nil
			}
		}
	}
	return fmt.Errorf(
		"no build or run instructions found in %s (expected one of %s)",
		scope, strings.Join(instructionPatterns, ", "))
}

// LogErrors emits every accumulated error under the given scope tag. It
// never raises, reporting is the caller's concern.
func LogErrors(errs *ErrorLog, scope string) {
	for _, entry := range errs.Entries() {
		logger.Error(entry, logger.String("scope", scope))
	}
}
