package membership

import (
	"sort"
	"strings"
)

// ExtraClassification labels an extra file as actively wrong or merely
// unexpected.
type ExtraClassification string

// Supported classifications for extra files.
const (
	ExtraClassificationConflict   ExtraClassification = "conflict"
	ExtraClassificationUnexpected ExtraClassification = "unexpected"
)

// ExtraFile pairs an extra path with its classification.
type ExtraFile struct {
	Path           string
	Classification ExtraClassification
}

// Result describes the diff between a target's current membership and the
// expected membership.
type Result struct {
	Missing       []string
	Extra         []ExtraFile
	ExpectedCount int
	CurrentCount  int
}

// Diff normalizes both sides and computes plain set differences. Extra
// entries whose path contains any belongs-elsewhere fragment as a substring
// are classified as conflicts, all others as unexpected. Output slices are
// sorted lexicographically.
func Diff(currentPaths []string, expectations Expectations) Result {
	currentSet := normalizePathSet(currentPaths)
	expectedSet := normalizePathSet(expectations.WidgetFiles)
	elsewhereFragments := expectations.elsewhereFragments()

	missing := make([]string, 0)
	for expectedPath := range expectedSet {
		if _, present := currentSet[expectedPath]; !present {
			missing = append(missing, expectedPath)
		}
	}
	sort.Strings(missing)

	extraPaths := make([]string, 0)
	for currentPath := range currentSet {
		if _, present := expectedSet[currentPath]; !present {
			extraPaths = append(extraPaths, currentPath)
		}
	}
	sort.Strings(extraPaths)

	extra := make([]ExtraFile, 0, len(extraPaths))
	for _, extraPath := range extraPaths {
		extra = append(extra, ExtraFile{
			Path:           extraPath,
			Classification: classifyExtraPath(extraPath, elsewhereFragments),
		})
	}

	return Result{
		Missing:       missing,
		Extra:         extra,
		ExpectedCount: len(expectedSet),
		CurrentCount:  len(currentSet),
	}
}

func classifyExtraPath(path string, elsewhereFragments []string) ExtraClassification {
	for _, fragment := range elsewhereFragments {
		if strings.Contains(path, fragment) {
			return ExtraClassificationConflict
		}
	}
	return ExtraClassificationUnexpected
}
