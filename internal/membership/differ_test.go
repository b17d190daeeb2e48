package membership_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amfschedule/targetcheck/internal/membership"
)

func TestDiff(testInstance *testing.T) {
	testCases := []struct {
		name            string
		currentPaths    []string
		expectations    membership.Expectations
		expectedMissing []string
		expectedExtra   []membership.ExtraFile
	}{
		{
			name:         "missing_file_detected",
			currentPaths: []string{"A/B.swift"},
			expectations: membership.Expectations{
				WidgetFiles: []string{"A/B.swift", "A/C.swift"},
			},
			expectedMissing: []string{"A/C.swift"},
			expectedExtra:   []membership.ExtraFile{},
		},
		{
			name:         "extra_file_from_main_app_is_conflict",
			currentPaths: []string{"A/B.swift", "X/Y.swift"},
			expectations: membership.Expectations{
				WidgetFiles:      []string{"A/B.swift"},
				MainAppOnlyFiles: []string{"X/Y.swift"},
			},
			expectedMissing: []string{},
			expectedExtra: []membership.ExtraFile{
				{Path: "X/Y.swift", Classification: membership.ExtraClassificationConflict},
			},
		},
		{
			name:         "extra_file_from_ios_widget_is_conflict",
			currentPaths: []string{"A/B.swift", "Widgets/LockScreenWidgets.swift"},
			expectations: membership.Expectations{
				WidgetFiles:        []string{"A/B.swift"},
				IOSWidgetOnlyFiles: []string{"LockScreenWidgets.swift"},
			},
			expectedMissing: []string{},
			expectedExtra: []membership.ExtraFile{
				{Path: "Widgets/LockScreenWidgets.swift", Classification: membership.ExtraClassificationConflict},
			},
		},
		{
			name:         "unknown_extra_file_is_unexpected",
			currentPaths: []string{"A/B.swift", "Helpers/Formatting.swift"},
			expectations: membership.Expectations{
				WidgetFiles:      []string{"A/B.swift"},
				MainAppOnlyFiles: []string{"X/Y.swift"},
			},
			expectedMissing: []string{},
			expectedExtra: []membership.ExtraFile{
				{Path: "Helpers/Formatting.swift", Classification: membership.ExtraClassificationUnexpected},
			},
		},
		{
			name:         "normalization_applies_to_both_sides",
			currentPaths: []string{`  \"A/B.swift\"  `},
			expectations: membership.Expectations{
				WidgetFiles: []string{"A/B.swift"},
			},
			expectedMissing: []string{},
			expectedExtra:   []membership.ExtraFile{},
		},
		{
			name:            "empty_inputs",
			currentPaths:    nil,
			expectations:    membership.Expectations{},
			expectedMissing: []string{},
			expectedExtra:   []membership.ExtraFile{},
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(subtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			diffResult := membership.Diff(testCase.currentPaths, testCase.expectations)
			require.Equal(testInstance, testCase.expectedMissing, diffResult.Missing)
			require.Equal(testInstance, testCase.expectedExtra, diffResult.Extra)
		})
	}
}

func TestDiffReportsSetCardinalities(testInstance *testing.T) {
	diffResult := membership.Diff(
		[]string{"A/B.swift", "A/B.swift", "X/Y.swift"},
		membership.Expectations{WidgetFiles: []string{"A/B.swift", "A/C.swift"}},
	)
	require.Equal(testInstance, 2, diffResult.ExpectedCount)
	require.Equal(testInstance, 2, diffResult.CurrentCount)
	require.Equal(testInstance, []string{"A/C.swift"}, diffResult.Missing)
	require.Len(testInstance, diffResult.Extra, 1)
}

func TestDiffSortsOutput(testInstance *testing.T) {
	diffResult := membership.Diff(
		[]string{"Z/z.swift", "M/m.swift", "A/a.swift"},
		membership.Expectations{WidgetFiles: []string{"Z/other.swift", "B/b.swift", "A/other.swift"}},
	)
	require.Equal(testInstance, []string{"A/other.swift", "B/b.swift", "Z/other.swift"}, diffResult.Missing)

	extraPaths := make([]string, 0, len(diffResult.Extra))
	for _, extraFile := range diffResult.Extra {
		extraPaths = append(extraPaths, extraFile.Path)
	}
	require.Equal(testInstance, []string{"A/a.swift", "M/m.swift", "Z/z.swift"}, extraPaths)
}

func TestDefaultExpectationsSanitized(testInstance *testing.T) {
	defaults := membership.DefaultExpectations().Sanitized()
	require.Len(testInstance, defaults.WidgetFiles, 22)
	require.Len(testInstance, defaults.MainAppOnlyFiles, 6)
	require.Len(testInstance, defaults.IOSWidgetOnlyFiles, 4)
	require.Equal(testInstance, membership.DefaultExpectations(), defaults)
}
