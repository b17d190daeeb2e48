package pbxproj_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amfschedule/targetcheck/internal/pbxproj"
)

const linkedDocumentConstant = `// !$*UTF8*$!
{
	objects = {
		BF1 = {isa = PBXBuildFile; fileRef = FR1 /* Provider.swift */; };
		BF2 = {isa = PBXBuildFile; fileRef = FR2 /* Intent.swift */; };
		BF3 = {isa = PBXBuildFile; fileRef = FR9 /* Ghost.swift */; };
		FR1 = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = "Widgets/Provider.swift"; sourceTree = "<group>"; };
		FR2 = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = "Widgets/Intent.swift"; sourceTree = "<group>"; };
		T1 = {isa = PBXNativeTarget; buildConfigurationList = CL1; buildPhases = (
			SP1 /* Sources */,
			RP1 /* Resources */,
		); name = ScheduleWidgetExtension; productType = "com.apple.product-type.app-extension"; };
		SP1 = {isa = PBXSourcesBuildPhase; buildActionMask = 2147483647; files = (
			BF1 /* Provider.swift in Sources */,
			BF2 /* Intent.swift in Sources */,
			BF3 /* Ghost.swift in Sources */,
			BF4 /* Unregistered.swift in Sources */,
		); runOnlyForDeploymentPostprocessing = 0; };
		SP9 = {isa = PBXSourcesBuildPhase; buildActionMask = 2147483647; files = (
			BF1 /* Provider.swift in Sources */,
		); runOnlyForDeploymentPostprocessing = 0; };
	};
}
`

func TestLinkSources(testInstance *testing.T) {
	fileReferences, _ := pbxproj.ExtractFileReferences(linkedDocumentConstant)
	buildFiles, _ := pbxproj.ExtractBuildFiles(linkedDocumentConstant)
	targets, _ := pbxproj.ExtractTargets(linkedDocumentConstant)

	linkStats := pbxproj.LinkSources(linkedDocumentConstant, targets, buildFiles, fileReferences)

	linkedTarget, targetFound := targets.Lookup("T1")
	require.True(testInstance, targetFound)
	require.Equal(testInstance, []string{"Widgets/Provider.swift", "Widgets/Intent.swift"}, linkedTarget.Files)

	require.Equal(testInstance, 2, linkStats.SourcesPhases)
	// SP9 is not listed in any target's buildPhases.
	require.Equal(testInstance, 1, linkStats.OrphanPhases)
	// BF3 resolves to an undeclared file reference, BF4 is not a known build file.
	require.Equal(testInstance, 2, linkStats.DroppedEntries)
}

func TestLinkSourcesKeepsEncounterOrderAcrossRuns(testInstance *testing.T) {
	firstRunFiles := linkedTargetFiles(testInstance)
	for repetition := 0; repetition < 5; repetition++ {
		require.Equal(testInstance, firstRunFiles, linkedTargetFiles(testInstance))
	}
}

func linkedTargetFiles(testInstance *testing.T) []string {
	fileReferences, _ := pbxproj.ExtractFileReferences(linkedDocumentConstant)
	buildFiles, _ := pbxproj.ExtractBuildFiles(linkedDocumentConstant)
	targets, _ := pbxproj.ExtractTargets(linkedDocumentConstant)
	pbxproj.LinkSources(linkedDocumentConstant, targets, buildFiles, fileReferences)

	linkedTarget, targetFound := targets.Lookup("T1")
	require.True(testInstance, targetFound)
	return linkedTarget.Files
}

func TestParseDocument(testInstance *testing.T) {
	document := pbxproj.ParseDocument(linkedDocumentConstant)

	require.Len(testInstance, document.FileReferences, 2)
	require.Len(testInstance, document.BuildFiles, 3)
	require.Equal(testInstance, 1, document.Targets.Len())
	require.Equal(testInstance, 2, document.Stats.SourcesPhases)
	require.Equal(testInstance, 1, document.Stats.OrphanPhases)
	require.Equal(testInstance, 2, document.Stats.DroppedFileEntries)

	linkedTarget, targetFound := document.Targets.Lookup("T1")
	require.True(testInstance, targetFound)
	require.Equal(testInstance, []string{"Widgets/Provider.swift", "Widgets/Intent.swift"}, linkedTarget.Files)
}

func TestLinkSourcesWithNilTargetIndex(testInstance *testing.T) {
	linkStats := pbxproj.LinkSources(linkedDocumentConstant, nil, map[string]string{}, map[string]pbxproj.FileReference{})
	require.Equal(testInstance, 2, linkStats.SourcesPhases)
	require.Equal(testInstance, 2, linkStats.OrphanPhases)
}

func TestParseDocumentOnArbitraryText(testInstance *testing.T) {
	testCases := []struct {
		name         string
		documentText string
	}{
		{name: "empty", documentText: ""},
		{name: "not_a_descriptor", documentText: "plain text with no records at all"},
		{name: "braces_only", documentText: "{ } ( ) ;;"},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(subtestNameTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			document := pbxproj.ParseDocument(testCase.documentText)
			require.NotNil(testInstance, document)
			require.Zero(testInstance, document.Targets.Len())
			require.Empty(testInstance, document.FileReferences)
			require.Empty(testInstance, document.BuildFiles)
		})
	}
}
