package pbxproj

import "regexp"

const (
	sourcesPhaseRecordPatternConstant    = `(?s)(\w+)\s*=\s*\{isa = PBXSourcesBuildPhase;.*?files = \((.*?)\);`
	targetBuildPhaseListPatternConstant  = `(?s)(\w+)\s*=\s*\{isa = PBXNativeTarget;.*?buildPhases = \((.*?)\);`
	phaseFileEntryPatternConstant        = `(\w+)\s*/\*.*?\*/`
	buildPhaseListIdentifierBodyConstant = `\w+`
)

var (
	sourcesPhaseRecordExpression    = regexp.MustCompile(sourcesPhaseRecordPatternConstant)
	targetBuildPhaseListExpression  = regexp.MustCompile(targetBuildPhaseListPatternConstant)
	phaseFileEntryExpression        = regexp.MustCompile(phaseFileEntryPatternConstant)
	buildPhaseListIdentifierMatcher = regexp.MustCompile(buildPhaseListIdentifierBodyConstant)
)

// LinkStats counts linking outcomes that the lenient resolution path drops
// without raising errors.
type LinkStats struct {
	SourcesPhases  int
	OrphanPhases   int
	DroppedEntries int
}

// LinkSources resolves every sources build phase to its owning target and
// appends each resolvable file entry's path to that target in encounter
// order. Ownership follows the targets' declared buildPhases identifier lists
// rather than re-scanning the raw text per target, so overlapping target
// regions cannot misattribute a phase. Entries whose build-file or
// file-reference identifier is unknown are dropped and counted.
func LinkSources(documentText string, targets *TargetIndex, buildFiles map[string]string, fileReferences map[string]FileReference) LinkStats {
	stats := LinkStats{}
	if targets == nil {
		targets = NewTargetIndex()
	}

	phaseOwners := phaseOwnership(documentText)

	for _, phaseMatch := range sourcesPhaseRecordExpression.FindAllStringSubmatch(documentText, -1) {
		stats.SourcesPhases++

		phaseIdentifier := phaseMatch[1]
		owningTargetIdentifier, ownerKnown := phaseOwners[phaseIdentifier]
		if !ownerKnown {
			stats.OrphanPhases++
			continue
		}
		owningTarget, targetKnown := targets.Lookup(owningTargetIdentifier)
		if !targetKnown {
			stats.OrphanPhases++
			continue
		}

		// Only identifier-plus-trailing-comment tokens count as file entries.
		for _, entryMatch := range phaseFileEntryExpression.FindAllStringSubmatch(phaseMatch[2], -1) {
			fileReferenceIdentifier, buildFileKnown := buildFiles[entryMatch[1]]
			if !buildFileKnown {
				stats.DroppedEntries++
				continue
			}
			reference, referenceKnown := fileReferences[fileReferenceIdentifier]
			if !referenceKnown {
				stats.DroppedEntries++
				continue
			}
			owningTarget.Files = append(owningTarget.Files, reference.Path)
		}
	}

	return stats
}

// phaseOwnership indexes build-phase identifiers by the target declaring
// them. The first declaring target wins when a phase identifier repeats.
func phaseOwnership(documentText string) map[string]string {
	ownership := make(map[string]string)
	for _, targetMatch := range targetBuildPhaseListExpression.FindAllStringSubmatch(documentText, -1) {
		targetIdentifier := targetMatch[1]
		for _, phaseIdentifier := range buildPhaseListIdentifierMatcher.FindAllString(targetMatch[2], -1) {
			if _, alreadyOwned := ownership[phaseIdentifier]; alreadyOwned {
				continue
			}
			ownership[phaseIdentifier] = targetIdentifier
		}
	}
	return ownership
}
