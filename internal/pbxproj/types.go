package pbxproj

// FileReference captures the location fields of a PBXFileReference record.
type FileReference struct {
	Path       string
	SourceTree string
}

// Target models a PBXNativeTarget together with its resolved source file paths.
// Files stays empty until LinkSources attaches the target's sources build phase.
type Target struct {
	Identifier string
	Name       string
	Files      []string
}

// TargetIndex stores targets keyed by identifier while preserving the order in
// which they were declared in the document.
type TargetIndex struct {
	orderedIdentifiers []string
	targetsByID        map[string]*Target
}

// NewTargetIndex constructs an empty TargetIndex.
func NewTargetIndex() *TargetIndex {
	return &TargetIndex{
		targetsByID: make(map[string]*Target),
	}
}

// Add registers a target, keeping the first-seen document position when the
// identifier repeats.
func (index *TargetIndex) Add(target *Target) {
	if target == nil {
		return
	}
	if _, alreadyKnown := index.targetsByID[target.Identifier]; !alreadyKnown {
		index.orderedIdentifiers = append(index.orderedIdentifiers, target.Identifier)
	}
	index.targetsByID[target.Identifier] = target
}

// Lookup returns the target registered under the provided identifier.
func (index *TargetIndex) Lookup(identifier string) (*Target, bool) {
	target, found := index.targetsByID[identifier]
	return target, found
}

// Ordered returns all targets in document order.
func (index *TargetIndex) Ordered() []*Target {
	ordered := make([]*Target, 0, len(index.orderedIdentifiers))
	for _, identifier := range index.orderedIdentifiers {
		ordered = append(ordered, index.targetsByID[identifier])
	}
	return ordered
}

// Names returns the declared target names in document order.
func (index *TargetIndex) Names() []string {
	names := make([]string, 0, len(index.orderedIdentifiers))
	for _, target := range index.Ordered() {
		names = append(names, target.Name)
	}
	return names
}

// Len reports the number of registered targets.
func (index *TargetIndex) Len() int {
	return len(index.orderedIdentifiers)
}

// DocumentStats counts the spans the lenient extractor and linker could not
// use. The report path ignores these values; callers that want to surface
// malformed input can inspect them.
type DocumentStats struct {
	SkippedFileReferences int
	SkippedBuildFiles     int
	SkippedTargets        int
	SourcesPhases         int
	OrphanPhases          int
	DroppedFileEntries    int
}

// Document aggregates everything extracted from a single descriptor.
type Document struct {
	FileReferences map[string]FileReference
	BuildFiles     map[string]string
	Targets        *TargetIndex
	Stats          DocumentStats
}

// ParseDocument runs the full extraction and linking pipeline over descriptor
// text and returns the populated document.
func ParseDocument(documentText string) *Document {
	document := &Document{}

	document.FileReferences, document.Stats.SkippedFileReferences = ExtractFileReferences(documentText)
	document.BuildFiles, document.Stats.SkippedBuildFiles = ExtractBuildFiles(documentText)
	document.Targets, document.Stats.SkippedTargets = ExtractTargets(documentText)

	linkStats := LinkSources(documentText, document.Targets, document.BuildFiles, document.FileReferences)
	document.Stats.SourcesPhases = linkStats.SourcesPhases
	document.Stats.OrphanPhases = linkStats.OrphanPhases
	document.Stats.DroppedFileEntries = linkStats.DroppedEntries

	return document
}
