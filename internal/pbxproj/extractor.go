package pbxproj

import (
	"regexp"
	"strings"
)

const (
	fileReferenceTypeTagConstant = "isa = PBXFileReference;"
	buildFileTypeTagConstant     = "isa = PBXBuildFile;"
	nativeTargetTypeTagConstant  = "isa = PBXNativeTarget;"

	fileReferenceRecordPatternConstant = `(?s)(\w+)\s*=\s*\{isa = PBXFileReference;.*?path = ([^;]+);.*?sourceTree = ([^;]+);`
	buildFileRecordPatternConstant     = `(\w+)\s*=\s*\{isa = PBXBuildFile; fileRef = (\w+)`
	nativeTargetRecordPatternConstant  = `(?s)(\w+)\s*=\s*\{isa = PBXNativeTarget;.*?name = ([^;]+);`

	quoteCharacterConstant = `"`
)

var (
	fileReferenceRecordExpression = regexp.MustCompile(fileReferenceRecordPatternConstant)
	buildFileRecordExpression     = regexp.MustCompile(buildFileRecordPatternConstant)
	nativeTargetRecordExpression  = regexp.MustCompile(nativeTargetRecordPatternConstant)
)

// ExtractFileReferences collects every PBXFileReference record exposing both a
// path and a sourceTree field. The second return value counts type-tagged
// spans that did not match the expected record shape.
func ExtractFileReferences(documentText string) (map[string]FileReference, int) {
	references := make(map[string]FileReference)
	matches := fileReferenceRecordExpression.FindAllStringSubmatch(documentText, -1)
	for _, match := range matches {
		references[match[1]] = FileReference{
			Path:       stripQuotePair(strings.TrimSpace(match[2])),
			SourceTree: strings.TrimSpace(match[3]),
		}
	}
	return references, skippedRecordCount(documentText, fileReferenceTypeTagConstant, len(matches))
}

// ExtractBuildFiles collects every PBXBuildFile record, mapping its identifier
// to the file reference identifier it wraps.
func ExtractBuildFiles(documentText string) (map[string]string, int) {
	buildFiles := make(map[string]string)
	matches := buildFileRecordExpression.FindAllStringSubmatch(documentText, -1)
	for _, match := range matches {
		buildFiles[match[1]] = match[2]
	}
	return buildFiles, skippedRecordCount(documentText, buildFileTypeTagConstant, len(matches))
}

// ExtractTargets collects every PBXNativeTarget record in document order.
func ExtractTargets(documentText string) (*TargetIndex, int) {
	index := NewTargetIndex()
	matches := nativeTargetRecordExpression.FindAllStringSubmatch(documentText, -1)
	for _, match := range matches {
		index.Add(&Target{
			Identifier: match[1],
			Name:       stripQuotePair(strings.TrimSpace(match[2])),
		})
	}
	return index, skippedRecordCount(documentText, nativeTargetTypeTagConstant, len(matches))
}

// stripQuotePair removes exactly one leading and one trailing quotation mark
// when both are present, leaving every other value untouched.
func stripQuotePair(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, quoteCharacterConstant) && strings.HasSuffix(value, quoteCharacterConstant) {
		return value[1 : len(value)-1]
	}
	return value
}

// skippedRecordCount approximates how many type-tagged record spans the
// pattern could not use. Non-greedy matches may swallow a malformed neighbor,
// so the count is clamped at zero.
func skippedRecordCount(documentText string, typeTag string, matchedCount int) int {
	tagOccurrences := strings.Count(documentText, typeTag)
	if tagOccurrences <= matchedCount {
		return 0
	}
	return tagOccurrences - matchedCount
}
