package check

// Report text rendered to the output writer. The report path communicates all
// failure states through these messages and never returns an error.
const (
	analysisBannerConstant = "Analyzing Xcode project file..."
	sectionRulerConstant   = "============================================================"

	projectNotFoundTemplateConstant = "Project file not found: %s\n"

	foundTargetTemplateConstant      = "\nFound target: %s\n"
	currentFileCountTemplateConstant = "   Files currently in target: %d\n"

	reportHeaderConstant = "TARGET MEMBERSHIP REPORT"

	missingHeaderTemplateConstant  = "\nMISSING FILES (%d):\n"
	missingExplanationConstant     = "   These files SHOULD be in the macOS widget target but are NOT:"
	missingEntryTemplateConstant   = "   - %s\n"
	allFilesPresentMessageConstant = "\nAll required files are in the target!"

	extraHeaderTemplateConstant     = "\nEXTRA FILES (%d):\n"
	extraExplanationConstant        = "   These files are in the target but might not be needed:"
	extraConflictTemplateConstant   = "   [conflict]   %s (should NOT be in the macOS widget target)\n"
	extraUnexpectedTemplateConstant = "   [unexpected] %s (may be okay)\n"

	summaryHeaderConstant           = "SUMMARY"
	summaryExpectedTemplateConstant = "Expected files: %d\n"
	summaryCurrentTemplateConstant  = "Current files: %d\n"
	summaryMissingTemplateConstant  = "Missing: %d\n"
	summaryExtraTemplateConstant    = "Extra: %d\n"

	unresolvedTargetMessageConstant      = "Could not find a macOS widget target"
	availableTargetsHeaderConstant       = "Available targets:"
	availableTargetEntryTemplateConstant = "  - %s\n"

	fixHintHeaderConstant = "\nTO FIX:\n" +
		"   1. Open Xcode\n" +
		"   2. For each missing file:\n" +
		"      - Select the file in the Project Navigator\n" +
		"      - Open the File Inspector\n" +
		"      - Enable the macOS widget target under Target Membership\n"
)

// Structured log messages and field names.
const (
	documentParsedMessageConstant  = "descriptor parsed"
	auditCompletedMessageConstant  = "membership audit completed"
	logFieldDescriptorPathConstant = "descriptor_path"
	logFieldFileReferencesConstant = "file_references"
	logFieldBuildFilesConstant     = "build_files"
	logFieldTargetsConstant        = "targets"
	logFieldSourcesPhasesConstant  = "sources_phases"
	logFieldSkippedSpansConstant   = "skipped_spans"
	logFieldOrphanPhasesConstant   = "orphan_phases"
	logFieldDroppedEntriesConstant = "dropped_entries"
	logFieldTargetNameConstant     = "target_name"
	logFieldMissingCountConstant   = "missing_count"
	logFieldExtraCountConstant     = "extra_count"
)
