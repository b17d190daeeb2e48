package check

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/amfschedule/targetcheck/internal/membership"
	"github.com/amfschedule/targetcheck/internal/pbxproj"
)

// Service coordinates descriptor parsing, target selection, membership
// diffing, and report rendering.
type Service struct {
	fileSystem   FileSystem
	outputWriter io.Writer
	errorWriter  io.Writer
	logger       *zap.Logger
}

// NewService constructs a Service using the provided dependencies.
func NewService(fileSystem FileSystem, outputWriter io.Writer, errorWriter io.Writer, logger *zap.Logger) *Service {
	if fileSystem == nil {
		fileSystem = OSFileSystem{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		fileSystem:   fileSystem,
		outputWriter: outputWriter,
		errorWriter:  errorWriter,
		logger:       logger,
	}
}

// Run audits the configured project descriptor and writes the membership
// report. All failure states on the report path (missing descriptor,
// unresolved target, malformed records) are communicated through the printed
// report; Run returns a non-nil error only when writing the report itself
// fails, so the process exit code stays zero for audit findings.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	projectDescriptorPath := descriptorPath(options.ProjectRoot, options.ProjectName)

	if _, statError := service.fileSystem.Stat(projectDescriptorPath); statError != nil {
		fmt.Fprintf(service.outputWriter, projectNotFoundTemplateConstant, projectDescriptorPath)
		return nil
	}

	descriptorContent, readError := service.fileSystem.ReadFile(projectDescriptorPath)
	if readError != nil {
		fmt.Fprintf(service.outputWriter, projectNotFoundTemplateConstant, projectDescriptorPath)
		return nil
	}

	fmt.Fprintln(service.outputWriter, analysisBannerConstant)
	fmt.Fprintln(service.outputWriter, sectionRulerConstant)

	document := pbxproj.ParseDocument(string(descriptorContent))

	service.logger.Debug(
		documentParsedMessageConstant,
		zap.String(logFieldDescriptorPathConstant, projectDescriptorPath),
		zap.Int(logFieldFileReferencesConstant, len(document.FileReferences)),
		zap.Int(logFieldBuildFilesConstant, len(document.BuildFiles)),
		zap.Int(logFieldTargetsConstant, document.Targets.Len()),
		zap.Int(logFieldSourcesPhasesConstant, document.Stats.SourcesPhases),
		zap.Int(logFieldSkippedSpansConstant, document.Stats.SkippedFileReferences+document.Stats.SkippedBuildFiles+document.Stats.SkippedTargets),
		zap.Int(logFieldOrphanPhasesConstant, document.Stats.OrphanPhases),
		zap.Int(logFieldDroppedEntriesConstant, document.Stats.DroppedFileEntries),
	)

	auditTarget, targetFound := selectAuditTarget(document.Targets)
	if !targetFound {
		fmt.Fprintln(service.outputWriter, unresolvedTargetMessageConstant)
		fmt.Fprintln(service.outputWriter, availableTargetsHeaderConstant)
		for _, targetName := range document.Targets.Names() {
			fmt.Fprintf(service.outputWriter, availableTargetEntryTemplateConstant, targetName)
		}
		return nil
	}

	fmt.Fprintf(service.outputWriter, foundTargetTemplateConstant, auditTarget.Name)
	fmt.Fprintf(service.outputWriter, currentFileCountTemplateConstant, len(auditTarget.Files))

	diffResult := membership.Diff(auditTarget.Files, options.Expectations)

	service.logger.Debug(
		auditCompletedMessageConstant,
		zap.String(logFieldTargetNameConstant, auditTarget.Name),
		zap.Int(logFieldMissingCountConstant, len(diffResult.Missing)),
		zap.Int(logFieldExtraCountConstant, len(diffResult.Extra)),
	)

	service.renderReport(diffResult)
	return nil
}

func (service *Service) renderReport(diffResult membership.Result) {
	fmt.Fprintln(service.outputWriter)
	fmt.Fprintln(service.outputWriter, sectionRulerConstant)
	fmt.Fprintln(service.outputWriter, reportHeaderConstant)
	fmt.Fprintln(service.outputWriter, sectionRulerConstant)

	if len(diffResult.Missing) > 0 {
		fmt.Fprintf(service.outputWriter, missingHeaderTemplateConstant, len(diffResult.Missing))
		fmt.Fprintln(service.outputWriter, missingExplanationConstant)
		for _, missingPath := range diffResult.Missing {
			fmt.Fprintf(service.outputWriter, missingEntryTemplateConstant, missingPath)
		}
	} else {
		fmt.Fprintln(service.outputWriter, allFilesPresentMessageConstant)
	}

	if len(diffResult.Extra) > 0 {
		fmt.Fprintf(service.outputWriter, extraHeaderTemplateConstant, len(diffResult.Extra))
		fmt.Fprintln(service.outputWriter, extraExplanationConstant)
		for _, extraFile := range diffResult.Extra {
			entryTemplate := extraUnexpectedTemplateConstant
			if extraFile.Classification == membership.ExtraClassificationConflict {
				entryTemplate = extraConflictTemplateConstant
			}
			fmt.Fprintf(service.outputWriter, entryTemplate, extraFile.Path)
		}
	}

	fmt.Fprintln(service.outputWriter)
	fmt.Fprintln(service.outputWriter, sectionRulerConstant)
	fmt.Fprintln(service.outputWriter, summaryHeaderConstant)
	fmt.Fprintln(service.outputWriter, sectionRulerConstant)
	fmt.Fprintf(service.outputWriter, summaryExpectedTemplateConstant, diffResult.ExpectedCount)
	fmt.Fprintf(service.outputWriter, summaryCurrentTemplateConstant, diffResult.CurrentCount)
	fmt.Fprintf(service.outputWriter, summaryMissingTemplateConstant, len(diffResult.Missing))
	fmt.Fprintf(service.outputWriter, summaryExtraTemplateConstant, len(diffResult.Extra))

	if len(diffResult.Missing) > 0 {
		fmt.Fprint(service.outputWriter, fixHintHeaderConstant)
	}
}
