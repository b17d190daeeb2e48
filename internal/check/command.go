package check

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/amfschedule/targetcheck/internal/utils"
	pathutils "github.com/amfschedule/targetcheck/internal/utils/path"
)

const (
	commandNameConstant     = "check"
	commandShortDescription = "Audit the macOS widget target membership of the Xcode project"
	commandLongDescription  = "check parses the project descriptor, resolves which source files belong to the macOS widget target, and reports files that are missing from or extra in the target compared to the expected membership lists."

	flagProjectRootNameConstant  = "project-root"
	flagProjectRootUsageConstant = "Directory containing the .xcodeproj bundle."
	flagProjectNameNameConstant  = "project-name"
	flagProjectNameUsageConstant = "Project name used to locate the .xcodeproj bundle."
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the check cobra command with configurable
// dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	FileSystem            FileSystem
	HomeExpander          *pathutils.HomeExpander
}

// Build constructs the cobra command for the membership audit workflow.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescription,
		Long:  commandLongDescription,
		RunE:  builder.run,
	}

	command.Flags().String(flagProjectRootNameConstant, "", flagProjectRootUsageConstant)
	command.Flags().String(flagProjectNameNameConstant, "", flagProjectNameUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options := builder.resolveOptions(command)

	service := NewService(
		builder.resolveFileSystem(),
		utils.NewFlushingWriter(command.OutOrStdout()),
		utils.NewFlushingWriter(command.ErrOrStderr()),
		builder.resolveLogger(),
	)

	return service.Run(command.Context(), options)
}

func (builder *CommandBuilder) resolveOptions(command *cobra.Command) CommandOptions {
	configuration := DefaultCommandConfiguration()
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	configuration = configuration.sanitize()

	if command.Flags().Changed(flagProjectRootNameConstant) {
		projectRootFlagValue, _ := command.Flags().GetString(flagProjectRootNameConstant)
		configuration.ProjectRoot = projectRootFlagValue
	}

	if command.Flags().Changed(flagProjectNameNameConstant) {
		projectNameFlagValue, _ := command.Flags().GetString(flagProjectNameNameConstant)
		configuration.ProjectName = projectNameFlagValue
	}

	configuration = configuration.sanitize()

	return CommandOptions{
		ProjectRoot:  builder.resolveHomeExpander().Expand(configuration.ProjectRoot),
		ProjectName:  configuration.ProjectName,
		Expectations: configuration.Expectations,
	}
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveFileSystem() FileSystem {
	if builder.FileSystem == nil {
		return OSFileSystem{}
	}
	return builder.FileSystem
}

func (builder *CommandBuilder) resolveHomeExpander() *pathutils.HomeExpander {
	if builder.HomeExpander == nil {
		return pathutils.NewHomeExpander()
	}
	return builder.HomeExpander
}
