package check

import (
	"strings"

	"github.com/amfschedule/targetcheck/internal/membership"
)

const (
	defaultProjectRootConstant = "."
	defaultProjectNameConstant = "Schedule Summary Widget Nov 26 2025"

	projectRootConfigurationKeySuffixConstant        = ".project_root"
	projectNameConfigurationKeySuffixConstant        = ".project_name"
	widgetFilesConfigurationKeySuffixConstant        = ".expectations.widget_files"
	mainAppOnlyFilesConfigurationKeySuffixConstant   = ".expectations.main_app_only_files"
	iosWidgetOnlyFilesConfigurationKeySuffixConstant = ".expectations.ios_widget_only_files"
)

// CommandConfiguration captures persistent settings for the check command.
type CommandConfiguration struct {
	ProjectRoot  string                  `mapstructure:"project_root"`
	ProjectName  string                  `mapstructure:"project_name"`
	Expectations membership.Expectations `mapstructure:"expectations"`
}

// DefaultCommandConfiguration returns baseline configuration values for the
// check command: the descriptor is looked up relative to the working
// directory and the membership lists default to the compiled-in sets.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		ProjectRoot:  defaultProjectRootConstant,
		ProjectName:  defaultProjectNameConstant,
		Expectations: membership.DefaultExpectations(),
	}
}

// DefaultConfigurationValues exposes the check command defaults keyed under
// configurationKey for registration with the configuration loader.
func DefaultConfigurationValues(configurationKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKey + projectRootConfigurationKeySuffixConstant:        defaults.ProjectRoot,
		configurationKey + projectNameConfigurationKeySuffixConstant:        defaults.ProjectName,
		configurationKey + widgetFilesConfigurationKeySuffixConstant:        defaults.Expectations.WidgetFiles,
		configurationKey + mainAppOnlyFilesConfigurationKeySuffixConstant:   defaults.Expectations.MainAppOnlyFiles,
		configurationKey + iosWidgetOnlyFilesConfigurationKeySuffixConstant: defaults.Expectations.IOSWidgetOnlyFiles,
	}
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.ProjectRoot = strings.TrimSpace(configuration.ProjectRoot)
	if len(sanitized.ProjectRoot) == 0 {
		sanitized.ProjectRoot = defaultProjectRootConstant
	}

	sanitized.ProjectName = strings.TrimSpace(configuration.ProjectName)
	if len(sanitized.ProjectName) == 0 {
		sanitized.ProjectName = defaultProjectNameConstant
	}

	sanitized.Expectations = configuration.Expectations.Sanitized()

	return sanitized
}
