package check_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amfschedule/targetcheck/internal/check"
	"github.com/amfschedule/targetcheck/internal/membership"
)

func TestCommandBuilderBuild(testInstance *testing.T) {
	builder := check.CommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	require.Equal(testInstance, "check", command.Use)
	require.NotNil(testInstance, command.Flags().Lookup("project-root"))
	require.NotNil(testInstance, command.Flags().Lookup("project-name"))
}

func TestCommandRunUsesFlagsOverConfiguration(testInstance *testing.T) {
	builder := check.CommandBuilder{
		ConfigurationProvider: func() check.CommandConfiguration {
			configuration := check.DefaultCommandConfiguration()
			configuration.ProjectRoot = "/configured"
			configuration.ProjectName = "Configured"
			configuration.Expectations = membership.Expectations{WidgetFiles: []string{"A/B.swift"}}
			return configuration
		},
		FileSystem: stubFileSystem{files: map[string][]byte{}},
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{"--project-root", "/flagged", "--project-name", "Flagged"})

	executionError := command.Execute()
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, "Project file not found: /flagged/Flagged.xcodeproj/project.pbxproj\n", outputBuffer.String())
}

func TestCommandRunFallsBackToConfiguredProject(testInstance *testing.T) {
	builder := check.CommandBuilder{
		ConfigurationProvider: func() check.CommandConfiguration {
			configuration := check.DefaultCommandConfiguration()
			configuration.ProjectRoot = "/configured"
			configuration.ProjectName = "Configured"
			return configuration
		},
		FileSystem: stubFileSystem{files: map[string][]byte{}},
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{})

	executionError := command.Execute()
	require.NoError(testInstance, executionError)
	require.Equal(testInstance, "Project file not found: /configured/Configured.xcodeproj/project.pbxproj\n", outputBuffer.String())
}

func TestCommandRunRendersReportFromDescriptor(testInstance *testing.T) {
	documents := loadFixtureDocuments(testInstance)

	builder := check.CommandBuilder{
		ConfigurationProvider: func() check.CommandConfiguration {
			configuration := check.DefaultCommandConfiguration()
			configuration.ProjectRoot = testProjectRootConstant
			configuration.ProjectName = testProjectNameConstant
			configuration.Expectations = membership.Expectations{WidgetFiles: []string{"A/B.swift"}}
			return configuration
		},
		FileSystem: stubFileSystem{files: map[string][]byte{
			testDescriptorPathConstant: documents[macWidgetFixtureNameConstant],
		}},
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{})

	executionError := command.Execute()
	require.NoError(testInstance, executionError)
	require.Contains(testInstance, outputBuffer.String(), "Found target: AMFScheduleWidgetMACExtension")
	require.Contains(testInstance, outputBuffer.String(), "All required files are in the target!")
}
