package membership

import "strings"

// Expectations captures the authoritative membership lists for the audited
// widget target. WidgetFiles is the set that must be present; the two
// *OnlyFiles lists mark files that belong to other targets and only feed the
// conflict classification of extra entries.
type Expectations struct {
	WidgetFiles        []string `mapstructure:"widget_files"`
	MainAppOnlyFiles   []string `mapstructure:"main_app_only_files"`
	IOSWidgetOnlyFiles []string `mapstructure:"ios_widget_only_files"`
}

// DefaultExpectations returns the compiled-in membership lists for the
// Schedule Summary Widget project.
func DefaultExpectations() Expectations {
	return Expectations{
		WidgetFiles: []string{
			// Core widget files.
			"AMFScheduleWidget/Widgets/ScheduleWidgetProvider.swift",
			"AMFScheduleWidget/Widgets/ScheduleWidgetIntent.swift",
			"AMFScheduleWidget/Widgets/WeatherClusterView.swift",
			"AMFScheduleWidget/Widgets/AMFScheduleWidget.swift",

			// macOS widget definitions.
			"AMFScheduleWidgetMAC/AMFScheduleWidgetMacBundle.swift",
			"AMFScheduleWidgetMAC/Widgets/MacWidgetDefinitions.swift",
			"AMFScheduleWidget/Widgets/Mac/MacAmbientAgendaWidget.swift",
			"AMFScheduleWidget/Widgets/Mac/MacNotificationCenterWidget.swift",

			// Interactive features.
			"AMFScheduleWidget/Widgets/Intents/WidgetInteractionIntents.swift",

			// Supporting views.
			"AMFScheduleWidget/Widgets/iPad/SwimlanesView.swift",
			"AMFScheduleWidget/Widgets/iPad/TimelineView.swift",

			// Shared models.
			"Schedule Summary Widget Nov 26 2025/Shared/Models/ScheduleEvent.swift",
			"Schedule Summary Widget Nov 26 2025/Shared/Models/ClientCalendar.swift",
			"Schedule Summary Widget Nov 26 2025/Shared/Models/Summaries.swift",
			"Schedule Summary Widget Nov 26 2025/Shared/Models/WeatherModel.swift",
			"Schedule Summary Widget Nov 26 2025/Shared/Models/WidgetTheme.swift",

			// Shared services.
			"Schedule Summary Widget Nov 26 2025/Shared/Services/AppGroupStore.swift",
			"Schedule Summary Widget Nov 26 2025/Shared/Services/WidgetThemeStore.swift",
			"Schedule Summary Widget Nov 26 2025/Shared/Services/CalendarService.swift",
			"Schedule Summary Widget Nov 26 2025/Shared/Services/WeatherService.swift",
			"Schedule Summary Widget Nov 26 2025/Shared/Services/GeminiSummarizer.swift",
			"Schedule Summary Widget Nov 26 2025/Shared/Services/GoogleCalendarAPI.swift",
		},
		MainAppOnlyFiles: []string{
			"Schedule Summary Widget Nov 26 2025/AMFScheduleApp.swift",
			"Schedule Summary Widget Nov 26 2025/ContentView.swift",
			"Schedule Summary Widget Nov 26 2025/CalendarSettingsView.swift",
			"Schedule Summary Widget Nov 26 2025/PhotoBackgroundEditorView.swift",
			"Schedule Summary Widget Nov 26 2025/WidgetStudioView.swift",
			"Schedule Summary Widget Nov 26 2025/Shared/Services/BackgroundScheduler.swift",
		},
		IOSWidgetOnlyFiles: []string{
			"AMFScheduleWidget/AMFScheduleWidgetBundle.swift",
			"AMFScheduleWidget/Widgets/WidgetDefinitions.swift",
			"AMFScheduleWidget/Widgets/iPad/iPadDayboardWidget.swift",
			"AMFScheduleWidget/Widgets/iPad/LockScreenWidgets.swift",
		},
	}
}

// Sanitized trims whitespace from every list entry and drops empties.
func (expectations Expectations) Sanitized() Expectations {
	return Expectations{
		WidgetFiles:        sanitizePathList(expectations.WidgetFiles),
		MainAppOnlyFiles:   sanitizePathList(expectations.MainAppOnlyFiles),
		IOSWidgetOnlyFiles: sanitizePathList(expectations.IOSWidgetOnlyFiles),
	}
}

// elsewhereFragments returns the normalized union of both belongs-elsewhere
// lists for conflict classification.
func (expectations Expectations) elsewhereFragments() []string {
	fragments := make([]string, 0, len(expectations.MainAppOnlyFiles)+len(expectations.IOSWidgetOnlyFiles))
	for _, candidate := range expectations.MainAppOnlyFiles {
		if cleaned := NormalizePath(candidate); len(cleaned) > 0 {
			fragments = append(fragments, cleaned)
		}
	}
	for _, candidate := range expectations.IOSWidgetOnlyFiles {
		if cleaned := NormalizePath(candidate); len(cleaned) > 0 {
			fragments = append(fragments, cleaned)
		}
	}
	return fragments
}

func sanitizePathList(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for _, candidate := range raw {
		trimmed := strings.TrimSpace(candidate)
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	return sanitized
}
