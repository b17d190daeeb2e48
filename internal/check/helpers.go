package check

import (
	"path/filepath"
	"strings"

	"github.com/amfschedule/targetcheck/internal/pbxproj"
)

const (
	projectBundleExtensionConstant = ".xcodeproj"
	descriptorFileNameConstant     = "project.pbxproj"

	upperMacMarkerConstant = "MAC"
	mixedMacMarkerConstant = "Mac"
)

// descriptorPath derives the project descriptor location from the project
// root directory and the project name.
func descriptorPath(projectRoot string, projectName string) string {
	return filepath.Join(projectRoot, projectName+projectBundleExtensionConstant, descriptorFileNameConstant)
}

// selectAuditTarget returns the first target in document order whose name
// contains the case-sensitive MAC or Mac marker.
func selectAuditTarget(targets *pbxproj.TargetIndex) (*pbxproj.Target, bool) {
	for _, candidate := range targets.Ordered() {
		if strings.Contains(candidate.Name, upperMacMarkerConstant) || strings.Contains(candidate.Name, mixedMacMarkerConstant) {
			return candidate, true
		}
	}
	return nil, false
}
