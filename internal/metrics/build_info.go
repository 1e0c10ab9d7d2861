package metrics

import (
	"elite-dashboard/internal/version"

	"github.com/prometheus/client_golang/prometheus"
	versioncollector "github.com/prometheus/client_golang/prometheus/collectors/version"
	commonversion "github.com/prometheus/common/version"
)

// RegisterBuildInfo exposes elite_dashboard_build_info labelled with the linked-in build metadata.
func RegisterBuildInfo(registerer prometheus.Registerer) error {
	commonversion.Version = version.GetVersion()
	commonversion.Revision = version.GetGitCommit()
	commonversion.BuildDate = version.GetBuildTime()

	return registerer.Register(versioncollector.NewCollector(Namespace))
}
