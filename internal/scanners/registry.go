package scanners

import (
	"sort"

	"forgescan/report-importer/internal/model"
	"forgescan/report-importer/internal/scanners/dependencycheck"
	"forgescan/report-importer/internal/scanners/owaspzap"
	"forgescan/report-importer/internal/scanners/phpstan"
	"forgescan/report-importer/internal/scanners/sonarqube"
)

type Registry map[model.ReportType]Parser

func Default() Registry {
	return Registry{
		model.ReportDependencyCheck: ParserFunc(dependencycheck.Parse),
		model.ReportPHPStan:         ParserFunc(phpstan.Parse),
		model.ReportSonarQube:       ParserFunc(sonarqube.Parse),
		model.ReportZAP:             ParserFunc(owaspzap.Parse),
	}
}

func (r Registry) Lookup(t model.ReportType) (Parser, bool) {
	p, ok := r[t]
	return p, ok
}

func (r Registry) Types() []model.ReportType {
	out := make([]model.ReportType, 0, len(r))
	for t := range r {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
