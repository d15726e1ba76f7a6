package main

import (
	"golang.org/x/tools/go/analysis"

	"claritymeet.app/api-server/tools/linters/enumvalidator"
)

type AnalyzerPlugin struct{}

func (*AnalyzerPlugin) GetAnalyzers() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		enumvalidator.Analyzer,
	}
}

func New(conf any) ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{enumvalidator.Analyzer}, nil
}

// main is never called; it exists so the package compiles with the
// default buildmode as well as -buildmode=plugin.
func main() {}
