package services

import (
	"context"
	"sync"

	"github.com/vvka-141/varfind/pkg/varfind"
)

type mockLoader struct {
	sets map[string][]string
	errs map[string]error
}

func (m *mockLoader) Load(_ string, column string) (varfind.TargetSet, error) {
	return varfind.NewTargetSet(m.sets[column]...), m.errs[column]
}

type mockScanner struct {
	err   error
	calls []varfind.TargetSet
}

func (m *mockScanner) Scan(_ context.Context, _ varfind.ScanConfig, targets varfind.TargetSet) (*varfind.Report, error) {
	m.calls = append(m.calls, targets)
	return &varfind.Report{Results: varfind.NewResultMap(targets)}, m.err
}

type mockWriter struct {
	mu      sync.Mutex
	written map[string]*varfind.ResultMap
	errs    map[string]error
}

func (m *mockWriter) Write(results *varfind.ResultMap, destination string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.errs[destination]; err != nil {
		return err
	}
	if m.written == nil {
		m.written = make(map[string]*varfind.ResultMap)
	}
	m.written[destination] = results
	return nil
}
