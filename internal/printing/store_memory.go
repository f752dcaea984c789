package printing

import (
	"context"
	"fmt"
	"sync"

	"warebell/pkg/platform/sentinel"
)

// InMemoryFormatStore maps warehouses to print formats.
type InMemoryFormatStore struct {
	mu      sync.RWMutex
	formats map[string]Format
}

func NewInMemoryFormatStore() *InMemoryFormatStore {
	return &InMemoryFormatStore{formats: make(map[string]Format)}
}

// Put configures the format for a warehouse.
func (s *InMemoryFormatStore) Put(f Format) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.formats[f.Warehouse] = f
}

func (s *InMemoryFormatStore) ByWarehouse(_ context.Context, warehouse string) (*Format, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.formats[warehouse]
	if !ok {
		return nil, fmt.Errorf("silent print format for %s: %w", warehouse, sentinel.ErrNotFound)
	}
	return &f, nil
}

// RecordingPrinter captures print requests; the test and development double.
type RecordingPrinter struct {
	mu   sync.Mutex
	Jobs []PrintJob
	Err  error
}

// PrintJob is one captured print request.
type PrintJob struct {
	DocType   string
	DocName   string
	Format    string
	PrintType string
}

func NewRecordingPrinter() *RecordingPrinter {
	return &RecordingPrinter{}
}

func (p *RecordingPrinter) Print(_ context.Context, docType, docName, format, printType string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Jobs = append(p.Jobs, PrintJob{DocType: docType, DocName: docName, Format: format, PrintType: printType})
	return nil
}
