// Package printing is the best-effort silent-print boundary. A missing print
// format for a warehouse is a logged no-op, and a failed print never reaches
// the operation that triggered it.
package printing

import (
	"context"
	"errors"
	"log/slog"

	"warebell/pkg/platform/sentinel"
)

// Format names the print format configured for one warehouse.
type Format struct {
	Warehouse   string
	PrintFormat string
	PrintType   string
}

// FormatStore resolves the silent print format for a warehouse. Returns
// sentinel.ErrNotFound when none is configured.
type FormatStore interface {
	ByWarehouse(ctx context.Context, warehouse string) (*Format, error)
}

// Printer renders and prints a document. Implementations talk to the print
// spooler; the core only observes success or failure.
type Printer interface {
	Print(ctx context.Context, docType, docName, format, printType string) error
}

// LogPrinter hands print requests to the operational log. It stands in until
// a spooler integration is configured; printing stays best-effort either way.
type LogPrinter struct {
	Logger *slog.Logger
}

func (p *LogPrinter) Print(ctx context.Context, docType, docName, format, printType string) error {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "silent print requested",
		"doc_type", docType, "document", docName, "format", format, "print_type", printType)
	return nil
}

// Service looks up the warehouse's format and prints through the collaborator.
type Service struct {
	formats FormatStore
	printer Printer
	logger  *slog.Logger
}

func NewService(formats FormatStore, printer Printer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{formats: formats, printer: printer, logger: logger}
}

// PrintPickList silently prints a pick list on the warehouse's configured
// format. Every failure path is a warning, never an error to the caller.
func (s *Service) PrintPickList(ctx context.Context, pickListName, warehouse string) {
	format, err := s.formats.ByWarehouse(ctx, warehouse)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.logger.WarnContext(ctx, "no silent print format for warehouse",
				"warehouse", warehouse, "document", pickListName)
			return
		}
		s.logger.WarnContext(ctx, "print format lookup failed",
			"warehouse", warehouse, "document", pickListName, "error", err)
		return
	}

	if err := s.printer.Print(ctx, "Pick List", pickListName, format.PrintFormat, format.PrintType); err != nil {
		s.logger.WarnContext(ctx, "silent print failed",
			"warehouse", warehouse, "document", pickListName, "error", err)
	}
}
