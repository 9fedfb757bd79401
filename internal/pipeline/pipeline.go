// Package pipeline drives one statement file through the engine: read,
// detect, build, reconstruct, annotate, write.
package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/extrato-dev/extrato/internal/ledger"
	"github.com/extrato-dev/extrato/internal/model"
	"github.com/extrato-dev/extrato/internal/money"
	"github.com/extrato-dev/extrato/internal/profile"
	"github.com/extrato-dev/extrato/internal/reader"
	"github.com/extrato-dev/extrato/internal/schema"
	"github.com/extrato-dev/extrato/internal/writer"
)

// Result describes one normalized sheet.
type Result struct {
	Input  string
	Sheet  string
	Output string
	Rows   int
}

// Engine ties the collaborators together. Each file is processed
// independently; no state carries over between files or sheets.
type Engine struct {
	registry *reader.Registry
	logger   *log.Logger
}

// New creates an engine with the default format registry.
func New(logger *log.Logger) *Engine {
	return &Engine{registry: reader.DefaultRegistry(), logger: logger}
}

// ProcessFile normalizes every sheet of one file. Sheet-level failures
// (no schema, missing columns) are logged and skipped; the error return
// covers file-level failures only.
func (e *Engine) ProcessFile(path string, p profile.Profile) ([]Result, error) {
	sheets, err := e.registry.Open(path)
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, sh := range sheets {
		e.logger.Info("processing sheet", "file", path, "sheet", sh.Name)
		res, err := e.processSheet(path, sh, p)
		if err != nil {
			var nf *schema.NotFoundError
			if errors.As(err, &nf) {
				e.logPreview(nf.Preview)
			}
			e.logger.Error("sheet skipped", "file", path, "sheet", sh.Name, "err", err)
			continue
		}
		e.logger.Info("sheet extracted", "sheet", sh.Name, "rows", res.Rows, "output", res.Output)
		results = append(results, res)
	}
	return results, nil
}

func (e *Engine) processSheet(path string, sh reader.Sheet, p profile.Profile) (Result, error) {
	det, err := schema.Detect(sh.Grid, p.Synonyms, p.RequiredRoles)
	if err != nil {
		return Result{}, err
	}
	e.logger.Debug("header row found", "row", det.HeaderRow+1)

	opening := decimal.NullDecimal{}
	openingRow := -1
	if p.ScanOpeningBalance {
		opening, openingRow = schema.FindOpeningBalance(sh.Grid)
		if opening.Valid {
			e.logger.Info("opening balance found", "row", openingRow+1, "value", opening.Decimal.StringFixed(2))
		} else {
			e.logger.Warn("no opening balance row found")
		}
	}

	led, err := ledger.Build(sh.Grid, det, p, opening, openingRow)
	if err != nil {
		return Result{}, err
	}
	if p.ReconstructBalance {
		led = ledger.Reconstruct(led)
	}
	led = ledger.Annotate(led)
	e.logHead(led)

	out, err := e.write(path, sh.Name, led, p)
	if err != nil {
		return Result{}, err
	}
	return Result{Input: path, Sheet: sh.Name, Output: out, Rows: len(led)}, nil
}

// write mirrors the source format: delimited inputs produce CSV output,
// spreadsheet inputs produce xlsx.
func (e *Engine) write(path, sheetName string, led model.Ledger, p profile.Profile) (string, error) {
	layout := writer.Layout{
		DateHeader:    p.DateHeader,
		ValueHeader:   p.ValueHeader,
		BalanceHeader: p.BalanceHeader,
	}

	suffix := p.Suffix()
	if sheetName != "" {
		suffix = fmt.Sprintf("%s_%s", suffix, sanitizeSuffix(sheetName))
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".csv" || ext == ".txt" {
		out := writer.NextOutputPath(path, suffix, ".csv")
		if err := writer.WriteCSVFile(out, led, layout); err != nil {
			return "", err
		}
		return out, nil
	}

	out := writer.NextOutputPath(path, suffix, ".xlsx")
	if err := writer.WriteXLSX(out, led, layout); err != nil {
		return "", err
	}
	return out, nil
}

func sanitizeSuffix(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', ' ':
			return '_'
		}
		return r
	}, s)
}

// logHead shows the first extracted rows at debug level.
func (e *Engine) logHead(led model.Ledger) {
	const headRows = 5
	for i, row := range led[:min(len(led), headRows)] {
		e.logger.Debug("extracted",
			"row", i+1,
			"date", row.RawDate,
			"value", money.FormatBRL(row.Value),
			"balance", money.FormatBRL(row.Balance))
	}
}

// logPreview dumps the leading raw rows of a sheet whose schema could not
// be detected, so the user can diagnose source-format drift.
func (e *Engine) logPreview(preview model.Grid) {
	for i, row := range preview {
		e.logger.Warn("raw preview", "row", i+1, "cells", strings.Join(row, " | "))
	}
}
