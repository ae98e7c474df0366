// Package export renders tabular reports as CSV, XLSX or PDF documents.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

var ErrUnsupportedFormat = errors.New("unsupported export format: use csv, xlsx or pdf")

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX, "excel":
		return FormatXLSX, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", ErrUnsupportedFormat
}

func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// Table is a titled grid of text cells. Title and Subtitle are rendered by the
// XLSX and PDF writers only, so CSV output stays a plain header plus rows.
type Table struct {
	Title    string
	Subtitle []string
	Headers  []string
	Rows     [][]string
}

// File is a rendered document ready to be sent as an attachment.
type File struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Render writes t in format and names the result basename.<ext>.
func Render(format Format, basename string, t Table) (File, error) {
	var buf bytes.Buffer
	var err error

	switch format {
	case FormatCSV:
		err = writeCSV(&buf, t)
	case FormatXLSX:
		err = writeXLSX(&buf, t)
	case FormatPDF:
		err = writePDF(&buf, t)
	default:
		return File{}, ErrUnsupportedFormat
	}
	if err != nil {
		return File{}, fmt.Errorf("failed to render %s export: %w", format, err)
	}

	return File{
		Filename:    basename + "." + string(format),
		ContentType: format.ContentType(),
		Content:     buf.Bytes(),
	}, nil
}
