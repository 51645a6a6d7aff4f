// Copyright (c) 2025 Jeremy Hahn
// Copyright (c) 2025 Automate The Things, LLC
//
// This file is part of go-shamir.
//
// go-shamir is dual-licensed:
//
// 1. GNU Affero General Public License v3.0 (AGPL-3.0)
//    See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html
//
// 2. Commercial License
//    Contact licensing@automatethethings.com for commercial licensing options.

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jeremyhahn/go-shamir/pkg/shamir"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// Printer handles formatted output
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

// ShareSet is the JSON document emitted by split and accepted by recover
type ShareSet struct {
	SetID     string         `json:"set_id"`
	Prime     int64          `json:"prime"`
	Threshold int            `json:"threshold"`
	Shares    []shamir.Share `json:"shares"`
}

// PrintShareSet prints the parameters of a scheme and the derived shares
func (p *Printer) PrintShareSet(set *ShareSet) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(set)
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Set:       %s\n", set.SetID)
		fmt.Fprintf(p.writer, "Prime:     %d\n", set.Prime)
		fmt.Fprintf(p.writer, "Threshold: %d\n", set.Threshold)
		fmt.Fprintln(p.writer, "Shares:")
		for _, share := range set.Shares {
			fmt.Fprintf(p.writer, "  %d:%d\n", share.ID, share.Value)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintSecret prints a recovered secret
func (p *Printer) PrintSecret(secret int64, shares int) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"status": "success",
			"secret": secret,
			"shares": shares,
		})
	case OutputFormatText:
		fmt.Fprintf(p.writer, "recovered secret is: %d\n", secret)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintError prints an error message
func (p *Printer) PrintError(err error) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"status": "error",
			"error":  err.Error(),
			"kind":   errorType(err),
		})
	default:
		fmt.Fprintf(p.writer, "Error: %v\n", err)
		return nil
	}
}

func (p *Printer) printJSON(data interface{}) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
