package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ohler55/ojg/jp"

	"thirdcoast.systems/fileprops/pkg/rows"
)

type outputOptions struct {
	json     bool
	jsonPath string
}

func writeRows(w io.Writer, seq []rows.Row, opts outputOptions) error {
	if opts.json || opts.jsonPath != "" {
		return writeJSON(w, seq, opts.jsonPath)
	}
	return writeText(w, seq)
}

func writeJSON(w io.Writer, seq []rows.Row, expr string) error {
	if seq == nil {
		seq = []rows.Row{}
	}
	raw, err := json.Marshal(seq)
	if err != nil {
		return fmt.Errorf("encode rows: %w", err)
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("decode rows: %w", err)
	}

	if expr != "" {
		x, err := jp.ParseString(expr)
		if err != nil {
			return fmt.Errorf("invalid jsonpath '%s': %w", expr, err)
		}
		results := x.Get(data)
		if results == nil {
			results = []any{}
		}
		data = results
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func writeText(w io.Writer, seq []rows.Row) error {
	var b strings.Builder
	for i, r := range seq {
		pad := strings.Repeat("  ", r.Indent)
		switch r.Kind {
		case rows.KindGroup:
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(r.Label + "\n")
			b.WriteString(strings.Repeat("=", len(r.Label)) + "\n")
		case rows.KindSubGroup:
			b.WriteString(pad + "[" + r.Label + "]\n")
		default:
			b.WriteString(pad + r.Label + ": " + r.Value + "\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
