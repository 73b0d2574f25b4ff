package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/envlines/internal/domain"
)

func sampleLines() []domain.Line {
	return domain.Significant(domain.SplitLines("A=1\n\nB=2\n   \nC=3"))
}

func TestPrintLines_Plain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, domain.OutputConfig{Prefix: "VAL: ", Format: domain.FormatPlain})

	require.NoError(t, p.PrintLines(domain.TextResource{Path: ".env"}, sampleLines()))
	assert.Equal(t, "VAL: A=1\nVAL: B=2\nVAL: C=3\n", buf.String())
}

func TestPrintLines_PlainNoLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, domain.OutputConfig{Prefix: "VAL: "})

	require.NoError(t, p.PrintLines(domain.TextResource{}, nil))
	assert.Empty(t, buf.String())
}

func TestPrintLines_ColorOnNonTerminalStaysPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, domain.OutputConfig{Prefix: "VAL: ", Color: true})

	require.NoError(t, p.PrintLines(domain.TextResource{}, sampleLines()[:1]))
	assert.Equal(t, "VAL: A=1\n", buf.String())
}

func TestPrintLines_JSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, domain.OutputConfig{Prefix: "VAL: ", Format: domain.FormatJSON})

	res := domain.TextResource{Path: ".env", Encoding: "utf-8"}
	require.NoError(t, p.PrintLines(res, sampleLines()))

	var got jsonListing
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, ".env", got.Path)
	assert.Equal(t, "utf-8", got.Encoding)
	assert.Equal(t, "VAL: ", got.Prefix)
	assert.Equal(t, []jsonLine{{1, "A=1"}, {3, "B=2"}, {5, "C=3"}}, got.Lines)
}

func TestPrintLines_JSONEmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, domain.OutputConfig{Format: domain.FormatJSON})

	require.NoError(t, p.PrintLines(domain.TextResource{}, nil))
	assert.Contains(t, buf.String(), `"lines": []`)
}

func TestPrintLines_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, domain.OutputConfig{Format: "xml"})

	err := p.PrintLines(domain.TextResource{}, sampleLines())
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidConfig))
	assert.Empty(t, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestPrintLines_WriteFailure(t *testing.T) {
	p := NewPrinter(failingWriter{}, domain.OutputConfig{Prefix: "VAL: "})

	err := p.PrintLines(domain.TextResource{Path: ".env"}, sampleLines())
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindExecution))
	assert.Contains(t, err.Error(), "broken pipe")
}
