// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"

	"github.com/pdiddy/profile-builder/pkg/types"
)

// Native decodes the PDF in-process with github.com/ledongthuc/pdf. Only the
// embedded text layer is read; scanned exports yield no lines.
type Native struct{}

func (n *Native) Name() string { return string(types.BackendNative) }

// Extract positions each page's text runs through the text and graphics
// matrices, groups them into rows by baseline and emits one line per row,
// top to bottom.
func (n *Native) Extract(ctx context.Context, pdfPath string) (text string, err error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	// The decoder panics on some malformed content streams.
	defer func() {
		if rec := recover(); rec != nil {
			text, err = "", fmt.Errorf("decoding PDF %s: %v", pdfPath, rec)
		}
	}()

	numPages := r.NumPage()
	log.Debug().Str("path", pdfPath).Int("pages", numPages).Msg("decoding PDF")

	var b strings.Builder
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows := groupRows(pageTexts(page))
		for _, row := range rows {
			b.WriteString(row)
			b.WriteByte('\n')
		}
		log.Debug().Int("page", i).Int("rows", len(rows)).Msg("page decoded")
	}

	return b.String(), nil
}

// matrix is a PDF affine transform [a b c d e f].
type matrix [6]float64

var identity = matrix{1, 0, 0, 1, 0, 0}

// mul returns m×n, i.e. m applied first, then n.
func (m matrix) mul(n matrix) matrix {
	return matrix{
		m[0]*n[0] + m[1]*n[2],
		m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2],
		m[2]*n[1] + m[3]*n[3],
		m[4]*n[0] + m[5]*n[2] + n[4],
		m[4]*n[1] + m[5]*n[3] + n[5],
	}
}

// tjSpaceThreshold is the TJ kerning adjustment, in thousandths of an em,
// beyond which a gap is rendered as a word space.
const tjSpaceThreshold = -200

// pageTexts walks the page's content stream and returns one positioned run
// per text-showing operator. Runs keep their spaces, unlike Page.Content,
// which drops space glyphs and relies on font widths the standard 14 fonts
// do not carry.
func pageTexts(page pdf.Page) []pdf.Text {
	var (
		texts    []pdf.Text
		ctm      = identity
		stack    []matrix
		tm, tlm  = identity, identity
		leading  float64
		enc      pdf.TextEncoding
		fontSize float64
	)

	nextLine := func(tx, ty float64) {
		tlm = matrix{1, 0, 0, 1, tx, ty}.mul(tlm)
		tm = tlm
	}
	decode := func(raw string) string {
		if enc == nil {
			return raw
		}
		return enc.Decode(raw)
	}
	show := func(s string) {
		if s == "" {
			return
		}
		at := tm.mul(ctm)
		texts = append(texts, pdf.Text{FontSize: fontSize, X: at[4], Y: at[5], S: s})
	}

	pdf.Interpret(page.V.Key("Contents"), func(stk *pdf.Stack, op string) {
		n := stk.Len()
		args := make([]pdf.Value, n)
		for i := n - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}
		num := func(i int) float64 {
			if i < len(args) {
				return args[i].Float64()
			}
			return 0
		}

		switch op {
		case "q":
			stack = append(stack, ctm)
		case "Q":
			if len(stack) > 0 {
				ctm = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
		case "cm":
			if n == 6 {
				ctm = matrix{num(0), num(1), num(2), num(3), num(4), num(5)}.mul(ctm)
			}
		case "BT":
			tm, tlm = identity, identity
		case "Tf":
			if n == 2 {
				enc = page.Font(args[0].Name()).Encoder()
				fontSize = num(1)
			}
		case "TL":
			leading = num(0)
		case "Td":
			nextLine(num(0), num(1))
		case "TD":
			leading = -num(1)
			nextLine(num(0), num(1))
		case "Tm":
			if n == 6 {
				tlm = matrix{num(0), num(1), num(2), num(3), num(4), num(5)}
				tm = tlm
			}
		case "T*":
			nextLine(0, -leading)
		case "Tj":
			if n == 1 {
				show(decode(args[0].RawString()))
			}
		case "'":
			nextLine(0, -leading)
			if n == 1 {
				show(decode(args[0].RawString()))
			}
		case "\"":
			nextLine(0, -leading)
			if n == 3 {
				show(decode(args[2].RawString()))
			}
		case "TJ":
			if n == 1 {
				show(joinTJ(args[0], decode))
			}
		}
	})
	return texts
}

// joinTJ concatenates the strings of a TJ array, turning large negative
// kerning adjustments into word spaces.
func joinTJ(arr pdf.Value, decode func(string) string) string {
	var b strings.Builder
	for i := 0; i < arr.Len(); i++ {
		v := arr.Index(i)
		switch v.Kind() {
		case pdf.String:
			b.WriteString(decode(v.RawString()))
		case pdf.Integer, pdf.Real:
			s := b.String()
			if v.Float64() <= tjSpaceThreshold && s != "" && !strings.HasSuffix(s, " ") {
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

// groupRows joins positioned text runs into lines. Runs whose baselines
// round to the same Y form one row; rows run top to bottom (descending Y)
// and runs within a row left to right, separated by a space. Runs at equal
// X are continuations of one another and keep their content-stream order.
func groupRows(texts []pdf.Text) []string {
	byY := make(map[float64][]pdf.Text)
	var ys []float64
	for _, t := range texts {
		y := math.Round(t.Y)
		if _, ok := byY[y]; !ok {
			ys = append(ys, y)
		}
		byY[y] = append(byY[y], t)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ys)))

	rows := make([]string, 0, len(ys))
	for _, y := range ys {
		row := byY[y]
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })

		var b strings.Builder
		for i, t := range row {
			if i > 0 && t.X > row[i-1].X && !strings.HasSuffix(b.String(), " ") && !strings.HasPrefix(t.S, " ") {
				b.WriteByte(' ')
			}
			b.WriteString(t.S)
		}
		rows = append(rows, strings.TrimSpace(b.String()))
	}
	return rows
}
