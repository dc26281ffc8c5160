package daybook

import (
	"errors"
	"fmt"
	"io"
)

// ErrNoHeader is returned when the export ends without a recognizable
// header row; nothing can be parsed from such a file.
var ErrNoHeader = errors.New("daybook: header row not found")

// Reader streams voucher blocks from one export. The source product
// writes 8 report-preamble rows before the header, but the header is
// located by label matching rather than position: CSV readers drop fully
// blank lines, so counting rows is unreliable, and preamble rows never
// carry the voucher-type and voucher-number labels together. A block-start
// row is any data row with both a voucher type and a voucher number; every
// following row up to the next block-start is a detail row of that block.
// The sequence is lazy, finite and non-restartable.
type Reader struct {
	src      rowSource
	cols     columns
	headered bool
	pending  *Block
	done     bool
}

// Open opens the export file at path, picking the CSV or spreadsheet read
// path by extension.
func Open(path string) (*Reader, error) {
	src, err := openSource(path)
	if err != nil {
		return nil, err
	}

	return &Reader{src: src}, nil
}

// FromCSV reads a CSV export from r. Mainly for tests and in-memory use;
// encoding is normalized the same way as for files.
func FromCSV(r io.Reader) (*Reader, error) {
	src, err := csvFromReader(r)
	if err != nil {
		return nil, err
	}

	return &Reader{src: src}, nil
}

func (r *Reader) Close() error {
	return r.src.Close()
}

// Next returns the next voucher block, or io.EOF when the export is
// exhausted. Unparsable dates and amounts degrade to unset fields; the
// block is still emitted for downstream handling.
func (r *Reader) Next() (*Block, error) {
	if r.done {
		return nil, io.EOF
	}

	for {
		row, err := r.src.Next()
		if err != nil {
			r.done = true

			if !errors.Is(err, io.EOF) {
				return nil, err
			}

			if !r.headered {
				return nil, ErrNoHeader
			}

			if b := r.pending; b != nil {
				r.pending = nil
				return b, nil
			}

			return nil, io.EOF
		}

		if !r.headered {
			if cols, ok := matchHeader(row); ok {
				r.cols = cols
				r.headered = true
			}

			continue
		}

		vchType := cellValue(row, r.cols.Type)
		vchNo := cellValue(row, r.cols.Number)

		if vchType != "" && vchNo != "" {
			next := r.startBlock(row, vchType, vchNo)

			if prev := r.pending; prev != nil {
				r.pending = next
				return prev, nil
			}

			r.pending = next

			continue
		}

		if r.pending == nil {
			// Noise between header and the first block-start.
			continue
		}

		if line, ok := r.detailLine(row); ok {
			r.pending.Lines = append(r.pending.Lines, line)
		}
	}
}

func (r *Reader) startBlock(row []string, vchType, vchNo string) *Block {
	b := &Block{
		VoucherNo: vchNo,
		Type:      vchType,
		Party:     cellValue(row, r.cols.Particulars),
		RawDate:   cellValue(row, r.cols.Date),
	}

	if t, serial, ok := parseDate(b.RawDate); ok {
		b.Date = t
		b.Serial = serial
	}

	if v, err := parseAmount(cellValue(row, r.cols.Debit)); err == nil {
		b.Debit = &v
	}

	if v, err := parseAmount(cellValue(row, r.cols.Credit)); err == nil {
		b.Credit = &v
	}

	return b
}

// detailLine captures a detail row: the particulars cell as description
// and the nearest numeric cell to its right as the amount candidate,
// falling back to the debit/credit columns. Rows without particulars are
// ignored.
func (r *Reader) detailLine(row []string) (DetailLine, bool) {
	desc := cellValue(row, r.cols.Particulars)
	if desc == "" {
		return DetailLine{}, false
	}

	line := DetailLine{Description: desc}

	for i := r.cols.Particulars + 1; i < len(row); i++ {
		if i == r.cols.Debit || i == r.cols.Credit {
			continue
		}

		cell := cellValue(row, i)
		if !looksNumeric(cell) {
			continue
		}

		if v, err := parseAmount(cell); err == nil {
			line.Amount = &v
			return line, true
		}
	}

	if v, err := parseAmount(cellValue(row, r.cols.Debit)); err == nil {
		line.Amount = &v
		line.Marker = MarkerDebit

		return line, true
	}

	if v, err := parseAmount(cellValue(row, r.cols.Credit)); err == nil {
		line.Amount = &v
		line.Marker = MarkerCredit

		return line, true
	}

	return line, true
}

// ReadAll drains the reader; used by the importer, which needs the full
// block list up front for totals and the audit artifact.
func (r *Reader) ReadAll() ([]*Block, error) {
	var blocks []*Block

	for {
		b, err := r.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return blocks, nil
			}

			return blocks, fmt.Errorf("scanning blocks: %w", err)
		}

		blocks = append(blocks, b)
	}
}
