package dataset

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// table is a header plus a stream of string records, whatever the file format.
type table interface {
	Header() []string
	// Next returns the next record, or io.EOF after the last one.
	Next() ([]string, error)
	Close() error
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func isParquet(source string) bool {
	p := source
	if isRemote(source) {
		if u, err := url.Parse(source); err == nil {
			p = u.Path
		}
	}
	return strings.EqualFold(path.Ext(p), ".parquet")
}

// openTable opens a local path or http(s) URL as a table. Parquet is chosen by
// extension, anything else is read as CSV.
func openTable(ctx context.Context, fetcher Fetcher, source string) (table, error) {
	var rc io.ReadCloser
	if isRemote(source) {
		if fetcher == nil {
			return nil, errors.New("no fetcher configured for remote source")
		}
		body, err := fetcher.Fetch(ctx, source)
		if err != nil {
			return nil, err
		}
		rc = body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", source, err)
		}
		if isParquet(source) {
			info, err := f.Stat()
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("stat %s: %w", source, err)
			}
			t, err := newParquetTable(f, info.Size(), f)
			if err != nil {
				f.Close()
				return nil, err
			}
			return t, nil
		}
		rc = f
	}

	if isParquet(source) {
		buf, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", source, err)
		}
		return newParquetTable(bytes.NewReader(buf), int64(len(buf)), nil)
	}
	return newCSVTable(rc)
}

type csvTable struct {
	closer io.Closer
	csv    *csv.Reader
	header []string
}

func newCSVTable(rc io.ReadCloser) (*csvTable, error) {
	bufReader := bufio.NewReaderSize(rc, 256*1024)

	// Skip UTF-8 BOM if present
	bom, err := bufReader.Peek(3)
	if err == nil && len(bom) >= 3 && bom[0] == 0xEF && bom[1] == 0xBB && bom[2] == 0xBF {
		bufReader.Discard(3)
	}

	reader := csv.NewReader(bufReader)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = false

	header, err := reader.Read()
	if err != nil {
		rc.Close()
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file: no header row")
		}
		return nil, fmt.Errorf("read header row: %w", err)
	}
	return &csvTable{closer: rc, csv: reader, header: header}, nil
}

func (t *csvTable) Header() []string { return t.header }

func (t *csvTable) Next() ([]string, error) {
	return t.csv.Read()
}

func (t *csvTable) Close() error { return t.closer.Close() }

type parquetTable struct {
	closer io.Closer
	reader *parquet.Reader
	header []string
	buf    []parquet.Row
	pos    int
	n      int
	done   bool
}

func newParquetTable(r io.ReaderAt, size int64, closer io.Closer) (*parquetTable, error) {
	file, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("open parquet: %w", err)
	}
	reader := parquet.NewReader(file)
	columns := file.Schema().Columns()
	header := make([]string, len(columns))
	for i, col := range columns {
		if len(col) > 0 {
			header[i] = col[len(col)-1]
		}
	}
	return &parquetTable{
		closer: closer,
		reader: reader,
		header: header,
		buf:    make([]parquet.Row, 512),
	}, nil
}

func (t *parquetTable) Header() []string { return t.header }

func (t *parquetTable) Next() ([]string, error) {
	for t.pos >= t.n {
		if t.done {
			return nil, io.EOF
		}
		n, err := t.reader.ReadRows(t.buf)
		t.pos, t.n = 0, n
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("read parquet rows: %w", err)
			}
			t.done = true
		}
	}
	row := t.buf[t.pos]
	t.pos++

	record := make([]string, len(t.header))
	for _, v := range row {
		idx := v.Column()
		if idx < 0 || idx >= len(record) || v.IsNull() {
			continue
		}
		record[idx] = parquetValueString(v)
	}
	return record, nil
}

func (t *parquetTable) Close() error {
	err := t.reader.Close()
	if t.closer != nil {
		if cerr := t.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func parquetValueString(v parquet.Value) string {
	switch v.Kind() {
	case parquet.Boolean:
		return strconv.FormatBool(v.Boolean())
	case parquet.Int32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case parquet.Int64:
		return strconv.FormatInt(v.Int64(), 10)
	case parquet.Float:
		return strconv.FormatFloat(float64(v.Float()), 'f', -1, 32)
	case parquet.Double:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64)
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	}
	return ""
}

// columnIndex maps normalized header names to record positions.
type columnIndex map[string]int

func newColumnIndex(header []string) columnIndex {
	idx := make(columnIndex, len(header))
	for i, h := range header {
		key := normalizeColumn(h)
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	return idx
}

func normalizeColumn(h string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
}

// missing returns the first required column absent from the header.
func (c columnIndex) missing(required []string) string {
	for _, col := range required {
		if _, ok := c[normalizeColumn(col)]; !ok {
			return col
		}
	}
	return ""
}

// get returns the trimmed cell for a column, or "" when the column or cell is absent.
func (c columnIndex) get(record []string, col string) string {
	i, ok := c[normalizeColumn(col)]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
