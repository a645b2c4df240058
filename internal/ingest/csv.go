package ingest

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readCSV reads CSV data, sniffing the encoding and converting to UTF-8.
// UTF-8 and the common Windows single-byte encodings are supported.
func readCSV(r io.Reader, headerRow int) ([]map[string]string, error) {
	br := bufio.NewReader(r)

	// Peek at the head of the stream to detect the encoding.
	peek, _ := br.Peek(2048)
	charset := "utf-8"
	if len(peek) > 0 {
		if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
			charset = strings.ToLower(det.Charset)
		}
	}

	cr := csv.NewReader(decodeCharset(br, charset))
	cr.FieldsPerRecord = -1

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	h := pickHeader(rows, headerRow)
	return rowsToMaps(rows, h, headerRow), nil
}

// decodeCharset wraps r with a UTF-8 decoder for the detected charset.
// Unknown charsets pass through unchanged, assumed UTF-8.
func decodeCharset(r io.Reader, charset string) io.Reader {
	switch charset {
	case "windows-1252", "cp1252", "iso-8859-1":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder())
	case "windows-1251", "cp1251":
		return transform.NewReader(r, charmap.Windows1251.NewDecoder())
	default:
		return r
	}
}
