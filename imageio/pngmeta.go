package imageio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"io"
)

// PNG chunk layout constants. The signature is 8 bytes and the IHDR
// chunk that must follow it is 4 (length) + 4 (type) + 13 (data) +
// 4 (CRC) = 25 bytes, so text chunks are spliced at offset 33.
const (
	pngSignatureLen = 8
	pngIHDRLen      = 25
	textKeywordMax  = 79
)

// Text chunk errors
var (
	ErrBadKeyword = errors.New("imageio: invalid text chunk keyword")
	ErrNotPNG     = errors.New("imageio: encoder did not produce a PNG stream")
)

// TextChunk is one key/value pair embedded in a PNG as a tEXt chunk.
type TextChunk struct {
	Keyword string
	Text    string
}

// EncodePNG writes img to w as a PNG with one tEXt chunk per entry in
// texts, in the order given. Keywords must be 1 to 79 bytes and must
// not contain NUL.
func EncodePNG(w io.Writer, img image.Image, texts []TextChunk) error {
	for _, tc := range texts {
		if err := validateKeyword(tc.Keyword); err != nil {
			return err
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("imageio: png encode: %w", err)
	}
	raw := buf.Bytes()

	if len(texts) == 0 {
		_, err := w.Write(raw)
		return err
	}

	// tEXt chunks may appear anywhere between IHDR and IEND; they are
	// spliced immediately after IHDR.
	splice := pngSignatureLen + pngIHDRLen
	if len(raw) < splice || !bytes.Equal(raw[pngSignatureLen+4:pngSignatureLen+8], []byte("IHDR")) {
		return ErrNotPNG
	}

	if _, err := w.Write(raw[:splice]); err != nil {
		return err
	}
	for _, tc := range texts {
		if err := writeTextChunk(w, tc); err != nil {
			return err
		}
	}
	_, err := w.Write(raw[splice:])
	return err
}

func validateKeyword(keyword string) error {
	if len(keyword) == 0 || len(keyword) > textKeywordMax {
		return fmt.Errorf("%w: %q must be 1-%d bytes", ErrBadKeyword, keyword, textKeywordMax)
	}
	for i := 0; i < len(keyword); i++ {
		if keyword[i] == 0 {
			return fmt.Errorf("%w: %q contains NUL", ErrBadKeyword, keyword)
		}
	}
	return nil
}

// writeTextChunk emits a single tEXt chunk: length, type, keyword, NUL
// separator, text, then CRC-32 over the type and data.
func writeTextChunk(w io.Writer, tc TextChunk) error {
	data := make([]byte, 0, len(tc.Keyword)+1+len(tc.Text))
	data = append(data, tc.Keyword...)
	data = append(data, 0)
	data = append(data, tc.Text...)

	var header [8]byte
	binary.BigEndian.PutUint32(header[:4], uint32(len(data)))
	copy(header[4:], "tEXt")

	crc := crc32.NewIEEE()
	crc.Write(header[4:])
	crc.Write(data)
	var footer [4]byte
	binary.BigEndian.PutUint32(footer[:], crc.Sum32())

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := w.Write(footer[:])
	return err
}

// ReadTextChunks scans a PNG stream and returns its tEXt chunks in
// file order. Useful for verifying embedded metadata.
func ReadTextChunks(data []byte) ([]TextChunk, error) {
	if len(data) < pngSignatureLen {
		return nil, ErrNotPNG
	}
	var chunks []TextChunk
	pos := pngSignatureLen
	for pos+12 <= len(data) {
		length := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		typ := string(data[pos+4 : pos+8])
		if pos+12+length > len(data) {
			return nil, ErrNotPNG
		}
		if typ == "tEXt" {
			body := data[pos+8 : pos+8+length]
			if i := bytes.IndexByte(body, 0); i >= 0 {
				chunks = append(chunks, TextChunk{
					Keyword: string(body[:i]),
					Text:    string(body[i+1:]),
				})
			}
		}
		pos += 12 + length
		if typ == "IEND" {
			break
		}
	}
	return chunks, nil
}
