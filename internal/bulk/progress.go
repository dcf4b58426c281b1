package bulk

import (
	"bytes"
	"io"
)

const chunkSize = 32 * 1024

// ReadWithProgress читает тело целиком, после каждого куска сообщает процент.
// При неизвестной длине (total <= 0) процент не считается, onProgress получает -1.
func ReadWithProgress(r io.Reader, total int64, onProgress func(percent int)) ([]byte, error) {
	var buf bytes.Buffer
	if total > 0 {
		buf.Grow(int(total))
	}

	chunk := make([]byte, chunkSize)
	last := -2

	for {
		n, err := r.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])

			percent := -1
			if total > 0 {
				percent = min(100, int(int64(buf.Len())*100/total))
			}

			if onProgress != nil && percent != last {
				onProgress(percent)
				last = percent
			}
		}

		if err == io.EOF {
			return buf.Bytes(), nil
		}
		if err != nil {
			return buf.Bytes(), err
		}
	}
}
