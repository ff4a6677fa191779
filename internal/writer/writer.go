package writer

import (
	"bufio"
	"io"
	"sync"

	jsoniter "github.com/json-iterator/go"
)

var marshaller = jsoniter.ConfigFastest

// JSONWriter accepts vertex/edge values and serializes them as newline-delimited
// JSON, one object per call. Write never blocks on I/O; Flush drains the queue
// and reports the first encoding error encountered, if any.
type JSONWriter interface {
	Write(v interface{})
	Flush() error
}

type jsonWriter struct {
	wg             sync.WaitGroup
	ch             chan interface{}
	bufferedWriter *bufio.Writer
	err            error
}

var _ JSONWriter = &jsonWriter{}

const channelBufferSize = 512
const writerBufferSize = 4096

// NewJSONWriter starts a background goroutine that encodes values written to
// the returned JSONWriter onto w, in submission order.
func NewJSONWriter(w io.Writer) JSONWriter {
	ch := make(chan interface{}, channelBufferSize)
	bufferedWriter := bufio.NewWriterSize(w, writerBufferSize)
	jw := &jsonWriter{ch: ch, bufferedWriter: bufferedWriter}
	encoder := marshaller.NewEncoder(bufferedWriter)

	jw.wg.Add(1)
	go func() {
		defer jw.wg.Done()
		for v := range ch {
			if jw.err != nil {
				continue
			}
			if err := encoder.Encode(v); err != nil {
				jw.err = err
			}
		}
	}()

	return jw
}

func (jw *jsonWriter) Write(v interface{}) {
	jw.ch <- v
}

func (jw *jsonWriter) Flush() error {
	close(jw.ch)
	jw.wg.Wait()
	if jw.err != nil {
		return jw.err
	}
	return jw.bufferedWriter.Flush()
}
