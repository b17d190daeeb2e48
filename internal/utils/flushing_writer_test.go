package utils_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amfschedule/targetcheck/internal/utils"
)

type flushRecordingWriter struct {
	buffer     bytes.Buffer
	flushCount int
}

func (writer *flushRecordingWriter) Write(data []byte) (int, error) {
	return writer.buffer.Write(data)
}

func (writer *flushRecordingWriter) Flush() error {
	writer.flushCount++
	return nil
}

func TestFlushingWriterFlushesAfterEachWrite(testInstance *testing.T) {
	recordingWriter := &flushRecordingWriter{}
	flushingWriter := utils.NewFlushingWriter(recordingWriter)

	bytesWritten, writeError := flushingWriter.Write([]byte("first"))
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, 5, bytesWritten)

	_, writeError = flushingWriter.Write([]byte("second"))
	require.NoError(testInstance, writeError)

	require.Equal(testInstance, "firstsecond", recordingWriter.buffer.String())
	require.Equal(testInstance, 2, recordingWriter.flushCount)
}

func TestFlushingWriterPassesThroughPlainWriters(testInstance *testing.T) {
	plainBuffer := &bytes.Buffer{}
	flushingWriter := utils.NewFlushingWriter(plainBuffer)

	_, writeError := flushingWriter.Write([]byte("report line"))
	require.NoError(testInstance, writeError)
	require.Equal(testInstance, "report line", plainBuffer.String())
}

func TestFlushingWriterDoesNotDoubleWrap(testInstance *testing.T) {
	plainBuffer := &bytes.Buffer{}
	wrappedOnce := utils.NewFlushingWriter(plainBuffer)
	wrappedTwice := utils.NewFlushingWriter(wrappedOnce)
	require.Same(testInstance, wrappedOnce, wrappedTwice)
}

func TestFlushingWriterNilWriter(testInstance *testing.T) {
	require.Nil(testInstance, utils.NewFlushingWriter(nil))
}
