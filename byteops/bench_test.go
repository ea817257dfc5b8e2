package byteops

import (
	"bytes"
	"testing"
)

func benchBuf(n int) []byte {
	buf := bytes.Repeat([]byte{'x'}, n)
	buf[n-1] = '\n'
	return buf
}

func BenchmarkIndexByte(b *testing.B) {
	buf := benchBuf(4096)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = IndexByte(buf, '\n')
	}
}

func BenchmarkIndexByte_Scalar(b *testing.B) {
	buf := benchBuf(4096)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = indexByteScalar(buf, '\n')
	}
}

func BenchmarkIndexByte_Stdlib(b *testing.B) {
	buf := benchBuf(4096)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = bytes.IndexByte(buf, '\n')
	}
}

func BenchmarkEqual(b *testing.B) {
	x := benchBuf(4096)
	y := benchBuf(4096)
	b.SetBytes(int64(len(x)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = Equal(x, y)
	}
}
