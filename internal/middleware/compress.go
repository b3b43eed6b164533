package middleware

import (
	"io"
	"strings"

	"github.com/zungle102/shiftrec-sub000/internal/telemetry"

	"github.com/andybalholm/brotli"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compress 依 Accept-Encoding 壓縮回應（br > zstd > gzip）。
type Compress struct {
	trace *telemetry.Trace
}

func NewCompress(trace *telemetry.Trace) *Compress {
	return &Compress{trace: trace}
}

func (m *Compress) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoint := c.FullPath()
		if strings.HasPrefix(endpoint, "/swagger") ||
			strings.HasPrefix(endpoint, "/metrics") {
			c.Next()
			return
		}

		encoding := pickEncoding(c.GetHeader("Accept-Encoding"))
		if encoding == "" {
			c.Next()
			return
		}

		var compressor io.WriteCloser
		switch encoding {
		case "br":
			compressor = brotli.NewWriter(c.Writer)
		case "zstd":
			zw, err := zstd.NewWriter(c.Writer)
			if err != nil {
				c.Next()
				return
			}
			compressor = zw
		case "gzip":
			compressor = gzip.NewWriter(c.Writer)
		default:
			c.Next()
			return
		}

		c.Header("Content-Encoding", encoding)
		c.Header("Vary", "Accept-Encoding")
		// 壓縮後長度未知
		c.Writer.Header().Del("Content-Length")

		writer := &compressedWriter{ResponseWriter: c.Writer, compressor: compressor}
		c.Writer = writer
		defer func() {
			_ = compressor.Close()
			c.Writer = writer.ResponseWriter
		}()

		c.Next()
	}
}

// pickEncoding 依優先序選擇雙方都支援的編碼
func pickEncoding(acceptEncoding string) string {
	if acceptEncoding == "" {
		return ""
	}
	accepted := map[string]bool{}
	for _, part := range strings.Split(acceptEncoding, ",") {
		name := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if name != "" {
			accepted[strings.ToLower(name)] = true
		}
	}
	for _, candidate := range []string{"br", "zstd", "gzip"} {
		if accepted[candidate] {
			return candidate
		}
	}
	return ""
}

type compressedWriter struct {
	gin.ResponseWriter
	compressor io.WriteCloser
}

func (w *compressedWriter) Write(data []byte) (int, error) {
	return w.compressor.Write(data)
}

func (w *compressedWriter) WriteString(s string) (int, error) {
	return w.compressor.Write([]byte(s))
}
