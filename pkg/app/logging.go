package app

import (
	"io"
	"log"
	"os"
	"strings"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// configureLogging 配置标准库 log 的输出
//
// 参数：
//   - verbose: 是否输出到 stderr
//   - logFile: 日志文件路径，非空时写入带滚动的日志文件（与 verbose 无关）
//
// 返回：
//   - io.Closer: 日志文件的关闭器；未启用文件日志时为 nil
func configureLogging(verbose bool, logFile string) io.Closer {
	var writers []io.Writer
	if verbose {
		writers = append(writers, os.Stderr)
	}

	var closer io.Closer
	if strings.TrimSpace(logFile) != "" {
		w := &lj.Logger{Filename: logFile, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
		writers = append(writers, w)
		closer = w
	}

	switch len(writers) {
	case 0:
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	case 1:
		log.SetOutput(writers[0])
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	default:
		log.SetOutput(io.MultiWriter(writers...))
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}

	return closer
}
